package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harlowgray/lexica-api/internal/domain"
)

func TestAuditBackrefsSymmetricPair(t *testing.T) {
	t.Parallel()
	reg := New()

	doc := newNoun("Document", "document", "documents")
	doc.Relationships = map[string]*domain.RelationshipDescriptor{
		"versions": {
			Type:     domain.Reference{Target: "DocumentVersion", ToMany: true},
			Required: true,
			Backref:  "document",
		},
	}
	version := newNoun("DocumentVersion", "document version", "document versions")
	version.Relationships = map[string]*domain.RelationshipDescriptor{
		"document": {
			Type:     domain.Reference{Target: "Document"},
			Required: true,
			Backref:  "versions",
		},
	}

	require.NoError(t, reg.Register(doc))
	require.NoError(t, reg.Register(version))
	require.NoError(t, reg.Finalize())

	assert.Empty(t, reg.AuditBackrefs())
}

func TestAuditBackrefsMissingMirror(t *testing.T) {
	t.Parallel()
	reg := New()

	// Ad declares adGroup with backref "ads", but AdGroup never declares
	// an ads relationship back to Ad.
	ad := newNoun("Ad", "ad", "ads")
	ad.Relationships = map[string]*domain.RelationshipDescriptor{
		"adGroup": {
			Type:     domain.Reference{Target: "AdGroup"},
			Required: true,
			Backref:  "ads",
		},
	}
	require.NoError(t, reg.Register(ad))
	require.NoError(t, reg.Register(newNoun("AdGroup", "ad group", "ad groups")))
	require.NoError(t, reg.Finalize())

	violations := reg.AuditBackrefs()
	require.Len(t, violations, 1)
	assert.Equal(t, "Ad", violations[0].Noun)
	assert.Equal(t, "adGroup", violations[0].Relationship)
	assert.Equal(t, "ads", violations[0].Backref)
	assert.Contains(t, violations[0].String(), "Ad.adGroup")
}

func TestAuditBackrefsWrongMirrorTarget(t *testing.T) {
	t.Parallel()
	reg := New()

	// Issue.project declares backref "issues", but Project.issues points
	// at Sprint instead of Issue.
	issue := newNoun("Issue", "issue", "issues")
	issue.Relationships = map[string]*domain.RelationshipDescriptor{
		"project": {
			Type:     domain.Reference{Target: "Project"},
			Required: true,
			Backref:  "issues",
		},
	}
	project := newNoun("Project", "project", "projects")
	project.Relationships = map[string]*domain.RelationshipDescriptor{
		"issues": {
			Type:     domain.Reference{Target: "Sprint", ToMany: true},
			Required: false,
		},
	}

	require.NoError(t, reg.Register(issue))
	require.NoError(t, reg.Register(project))
	require.NoError(t, reg.Register(newNoun("Sprint", "sprint", "sprints")))
	require.NoError(t, reg.Finalize())

	violations := reg.AuditBackrefs()
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Reason, "Sprint")
}

func TestAuditBackrefsCollectsEveryViolation(t *testing.T) {
	t.Parallel()
	reg := New()

	shipment := newNoun("Shipment", "shipment", "shipments")
	shipment.Relationships = map[string]*domain.RelationshipDescriptor{
		"carrier": {
			Type:     domain.Reference{Target: "Carrier"},
			Required: true,
			Backref:  "shipments",
		},
		"parcels": {
			Type:     domain.Reference{Target: "Parcel", ToMany: true},
			Required: true,
			Backref:  "shipment",
		},
	}
	require.NoError(t, reg.Register(shipment))
	require.NoError(t, reg.Register(newNoun("Carrier", "carrier", "carriers")))
	require.NoError(t, reg.Register(newNoun("Parcel", "parcel", "parcels")))
	require.NoError(t, reg.Finalize())

	// Both violations are reported in one pass, in sorted relationship
	// order, so the caller can fix everything from a single audit.
	violations := reg.AuditBackrefs()
	require.Len(t, violations, 2)
	assert.Equal(t, "carrier", violations[0].Relationship)
	assert.Equal(t, "parcels", violations[1].Relationship)
}

func TestAuditBackrefsIgnoresRelationshipsWithoutBackref(t *testing.T) {
	t.Parallel()
	reg := New()

	event := newNoun("TrackingEvent", "tracking event", "tracking events")
	event.Relationships = map[string]*domain.RelationshipDescriptor{
		"shipment": {Type: domain.Reference{Target: "Shipment"}, Required: true},
	}
	require.NoError(t, reg.Register(event))
	require.NoError(t, reg.Register(newNoun("Shipment", "shipment", "shipments")))
	require.NoError(t, reg.Finalize())

	assert.Empty(t, reg.AuditBackrefs())
}
