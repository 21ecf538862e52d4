package api

import (
	"github.com/harlowgray/lexica-api/internal/domain"
	"github.com/harlowgray/lexica-api/internal/registry"
)

// NounSummary is the list-view shape of a descriptor: display names
// plus counts, without the full property and relationship maps.
type NounSummary struct {
	Name          string `json:"name"`
	Singular      string `json:"singular"`
	Plural        string `json:"plural"`
	Description   string `json:"description,omitempty"`
	Properties    int    `json:"properties"`
	Relationships int    `json:"relationships"`
	Actions       int    `json:"actions"`
	Events        int    `json:"events"`
}

// NounListResponse is the response for the noun listing endpoint.
type NounListResponse struct {
	Count int           `json:"count"`
	Nouns []NounSummary `json:"nouns"`
}

// CategoryResponse is a single documentation grouping.
type CategoryResponse struct {
	Label string   `json:"label"`
	Nouns []string `json:"nouns"`
}

// CategoryListResponse is the response for the category listing
// endpoint.
type CategoryListResponse struct {
	Count      int                `json:"count"`
	Categories []CategoryResponse `json:"categories"`
}

// AuditViolation is the wire shape of a single backref violation.
type AuditViolation struct {
	Noun         string `json:"noun"`
	Relationship string `json:"relationship"`
	Backref      string `json:"backref"`
	Target       string `json:"target"`
	Reason       string `json:"reason"`
}

// AuditResponse is the response for the backref audit endpoint.
type AuditResponse struct {
	Consistent bool             `json:"consistent"`
	Violations []AuditViolation `json:"violations"`
}

// CheckDescriptorRequest is the request body for ad-hoc descriptor
// validation. The descriptor is checked against the loaded catalog
// without being registered.
type CheckDescriptorRequest struct {
	Name       string                 `json:"name" validate:"required"`
	Descriptor *domain.NounDescriptor `json:"descriptor" validate:"required"`
}

// CheckDescriptorResponse reports the outcome of an ad-hoc descriptor
// check.
type CheckDescriptorResponse struct {
	Valid    bool     `json:"valid"`
	Problems []string `json:"problems,omitempty"`
}

// VersionResponse reports the catalog version and, when the client
// declared its own version, whether the two are compatible.
type VersionResponse struct {
	Version    string   `json:"version"`
	Domains    []string `json:"domains"`
	Nouns      int      `json:"nouns"`
	Compatible *bool    `json:"compatible,omitempty"`
}

// newNounSummary builds the list-view shape from a descriptor.
func newNounSummary(noun *domain.NounDescriptor) NounSummary {
	return NounSummary{
		Name:          noun.Name,
		Singular:      noun.Singular,
		Plural:        noun.Plural,
		Description:   noun.Description,
		Properties:    len(noun.Properties),
		Relationships: len(noun.Relationships),
		Actions:       len(noun.Actions),
		Events:        len(noun.Events),
	}
}

// newAuditViolation converts a registry violation to its wire shape.
func newAuditViolation(v registry.BackrefViolation) AuditViolation {
	return AuditViolation{
		Noun:         v.Noun,
		Relationship: v.Relationship,
		Backref:      v.Backref,
		Target:       v.Target,
		Reason:       v.Reason,
	}
}
