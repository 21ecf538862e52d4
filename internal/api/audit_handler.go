package api

import (
	"fmt"
	"net/http"

	"github.com/harlowgray/lexica-api/internal/api/shared"
	"github.com/harlowgray/lexica-api/internal/catalog"
	"github.com/harlowgray/lexica-api/internal/platform/logger"
)

// AuditHandler serves the consistency endpoints: the backref audit and
// ad-hoc descriptor checks against the loaded catalog.
type AuditHandler struct {
	catalog *catalog.Catalog
}

// NewAuditHandler creates a new AuditHandler over the given catalog.
func NewAuditHandler(cat *catalog.Catalog) *AuditHandler {
	return &AuditHandler{catalog: cat}
}

// AuditBackrefs handles GET /api/audit/backrefs. It reports every
// declared backref whose target does not mirror it, not just the first.
func (h *AuditHandler) AuditBackrefs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	violations := h.catalog.Registry.AuditBackrefs()

	wire := make([]AuditViolation, 0, len(violations))
	for _, v := range violations {
		wire = append(wire, newAuditViolation(v))
	}

	if consumer, ok := shared.GetConsumer(r.Context()); ok {
		log.Debug("backref audit requested",
			"consumer", consumer,
			"violations", len(wire))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuditResponse{
		Consistent: len(wire) == 0,
		Violations: wire,
	})
}

// CheckDescriptor handles POST /api/validate. The submitted descriptor
// is validated structurally and its relationship targets are resolved
// against the catalog, without registering anything. Structural
// validation reports its first problem; unresolved relationship
// targets are collected in full.
func (h *AuditHandler) CheckDescriptor(w http.ResponseWriter, r *http.Request) {
	var req CheckDescriptorRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusBadRequest, "Name and descriptor are required", err)
		return
	}

	noun := req.Descriptor
	noun.Name = req.Name

	var problems []string
	if err := noun.Validate(); err != nil {
		problems = append(problems, err.Error())
	}

	for _, relName := range noun.RelationshipNames() {
		rel := noun.Relationships[relName]
		if rel == nil || rel.Type.Target == "" {
			continue
		}
		// A self-reference is fine even though the noun itself is not
		// registered.
		if rel.Type.Target == noun.Name {
			continue
		}
		if _, err := h.catalog.Registry.Resolve(rel.Type.Target); err != nil {
			problems = append(problems, fmt.Sprintf(
				"relationship %s.%s targets unknown noun %q", noun.Name, relName, rel.Type.Target))
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CheckDescriptorResponse{
		Valid:    len(problems) == 0,
		Problems: problems,
	})
}
