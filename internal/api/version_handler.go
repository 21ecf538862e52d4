package api

import (
	"net/http"

	"github.com/harlowgray/lexica-api/internal/api/shared"
	"github.com/harlowgray/lexica-api/internal/catalog"
)

// VersionHandler serves catalog version information and compatibility
// checks.
type VersionHandler struct {
	catalog *catalog.Catalog
}

// NewVersionHandler creates a new VersionHandler over the given
// catalog.
func NewVersionHandler(cat *catalog.Catalog) *VersionHandler {
	return &VersionHandler{catalog: cat}
}

// GetVersion handles GET /api/version. When the client passes its own
// catalog version as ?client=X.Y.Z, the response says whether the
// served catalog satisfies it.
func (h *VersionHandler) GetVersion(w http.ResponseWriter, r *http.Request) {
	resp := VersionResponse{
		Version: h.catalog.Version,
		Domains: h.catalog.Domains,
		Nouns:   h.catalog.Registry.Len(),
	}

	if client := r.URL.Query().Get("client"); client != "" {
		compatible, err := catalog.IsCompatible(client)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r,
				http.StatusBadRequest, "Invalid client version", err)
			return
		}
		resp.Compatible = &compatible
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
