package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/harlowgray/lexica-api/internal/api/shared"
	"github.com/harlowgray/lexica-api/internal/catalog"
)

// NounHandler serves read access to the descriptor catalog.
type NounHandler struct {
	catalog *catalog.Catalog
}

// NewNounHandler creates a new NounHandler over the given catalog.
func NewNounHandler(cat *catalog.Catalog) *NounHandler {
	return &NounHandler{catalog: cat}
}

// ListNouns handles GET /api/nouns.
func (h *NounHandler) ListNouns(w http.ResponseWriter, r *http.Request) {
	reg := h.catalog.Registry

	names := reg.Nouns()
	summaries := make([]NounSummary, 0, len(names))
	for _, name := range names {
		noun, err := reg.Resolve(name)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r,
				http.StatusInternalServerError, GetSafeErrorMessage(err), err)
			return
		}
		summaries = append(summaries, newNounSummary(noun))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NounListResponse{
		Count: len(summaries),
		Nouns: summaries,
	})
}

// GetNoun handles GET /api/nouns/{name} and returns the full
// descriptor.
func (h *NounHandler) GetNoun(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	noun, err := h.catalog.Registry.Resolve(name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, noun)
}

// ListCategories handles GET /api/categories.
func (h *NounHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	reg := h.catalog.Registry

	labels := reg.CategoryLabels()
	categories := make([]CategoryResponse, 0, len(labels))
	for _, label := range labels {
		names, err := reg.Category(label)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r,
				http.StatusInternalServerError, GetSafeErrorMessage(err), err)
			return
		}
		categories = append(categories, CategoryResponse{Label: label, Nouns: names})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CategoryListResponse{
		Count:      len(categories),
		Categories: categories,
	})
}

// GetCategory handles GET /api/categories/{label}.
func (h *NounHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	label := chi.URLParam(r, "label")

	names, err := h.catalog.Registry.Category(label)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CategoryResponse{
		Label: label,
		Nouns: names,
	})
}
