package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/harlowgray/lexica-api/internal/api"
	apiMiddleware "github.com/harlowgray/lexica-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceID)

	nounHandler := api.NewNounHandler(app.catalog)
	auditHandler := api.NewAuditHandler(app.catalog)
	versionHandler := api.NewVersionHandler(app.catalog)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService)

	r.Route("/api", func(r chi.Router) {
		// Catalog read endpoints (public)
		r.Get("/nouns", nounHandler.ListNouns)
		r.Get("/nouns/{name}", nounHandler.GetNoun)
		r.Get("/categories", nounHandler.ListCategories)
		r.Get("/categories/{label}", nounHandler.GetCategory)
		r.Get("/version", versionHandler.GetVersion)

		// Protected consistency endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/audit/backrefs", auditHandler.AuditBackrefs)
			r.Post("/validate", auditHandler.CheckDescriptor)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
