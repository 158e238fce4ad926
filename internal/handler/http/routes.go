package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Group(func(r chi.Router) {
		r.Use(h.withTraceID, withLogging, withGZip)
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}
		r.Route("/api", h.apiRoutes)
	})

	// promhttp negotiates its own compression
	if h.metrics != nil {
		router.Handle("/metrics", h.metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) apiRoutes(r chi.Router) {
	r.Get("/version", h.getServerVersion)

	r.Route("/analyses", func(r chi.Router) {
		r.Post("/", h.createAnalysis)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getAnalysis)
			r.Put("/symptoms", h.updateSymptoms)
			r.Put("/local-inference", h.updateLocalInference)
			r.Put("/notes", h.updateNotes)
			r.Put("/retention", h.setRetentionPolicy)
			r.Post("/encrypt", h.markEncrypted)
			r.Put("/status", h.setStatus)
			r.Get("/logs", h.listLogs)

			r.With(h.auth).Delete("/", h.deleteAnalysis)
		})
	})

	r.Get("/red-flags", h.listRedFlags)
	r.Post("/red-flags", h.addCustomRedFlag)

	// admin routes
	r.Route("/admin", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/analyses", h.listAnalyses)
		r.Get("/analyses/status/{status}", h.listAnalysesByStatus)
		r.Get("/stats", h.stats)
		r.Get("/expiring", h.listExpiring)
		r.Post("/purge", h.purgeExpired)
		r.Post("/analyses/{id}/deletion-requests", h.requestDeletion)
		r.Post("/analyses/{id}/deletion-requests/complete", h.completeDeletion)
	})
}
