package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Post("/management/auth", h.login)

	// routes with optional bearer authorization
	router.Group(func(r chi.Router) {
		r.Use(h.authenticate)

		r.Get("/taxii2/", h.discovery)

		r.Route("/{apiRoot}", func(r chi.Router) {
			r.Get("/", h.getAPIRoot)
			r.Get("/status/{jobID}/", h.getStatus)

			r.Get("/collections/", h.listCollections)
			r.Route("/collections/{collection}", func(r chi.Router) {
				r.Get("/", h.getCollection)
				r.Get("/manifest/", h.listManifest)

				r.Get("/objects/", h.listObjects)
				r.With(middleware.AllowContentType(taxiiContentType, "application/json")).
					Post("/objects/", h.addObjects)

				r.Get("/objects/{objectID}/", h.getObject)
				r.Delete("/objects/{objectID}/", h.deleteObject)
				r.Get("/objects/{objectID}/versions/", h.listVersions)
			})
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}
