package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/session", h.sessionStatus)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/session", h.openSession)
		r.Delete("/api/session", h.closeSession)

		r.Post("/api/secrets/flush", h.flushSecrets)
		r.Get("/api/secrets/{name}", h.getSecret)
		r.Put("/api/secrets/{name}", h.putSecret)
		r.Delete("/api/secrets/{name}", h.deleteSecret)

		r.Post("/api/crypto/encrypt", h.encryptValue)
		r.Post("/api/crypto/decrypt", h.decryptValue)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
