package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the router of the API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.cfg.AllowedOrigin != "" {
		router.Use(h.withCORS())
	}
	router.Use(middleware.Compress(5, "application/json"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/signup", h.signup)
		r.Post("/api/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/todos", h.listTodos)
		r.Post("/api/todos", h.createTodo)
		r.Put("/api/todos/{id}", h.updateTodo)
		r.Delete("/api/todos/{id}", h.deleteTodo)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// withCORS accepts cross-origin calls from the configured origin only.
// Without an origin no CORS headers are sent and browsers keep the
// same-origin policy.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{h.cfg.AllowedOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	})
}
