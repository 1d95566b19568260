package router

import (
	"net/http"

	"skincare-api/internal/handler"
	"skincare-api/internal/metrics"
	"skincare-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
// A nil m disables the /metrics endpoint and request metrics.
func New(
	productHandler *handler.ProductHandler,
	routineHandler *handler.RoutineHandler,
	m *metrics.Metrics,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware in order: Recovery -> RequestID -> Logging -> Metrics -> CORS
	r.Use(middleware.Recovery(logger))
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logging(logger))
	if m != nil {
		r.Use(middleware.Metrics(m))
	}
	r.Use(middleware.CORS)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message": "Personalized Skincare API is running."}`))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Post("/routine", routineHandler.Generate)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.List)
		r.Post("/", productHandler.Create)
		r.Put("/{id}", productHandler.Update)
		r.Delete("/{id}", productHandler.Delete)
	})

	return r
}
