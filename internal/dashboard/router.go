package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"australia-analytics/internal/observability"
)

// Routes configures middleware and all routes.
func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(requestLogger(h.logger))

	// Charts are public read-only JSON.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	// Pages
	router.Get("/", h.handleProfile)
	router.Get("/services", h.handleServices)
	router.Get("/immigration", h.handleImmigration)
	router.Get("/election", h.handleElection)

	router.Route("/api", func(r chi.Router) {
		r.Route("/immigration", func(r chi.Router) {
			r.Get("/forecast", h.handleForecast)
			r.Get("/policy", h.handlePolicy)
			r.Get("/net-migration", h.handleNetMigration)
			r.Get("/population", h.handlePopulation)
		})
		r.Route("/election", func(r chi.Router) {
			r.Get("/states", h.handleStates)
			r.Get("/map", h.handleMap)
			r.Get("/first-preferences", h.handleFirstPreferences)
			r.Get("/seats", h.handleSeats)
		})
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusNotFound, "no such endpoint")
		})
	})

	// Population report
	router.Get("/report", h.handleReport)
	router.Get("/report/forecast.csv", h.handleForecastCSV)

	// Operational
	router.Get("/health", h.handleHealth)
	router.Get("/status", h.handleStatus)
	router.Handle("/metrics", observability.Handler())

	return router
}
