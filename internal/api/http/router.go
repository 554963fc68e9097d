package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter assembles the API routes.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", h.healthz)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/alarms", func(r chi.Router) {
			r.Get("/", h.listAlarms)
			r.Post("/", h.createAlarm)
			r.Put("/{id}", h.updateAlarm)
			r.Delete("/{id}", h.deleteAlarm)
			r.Post("/{id}/toggle", h.toggleAlarm)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", h.getSettings)
			r.Put("/", h.updateSettings)
		})

		r.Route("/episodes/{alarmID}", func(r chi.Router) {
			r.Get("/", h.getEpisode)
			r.Post("/input", h.episodeInput)
			r.Post("/snooze", h.snoozeEpisode)
		})
	})

	return r
}
