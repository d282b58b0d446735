package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/AbhradeepMukherjee/CalenderApp/internal/auth"
	"github.com/AbhradeepMukherjee/CalenderApp/internal/middleware"
	"github.com/AbhradeepMukherjee/CalenderApp/internal/store"
)

type Handler struct {
	store    *store.Store
	validate *validator.Validate
}

func New(st *store.Store) *Handler {
	return &Handler{store: st, validate: validator.New()}
}

// RegisterRoutes mounts the public surface. Everything under /api/v1 sits
// behind bearer auth; signup additionally goes through the rate limiter.
func (h *Handler) RegisterRoutes(r chi.Router, v auth.Verifier, rl *middleware.RateLimiter) {
	r.Get("/health", h.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(v))

		r.With(middleware.RateLimit(rl)).Post("/create", h.CreateUser)

		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.ListEvents)
			r.Post("/", h.CreateEvent)
			r.Get("/date/{date}", h.EventsByDate)
			r.Get("/week/{startOfWeek}", h.EventsByWeek)
			r.Get("/month/{monthNumber}", h.EventsByMonth)
			r.Get("/{id}", h.GetEvent)
			r.Put("/{id}", h.UpdateEvent)
			r.Delete("/{id}", h.DeleteEvent)
		})
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
