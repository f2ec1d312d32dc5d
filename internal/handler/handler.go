package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/jamesdawsonWD/scope-landing/internal/analytics"
	"github.com/jamesdawsonWD/scope-landing/internal/content"
	"github.com/jamesdawsonWD/scope-landing/internal/showcase"
	"github.com/jamesdawsonWD/scope-landing/internal/waitlist"
)

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	waitlist  *waitlist.Service
	engine    *showcase.Engine
	analytics *analytics.Client
	catalog   content.Catalog
	logger    *zap.Logger
}

// NewHandlers wires the API surface to its backing services.
func NewHandlers(ws *waitlist.Service, engine *showcase.Engine, ac *analytics.Client, catalog content.Catalog, logger *zap.Logger) *Handlers {
	return &Handlers{
		waitlist:  ws,
		engine:    engine,
		analytics: ac,
		catalog:   catalog,
		logger:    logger,
	}
}

// Routes mounts every API route. Middleware is the caller's problem.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", h.Health)
	r.Get("/api/content", h.GetContent)
	// Bound concurrent submissions so a burst cannot exhaust the
	// provider's rate limit.
	r.With(chimw.Throttle(50)).Post("/api/waitlist", h.PostWaitlist)
	r.Post("/api/events", h.PostEvents)

	r.Route("/api/showcase/sessions", func(r chi.Router) {
		r.Post("/", h.CreateSession)
		r.Route("/{sessionId}", func(r chi.Router) {
			r.Get("/", h.GetSession)
			r.Delete("/", h.DeleteSession)
			r.Post("/scroll", h.PostScroll)
			r.Route("/sections/{section}", func(r chi.Router) {
				r.Post("/navigate", h.PostNavigate)
				r.Post("/pause", h.PostPause)
				r.Post("/visibility", h.PostVisibility)
			})
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
