package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jamesdawsonWD/scope-landing/internal/showcase"
)

type createSessionRequest struct {
	DistinctID string `json:"distinct_id,omitempty"`
}

// CreateSession handles POST /api/showcase/sessions. One session per
// page load; the client keeps the returned ID for every later call.
func (h *Handlers) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
	}

	sess, err := h.engine.CreateSession(req.DistinctID)
	if err != nil {
		if errors.Is(err, showcase.ErrCapacity) {
			http.Error(w, `{"error":"max sessions reached"}`, http.StatusServiceUnavailable)
			return
		}
		http.Error(w, `{"error":"could not create session"}`, http.StatusInternalServerError)
		return
	}

	st, err := h.engine.SessionState(sess.ID)
	if err != nil {
		http.Error(w, `{"error":"could not create session"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, st)
}

// GetSession handles GET /api/showcase/sessions/{sessionId}.
func (h *Handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	st, err := h.engine.SessionState(chi.URLParam(r, "sessionId"))
	if err != nil {
		h.showcaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// DeleteSession handles DELETE /api/showcase/sessions/{sessionId}.
// Deleting an unknown session is a no-op.
func (h *Handlers) DeleteSession(w http.ResponseWriter, r *http.Request) {
	h.engine.DeleteSession(chi.URLParam(r, "sessionId"))
	w.WriteHeader(http.StatusNoContent)
}

// PostNavigate handles POST .../sections/{section}/navigate.
func (h *Handlers) PostNavigate(w http.ResponseWriter, r *http.Request) {
	var req showcase.NavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	st, err := h.engine.Navigate(chi.URLParam(r, "sessionId"), chi.URLParam(r, "section"), req)
	if err != nil {
		h.showcaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

type pauseRequest struct {
	Paused bool `json:"paused"`
}

// PostPause handles POST .../sections/{section}/pause. Hover enter
// sends paused=true, hover leave sends paused=false.
func (h *Handlers) PostPause(w http.ResponseWriter, r *http.Request) {
	var req pauseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	err := h.engine.SetPaused(chi.URLParam(r, "sessionId"), chi.URLParam(r, "section"), req.Paused)
	if err != nil {
		h.showcaseError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type visibilityRequest struct {
	Visible bool `json:"visible"`
}

// PostVisibility handles POST .../sections/{section}/visibility, the
// relay for client intersection reports.
func (h *Handlers) PostVisibility(w http.ResponseWriter, r *http.Request) {
	var req visibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	err := h.engine.SetVisibility(chi.URLParam(r, "sessionId"), chi.URLParam(r, "section"), req.Visible)
	if err != nil {
		h.showcaseError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type scrollRequest struct {
	Percent int `json:"percent"`
}

type scrollResponse struct {
	Fired []int `json:"fired"`
}

// PostScroll handles POST /api/showcase/sessions/{sessionId}/scroll.
func (h *Handlers) PostScroll(w http.ResponseWriter, r *http.Request) {
	var req scrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	fired, err := h.engine.ReportScroll(chi.URLParam(r, "sessionId"), req.Percent)
	if err != nil {
		h.showcaseError(w, err)
		return
	}
	if fired == nil {
		fired = []int{}
	}
	writeJSON(w, http.StatusOK, scrollResponse{Fired: fired})
}

func (h *Handlers) showcaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, showcase.ErrSessionNotFound):
		http.Error(w, `{"error":"session not found"}`, http.StatusNotFound)
	case errors.Is(err, showcase.ErrSectionNotFound):
		http.Error(w, `{"error":"section not found"}`, http.StatusNotFound)
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
}
