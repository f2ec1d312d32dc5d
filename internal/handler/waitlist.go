package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jamesdawsonWD/scope-landing/internal/analytics"
	"github.com/jamesdawsonWD/scope-landing/internal/waitlist"
)

// Email stays raw so a present-but-non-string value reads as missing
// instead of failing the whole body parse.
type waitlistRequest struct {
	Email  json.RawMessage `json:"email"`
	Source string          `json:"source,omitempty"`
}

type waitlistSuccess struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// PostWaitlist handles POST /api/waitlist. Status codes and message
// strings are part of the public contract and must not drift.
func (h *Handlers) PostWaitlist(w http.ResponseWriter, r *http.Request) {
	var req waitlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: waitlist.MsgInternalError})
		return
	}

	// A number, object, or null in the email field validates the same
	// as an absent one.
	var email string
	if len(req.Email) > 0 {
		_ = json.Unmarshal(req.Email, &email)
	}

	distinctID := r.Header.Get("X-Distinct-Id")
	if distinctID == "" {
		distinctID = uuid.New().String()
	}
	source := req.Source
	if source == "" {
		source = "landing_page"
	}
	h.capture(distinctID, analytics.WaitlistSubmitted(source))

	res := h.waitlist.Submit(r.Context(), email)

	switch res.Outcome {
	case waitlist.OutcomeSuccess, waitlist.OutcomeAlreadySubscribed:
		h.capture(distinctID, analytics.WaitlistCompleted(res.Outcome == waitlist.OutcomeAlreadySubscribed))
		writeJSON(w, http.StatusOK, waitlistSuccess{Success: true, Message: res.Message})
	case waitlist.OutcomeValidationError:
		h.capture(distinctID, analytics.WaitlistFailed(res.Message))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: res.Message})
	default:
		h.capture(distinctID, analytics.WaitlistFailed(res.Message))
		h.logger.Warn("waitlist submission failed", zap.String("outcome", string(res.Outcome)))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: res.Message})
	}
}

func (h *Handlers) capture(distinctID string, ev analytics.Event) {
	ev.DistinctID = distinctID
	h.analytics.Capture(ev)
}
