package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jamesdawsonWD/scope-landing/internal/analytics"
	"github.com/jamesdawsonWD/scope-landing/internal/metrics"
)

type ingestEvent struct {
	Name       string         `json:"event"`
	Properties map[string]any `json:"properties,omitempty"`
}

type ingestRequest struct {
	DistinctID string        `json:"distinct_id"`
	Events     []ingestEvent `json:"events"`
}

type ingestResponse struct {
	Accepted int `json:"accepted"`
	Dropped  int `json:"dropped"`
}

// maxIngestEvents caps one request; clients batch far below this.
const maxIngestEvents = 100

// PostEvents handles POST /api/events, the client-side analytics relay.
// Events outside the catalogue are dropped, never rejected, so a stale
// client cannot break the page.
func (h *Handlers) PostEvents(w http.ResponseWriter, r *http.Request) {
	var req ingestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	if len(req.Events) == 0 {
		http.Error(w, `{"error":"events is required"}`, http.StatusBadRequest)
		return
	}
	if len(req.Events) > maxIngestEvents {
		http.Error(w, `{"error":"too many events"}`, http.StatusBadRequest)
		return
	}

	distinctID := req.DistinctID
	if distinctID == "" {
		distinctID = uuid.New().String()
	}

	var resp ingestResponse
	for _, ev := range req.Events {
		if !analytics.Known(ev.Name) {
			metrics.AnalyticsEventsTotal.WithLabelValues("unknown").Inc()
			resp.Dropped++
			continue
		}
		h.analytics.Capture(analytics.Event{
			Name:       ev.Name,
			DistinctID: distinctID,
			Properties: ev.Properties,
		})
		resp.Accepted++
	}

	writeJSON(w, http.StatusAccepted, resp)
}
