package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/jamesdawsonWD/scope-landing/internal/analytics"
	"github.com/jamesdawsonWD/scope-landing/internal/content"
	"github.com/jamesdawsonWD/scope-landing/internal/showcase"
	"github.com/jamesdawsonWD/scope-landing/internal/waitlist"
)

// fakeProvider returns a canned status or error for every contact.
type fakeProvider struct {
	status int
	err    error
}

func (f *fakeProvider) CreateContact(ctx context.Context, email string) (int, error) {
	return f.status, f.err
}

type testEnv struct {
	router  http.Handler
	engine  *showcase.Engine
	handler *Handlers
}

func newTestEnv(t *testing.T, provider waitlist.Provider, development bool) *testEnv {
	t.Helper()
	logger := zap.NewNop()
	ac := analytics.NewClient("", "", logger)
	engine := showcase.New(showcase.Config{MaxSessions: 4}, content.Default(), ac, logger)
	t.Cleanup(engine.Shutdown)

	h := NewHandlers(waitlist.NewService(provider, development, logger), engine, ac, content.Default(), logger)
	return &testEnv{router: h.Routes(), engine: engine, handler: h}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, &fakeProvider{status: http.StatusOK}, false)

	rec := env.do(t, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"status":"ok"}` {
		t.Errorf("body = %q", got)
	}
}

func TestWaitlistContract(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		provider    waitlist.Provider
		development bool
		wantStatus  int
		wantBody    string
	}{
		{
			name:       "empty email",
			body:       `{"email":""}`,
			provider:   &fakeProvider{status: http.StatusOK},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Email is required"}`,
		},
		{
			name:       "non-string email",
			body:       `{"email":123}`,
			provider:   &fakeProvider{status: http.StatusOK},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Email is required"}`,
		},
		{
			name:       "null email",
			body:       `{"email":null}`,
			provider:   &fakeProvider{status: http.StatusOK},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Email is required"}`,
		},
		{
			name:       "malformed email",
			body:       `{"email":"not-an-email"}`,
			provider:   &fakeProvider{status: http.StatusOK},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid email format"}`,
		},
		{
			name:       "provider accepts",
			body:       `{"email":"person@example.com"}`,
			provider:   &fakeProvider{status: http.StatusOK},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"message":"Successfully subscribed"}`,
		},
		{
			name:       "duplicate is success",
			body:       `{"email":"person@example.com"}`,
			provider:   &fakeProvider{status: http.StatusConflict},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"message":"Already subscribed"}`,
		},
		{
			name:       "provider rejects",
			body:       `{"email":"person@example.com"}`,
			provider:   &fakeProvider{status: http.StatusInternalServerError},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to subscribe"}`,
		},
		{
			name:       "unconfigured in production",
			body:       `{"email":"person@example.com"}`,
			provider:   nil,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Server configuration error"}`,
		},
		{
			name:        "unconfigured in development",
			body:        `{"email":"person@example.com"}`,
			provider:    nil,
			development: true,
			wantStatus:  http.StatusOK,
			wantBody:    `{"success":true,"message":"Email captured (dev mode)"}`,
		},
		{
			name:       "invalid json",
			body:       `{"email":`,
			provider:   &fakeProvider{status: http.StatusOK},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.provider, tt.development)

			rec := env.do(t, http.MethodPost, "/api/waitlist", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tt.wantBody {
				t.Errorf("body = %q, want %q", got, tt.wantBody)
			}
		})
	}
}

func TestEventsIngest(t *testing.T) {
	env := newTestEnv(t, &fakeProvider{status: http.StatusOK}, false)

	body := `{"distinct_id":"visitor-1","events":[` +
		`{"event":"cta_clicked","properties":{"cta_name":"join_waitlist"}},` +
		`{"event":"made_up_event"},` +
		`{"event":"web_vital","properties":{"metric_name":"LCP","metric_value":1800}},` +
		`{"event":"scroll_depth_reached","properties":{"depth_percentage":50}}]}`
	rec := env.do(t, http.MethodPost, "/api/events", body)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", rec.Code)
	}

	var resp ingestResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Accepted != 3 || resp.Dropped != 1 {
		t.Errorf("accepted=%d dropped=%d, want 3/1", resp.Accepted, resp.Dropped)
	}
}

func TestEventsIngestRejectsEmptyAndOversized(t *testing.T) {
	env := newTestEnv(t, &fakeProvider{status: http.StatusOK}, false)

	rec := env.do(t, http.MethodPost, "/api/events", `{"events":[]}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty batch: status = %d, want 400", rec.Code)
	}

	var sb strings.Builder
	sb.WriteString(`{"events":[`)
	for i := 0; i < maxIngestEvents+1; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(`{"event":"cta_clicked"}`)
	}
	sb.WriteString(`]}`)
	rec = env.do(t, http.MethodPost, "/api/events", sb.String())
	if rec.Code != http.StatusBadRequest {
		t.Errorf("oversized batch: status = %d, want 400", rec.Code)
	}
}

func TestContentReturnsCatalog(t *testing.T) {
	env := newTestEnv(t, &fakeProvider{status: http.StatusOK}, false)

	rec := env.do(t, http.MethodGet, "/api/content", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var cat content.Catalog
	if err := json.Unmarshal(rec.Body.Bytes(), &cat); err != nil {
		t.Fatalf("decode catalog: %v", err)
	}
	if len(cat.Models) != 6 {
		t.Errorf("models = %d, want 6", len(cat.Models))
	}
	if len(cat.UseCases) != 6 {
		t.Errorf("use cases = %d, want 6", len(cat.UseCases))
	}
}

func TestShowcaseSessionLifecycle(t *testing.T) {
	env := newTestEnv(t, &fakeProvider{status: http.StatusOK}, false)

	rec := env.do(t, http.MethodPost, "/api/showcase/sessions", `{"distinct_id":"visitor-1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", rec.Code, rec.Body.String())
	}
	var st showcase.SessionState
	if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if st.ID == "" || len(st.Sections) != 3 {
		t.Fatalf("session = %+v, want ID and 3 sections", st)
	}
	if st.DistinctID != "visitor-1" {
		t.Errorf("distinctId = %q, want visitor-1", st.DistinctID)
	}

	base := "/api/showcase/sessions/" + st.ID

	rec = env.do(t, http.MethodPost, base+"/sections/models/pause", `{"paused":true}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("pause: status = %d", rec.Code)
	}

	rec = env.do(t, http.MethodPost, base+"/sections/models/navigate", `{"op":"next"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("navigate: status = %d, body %s", rec.Code, rec.Body.String())
	}
	var sec showcase.SectionState
	if err := json.Unmarshal(rec.Body.Bytes(), &sec); err != nil {
		t.Fatalf("decode section: %v", err)
	}
	if sec.Carousel.ActiveIndex != 1 {
		t.Errorf("activeIndex = %d, want 1", sec.Carousel.ActiveIndex)
	}

	rec = env.do(t, http.MethodPost, base+"/sections/models/visibility", `{"visible":true}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("visibility: status = %d", rec.Code)
	}

	rec = env.do(t, http.MethodPost, base+"/scroll", `{"percent":60}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("scroll: status = %d", rec.Code)
	}
	var sr scrollResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &sr); err != nil {
		t.Fatalf("decode scroll: %v", err)
	}
	if len(sr.Fired) != 2 { // 25 and 50
		t.Errorf("fired = %v, want [25 50]", sr.Fired)
	}

	rec = env.do(t, http.MethodDelete, base, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: status = %d", rec.Code)
	}

	rec = env.do(t, http.MethodGet, base, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete: status = %d, want 404", rec.Code)
	}
}

func TestShowcaseUnknownSessionAndSection(t *testing.T) {
	env := newTestEnv(t, &fakeProvider{status: http.StatusOK}, false)

	rec := env.do(t, http.MethodPost, "/api/showcase/sessions/nope/sections/models/navigate", `{"op":"next"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown session: status = %d, want 404", rec.Code)
	}

	created := env.do(t, http.MethodPost, "/api/showcase/sessions", "")
	var st showcase.SessionState
	if err := json.Unmarshal(created.Body.Bytes(), &st); err != nil {
		t.Fatalf("decode session: %v", err)
	}

	rec = env.do(t, http.MethodPost, "/api/showcase/sessions/"+st.ID+"/sections/hero/navigate", `{"op":"next"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown section: status = %d, want 404", rec.Code)
	}
}

func TestShowcaseCapacityReturns503(t *testing.T) {
	env := newTestEnv(t, &fakeProvider{status: http.StatusOK}, false)

	for i := 0; i < 4; i++ {
		rec := env.do(t, http.MethodPost, "/api/showcase/sessions", "")
		if rec.Code != http.StatusCreated {
			t.Fatalf("create %d: status = %d", i, rec.Code)
		}
	}
	rec := env.do(t, http.MethodPost, "/api/showcase/sessions", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("over capacity: status = %d, want 503", rec.Code)
	}
}
