// Package showcase runs server-driven sessions of the landing page's
// interactive sections: the model browser, use-case selector, and
// workflow gallery carousels, each with visibility-gated media. One
// session corresponds to one page load; sessions are registered by ID
// and reaped when idle.
package showcase

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jamesdawsonWD/scope-landing/internal/analytics"
	"github.com/jamesdawsonWD/scope-landing/internal/carousel"
	"github.com/jamesdawsonWD/scope-landing/internal/content"
	"github.com/jamesdawsonWD/scope-landing/internal/metrics"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSectionNotFound = errors.New("section not found")
	ErrCapacity        = errors.New("max sessions reached")
)

const reapEvery = 5 * time.Second

type Config struct {
	MaxSessions  int
	IdleTimeout  time.Duration
	ReapInterval time.Duration
}

// Engine is the session registry.
type Engine struct {
	cfg       Config
	catalog   content.Catalog
	analytics *analytics.Client
	logger    *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*Session

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates an engine and starts its idle reaper.
func New(cfg Config, catalog content.Catalog, ac *analytics.Client, logger *zap.Logger) *Engine {
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = 500
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = 2 * time.Minute
	}
	if cfg.ReapInterval <= 0 {
		cfg.ReapInterval = reapEvery
	}
	e := &Engine{
		cfg:       cfg,
		catalog:   catalog,
		analytics: ac,
		logger:    logger,
		sessions:  make(map[string]*Session),
		done:      make(chan struct{}),
	}
	e.wg.Add(1)
	go e.reapLoop()
	return e
}

// SessionCount returns the current number of active sessions.
func (e *Engine) SessionCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.sessions)
}

// CreateSession registers a new session for one page load. distinctID
// ties its analytics to the visitor; empty gets an anonymous ID.
func (e *Engine) CreateSession(distinctID string) (*Session, error) {
	// Check and insert under one lock so concurrent creates cannot
	// overshoot the cap.
	e.mu.Lock()
	if count := len(e.sessions); count >= e.cfg.MaxSessions {
		e.mu.Unlock()
		e.logger.Warn("session cap reached", zap.Int("current", count), zap.Int("max", e.cfg.MaxSessions))
		metrics.SessionsRejectedTotal.Inc()
		return nil, ErrCapacity
	}

	id := uuid.New().String()
	tracker := analytics.NewPageTracker(e.analytics, distinctID)
	sess := newSession(id, e.catalog, tracker, e.logger.With(zap.String("session", id)))
	e.sessions[id] = sess
	e.mu.Unlock()

	metrics.SessionsCreatedTotal.Inc()
	metrics.ActiveSessions.Inc()
	e.logger.Info("showcase session created", zap.String("session", id))
	return sess, nil
}

func (e *Engine) session(id string) (*Session, error) {
	e.mu.RLock()
	sess, ok := e.sessions[id]
	e.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.Touch()
	return sess, nil
}

// NavigateOp selects a manual navigation operation.
type NavigateOp string

const (
	OpNext     NavigateOp = "next"
	OpPrevious NavigateOp = "previous"
	OpGoTo     NavigateOp = "goto"
	OpScroll   NavigateOp = "scroll"
)

// NavigateRequest is a client navigation of one section's carousel.
type NavigateRequest struct {
	Op        NavigateOp `json:"op"`
	Index     int        `json:"index,omitempty"`
	Offset    float64    `json:"offset,omitempty"`
	ItemWidth float64    `json:"itemWidth,omitempty"`
}

// Navigate applies a manual navigation and returns the section state.
func (e *Engine) Navigate(sessionID, sectionName string, req NavigateRequest) (SectionState, error) {
	sess, err := e.session(sessionID)
	if err != nil {
		return SectionState{}, err
	}
	sec, ok := sess.section(sectionName)
	if !ok {
		return SectionState{}, ErrSectionNotFound
	}

	switch req.Op {
	case OpNext:
		sec.ctrl.Next(carousel.CauseManual)
	case OpPrevious:
		sec.ctrl.Previous(carousel.CauseManual)
	case OpGoTo:
		sec.ctrl.GoTo(req.Index, carousel.CauseManual)
	case OpScroll:
		sec.ctrl.ReconcileScroll(req.Offset, req.ItemWidth)
	default:
		return SectionState{}, errors.New("unknown navigate op")
	}
	return sectionState(sess, sec), nil
}

// SetPaused freezes or resumes a section's auto-advance. Hover enter
// and leave map here.
func (e *Engine) SetPaused(sessionID, sectionName string, paused bool) error {
	sess, err := e.session(sessionID)
	if err != nil {
		return err
	}
	sec, ok := sess.section(sectionName)
	if !ok {
		return ErrSectionNotFound
	}
	sec.ctrl.SetPaused(paused)
	return nil
}

// SetVisibility feeds a client intersection report into the session's
// viewport registry; players and section-viewed analytics both hang off
// of it.
func (e *Engine) SetVisibility(sessionID, region string, visible bool) error {
	sess, err := e.session(sessionID)
	if err != nil {
		return err
	}
	sess.viewport.SetVisible(region, visible)
	return nil
}

// ReportScroll records page scroll depth, firing each milestone at most
// once per session. Returns the milestones fired.
func (e *Engine) ReportScroll(sessionID string, percent int) ([]int, error) {
	sess, err := e.session(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.tracker.ReportScroll(percent), nil
}

// MediaState mirrors one card's playback gate.
type MediaState struct {
	Item       string `json:"item"`
	ShouldPlay bool   `json:"shouldPlay"`
	Loaded     bool   `json:"loaded"`
}

// SectionState is a point-in-time view of one section.
type SectionState struct {
	Name     string            `json:"name"`
	Carousel carousel.Snapshot `json:"carousel"`
	Visible  bool              `json:"visible"`
	Media    []MediaState      `json:"media"`
}

// SessionState is the full snapshot returned to the client.
type SessionState struct {
	ID         string         `json:"id"`
	DistinctID string         `json:"distinctId"`
	CreatedAt  time.Time      `json:"createdAt"`
	Sections   []SectionState `json:"sections"`
}

// SessionState returns a snapshot of every section in the session.
func (e *Engine) SessionState(sessionID string) (SessionState, error) {
	sess, err := e.session(sessionID)
	if err != nil {
		return SessionState{}, err
	}

	names := []string{SectionModels, SectionUseCases, SectionWorkflows}
	out := SessionState{
		ID:         sess.ID,
		DistinctID: sess.tracker.DistinctID(),
		CreatedAt:  sess.CreatedAt,
	}
	for _, name := range names {
		sec, ok := sess.section(name)
		if !ok {
			continue
		}
		out.Sections = append(out.Sections, sectionState(sess, sec))
	}
	return out, nil
}

func sectionState(sess *Session, sec *section) SectionState {
	st := SectionState{
		Name:     sec.name,
		Carousel: sec.ctrl.State(),
		Visible:  sess.viewport.Visible(sec.name),
	}
	for i, item := range sec.items {
		loaded, _ := sec.surfaces[i].snapshot()
		st.Media = append(st.Media, MediaState{
			Item:       item,
			ShouldPlay: sec.players[i].ShouldPlay(),
			Loaded:     loaded,
		})
	}
	return st
}

// DeleteSession tears down a session and removes it from the registry.
func (e *Engine) DeleteSession(id string) {
	e.mu.Lock()
	sess, ok := e.sessions[id]
	if ok {
		delete(e.sessions, id)
	}
	e.mu.Unlock()

	if ok {
		sess.Stop()
		metrics.ActiveSessions.Dec()
		e.logger.Info("showcase session deleted", zap.String("session", id))
	}
}

// Shutdown stops the reaper and every session.
func (e *Engine) Shutdown() {
	e.stopOnce.Do(func() {
		close(e.done)
	})
	e.wg.Wait()

	e.mu.Lock()
	sessions := make([]*Session, 0, len(e.sessions))
	for _, sess := range e.sessions {
		sessions = append(sessions, sess)
	}
	e.sessions = make(map[string]*Session)
	e.mu.Unlock()

	for _, sess := range sessions {
		sess.Stop()
	}
	metrics.ActiveSessions.Set(0)
	e.logger.Info("showcase engine shutdown complete")
}

// reapLoop deletes sessions idle past the timeout. Pages that navigate
// away without a DELETE still release their timers.
func (e *Engine) reapLoop() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.cfg.ReapInterval)
	defer ticker.Stop()
	for {
		select {
		case <-e.done:
			return
		case <-ticker.C:
			e.reapIdle()
		}
	}
}

func (e *Engine) reapIdle() {
	e.mu.RLock()
	var idle []string
	for id, sess := range e.sessions {
		if sess.IdleFor() > e.cfg.IdleTimeout {
			idle = append(idle, id)
		}
	}
	e.mu.RUnlock()

	for _, id := range idle {
		e.logger.Info("reaping idle session", zap.String("session", id))
		metrics.SessionsReapedTotal.Inc()
		e.DeleteSession(id)
	}
}
