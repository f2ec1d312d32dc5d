package showcase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jamesdawsonWD/scope-landing/internal/analytics"
	"github.com/jamesdawsonWD/scope-landing/internal/carousel"
	"github.com/jamesdawsonWD/scope-landing/internal/content"
	"github.com/jamesdawsonWD/scope-landing/internal/media"
	"github.com/jamesdawsonWD/scope-landing/internal/viewport"
)

// Section names, matching the landing page section ids.
const (
	SectionModels    = "models"
	SectionUseCases  = "use-cases"
	SectionWorkflows = "workflows"
)

// Session owns the interactive state of one page load: a carousel
// controller and a row of gated media players per showcase section, a
// viewport registry fed by client intersection reports, and a page
// tracker for analytics dedup.
type Session struct {
	ID        string
	CreatedAt time.Time

	logger   *zap.Logger
	viewport *viewport.Registry
	tracker  *analytics.PageTracker
	sections map[string]*section

	mu       sync.Mutex
	lastSeen time.Time

	stopOnce sync.Once
}

type section struct {
	name      string
	items     []string
	ctrl      *carousel.Controller
	players   []*media.Player
	surfaces  []*videoSurface
	cancelVis func()
}

func newSession(id string, catalog content.Catalog, tracker *analytics.PageTracker, logger *zap.Logger) *Session {
	now := time.Now()
	s := &Session{
		ID:        id,
		CreatedAt: now,
		logger:    logger,
		viewport:  viewport.NewRegistry(),
		tracker:   tracker,
		sections:  make(map[string]*section),
		lastSeen:  now,
	}

	models := catalog.Models
	s.addSection(SectionModels, catalog.ModelNames(), videosOf(len(models), func(i int) string { return models[i].Video }),
		content.ModelsInterval, func(idx int) {
			tracker.Track(analytics.ModelCardViewed(models[idx].Name, idx))
		})

	useCases := catalog.UseCases
	s.addSection(SectionUseCases, catalog.UseCaseIDs(), videosOf(len(useCases), func(i int) string { return useCases[i].Video }),
		content.UseCasesInterval, func(idx int) {
			tracker.Track(analytics.UseCaseViewed(useCases[idx].ID, useCases[idx].Title))
		})

	workflows := catalog.Workflows
	s.addSection(SectionWorkflows, catalog.WorkflowIDs(), videosOf(len(workflows), func(i int) string { return workflows[i].Video }),
		content.WorkflowsInterval, func(idx int) {
			tracker.Track(analytics.WorkflowViewed(workflows[idx].ID, workflows[idx].Title))
		})

	return s
}

func videosOf(n int, video func(int) string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = video(i)
	}
	return out
}

// addSection wires one carousel to its row of players: index changes
// flip the players' active flags, viewport changes flip their visible
// flags, and every featured-card change is reported through onView.
func (s *Session) addSection(name string, items, videos []string, interval time.Duration, onView func(idx int)) {
	logger := s.logger.With(zap.String("section", name))

	sec := &section{name: name, items: items}
	sec.surfaces = make([]*videoSurface, len(items))
	sec.players = make([]*media.Player, len(items))
	for i := range items {
		sec.surfaces[i] = newVideoSurface(videos[i], logger)
		sec.players[i] = media.NewPlayer(videos[i], sec.surfaces[i], logger)
	}

	ctrl, err := carousel.New(carousel.Config{
		Items:    items,
		Interval: interval,
		OnChange: func(ch carousel.Change) {
			for i, p := range sec.players {
				p.SetActive(context.Background(), i == ch.Index)
			}
			onView(ch.Index)
		},
	}, logger)
	if err != nil {
		// Sections with an empty catalog are a build error, not a
		// runtime condition.
		logger.Error("section skipped", zap.Error(err))
		return
	}
	sec.ctrl = ctrl

	sec.cancelVis = s.viewport.Subscribe(name, func(visible bool) {
		for _, p := range sec.players {
			p.SetVisible(context.Background(), visible)
		}
		if visible {
			s.tracker.SectionViewed(analytics.Section(name))
		}
	})

	// The first item is featured from the start.
	sec.players[0].SetActive(context.Background(), true)
	ctrl.Start()

	s.sections[name] = sec
}

// Touch records activity for idle reaping.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

// IdleFor reports how long the session has gone without activity.
func (s *Session) IdleFor() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.lastSeen)
}

// Stop tears the session down: every controller's ticker is cancelled
// and viewport subscriptions are released. Idempotent.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		for _, sec := range s.sections {
			if sec.ctrl != nil {
				sec.ctrl.Stop()
			}
			if sec.cancelVis != nil {
				sec.cancelVis()
			}
		}
	})
}

func (s *Session) section(name string) (*section, bool) {
	sec, ok := s.sections[name]
	return sec, ok
}
