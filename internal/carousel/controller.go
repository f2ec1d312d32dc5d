package carousel

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jamesdawsonWD/scope-landing/internal/metrics"
)

// Cause records what triggered an index change.
type Cause string

const (
	CauseAuto   Cause = "auto"
	CauseManual Cause = "manual"
	CauseScroll Cause = "scroll"
)

const (
	DefaultInterval = 5 * time.Second
	DefaultTick     = 50 * time.Millisecond

	progressEpsilon = 1e-9
)

// Change is delivered to OnChange whenever the featured item changes.
type Change struct {
	Index int
	Item  string
	Cause Cause
}

// Snapshot is a point-in-time copy of controller state.
type Snapshot struct {
	ActiveIndex int     `json:"activeIndex"`
	ActiveItem  string  `json:"activeItem"`
	Progress    float64 `json:"progress"`
	Paused      bool    `json:"paused"`
	Count       int     `json:"count"`
}

type Config struct {
	Items      []string
	Interval   time.Duration // full auto-advance cycle
	Tick       time.Duration
	StartIndex int
	OnChange   func(Change)
}

// Controller drives a "currently featured item" selection over a fixed
// item list. A single ticker accrues progress and fires auto-advance;
// manual navigation goes through the same state under the same mutex,
// so tick-driven and user-driven writes are serialized.
type Controller struct {
	cfg    Config
	logger *zap.Logger

	mu       sync.Mutex
	active   int
	progress float64 // percent of the interval elapsed, [0,100)
	paused   bool
	stopped  bool

	started  bool
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a stopped controller. Call Start to begin auto-advancing.
func New(cfg Config, logger *zap.Logger) (*Controller, error) {
	if len(cfg.Items) == 0 {
		return nil, fmt.Errorf("carousel: at least one item required")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Tick <= 0 {
		cfg.Tick = DefaultTick
	}
	if cfg.StartIndex < 0 || cfg.StartIndex >= len(cfg.Items) {
		cfg.StartIndex = 0
	}
	return &Controller{
		cfg:    cfg,
		logger: logger,
		active: cfg.StartIndex,
		done:   make(chan struct{}),
	}, nil
}

// Start launches the tick loop. Starting twice is a no-op.
func (c *Controller) Start() {
	c.mu.Lock()
	if c.started || c.stopped {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.mu.Unlock()

	metrics.ActiveCarousels.Inc()
	go c.run()
}

// Stop cancels the ticker. Idempotent; safe on every exit path. After
// Stop returns, no further state mutation occurs even if a tick that
// was already scheduled fires.
func (c *Controller) Stop() {
	c.stopOnce.Do(func() {
		c.mu.Lock()
		c.stopped = true
		wasStarted := c.started
		c.mu.Unlock()

		close(c.done)
		if wasStarted {
			metrics.ActiveCarousels.Dec()
		}
		c.logger.Debug("carousel stopped", zap.Int("items", len(c.cfg.Items)))
	})
}

func (c *Controller) run() {
	ticker := time.NewTicker(c.cfg.Tick)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.tick(c.cfg.Tick)
		}
	}
}

// tick accrues progress and advances when a full interval has elapsed.
// It reads current state under the mutex rather than anything captured
// at timer-creation time.
func (c *Controller) tick(step time.Duration) {
	var change *Change

	c.mu.Lock()
	if c.stopped || c.paused {
		c.mu.Unlock()
		return
	}
	c.progress += 100 * float64(step) / float64(c.cfg.Interval)
	// Epsilon absorbs float summation error so a full interval of ticks
	// always lands the advance on the final tick, not one late.
	if c.progress+progressEpsilon >= 100 {
		c.active = (c.active + 1) % len(c.cfg.Items)
		c.progress = 0
		change = &Change{Index: c.active, Item: c.cfg.Items[c.active], Cause: CauseAuto}
	}
	c.mu.Unlock()

	if change != nil {
		c.notify(*change)
	}
}

// GoTo makes index the featured item and resets progress. Out-of-range
// input is a programming error on the caller's side; it is clamped
// rather than surfaced.
func (c *Controller) GoTo(index int, cause Cause) {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(c.cfg.Items) {
		index = len(c.cfg.Items) - 1
	}
	c.active = index
	c.progress = 0
	change := Change{Index: c.active, Item: c.cfg.Items[c.active], Cause: cause}
	c.mu.Unlock()

	c.notify(change)
}

// Next advances to the following item, wrapping at the end.
func (c *Controller) Next(cause Cause) {
	c.step(1, cause)
}

// Previous moves to the preceding item, wrapping at zero.
func (c *Controller) Previous(cause Cause) {
	c.step(-1, cause)
}

func (c *Controller) step(delta int, cause Cause) {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	n := len(c.cfg.Items)
	c.active = (c.active + delta + n) % n
	c.progress = 0
	change := Change{Index: c.active, Item: c.cfg.Items[c.active], Cause: cause}
	c.mu.Unlock()

	c.notify(change)
}

// SetPaused freezes or resumes progress accrual. Progress is preserved
// across a pause; resuming continues from where it left off.
func (c *Controller) SetPaused(paused bool) {
	c.mu.Lock()
	c.paused = paused
	c.mu.Unlock()
}

// ReconcileScroll maps a settled scroll offset to the nearest item index
// and navigates there if it differs from the active index, keeping state
// consistent with what the user is actually looking at. Returns the
// resulting active index.
func (c *Controller) ReconcileScroll(offset, itemWidth float64) int {
	if itemWidth <= 0 {
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.active
	}
	index := int(offset/itemWidth + 0.5)

	c.mu.Lock()
	n := len(c.cfg.Items)
	if index < 0 {
		index = 0
	}
	if index >= n {
		index = n - 1
	}
	if index == c.active || c.stopped {
		active := c.active
		c.mu.Unlock()
		return active
	}
	c.mu.Unlock()

	c.GoTo(index, CauseScroll)
	return index
}

// State returns a snapshot of the controller.
func (c *Controller) State() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		ActiveIndex: c.active,
		ActiveItem:  c.cfg.Items[c.active],
		Progress:    c.progress,
		Paused:      c.paused,
		Count:       len(c.cfg.Items),
	}
}

func (c *Controller) notify(change Change) {
	metrics.CarouselAdvancesTotal.WithLabelValues(string(change.Cause)).Inc()
	if c.cfg.OnChange != nil {
		c.cfg.OnChange(change)
	}
}
