// Package media gates playback of an item's video on the combination of
// carousel activity and section visibility, so off-screen or inactive
// media consumes no decoding or network resources.
package media

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jamesdawsonWD/scope-landing/internal/metrics"
)

// LoadState tracks lazy attachment of the media source.
type LoadState int

const (
	Unloaded LoadState = iota
	Loading
	Ready
)

// Surface is the playback mechanism the Player drives. Real surfaces
// wrap a client-side video element; tests use MockSurface.
type Surface interface {
	// Load attaches and fetches the source. Called at most once per
	// player, on first need.
	Load(ctx context.Context, src string) error
	// Play starts playback. Best-effort: the runtime may reject
	// autoplay, which is not an error the caller can act on.
	Play(ctx context.Context) error
	Pause()
	// Seek repositions playback, in particular back to the start when
	// an item loses its active slot.
	Seek(to time.Duration)
}

// Player derives shouldPlay from two inputs it is given: whether its
// item is the active carousel slide and whether its section is on
// screen. It holds no other state machine; both inputs default false.
type Player struct {
	src     string
	surface Surface
	logger  *zap.Logger

	mu      sync.Mutex
	active  bool
	visible bool
	state   LoadState
	playing bool
}

func NewPlayer(src string, surface Surface, logger *zap.Logger) *Player {
	return &Player{src: src, surface: surface, logger: logger}
}

// SetActive updates the "is the active slide" input.
func (p *Player) SetActive(ctx context.Context, active bool) {
	p.mu.Lock()
	if p.active == active {
		p.mu.Unlock()
		return
	}
	p.active = active
	p.reconcileLocked(ctx)
}

// SetVisible updates the "is the section on screen" input.
func (p *Player) SetVisible(ctx context.Context, visible bool) {
	p.mu.Lock()
	if p.visible == visible {
		p.mu.Unlock()
		return
	}
	p.visible = visible
	p.reconcileLocked(ctx)
}

// ShouldPlay reports the gate: active AND visible.
func (p *Player) ShouldPlay() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active && p.visible
}

// State reports the lazy-load state.
func (p *Player) State() LoadState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// reconcileLocked applies the current gate. Called with p.mu held;
// releases it before touching the surface so surface implementations
// may call back into the player.
func (p *Player) reconcileLocked(ctx context.Context) {
	shouldPlay := p.active && p.visible
	wasPlaying := p.playing
	needLoad := shouldPlay && p.state == Unloaded
	if needLoad {
		p.state = Loading
	}
	resetPosition := !shouldPlay && !p.active && p.state == Ready
	p.playing = shouldPlay
	p.mu.Unlock()

	if shouldPlay {
		if needLoad {
			if err := p.surface.Load(ctx, p.src); err != nil {
				// Next visibility transition retries naturally.
				p.logger.Debug("media load failed", zap.String("src", p.src), zap.Error(err))
				p.mu.Lock()
				p.state = Unloaded
				p.playing = false
				p.mu.Unlock()
				return
			}
			metrics.MediaLoadsTotal.Inc()
			p.mu.Lock()
			p.state = Ready
			p.mu.Unlock()
		}
		if err := p.surface.Play(ctx); err != nil {
			// Autoplay rejection is expected and swallowed.
			p.logger.Debug("playback start rejected", zap.String("src", p.src), zap.Error(err))
			metrics.MediaPlayFailuresTotal.Inc()
		}
		return
	}

	if wasPlaying {
		p.surface.Pause()
	}
	if resetPosition {
		// Inactive (not merely hidden): next activation starts fresh.
		// Hidden-but-active keeps its position and resumes in place.
		p.surface.Seek(0)
	}
}
