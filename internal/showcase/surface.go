package showcase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// videoSurface is the server-side mirror of a client video element. It
// tracks load/playback state so session snapshots can report what each
// card should be doing; the client applies the same transitions to the
// real element.
type videoSurface struct {
	src    string
	logger *zap.Logger

	mu      sync.Mutex
	loaded  bool
	playing bool
}

func newVideoSurface(src string, logger *zap.Logger) *videoSurface {
	return &videoSurface{src: src, logger: logger}
}

func (v *videoSurface) Load(ctx context.Context, src string) error {
	v.mu.Lock()
	v.loaded = true
	v.mu.Unlock()
	v.logger.Debug("media source attached", zap.String("src", src))
	return nil
}

func (v *videoSurface) Play(ctx context.Context) error {
	v.mu.Lock()
	v.playing = true
	v.mu.Unlock()
	return nil
}

func (v *videoSurface) Pause() {
	v.mu.Lock()
	v.playing = false
	v.mu.Unlock()
}

func (v *videoSurface) Seek(to time.Duration) {}

func (v *videoSurface) snapshot() (loaded, playing bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loaded, v.playing
}
