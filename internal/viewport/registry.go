// Package viewport tracks which page regions are on screen. It is an
// explicit capability fed by client-reported intersection events, so
// components that gate behavior on visibility need no ambient browser
// API and stay testable without a rendering surface.
package viewport

import "sync"

// Registry maps region names to visibility and notifies subscribers
// when a region's visibility changes.
type Registry struct {
	mu      sync.Mutex
	visible map[string]bool
	subs    map[string]map[int]func(bool)
	nextID  int
}

func NewRegistry() *Registry {
	return &Registry{
		visible: make(map[string]bool),
		subs:    make(map[string]map[int]func(bool)),
	}
}

// SetVisible records a region's visibility. Subscribers are notified
// only when the value actually changes.
func (r *Registry) SetVisible(region string, visible bool) {
	r.mu.Lock()
	if r.visible[region] == visible {
		r.mu.Unlock()
		return
	}
	r.visible[region] = visible

	fns := make([]func(bool), 0, len(r.subs[region]))
	for _, fn := range r.subs[region] {
		fns = append(fns, fn)
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(visible)
	}
}

// Visible reports the last known visibility of a region. Regions never
// reported are not visible.
func (r *Registry) Visible(region string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.visible[region]
}

// Subscribe registers fn for visibility changes of region and returns a
// cancel function. The current value is not replayed; callers that need
// it read Visible first.
func (r *Registry) Subscribe(region string, fn func(bool)) (cancel func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.subs[region] == nil {
		r.subs[region] = make(map[int]func(bool))
	}
	id := r.nextID
	r.nextID++
	r.subs[region][id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subs[region], id)
	}
}
