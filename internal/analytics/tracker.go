package analytics

import (
	"sync"

	"github.com/google/uuid"
)

// ScrollMilestones are the depth percentages reported at most once per
// page load.
var ScrollMilestones = []int{25, 50, 75, 90, 100}

// PageTracker scopes captures to one page load: it stamps a distinct ID
// on every event and enforces the once-per-load rules for section views
// and scroll-depth milestones.
type PageTracker struct {
	client     *Client
	distinctID string

	mu       sync.Mutex
	sections map[Section]bool
	depths   map[int]bool
}

// NewPageTracker creates a tracker for one page load. An empty
// distinctID gets a generated anonymous ID.
func NewPageTracker(client *Client, distinctID string) *PageTracker {
	if distinctID == "" {
		distinctID = uuid.New().String()
	}
	return &PageTracker{
		client:     client,
		distinctID: distinctID,
		sections:   make(map[Section]bool),
		depths:     make(map[int]bool),
	}
}

func (t *PageTracker) DistinctID() string {
	return t.distinctID
}

// Track stamps the page's distinct ID and forwards to the client.
func (t *PageTracker) Track(ev Event) {
	if ev.DistinctID == "" {
		ev.DistinctID = t.distinctID
	}
	t.client.Capture(ev)
}

// SectionViewed fires section_viewed on the first sighting of a section
// in this page load. Returns whether an event was emitted.
func (t *PageTracker) SectionViewed(section Section) bool {
	t.mu.Lock()
	if t.sections[section] {
		t.mu.Unlock()
		return false
	}
	t.sections[section] = true
	t.mu.Unlock()

	t.Track(SectionViewed(section))
	return true
}

// ReportScroll fires scroll_depth_reached for every milestone newly
// crossed by percent, each at most once per page load. Returns the
// milestones fired, in ascending order.
func (t *PageTracker) ReportScroll(percent int) []int {
	var fired []int
	t.mu.Lock()
	for _, m := range ScrollMilestones {
		if percent >= m && !t.depths[m] {
			t.depths[m] = true
			fired = append(fired, m)
		}
	}
	t.mu.Unlock()

	for _, m := range fired {
		t.Track(ScrollDepthReached(m))
	}
	return fired
}
