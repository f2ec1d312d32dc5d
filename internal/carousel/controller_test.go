package carousel

import (
	"math"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestController(t *testing.T, items int, interval time.Duration) *Controller {
	t.Helper()
	names := make([]string, items)
	for i := range names {
		names[i] = string(rune('a' + i))
	}
	c, err := New(Config{Items: names, Interval: interval}, zap.NewNop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c
}

func TestNewRequiresItems(t *testing.T) {
	if _, err := New(Config{}, zap.NewNop()); err == nil {
		t.Fatal("expected error for empty item list")
	}
}

func TestNewClampsStartIndex(t *testing.T) {
	c, err := New(Config{Items: []string{"a", "b"}, StartIndex: 7}, zap.NewNop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := c.State().ActiveIndex; got != 0 {
		t.Errorf("expected start index 0, got %d", got)
	}
}

func TestNextWrapsCircularly(t *testing.T) {
	const items = 4
	c := newTestController(t, items, DefaultInterval)
	for n := 1; n <= 10; n++ {
		c.Next(CauseManual)
		want := n % items
		if got := c.State().ActiveIndex; got != want {
			t.Fatalf("after %d Next calls: index %d, want %d", n, got, want)
		}
	}
}

func TestPreviousWrapsAtZero(t *testing.T) {
	const items = 4
	c := newTestController(t, items, DefaultInterval)
	for n := 1; n <= 10; n++ {
		c.Previous(CauseManual)
		want := ((-n % items) + items) % items
		if got := c.State().ActiveIndex; got != want {
			t.Fatalf("after %d Previous calls: index %d, want %d", n, got, want)
		}
	}
}

func TestProgressResetsOnEveryNavigation(t *testing.T) {
	c := newTestController(t, 3, DefaultInterval)

	ops := []func(){
		func() { c.GoTo(2, CauseManual) },
		func() { c.Next(CauseManual) },
		func() { c.Previous(CauseManual) },
		func() { c.GoTo(1, CauseScroll) },
	}
	for i, op := range ops {
		// Accrue partial progress first.
		for j := 0; j < 17; j++ {
			c.tick(DefaultTick)
		}
		op()
		if got := c.State().Progress; got != 0 {
			t.Errorf("op %d: progress %v after navigation, want 0", i, got)
		}
	}
}

func TestGoToClampsOutOfRange(t *testing.T) {
	c := newTestController(t, 3, DefaultInterval)
	c.GoTo(99, CauseManual)
	if got := c.State().ActiveIndex; got != 2 {
		t.Errorf("index %d after GoTo(99), want 2", got)
	}
	c.GoTo(-5, CauseManual)
	if got := c.State().ActiveIndex; got != 0 {
		t.Errorf("index %d after GoTo(-5), want 0", got)
	}
}

func TestPauseFreezesProgress(t *testing.T) {
	c := newTestController(t, 3, DefaultInterval)

	for i := 0; i < 30; i++ {
		c.tick(DefaultTick)
	}
	frozen := c.State().Progress
	if frozen == 0 {
		t.Fatal("expected nonzero progress before pausing")
	}

	c.SetPaused(true)
	for i := 0; i < 500; i++ {
		c.tick(DefaultTick)
	}
	st := c.State()
	if st.Progress != frozen {
		t.Errorf("progress moved while paused: %v, want %v", st.Progress, frozen)
	}
	if st.ActiveIndex != 0 {
		t.Errorf("index moved while paused: %d, want 0", st.ActiveIndex)
	}

	// Resuming continues from the frozen value.
	c.SetPaused(false)
	c.tick(DefaultTick)
	if got := c.State().Progress; got <= frozen {
		t.Errorf("progress %v after resume, want > %v", got, frozen)
	}
}

func TestAutoAdvanceFiresExactlyOncePerInterval(t *testing.T) {
	for _, interval := range []time.Duration{5 * time.Second, 6 * time.Second} {
		c := newTestController(t, 3, interval)

		full := int(math.Ceil(float64(interval) / float64(DefaultTick)))
		for i := 0; i < full-1; i++ {
			c.tick(DefaultTick)
		}
		if got := c.State().ActiveIndex; got != 0 {
			t.Fatalf("interval %v: advanced after %d ticks, want none", interval, full-1)
		}

		c.tick(DefaultTick)
		st := c.State()
		if st.ActiveIndex != 1 {
			t.Errorf("interval %v: index %d after full interval, want 1", interval, st.ActiveIndex)
		}
		if st.Progress != 0 {
			t.Errorf("interval %v: progress %v immediately after advance, want 0", interval, st.Progress)
		}
	}
}

func TestReconcileScrollSettlesToNearestIndex(t *testing.T) {
	c := newTestController(t, 6, DefaultInterval)

	cases := []struct {
		offset, width float64
		want          int
	}{
		{0, 520, 0},
		{510, 520, 1},
		{1040, 520, 2},
		{250, 520, 0},
		{270, 520, 1},
		{9999, 520, 5}, // past the end, clamp
		{-40, 520, 0},
	}
	for _, tc := range cases {
		got := c.ReconcileScroll(tc.offset, tc.width)
		if got != tc.want {
			t.Errorf("ReconcileScroll(%v, %v) = %d, want %d", tc.offset, tc.width, got, tc.want)
		}
		if idx := c.State().ActiveIndex; idx != tc.want {
			t.Errorf("active index %d after settle at offset %v, want %d", idx, tc.offset, tc.want)
		}
	}
}

func TestReconcileScrollSameIndexKeepsProgress(t *testing.T) {
	c := newTestController(t, 3, DefaultInterval)
	for i := 0; i < 10; i++ {
		c.tick(DefaultTick)
	}
	before := c.State().Progress

	c.ReconcileScroll(10, 520) // rounds to the already-active index
	if got := c.State().Progress; got != before {
		t.Errorf("progress %v after no-op settle, want %v", got, before)
	}
}

func TestOnChangeDeliversCause(t *testing.T) {
	var mu sync.Mutex
	var causes []Cause
	items := []string{"a", "b", "c"}
	c, err := New(Config{
		Items:    items,
		Interval: DefaultInterval,
		OnChange: func(ch Change) {
			mu.Lock()
			causes = append(causes, ch.Cause)
			mu.Unlock()
		},
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	c.Next(CauseManual)
	c.ReconcileScroll(520, 520)
	for i := 0; i < 100; i++ {
		c.tick(DefaultTick)
	}

	mu.Lock()
	defer mu.Unlock()
	want := []Cause{CauseManual, CauseScroll, CauseAuto}
	if len(causes) != len(want) {
		t.Fatalf("got %d changes (%v), want %d", len(causes), causes, len(want))
	}
	for i := range want {
		if causes[i] != want[i] {
			t.Errorf("change %d cause %q, want %q", i, causes[i], want[i])
		}
	}
}

func TestStopCancelsTicker(t *testing.T) {
	c := newTestController(t, 3, 200*time.Millisecond)
	c.Start()
	time.Sleep(50 * time.Millisecond)
	c.Stop()
	c.Stop() // idempotent
	// goleak.VerifyTestMain fails the run if the tick goroutine leaks.
}

func TestNoMutationAfterStop(t *testing.T) {
	c := newTestController(t, 3, DefaultInterval)
	for i := 0; i < 10; i++ {
		c.tick(DefaultTick)
	}
	c.Stop()
	before := c.State()

	// A tick that was already scheduled when Stop ran must be inert.
	c.tick(DefaultTick)
	c.Next(CauseManual)
	c.GoTo(2, CauseManual)

	after := c.State()
	if after != before {
		t.Errorf("state mutated after Stop: %+v, want %+v", after, before)
	}
}

func TestAutoAdvanceAgainstRealTimer(t *testing.T) {
	changed := make(chan Change, 1)
	c, err := New(Config{
		Items:    []string{"a", "b"},
		Interval: 300 * time.Millisecond,
		Tick:     10 * time.Millisecond,
		OnChange: func(ch Change) {
			select {
			case changed <- ch:
			default:
			}
		},
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	c.Start()
	defer c.Stop()

	select {
	case ch := <-changed:
		if ch.Cause != CauseAuto || ch.Index != 1 {
			t.Errorf("unexpected change %+v", ch)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timer-driven advance never fired")
	}
}
