package viewport

import "testing"

func TestVisibleDefaultsFalse(t *testing.T) {
	r := NewRegistry()
	if r.Visible("models") {
		t.Error("unreported region should not be visible")
	}
}

func TestSetVisibleNotifiesOnChangeOnly(t *testing.T) {
	r := NewRegistry()
	var calls []bool
	r.Subscribe("models", func(v bool) { calls = append(calls, v) })

	r.SetVisible("models", true)
	r.SetVisible("models", true) // no change, no notification
	r.SetVisible("models", false)

	want := []bool{true, false}
	if len(calls) != len(want) {
		t.Fatalf("got %d notifications (%v), want %d", len(calls), calls, len(want))
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("notification %d = %v, want %v", i, calls[i], want[i])
		}
	}
}

func TestSubscribersAreScopedToRegion(t *testing.T) {
	r := NewRegistry()
	models := 0
	r.Subscribe("models", func(bool) { models++ })

	r.SetVisible("use-cases", true)
	if models != 0 {
		t.Errorf("subscriber fired for a different region (%d times)", models)
	}
}

func TestCancelStopsNotifications(t *testing.T) {
	r := NewRegistry()
	calls := 0
	cancel := r.Subscribe("models", func(bool) { calls++ })

	r.SetVisible("models", true)
	cancel()
	r.SetVisible("models", false)

	if calls != 1 {
		t.Errorf("got %d notifications after cancel, want 1", calls)
	}
}
