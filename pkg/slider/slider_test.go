package slider

import (
	"testing"

	"github.com/Dicklesworthstone/slider/pkg/gesture"
	"github.com/Dicklesworthstone/slider/pkg/geometry"
	"github.com/Dicklesworthstone/slider/pkg/value"
)

// recorder collects OnChange notifications.
type recorder struct {
	values []value.Value
}

func (r *recorder) notify(v value.Value) { r.values = append(r.values, v) }

func (r *recorder) last(t *testing.T) value.Value {
	t.Helper()
	if len(r.values) == 0 {
		t.Fatalf("expected at least one notification")
	}
	return r.values[len(r.values)-1]
}

var trackRect = geometry.Rect{Top: 0, Left: 0, Width: 100, Height: 1}

func TestTapQuantizesToStep(t *testing.T) {
	var rec recorder
	c := NewController(Config{Min: 0, Max: 100, Step: 10, OnChange: rec.notify})
	c.SetValue(value.Scalar(30))

	// x=47 on a 100-cell track resolves to 47, which snaps to 50.
	if !c.Tap(trackRect, 47, 0) {
		t.Fatalf("tap did not commit")
	}
	if len(rec.values) != 1 {
		t.Fatalf("got %d notifications, want 1", len(rec.values))
	}
	if got := rec.last(t).Scalar(); got != 50 {
		t.Errorf("committed %v, want 50", got)
	}
}

func TestTapSameValueSuppressed(t *testing.T) {
	var rec recorder
	c := NewController(Config{Min: 0, Max: 100, Step: 10, OnChange: rec.notify})
	c.SetValue(value.Scalar(50))

	// 47 quantizes to the current value; nothing should fire.
	if c.Tap(trackRect, 47, 0) {
		t.Fatalf("tap committed an unchanged value")
	}
	if len(rec.values) != 0 {
		t.Fatalf("got %d notifications, want 0", len(rec.values))
	}
}

func TestTapMidpointMovesLowEndpoint(t *testing.T) {
	var rec recorder
	c := NewController(Config{Min: 0, Max: 100, Step: 1, Range: true, OnChange: rec.notify})
	c.SetValue(value.Pair(10, 20))

	// Exactly on the midpoint: the low endpoint moves.
	c.Tap(trackRect, 15, 0)
	lo, hi := rec.last(t).Endpoints()
	if lo != 15 || hi != 20 {
		t.Errorf("midpoint tap = (%v, %v), want (15, 20)", lo, hi)
	}
}

func TestTapAboveMidpointMovesHighEndpoint(t *testing.T) {
	var rec recorder
	c := NewController(Config{Min: 0, Max: 100, Step: 1, Range: true, OnChange: rec.notify})
	c.SetValue(value.Pair(10, 20))

	c.Tap(trackRect, 25, 0)
	lo, hi := rec.last(t).Endpoints()
	if lo != 10 || hi != 25 {
		t.Errorf("tap at 25 = (%v, %v), want (10, 25)", lo, hi)
	}
}

func TestTapBelowRangeMovesLowEndpoint(t *testing.T) {
	var rec recorder
	c := NewController(Config{Min: 0, Max: 100, Step: 1, Range: true, OnChange: rec.notify})
	c.SetValue(value.Pair(10, 20))

	c.Tap(trackRect, 5, 0)
	lo, hi := rec.last(t).Endpoints()
	if lo != 5 || hi != 20 {
		t.Errorf("tap at 5 = (%v, %v), want (5, 20)", lo, hi)
	}
}

func TestDragMovesOnlyActiveThumb(t *testing.T) {
	var rec recorder
	c := NewController(Config{Min: 0, Max: 100, Step: 1, Range: true, OnChange: rec.notify})
	c.SetValue(value.Pair(20, 80))

	c.StartDrag(0, 20, 0)
	c.Drag(35, 0)
	if !c.ApplyDrag(trackRect) {
		t.Fatalf("drag did not commit")
	}

	lo, hi := rec.last(t).Endpoints()
	if lo != 35 || hi != 80 {
		t.Errorf("after +15 drag = (%v, %v), want (35, 80)", lo, hi)
	}
	if got := c.Session().Phase; got != gesture.PhaseDragging {
		t.Errorf("phase = %s, want dragging", got)
	}
}

func TestDragCrossingResolvesOnlyAtCommit(t *testing.T) {
	var rec recorder
	c := NewController(Config{Min: 0, Max: 100, Step: 1, Range: true, OnChange: rec.notify})
	c.SetValue(value.Pair(20, 80))

	// Drag thumb 0 far past thumb 1.
	c.StartDrag(0, 20, 0)
	c.Drag(90, 0)
	c.ApplyDrag(trackRect)

	// The committed value is reordered...
	lo, hi := rec.last(t).Endpoints()
	if lo != 80 || hi != 90 {
		t.Errorf("committed (%v, %v), want (80, 90)", lo, hi)
	}
	// ...but the live session value keeps the crossed endpoints, so
	// dragging back does not swap which thumb is being moved.
	liveLo, liveHi := c.Session().Live.Endpoints()
	if liveLo != 90 || liveHi != 80 {
		t.Errorf("live = (%v, %v), want crossed (90, 80)", liveLo, liveHi)
	}

	c.Drag(40, 0)
	c.ApplyDrag(trackRect)
	lo, hi = rec.last(t).Endpoints()
	if lo != 40 || hi != 80 {
		t.Errorf("after dragging back = (%v, %v), want (40, 80)", lo, hi)
	}
}

func TestDragUnderHalfStepSuppressed(t *testing.T) {
	var rec recorder
	c := NewController(Config{Min: 0, Max: 100, Step: 10, OnChange: rec.notify})
	c.SetValue(value.Scalar(30))

	c.StartDrag(0, 50, 0)
	c.Drag(52, 0) // +2 of 100 cells: less than half a step
	c.ApplyDrag(trackRect)

	if len(rec.values) != 0 {
		t.Fatalf("sub-half-step drag fired %d notifications", len(rec.values))
	}
}

func TestEndDragReportsFinalValueOnce(t *testing.T) {
	var rec recorder
	c := NewController(Config{Min: 0, Max: 100, Step: 1, OnChange: rec.notify})
	c.SetValue(value.Scalar(20))

	c.StartDrag(0, 20, 0)
	c.Drag(35, 0)
	c.ApplyDrag(trackRect)
	c.EndDrag()

	// The end-commit sees the same live value the move committed; no
	// duplicate notification.
	if len(rec.values) != 1 {
		t.Fatalf("got %d notifications, want 1", len(rec.values))
	}
	if got := c.Session().Phase; got != gesture.PhaseEnd {
		t.Errorf("phase = %s, want end", got)
	}
}

func TestEndDragCommitsWhenGeometryNeverResolved(t *testing.T) {
	var rec recorder
	c := NewController(Config{Min: 0, Max: 100, Step: 1, OnChange: rec.notify})
	c.SetValue(value.Scalar(20))

	c.StartDrag(0, 20, 0)
	c.Drag(35, 0)
	c.ApplyDrag(trackRect) // first move resolves: live 35
	c.Drag(60, 0)          // second move's geometry never comes back
	c.EndDrag()

	// End still reports the last applied live value, and only once.
	if got := rec.last(t).Scalar(); got != 35 {
		t.Errorf("final value %v, want 35", got)
	}
	if len(rec.values) != 1 {
		t.Errorf("got %d notifications, want 1", len(rec.values))
	}
}

func TestPressWithoutMoveCommitsNothing(t *testing.T) {
	var rec recorder
	c := NewController(Config{Min: 0, Max: 100, Step: 1, OnChange: rec.notify})
	c.SetValue(value.Scalar(20))

	c.StartDrag(0, 20, 0)
	c.EndDrag()

	if len(rec.values) != 0 {
		t.Fatalf("tap-like press/release fired %d notifications", len(rec.values))
	}
	if got := c.Session().Phase; got != gesture.PhaseEnd {
		t.Errorf("phase = %s, want end", got)
	}
}

func TestDragClampsAtBounds(t *testing.T) {
	var rec recorder
	c := NewController(Config{Min: 0, Max: 100, Step: 1, OnChange: rec.notify})
	c.SetValue(value.Scalar(90))

	c.StartDrag(0, 90, 0)
	c.Drag(190, 0) // +100, far past Max
	c.ApplyDrag(trackRect)

	if got := rec.last(t).Scalar(); got != 100 {
		t.Errorf("overshoot committed %v, want 100", got)
	}
}

func TestVerticalOrientation(t *testing.T) {
	var rec recorder
	c := NewController(Config{Min: 0, Max: 100, Step: 1, Orientation: Vertical, OnChange: rec.notify})
	c.SetValue(value.Scalar(0))

	rect := geometry.Rect{Top: 0, Left: 0, Width: 1, Height: 50}
	c.Tap(rect, 0, 25)
	if got := rec.last(t).Scalar(); got != 50 {
		t.Errorf("vertical tap committed %v, want 50", got)
	}

	c.StartDrag(0, 0, 25)
	c.Drag(0, 30) // +5 of 50 cells: +10 in value space
	c.ApplyDrag(rect)
	if got := rec.last(t).Scalar(); got != 60 {
		t.Errorf("vertical drag committed %v, want 60", got)
	}
}

func TestDisabledShortCircuitsEverything(t *testing.T) {
	var rec recorder
	c := NewController(Config{Min: 0, Max: 100, Step: 1, Range: true, Disabled: true, OnChange: rec.notify})
	c.SetValue(value.Pair(20, 80))

	c.Tap(trackRect, 50, 0)
	c.StartDrag(0, 20, 0)
	c.Drag(60, 0)
	c.ApplyDrag(trackRect)
	c.EndDrag()

	if len(rec.values) != 0 {
		t.Errorf("disabled control fired %d notifications", len(rec.values))
	}
	if got := c.Session().Phase; got != gesture.PhaseIdle {
		t.Errorf("disabled control mutated session: phase %s", got)
	}
}

func TestSetValueDuringDragDoesNotDisturbSession(t *testing.T) {
	var rec recorder
	c := NewController(Config{Min: 0, Max: 100, Step: 1, OnChange: rec.notify})
	c.SetValue(value.Scalar(20))

	c.StartDrag(0, 20, 0)
	c.Drag(30, 0)

	// A late echo (or any external write) lands mid-gesture.
	c.SetValue(value.Scalar(99))

	c.ApplyDrag(trackRect)
	// The delta still applies against the session's start snapshot,
	// not the new external value.
	if got := rec.last(t).Scalar(); got != 30 {
		t.Errorf("drag after external write committed %v, want 30", got)
	}
}

func TestDefaultsApplied(t *testing.T) {
	c := NewController(Config{})
	b := c.Bounds()
	if b.Min != 0 || b.Max != 100 || b.Step != 1 {
		t.Errorf("defaults = %+v, want {0 100 1}", b)
	}
}
