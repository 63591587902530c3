package gesture

import (
	"testing"

	"github.com/Dicklesworthstone/slider/pkg/value"
)

func TestTrackerCumulativeDelta(t *testing.T) {
	var tr Tracker
	tr.Start(10, 5)
	tr.Move(13, 6)
	tr.Move(9, 2)

	if got := tr.DeltaX(); got != -1 {
		t.Errorf("DeltaX = %d, want -1", got)
	}
	if got := tr.DeltaY(); got != -3 {
		t.Errorf("DeltaY = %d, want -3", got)
	}
}

func TestTrackerResetsOnStart(t *testing.T) {
	var tr Tracker
	tr.Start(0, 0)
	tr.Move(50, 50)
	tr.Start(100, 100)

	if tr.DeltaX() != 0 || tr.DeltaY() != 0 {
		t.Fatalf("deltas after restart = (%d, %d), want (0, 0)", tr.DeltaX(), tr.DeltaY())
	}

	tr.Move(104, 97)
	if tr.DeltaX() != 4 || tr.DeltaY() != -3 {
		t.Fatalf("deltas after restart+move = (%d, %d), want (4, -3)", tr.DeltaX(), tr.DeltaY())
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseIdle, "idle"},
		{PhaseStart, "start"},
		{PhaseDragging, "dragging"},
		{PhaseEnd, "end"},
		{Phase(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(tt.phase), got, tt.want)
		}
	}
}

func TestSessionActive(t *testing.T) {
	s := Session{Phase: PhaseStart}
	if !s.Active() {
		t.Errorf("start phase should be active")
	}
	s.Phase = PhaseDragging
	if !s.Active() {
		t.Errorf("dragging phase should be active")
	}
	s.Phase = PhaseEnd
	if s.Active() {
		t.Errorf("end phase should not be active")
	}
	s.Reset()
	if s.Phase != PhaseIdle || s.Active() {
		t.Errorf("reset session should be idle, got %s", s.Phase)
	}
}

func TestSessionHoldsSnapshots(t *testing.T) {
	s := Session{
		Phase:       PhaseDragging,
		ActiveThumb: 1,
		Start:       value.Pair(20, 80),
		Live:        value.Pair(20, 95),
	}
	if lo, hi := s.Start.Endpoints(); lo != 20 || hi != 80 {
		t.Errorf("start snapshot mutated: (%v, %v)", lo, hi)
	}
	if s.Live.Endpoint(s.ActiveThumb) != 95 {
		t.Errorf("live active endpoint = %v, want 95", s.Live.Endpoint(s.ActiveThumb))
	}
}
