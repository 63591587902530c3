package gesture

import "github.com/Dicklesworthstone/slider/pkg/value"

// Phase is the lifecycle stage of a drag session.
type Phase int

const (
	// PhaseIdle means no gesture is running.
	PhaseIdle Phase = iota
	// PhaseStart means a thumb was pressed but has not moved yet.
	PhaseStart
	// PhaseDragging means at least one move event happened.
	PhaseDragging
	// PhaseEnd means the gesture finished and has not been replaced.
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseStart:
		return "start"
	case PhaseDragging:
		return "dragging"
	case PhaseEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Session is the drag bookkeeping for one control: which thumb is
// active, the value snapshot taken at gesture start, and the live
// working value. It is only meaningful while a gesture is running;
// during one it is the sole source of truth, independent of whatever
// the consumer does with change notifications.
type Session struct {
	Phase       Phase
	ActiveThumb int
	Start       value.Value
	Live        value.Value
}

// Reset returns the session to idle.
func (s *Session) Reset() { *s = Session{} }

// Active reports whether a gesture is currently in progress.
func (s Session) Active() bool {
	return s.Phase == PhaseStart || s.Phase == PhaseDragging
}
