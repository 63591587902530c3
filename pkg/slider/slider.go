// Package slider implements a mouse-driven value slider for
// bubbletea programs: a single- or dual-thumb control that maps taps
// and drags on its track to a quantized value or range.
//
// The package splits into a framework-free Controller (the
// gesture-to-value state machine) and a bubbletea Model wrapping it
// with hit testing, asynchronous geometry resolution, and rendering.
package slider

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/slider/pkg/gesture"
	"github.com/Dicklesworthstone/slider/pkg/geometry"
	"github.com/Dicklesworthstone/slider/pkg/value"
)

// Orientation selects which screen axis maps to value space.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Config fixes a slider's behavior for its lifetime. The zero value
// of Min/Max/Step resolves to the defaults 0/100/1. Max must end up
// greater than Min; anything else is undefined behavior, not a
// checked error.
type Config struct {
	Min  float64
	Max  float64
	Step float64

	// Range enables the dual-thumb mode where the value is an
	// ordered pair instead of a scalar.
	Range bool

	Orientation Orientation
	Disabled    bool

	// Size is the track length in cells. Zero means fill the
	// assigned rect.
	Size int

	// Styling passthrough; empty strings keep the theme's colors.
	ActiveColor   lipgloss.Color
	InactiveColor lipgloss.Color

	// OnChange receives committed values. It is fire-and-forget:
	// the controller never assumes the consumer echoes the value
	// back synchronously.
	OnChange func(value.Value)
}

func (c Config) withDefaults() Config {
	if c.Min == 0 && c.Max == 0 {
		c.Max = 100
	}
	if c.Step == 0 {
		c.Step = 1
	}
	return c
}

// Controller is the gesture-to-value state machine. It owns only the
// transient drag session and the per-control pointer tracker; the
// authoritative value lives with the consumer and enters through
// SetValue (controlled-component pattern). The controller never
// mutates that value, it only proposes candidates through OnChange.
type Controller struct {
	cfg      Config
	bounds   value.Bounds
	tracker  gesture.Tracker
	session  gesture.Session
	current  value.Value
	onChange func(value.Value)
}

// NewController builds a controller from cfg, applying the 0/100/1
// defaults. The initial value sits at Min (or [Min, Min] in range
// mode) until SetValue supplies the real one.
func NewController(cfg Config) *Controller {
	cfg = cfg.withDefaults()
	c := &Controller{
		cfg:      cfg,
		bounds:   value.Bounds{Min: cfg.Min, Max: cfg.Max, Step: cfg.Step},
		onChange: cfg.OnChange,
	}
	if cfg.Range {
		c.current = value.Pair(cfg.Min, cfg.Min)
	} else {
		c.current = value.Scalar(cfg.Min)
	}
	return c
}

// SetValue feeds the externally owned value back in. An active
// gesture is not interrupted: the session keeps working from its own
// snapshots.
func (c *Controller) SetValue(v value.Value) { c.current = v }

// Value returns the last externally supplied or committed value.
func (c *Controller) Value() value.Value { return c.current }

// Session returns a copy of the current drag session.
func (c *Controller) Session() gesture.Session { return c.session }

// Bounds returns the controller's value bounds.
func (c *Controller) Bounds() value.Bounds { return c.bounds }

// Disabled reports whether the control ignores all gestures.
func (c *Controller) Disabled() bool { return c.cfg.Disabled }

// DisplayValue is what thumbs and fill should render right now: the
// live drag value while a gesture runs, the committed value
// otherwise.
func (c *Controller) DisplayValue() value.Value {
	if c.session.Active() {
		return c.session.Live
	}
	return c.current
}

// axisFraction maps a pointer position to a 0..1 fraction of rect
// along the configured orientation.
func (c *Controller) axisFraction(r geometry.Rect, x, y int) float64 {
	var pos, total int
	if c.cfg.Orientation == Vertical {
		pos, total = y-r.Top, r.Height
	} else {
		pos, total = x-r.Left, r.Width
	}
	if total <= 0 {
		return 0
	}
	f := float64(pos) / float64(total)
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return f
}

// Tap handles a single press-release on the track, with rect being
// the control's resolved bounding box. In range mode the midpoint
// rule decides which endpoint moves. Reports whether a change was
// committed.
func (c *Controller) Tap(rect geometry.Rect, x, y int) bool {
	if c.cfg.Disabled {
		return false
	}
	tap := c.bounds.FractionToValue(c.axisFraction(rect, x, y))
	var candidate value.Value
	if c.cfg.Range {
		candidate = value.ChooseTapTarget(c.current, tap)
	} else {
		candidate = value.Scalar(tap)
	}
	return c.commit(candidate)
}

// StartDrag begins a drag of the thumb at index (0 in single mode).
// The external value is snapshotted, quantized, into the session's
// start and live values.
func (c *Controller) StartDrag(index, x, y int) {
	if c.cfg.Disabled {
		return
	}
	start := value.Quantize(c.current, c.bounds)
	c.session = gesture.Session{
		Phase:       gesture.PhaseStart,
		ActiveThumb: index,
		Start:       start,
		Live:        start,
	}
	c.tracker.Start(x, y)
}

// Drag records pointer movement. The value update happens in
// ApplyDrag once the control's geometry has resolved.
func (c *Controller) Drag(x, y int) {
	if c.cfg.Disabled || !c.session.Active() {
		return
	}
	c.session.Phase = gesture.PhaseDragging
	c.tracker.Move(x, y)
}

// ApplyDrag converts the tracker's cumulative delta into a live
// value and commits it. It runs when a geometry lookup issued for a
// move event resolves, which may be after further moves arrived; it
// always reads the session as it is now, never a stale snapshot.
func (c *Controller) ApplyDrag(rect geometry.Rect) bool {
	if c.cfg.Disabled || c.session.Phase != gesture.PhaseDragging {
		return false
	}
	var delta, total int
	if c.cfg.Orientation == Vertical {
		delta, total = c.tracker.DeltaY(), rect.Height
	} else {
		delta, total = c.tracker.DeltaX(), rect.Width
	}
	if total <= 0 {
		return false
	}
	d := float64(delta) / float64(total) * c.bounds.Scope()
	if c.cfg.Range {
		// Only the active endpoint moves; it may transiently cross
		// the other one. Overlap is resolved at commit, not here.
		i := c.session.ActiveThumb
		c.session.Live = c.session.Live.WithEndpoint(i, c.session.Start.Endpoint(i)+d)
	} else {
		c.session.Live = value.Scalar(c.session.Start.Scalar() + d)
	}
	return c.commit(c.session.Live)
}

// EndDrag finishes the gesture. If any movement happened, the final
// live value is committed once more so the last position is reported
// even when the last move's geometry lookup never resolved.
func (c *Controller) EndDrag() bool {
	if c.cfg.Disabled {
		return false
	}
	committed := false
	if c.session.Phase == gesture.PhaseDragging {
		committed = c.commit(c.session.Live)
	}
	if c.session.Active() {
		c.session.Phase = gesture.PhaseEnd
	}
	return committed
}

// commit validates a candidate (reorder crossed endpoints, then
// quantize each one) and notifies the consumer when the result
// differs from the last known value.
func (c *Controller) commit(candidate value.Value) bool {
	v := value.Quantize(value.ResolveOverlap(candidate), c.bounds)
	if v.Equal(c.current) {
		return false
	}
	c.current = v
	if c.onChange != nil {
		c.onChange(v)
	}
	return true
}
