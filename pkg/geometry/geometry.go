// Package geometry describes where a rendered control sits on screen
// and how its bounding box is resolved.
package geometry

import "errors"

// ErrNotMeasurable means the control has no resolvable bounding box
// right now (not laid out, zero size). Pending value updates that hit
// this are dropped silently.
var ErrNotMeasurable = errors.New("geometry: control not measurable")

// Rect is a control's bounding box in terminal cell coordinates, the
// same coordinate space mouse events arrive in.
type Rect struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// Contains reports whether the cell (x, y) falls inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Left+r.Width && y >= r.Top && y < r.Top+r.Height
}

// Provider reports a control's current bounding box. Components treat
// resolution as asynchronous: the lookup runs inside a command and
// its result arrives as a later message, during which other events
// may already have advanced the drag session. An error means the
// control is not measurable and the pending update is dropped.
type Provider interface {
	Bounds() (Rect, error)
}

// Fixed is a Provider for layouts where the parent assigns the rect.
type Fixed Rect

// Bounds implements Provider.
func (f Fixed) Bounds() (Rect, error) {
	r := Rect(f)
	if r.Width <= 0 && r.Height <= 0 {
		return Rect{}, ErrNotMeasurable
	}
	return r, nil
}

// Func adapts a function to the Provider interface.
type Func func() (Rect, error)

// Bounds implements Provider.
func (f Func) Bounds() (Rect, error) { return f() }
