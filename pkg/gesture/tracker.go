// Package gesture holds the transient pointer state of a slider
// interaction: the tracker accumulating movement since a gesture
// started, and the drag session bookkeeping around it.
package gesture

// Tracker accumulates pointer movement since the start of a gesture.
// Every control owns its own Tracker; the zero value is ready to use.
// State resets on the next Start.
type Tracker struct {
	originX, originY int
	lastX, lastY     int
}

// Start records the gesture origin and zeroes the deltas.
func (t *Tracker) Start(x, y int) {
	t.originX, t.originY = x, y
	t.lastX, t.lastY = x, y
}

// Move updates the cumulative deltas from the origin.
func (t *Tracker) Move(x, y int) {
	t.lastX, t.lastY = x, y
}

// DeltaX returns the cumulative horizontal movement since Start.
func (t *Tracker) DeltaX() int { return t.lastX - t.originX }

// DeltaY returns the cumulative vertical movement since Start.
func (t *Tracker) DeltaY() int { return t.lastY - t.originY }
