// Package value implements the numeric core of the slider: bounds
// clamping, step quantization, overlap resolution for dual-thumb
// ranges, and the tap tie-break rule. Everything here is a pure
// function of its inputs.
package value

import "math"

// Bounds describes the usable range and step grid of a slider.
// Max must be greater than Min; that is a precondition, not a checked
// error. A Step of zero or less disables snapping, so quantization
// degrades to a plain clamp.
type Bounds struct {
	Min  float64
	Max  float64
	Step float64
}

// Scope returns the length of the usable range.
func (b Bounds) Scope() float64 { return b.Max - b.Min }

// FractionToValue maps a 0..1 fraction of the track into value space.
func (b Bounds) FractionToValue(f float64) float64 {
	return b.Min + f*b.Scope()
}

// Quantize clamps v into [Min, Max] and snaps it to the nearest
// multiple of Step offset from Min. The result stays inside the
// bounds even when Step does not divide the scope evenly. Idempotent.
func (b Bounds) Quantize(v float64) float64 {
	if v < b.Min {
		v = b.Min
	}
	if v > b.Max {
		v = b.Max
	}
	if b.Step <= 0 {
		return v
	}
	n := math.Round((v - b.Min) / b.Step)
	q := addStable(b.Min, n*b.Step)
	if q > b.Max {
		// Rounding up crossed Max; step back onto the grid.
		q = addStable(b.Min, (n-1)*b.Step)
	}
	return q
}

// addStable adds two floats and rounds away the drift that naive
// addition accumulates on step grids like 0.1 (0.1*3 != 0.3).
func addStable(a, b float64) float64 {
	return math.Round((a+b)*1e10) / 1e10
}

// Value is a slider value: a single number or an ordered pair of
// endpoints. The mode is fixed at construction and every operation
// checks it once rather than inferring it from shape.
type Value struct {
	lo, hi float64
	pair   bool
}

// Scalar returns a single-mode Value.
func Scalar(x float64) Value { return Value{lo: x} }

// Pair returns a range-mode Value with the given endpoints.
func Pair(lo, hi float64) Value { return Value{lo: lo, hi: hi, pair: true} }

// IsPair reports whether v is a range value.
func (v Value) IsPair() bool { return v.pair }

// Scalar returns the single number of a scalar value. For pairs it
// returns the low endpoint.
func (v Value) Scalar() float64 { return v.lo }

// Endpoints returns both endpoints of a pair.
func (v Value) Endpoints() (lo, hi float64) { return v.lo, v.hi }

// Endpoint returns endpoint i (0 = low, 1 = high). Scalars read the
// single number for any index.
func (v Value) Endpoint(i int) float64 {
	if v.pair && i == 1 {
		return v.hi
	}
	return v.lo
}

// WithEndpoint returns a copy of v with endpoint i replaced.
func (v Value) WithEndpoint(i int, x float64) Value {
	if v.pair && i == 1 {
		v.hi = x
	} else {
		v.lo = x
	}
	return v
}

// Equal reports structural equality: same mode, same numbers.
func (v Value) Equal(o Value) bool {
	if v.pair != o.pair {
		return false
	}
	if v.pair {
		return v.lo == o.lo && v.hi == o.hi
	}
	return v.lo == o.lo
}

// ResolveOverlap reorders a pair whose endpoints crossed. Ordered
// pairs and scalars pass through unchanged; applying it twice is a
// no-op.
func ResolveOverlap(v Value) Value {
	if v.pair && v.lo > v.hi {
		v.lo, v.hi = v.hi, v.lo
	}
	return v
}

// ChooseTapTarget picks which endpoint of a pair a tap moves: at or
// below the midpoint the low endpoint moves, above it the high one.
// A tap exactly on the midpoint moves the low endpoint. The returned
// candidate is unquantized.
func ChooseTapTarget(pair Value, tap float64) Value {
	mid := (pair.lo + pair.hi) / 2
	if tap <= mid {
		pair.lo = tap
	} else {
		pair.hi = tap
	}
	return pair
}

// Quantize snaps every endpoint of v onto b's step grid.
func Quantize(v Value, b Bounds) Value {
	v.lo = b.Quantize(v.lo)
	if v.pair {
		v.hi = b.Quantize(v.hi)
	}
	return v
}

// OffsetPercent returns where the filled track span starts, as a
// percentage of the scope. Scalars fill from the start of the track.
func (v Value) OffsetPercent(b Bounds) float64 {
	if !v.pair {
		return 0
	}
	return (v.lo - b.Min) / b.Scope() * 100
}

// ExtentPercent returns the filled track span length as a percentage
// of the scope.
func (v Value) ExtentPercent(b Bounds) float64 {
	if v.pair {
		return (v.hi - v.lo) / b.Scope() * 100
	}
	return (v.lo - b.Min) / b.Scope() * 100
}
