package curve

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrMalformedCurveInput is returned when anchors cannot form a curve:
	// fewer than two points, non-finite values, or times out of order.
	ErrMalformedCurveInput = errors.New("malformed curve input")
	// ErrInvalidQuery is returned when an evaluation time is non-finite.
	ErrInvalidQuery = errors.New("invalid query")
)

// Interpolation selects how zero rates between anchors are computed.
type Interpolation int

const (
	// Linear interpolates piecewise linearly between adjacent anchors.
	Linear Interpolation = iota
	// NaturalCubicSpline interpolates with the C² piecewise cubic that has
	// zero second derivative at both boundary anchors.
	NaturalCubicSpline
)

func (m Interpolation) String() string {
	switch m {
	case NaturalCubicSpline:
		return "natural cubic spline"
	default:
		return "linear"
	}
}

// Anchor pins the curve at a time offset (years from the evaluation date)
// with a continuously compounded zero rate.
type Anchor struct {
	Time float64
	Rate float64
}

// ZeroCurve is a zero-coupon rate curve over a fixed anchor set.
//
// A curve is immutable once built; the spline coefficients are solved exactly
// once at construction, so a curve is safe to query concurrently.
type ZeroCurve struct {
	anchors []Anchor
	interp  Interpolation
	second  []float64 // spline second derivatives at anchors; nil for Linear
}

// NewZeroCurve validates the anchor set and builds a curve for the given
// interpolation mode. Anchor times must be strictly increasing.
func NewZeroCurve(anchors []Anchor, interp Interpolation) (*ZeroCurve, error) {
	if len(anchors) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 anchors, got %d", ErrMalformedCurveInput, len(anchors))
	}
	for i, a := range anchors {
		if math.IsNaN(a.Time) || math.IsInf(a.Time, 0) || a.Time < 0 {
			return nil, fmt.Errorf("%w: anchor %d has invalid time %v", ErrMalformedCurveInput, i, a.Time)
		}
		if math.IsNaN(a.Rate) || math.IsInf(a.Rate, 0) {
			return nil, fmt.Errorf("%w: anchor %d has non-finite rate", ErrMalformedCurveInput, i)
		}
		if i > 0 && a.Time <= anchors[i-1].Time {
			return nil, fmt.Errorf("%w: anchor times not strictly increasing at index %d", ErrMalformedCurveInput, i)
		}
	}

	c := &ZeroCurve{
		anchors: append([]Anchor(nil), anchors...),
		interp:  interp,
	}
	if interp == NaturalCubicSpline {
		c.second = solveNaturalSpline(c.anchors)
	}
	return c, nil
}

// ZeroRate returns the continuously compounded zero rate at time t (in years
// from the evaluation date). Times outside the anchor range extrapolate; see
// linearRate and splineRate for the boundary rules.
func (c *ZeroCurve) ZeroRate(t float64) (float64, error) {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, fmt.Errorf("%w: non-finite time %v", ErrInvalidQuery, t)
	}

	// Exact node hits return the quoted rate as-is, avoiding any
	// interpolation round-off at the anchors themselves.
	if r, ok := c.anchorRate(t); ok {
		return r, nil
	}

	if c.interp == NaturalCubicSpline {
		return c.splineRate(t), nil
	}
	return c.linearRate(t), nil
}

// Anchors returns a copy of the curve's anchor set.
func (c *ZeroCurve) Anchors() []Anchor {
	return append([]Anchor(nil), c.anchors...)
}

// Interpolation returns the curve's interpolation mode.
func (c *ZeroCurve) Interpolation() Interpolation {
	return c.interp
}

func (c *ZeroCurve) anchorRate(t float64) (float64, bool) {
	i := sort.Search(len(c.anchors), func(i int) bool {
		return c.anchors[i].Time >= t
	})
	if i < len(c.anchors) && c.anchors[i].Time == t {
		return c.anchors[i].Rate, true
	}
	return 0, false
}

// segment returns the index of the segment bracketing t, clamped to the first
// or last segment when t falls outside the anchor range (extrapolation).
func (c *ZeroCurve) segment(t float64) int {
	i := sort.Search(len(c.anchors), func(i int) bool {
		return c.anchors[i].Time >= t
	})
	if i <= 0 {
		return 0
	}
	if i >= len(c.anchors) {
		return len(c.anchors) - 2
	}
	return i - 1
}

// linearRate evaluates the piecewise linear interpolant. Outside the anchor
// range it continues the slope of the nearest boundary segment rather than
// flat-lining.
func (c *ZeroCurve) linearRate(t float64) float64 {
	i := c.segment(t)
	a, b := c.anchors[i], c.anchors[i+1]
	return a.Rate + (b.Rate-a.Rate)*(t-a.Time)/(b.Time-a.Time)
}
