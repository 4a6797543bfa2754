package curve_test

import (
	"errors"
	"math"
	"testing"

	"github.com/meenmo/zerocurve/curve"
)

func benchmarkAnchors() []curve.Anchor {
	return []curve.Anchor{
		{Time: 0.5, Rate: 0.0300},
		{Time: 1.0, Rate: 0.0350},
		{Time: 2.0, Rate: 0.0375},
		{Time: 5.0, Rate: 0.0400},
		{Time: 10.0, Rate: 0.0425},
		{Time: 30.0, Rate: 0.0450},
	}
}

func TestNewZeroCurve_RejectsMalformedInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		anchors []curve.Anchor
	}{
		{"too few anchors", []curve.Anchor{{Time: 1.0, Rate: 0.03}}},
		{"out of order times", []curve.Anchor{
			{Time: 1.0, Rate: 0.03}, {Time: 0.5, Rate: 0.035}, {Time: 2.0, Rate: 0.04},
		}},
		{"duplicate times", []curve.Anchor{
			{Time: 1.0, Rate: 0.03}, {Time: 1.0, Rate: 0.035},
		}},
		{"negative time", []curve.Anchor{
			{Time: -1.0, Rate: 0.03}, {Time: 1.0, Rate: 0.035},
		}},
		{"NaN rate", []curve.Anchor{
			{Time: 1.0, Rate: math.NaN()}, {Time: 2.0, Rate: 0.035},
		}},
		{"infinite rate", []curve.Anchor{
			{Time: 1.0, Rate: 0.03}, {Time: 2.0, Rate: math.Inf(1)},
		}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for _, mode := range []curve.Interpolation{curve.Linear, curve.NaturalCubicSpline} {
				if _, err := curve.NewZeroCurve(tc.anchors, mode); !errors.Is(err, curve.ErrMalformedCurveInput) {
					t.Fatalf("mode %s: expected ErrMalformedCurveInput, got %v", mode, err)
				}
			}
		})
	}
}

func TestZeroRate_ExactAtAnchors(t *testing.T) {
	t.Parallel()

	anchors := benchmarkAnchors()
	for _, mode := range []curve.Interpolation{curve.Linear, curve.NaturalCubicSpline} {
		c, err := curve.NewZeroCurve(anchors, mode)
		if err != nil {
			t.Fatalf("NewZeroCurve(%s) error: %v", mode, err)
		}
		for _, a := range anchors {
			got, err := c.ZeroRate(a.Time)
			if err != nil {
				t.Fatalf("ZeroRate(%g) error: %v", a.Time, err)
			}
			if math.Abs(got-a.Rate) > 1e-12 {
				t.Fatalf("mode %s: ZeroRate(%g) = %.15f, want %.15f", mode, a.Time, got, a.Rate)
			}
		}
	}
}

func TestZeroRate_LinearMidpoint(t *testing.T) {
	t.Parallel()

	c, err := curve.NewZeroCurve([]curve.Anchor{
		{Time: 1.0, Rate: 0.03},
		{Time: 2.0, Rate: 0.0375},
	}, curve.Linear)
	if err != nil {
		t.Fatalf("NewZeroCurve error: %v", err)
	}

	got, err := c.ZeroRate(1.5)
	if err != nil {
		t.Fatalf("ZeroRate error: %v", err)
	}
	if math.Abs(got-0.03375) > 1e-12 {
		t.Fatalf("ZeroRate(1.5) = %.15f, want 0.03375", got)
	}
}

func TestZeroRate_LinearExtrapolationContinuesSlope(t *testing.T) {
	t.Parallel()

	anchors := benchmarkAnchors()
	c, err := curve.NewZeroCurve(anchors, curve.Linear)
	if err != nil {
		t.Fatalf("NewZeroCurve error: %v", err)
	}

	n := len(anchors)
	a, b := anchors[n-2], anchors[n-1]
	slope := (b.Rate - a.Rate) / (b.Time - a.Time)

	beyond := b.Time + 10.0
	got, err := c.ZeroRate(beyond)
	if err != nil {
		t.Fatalf("ZeroRate error: %v", err)
	}
	want := a.Rate + slope*(beyond-a.Time)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("ZeroRate(%g) = %.15f, want continued slope %.15f", beyond, got, want)
	}
	if got <= b.Rate {
		t.Fatalf("extrapolated rate %.15f should exceed the last anchor rate %.15f (not clamped)", got, b.Rate)
	}

	// Before the first anchor, the first segment's slope continues.
	a0, b0 := anchors[0], anchors[1]
	slope0 := (b0.Rate - a0.Rate) / (b0.Time - a0.Time)
	before := a0.Time / 2
	got, err = c.ZeroRate(before)
	if err != nil {
		t.Fatalf("ZeroRate error: %v", err)
	}
	want = a0.Rate + slope0*(before-a0.Time)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("ZeroRate(%g) = %.15f, want continued slope %.15f", before, got, want)
	}
}

func TestZeroRate_InvalidQuery(t *testing.T) {
	t.Parallel()

	c, err := curve.NewZeroCurve(benchmarkAnchors(), curve.Linear)
	if err != nil {
		t.Fatalf("NewZeroCurve error: %v", err)
	}

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := c.ZeroRate(bad); !errors.Is(err, curve.ErrInvalidQuery) {
			t.Fatalf("ZeroRate(%v): expected ErrInvalidQuery, got %v", bad, err)
		}
	}

	// A finite time before the first anchor is a valid extrapolation query.
	if _, err := c.ZeroRate(0.1); err != nil {
		t.Fatalf("ZeroRate(0.1) unexpected error: %v", err)
	}
}

func TestZeroRate_TwoAnchorDegeneracy(t *testing.T) {
	t.Parallel()

	anchors := []curve.Anchor{
		{Time: 1.0, Rate: 0.03},
		{Time: 3.0, Rate: 0.045},
	}
	linear, err := curve.NewZeroCurve(anchors, curve.Linear)
	if err != nil {
		t.Fatalf("NewZeroCurve(linear) error: %v", err)
	}
	cubic, err := curve.NewZeroCurve(anchors, curve.NaturalCubicSpline)
	if err != nil {
		t.Fatalf("NewZeroCurve(cubic) error: %v", err)
	}

	// With two anchors the natural spline has no interior curvature, so both
	// evaluators must agree everywhere, including outside the anchor range.
	for _, q := range []float64{0.25, 1.0, 1.7, 2.5, 3.0, 4.5, 10.0} {
		lr, err := linear.ZeroRate(q)
		if err != nil {
			t.Fatalf("linear ZeroRate(%g) error: %v", q, err)
		}
		cr, err := cubic.ZeroRate(q)
		if err != nil {
			t.Fatalf("cubic ZeroRate(%g) error: %v", q, err)
		}
		if math.Abs(lr-cr) > 1e-12 {
			t.Fatalf("ZeroRate(%g): linear %.15f != cubic %.15f", q, lr, cr)
		}
	}
}
