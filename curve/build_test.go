package curve_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/meenmo/zerocurve/curve"
	"github.com/meenmo/zerocurve/tenor"
)

// stubDates maps tenor labels to fixed day offsets, so anchor building can be
// tested without any holiday or day-count logic.
type stubDates map[string]int

func (s stubDates) Advance(base time.Time, tn tenor.Tenor) time.Time {
	return base.AddDate(0, 0, s[tn.String()])
}

func (s stubDates) YearFraction(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24 / 365.0
}

func TestBuildAnchors(t *testing.T) {
	t.Parallel()

	evalDate := time.Date(2025, 8, 24, 0, 0, 0, 0, time.UTC)
	svc := stubDates{"6M": 182, "1Y": 365, "2Y": 730}

	anchors, err := curve.BuildAnchors(evalDate, []curve.Quote{
		{Tenor: tenor.MustParse("6M"), Rate: 0.030},
		{Tenor: tenor.MustParse("1Y"), Rate: 0.035},
		{Tenor: tenor.MustParse("2Y"), Rate: 0.0375},
	}, svc)
	if err != nil {
		t.Fatalf("BuildAnchors error: %v", err)
	}
	if len(anchors) != 3 {
		t.Fatalf("expected 3 anchors, got %d", len(anchors))
	}
	if math.Abs(anchors[0].Time-182.0/365.0) > 1e-12 {
		t.Fatalf("anchor 0 time mismatch: got %.12f", anchors[0].Time)
	}
	if math.Abs(anchors[1].Time-1.0) > 1e-12 {
		t.Fatalf("anchor 1 time mismatch: got %.12f", anchors[1].Time)
	}
	if anchors[2].Rate != 0.0375 {
		t.Fatalf("anchor 2 rate mismatch: got %v", anchors[2].Rate)
	}
}

func TestBuildAnchors_RejectsNonMonotonicQuotes(t *testing.T) {
	t.Parallel()

	evalDate := time.Date(2025, 8, 24, 0, 0, 0, 0, time.UTC)
	svc := stubDates{"1Y": 365, "6M": 182, "2Y": 730}

	// 1Y quoted before 6M: times come out decreasing.
	_, err := curve.BuildAnchors(evalDate, []curve.Quote{
		{Tenor: tenor.MustParse("1Y"), Rate: 0.035},
		{Tenor: tenor.MustParse("6M"), Rate: 0.030},
		{Tenor: tenor.MustParse("2Y"), Rate: 0.0375},
	}, svc)
	if !errors.Is(err, curve.ErrMalformedCurveInput) {
		t.Fatalf("expected ErrMalformedCurveInput, got %v", err)
	}
}

func TestBuildAnchors_RejectsBadInput(t *testing.T) {
	t.Parallel()

	evalDate := time.Date(2025, 8, 24, 0, 0, 0, 0, time.UTC)
	svc := stubDates{"6M": 182, "1Y": 365}

	_, err := curve.BuildAnchors(evalDate, []curve.Quote{
		{Tenor: tenor.MustParse("6M"), Rate: 0.030},
	}, svc)
	if !errors.Is(err, curve.ErrMalformedCurveInput) {
		t.Fatalf("single quote: expected ErrMalformedCurveInput, got %v", err)
	}

	_, err = curve.BuildAnchors(evalDate, []curve.Quote{
		{Tenor: tenor.MustParse("6M"), Rate: math.NaN()},
		{Tenor: tenor.MustParse("1Y"), Rate: 0.035},
	}, svc)
	if !errors.Is(err, curve.ErrMalformedCurveInput) {
		t.Fatalf("NaN rate: expected ErrMalformedCurveInput, got %v", err)
	}
}
