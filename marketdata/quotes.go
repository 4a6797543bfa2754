// Package marketdata holds the compiled-in benchmark quotes for the
// interpolation comparison, plus the standard date conventions they are
// quoted under. The quote set is deliberately not configurable.
package marketdata

import (
	"time"

	"github.com/meenmo/zerocurve/curve"
	"github.com/meenmo/zerocurve/tenor"
)

// DefaultEvaluationDate is the reference date the benchmark quotes were
// observed on. All anchor times are measured from it.
var DefaultEvaluationDate = time.Date(2025, 8, 24, 0, 0, 0, 0, time.UTC)

// BenchmarkZeros are the quoted zero-coupon rates, continuously compounded,
// at calendar offsets from the evaluation date.
var BenchmarkZeros = []curve.Quote{
	{Tenor: tenor.MustParse("6M"), Rate: 0.0300},
	{Tenor: tenor.MustParse("1Y"), Rate: 0.0350},
	{Tenor: tenor.MustParse("2Y"), Rate: 0.0375},
	{Tenor: tenor.MustParse("5Y"), Rate: 0.0400},
	{Tenor: tenor.MustParse("10Y"), Rate: 0.0425},
	{Tenor: tenor.MustParse("30Y"), Rate: 0.0450},
}

// DefaultQueryTenors are the maturities compared in the report. 40Y sits
// beyond the longest quote and exercises the extrapolation path; 7Y lands
// strictly between the 5Y and 10Y anchors.
var DefaultQueryTenors = []tenor.Tenor{
	tenor.MustParse("3M"),
	tenor.MustParse("7Y"),
	tenor.MustParse("40Y"),
}
