package main

import (
	"fmt"
	"os"

	"github.com/meenmo/zerocurve/curve"
	"github.com/meenmo/zerocurve/marketdata"
	"github.com/meenmo/zerocurve/report"
)

// Builds the benchmark zero curve under both interpolation modes and prints
// the comparison table. For a configurable run, see cmd/curvecompare.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dates := marketdata.StandardDates()
	evalDate := marketdata.DefaultEvaluationDate

	anchors, err := curve.BuildAnchors(evalDate, marketdata.BenchmarkZeros, dates)
	if err != nil {
		return err
	}

	linear, err := curve.NewZeroCurve(anchors, curve.Linear)
	if err != nil {
		return err
	}
	cubic, err := curve.NewZeroCurve(anchors, curve.NaturalCubicSpline)
	if err != nil {
		return err
	}

	rows := report.Compare(linear, cubic, evalDate, marketdata.DefaultQueryTenors, dates)
	report.Render(os.Stdout, evalDate, rows, report.DefaultPrecision)

	if report.Failed(rows) {
		return fmt.Errorf("one or more queries failed")
	}
	return nil
}
