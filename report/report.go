package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/meenmo/zerocurve/curve"
	"github.com/meenmo/zerocurve/tenor"
)

// DefaultPrecision is the number of decimals shown for rates.
const DefaultPrecision = 5

// Row is one line of the comparison report. A failed query carries its error
// here instead of aborting the batch.
type Row struct {
	Label      string
	Maturity   time.Time
	Time       float64
	LinearRate float64
	CubicRate  float64
	Err        error
}

// CompareTimes evaluates both curves at the given time coordinates.
// Rows come back in input order, no sorting or deduplication; a failing
// query is recorded on its row and the remaining queries still run.
func CompareTimes(linear, cubic *curve.ZeroCurve, times []float64) []Row {
	rows := make([]Row, 0, len(times))
	for _, t := range times {
		row := Row{Label: fmt.Sprintf("t=%g", t), Time: t}

		lr, err := linear.ZeroRate(t)
		if err != nil {
			row.Err = err
			rows = append(rows, row)
			continue
		}
		cr, err := cubic.ZeroRate(t)
		if err != nil {
			row.Err = err
			rows = append(rows, row)
			continue
		}

		row.LinearRate = lr
		row.CubicRate = cr
		rows = append(rows, row)
	}
	return rows
}

// Compare maps each query tenor to a curve time via svc (the same maturity
// and day-count path the anchors were built with) and evaluates both curves.
func Compare(linear, cubic *curve.ZeroCurve, evalDate time.Time, queries []tenor.Tenor, svc curve.DateService) []Row {
	rows := make([]Row, 0, len(queries))
	for _, q := range queries {
		maturity := svc.Advance(evalDate, q)
		t := svc.YearFraction(evalDate, maturity)

		row := CompareTimes(linear, cubic, []float64{t})[0]
		row.Label = q.String()
		row.Maturity = maturity
		rows = append(rows, row)
	}
	return rows
}

// Failed reports whether any row carries an error.
func Failed(rows []Row) bool {
	for _, r := range rows {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Render writes the fixed-width comparison table.
func Render(w io.Writer, evalDate time.Time, rows []Row, precision int) {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	sep := strings.Repeat("-", 52)

	fmt.Fprintf(w, "Evaluation Date: %s\n", evalDate.Format("January 2, 2006"))
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "%-11s | %-11s | %s\n", "Maturity", "Linear Rate", "Cubic Spline Rate")
	fmt.Fprintln(w, sep)
	for _, row := range rows {
		if row.Err != nil {
			fmt.Fprintf(w, "%-11s |  error: %v\n", row.Label, row.Err)
			continue
		}
		fmt.Fprintf(w, "%-11s |  %-10.*f |  %-10.*f\n",
			row.Label, precision, row.LinearRate, precision, row.CubicRate)
	}
	fmt.Fprintln(w, sep)
}
