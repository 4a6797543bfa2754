package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/meenmo/zerocurve/config"
	"github.com/meenmo/zerocurve/curve"
	"github.com/meenmo/zerocurve/marketdata"
	"github.com/meenmo/zerocurve/report"
	"github.com/meenmo/zerocurve/tenor"
)

func main() {
	configPath := flag.String("config", "", "YAML run config path (optional)")
	dateArg := flag.String("date", "", "Evaluation date, YYYY-MM-DD (overrides config)")
	queriesArg := flag.String("queries", "", "Comma-separated query tenors, e.g. 3M,7Y,40Y (overrides config)")
	precision := flag.Int("precision", 0, "Rate decimals in the table (overrides config)")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: curvecompare [-config <path>] [-date YYYY-MM-DD] [-queries 3M,7Y,40Y] [-precision n]")
		fmt.Fprintln(os.Stderr, "Compare linear vs natural cubic spline zero-rate interpolation over the benchmark quotes.")
		return
	}

	run, err := loadRun(*configPath)
	if err != nil {
		exitError(fmt.Sprintf("load config: %v", err))
	}
	if err := applyFlags(&run, *dateArg, *queriesArg, *precision); err != nil {
		exitError(err.Error())
	}

	dates := marketdata.StandardDates()

	anchors, err := curve.BuildAnchors(run.EvaluationDate, marketdata.BenchmarkZeros, dates)
	if err != nil {
		exitError(fmt.Sprintf("build anchors: %v", err))
	}
	linear, err := curve.NewZeroCurve(anchors, curve.Linear)
	if err != nil {
		exitError(fmt.Sprintf("build linear curve: %v", err))
	}
	cubic, err := curve.NewZeroCurve(anchors, curve.NaturalCubicSpline)
	if err != nil {
		exitError(fmt.Sprintf("build cubic curve: %v", err))
	}

	rows := report.Compare(linear, cubic, run.EvaluationDate, run.Queries, dates)
	report.Render(os.Stdout, run.EvaluationDate, rows, run.Precision)

	if report.Failed(rows) {
		os.Exit(1)
	}
}

func loadRun(path string) (config.Run, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func applyFlags(run *config.Run, dateArg, queriesArg string, precision int) error {
	if dateArg != "" {
		t, err := time.Parse("2006-01-02", dateArg)
		if err != nil {
			return fmt.Errorf("invalid -date %q: %v", dateArg, err)
		}
		run.EvaluationDate = t
	}

	if queriesArg != "" {
		queries := []tenor.Tenor{}
		for _, part := range strings.Split(queriesArg, ",") {
			tn, err := tenor.Parse(part)
			if err != nil {
				return fmt.Errorf("invalid -queries: %v", err)
			}
			queries = append(queries, tn)
		}
		run.Queries = queries
	}

	if precision != 0 {
		if precision < 1 || precision > 12 {
			return fmt.Errorf("invalid -precision %d: must be between 1 and 12", precision)
		}
		run.Precision = precision
	}
	return nil
}

func exitError(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
