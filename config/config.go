package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/meenmo/zerocurve/marketdata"
	"github.com/meenmo/zerocurve/report"
	"github.com/meenmo/zerocurve/tenor"
)

// Config is the on-disk run configuration (YAML). It controls the evaluation
// date, the queried maturities and the table precision. The benchmark quotes
// themselves are compiled in and not configurable.
type Config struct {
	EvaluationDate string   `yaml:"evaluation_date"`
	Queries        []string `yaml:"queries"`
	Precision      int      `yaml:"precision"`
}

// Run is the parsed and validated form of Config.
type Run struct {
	EvaluationDate time.Time
	Queries        []tenor.Tenor
	Precision      int
}

// Default returns the run parameters used when no config is provided.
func Default() Run {
	return Run{
		EvaluationDate: marketdata.DefaultEvaluationDate,
		Queries:        append([]tenor.Tenor(nil), marketdata.DefaultQueryTenors...),
		Precision:      report.DefaultPrecision,
	}
}

// Load reads a YAML config file and parses it on top of the defaults.
func Load(path string) (Run, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Run{}, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Run{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return c.Parse()
}

// Parse validates the config, filling unset fields from Default.
func (c Config) Parse() (Run, error) {
	run := Default()

	if c.EvaluationDate != "" {
		t, err := time.Parse("2006-01-02", c.EvaluationDate)
		if err != nil {
			return Run{}, fmt.Errorf("config: invalid evaluation_date %q: %w", c.EvaluationDate, err)
		}
		run.EvaluationDate = t
	}

	if len(c.Queries) > 0 {
		queries := make([]tenor.Tenor, 0, len(c.Queries))
		for _, q := range c.Queries {
			tn, err := tenor.Parse(q)
			if err != nil {
				return Run{}, fmt.Errorf("config: invalid query: %w", err)
			}
			queries = append(queries, tn)
		}
		run.Queries = queries
	}

	if c.Precision != 0 {
		if c.Precision < 1 || c.Precision > 12 {
			return Run{}, fmt.Errorf("config: precision must be between 1 and 12, got %d", c.Precision)
		}
		run.Precision = c.Precision
	}

	return run, nil
}
