package marketdata

import (
	"time"

	"github.com/meenmo/zerocurve/calendar"
	"github.com/meenmo/zerocurve/daycount"
	"github.com/meenmo/zerocurve/tenor"
)

// Dates implements curve.DateService by pairing a holiday calendar with a
// day count convention.
type Dates struct {
	Calendar calendar.ID
	DayCount daycount.Convention
}

// StandardDates returns the conventions the benchmark quotes are built
// under: TARGET business days and an ACT/365F curve time axis.
func StandardDates() Dates {
	return Dates{Calendar: calendar.TARGET, DayCount: daycount.Act365F}
}

func (d Dates) Advance(base time.Time, tn tenor.Tenor) time.Time {
	return calendar.Advance(d.Calendar, base, tn)
}

func (d Dates) YearFraction(start, end time.Time) float64 {
	return daycount.YearFraction(start, end, d.DayCount)
}
