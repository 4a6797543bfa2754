package daycount

import "time"

// Convention identifies a day count convention.
type Convention string

const (
	// Act365F divides actual days by 365, the standard basis for curve
	// time axes.
	Act365F Convention = "ACT/365F"
	// Act360 divides actual days by 360 (money-market basis).
	Act360 Convention = "ACT/360"
	// Thirty360E is 30E/360 (Eurobond basis): day-of-month capped at 30.
	Thirty360E Convention = "30E/360"
)

// YearFraction computes the year fraction between two dates under the given
// convention. Unknown conventions fall back to ACT/365F.
func YearFraction(start, end time.Time, conv Convention) float64 {
	switch conv {
	case Act360:
		return days(start, end) / 360.0
	case Thirty360E:
		d1 := start.Day()
		if d1 > 30 {
			d1 = 30
		}
		d2 := end.Day()
		if d2 > 30 {
			d2 = 30
		}
		y1, m1 := start.Year(), int(start.Month())
		y2, m2 := end.Year(), int(end.Month())
		return float64(360*(y2-y1)+30*(m2-m1)+(d2-d1)) / 360.0
	default:
		return days(start, end) / 365.0
	}
}

func days(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24
}
