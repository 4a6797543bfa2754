package curve

import (
	"fmt"
	"math"
	"time"

	"github.com/meenmo/zerocurve/tenor"
)

// Quote is a market-quoted zero rate at a calendar offset from the
// evaluation date. Rate is a continuously compounded decimal (0.03 == 3%).
type Quote struct {
	Tenor tenor.Tenor
	Rate  float64
}

// DateService is the narrow calendar collaborator used to map calendar
// offsets onto the curve's time axis. Keeping the curve behind this interface
// means the interpolation math never touches holiday or day-count logic and
// can be tested with synthetic times.
type DateService interface {
	// Advance returns the business date at the given offset from base.
	Advance(base time.Time, tn tenor.Tenor) time.Time
	// YearFraction returns the day-count time between two dates, in years.
	YearFraction(start, end time.Time) float64
}

// BuildAnchors converts quoted (offset, rate) pairs into curve anchors
// relative to evalDate. The evaluation date is always passed explicitly;
// there is no process-wide setting. Quote order is preserved and the
// resulting times must come out strictly increasing.
func BuildAnchors(evalDate time.Time, quotes []Quote, svc DateService) ([]Anchor, error) {
	if len(quotes) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 quotes, got %d", ErrMalformedCurveInput, len(quotes))
	}

	anchors := make([]Anchor, 0, len(quotes))
	for i, q := range quotes {
		if math.IsNaN(q.Rate) || math.IsInf(q.Rate, 0) {
			return nil, fmt.Errorf("%w: quote %s has non-finite rate", ErrMalformedCurveInput, q.Tenor)
		}
		maturity := svc.Advance(evalDate, q.Tenor)
		t := svc.YearFraction(evalDate, maturity)
		if i > 0 && t <= anchors[i-1].Time {
			return nil, fmt.Errorf("%w: quote %s: time %.6f not after previous quote", ErrMalformedCurveInput, q.Tenor, t)
		}
		anchors = append(anchors, Anchor{Time: t, Rate: q.Rate})
	}
	return anchors, nil
}
