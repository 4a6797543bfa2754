package tenor

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is the calendar unit of a tenor.
type Unit byte

const (
	Days   Unit = 'D'
	Weeks  Unit = 'W'
	Months Unit = 'M'
	Years  Unit = 'Y'
)

// Tenor is a calendar offset such as 6M or 40Y.
type Tenor struct {
	N    int
	Unit Unit
}

// Parse converts strings like "1W", "3M", "10Y" into a Tenor.
func Parse(s string) (Tenor, error) {
	trimmed := strings.TrimSpace(strings.ToUpper(s))
	if len(trimmed) < 2 {
		return Tenor{}, fmt.Errorf("tenor: invalid tenor %q", s)
	}

	unit := Unit(trimmed[len(trimmed)-1])
	switch unit {
	case Days, Weeks, Months, Years:
	default:
		return Tenor{}, fmt.Errorf("tenor: unknown unit in %q", s)
	}

	n, err := strconv.Atoi(trimmed[:len(trimmed)-1])
	if err != nil {
		return Tenor{}, fmt.Errorf("tenor: invalid count in %q", s)
	}
	if n <= 0 {
		return Tenor{}, fmt.Errorf("tenor: count must be positive in %q", s)
	}

	return Tenor{N: n, Unit: unit}, nil
}

// MustParse is Parse for static tables; it panics on malformed input.
func MustParse(s string) Tenor {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Tenor) String() string {
	return fmt.Sprintf("%d%c", t.N, t.Unit)
}

// Months returns the exact month count for month/year tenors.
// Day and week tenors have no exact month equivalent.
func (t Tenor) Months() (int, bool) {
	switch t.Unit {
	case Months:
		return t.N, true
	case Years:
		return 12 * t.N, true
	default:
		return 0, false
	}
}

// Years returns the approximate tenor length in years, useful for ordering
// and labels. Day and week tenors use an ACT/365-style approximation.
func (t Tenor) Years() float64 {
	switch t.Unit {
	case Days:
		return float64(t.N) / 365.0
	case Weeks:
		return float64(t.N) * 7.0 / 365.0
	case Months:
		return float64(t.N) / 12.0
	default:
		return float64(t.N)
	}
}
