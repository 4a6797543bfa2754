package calendar

import (
	"time"

	"github.com/meenmo/zerocurve/tenor"
)

// ID identifies a holiday calendar.
type ID string

const (
	// TARGET is the Trans-European Automated Real-time Gross settlement
	// Express Transfer calendar used for EUR-denominated curves.
	TARGET ID = "TARGET"
)

// isHoliday applies the TARGET holiday rules in force since 2000:
// New Year's Day, Good Friday, Easter Monday, Labour Day, Christmas Day
// and Boxing Day.
func isHoliday(cal ID, t time.Time) bool {
	switch cal {
	case TARGET:
		m, d := t.Month(), t.Day()
		if m == time.January && d == 1 {
			return true
		}
		if m == time.May && d == 1 {
			return true
		}
		if m == time.December && (d == 25 || d == 26) {
			return true
		}
		easter := easterSunday(t.Year())
		gf := easter.AddDate(0, 0, -2)
		em := easter.AddDate(0, 0, 1)
		return sameDay(t, gf) || sameDay(t, em)
	default:
		return false
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// easterSunday returns Easter Sunday for a Gregorian year
// (anonymous Gregorian computus).
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// IsBusinessDay checks weekends and the holiday rules.
func IsBusinessDay(cal ID, t time.Time) bool {
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return false
	}
	return !isHoliday(cal, t)
}

// Adjust applies Modified Following.
func Adjust(cal ID, t time.Time) time.Time {
	origMonth := t.Month()
	for !IsBusinessDay(cal, t) {
		t = t.AddDate(0, 0, 1)
	}
	if t.Month() != origMonth {
		t = t.AddDate(0, 0, -1)
		for !IsBusinessDay(cal, t) {
			t = t.AddDate(0, 0, -1)
		}
	}
	return t
}

// AdjustFollowing applies a simple Following convention (no month preservation).
func AdjustFollowing(cal ID, t time.Time) time.Time {
	for !IsBusinessDay(cal, t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// AddBusinessDays advances n business days (n can be negative).
func AddBusinessDays(cal ID, t time.Time, n int) time.Time {
	step := 1
	if n < 0 {
		step = -1
	}
	for n != 0 {
		t = t.AddDate(0, 0, step)
		if IsBusinessDay(cal, t) {
			n -= step
		}
	}
	return t
}

// Advance moves a base date forward by a calendar offset and adjusts the
// result to a business day. Day tenors count business days; week tenors add
// calendar weeks and roll Following; month and year tenors add calendar
// months (EDATE-style, no month-overflow normalization) and roll
// Modified Following.
func Advance(cal ID, base time.Time, tn tenor.Tenor) time.Time {
	switch tn.Unit {
	case tenor.Days:
		return AddBusinessDays(cal, base, tn.N)
	case tenor.Weeks:
		return AdjustFollowing(cal, base.AddDate(0, 0, 7*tn.N))
	default:
		months, _ := tn.Months()
		return Adjust(cal, addMonths(base, months))
	}
}

// addMonths behaves like Excel's EDATE: Aug 31 + 6M lands on the last day of
// February instead of normalizing into March.
func addMonths(t time.Time, months int) time.Time {
	d := t.AddDate(0, months, 0)
	want := (int(t.Month()) - 1 + months) % 12
	if want < 0 {
		want += 12
	}
	for int(d.Month())-1 != want {
		d = d.AddDate(0, 0, -1)
	}
	return d
}
