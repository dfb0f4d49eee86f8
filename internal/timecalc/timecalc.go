package timecalc

import (
	"fmt"
	"time"
)

const (
	// ClockLayout is the naive local timestamp form used by punch records.
	ClockLayout = "2006-01-02 15:04:05"
	// DateLayout is the calendar date form used for report keys.
	DateLayout = "2006-01-02"
)

// Date is a calendar day with no time or location attached. It is
// comparable and can be used as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Before reports whether d falls on an earlier day than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// After reports whether d falls on a later day than o.
func (d Date) After(o Date) bool {
	return o.Before(d)
}

// Range is an inclusive span of calendar dates. A zero From or To leaves
// that side open.
type Range struct {
	From Date
	To   Date
}

// Contains reports whether d lies within r.
func (r Range) Contains(d Date) bool {
	if !r.From.IsZero() && d.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && d.After(r.To) {
		return false
	}
	return true
}

// ParseRange builds a Range from optional YYYY-MM-DD bounds.
func ParseRange(from, to string) (Range, error) {
	var r Range
	var err error
	if from != "" {
		if r.From, err = ParseDate(from); err != nil {
			return Range{}, err
		}
	}
	if to != "" {
		if r.To, err = ParseDate(to); err != nil {
			return Range{}, err
		}
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return Range{}, fmt.Errorf("invalid range: %s is before %s", r.To, r.From)
	}
	return r, nil
}

// ParseClock parses a naive "YYYY-MM-DD HH:MM:SS" timestamp. The wall
// clock is kept in UTC so that hour arithmetic never meets a DST jump.
func ParseClock(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ClockLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return t, nil
}

// StartOfHour returns the top of the hour containing t.
func StartOfHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

// SecondsIntoHour returns the whole seconds elapsed since the top of t's hour.
func SecondsIntoHour(t time.Time) int64 {
	return int64(t.Minute()*60 + t.Second())
}

// SameHour reports whether a and b fall in the same calendar hour.
func SameHour(a, b time.Time) bool {
	return SameDay(a, b) && a.Hour() == b.Hour()
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DateOf(a) == DateOf(b)
}

// FormatDuration formats seconds as a human-readable string like "1h 40m" or "45m" or "30s".
func FormatDuration(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}
