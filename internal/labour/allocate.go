// Package labour splits punches into hourly buckets and rolls them up into
// per-day records and fixed labour periods.
package labour

import (
	"fmt"
	"time"

	"github.com/Tiliavir/labour/internal/timecalc"
)

// SecondsPerHour is the capacity of one hourly bucket.
const SecondsPerHour = 3600

// Interval is one clock-in to clock-out span for an employee.
type Interval struct {
	employeeID int64
	start      time.Time
	end        time.Time
}

// NewInterval builds an Interval from the wall-clock readings of start and
// end, truncated to whole seconds and placed in UTC. A zero-length
// interval is accepted and allocates nothing.
func NewInterval(employeeID int64, start, end time.Time) (Interval, error) {
	start = wallClock(start)
	end = wallClock(end)
	if end.Before(start) {
		return Interval{}, fmt.Errorf("%w: %s > %s", ErrInvalidInterval,
			start.Format(timecalc.ClockLayout), end.Format(timecalc.ClockLayout))
	}
	return Interval{employeeID: employeeID, start: start, end: end}, nil
}

// wallClock drops t's zone so every calendar hour appears exactly once.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

func (iv Interval) EmployeeID() int64 { return iv.employeeID }
func (iv Interval) Start() time.Time { return iv.start }
func (iv Interval) End() time.Time { return iv.end }
func (iv Interval) Seconds() int64 { return int64(iv.end.Sub(iv.start) / time.Second) }
func (iv Interval) Date() timecalc.Date { return timecalc.DateOf(iv.start) }

// Slice is the share of an interval that falls inside one calendar hour.
type Slice struct {
	Date    timecalc.Date
	Hour    int
	Seconds int64
}

// Allocate splits iv into chronological per-hour slices. Each slice is
// dated by its own hour slot, so an interval crossing midnight yields
// slices on both days. An end exactly on the hour adds no empty slice.
func Allocate(iv Interval) []Slice {
	if !iv.end.After(iv.start) {
		return nil
	}

	var slices []Slice
	for slot := timecalc.StartOfHour(iv.start); slot.Before(iv.end); slot = slot.Add(time.Hour) {
		first := timecalc.SameHour(slot, iv.start)
		last := timecalc.SameHour(slot, iv.end)

		var seconds int64
		switch {
		case first && last:
			seconds = timecalc.SecondsIntoHour(iv.end) - timecalc.SecondsIntoHour(iv.start)
		case first:
			seconds = SecondsPerHour - timecalc.SecondsIntoHour(iv.start)
		case last:
			seconds = timecalc.SecondsIntoHour(iv.end)
		default:
			seconds = SecondsPerHour
		}

		slices = append(slices, Slice{
			Date:    timecalc.DateOf(slot),
			Hour:    slot.Hour(),
			Seconds: seconds,
		})
	}
	return slices
}
