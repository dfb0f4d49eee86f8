package labour

import (
	"errors"
	"fmt"

	"github.com/Tiliavir/labour/internal/timecalc"
)

var (
	// ErrInvalidInterval is returned when a punch ends before it starts.
	ErrInvalidInterval = errors.New("invalid interval: end before start")

	// ErrInvalidHour is returned for an hour-of-day outside 0-23.
	ErrInvalidHour = errors.New("invalid hour of day")

	// ErrNegativeSeconds is returned when a bucket would be decremented.
	ErrNegativeSeconds = errors.New("negative seconds")

	// ErrNotFound is returned by Ledger.Lookup for a date with no record.
	// It is expected; callers create the record instead of propagating.
	ErrNotFound = errors.New("labour date not found")

	// ErrEmployeeMismatch is returned when a punch is applied to another
	// employee's ledger.
	ErrEmployeeMismatch = errors.New("punch belongs to a different employee")
)

// OverflowError reports an hourly bucket that would exceed one hour of
// work. It means the punches overlap or the input is malformed.
type OverflowError struct {
	Date    timecalc.Date
	Hour    int
	Current int64
	Adding  int64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("hour %02d on %s overflows: %ds recorded, adding %ds exceeds %ds",
		e.Hour, e.Date, e.Current, e.Adding, SecondsPerHour)
}

// PunchError ties a failure to the punch that caused it.
type PunchError struct {
	Interval Interval
	Err      error
}

func (e *PunchError) Error() string {
	return fmt.Sprintf("punch for employee %d (%s to %s): %v",
		e.Interval.EmployeeID(),
		e.Interval.Start().Format(timecalc.ClockLayout),
		e.Interval.End().Format(timecalc.ClockLayout),
		e.Err)
}

func (e *PunchError) Unwrap() error {
	return e.Err
}
