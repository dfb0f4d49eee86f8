package labour

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Tiliavir/labour/internal/timecalc"
)

// Ledger is the set of per-date labour records for one employee. Records
// are created on first use and never removed.
type Ledger struct {
	employeeID int64
	days       map[timecalc.Date]*DailyLabour
	last       *DailyLabour
}

// NewLedger returns an empty ledger owned by employeeID.
func NewLedger(employeeID int64) *Ledger {
	return &Ledger{employeeID: employeeID, days: make(map[timecalc.Date]*DailyLabour)}
}

func (l *Ledger) EmployeeID() int64 { return l.employeeID }

// Len returns the number of dated records.
func (l *Ledger) Len() int { return len(l.days) }

// Lookup returns the record for d, or ErrNotFound.
func (l *Ledger) Lookup(d timecalc.Date) (*DailyLabour, error) {
	if l.last != nil && l.last.date == d {
		return l.last, nil
	}
	rec, ok := l.days[d]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, d)
	}
	l.last = rec
	return rec, nil
}

// ResolveOrCreate returns the record for d, creating an empty one if needed.
func (l *Ledger) ResolveOrCreate(d timecalc.Date) *DailyLabour {
	rec, err := l.Lookup(d)
	if errors.Is(err, ErrNotFound) {
		rec = newDailyLabour(d)
		l.days[d] = rec
		l.last = rec
	}
	return rec
}

// Apply allocates iv into hourly slices and credits each one to its day.
// Every slice is checked before any bucket changes, so a rejected punch
// leaves the ledger as it was. Failures are returned as *PunchError.
func (l *Ledger) Apply(iv Interval) error {
	if iv.EmployeeID() != l.employeeID {
		return &PunchError{Interval: iv, Err: fmt.Errorf("%w: ledger %d", ErrEmployeeMismatch, l.employeeID)}
	}

	type slot struct {
		date timecalc.Date
		hour int
	}
	slices := Allocate(iv)
	pending := make(map[slot]int64, len(slices))
	for _, s := range slices {
		key := slot{s.Date, s.Hour}
		rec, err := l.Lookup(s.Date)
		if errors.Is(err, ErrNotFound) {
			rec = newDailyLabour(s.Date)
		}
		if err := rec.check(s.Hour, pending[key]+s.Seconds); err != nil {
			return &PunchError{Interval: iv, Err: err}
		}
		pending[key] += s.Seconds
	}

	for _, s := range slices {
		rec := l.ResolveOrCreate(s.Date)
		if err := rec.AddSeconds(s.Hour, s.Seconds); err != nil {
			return &PunchError{Interval: iv, Err: err}
		}
		rec.Recompute()
	}
	return nil
}

// Days returns every record in ascending date order.
func (l *Ledger) Days() []*DailyLabour {
	days := make([]*DailyLabour, 0, len(l.days))
	for _, rec := range l.days {
		days = append(days, rec)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].date.Before(days[j].date)
	})
	return days
}
