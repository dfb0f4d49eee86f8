package labour

import (
	"fmt"

	"github.com/Tiliavir/labour/internal/timecalc"
)

// Period is one of the four fixed reporting ranges of the day.
type Period int

const (
	Period1 Period = iota + 1 // 05:00-12:00
	Period2                   // 12:00-18:00
	Period3                   // 18:00-23:00
	Period4                   // 23:00-05:00, split across two dates
)

// Periods lists every period in report order.
var Periods = []Period{Period1, Period2, Period3, Period4}

func (p Period) String() string {
	return fmt.Sprintf("period%d", int(p))
}

// PeriodOf returns the labour period that hour h belongs to.
func PeriodOf(h int) Period {
	switch {
	case h >= 5 && h <= 11:
		return Period1
	case h >= 12 && h <= 17:
		return Period2
	case h >= 18 && h <= 22:
		return Period3
	default:
		return Period4
	}
}

// DailyLabour holds the worked seconds of each hour of one calendar day.
type DailyLabour struct {
	date    timecalc.Date
	hourly  [24]int64
	total   int64
	periods [4]int64
}

func newDailyLabour(d timecalc.Date) *DailyLabour {
	return &DailyLabour{date: d}
}

func (d *DailyLabour) Date() timecalc.Date { return d.date }

// Hour returns the seconds recorded for hour h, or zero for an invalid hour.
func (d *DailyLabour) Hour(h int) int64 {
	if h < 0 || h > 23 {
		return 0
	}
	return d.hourly[h]
}

// Hourly returns a copy of all 24 buckets.
func (d *DailyLabour) Hourly() [24]int64 { return d.hourly }

// Total is the sum of all buckets as of the last Recompute.
func (d *DailyLabour) Total() int64 { return d.total }

// Period is the sum of p's buckets as of the last Recompute.
func (d *DailyLabour) Period(p Period) int64 {
	if p < Period1 || p > Period4 {
		return 0
	}
	return d.periods[p-1]
}

// PeriodSeconds returns the four period sums in order.
func (d *DailyLabour) PeriodSeconds() [4]int64 { return d.periods }

// AddSeconds credits seconds to hour h. The bucket is left unchanged if
// the result would exceed one hour.
func (d *DailyLabour) AddSeconds(h int, seconds int64) error {
	if h < 0 || h > 23 {
		return fmt.Errorf("%w: %d", ErrInvalidHour, h)
	}
	if seconds < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSeconds, seconds)
	}
	if err := d.check(h, seconds); err != nil {
		return err
	}
	d.hourly[h] += seconds
	return nil
}

func (d *DailyLabour) check(h int, seconds int64) error {
	if d.hourly[h]+seconds > SecondsPerHour {
		return &OverflowError{Date: d.date, Hour: h, Current: d.hourly[h], Adding: seconds}
	}
	return nil
}

// Recompute derives the total and the period sums from the buckets.
func (d *DailyLabour) Recompute() {
	var total int64
	var periods [4]int64
	for h, s := range d.hourly {
		total += s
		periods[PeriodOf(h)-1] += s
	}
	d.total = total
	d.periods = periods
}
