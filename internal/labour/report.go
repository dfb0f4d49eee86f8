package labour

import (
	"github.com/shopspring/decimal"

	"github.com/Tiliavir/labour/internal/timecalc"
)

var secondsPerHour = decimal.NewFromInt(SecondsPerHour)

// RoundHours converts seconds to hours rounded to one decimal place,
// halves away from zero.
func RoundHours(seconds int64) float64 {
	return decimal.NewFromInt(seconds).Div(secondsPerHour).Round(1).InexactFloat64()
}

// PeriodHours is the rounded hours worked in each labour period.
type PeriodHours struct {
	Period1 float64 `json:"period1" yaml:"period1"`
	Period2 float64 `json:"period2" yaml:"period2"`
	Period3 float64 `json:"period3" yaml:"period3"`
	Period4 float64 `json:"period4" yaml:"period4"`
}

// DayReport is the exported form of one DailyLabour.
type DayReport struct {
	Date    string      `json:"date" yaml:"date"`
	Total   float64     `json:"total" yaml:"total"`
	Periods PeriodHours `json:"labour_by_time_period" yaml:"labour_by_time_period"`
}

// Report converts the record to rounded hours. Internal counts stay in seconds.
func (d *DailyLabour) Report() DayReport {
	return DayReport{
		Date:  d.date.String(),
		Total: RoundHours(d.total),
		Periods: PeriodHours{
			Period1: RoundHours(d.Period(Period1)),
			Period2: RoundHours(d.Period(Period2)),
			Period3: RoundHours(d.Period(Period3)),
			Period4: RoundHours(d.Period(Period4)),
		},
	}
}

// Report lists every day of the ledger in ascending date order.
func Report(l *Ledger) []DayReport {
	return ReportBetween(l, timecalc.Range{})
}

// ReportBetween lists the days of the ledger that fall within r.
func ReportBetween(l *Ledger, r timecalc.Range) []DayReport {
	out := []DayReport{}
	for _, rec := range l.Days() {
		if !r.Contains(rec.date) {
			continue
		}
		out = append(out, rec.Report())
	}
	return out
}
