package labour_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Tiliavir/labour/internal/labour"
	"github.com/Tiliavir/labour/internal/timecalc"
)

func TestRoundHours(t *testing.T) {
	tests := []struct {
		seconds int64
		want    float64
	}{
		{0, 0},
		{170, 0},
		{180, 0.1},
		{1780, 0.5},
		{3599, 1},
		{3600, 1},
		{5400, 1.5},
		{25200, 7},
		{30420, 8.5},
	}
	for _, tt := range tests {
		got := labour.RoundHours(tt.seconds)
		if got != tt.want {
			t.Errorf("RoundHours(%d) = %v, want %v", tt.seconds, got, tt.want)
		}
	}
}

func TestReport(t *testing.T) {
	l := labour.NewLedger(1)
	apply(t, l, at(3, 23, 0, 0), at(4, 5, 0, 0))
	apply(t, l, at(2, 9, 15, 30), at(2, 9, 45, 10))
	apply(t, l, at(4, 11, 0, 0), at(4, 19, 30, 0))

	got := labour.Report(l)
	want := []labour.DayReport{
		{Date: "2026-03-02", Total: 0.5, Periods: labour.PeriodHours{Period1: 0.5}},
		{Date: "2026-03-03", Total: 1, Periods: labour.PeriodHours{Period4: 1}},
		{Date: "2026-03-04", Total: 13.5, Periods: labour.PeriodHours{Period1: 1, Period2: 6, Period3: 1.5, Period4: 5}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Report mismatch (-want +got):\n%s", diff)
	}
}

func TestReportBetween(t *testing.T) {
	l := labour.NewLedger(1)
	for d := 1; d <= 5; d++ {
		apply(t, l, at(d, 9, 0, 0), at(d, 10, 0, 0))
	}

	got := labour.ReportBetween(l, timecalc.Range{From: march(2), To: march(3)})
	var dates []string
	for _, r := range got {
		dates = append(dates, r.Date)
	}
	if diff := cmp.Diff([]string{"2026-03-02", "2026-03-03"}, dates); diff != "" {
		t.Errorf("ReportBetween dates (-want +got):\n%s", diff)
	}
}

func TestReportEmptyLedger(t *testing.T) {
	got := labour.Report(labour.NewLedger(1))
	if got == nil || len(got) != 0 {
		t.Errorf("Report on empty ledger = %#v, want empty non-nil slice", got)
	}
}
