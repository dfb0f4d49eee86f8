package cmd

import (
	"strings"
	"testing"
)

func TestReportTable(t *testing.T) {
	stdout, _, err := execute(t, "report", "--input", writeDataset(t), "--employee", "1")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	for _, want := range []string{
		"Ada Lovelace (#1)",
		"2026-03-02      8.5      7.0      1.5      0.0      0.0",
		"Total           8.5      7.0      1.5      0.0      0.0",
		"Worked 8h 30m",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("report output missing %q:\n%s", want, stdout)
		}
	}
}

func TestReportCSV(t *testing.T) {
	stdout, _, err := execute(t, "report", "--input", writeDataset(t), "--format", "csv")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	want := []string{
		"employee_id,first_name,last_name,date,total,period1,period2,period3,period4",
		"1,Ada,Lovelace,2026-03-02,8.5,7.0,1.5,0.0,0.0",
		`2,Grace,"Hopper, Rear Admiral",2026-03-02,1.0,0.0,0.0,0.0,1.0`,
		`2,Grace,"Hopper, Rear Admiral",2026-03-03,5.0,0.0,0.0,0.0,5.0`,
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), stdout)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReportJSON(t *testing.T) {
	stdout, _, err := execute(t, "report", "--input", writeDataset(t), "--format", "json", "--to", "2026-03-02")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if strings.Contains(stdout, "2026-03-03") {
		t.Errorf("--to should exclude later days:\n%s", stdout)
	}
	if !strings.Contains(stdout, `"labour_by_time_period"`) {
		t.Errorf("unexpected JSON:\n%s", stdout)
	}
}

func TestReportBadRange(t *testing.T) {
	_, _, err := execute(t, "report", "--input", writeDataset(t), "--from", "2026-03-05", "--to", "2026-03-01")
	if err == nil {
		t.Error("expected error for inverted range")
	}
}
