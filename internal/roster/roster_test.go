package roster_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/labour/internal/labour"
	"github.com/Tiliavir/labour/internal/model"
	"github.com/Tiliavir/labour/internal/roster"
	"github.com/Tiliavir/labour/internal/timecalc"
)

func dataset() model.Dataset {
	return model.Dataset{
		Employees: []model.Employee{
			{ID: 2, FirstName: "Grace", LastName: "Hopper"},
			{ID: 1, FirstName: "Ada", LastName: "Lovelace"},
		},
		Clocks: []model.Punch{
			{EmployeeID: 1, ClockIn: "2026-03-02 05:00:00", ClockOut: "2026-03-02 12:00:00"},
			{EmployeeID: 2, ClockIn: "2026-03-02 23:00:00", ClockOut: "2026-03-03 05:00:00"},
			{EmployeeID: 1, ClockIn: "2026-03-02 13:00:00", ClockOut: "2026-03-02 14:30:00"},
		},
	}
}

func TestBuild(t *testing.T) {
	r, rejected := roster.Build(dataset())
	require.Empty(t, rejected)
	require.Equal(t, 2, r.Len())

	got := r.Reports(timecalc.Range{})
	want := []model.EmployeeReport{
		{
			EmployeeID: 1, FirstName: "Ada", LastName: "Lovelace",
			Labour: []labour.DayReport{
				{Date: "2026-03-02", Total: 8.5, Periods: labour.PeriodHours{Period1: 7, Period2: 1.5}},
			},
		},
		{
			EmployeeID: 2, FirstName: "Grace", LastName: "Hopper",
			Labour: []labour.DayReport{
				{Date: "2026-03-02", Total: 1, Periods: labour.PeriodHours{Period4: 1}},
				{Date: "2026-03-03", Total: 5, Periods: labour.PeriodHours{Period4: 5}},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Reports mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCollectsRejections(t *testing.T) {
	ds := dataset()
	ds.Employees = append(ds.Employees, model.Employee{ID: 1, FirstName: "Dup"})
	ds.Clocks = append(ds.Clocks,
		model.Punch{EmployeeID: 1, ClockIn: "2026-03-02 11:30:00", ClockOut: "2026-03-02 12:30:00"},
		model.Punch{EmployeeID: 9, ClockIn: "2026-03-02 09:00:00", ClockOut: "2026-03-02 10:00:00"},
		model.Punch{EmployeeID: 2, ClockIn: "not a time", ClockOut: "2026-03-02 10:00:00"},
		model.Punch{EmployeeID: 2, ClockIn: "2026-03-05 10:00:00", ClockOut: "2026-03-05 09:00:00"},
	)

	r, rejected := roster.Build(ds)
	require.Len(t, rejected, 5)

	assert.ErrorIs(t, rejected[0].Err, roster.ErrDuplicateEmployee)
	assert.NotNil(t, rejected[0].Employee)

	var overflow *labour.OverflowError
	assert.ErrorAs(t, rejected[1].Err, &overflow)
	assert.Equal(t, "2026-03-02 11:30:00", rejected[1].Punch.ClockIn)

	assert.ErrorIs(t, rejected[2].Err, roster.ErrEmployeeNotFound)
	assert.Error(t, rejected[3].Err)
	assert.ErrorIs(t, rejected[4].Err, labour.ErrInvalidInterval)

	ada, err := r.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Ada", ada.FirstName, "duplicate must not replace the first record")
	assert.Len(t, ada.Punches, 2)
	assert.Equal(t, 8.5, ada.Report(timecalc.Range{}).Labour[0].Total)
}

func TestGet(t *testing.T) {
	r := roster.New()
	require.NoError(t, r.Add(model.Employee{ID: 5, FirstName: "Edsger"}))

	e, err := r.Get(5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), e.Ledger.EmployeeID())

	_, err = r.Get(6)
	assert.ErrorIs(t, err, roster.ErrEmployeeNotFound)
}

func TestEmployeesOrdered(t *testing.T) {
	r := roster.New()
	for _, id := range []int64{30, 10, 20} {
		require.NoError(t, r.Add(model.Employee{ID: id}))
	}
	var ids []int64
	for _, e := range r.Employees() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []int64{10, 20, 30}, ids)
}

func TestReportRange(t *testing.T) {
	r, rejected := roster.Build(dataset())
	require.Empty(t, rejected)

	grace, err := r.Get(2)
	require.NoError(t, err)
	rep := grace.Report(timecalc.Range{From: timecalc.Date{Year: 2026, Month: 3, Day: 3}})
	require.Len(t, rep.Labour, 1)
	assert.Equal(t, "2026-03-03", rep.Labour[0].Date)
}

func TestParsePunch(t *testing.T) {
	iv, err := roster.ParsePunch(model.Punch{EmployeeID: 3, ClockIn: "2026-03-02 09:15:30", ClockOut: "2026-03-02 09:45:10"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), iv.EmployeeID())
	assert.Equal(t, int64(1780), iv.Seconds())

	_, err = roster.ParsePunch(model.Punch{ClockIn: "2026-03-02 09:15:30", ClockOut: "later"})
	assert.Error(t, err)
}

func TestPunchesKeptInStartOrder(t *testing.T) {
	r := roster.New()
	require.NoError(t, r.Add(model.Employee{ID: 1}))
	for _, p := range []model.Punch{
		{EmployeeID: 1, ClockIn: "2026-03-03 09:00:00", ClockOut: "2026-03-03 10:00:00"},
		{EmployeeID: 1, ClockIn: "2026-03-02 13:00:00", ClockOut: "2026-03-02 14:00:00"},
		{EmployeeID: 1, ClockIn: "2026-03-03 07:00:00", ClockOut: "2026-03-03 08:00:00"},
		{EmployeeID: 1, ClockIn: "2026-03-02 08:00:00", ClockOut: "2026-03-02 09:00:00"},
	} {
		iv, err := roster.ParsePunch(p)
		require.NoError(t, err)
		require.NoError(t, r.Punch(iv))
	}

	e, err := r.Get(1)
	require.NoError(t, err)
	var starts []string
	for _, iv := range e.Punches {
		starts = append(starts, iv.Start().Format(timecalc.ClockLayout))
	}
	want := []string{"2026-03-02 08:00:00", "2026-03-02 13:00:00", "2026-03-03 07:00:00", "2026-03-03 09:00:00"}
	if diff := cmp.Diff(want, starts); diff != "" {
		t.Errorf("punch order (-want +got):\n%s", diff)
	}
}
