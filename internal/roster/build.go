package roster

import (
	"github.com/Tiliavir/labour/internal/labour"
	"github.com/Tiliavir/labour/internal/model"
	"github.com/Tiliavir/labour/internal/timecalc"
)

// Rejection is an input record that could not be applied.
type Rejection struct {
	Employee *model.Employee
	Punch    *model.Punch
	Err      error
}

// Build loads a dataset into a new Roster. Bad records are skipped and
// returned as rejections so the caller can report them; the rest of the
// dataset is still applied.
func Build(ds model.Dataset) (*Roster, []Rejection) {
	r := New()
	var rejected []Rejection

	for i := range ds.Employees {
		if err := r.Add(ds.Employees[i]); err != nil {
			rejected = append(rejected, Rejection{Employee: &ds.Employees[i], Err: err})
		}
	}

	for i := range ds.Clocks {
		p := &ds.Clocks[i]
		iv, err := ParsePunch(*p)
		if err == nil {
			err = r.Punch(iv)
		}
		if err != nil {
			rejected = append(rejected, Rejection{Punch: p, Err: err})
		}
	}
	return r, rejected
}

// ParsePunch converts a raw punch record into an Interval.
func ParsePunch(p model.Punch) (labour.Interval, error) {
	in, err := timecalc.ParseClock(p.ClockIn)
	if err != nil {
		return labour.Interval{}, err
	}
	out, err := timecalc.ParseClock(p.ClockOut)
	if err != nil {
		return labour.Interval{}, err
	}
	return labour.NewInterval(p.EmployeeID, in, out)
}
