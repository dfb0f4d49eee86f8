// Package roster holds the employees of a run together with their punches
// and labour ledgers.
package roster

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Tiliavir/labour/internal/labour"
	"github.com/Tiliavir/labour/internal/model"
	"github.com/Tiliavir/labour/internal/timecalc"
)

var (
	// ErrEmployeeNotFound is returned when an id has no employee.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrDuplicateEmployee is returned when an id is added twice.
	ErrDuplicateEmployee = errors.New("duplicate employee")
)

// Employee is a staff member with the punches accepted so far.
type Employee struct {
	model.Employee
	Punches []labour.Interval
	Ledger  *labour.Ledger
}

// Report builds the export document for the days within r.
func (e *Employee) Report(r timecalc.Range) model.EmployeeReport {
	return model.EmployeeReport{
		EmployeeID: e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Labour:     labour.ReportBetween(e.Ledger, r),
	}
}

// Roster indexes employees by id.
type Roster struct {
	employees map[int64]*Employee
}

// New returns an empty Roster.
func New() *Roster {
	return &Roster{employees: make(map[int64]*Employee)}
}

// Add registers an employee with an empty ledger.
func (r *Roster) Add(e model.Employee) error {
	if _, ok := r.employees[e.ID]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateEmployee, e.ID)
	}
	r.employees[e.ID] = &Employee{Employee: e, Ledger: labour.NewLedger(e.ID)}
	return nil
}

// Get returns the employee with the given id.
func (r *Roster) Get(id int64) (*Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrEmployeeNotFound, id)
	}
	return e, nil
}

// Len returns the number of employees.
func (r *Roster) Len() int { return len(r.employees) }

// Employees returns all employees ordered by id.
func (r *Roster) Employees() []*Employee {
	out := make([]*Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Punch records iv against its employee and credits it to their ledger.
// Punches are kept in start order. A punch the ledger rejects is not
// recorded.
func (r *Roster) Punch(iv labour.Interval) error {
	e, err := r.Get(iv.EmployeeID())
	if err != nil {
		return &labour.PunchError{Interval: iv, Err: err}
	}
	if err := e.Ledger.Apply(iv); err != nil {
		return err
	}
	i := sort.Search(len(e.Punches), func(i int) bool {
		return e.Punches[i].Start().After(iv.Start())
	})
	e.Punches = append(e.Punches, labour.Interval{})
	copy(e.Punches[i+1:], e.Punches[i:])
	e.Punches[i] = iv
	return nil
}

// Reports builds the export documents of every employee, ordered by id.
func (r *Roster) Reports(rng timecalc.Range) []model.EmployeeReport {
	out := make([]model.EmployeeReport, 0, len(r.employees))
	for _, e := range r.Employees() {
		out = append(out, e.Report(rng))
	}
	return out
}
