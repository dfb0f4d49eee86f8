// Package model defines the records read from a punch dataset and the
// per-employee document written by an export.
package model

import "github.com/Tiliavir/labour/internal/labour"

// Employee is one staff member in the dataset.
type Employee struct {
	ID        int64  `json:"id" yaml:"id"`
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
}

// Punch is one raw clock-in/clock-out record. Times use the naive
// "YYYY-MM-DD HH:MM:SS" form.
type Punch struct {
	EmployeeID int64  `json:"employee_id" yaml:"employee_id"`
	ClockIn    string `json:"clock_in_datetime" yaml:"clock_in_datetime"`
	ClockOut   string `json:"clock_out_datetime" yaml:"clock_out_datetime"`
}

// Dataset is the top-level structure of an input file.
type Dataset struct {
	Employees []Employee `json:"employees" yaml:"employees"`
	Clocks    []Punch    `json:"clocks" yaml:"clocks"`
}

// EmployeeReport is the exported labour breakdown of one employee.
type EmployeeReport struct {
	EmployeeID int64              `json:"employee_id" yaml:"employee_id"`
	FirstName  string             `json:"first_name" yaml:"first_name"`
	LastName   string             `json:"last_name" yaml:"last_name"`
	Labour     []labour.DayReport `json:"labour" yaml:"labour"`
}
