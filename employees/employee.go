// Package employees holds the Employee entity, its input validation and the service
// that fronts an employee Repo.
package employees

import (
	"math"
	"strconv"
	"strings"

	apperrors "github.com/jrsteele09/go-employee-server/internal/errors"
)

// MaxSalary is the largest value a NUMERIC(10,2) column holds.
const MaxSalary = 99999999.99

var (
	ErrEmployeeNotFound = apperrors.New(apperrors.ErrNotFound, "Employee not found")
	ErrMissingFields    = apperrors.New(apperrors.ErrValidation, "All fields (name, department, salary) are required")
	ErrSalaryNotNumeric = apperrors.New(apperrors.ErrValidation, "salary must be a number")
	ErrSalaryOutOfRange = apperrors.New(apperrors.ErrValidation, "salary must be between 0.01 and 99999999.99")
)

type Employee struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Salary     float64 `json:"salary"`
}

// Input is the unvalidated payload of a create or update request. Salary is kept as
// text so both JSON numbers and numeric strings are accepted.
type Input struct {
	Name       string
	Department string
	Salary     string
}

// Record is a validated Input, ready to be written to a Repo.
type Record struct {
	Name       string
	Department string
	Salary     float64
}

// Validate trims the text fields and parses the salary. A salary of zero counts as
// missing. Valid salaries are rounded to two decimal places.
func (in Input) Validate() (Record, error) {
	name := strings.TrimSpace(in.Name)
	department := strings.TrimSpace(in.Department)
	salaryText := strings.TrimSpace(in.Salary)
	if name == "" || department == "" || salaryText == "" {
		return Record{}, ErrMissingFields
	}

	salary, err := strconv.ParseFloat(salaryText, 64)
	if err != nil || math.IsNaN(salary) || math.IsInf(salary, 0) {
		return Record{}, ErrSalaryNotNumeric
	}
	if salary == 0 {
		return Record{}, ErrMissingFields
	}
	salary = math.Round(salary*100) / 100
	if salary <= 0 || salary > MaxSalary {
		return Record{}, ErrSalaryOutOfRange
	}

	return Record{Name: name, Department: department, Salary: salary}, nil
}
