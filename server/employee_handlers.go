package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jrsteele09/go-employee-server/employees"
)

// salaryField accepts a JSON number, a numeric string or null. Any other JSON value is
// kept as its raw text and rejected later by employees.Input.Validate.
type salaryField string

func (f *salaryField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = salaryField(s)
	default:
		*f = salaryField(data)
	}
	return nil
}

type employeeRequest struct {
	Name       string      `json:"name"`
	Department string      `json:"department"`
	Salary     salaryField `json:"salary"`
}

func (req employeeRequest) input() employees.Input {
	return employees.Input{
		Name:       req.Name,
		Department: req.Department,
		Salary:     string(req.Salary),
	}
}

type createEmployeeResponse struct {
	Message    string `json:"message"`
	EmployeeID int64  `json:"employee_id"`
}

// employeeID reads the {id} path segment. Anything that is not a positive integer
// cannot name a row, so it is reported as not found.
func employeeID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, employees.ErrEmployeeNotFound
	}
	return id, nil
}

// CreateEmployeeHandler POST /api/employee
func (s *Server) CreateEmployeeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req employeeRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		id, err := s.employees.Create(r.Context(), req.input())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, createEmployeeResponse{Message: "Employee created successfully", EmployeeID: id})
	}
}

// ListEmployeesHandler GET /api/employees
func (s *Server) ListEmployeesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.employees.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		if list == nil {
			list = []employees.Employee{}
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// GetEmployeeHandler GET /api/employee/{id}
func (s *Server) GetEmployeeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := employeeID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		e, err := s.employees.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, e)
	}
}

// UpdateEmployeeHandler PUT /api/employee/{id}
func (s *Server) UpdateEmployeeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := employeeID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		var req employeeRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		if err := s.employees.Update(r.Context(), id, req.input()); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Employee updated successfully"})
	}
}

// DeleteEmployeeHandler DELETE /api/employee/{id}
func (s *Server) DeleteEmployeeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := employeeID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if err := s.employees.Delete(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Employee deleted successfully"})
	}
}
