package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jrsteele09/go-employee-server/employees"
	fakeemployeerepo "github.com/jrsteele09/go-employee-server/employees/repofake"
	"github.com/jrsteele09/go-employee-server/employees/sqlrepo"
	"github.com/jrsteele09/go-employee-server/internal/testutil"
	"github.com/stretchr/testify/require"
)

func loggedInClient(t *testing.T, repo employees.Repo) *testClient {
	t.Helper()
	c := newTestClient(t, newTestServer(t, repo))
	c.login()
	return c
}

func createEmployee(t *testing.T, c *testClient, body string) int64 {
	t.Helper()
	rec := c.do(http.MethodPost, "/api/employee", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	resp := decodeBody(t, rec)
	require.Equal(t, "Employee created successfully", resp["message"])
	return int64(resp["employee_id"].(float64))
}

func listEmployees(t *testing.T, c *testClient) []employees.Employee {
	t.Helper()
	rec := c.do(http.MethodGet, "/api/employees", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var list []employees.Employee
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	return list
}

func TestEmployees_RequireSession(t *testing.T) {
	repo := fakeemployeerepo.NewFakeEmployeeRepo()
	c := newTestClient(t, newTestServer(t, repo))

	requests := []struct{ method, path, body string }{
		{http.MethodPost, "/api/employee", `{"name":"Ada","department":"Eng","salary":100}`},
		{http.MethodPost, "/api/employee", `not json`},
		{http.MethodGet, "/api/employees", ""},
		{http.MethodGet, "/api/employee/1", ""},
		{http.MethodGet, "/api/employee/abc", ""},
		{http.MethodPut, "/api/employee/1", `{"name":"Ada","department":"Eng","salary":100}`},
		{http.MethodPut, "/api/employee/1", `{}`},
		{http.MethodDelete, "/api/employee/1", ""},
	}
	for _, req := range requests {
		t.Run(req.method+" "+req.path, func(t *testing.T) {
			rec := c.do(req.method, req.path, req.body)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.Equal(t, "Authentication required", decodeBody(t, rec)["error"])
		})
	}

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestEmployees_CreateGetUpdateDelete(t *testing.T) {
	repo := fakeemployeerepo.NewFakeEmployeeRepo()
	c := loggedInClient(t, repo)

	id := createEmployee(t, c, `{"name":"Ada","department":"Engineering","salary":5000.5}`)
	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, count)

	rec := c.do(http.MethodGet, fmt.Sprintf("/api/employee/%d", id), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, map[string]any{
		"id": float64(id), "name": "Ada", "department": "Engineering", "salary": 5000.5,
	}, decodeBody(t, rec))

	rec = c.do(http.MethodPut, fmt.Sprintf("/api/employee/%d", id), `{"name":"Ada L.","department":"Research","salary":"6000"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "Employee updated successfully", decodeBody(t, rec)["message"])

	e, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, employees.Employee{ID: id, Name: "Ada L.", Department: "Research", Salary: 6000}, *e)

	rec = c.do(http.MethodDelete, fmt.Sprintf("/api/employee/%d", id), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Employee deleted successfully", decodeBody(t, rec)["message"])

	rec = c.do(http.MethodGet, fmt.Sprintf("/api/employee/%d", id), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Employee not found", decodeBody(t, rec)["error"])
}

func TestEmployees_CreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"missing name", `{"department":"Eng","salary":100}`, "All fields (name, department, salary) are required"},
		{"blank department", `{"name":"Ada","department":"  ","salary":100}`, "All fields (name, department, salary) are required"},
		{"missing salary", `{"name":"Ada","department":"Eng"}`, "All fields (name, department, salary) are required"},
		{"null salary", `{"name":"Ada","department":"Eng","salary":null}`, "All fields (name, department, salary) are required"},
		{"zero salary", `{"name":"Ada","department":"Eng","salary":0}`, "All fields (name, department, salary) are required"},
		{"empty body", ``, "All fields (name, department, salary) are required"},
		{"text salary", `{"name":"Ada","department":"Eng","salary":"lots"}`, "salary must be a number"},
		{"bool salary", `{"name":"Ada","department":"Eng","salary":true}`, "salary must be a number"},
		{"negative salary", `{"name":"Ada","department":"Eng","salary":-5}`, "salary must be between 0.01 and 99999999.99"},
		{"huge salary", `{"name":"Ada","department":"Eng","salary":100000000}`, "salary must be between 0.01 and 99999999.99"},
		{"malformed json", `{"name":"Ada",`, "Invalid request body"},
		{"array body", `[1,2]`, "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := fakeemployeerepo.NewFakeEmployeeRepo()
			c := loggedInClient(t, repo)

			rec := c.do(http.MethodPost, "/api/employee", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, tt.message, decodeBody(t, rec)["error"])

			count, err := repo.Count(context.Background())
			require.NoError(t, err)
			require.Zero(t, count)
		})
	}
}

func TestEmployees_UpdateValidatesBeforeLookup(t *testing.T) {
	c := loggedInClient(t, fakeemployeerepo.NewFakeEmployeeRepo())

	rec := c.do(http.MethodPut, "/api/employee/42", `{"name":"Ada"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "All fields (name, department, salary) are required", decodeBody(t, rec)["error"])
}

func TestEmployees_UnknownIDs(t *testing.T) {
	repo := fakeemployeerepo.NewFakeEmployeeRepo()
	c := loggedInClient(t, repo)
	createEmployee(t, c, `{"name":"Ada","department":"Eng","salary":100}`)

	valid := `{"name":"Bob","department":"Ops","salary":200}`
	for _, path := range []string{"/api/employee/999", "/api/employee/0", "/api/employee/-1", "/api/employee/abc"} {
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			t.Run(method+" "+path, func(t *testing.T) {
				rec := c.do(method, path, valid)
				require.Equal(t, http.StatusNotFound, rec.Code)
				require.Equal(t, "Employee not found", decodeBody(t, rec)["error"])
			})
		}
	}

	list := listEmployees(t, c)
	require.Len(t, list, 1)
	require.Equal(t, "Ada", list[0].Name)
}

func TestEmployees_ListEmptyIsArray(t *testing.T) {
	c := loggedInClient(t, fakeemployeerepo.NewFakeEmployeeRepo())

	rec := c.do(http.MethodGet, "/api/employees", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestEmployees_StoreFailureIs500(t *testing.T) {
	repo := fakeemployeerepo.NewFakeEmployeeRepo()
	c := loggedInClient(t, repo)
	repo.Err = errors.New("disk full")

	rec := c.do(http.MethodGet, "/api/employees", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, decodeBody(t, rec)["error"], "disk full")

	rec = c.do(http.MethodPost, "/api/employee", `{"name":"Ada","department":"Eng","salary":100}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestEmployees_SQLiteStore(t *testing.T) {
	c := loggedInClient(t, sqlrepo.New(testutil.OpenInMemoryDB(t)))

	first := createEmployee(t, c, `{"name":"Ada","department":"Eng","salary":"1234.567"}`)
	second := createEmployee(t, c, `{"name":"Bob","department":"Ops","salary":2000}`)
	third := createEmployee(t, c, `{"name":"Cy","department":"Sales","salary":300.1}`)

	rec := c.do(http.MethodDelete, fmt.Sprintf("/api/employee/%d", second), "")
	require.Equal(t, http.StatusOK, rec.Code)
	fourth := createEmployee(t, c, `{"name":"Di","department":"HR","salary":42}`)
	require.Greater(t, fourth, third, "ids are not reused after a delete")

	list := listEmployees(t, c)
	require.Equal(t, []employees.Employee{
		{ID: first, Name: "Ada", Department: "Eng", Salary: 1234.57},
		{ID: third, Name: "Cy", Department: "Sales", Salary: 300.1},
		{ID: fourth, Name: "Di", Department: "HR", Salary: 42},
	}, list)

	// Writing the same values again still counts as a match
	rec = c.do(http.MethodPut, fmt.Sprintf("/api/employee/%d", third), `{"name":"Cy","department":"Sales","salary":300.1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = c.do(http.MethodPut, fmt.Sprintf("/api/employee/%d", second), `{"name":"Bob","department":"Ops","salary":2000}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	rec = c.do(http.MethodDelete, fmt.Sprintf("/api/employee/%d", second), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Len(t, listEmployees(t, c), 3)
}
