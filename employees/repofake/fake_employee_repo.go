package fakeemployeerepo

import (
	"context"
	"sort"
	"sync"

	"github.com/jrsteele09/go-employee-server/employees"
)

var _ employees.Repo = (*FakeEmployeeRepo)(nil)

// FakeEmployeeRepo is an in-memory employees.Repo. Ids are never reused, like an
// AUTOINCREMENT column. Setting Err makes every call fail with it.
type FakeEmployeeRepo struct {
	employees map[int64]employees.Employee
	lastID    int64
	lock      sync.RWMutex

	Err error
}

func NewFakeEmployeeRepo() *FakeEmployeeRepo {
	return &FakeEmployeeRepo{
		employees: make(map[int64]employees.Employee),
	}
}

func (er *FakeEmployeeRepo) Create(_ context.Context, rec employees.Record) (int64, error) {
	er.lock.Lock()
	defer er.lock.Unlock()
	if er.Err != nil {
		return 0, er.Err
	}

	er.lastID++
	er.employees[er.lastID] = employees.Employee{
		ID:         er.lastID,
		Name:       rec.Name,
		Department: rec.Department,
		Salary:     rec.Salary,
	}
	return er.lastID, nil
}

func (er *FakeEmployeeRepo) List(_ context.Context) ([]employees.Employee, error) {
	er.lock.RLock()
	defer er.lock.RUnlock()
	if er.Err != nil {
		return nil, er.Err
	}

	list := make([]employees.Employee, 0, len(er.employees))
	for _, e := range er.employees {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (er *FakeEmployeeRepo) Get(_ context.Context, id int64) (*employees.Employee, error) {
	er.lock.RLock()
	defer er.lock.RUnlock()
	if er.Err != nil {
		return nil, er.Err
	}

	e, ok := er.employees[id]
	if !ok {
		return nil, employees.ErrEmployeeNotFound
	}
	return &e, nil
}

func (er *FakeEmployeeRepo) Update(_ context.Context, id int64, rec employees.Record) error {
	er.lock.Lock()
	defer er.lock.Unlock()
	if er.Err != nil {
		return er.Err
	}

	if _, ok := er.employees[id]; !ok {
		return employees.ErrEmployeeNotFound
	}
	er.employees[id] = employees.Employee{ID: id, Name: rec.Name, Department: rec.Department, Salary: rec.Salary}
	return nil
}

func (er *FakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	er.lock.Lock()
	defer er.lock.Unlock()
	if er.Err != nil {
		return er.Err
	}

	if _, ok := er.employees[id]; !ok {
		return employees.ErrEmployeeNotFound
	}
	delete(er.employees, id)
	return nil
}

func (er *FakeEmployeeRepo) Count(_ context.Context) (int, error) {
	er.lock.RLock()
	defer er.lock.RUnlock()
	if er.Err != nil {
		return 0, er.Err
	}
	return len(er.employees), nil
}
