// Package sqlrepo is the database/sql implementation of employees.Repo.
//
// Each method acquires its own connection, runs exactly one statement and releases the
// connection on every return path. No statement spans a transaction, so concurrent
// writers to the same row are last-write-wins.
package sqlrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jrsteele09/go-employee-server/employees"
)

var _ employees.Repo = (*Repo)(nil)

type Repo struct {
	db *sql.DB
}

func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	return fn(conn)
}

func (r *Repo) Create(ctx context.Context, rec employees.Record) (int64, error) {
	var id int64
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, `INSERT INTO employee (name, department, salary) VALUES (?, ?, ?)`,
			rec.Name, rec.Department, rec.Salary)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repo) List(ctx context.Context) ([]employees.Employee, error) {
	out := []employees.Employee{}
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `SELECT id, name, department, salary FROM employee ORDER BY id`)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var e employees.Employee
			if err := rows.Scan(&e.ID, &e.Name, &e.Department, &e.Salary); err != nil {
				return err
			}
			out = append(out, e)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) Get(ctx context.Context, id int64) (*employees.Employee, error) {
	var e employees.Employee
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, `SELECT id, name, department, salary FROM employee WHERE id = ?`, id).
			Scan(&e.ID, &e.Name, &e.Department, &e.Salary)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, employees.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Update relies on SQLite counting matched rows, so rewriting a row with identical
// values still reports it as found.
func (r *Repo) Update(ctx context.Context, id int64, rec employees.Record) error {
	return r.execAffectingOne(ctx, `UPDATE employee SET name = ?, department = ?, salary = ? WHERE id = ?`,
		rec.Name, rec.Department, rec.Salary, id)
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	return r.execAffectingOne(ctx, `DELETE FROM employee WHERE id = ?`, id)
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM employee`).Scan(&n)
	})
	return n, err
}

func (r *Repo) execAffectingOne(ctx context.Context, query string, args ...any) error {
	return r.withConn(ctx, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return employees.ErrEmployeeNotFound
		}
		return nil
	})
}
