package employees

import "context"

// Repo persists employees. Get, Update and Delete return ErrEmployeeNotFound when no
// row has the given id. List is ordered by id ascending and never returns nil.
type Repo interface {
	Create(ctx context.Context, rec Record) (int64, error)
	List(ctx context.Context) ([]Employee, error)
	Get(ctx context.Context, id int64) (*Employee, error)
	Update(ctx context.Context, id int64, rec Record) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
