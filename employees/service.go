package employees

import (
	"context"

	apperrors "github.com/jrsteele09/go-employee-server/internal/errors"
)

// Service validates employee input before handing it to the Repo.
type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// Create validates in and stores it, returning the id assigned by the store.
func (s *Service) Create(ctx context.Context, in Input) (int64, error) {
	rec, err := in.Validate()
	if err != nil {
		return 0, err
	}
	id, err := s.repo.Create(ctx, rec)
	if err != nil {
		return 0, apperrors.Wrapf(err, "[employees Create]")
	}
	return id, nil
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrapf(err, "[employees List]")
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Employee, error) {
	e, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperrors.Wrapf(err, "[employees Get] id %d", id)
	}
	return e, nil
}

// Update validates in before touching the store, so an invalid body on an unknown id
// reports the validation error rather than not-found.
func (s *Service) Update(ctx context.Context, id int64, in Input) error {
	rec, err := in.Validate()
	if err != nil {
		return err
	}
	return apperrors.Wrapf(s.repo.Update(ctx, id, rec), "[employees Update] id %d", id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return apperrors.Wrapf(s.repo.Delete(ctx, id), "[employees Delete] id %d", id)
}
