// Package auth validates login attempts against a pluggable Verifier.
package auth

import (
	apperrors "github.com/jrsteele09/go-employee-server/internal/errors"
	"github.com/jrsteele09/go-employee-server/users"
)

var errMissingCredentials = apperrors.New(apperrors.ErrMissingCredentials, "Username and password are required")

type Service struct {
	verifier Verifier
}

func NewService(verifier Verifier) *Service {
	return &Service{verifier: verifier}
}

// Login returns the user for a valid credential pair. It does not create a session.
func (s *Service) Login(username, password string) (users.Summary, error) {
	if username == "" || password == "" {
		return users.Summary{}, errMissingCredentials
	}
	return s.verifier.Verify(username, password)
}
