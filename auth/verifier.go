package auth

import (
	"crypto/subtle"

	apperrors "github.com/jrsteele09/go-employee-server/internal/errors"
	"github.com/jrsteele09/go-employee-server/users"
)

// Verifier checks a username/password pair and returns the matching user.
// Implementations return ErrInvalidCredentials for any mismatch, including unknown users.
type Verifier interface {
	Verify(username, password string) (users.Summary, error)
}

var (
	_ Verifier = (*StaticVerifier)(nil)
	_ Verifier = (*HashedVerifier)(nil)
)

var errInvalidCredentials = apperrors.New(apperrors.ErrInvalidCredentials, "Invalid username or password")

// StaticVerifier accepts exactly one plaintext credential pair.
type StaticVerifier struct {
	user     users.Summary
	password string
}

func NewStaticVerifier(user users.Summary, password string) *StaticVerifier {
	return &StaticVerifier{user: user, password: password}
}

func (v *StaticVerifier) Verify(username, password string) (users.Summary, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.user.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	if !userOK || !passOK {
		return users.Summary{}, errInvalidCredentials
	}
	return v.user, nil
}

// HashedVerifier looks users up in a UserRepo and compares bcrypt hashes.
type HashedVerifier struct {
	users users.UserRepo
}

func NewHashedVerifier(repo users.UserRepo) *HashedVerifier {
	return &HashedVerifier{users: repo}
}

func (v *HashedVerifier) Verify(username, password string) (users.Summary, error) {
	u, err := v.users.GetByUsername(username)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return users.Summary{}, errInvalidCredentials
		}
		return users.Summary{}, apperrors.Wrapf(err, "[HashedVerifier] lookup %q", username)
	}
	if !users.CheckPasswordHash(password, u.PasswordHash) {
		return users.Summary{}, errInvalidCredentials
	}
	return u.Summary(), nil
}
