package sessions

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	apperrors "github.com/jrsteele09/go-employee-server/internal/errors"
)

var (
	errInvalidSession = apperrors.New(apperrors.ErrInvalidSession, "invalid session")
	errSessionExpired = apperrors.New(apperrors.ErrSessionExpired, "session expired")
)

// Signer turns a session id into an HS256 token suitable for a cookie value, so a
// client cannot forge or alter the id it presents.
type Signer struct {
	secret []byte
}

func NewSigner(secret []byte) *Signer {
	return &Signer{secret: secret}
}

func (s *Signer) Sign(sessionID string, issuedAt, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        sessionID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	return token.SignedString(s.secret)
}

// Parse verifies value at time now and returns the session id it carries.
func (s *Signer) Parse(value string, now time.Time) (string, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(value, &claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errSessionExpired
		}
		return "", apperrors.Wrapf(errInvalidSession, "[Signer Parse] %v", err)
	}
	if !token.Valid || claims.ID == "" {
		return "", errInvalidSession
	}
	return claims.ID, nil
}
