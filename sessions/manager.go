package sessions

import (
	"time"

	"github.com/google/uuid"
	apperrors "github.com/jrsteele09/go-employee-server/internal/errors"
	"github.com/jrsteele09/go-employee-server/users"
)

type Manager struct {
	repo     Repo
	signer   *Signer
	lifetime time.Duration
	now      func() time.Time
}

type Option func(*Manager)

// WithClock replaces time.Now, for tests that need to move past the lifetime.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(repo Repo, secret []byte, lifetime time.Duration, opts ...Option) *Manager {
	m := &Manager{
		repo:     repo,
		signer:   NewSigner(secret),
		lifetime: lifetime,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Lifetime() time.Duration {
	return m.lifetime
}

// Start creates a logged in session for user and returns it with its signed cookie value.
// Expired sessions are purged here, so no background sweeper is needed.
func (m *Manager) Start(user users.Summary) (Session, string, error) {
	now := m.now()
	m.repo.DeleteExpired(now)

	s := Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Username:  user.Username,
		LoggedIn:  true,
		CreatedAt: now,
		ExpiresAt: now.Add(m.lifetime),
	}
	if err := m.repo.Upsert(s); err != nil {
		return Session{}, "", apperrors.Wrapf(err, "[sessions Start]")
	}
	token, err := m.signer.Sign(s.ID, now, s.ExpiresAt)
	if err != nil {
		_ = m.repo.Delete(s.ID)
		return Session{}, "", apperrors.Wrapf(err, "[sessions Start] sign")
	}
	return s, token, nil
}

// Resolve returns the active session named by a cookie value.
func (m *Manager) Resolve(token string) (Session, error) {
	if token == "" {
		return Session{}, errSessionNotFound
	}
	now := m.now()
	id, err := m.signer.Parse(token, now)
	if err != nil {
		return Session{}, err
	}
	s, err := m.repo.Get(id)
	if err != nil {
		return Session{}, err
	}
	if s.Expired(now) {
		_ = m.repo.Delete(id)
		return Session{}, errSessionExpired
	}
	if !s.LoggedIn {
		return Session{}, errSessionNotFound
	}
	return s, nil
}

// Refresh slides the session window forward and returns a freshly signed cookie value.
// A session ended since it was resolved stays ended and Refresh reports ErrSessionNotFound.
func (m *Manager) Refresh(s Session) (Session, string, error) {
	now := m.now()
	s.ExpiresAt = now.Add(m.lifetime)
	if err := m.repo.Touch(s.ID, s.ExpiresAt); err != nil {
		return Session{}, "", apperrors.Wrapf(err, "[sessions Refresh]")
	}
	token, err := m.signer.Sign(s.ID, now, s.ExpiresAt)
	if err != nil {
		return Session{}, "", apperrors.Wrapf(err, "[sessions Refresh] sign")
	}
	return s, token, nil
}

// End removes the session named by token. Invalid or unknown tokens are ignored.
func (m *Manager) End(token string) {
	if token == "" {
		return
	}
	id, err := m.signer.Parse(token, m.now())
	if err != nil {
		return
	}
	_ = m.repo.Delete(id)
}
