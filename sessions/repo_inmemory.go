package sessions

import (
	"sync"
	"time"

	apperrors "github.com/jrsteele09/go-employee-server/internal/errors"
)

var _ Repo = (*InMemoryRepo)(nil)

var (
	errSessionNotFound = apperrors.New(apperrors.ErrSessionNotFound, "session not found")
	errSessionIDEmpty  = apperrors.New(apperrors.ErrInvalidSession, "sessionID is required")
)

// InMemoryRepo holds sessions for the life of the process; a restart logs everyone out.
type InMemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		sessions: make(map[string]Session),
	}
}

func (r *InMemoryRepo) Upsert(session Session) error {
	if session.ID == "" {
		return errSessionIDEmpty
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return nil
}

func (r *InMemoryRepo) Get(sessionID string) (Session, error) {
	if sessionID == "" {
		return Session{}, errSessionIDEmpty
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return Session{}, errSessionNotFound
	}
	return session, nil
}

func (r *InMemoryRepo) Touch(sessionID string, expiresAt time.Time) error {
	if sessionID == "" {
		return errSessionIDEmpty
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return errSessionNotFound
	}
	session.ExpiresAt = expiresAt
	r.sessions[sessionID] = session
	return nil
}

// Delete is a no-op for unknown ids.
func (r *InMemoryRepo) Delete(sessionID string) error {
	if sessionID == "" {
		return errSessionIDEmpty
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

func (r *InMemoryRepo) DeleteExpired(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}
