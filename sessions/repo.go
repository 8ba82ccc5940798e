package sessions

import "time"

type Repo interface {
	Upsert(session Session) error
	Get(sessionID string) (Session, error)
	Delete(sessionID string) error
	// Touch moves the expiry of an existing session. It never recreates a deleted one.
	Touch(sessionID string, expiresAt time.Time) error
	// DeleteExpired removes every session expired at now and reports how many were removed.
	DeleteExpired(now time.Time) int
}
