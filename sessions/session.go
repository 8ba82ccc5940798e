// Package sessions keeps server-side login sessions and the signed cookie values that
// name them. A session lives for a sliding window: every Refresh pushes ExpiresAt out by
// the full lifetime again.
package sessions

import "time"

type Session struct {
	ID        string // Unique session identifier (UUID), carried as the jti of the cookie token
	UserID    int64
	Username  string
	LoggedIn  bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
