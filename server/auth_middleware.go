package server

import (
	"context"
	"net/http"

	apperrors "github.com/jrsteele09/go-employee-server/internal/errors"
	"github.com/jrsteele09/go-employee-server/sessions"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeySession stores the active sessions.Session
const ContextKeySession ContextKey = "session"

var errAuthRequired = apperrors.New(apperrors.ErrAuthRequired, "Authentication required")

// SessionFromContext returns the session injected by RequireSession or RequirePageSession.
func SessionFromContext(ctx context.Context) (sessions.Session, bool) {
	session, ok := ctx.Value(ContextKeySession).(sessions.Session)
	return session, ok
}

// RequireSession guards API routes: without an active session the request is
// rejected with 401 before the body is read.
func (s *Server) RequireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := s.activeSession(w, r)
		if !ok {
			writeError(w, r, errAuthRequired)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), ContextKeySession, session)))
	}
}

// RequirePageSession guards HTML routes by redirecting to the login page.
func (s *Server) RequirePageSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := s.activeSession(w, r)
		if !ok {
			redirect(w, r, RouteLogin)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), ContextKeySession, session)))
	}
}
