package server

import (
	"net/http"

	apperrors "github.com/jrsteele09/go-employee-server/internal/errors"
	"github.com/jrsteele09/go-employee-server/sessions"
	"github.com/rs/zerolog/log"
)

// sessionCookieName is the cookie carrying the signed session token
const sessionCookieName = "employee_session"

func (s *Server) setSessionCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.config.GetCookieSecure() || getScheme(r) == "https",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.sessions.Lifetime().Seconds()),
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.config.GetCookieSecure() || getScheme(r) == "https",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// activeSession resolves the request's session and slides its expiry forward,
// re-issuing the cookie. A cookie that no longer names a live session is cleared.
func (s *Server) activeSession(w http.ResponseWriter, r *http.Request) (sessions.Session, bool) {
	token := sessionToken(r)
	if token == "" {
		return sessions.Session{}, false
	}

	session, err := s.sessions.Resolve(token)
	if err != nil {
		s.clearSessionCookie(w, r)
		return sessions.Session{}, false
	}

	refreshed, token, err := s.sessions.Refresh(session)
	if err != nil {
		// A concurrent logout may have ended the session after Resolve
		if !apperrors.Is(err, apperrors.ErrSessionNotFound) {
			log.Err(err).Str("session_id", session.ID).Msg("failed to refresh session")
		}
		s.clearSessionCookie(w, r)
		return sessions.Session{}, false
	}
	s.setSessionCookie(w, r, token)
	return refreshed, true
}

// redirect sends a 302 to path.
func redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusFound)
}
