package server

import (
	"net/http"

	"github.com/jrsteele09/go-employee-server/users"
	"github.com/rs/zerolog/log"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string        `json:"message"`
	User    users.Summary `json:"user"`
}

type checkAuthResponse struct {
	Authenticated bool           `json:"authenticated"`
	User          *users.Summary `json:"user,omitempty"`
}

// LoginHandler verifies the posted credentials and starts a session (POST /api/login)
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		user, err := s.auth.Login(req.Username, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		// A previous session on this client is replaced, not left dangling
		s.sessions.End(sessionToken(r))

		_, token, err := s.sessions.Start(user)
		if err != nil {
			writeError(w, r, err)
			return
		}
		s.setSessionCookie(w, r, token)

		log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user logged in")
		writeJSON(w, http.StatusOK, loginResponse{Message: "Login successful", User: user})
	}
}

// LogoutHandler always succeeds, whether or not a session was present (POST /api/logout)
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.sessions.End(sessionToken(r))
		s.clearSessionCookie(w, r)
		writeJSON(w, http.StatusOK, messageResponse{Message: "Logged out successfully"})
	}
}

// CheckAuthHandler reports whether the request carries an active session (GET /api/check-auth)
func (s *Server) CheckAuthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := s.activeSession(w, r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, checkAuthResponse{Authenticated: false})
			return
		}
		user := users.Summary{ID: session.UserID, Username: session.Username}
		writeJSON(w, http.StatusOK, checkAuthResponse{Authenticated: true, User: &user})
	}
}

// PreflightHandler is reached only by OPTIONS requests without an Origin header.
func (s *Server) PreflightHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", s.config.GetAllowedMethods())
		w.WriteHeader(http.StatusOK)
	}
}
