package server

import (
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"
)

// IndexHandler sends the client to the dashboard or the login page (GET /)
func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.activeSession(w, r); ok {
			redirect(w, r, RouteDashboard)
			return
		}
		redirect(w, r, RouteLogin)
	}
}

// LoginPageHandler GET /login
func (s *Server) LoginPageHandler() http.HandlerFunc {
	tmpl := mustParseTemplate(loginTemplate)

	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.activeSession(w, r); ok {
			redirect(w, r, RouteDashboard)
			return
		}
		s.renderPage(w, r, tmpl, pageData{AppName: s.config.GetAppName()})
	}
}

// DashboardHandler GET /dashboard, behind RequirePageSession
func (s *Server) DashboardHandler() http.HandlerFunc {
	tmpl := mustParseTemplate(dashboardTemplate)

	return func(w http.ResponseWriter, r *http.Request) {
		data := pageData{AppName: s.config.GetAppName()}
		if session, ok := SessionFromContext(r.Context()); ok {
			data.Username = session.Username
		}
		s.renderPage(w, r, tmpl, data)
	}
}

func mustParseTemplate(name string) *template.Template {
	tmpl, err := ParseTemplate(name)
	if err != nil {
		panic("Failed to parse " + name + " template: " + err.Error())
	}
	return tmpl
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, tmpl *template.Template, data pageData) {
	if err := renderTemplate(w, tmpl, data); err != nil {
		log.Err(err).Str("path", r.URL.Path).Msg("failed to render page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
