package server

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

const (
	loginTemplate     = "login.html"
	dashboardTemplate = "dashboard.html"
)

//go:embed templates/*
var templateFiles embed.FS

// pageData is the data every page template is executed with.
type pageData struct {
	AppName  string
	Username string
}

func TemplateFilesFS() fs.FS {
	subFS, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic("Failed to create templates sub filesystem: " + err.Error())
	}
	return subFS
}

// ParseTemplate parses a template from the embedded filesystem
func ParseTemplate(name string) (*template.Template, error) {
	content, err := fs.ReadFile(TemplateFilesFS(), name)
	if err != nil {
		return nil, err
	}
	return template.New(name).Parse(string(content))
}

// renderTemplate executes tmpl into a buffer first so a failed execution can still
// produce a clean 500. Pages depend on the session and are never cached.
func renderTemplate(w http.ResponseWriter, tmpl *template.Template, data pageData) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, err := buf.WriteTo(w)
	return err
}
