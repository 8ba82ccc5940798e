package server

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var staticFiles embed.FS

// FileServerHandler serves the embedded static assets under RouteStatic.
func FileServerHandler() http.HandlerFunc {
	return http.StripPrefix(RouteStatic, http.FileServer(http.FS(StaticFilesFS()))).ServeHTTP
}

func StaticFilesFS() fs.FS {
	subFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic("Failed to create sub filesystem: " + err.Error())
	}
	return subFS
}
