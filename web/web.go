// Package web embeds the browser chat widget served at the site root.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var files embed.FS

// FileSystem returns the widget's files rooted at the static directory.
func FileSystem() http.FileSystem {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		// The directory is embedded at build time; a failure here is a build defect.
		panic(err)
	}
	return http.FS(sub)
}
