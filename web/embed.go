// Package web carries the embedded static assets served under /static.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var FS embed.FS

// Static returns the asset tree rooted at the static directory, so that
// "css/site.css" is served as /static/css/site.css.
func Static() fs.FS {
	sub, err := fs.Sub(FS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
