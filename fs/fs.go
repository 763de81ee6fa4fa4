// Package appfs exposes the embedded assets shipped with the binary:
// database migrations and the static web client.
package appfs

import (
	"embed"
	"io/fs"
)

//go:embed migrations web
var FS embed.FS

// Web is the static single-page client, rooted at its index.
func Web() fs.FS {
	sub, err := fs.Sub(FS, "web")
	if err != nil {
		panic(err)
	}
	return sub
}
