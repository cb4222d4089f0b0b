package web

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
)

// embedded stores the dashboard templates and static assets in the binary.
//
//go:embed templates/*.html
//go:embed static/css/*.css static/js/*.js
var embedded embed.FS

// Assets returns the asset filesystem rooted at a directory holding
// templates/ and static/. When dir is empty or has no templates/ subdirectory
// the embedded copy is used.
func Assets(dir string) (fsys fs.FS, onDisk bool) {
	if dir != "" {
		if info, err := os.Stat(filepath.Join(dir, "templates")); err == nil && info.IsDir() {
			return os.DirFS(dir), true
		}
	}
	return embedded, false
}

// Templates returns the templates/ subtree of fsys.
func Templates(fsys fs.FS) (fs.FS, error) {
	return fs.Sub(fsys, "templates")
}

// Static returns the static/ subtree of fsys.
func Static(fsys fs.FS) (fs.FS, error) {
	return fs.Sub(fsys, "static")
}
