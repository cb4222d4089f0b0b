package checks

import (
	"io/fs"
)

// RequiredAssets lists the files the HTTP server cannot work without,
// relative to the assets root.
var RequiredAssets = []string{
	"templates/index.html",
	"templates/regulatory.html",
	"static/css/tailwind.min.css",
	"static/js/chart.min.js",
}

// CheckAssets returns the required assets that are missing or empty.
func CheckAssets(fsys fs.FS) []string {
	missing := []string{}
	for _, name := range RequiredAssets {
		info, err := fs.Stat(fsys, name)
		if err != nil || info.IsDir() || info.Size() == 0 {
			missing = append(missing, name)
		}
	}
	return missing
}
