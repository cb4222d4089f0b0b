package checks

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func TestCheckAssets(t *testing.T) {
	t.Run("Complete", func(t *testing.T) {
		fsys := fstest.MapFS{}
		for _, name := range RequiredAssets {
			fsys[name] = &fstest.MapFile{Data: []byte("x")}
		}
		assert.Empty(t, CheckAssets(fsys))
	})

	t.Run("MissingAndEmpty", func(t *testing.T) {
		fsys := fstest.MapFS{
			"templates/index.html":        {Data: []byte("<html>")},
			"templates/regulatory.html":   {Data: []byte("<html>")},
			"static/css/tailwind.min.css": {Data: []byte{}},
		}
		assert.Equal(t, []string{"static/css/tailwind.min.css", "static/js/chart.min.js"}, CheckAssets(fsys))
	})
}
