package server_test

import (
	"errors"
	"io"
	"net"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"testing/fstest"

	"onboarding-dashboard/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, debug bool) *fiber.App {
	t.Helper()
	templates := fstest.MapFS{
		"page.html": {Data: []byte("<p>{{ .Name }}</p>")},
	}
	static := fstest.MapFS{
		"css/site.css": {Data: []byte("body{}")},
		"js/app.js":    {Data: []byte("var a=1;")},
	}

	app := server.New(server.Config{Debug: debug}, server.NewViews(templates, false))
	server.MountStatic(app, static, debug)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("page", fiber.Map{"Name": "ok"})
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.Render("absent", nil)
	})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})
	return app
}

func TestRender(t *testing.T) {
	app := newTestApp(t, true)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "<p>ok</p>", string(body))
}

func TestStatic(t *testing.T) {
	app := newTestApp(t, true)

	tests := []struct {
		path        string
		status      int
		contentType string
	}{
		{"/static/css/site.css", 200, "text/css"},
		{"/static/js/app.js", 200, "javascript"},
		{"/static/js/nope.js", 404, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.contentType != "" {
				assert.Contains(t, resp.Header.Get("Content-Type"), tt.contentType)
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	t.Run("UnknownRoute", func(t *testing.T) {
		app := newTestApp(t, false)
		resp, err := app.Test(httptest.NewRequest("GET", "/nonexistent", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("FiberErrorKeepsStatus", func(t *testing.T) {
		app := newTestApp(t, false)
		resp, err := app.Test(httptest.NewRequest("GET", "/teapot", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	})

	t.Run("MissingTemplateDebug", func(t *testing.T) {
		app := newTestApp(t, true)
		resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "absent")
	})

	t.Run("MissingTemplateRelease", func(t *testing.T) {
		app := newTestApp(t, false)
		resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.NotContains(t, string(body), "absent")
	})
}

func TestErrorHandler_PlainError(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: server.ErrorHandler(true)})
	app.Get("/", func(c *fiber.Ctx) error { return errors.New("kaboom") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "kaboom")
}

func TestListen_AddressInUse(t *testing.T) {
	first, err := server.Listen(server.Config{Host: "127.0.0.1", Port: "0"})
	require.NoError(t, err)
	defer first.Close()

	port := strconv.Itoa(first.Addr().(*net.TCPAddr).Port)
	second, err := server.Listen(server.Config{Host: "127.0.0.1", Port: port})
	if second != nil {
		second.Close()
	}
	assert.Error(t, err)
}

func TestListen_InvalidPort(t *testing.T) {
	_, err := server.Listen(server.Config{Host: "127.0.0.1", Port: "abc"})
	assert.Error(t, err)
}

func renderPage(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestNewViews_Reload(t *testing.T) {
	tests := []struct {
		name   string
		reload bool
		want   string
	}{
		{"Enabled", true, "<p>second</p>"},
		{"Disabled", false, "<p>first</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			page := filepath.Join(dir, "page.html")
			require.NoError(t, os.WriteFile(page, []byte("<p>first</p>"), 0o644))

			app := server.New(server.Config{Debug: true}, server.NewViews(os.DirFS(dir), tt.reload))
			app.Get("/", func(c *fiber.Ctx) error {
				return c.Render("page", nil)
			})

			assert.Equal(t, "<p>first</p>", renderPage(t, app))

			require.NoError(t, os.WriteFile(page, []byte("<p>second</p>"), 0o644))
			assert.Equal(t, tt.want, renderPage(t, app))
		})
	}
}
