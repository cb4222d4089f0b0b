package logger

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"DebugConsole", Config{Level: "debug", Format: "console"}},
		{"InfoJSON", Config{Level: "info", Format: "json"}},
		{"WarnConsole", Config{Level: "warn", Format: "console"}},
		{"UnknownLevel", Config{Level: "verbose", Format: "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestNew_WarnLevelDropsInfo(t *testing.T) {
	l, err := New(&Config{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestMiddleware_LogsRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := zap.New(core)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(RayIDKey, "abc-123")
		return c.Next()
	})
	app.Use(Middleware(l))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	entries := logs.FilterMessage("Request handled").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "abc-123", fields[RayIDKey])
	assert.Equal(t, "/ping", fields["path"])
	assert.EqualValues(t, 200, fields["status"])
}

func TestMiddleware_LogsErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status int
		errLog int
	}{
		{"UnknownRoute", "/nowhere", fiber.StatusNotFound, 0},
		{"FiberError", "/teapot", fiber.StatusTeapot, 0},
		{"PlainError", "/broken", fiber.StatusInternalServerError, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)

			app := fiber.New()
			app.Use(Middleware(zap.New(core)))
			app.Get("/teapot", func(c *fiber.Ctx) error {
				return fiber.NewError(fiber.StatusTeapot, "short and stout")
			})
			app.Get("/broken", func(c *fiber.Ctx) error {
				return errors.New("template missing")
			})

			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			entries := logs.FilterMessage("Request handled").All()
			require.Len(t, entries, 1)
			assert.EqualValues(t, tt.status, entries[0].ContextMap()["status"])
			assert.Len(t, logs.FilterMessage("Request error").All(), tt.errLog)
		})
	}
}
