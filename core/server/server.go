package server

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
)

// AppName is reported in the Server header and in logs.
const AppName = "onboarding-dashboard"

// New creates the Fiber application. views may be nil.
func New(cfg Config, views fiber.Views) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               AppName,
		DisableStartupMessage: true, // We log our own startup message
		Views:                 views,
		ErrorHandler:          ErrorHandler(cfg.Debug),
	})
}

// NewViews creates the HTML template engine over the templates filesystem.
// Templates are addressed by file name without the .html extension.
// With reload set the templates are parsed again on every render.
func NewViews(templates fs.FS, reload bool) *html.Engine {
	engine := html.NewFileSystem(http.FS(templates), ".html")
	engine.Reload(reload)
	return engine
}

// MountStatic serves the static filesystem under /static.
// Unknown files fall through to the 404 handler.
func MountStatic(app fiber.Router, static fs.FS, debug bool) {
	maxAge := 3600
	if debug {
		maxAge = 0
	}
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(static),
		MaxAge: maxAge,
	}))
}

// ErrorHandler keeps the status of *fiber.Error values and maps everything
// else to 500. Error details are only exposed in debug mode.
func ErrorHandler(debug bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := fiber.ErrInternalServerError.Message

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			msg = fe.Message
		}
		if debug && code == fiber.StatusInternalServerError {
			msg = fmt.Sprintf("%s\n\n%s", fiber.ErrInternalServerError.Message, err.Error())
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(code).SendString(msg)
	}
}

// Listen binds the configured address. A bind failure, such as the port
// already being in use, is returned immediately and never retried.
func Listen(cfg Config) (net.Listener, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ln, err := net.Listen("tcp", cfg.Address())
	if err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", cfg.Address(), err)
	}
	return ln, nil
}
