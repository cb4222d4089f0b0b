package bootstrap

import (
	"fmt"
	"io/fs"
	"net"
	"path/filepath"
	"strings"

	"onboarding-dashboard/core/config"
	"onboarding-dashboard/core/loader"
	"onboarding-dashboard/core/logger"
	"onboarding-dashboard/core/middleware/rayid"
	"onboarding-dashboard/core/server"
	"onboarding-dashboard/core/storage"
	"onboarding-dashboard/core/utils"
	"onboarding-dashboard/core/watcher"
	"onboarding-dashboard/feature/dashboard"
	"onboarding-dashboard/feature/integrity"
	"onboarding-dashboard/feature/regulatory"
	"onboarding-dashboard/feature/regulatory/upstream"
	"onboarding-dashboard/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	_ "onboarding-dashboard/docs/swagger"
)

// App is the assembled HTTP application.
type App struct {
	Fiber        *fiber.App
	Views        *html.Engine
	Assets       fs.FS
	AssetsOnDisk bool

	cfg     *config.Config
	logger  *zap.Logger
	watcher *watcher.Watcher
}

// New wires middleware, static files and every feature into a Fiber app.
func New(cfg *config.Config, logg *zap.Logger) (*App, error) {
	if !cfg.Regulatory.IsValidSource() {
		return nil, fmt.Errorf("unknown document source %q", cfg.Regulatory.DocumentSource)
	}

	assets, onDisk := web.Assets(cfg.Server.AssetsDir)
	templates, err := web.Templates(assets)
	if err != nil {
		return nil, fmt.Errorf("failed to open templates: %w", err)
	}
	static, err := web.Static(assets)
	if err != nil {
		return nil, fmt.Errorf("failed to open static assets: %w", err)
	}

	// Embedded templates never change, only on-disk ones are re-parsed.
	views := server.NewViews(templates, cfg.Server.Debug && onDisk)
	app := server.New(cfg.Server, views)

	// RayID must be first to trace everything
	app.Use(rayid.New())
	app.Use(logger.Middleware(logg))

	app.Get("/swagger/*", swagger.HandlerDefault)
	server.MountStatic(app, static, cfg.Server.Debug)

	// Object storage is only needed when documents come from a bucket.
	var store storage.Client
	if cfg.Regulatory.DocumentSource == upstream.SourceStorage {
		store, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	mgr := loader.NewManager(logg)
	mgr.Register(dashboard.NewFeature(utils.NewRandom(cfg.Regulatory.Seed), logg))
	mgr.Register(regulatory.NewFeature(cfg.Regulatory, store, cfg.Storage.Bucket, logg))
	mgr.Register(integrity.NewFeature(assets, store, cfg.Storage.Bucket, cfg.Storage.Region, logg))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}

	return &App{
		Fiber:        app,
		Views:        views,
		Assets:       assets,
		AssetsOnDisk: onDisk,
		cfg:          cfg,
		logger:       logg,
	}, nil
}

// WatchAssets logs changes to the on-disk assets. The view engine re-parses
// templates on each render in that mode, so the next request sees the edit.
// It is a no-op outside debug mode or when serving embedded assets.
func (a *App) WatchAssets() error {
	if !a.cfg.Server.Debug {
		return nil
	}
	if !a.AssetsOnDisk {
		a.logger.Info("Debug mode with embedded assets, template reload disabled")
		return nil
	}

	w, err := watcher.New(a.logger)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	err = w.Watch(a.cfg.Server.AssetsDir, func(path string) {
		if !strings.EqualFold(filepath.Ext(path), ".html") {
			a.logger.Debug("Static asset changed", zap.String("path", path))
			return
		}
		a.logger.Info("Template changed, reloading on next render", zap.String("path", path))
	})
	if err != nil {
		_ = w.Stop()
		return fmt.Errorf("failed to watch %s: %w", a.cfg.Server.AssetsDir, err)
	}

	a.watcher = w
	a.logger.Info("Watching assets for changes", zap.String("dir", a.cfg.Server.AssetsDir))
	return nil
}

// Serve blocks serving requests on ln until Shutdown is called.
func (a *App) Serve(ln net.Listener) error {
	return a.Fiber.Listener(ln)
}

// Shutdown stops the watcher and gracefully stops the server.
func (a *App) Shutdown() error {
	if a.watcher != nil {
		_ = a.watcher.Stop()
	}
	return a.Fiber.Shutdown()
}
