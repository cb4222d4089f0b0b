package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"onboarding-dashboard/core/bootstrap"
	"onboarding-dashboard/core/config"
	"onboarding-dashboard/core/logger"
	"onboarding-dashboard/core/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Client Onboarding Dashboard API
// @version 1.0
// @description Onboarding pipeline overview and regulatory due diligence checks.
// @host localhost:5001
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the dashboard server",
	Long: `Starts the HTTP server on the configured host and port and loads all enabled features.
In debug mode templates are reloaded from the assets directory whenever they change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		applyServerFlags(cmd, &cfg.Server)
		if err := cfg.Server.Validate(); err != nil {
			return err
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Assemble App and Features
		app, err := bootstrap.New(cfg, logg)
		if err != nil {
			return err
		}

		// 4. Bind before serving so a busy port fails the command
		ln, err := server.Listen(cfg.Server)
		if err != nil {
			return err
		}

		if err := app.WatchAssets(); err != nil {
			logg.Warn("Template reload disabled", zap.Error(err))
		}

		// 5. Start Server
		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server",
				zap.String("address", ln.Addr().String()),
				zap.Bool("debug", cfg.Server.Debug),
				zap.Bool("assets_on_disk", app.AssetsOnDisk),
			)
			errCh <- app.Serve(ln)
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case <-c:
			logg.Info("Shutting down server...")
			return app.Shutdown()
		case err := <-errCh:
			_ = app.Shutdown()
			return fmt.Errorf("server stopped: %w", err)
		}
	},
}

// applyServerFlags overrides the loaded server configuration with flags set on the command line.
func applyServerFlags(cmd *cobra.Command, cfg *server.Config) {
	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Host, _ = flags.GetString("host")
	}
	if flags.Changed("port") {
		cfg.Port, _ = flags.GetString("port")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("assets") {
		cfg.AssetsDir, _ = flags.GetString("assets")
	}
}

func addServerFlags(cmd *cobra.Command) {
	cmd.Flags().String("host", "", "Interface to bind (default from SERVER_HOST or 127.0.0.1)")
	cmd.Flags().String("port", "", "Port to listen on (default from SERVER_PORT or 5001)")
	cmd.Flags().Bool("debug", false, "Enable debug error pages and template reload")
	cmd.Flags().String("assets", "", "Directory holding templates/ and static/")
}

func init() {
	RootCmd.AddCommand(startCmd)
	addServerFlags(startCmd)
}
