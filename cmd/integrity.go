package cmd

import (
	"context"
	"errors"
	"fmt"

	"onboarding-dashboard/core/config"
	"onboarding-dashboard/core/logger"
	"onboarding-dashboard/core/storage"
	"onboarding-dashboard/feature/integrity"
	"onboarding-dashboard/feature/integrity/checks"
	"onboarding-dashboard/feature/regulatory/upstream"
	"onboarding-dashboard/web"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check dashboard assets and document storage",
	Long: `Checks that the templates and static files the dashboard serves are present,
and that the documents bucket exists when documents are read from storage.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// assetsCmd represents the integrity assets command
var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Check templates and static files",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

// storageCmd represents the integrity storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the documents bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(assetsCmd, storageCmd)

	storageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing bucket and folders")
}

func runIntegrityChecks(ctx context.Context, runAssets, runStorage bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	assets, onDisk := web.Assets(cfg.Server.AssetsDir)

	// Storage is only checked when the document source is the bucket.
	var store storage.Client
	if runStorage && cfg.Regulatory.DocumentSource == upstream.SourceStorage {
		store, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	svc := integrity.NewService(assets, store, cfg.Storage.Bucket, cfg.Storage.Region, logg)
	failed := false

	if runAssets {
		logg.Info("Checking assets...", zap.Bool("on_disk", onDisk), zap.String("dir", cfg.Server.AssetsDir))
		if missing := svc.CheckAssets(); len(missing) == 0 {
			logg.Info("Assets are intact.")
		} else {
			logg.Warn("Missing assets detected", zap.Strings("missing", missing))
			failed = true
		}
	}

	if runStorage {
		if !svc.StorageEnabled() {
			logg.Info("Document source is not storage, skipping bucket check.",
				zap.String("document_source", cfg.Regulatory.DocumentSource))
		} else if err := checkStorage(ctx, svc, logg); err != nil {
			return err
		}
	}

	if failed {
		return errors.New("integrity checks failed")
	}
	return nil
}

func checkStorage(ctx context.Context, svc *integrity.Service, logg *zap.Logger) error {
	logg.Info("Checking document storage...")

	missing, err := svc.CheckStorage(ctx)
	if err != nil {
		if !fixFlag || !errors.Is(err, checks.ErrBucketMissing) {
			return fmt.Errorf("storage check failed: %w", err)
		}
		missing = checks.RequiredFolders
	}

	if len(missing) == 0 {
		logg.Info("Storage is intact.")
		return nil
	}

	logg.Warn("Missing folders detected", zap.Strings("missing", missing))
	if !fixFlag {
		logg.Info("Run with --fix to create missing folders.")
		return nil
	}

	logg.Info("Fixing storage...")
	if err := svc.FixStorage(ctx, missing); err != nil {
		return fmt.Errorf("failed to fix storage: %w", err)
	}
	logg.Info("Storage fixed successfully.")
	return nil
}
