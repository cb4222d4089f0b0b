package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"onboarding-dashboard/core/config"
	"onboarding-dashboard/core/logger"
	"onboarding-dashboard/core/storage"
	"onboarding-dashboard/feature/regulatory"
	"onboarding-dashboard/feature/regulatory/upstream"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Run a regulatory classification for one client",
	Long: `Reads a client onboarding payload from a JSON file, runs the regulatory
due diligence checks against the configured upstreams and prints the result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		startTime := time.Now()

		file, _ := cmd.Flags().GetString("file")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		raw, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read client file: %w", err)
		}
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			return fmt.Errorf("client file must hold a JSON object: %w", err)
		}

		var store storage.Client
		if cfg.Regulatory.DocumentSource == upstream.SourceStorage {
			store, err = storage.NewClient(cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
		}

		svc := regulatory.NewServiceFromConfig(cfg.Regulatory, store, cfg.Storage.Bucket, logg)

		client, err := svc.ParseClient(body)
		if err != nil {
			return err
		}

		result, err := svc.Trigger(ctx, client)
		if err != nil {
			return fmt.Errorf("classification failed: %w", err)
		}
		logg.Info("Classification completed",
			zap.String("classification_id", result.ClassificationID),
			zap.String("status", string(result.Status)),
			zap.Int("total_checks", result.TotalChecks()),
		)

		if jsonOutput {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		printClassification(result, time.Since(startTime))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().String("file", "", "Path to the client JSON payload")
	classifyCmd.Flags().Bool("json", false, "Output the full classification as JSON")
	_ = classifyCmd.MarkFlagRequired("file")
}

func printClassification(c *regulatory.Classification, elapsed time.Duration) {
	var hlFailed, docReview, dqFailed int
	for _, check := range c.HighLevelChecks {
		if check.Status == regulatory.StatusFailed {
			hlFailed++
		}
	}
	for _, check := range c.DocumentChecks {
		if check.AIValidationStatus == regulatory.StatusManualReview {
			docReview++
		}
	}
	for _, check := range c.DQChecks {
		if check.Status == regulatory.StatusFailed {
			dqFailed++
		}
	}

	fmt.Println("\n=== Regulatory Classification ===")
	fmt.Printf("Classification ID: %s\n", c.ClassificationID)
	fmt.Printf("Client ID: %s\n", c.ClientID)
	fmt.Printf("Regulations: %d\n", len(c.Regulations))
	fmt.Printf("High-Level Checks: %d (%d failed)\n", len(c.HighLevelChecks), hlFailed)
	fmt.Printf("Document Checks: %d (%d need review)\n", len(c.DocumentChecks), docReview)
	fmt.Printf("Data Quality Checks: %d (%d failed)\n", len(c.DQChecks), dqFailed)
	fmt.Printf("Progress: %.1f%%\n", c.OverallProgress)
	fmt.Printf("Overall Status: %s\n", c.Status)
	fmt.Printf("Execution Time: %s\n", elapsed.String())
}
