package cmd

import (
	"context"
	"fmt"

	"stock-regul/core/config"
	"stock-regul/core/database"
	"stock-regul/core/logger"
	"stock-regul/core/storage"
	"stock-regul/feature/stock"

	"github.com/spf13/cobra"
)

// extractCmd pulls the upstream sources and stages them as snapshot
// objects for the next reconciliation run.
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract upstream sources into staged snapshots",
	Long: `Extract the Reflex stock view, the M3 stock balance and the
purchase-order list from the database and upload them as xlsx snapshot
objects. A reconciliation run always reads the staged snapshots, never
the live sources.`,
	RunE: runExtract,
}

func init() {
	RootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	l.Info("Starting snapshot extraction")

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Connect to storage
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	svc := stock.NewService(client, cfg.Storage.Bucket, l, db, cfg.Stock)
	if err := svc.Stage(ctx); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	l.Info("All snapshots staged")
	return nil
}
