package cmd

import (
	"context"
	"fmt"

	"stock-regul/core/config"
	"stock-regul/core/logger"
	"stock-regul/core/storage"
	"stock-regul/feature/stock"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var skipUpload bool

// reconcileCmd runs the reconciliation pipeline once against the staged
// snapshots and uploads the run workbook.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Run the stock reconciliation pipeline",
	Long: `Run the full reconciliation pipeline against the staged snapshots.

Fetches the Reflex and M3 snapshots plus the purchase-order list from
storage, builds the wide correspondence, the reliquat, the regulation
decisions and the corrective actions, and uploads the run workbook.

Examples:
  # Full run with workbook upload
  stock-regul reconcile

  # Compute the report without uploading the workbook
  stock-regul reconcile --skip-upload`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().BoolVar(&skipUpload, "skip-upload", false, "Compute the report without uploading the workbook")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
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

	l.Info("Starting stock reconciliation")

	// Connect to storage
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	svc := stock.NewService(client, cfg.Storage.Bucket, l, nil, cfg.Stock)

	report, err := svc.Run(ctx, stock.RunOptions{SkipUpload: skipUpload})
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	printRunReport(l, report)
	return nil
}

// printRunReport prints a formatted run report using logger.
func printRunReport(l *zap.Logger, report *stock.RunReport) {
	s := report.Summary

	l.Info("Run report",
		zap.Int("reflex_lines", s.ReflexLines),
		zap.Int("m3_lines", s.M3Lines),
		zap.Int("unmapped_reflex", s.UnmappedReflex),
		zap.Int("unmapped_m3", s.UnmappedM3),
		zap.Int("wide_rows", s.WideRows),
		zap.Int("purchase_orders", s.PurchaseOrders),
		zap.Int("reliquat_rows", s.ReliquatRows),
	)

	l.Info("Regulation report",
		zap.Int("regulation_rows", s.RegulationRows),
		zap.String("withdraw_total", s.WithdrawTotal.String()),
		zap.Int("actions", s.Actions),
		zap.Int("fulfilled", s.Fulfilled),
		zap.Int("partial", s.Partial),
		zap.Int("unfulfilled", s.Unfulfilled),
	)

	if s.Unfulfilled > 0 || s.Partial > 0 {
		l.Warn("Some withdrawals could not be fully allocated",
			zap.Int("partial", s.Partial),
			zap.Int("unfulfilled", s.Unfulfilled),
		)
	}

	// Show sample of actions (max 5 for logger)
	maxShow := 5
	if len(report.Actions) < maxShow {
		maxShow = len(report.Actions)
	}
	for i := 0; i < maxShow; i++ {
		action := report.Actions[i]
		l.Info("Sample action",
			zap.String("depot", action.WHLO),
			zap.String("item", action.ITNO),
			zap.String("location", action.WHSL),
			zap.String("lot", action.BANO),
			zap.String("quantity", action.STQI.String()),
		)
	}
	if len(report.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(report.Actions)-maxShow))
	}
}
