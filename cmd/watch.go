package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/masterputra169/cryptography-website-sub002/core"
	"github.com/masterputra169/cryptography-website-sub002/internal/contract"
)

// watchCmd re-runs the analysis on an interval.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Refresh the analysis on an interval and print reports.",
	Long: `Run the full analysis repeatedly, printing a fresh report after each pass.

Records are re-read from the store (or input file) before every pass, so new
operations show up without restarting. A refresh already in flight is never
stacked; slow passes simply skip ticks. Stop with Ctrl-C.

Examples:
  # Refresh every minute (default)
  ciphermetrics watch

  # Refresh every 10 seconds with weekly bucketing
  ciphermetrics watch --interval 10s --period week`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ctx, stop := signal.NotifyContext(rootCtx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		if err := core.ExecuteWatch(ctx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run watch mode", err)
		}
	},
}
