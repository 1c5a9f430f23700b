package cmd

import (
	"github.com/spf13/cobra"

	"github.com/masterputra169/cryptography-website-sub002/core"
	"github.com/masterputra169/cryptography-website-sub002/internal/contract"
)

// trendsCmd fits performance trends over time buckets.
var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show performance trends over daily, weekly, and monthly buckets.",
	Long: `Group records into time buckets and fit a least-squares trend per period.

Each of the day, week, and month periods gets a direction (increasing,
decreasing, stable) and a percentage change across the series. Periods with
fewer than two buckets are skipped; nothing is computed until the record
count clears --min-points.

Examples:
  # Show trends for all stored records
  ciphermetrics trends

  # Lower the data threshold for sparse data sets
  ciphermetrics trends --min-points 3

  # Export trend summaries to JSON
  ciphermetrics trends --output json --output-file trends.json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrends(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run trend analysis", err)
		}
	},
}
