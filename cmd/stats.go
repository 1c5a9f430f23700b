package cmd

import (
	"github.com/spf13/cobra"

	"github.com/masterputra169/cryptography-website-sub002/core"
	"github.com/masterputra169/cryptography-website-sub002/internal/contract"
)

// statsCmd performs per-algorithm aggregation.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-algorithm timing statistics.",
	Long: `Aggregate stored cipher operation timings into per-algorithm statistics.

Computes count, total, mean, min, max, population standard deviation, and
the 25th/50th/75th/95th percentiles for each algorithm, plus a consistency
label derived from the coefficient of variation.

Records with unparseable execution times are excluded rather than skewing
the statistics.

Examples:
  # Show stats for all stored records
  ciphermetrics stats

  # Analyze a JSON export instead of the store
  ciphermetrics stats --input-file metrics.json

  # Export stats to CSV for tracking
  ciphermetrics stats --output csv --output-file stats.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStats(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run stats analysis", err)
		}
	},
}
