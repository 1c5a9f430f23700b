package cmd

import (
	"github.com/spf13/cobra"

	"github.com/masterputra169/cryptography-website-sub002/core"
	"github.com/masterputra169/cryptography-website-sub002/internal/contract"
)

// insightsCmd derives heuristic observations from the stats and trends.
var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show heuristic insights about algorithm performance.",
	Long: `Run the fixed heuristic pipeline over aggregated stats and trends.

Produces classified observations in a stable order:
- Best performer (fastest average time)
- High variability (coefficient of variation above 50%)
- Low usage (under 5% share with more than 2 operations)
- Performance degradation (increasing trend with change above 10%)
- Optimization opportunities (average above 1.5x the overall mean)

Nothing is produced until the record count clears --min-points.

Examples:
  # Show insights for all stored records
  ciphermetrics insights

  # Export insights to JSON for the website
  ciphermetrics insights --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteInsights(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run insight analysis", err)
		}
	},
}
