package cmd

import (
	"github.com/spf13/cobra"

	"github.com/masterputra169/cryptography-website-sub002/core"
	"github.com/masterputra169/cryptography-website-sub002/internal/contract"
)

// reportCmd composes the full analytics report.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compose a full analytics report.",
	Long: `Compose stats, trends, insights, predictions, and recommendations into
one report for the configured period.

The report bundles:
- Summary (operation count, algorithm count, date range)
- Per-algorithm statistics
- Trend directions per period
- Heuristic insights and derived recommendations
- Execution-time predictions

Examples:
  # Daily report to the terminal
  ciphermetrics report

  # Weekly report as JSON for the website
  ciphermetrics report --period week --output json --output-file report.json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run report generation", err)
		}
	},
}
