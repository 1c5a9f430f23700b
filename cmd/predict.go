package cmd

import (
	"github.com/spf13/cobra"

	"github.com/masterputra169/cryptography-website-sub002/core"
	"github.com/masterputra169/cryptography-website-sub002/internal/contract"
)

// predictCmd forecasts next execution times per algorithm.
var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Forecast the next execution time per algorithm.",
	Long: `Predict each algorithm's next execution time from its most recent records.

The forecast is a moving average over the newest --min-points records per
algorithm, with a confidence score derived from the coefficient of variation
(steadier history means higher confidence). Algorithms without enough recent
records are omitted rather than given a low-quality forecast.

Examples:
  # Forecast with defaults
  ciphermetrics predict

  # Require a longer history per algorithm
  ciphermetrics predict --min-points 10`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePredict(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run prediction", err)
		}
	},
}
