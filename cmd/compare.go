package cmd

import (
	"github.com/spf13/cobra"

	"github.com/masterputra169/cryptography-website-sub002/core"
	"github.com/masterputra169/cryptography-website-sub002/internal/contract"
)

// compareCmd performs head-to-head algorithm comparisons.
var compareCmd = &cobra.Command{
	Use:   "compare <algorithm1> <algorithm2>",
	Short: "Compare two algorithms head-to-head.",
	Long: `Compare two algorithms on average time, consistency, and usage.

Each metric names a winner: lower wins for average time and consistency
(standard deviation), higher wins for usage count. The overall winner is
the average-time winner, and the analysis sentence quantifies how much
faster it is.

Examples:
  # Compare two ciphers
  ciphermetrics compare caesar vigenere

  # Machine-readable comparison
  ciphermetrics compare aes-sim rsa-sim --output json`,
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteCompare(rootCtx, cfg, storeManager, args[0], args[1]); err != nil {
			contract.LogFatal("Cannot run comparison", err)
		}
	},
}
