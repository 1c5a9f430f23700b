package cmd

import (
	"github.com/spf13/cobra"

	"github.com/masterputra169/cryptography-website-sub002/core"
	"github.com/masterputra169/cryptography-website-sub002/internal/mcp"
	"github.com/masterputra169/cryptography-website-sub002/internal/recstore"
	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the CipherMetrics MCP server",
	Long:  `Launch an MCP server that allows AI agents to query cipher performance analytics via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Normal table output would pollute stdio which is used for the
		// protocol, so handlers respond with JSON payloads only.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		var records []schema.MetricRecord
		var err error
		if cfg.InputFile != "" {
			records, err = recstore.LoadRecordsFile(cfg.InputFile)
		} else {
			records, err = storeManager.GetRecordStore().LoadRecords(rootCtx)
		}
		if err != nil {
			return err
		}
		opts := core.DefaultOptions()
		opts.MinDataPoints = cfg.MinDataPoints
		opts.EnableTrends = cfg.EnableTrends
		opts.EnableInsights = cfg.EnableInsights
		opts.EnablePredictions = cfg.EnablePredictions
		analyzer := core.NewAnalyzer(records, opts)
		return mcp.StartMCPServer(rootCtx, cfg, analyzer)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
