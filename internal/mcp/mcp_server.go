// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/masterputra169/cryptography-website-sub002/core"
	"github.com/masterputra169/cryptography-website-sub002/internal/contract"
)

// NewMCPServer initializes and configures the CipherMetrics MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, analyzer *core.Analyzer) *server.MCPServer {
	s := server.NewMCPServer(
		"CipherMetrics Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg:  baseCfg,
		analyzer: analyzer,
	}

	// --- 1. Tool: get_algorithm_stats ---
	s.AddTool(mcp.NewTool("get_algorithm_stats",
		mcp.WithDescription("Aggregate cipher operation timings into per-algorithm statistics (count, mean, percentiles, variability)."),
		mcp.WithString("algorithm", mcp.Description("Restrict output to one algorithm (all algorithms if not specified).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of algorithms returned.")),
	), h.handleGetAlgorithmStats)

	// --- 2. Tool: compare_algorithms ---
	s.AddTool(mcp.NewTool("compare_algorithms",
		mcp.WithDescription("Compare two cipher algorithms head-to-head on average time, consistency, and usage."),
		mcp.WithString("algorithm1", mcp.Description("The first algorithm to compare."), mcp.Required()),
		mcp.WithString("algorithm2", mcp.Description("The second algorithm to compare."), mcp.Required()),
	), h.handleCompareAlgorithms)

	// --- 3. Tool: analyze_trends ---
	s.AddTool(mcp.NewTool("analyze_trends",
		mcp.WithDescription("Fit performance trends over daily, weekly, and monthly time buckets."),
		mcp.WithNumber("min_points", mcp.Description("Minimum records required before trends are computed. Defaults to the configured threshold.")),
	), h.handleAnalyzeTrends)

	// --- 4. Tool: generate_report ---
	s.AddTool(mcp.NewTool("generate_report",
		mcp.WithDescription("Compose a full analytics report with stats, trends, insights, predictions, and recommendations."),
		mcp.WithString("period", mcp.Description("Reporting period (hour, day, week, month). Defaults to 'day'."), mcp.Enum("hour", "day", "week", "month")),
	), h.handleGenerateReport)

	return s
}

// StartMCPServer starts the CipherMetrics MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, analyzer *core.Analyzer) error {
	s := NewMCPServer(baseCfg, analyzer)
	return server.ServeStdio(s)
}
