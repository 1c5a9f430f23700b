package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/masterputra169/cryptography-website-sub002/core"
	"github.com/masterputra169/cryptography-website-sub002/internal/contract"
	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg  *contract.Config
	analyzer *core.Analyzer
}

func (h *toolHandler) handleGetAlgorithmStats(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	output := h.analyzer.AggregateByAlgorithm()

	if name := request.GetString("algorithm", ""); name != "" {
		stat, ok := output.Get(name)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown algorithm: %s", name)), nil
		}
		output = &schema.AggregateOutput{
			Stats: map[string]schema.AggregatedStat{name: stat},
			Order: []string{name},
		}
	}

	limit := request.GetInt("limit", 0)
	if limit > 0 && limit < len(output.Order) {
		trimmed := &schema.AggregateOutput{
			Stats: make(map[string]schema.AggregatedStat, limit),
			Order: output.Order[:limit],
		}
		for _, name := range trimmed.Order {
			trimmed.Stats[name] = output.Stats[name]
		}
		output = trimmed
	}

	jsonData, _ := json.MarshalIndent(output, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCompareAlgorithms(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name1 := request.GetString("algorithm1", "")
	name2 := request.GetString("algorithm2", "")
	if name1 == "" || name2 == "" {
		return mcp.NewToolResultError("both algorithm1 and algorithm2 are required"), nil
	}

	result, err := h.analyzer.CompareAlgorithms(name1, name2)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleAnalyzeTrends(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// The threshold override is request-scoped and must not reconfigure
	// the shared analyzer.
	minPoints := h.analyzer.CurrentOptions().MinDataPoints
	if mp := request.GetInt("min_points", 0); mp > 0 {
		minPoints = mp
	}

	trends := core.AnalyzeTrends(h.analyzer.Records(), minPoints)
	if trends == nil {
		return mcp.NewToolResultText("[]"), nil
	}

	jsonData, _ := json.MarshalIndent(trends, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGenerateReport(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	period := schema.Period(request.GetString("period", string(schema.DayPeriod)))
	if _, ok := schema.ValidPeriods[period]; !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid period: %s", period)), nil
	}

	report := h.analyzer.GenerateReport(period)
	if report == nil {
		return mcp.NewToolResultError("report generation produced no result"), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
