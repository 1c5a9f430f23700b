package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masterputra169/cryptography-website-sub002/core"
	"github.com/masterputra169/cryptography-website-sub002/internal/contract"
	mcp_internal "github.com/masterputra169/cryptography-website-sub002/internal/mcp"
	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// newTestServer builds an MCP server over a small in-memory record set. The
// backing analyzer is returned so tests can observe its configuration.
func newTestServer() (*server.MCPServer, *core.Analyzer) {
	records := []schema.MetricRecord{
		{Algorithm: "caesar", Timestamp: "2026-01-02T10:00:00Z", ExecutionTime: "10"},
		{Algorithm: "rsa", Timestamp: "2026-01-02T09:00:00Z", ExecutionTime: "90"},
		{Algorithm: "caesar", Timestamp: "2026-01-01T10:00:00Z", ExecutionTime: "20"},
		{Algorithm: "rsa", Timestamp: "2026-01-01T09:00:00Z", ExecutionTime: "80"},
	}
	opts := core.DefaultOptions()
	opts.MinDataPoints = 1
	analyzer := core.NewAnalyzer(records, opts)
	baseCfg := &contract.Config{Period: schema.DayPeriod}
	return mcp_internal.NewMCPServer(baseCfg, analyzer), analyzer
}

// callTool invokes a named tool on the server with the given arguments.
func callTool(t *testing.T, s *server.MCPServer, ctx context.Context, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	res, err := tool.Handler(ctx, req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	return res
}

// textContent extracts the text payload of a tool result.
func textContent(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	return res.Content[0].(mcp.TextContent).Text
}

func TestMCPServerGetAlgorithmStats(t *testing.T) {
	s, _ := newTestServer()
	ctx := context.Background()

	t.Run("all algorithms", func(t *testing.T) {
		res := callTool(t, s, ctx, "get_algorithm_stats", map[string]any{})
		require.False(t, res.IsError)

		var output schema.AggregateOutput
		require.NoError(t, json.Unmarshal([]byte(textContent(t, res)), &output))
		assert.Equal(t, []string{"caesar", "rsa"}, output.Order)
		assert.Equal(t, 2, output.Stats["caesar"].Count)
	})

	t.Run("single algorithm filter", func(t *testing.T) {
		res := callTool(t, s, ctx, "get_algorithm_stats", map[string]any{"algorithm": "rsa"})
		require.False(t, res.IsError)

		var output schema.AggregateOutput
		require.NoError(t, json.Unmarshal([]byte(textContent(t, res)), &output))
		assert.Equal(t, []string{"rsa"}, output.Order)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		res := callTool(t, s, ctx, "get_algorithm_stats", map[string]any{"algorithm": "enigma"})
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, textContent(t, res), "unknown algorithm")
	})

	t.Run("limit trims output", func(t *testing.T) {
		res := callTool(t, s, ctx, "get_algorithm_stats", map[string]any{"limit": 1.0})
		require.False(t, res.IsError)

		var output schema.AggregateOutput
		require.NoError(t, json.Unmarshal([]byte(textContent(t, res)), &output))
		assert.Equal(t, []string{"caesar"}, output.Order)
	})
}

func TestMCPServerCompareAlgorithms(t *testing.T) {
	s, _ := newTestServer()
	ctx := context.Background()

	t.Run("valid comparison", func(t *testing.T) {
		res := callTool(t, s, ctx, "compare_algorithms", map[string]any{
			"algorithm1": "caesar",
			"algorithm2": "rsa",
		})
		require.False(t, res.IsError)

		var result schema.ComparisonResult
		require.NoError(t, json.Unmarshal([]byte(textContent(t, res)), &result))
		assert.Equal(t, "caesar", result.Winner)
	})

	t.Run("missing argument", func(t *testing.T) {
		res := callTool(t, s, ctx, "compare_algorithms", map[string]any{"algorithm1": "caesar"})
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, textContent(t, res), "algorithm2")
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		res := callTool(t, s, ctx, "compare_algorithms", map[string]any{
			"algorithm1": "caesar",
			"algorithm2": "enigma",
		})
		assert.True(t, res.IsError)
		assert.Contains(t, textContent(t, res), "comparison failed")
	})
}

func TestMCPServerAnalyzeTrends(t *testing.T) {
	s, analyzer := newTestServer()
	ctx := context.Background()

	res := callTool(t, s, ctx, "analyze_trends", map[string]any{})
	require.False(t, res.IsError)

	var trends []schema.TrendResult
	require.NoError(t, json.Unmarshal([]byte(textContent(t, res)), &trends))
	assert.NotEmpty(t, trends)

	// A high threshold empties the result rather than erroring
	res = callTool(t, s, ctx, "analyze_trends", map[string]any{"min_points": 100.0})
	require.False(t, res.IsError)
	assert.Equal(t, "[]", textContent(t, res))

	// The override is request-scoped: the shared analyzer keeps its
	// configured threshold and later calls are unaffected
	assert.Equal(t, 1, analyzer.CurrentOptions().MinDataPoints)
	res = callTool(t, s, ctx, "analyze_trends", map[string]any{})
	require.False(t, res.IsError)
	var after []schema.TrendResult
	require.NoError(t, json.Unmarshal([]byte(textContent(t, res)), &after))
	assert.NotEmpty(t, after)
}

func TestMCPServerGenerateReport(t *testing.T) {
	s, _ := newTestServer()
	ctx := context.Background()

	t.Run("default period", func(t *testing.T) {
		res := callTool(t, s, ctx, "generate_report", map[string]any{})
		require.False(t, res.IsError)

		var report schema.Report
		require.NoError(t, json.Unmarshal([]byte(textContent(t, res)), &report))
		assert.Equal(t, schema.DayPeriod, report.Period)
		assert.Equal(t, 4, report.Summary.TotalOperations)
	})

	t.Run("invalid period", func(t *testing.T) {
		res := callTool(t, s, ctx, "generate_report", map[string]any{"period": "fortnight"})
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, textContent(t, res), "invalid period")
	})
}
