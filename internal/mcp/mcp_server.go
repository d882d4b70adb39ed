// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/nhollman/breeze/internal/contract"
)

// NewMCPServer initializes and configures the Breeze MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Breeze Comfort Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: breeze_analyze ---
	s.AddTool(mcp.NewTool("breeze_analyze",
		mcp.WithDescription("Run the full comfort analysis on a weather bundle: composite score, best outdoor window, headache risk, UV timers, and ranked recommendations."),
		mcp.WithString("input", mcp.Description("Path to the weather bundle JSON file."), mcp.Required()),
		mcp.WithString("locale", mcp.Description("Display language for advisories (en, de). Defaults to 'en'."), mcp.Enum("en", "de")),
		mcp.WithNumber("skin_type", mcp.Description("Skin type 1-6 for the UV exposure timers. Defaults to 3.")),
		mcp.WithBoolean("migraine", mcp.Description("Lower the pressure alert threshold for migraine-sensitive users.")),
	), h.handleAnalyze)

	// --- 2. Tool: breeze_score ---
	s.AddTool(mcp.NewTool("breeze_score",
		mcp.WithDescription("Compute only the weighted comfort score with its per-factor breakdown for a weather bundle."),
		mcp.WithString("input", mcp.Description("Path to the weather bundle JSON file."), mcp.Required()),
	), h.handleScore)

	// --- 3. Tool: breeze_window ---
	s.AddTool(mcp.NewTool("breeze_window",
		mcp.WithDescription("Find the best contiguous outdoor time window in the next 24 hours."),
		mcp.WithString("input", mcp.Description("Path to the weather bundle JSON file."), mcp.Required()),
		mcp.WithNumber("min_duration", mcp.Description("Minimum window duration in hours. Defaults to 1.5.")),
	), h.handleWindow)

	return s
}

// StartMCPServer starts the Breeze MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
