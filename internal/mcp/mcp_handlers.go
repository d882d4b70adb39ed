package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/nhollman/breeze/core"
	"github.com/nhollman/breeze/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

func (h *toolHandler) handleAnalyze(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.InputPath = request.GetString("input", "")
	if l := request.GetString("locale", ""); l != "" {
		cfg.Locale = l
	}
	if s := request.GetInt("skin_type", 0); s > 0 {
		cfg.SkinType = s
	}
	cfg.MigraineSensitive = request.GetBool("migraine", cfg.MigraineSensitive)

	result, err := core.GetAnalysisResult(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleScore(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.InputPath = request.GetString("input", "")

	result, err := core.GetAnalysisResult(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result.Comfort, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleWindow(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.InputPath = request.GetString("input", "")
	if d := request.GetFloat("min_duration", 0); d > 0 {
		cfg.MinDuration = d
	}

	result, err := core.GetAnalysisResult(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("window search failed: %v", err)), nil
	}

	if result.BestWindow == nil {
		return mcp.NewToolResultText(`{"window": null}`), nil
	}
	jsonData, _ := json.MarshalIndent(result.BestWindow, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
