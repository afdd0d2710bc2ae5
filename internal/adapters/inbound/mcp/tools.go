package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/routeguard/routeguard/internal/adapters/outbound/backup"
	"github.com/routeguard/routeguard/internal/adapters/outbound/config"
	"github.com/routeguard/routeguard/internal/adapters/outbound/gitinfo"
	"github.com/routeguard/routeguard/internal/adapters/outbound/history"
	"github.com/routeguard/routeguard/internal/adapters/outbound/scanner"
	"github.com/routeguard/routeguard/internal/application"
)

// registerTools registers all RouteGuard MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("routeguard_classify",
			mcplib.WithDescription("Classify a route file: code-shape pattern, rate-limit category and wrapper identifier"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the route file, relative to the project root"),
			),
		),
		handleClassify(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("routeguard_preview",
			mcplib.WithDescription("Compute every rate-limit rewrite for the project and return the full report (diffs included) without touching any file"),
		),
		handlePreview(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("routeguard_summary",
			mcplib.WithDescription("Return only the run statistics of a preview: per-status and per-category counts plus failures"),
		),
		handleSummary(projectPath),
	)
}

// newServices wires the standard outbound adapters.
func newServices() *application.RunService {
	sc := scanner.New()
	return application.NewRunService(
		sc,
		config.New(),
		sc,
		backup.New(),
		gitinfo.New(),
		history.New(),
	)
}

func handleClassify(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		data, err := os.ReadFile(filepath.Join(projectPath, filepath.FromSlash(file)))
		if err != nil {
			return errorResult(fmt.Sprintf("reading file: %v", err)), nil
		}

		ins, err := newServices().Inspect(projectPath, file, string(data))
		if err != nil {
			return errorResult(fmt.Sprintf("classify failed: %v", err)), nil
		}
		return jsonResult(ins)
	}
}

func handlePreview(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := newServices().Preview(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("preview failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleSummary(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := newServices().Preview(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("preview failed: %v", err)), nil
		}
		return jsonResult(report.Stats)
	}
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error text result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
