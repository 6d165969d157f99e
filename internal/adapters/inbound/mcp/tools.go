package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/validgen/validgen/internal/adapters/outbound/codegen"
	"github.com/validgen/validgen/internal/adapters/outbound/config"
	"github.com/validgen/validgen/internal/adapters/outbound/gitinfo"
	"github.com/validgen/validgen/internal/adapters/outbound/manifest"
	"github.com/validgen/validgen/internal/adapters/outbound/parser"
	"github.com/validgen/validgen/internal/adapters/outbound/scanner"
	"github.com/validgen/validgen/internal/application"
	"github.com/validgen/validgen/internal/domain"
)

// registerTools registers all validgen MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. validgen_check
	s.AddTool(
		mcplib.NewTool("validgen_check",
			mcplib.WithDescription("Analyze every annotated struct under the project and return the full analysis report as JSON, including stale and orphaned generated files"),
		),
		handleCheck(projectPath),
	)

	// 2. validgen_check_file
	s.AddTool(
		mcplib.NewTool("validgen_check_file",
			mcplib.WithDescription("Analyze the schemas declared in a single source file"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the file relative to the project root"),
			),
		),
		handleCheckFile(projectPath),
	)

	// 3. validgen_generate
	s.AddTool(
		mcplib.NewTool("validgen_generate",
			mcplib.WithDescription("Generate Validate and Modify methods for every annotated struct and write the generated files next to their sources"),
		),
		handleGenerate(projectPath),
	)

	// 4. validgen_vocabulary
	s.AddTool(
		mcplib.NewTool("validgen_vocabulary",
			mcplib.WithDescription("Returns the validation rule and modifier keyword vocabulary accepted in struct tags"),
		),
		handleVocabulary(),
	)
}

// newServices creates the standard set of outbound adapters and services.
func newServices() (*application.AnalyzeService, *application.GenerateService) {
	sc := scanner.New()
	par := parser.New()
	cfg := config.New()
	man := manifest.New()
	return application.NewAnalyzeService(sc, par, cfg, man),
		application.NewGenerateService(sc, par, cfg, codegen.New(), gitinfo.New(), man)
}

func handleCheck(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		analyzeSvc, _ := newServices()
		report, err := analyzeSvc.Analyze(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleCheckFile(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		analyzeSvc, _ := newServices()
		report, err := analyzeSvc.Analyze(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}

		for _, fa := range report.Files {
			if fa.Path == file {
				return jsonResult(fa)
			}
		}
		return errorResult(fmt.Sprintf("no schemas declared in %q", file)), nil
	}
}

func handleGenerate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		_, generateSvc := newServices()
		result, err := generateSvc.Generate(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("generation failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleVocabulary() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(vocabulary())
	}
}

type vocabEntry struct {
	Keyword     string `json:"keyword"`
	DefaultCode string `json:"default_code,omitempty"`
}

type vocabReport struct {
	Rules     []vocabEntry `json:"rules"`
	Modifiers []vocabEntry `json:"modifiers"`
}

// vocabulary lists the accepted tag keywords for both namespaces.
func vocabulary() vocabReport {
	var v vocabReport
	for _, k := range domain.RuleKinds() {
		v.Rules = append(v.Rules, vocabEntry{Keyword: string(k), DefaultCode: k.DefaultCode()})
	}
	for _, k := range domain.ModifierKinds() {
		v.Modifiers = append(v.Modifiers, vocabEntry{Keyword: string(k)})
	}
	return v
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
