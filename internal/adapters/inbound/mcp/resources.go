package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources registers all validgen MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// 1. validgen://report - current analysis report
	s.AddResource(
		mcplib.NewResource(
			"validgen://report",
			"Analysis Report",
			mcplib.WithResourceDescription("Resolved schemas for every annotated struct, plus stale and orphaned generated files"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(projectPath),
	)

	// 2. validgen://vocabulary - tag keyword vocabulary
	s.AddResource(
		mcplib.NewResource(
			"validgen://vocabulary",
			"Tag Vocabulary",
			mcplib.WithResourceDescription("Validation rule and modifier keywords accepted in struct tags"),
			mcplib.WithMIMEType("application/json"),
		),
		handleVocabularyResource(),
	)

	// 3. validgen://schemas/{file} - per-file schema report (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"validgen://schemas/{file}",
			"File Schemas",
			mcplib.WithTemplateDescription("Resolved schemas declared in a specific source file"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleFileResource(projectPath),
	)
}

func handleReportResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		analyzeSvc, _ := newServices()
		report, err := analyzeSvc.Analyze(projectPath)
		if err != nil {
			return nil, fmt.Errorf("analysis failed: %w", err)
		}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling report: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "validgen://report",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleVocabularyResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(vocabulary(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling vocabulary: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "validgen://vocabulary",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleFileResource(projectPath string) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		// Extract the file path from the arguments (populated by template matching)
		file, ok := request.Params.Arguments["file"].(string)
		if !ok || file == "" {
			return nil, fmt.Errorf("file path is required")
		}

		analyzeSvc, _ := newServices()
		report, err := analyzeSvc.Analyze(projectPath)
		if err != nil {
			return nil, fmt.Errorf("analysis failed: %w", err)
		}

		for _, fa := range report.Files {
			if fa.Path != file {
				continue
			}
			data, err := json.MarshalIndent(fa, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("marshaling file report: %w", err)
			}
			return []mcplib.ResourceContents{
				mcplib.TextResourceContents{
					URI:      request.Params.URI,
					MIMEType: "application/json",
					Text:     string(data),
				},
			}, nil
		}

		return nil, fmt.Errorf("no schemas declared in %q", file)
	}
}
