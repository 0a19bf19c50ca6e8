package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/michael-freling/claude-code-rule2hook/internal/templates"
)

const (
	examplesURI      = "data://rule2hook/examples"
	documentationURI = "data://rule2hook/documentation"

	documentationPath = "commands/rule2hook.md"
)

// ruleExample pairs a rule with the hook configuration it converts to.
type ruleExample struct {
	Rule    string `json:"rule"`
	Event   string `json:"event"`
	Matcher string `json:"matcher"`
	Command string `json:"command"`
}

// ruleExamples groups example conversions by use case.
var ruleExamples = map[string][]ruleExample{
	"formatting": {
		{
			Rule:    "Format Python files with black after editing",
			Event:   "PostToolUse",
			Matcher: "Edit|MultiEdit|Write",
			Command: "black . --quiet 2>/dev/null || true",
		},
		{
			Rule:    "Run prettier on JavaScript files after saving",
			Event:   "PostToolUse",
			Matcher: "Edit|MultiEdit|Write",
			Command: "prettier --write . 2>/dev/null || true",
		},
	},
	"testing": {
		{
			Rule:    "Run npm test after modifying test files",
			Event:   "PostToolUse",
			Matcher: "Edit|MultiEdit|Write",
			Command: "npm test 2>/dev/null || echo 'Tests need attention'",
		},
	},
	"git": {
		{
			Rule:    "Show git status when finishing work",
			Event:   "Stop",
			Matcher: "",
			Command: "git status",
		},
	},
	"validation": {
		{
			Rule:    "Check for TODO comments before committing",
			Event:   "PreToolUse",
			Matcher: "Edit|MultiEdit|Write",
			Command: "grep -r 'TODO' . 2>/dev/null || echo 'No TODOs found'",
		},
	},
}

func registerResources(s *server.MCPServer) {
	s.AddResource(
		mcp.NewResource(examplesURI, "rule2hook-examples",
			mcp.WithResourceDescription("Example rules and their hook conversions"),
			mcp.WithMIMEType("application/json"),
		),
		handleExamplesResource,
	)

	s.AddResource(
		mcp.NewResource(documentationURI, "rule2hook-documentation",
			mcp.WithResourceDescription("Documentation for using rule2hook"),
			mcp.WithMIMEType("text/markdown"),
		),
		handleDocumentationResource,
	)
}

func handleExamplesResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(ruleExamples, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal examples: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      examplesURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func handleDocumentationResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	content, err := templates.FS.ReadFile(documentationPath)
	if err != nil {
		return nil, fmt.Errorf("documentation template not found: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      documentationURI,
			MIMEType: "text/markdown",
			Text:     string(content),
		},
	}, nil
}
