// Package mcpserver exposes rule2hook over the Model Context Protocol,
// so MCP clients can install the slash command, convert rules, validate
// hooks files, and check merges for conflicts.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/michael-freling/claude-code-rule2hook/internal/installer"
	"github.com/michael-freling/claude-code-rule2hook/internal/rule2hook"
	"github.com/michael-freling/claude-code-rule2hook/internal/rules"
)

const (
	serverName    = "rule2hook-setup"
	serverVersion = "1.0.0"

	instructions = "MCP server to help install and use rule2hook in projects. " +
		"Use install_rule2hook to set up the command in a project, then use " +
		"convert_rules to transform natural language rules into Claude Code hooks."
)

// toolServer holds the collaborators the tool handlers need.
type toolServer struct {
	installer *installer.Installer
	scanner   *rules.Scanner
}

// New builds the rule2hook MCP server with all tools and resources
// registered.
func New() (*server.MCPServer, error) {
	inst, err := installer.NewInstaller()
	if err != nil {
		return nil, fmt.Errorf("failed to create installer: %w", err)
	}

	return newWithCollaborators(inst, rules.NewScanner()), nil
}

func newWithCollaborators(inst *installer.Installer, scanner *rules.Scanner) *server.MCPServer {
	ts := &toolServer{
		installer: inst,
		scanner:   scanner,
	}

	s := server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions(instructions),
	)

	s.AddTool(newConvertRulesTool(), ts.handleConvertRules)
	s.AddTool(newValidateHooksTool(), ts.handleValidateHooks)
	s.AddTool(newDetectConflictsTool(), ts.handleDetectConflicts)
	s.AddTool(newInstallTool(), ts.handleInstall)
	s.AddTool(newListProjectRulesTool(), ts.handleListProjectRules)

	registerResources(s)

	return s
}

// ServeStdio runs the server over stdin/stdout until the client
// disconnects.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func newConvertRulesTool() mcp.Tool {
	return mcp.NewTool("convert_rules",
		mcp.WithDescription("Convert natural language rules into Claude Code hook configurations. "+
			"Examples: \"Format Python files with black after editing\", "+
			"\"Run git status when finishing a task\"."),
		mcp.WithString("rules",
			mcp.Required(),
			mcp.Description("Comma-separated natural language rules to convert to hooks"),
		),
		mcp.WithBoolean("merge_with_existing",
			mcp.Description("Whether to merge with existing hooks or create a new config"),
			mcp.DefaultBool(true),
		),
	)
}

// handleConvertRules converts rules and returns the structured result.
// Persisting the configuration is left to the client: the tool only
// reports what the hooks file should contain.
func (ts *toolServer) handleConvertRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ruleText, err := request.RequireString("rules")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	converter := rule2hook.NewConverterWithObserver(newClientObserver(ctx))
	result, err := converter.Convert(ruleText)
	if err != nil {
		if errors.Is(err, rule2hook.ErrNoRules) {
			return errorResult("No rules provided"), nil
		}
		return mcp.NewToolResultErrorFromErr("convert_rules failed", err), nil
	}

	return jsonResult(result)
}

func newValidateHooksTool() mcp.Tool {
	return mcp.NewTool("validate_hooks",
		mcp.WithDescription("Validate a hooks.json file for correct structure and common issues."),
		mcp.WithString("hooks_file_path",
			mcp.Required(),
			mcp.Description("Path to the hooks.json file to validate"),
		),
	)
}

func (ts *toolServer) handleValidateHooks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("hooks_file_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errorResult(fmt.Sprintf("File does not exist: %s", path)), nil
	}

	var document map[string]any
	if err := json.Unmarshal(data, &document); err != nil {
		return errorResult(fmt.Sprintf("JSON parsing error: %v", err)), nil
	}

	return jsonResult(rule2hook.Validate(document))
}

func newDetectConflictsTool() mcp.Tool {
	return mcp.NewTool("detect_conflicts",
		mcp.WithDescription("Check if new hooks would conflict with existing hooks (same event + matcher)."),
		mcp.WithString("existing_hooks_path",
			mcp.Required(),
			mcp.Description("Path to the existing hooks.json file"),
		),
		mcp.WithString("new_hooks_json",
			mcp.Required(),
			mcp.Description("JSON string of new hooks to check for conflicts"),
		),
	)
}

func (ts *toolServer) handleDetectConflicts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	existingPath, err := request.RequireString("existing_hooks_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	newJSON, err := request.RequireString("new_hooks_json")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	existingData, err := os.ReadFile(existingPath)
	if err != nil {
		// No existing file means nothing to conflict with.
		return jsonResult(&rule2hook.ConflictReport{
			Status:    rule2hook.StatusSuccess,
			Message:   "No existing hooks file - no conflicts possible",
			Conflicts: []rule2hook.Conflict{},
		})
	}

	existing, err := rule2hook.ParseHooksConfig(existingData)
	if err != nil {
		return errorResult(fmt.Sprintf("JSON parsing error: %v", err)), nil
	}

	incoming, err := rule2hook.ParseHooksConfig([]byte(newJSON))
	if err != nil {
		return errorResult(fmt.Sprintf("JSON parsing error: %v", err)), nil
	}

	return jsonResult(rule2hook.DetectConflicts(existing, incoming))
}

func newInstallTool() mcp.Tool {
	return mcp.NewTool("install_rule2hook",
		mcp.WithDescription("Install the rule2hook command in a project or globally. "+
			"This enables the /project:rule2hook or /rule2hook command in Claude Code."),
		mcp.WithString("project_path",
			mcp.Required(),
			mcp.Description("Path to the project where rule2hook should be installed"),
		),
		mcp.WithString("installation_type",
			mcp.Description("Whether to install for this project only or globally"),
			mcp.Enum("project", "global"),
			mcp.DefaultString("project"),
		),
	)
}

func (ts *toolServer) handleInstall(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectPath, err := request.RequireString("project_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	installType := installer.InstallType(request.GetString("installation_type", "project"))

	result, err := ts.installer.Install(projectPath, installType)
	if errors.Is(err, installer.ErrAlreadyInstalled) {
		return jsonResult(map[string]string{
			"status":   "warning",
			"message":  fmt.Sprintf("rule2hook command already installed. Use %s in Claude Code.", result.CommandPrefix),
			"location": result.Location,
		})
	}
	if err != nil {
		return errorResult(err.Error()), nil
	}

	return jsonResult(map[string]string{
		"status": "success",
		"message": fmt.Sprintf("Successfully installed rule2hook command. Use %s in Claude Code when in the project directory.",
			result.CommandPrefix),
		"location": result.Location,
		"command":  result.CommandPrefix,
	})
}

func newListProjectRulesTool() mcp.Tool {
	return mcp.NewTool("list_project_rules",
		mcp.WithDescription("List rules found in CLAUDE.md files in a project."),
		mcp.WithString("project_path",
			mcp.Required(),
			mcp.Description("Path to the project to check for CLAUDE.md files"),
		),
	)
}

func (ts *toolServer) handleListProjectRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectPath, err := request.RequireString("project_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := ts.scanner.Scan(projectPath)
	if err != nil {
		return errorResult(fmt.Sprintf("Invalid project path: %s", filepath.Clean(projectPath))), nil
	}

	return jsonResult(map[string]any{
		"status":      "success",
		"message":     fmt.Sprintf("Found %d rules in %d files", len(result.Rules), len(result.FilesFound)),
		"files_found": result.FilesFound,
		"rules":       result.Rules,
	})
}

// jsonResult marshals a payload into an indented JSON text result.
func jsonResult(payload any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// errorResult reports a domain-level failure as a structured payload
// rather than a protocol error, matching the status/message contract of
// every tool.
func errorResult(message string) *mcp.CallToolResult {
	data, err := json.MarshalIndent(map[string]string{
		"status":  "error",
		"message": message,
	}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(message)
	}
	return mcp.NewToolResultText(string(data))
}
