package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/michael-freling/claude-code-rule2hook/internal/installer"
	"github.com/michael-freling/claude-code-rule2hook/internal/mcpserver"
)

func newInstallCmd() *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "install [project-path]",
		Short: "Install the rule2hook command for Claude Code",
		Long: `Installs the rule2hook.md command template into the project's
.claude/commands directory, enabling /project:rule2hook in Claude Code.
With --global the template is installed into ~/.claude/commands instead,
enabling /rule2hook everywhere.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir := "."
			if len(args) == 1 {
				projectDir = args[0]
			}

			installType := installer.InstallTypeProject
			if global {
				installType = installer.InstallTypeGlobal
			}

			inst, err := installer.NewInstaller()
			if err != nil {
				return err
			}

			result, err := inst.Install(projectDir, installType)
			if errors.Is(err, installer.ErrAlreadyInstalled) {
				fmt.Fprintf(cmd.OutOrStdout(), "rule2hook command already installed at %s. Use %s in Claude Code.\n",
					result.Location, result.CommandPrefix)
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to install rule2hook: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Installed rule2hook command at %s. Use %s in Claude Code.\n",
				result.Location, result.CommandPrefix)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&global, "global", "g", false, "install globally for all projects")

	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the rule2hook MCP server over stdio",
		Long: `Starts an MCP server on stdin/stdout exposing the convert_rules,
validate_hooks, detect_conflicts, install_rule2hook, and
list_project_rules tools for MCP clients such as Claude Desktop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := mcpserver.New()
			if err != nil {
				return fmt.Errorf("failed to create MCP server: %w", err)
			}

			if err := mcpserver.ServeStdio(s); err != nil {
				return fmt.Errorf("MCP server stopped: %w", err)
			}
			return nil
		},
	}
}
