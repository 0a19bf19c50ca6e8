package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/michael-freling/claude-code-rule2hook/internal/rule2hook"
	"github.com/michael-freling/claude-code-rule2hook/internal/rules"
	"github.com/michael-freling/claude-code-rule2hook/internal/store"
)

func newConvertCmd() *cobra.Command {
	var (
		projectDir string
		merge      bool
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "convert [rules...]",
		Short: "Convert natural language rules into hook configurations",
		Long: `Converts comma or semicolon separated rules into a hooks configuration and
prints it as JSON. Without arguments, rules are read from the project's
CLAUDE.md files. With --merge the result is written into the project's
.claude/hooks.json, refusing to overwrite conflicting hooks unless --force
is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ruleText := strings.Join(args, ", ")
			if ruleText == "" {
				scanned, err := rules.NewScanner().Scan(projectDir)
				if err != nil {
					return fmt.Errorf("failed to scan project rules: %w", err)
				}
				if len(scanned.Rules) == 0 {
					return fmt.Errorf("no rules found in %s", projectDir)
				}
				ruleText = strings.Join(scanned.Rules, "; ")
			}

			converter := rule2hook.NewConverterWithObserver(newWriterObserver(cmd.ErrOrStderr()))
			result, err := converter.Convert(ruleText)
			if err != nil {
				return fmt.Errorf("failed to convert rules: %w", err)
			}

			for _, failure := range result.Failed {
				fmt.Fprintf(cmd.ErrOrStderr(), "failed: %s\n", failure.Error)
			}

			if result.Status == rule2hook.StatusError {
				return fmt.Errorf("no rules could be converted")
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.JSON)

			if merge {
				return mergeIntoProject(cmd, projectDir, result.HooksConfig, force)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&projectDir, "project", "p", ".", "project directory")
	cmd.Flags().BoolVarP(&merge, "merge", "m", false, "merge the result into the project's .claude/hooks.json")
	cmd.Flags().BoolVar(&force, "force", false, "merge even when conflicting hooks exist")

	return cmd
}

func mergeIntoProject(cmd *cobra.Command, projectDir string, config *rule2hook.HooksConfig, force bool) error {
	hooksStore := store.NewStore(projectDir)

	report, err := hooksStore.Merge(config, force)
	if errors.Is(err, store.ErrConflicts) {
		for _, conflict := range report.Conflicts {
			fmt.Fprintf(cmd.ErrOrStderr(), "conflict in %s for matcher %q: existing %q vs new %q\n",
				conflict.Event, conflict.Matcher, conflict.ExistingCommand, conflict.NewCommand)
		}
		return fmt.Errorf("merge aborted: %w", err)
	}
	if err != nil {
		return fmt.Errorf("failed to merge hooks: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Merged hooks into %s\n", hooksStore.Path())
	return nil
}

func newListRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-rules [project-path]",
		Short: "List rules found in a project's CLAUDE.md files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir := "."
			if len(args) == 1 {
				projectDir = args[0]
			}

			result, err := rules.NewScanner().Scan(projectDir)
			if err != nil {
				return fmt.Errorf("failed to scan project rules: %w", err)
			}

			for _, rule := range result.Rules {
				fmt.Fprintln(cmd.OutOrStdout(), rule)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Found %d rules in %d files\n",
				len(result.Rules), len(result.FilesFound))
			return nil
		},
	}

	return cmd
}
