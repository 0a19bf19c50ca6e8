package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/michael-freling/claude-code-rule2hook/internal/rule2hook"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <hooks.json> [new-hooks.json]",
		Short: "Validate a hooks file or check two files for merge conflicts",
		Long: `With one argument, validates the hooks file and prints a summary of every
hook found; exits with code 1 when the structure is invalid. With two
arguments, performs a pre-merge conflict check between the existing and the
new hooks file and exits with code 1 when conflicts are found.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				return runConflictCheck(cmd, args[0], args[1])
			}
			return runValidation(cmd, args[0])
		},
	}
}

func runValidation(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var document map[string]any
	if err := json.Unmarshal(data, &document); err != nil {
		return fmt.Errorf("JSON parsing error in %s: %w", path, err)
	}

	report := rule2hook.Validate(document)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s\n", path)

	for _, warning := range report.Warnings {
		fmt.Fprintf(out, "warning: %s\n", warning)
	}
	for _, issue := range report.Issues {
		fmt.Fprintf(out, "issue: %s\n", issue)
	}

	for _, summary := range report.Summary {
		fmt.Fprintf(out, "%s [%s] -> %s\n", summary.Event, summary.Matcher, summary.Command)
	}
	fmt.Fprintf(out, "Total: %d hooks\n", report.TotalHooks)

	if report.Status != rule2hook.StatusSuccess {
		return fmt.Errorf("validation failed with %d issues", len(report.Issues))
	}

	return nil
}

func runConflictCheck(cmd *cobra.Command, existingPath, newPath string) error {
	existing, err := readHooksConfig(existingPath)
	if err != nil {
		return err
	}
	incoming, err := readHooksConfig(newPath)
	if err != nil {
		return err
	}

	report := rule2hook.DetectConflicts(existing, incoming)

	out := cmd.OutOrStdout()
	for _, conflict := range report.Conflicts {
		fmt.Fprintf(out, "conflict in %s for matcher %q:\n", conflict.Event, conflict.Matcher)
		fmt.Fprintf(out, "  existing command: %q\n", conflict.ExistingCommand)
		fmt.Fprintf(out, "  new command:      %q\n", conflict.NewCommand)
	}

	if report.HasConflicts {
		return fmt.Errorf("%d merge conflicts detected", len(report.Conflicts))
	}

	fmt.Fprintln(out, "No merge conflicts found. Safe to merge.")
	return nil
}

func readHooksConfig(path string) (*rule2hook.HooksConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	config, err := rule2hook.ParseHooksConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return config, nil
}
