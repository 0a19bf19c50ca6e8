package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/michael-freling/claude-code-rule2hook/internal/rule2hook"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rule2hook",
		Short: "Convert natural language rules into Claude Code hooks",
		Long: `A CLI tool that converts natural language automation rules into Claude Code
hook configurations, validates hooks.json files, and detects conflicts before
merging new hooks into an existing configuration.`,
	}

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newListRulesCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// writerObserver reports conversion progress to a writer, usually the
// command's stderr.
type writerObserver struct {
	w io.Writer
}

func newWriterObserver(w io.Writer) rule2hook.Observer {
	return &writerObserver{w: w}
}

func (o *writerObserver) Info(message string) {
	fmt.Fprintln(o.w, message)
}

func (o *writerObserver) Warning(message string) {
	fmt.Fprintf(o.w, "warning: %s\n", message)
}

func (o *writerObserver) Progress(current, total int, message string) {
	fmt.Fprintf(o.w, "[%d/%d] %s\n", current, total, message)
}
