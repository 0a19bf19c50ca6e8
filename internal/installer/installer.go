// Package installer copies the embedded rule2hook command template into
// a .claude/commands directory, enabling the /rule2hook slash command.
package installer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/michael-freling/claude-code-rule2hook/internal/templates"
)

// InstallType selects where the rule2hook command is installed.
type InstallType string

const (
	// InstallTypeProject installs into <project>/.claude/commands,
	// enabling /project:rule2hook for that project only.
	InstallTypeProject InstallType = "project"

	// InstallTypeGlobal installs into ~/.claude/commands, enabling
	// /rule2hook everywhere.
	InstallTypeGlobal InstallType = "global"
)

const (
	templatePath     = "commands/rule2hook.md"
	templateFileName = "rule2hook.md"
)

// ErrAlreadyInstalled is returned when the target rule2hook.md exists.
// The existing file is never overwritten.
var ErrAlreadyInstalled = errors.New("rule2hook command already installed")

// Result describes where the command was installed and how to invoke
// it.
type Result struct {
	Location      string `json:"location"`
	CommandPrefix string `json:"command"`
}

// Installer places the embedded rule2hook command template.
type Installer struct {
	homeDir string
}

// NewInstaller creates an Installer using the current user's home
// directory for global installs.
func NewInstaller() (*Installer, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return NewInstallerWithHome(home), nil
}

// NewInstallerWithHome creates an Installer with a custom home
// directory for testing.
func NewInstallerWithHome(homeDir string) *Installer {
	return &Installer{
		homeDir: homeDir,
	}
}

// Install writes rule2hook.md under the project's (or the user's)
// .claude/commands directory. An existing installation is reported via
// ErrAlreadyInstalled together with its location.
func (i *Installer) Install(projectDir string, installType InstallType) (*Result, error) {
	targetDir, prefix, err := i.resolveTarget(projectDir, installType)
	if err != nil {
		return nil, err
	}

	content, err := templates.FS.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("rule2hook.md template not found: %w", err)
	}

	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", targetDir, err)
	}

	targetFile := filepath.Join(targetDir, templateFileName)
	result := &Result{
		Location:      targetFile,
		CommandPrefix: prefix,
	}

	if _, err := os.Stat(targetFile); err == nil {
		return result, ErrAlreadyInstalled
	}

	if err := os.WriteFile(targetFile, content, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", targetFile, err)
	}

	return result, nil
}

func (i *Installer) resolveTarget(projectDir string, installType InstallType) (string, string, error) {
	switch installType {
	case InstallTypeGlobal:
		return filepath.Join(i.homeDir, ".claude", "commands"), "/rule2hook", nil

	case InstallTypeProject:
		info, err := os.Stat(projectDir)
		if err != nil {
			return "", "", fmt.Errorf("project path does not exist: %s", projectDir)
		}
		if !info.IsDir() {
			return "", "", fmt.Errorf("project path is not a directory: %s", projectDir)
		}
		return filepath.Join(projectDir, ".claude", "commands"), "/project:rule2hook", nil

	default:
		return "", "", fmt.Errorf("unknown installation type: %s", installType)
	}
}
