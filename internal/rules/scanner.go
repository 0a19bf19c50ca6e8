// Package rules finds natural language rules recorded in a project's
// CLAUDE.md memory files, so they can be fed to the rule converter.
package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ScanResult lists the rules found in a project's CLAUDE.md files.
type ScanResult struct {
	FilesFound []string `json:"files_found"`
	Rules      []string `json:"rules"`
}

// Scanner extracts rules from CLAUDE.md, CLAUDE.local.md, and the
// user-level ~/.claude/CLAUDE.md.
type Scanner struct {
	homeDir string
}

// NewScanner creates a Scanner that also looks in the current user's
// home directory. A missing home directory is tolerated: only the
// project-level files are scanned then.
func NewScanner() *Scanner {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return NewScannerWithHome(home)
}

// NewScannerWithHome creates a Scanner with a custom home directory for
// testing.
func NewScannerWithHome(homeDir string) *Scanner {
	return &Scanner{
		homeDir: homeDir,
	}
}

// Scan reads the project's CLAUDE.md files and collects bullet entries
// found inside sections whose heading mentions rules. Missing files are
// skipped silently; only an invalid project directory is an error.
func (s *Scanner) Scan(projectDir string) (*ScanResult, error) {
	info, err := os.Stat(projectDir)
	if err != nil {
		return nil, fmt.Errorf("invalid project path %s: %w", projectDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project path is not a directory: %s", projectDir)
	}

	candidates := []string{
		filepath.Join(projectDir, "CLAUDE.md"),
		filepath.Join(projectDir, "CLAUDE.local.md"),
	}
	if s.homeDir != "" {
		candidates = append(candidates, filepath.Join(s.homeDir, ".claude", "CLAUDE.md"))
	}

	result := &ScanResult{
		FilesFound: []string{},
		Rules:      []string{},
	}

	for _, path := range candidates {
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		result.FilesFound = append(result.FilesFound, path)
		result.Rules = append(result.Rules, ExtractRules(string(content))...)
	}

	return result, nil
}

// ExtractRules pulls `-` and `*` bullet entries out of markdown
// sections whose heading contains "rules". A heading without "rules"
// closes the section.
func ExtractRules(content string) []string {
	var rules []string
	inRulesSection := false

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "#") {
			inRulesSection = strings.Contains(strings.ToLower(line), "rules")
			continue
		}

		if !inRulesSection {
			continue
		}

		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "-") && !strings.HasPrefix(trimmed, "*") {
			continue
		}

		rule := strings.TrimSpace(strings.TrimLeft(trimmed, "-*"))
		if rule != "" {
			rules = append(rules, rule)
		}
	}

	return rules
}
