package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRules(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name: "bullets inside a rules section",
			content: `# Project Rules
- Format Python files after editing
- Run git status when done
`,
			want: []string{
				"Format Python files after editing",
				"Run git status when done",
			},
		},
		{
			name: "asterisk bullets",
			content: `## Rules
* Run tests before committing
`,
			want: []string{"Run tests before committing"},
		},
		{
			name: "heading without rules closes the section",
			content: `# Rules
- Rule one

# Setup
- not a rule
`,
			want: []string{"Rule one"},
		},
		{
			name: "bullets outside rules sections are ignored",
			content: `# Overview
- not a rule

# Coding Rules
- Rule one
`,
			want: []string{"Rule one"},
		},
		{
			name: "heading match is case insensitive",
			content: `# RULES
- Rule one
`,
			want: []string{"Rule one"},
		},
		{
			name: "empty bullets are dropped",
			content: `# Rules
-
- Rule one
`,
			want: []string{"Rule one"},
		},
		{
			name:    "no rules section",
			content: "# Overview\n\nJust prose.\n",
			want:    nil,
		},
		{
			name:    "empty content",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractRules(tt.content))
		})
	}
}

func TestScanner_Scan(t *testing.T) {
	projectDir := t.TempDir()
	homeDir := t.TempDir()

	writeFile := func(path, content string) {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	writeFile(filepath.Join(projectDir, "CLAUDE.md"), "# Rules\n- Project rule\n")
	writeFile(filepath.Join(projectDir, "CLAUDE.local.md"), "# Rules\n- Local rule\n")
	writeFile(filepath.Join(homeDir, ".claude", "CLAUDE.md"), "# Rules\n- Global rule\n")

	result, err := NewScannerWithHome(homeDir).Scan(projectDir)

	require.NoError(t, err)
	assert.Len(t, result.FilesFound, 3)
	assert.Equal(t, []string{"Project rule", "Local rule", "Global rule"}, result.Rules)
}

func TestScanner_Scan_MissingFilesSkipped(t *testing.T) {
	projectDir := t.TempDir()

	result, err := NewScannerWithHome("").Scan(projectDir)

	require.NoError(t, err)
	assert.Empty(t, result.FilesFound)
	assert.Empty(t, result.Rules)
}

func TestScanner_Scan_InvalidProjectPath(t *testing.T) {
	tests := []struct {
		name       string
		projectDir func(t *testing.T) string
	}{
		{
			name: "nonexistent directory",
			projectDir: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing")
			},
		},
		{
			name: "path is a file",
			projectDir: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "file.txt")
				require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
				return path
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewScannerWithHome("").Scan(tt.projectDir(t))

			require.Error(t, err)
			assert.Nil(t, result)
		})
	}
}
