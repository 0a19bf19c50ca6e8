package rule2hook

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeDocument parses a JSON literal the way the CLI and MCP layers
// hand documents to Validate.
func decodeDocument(t *testing.T, raw string) map[string]any {
	t.Helper()

	var document map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &document))
	return document
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name          string
		document      string
		wantStatus    Status
		wantIssues    []string
		wantWarnings  []string
		wantTotal     int
		wantSummaries int
	}{
		{
			name: "well formed document",
			document: `{
				"hooks": {
					"PostToolUse": [
						{"matcher": "Edit|Write", "hooks": [{"type": "command", "command": "black ."}]}
					],
					"Stop": [
						{"hooks": [{"type": "command", "command": "git status"}]}
					]
				}
			}`,
			wantStatus:    StatusSuccess,
			wantIssues:    []string{},
			wantWarnings:  []string{},
			wantTotal:     2,
			wantSummaries: 2,
		},
		{
			name:       "missing hooks key aborts",
			document:   `{"other": {}}`,
			wantStatus: StatusError,
			wantIssues: []string{"Missing 'hooks' key"},
		},
		{
			name:       "hooks not an object aborts",
			document:   `{"hooks": "not-an-object"}`,
			wantStatus: StatusError,
			wantIssues: []string{"'hooks' must be an object"},
		},
		{
			name:         "unknown event warns but does not fail",
			document:     `{"hooks": {"SubagentStop": []}}`,
			wantStatus:   StatusSuccess,
			wantIssues:   []string{},
			wantWarnings: []string{"Unknown event type: SubagentStop"},
		},
		{
			name:         "event value must be an array",
			document:     `{"hooks": {"PostToolUse": "not-an-array"}}`,
			wantStatus:   StatusError,
			wantIssues:   []string{"Value of PostToolUse must be an array"},
			wantWarnings: []string{},
		},
		{
			name:         "empty event array is valid",
			document:     `{"hooks": {"PostToolUse": []}}`,
			wantStatus:   StatusSuccess,
			wantIssues:   []string{},
			wantWarnings: []string{},
		},
		{
			name:         "group must be an object",
			document:     `{"hooks": {"Stop": ["not-an-object"]}}`,
			wantStatus:   StatusError,
			wantIssues:   []string{"Stop[0] must be an object"},
			wantWarnings: []string{},
		},
		{
			name:         "group missing hooks array",
			document:     `{"hooks": {"Stop": [{"matcher": "Bash"}]}}`,
			wantStatus:   StatusError,
			wantIssues:   []string{"Stop[0] missing 'hooks' array"},
			wantWarnings: []string{},
		},
		{
			name:         "group hooks must be an array",
			document:     `{"hooks": {"Stop": [{"hooks": "nope"}]}}`,
			wantStatus:   StatusError,
			wantIssues:   []string{"Stop[0].hooks must be an array"},
			wantWarnings: []string{},
		},
		{
			name:         "entry must be an object",
			document:     `{"hooks": {"Stop": [{"hooks": ["nope"]}]}}`,
			wantStatus:   StatusError,
			wantIssues:   []string{"Stop[0].hooks[0] must be an object"},
			wantWarnings: []string{},
		},
		{
			name:         "entry missing command",
			document:     `{"hooks": {"Stop": [{"hooks": [{"type": "command"}]}]}}`,
			wantStatus:   StatusError,
			wantIssues:   []string{"Stop[0].hooks[0] missing command"},
			wantWarnings: []string{},
		},
		{
			name:         "unexpected type warns but counts the hook",
			document:     `{"hooks": {"Stop": [{"hooks": [{"type": "script", "command": "ls"}]}]}}`,
			wantStatus:   StatusSuccess,
			wantIssues:   []string{},
			wantWarnings: []string{"Stop[0].hooks[0] has type: script (expected: command)"},
			wantTotal:    1,

			wantSummaries: 1,
		},
		{
			name:          "missing type does not warn",
			document:      `{"hooks": {"Stop": [{"hooks": [{"command": "ls"}]}]}}`,
			wantStatus:    StatusSuccess,
			wantIssues:    []string{},
			wantWarnings:  []string{},
			wantTotal:     1,
			wantSummaries: 1,
		},
		{
			name: "issues accumulate across events",
			document: `{
				"hooks": {
					"PostToolUse": "bad",
					"Stop": [{"hooks": [{"type": "command"}]}]
				}
			}`,
			wantStatus: StatusError,
			wantIssues: []string{
				"Value of PostToolUse must be an array",
				"Stop[0].hooks[0] missing command",
			},
			wantWarnings: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Validate(decodeDocument(t, tt.document))

			assert.Equal(t, tt.wantStatus, report.Status)
			assert.Equal(t, tt.wantIssues, report.Issues)
			if tt.wantWarnings != nil {
				assert.Equal(t, tt.wantWarnings, report.Warnings)
			}
			assert.Equal(t, tt.wantTotal, report.TotalHooks)
			assert.Len(t, report.Summary, tt.wantSummaries)
		})
	}
}

func TestValidate_NilDocument(t *testing.T) {
	report := Validate(nil)

	assert.Equal(t, StatusError, report.Status)
	assert.Equal(t, []string{"Root element must be an object"}, report.Issues)
}

func TestValidate_SummaryContents(t *testing.T) {
	document := decodeDocument(t, `{
		"hooks": {
			"PostToolUse": [
				{"matcher": "Edit", "hooks": [{"type": "command", "command": "black ."}]}
			],
			"Stop": [
				{"hooks": [{"type": "command", "command": "git status"}]}
			]
		}
	}`)

	report := Validate(document)

	require.Len(t, report.Summary, 2)
	assert.Equal(t, HookSummary{Event: "PostToolUse", Matcher: "Edit", Command: "black ."}, report.Summary[0])
	assert.Equal(t, HookSummary{Event: "Stop", Matcher: "All tools", Command: "git status"}, report.Summary[1])
}

func TestValidate_TruncatesLongCommands(t *testing.T) {
	longCommand := "echo 0123456789012345678901234567890123456789012345678901234567890123456789"
	document := map[string]any{
		"hooks": map[string]any{
			"Stop": []any{
				map[string]any{
					"hooks": []any{
						map[string]any{"type": "command", "command": longCommand},
					},
				},
			},
		},
	}

	report := Validate(document)

	require.Len(t, report.Summary, 1)
	assert.Equal(t, longCommand[:50]+"...", report.Summary[0].Command)
	assert.Len(t, report.Summary[0].Command, 53)
}

func TestValidate_Idempotent(t *testing.T) {
	document := decodeDocument(t, `{
		"hooks": {
			"Custom": [{"hooks": [{"type": "script", "command": ""}]}],
			"Stop": [{"hooks": [{"command": "ls"}]}]
		}
	}`)

	first := Validate(document)
	second := Validate(document)

	assert.Equal(t, first.Issues, second.Issues)
	assert.Equal(t, first.Warnings, second.Warnings)
	assert.Equal(t, first.TotalHooks, second.TotalHooks)
	assert.Equal(t, first.Status, second.Status)
}
