package rule2hook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCommand(t *testing.T) {
	tests := []struct {
		name      string
		rule      string
		want      string
		wantFound bool
	}{
		{
			name:      "backticks returned verbatim",
			rule:      "Run `npm run build` after editing",
			want:      "npm run build",
			wantFound: true,
		},
		{
			name:      "backticks win over phrase lookup",
			rule:      "Format Python with black using `black src/`",
			want:      "black src/",
			wantFound: true,
		},
		{
			name:      "quoted command with space",
			rule:      `Execute "make lint" before pushing`,
			want:      "make lint",
			wantFound: true,
		},
		{
			name:      "quoted command with slash",
			rule:      `Run "./scripts/deploy.sh" when done`,
			want:      "./scripts/deploy.sh",
			wantFound: true,
		},
		{
			name:      "quoted single word is not a command",
			rule:      `Alert on "README" changes`,
			want:      "",
			wantFound: false,
		},
		{
			name:      "quoted single word falls through to phrase lookup",
			rule:      `Check "TODO" comments before committing`,
			want:      "grep -r 'TODO' . 2>/dev/null || echo 'No TODOs found'",
			wantFound: true,
		},
		{
			name:      "black and python phrase",
			rule:      "Format Python files with black after editing",
			want:      "black . --quiet 2>/dev/null || true",
			wantFound: true,
		},
		{
			name:      "prettier phrase",
			rule:      "Run prettier on JavaScript files after saving",
			want:      "prettier --write . 2>/dev/null || true",
			wantFound: true,
		},
		{
			name:      "git status phrase",
			rule:      "Show git status when finishing work",
			want:      "git status",
			wantFound: true,
		},
		{
			name:      "npm test phrase",
			rule:      "Run npm test after modifying test files",
			want:      "npm test 2>/dev/null || echo 'Tests need attention'",
			wantFound: true,
		},
		{
			name:      "npm run lint phrase",
			rule:      "Always npm run lint before committing",
			want:      "npm run lint 2>/dev/null || true",
			wantFound: true,
		},
		{
			name:      "todo comment phrase",
			rule:      "Check for TODO comments before committing",
			want:      "grep -r 'TODO' . 2>/dev/null || echo 'No TODOs found'",
			wantFound: true,
		},
		{
			name:      "secret phrase",
			rule:      "Scan for secrets before committing",
			want:      "git secrets --scan 2>/dev/null || echo 'No secrets found'",
			wantFound: true,
		},
		{
			name:      "verb object fallback",
			rule:      "Always run gofmt when finishing",
			want:      "gofmt 2>/dev/null || true",
			wantFound: true,
		},
		{
			name:      "format verb fallback",
			rule:      "format main.go on completion",
			want:      "main.go 2>/dev/null || true",
			wantFound: true,
		},
		{
			name:      "no recognizable pattern",
			rule:      "xyzzy plugh",
			want:      "",
			wantFound: false,
		},
		{
			name:      "empty rule",
			rule:      "",
			want:      "",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractCommand(tt.rule)

			if !tt.wantFound && tt.want == "" {
				assert.False(t, found)
				assert.Empty(t, got)
				return
			}

			assert.True(t, found)
			assert.Equal(t, tt.want, got)
		})
	}
}
