package rule2hook

import "strings"

// Tool is a Claude Code tool name usable in a hook matcher.
type Tool string

const (
	ToolTask      Tool = "Task"
	ToolBash      Tool = "Bash"
	ToolGlob      Tool = "Glob"
	ToolGrep      Tool = "Grep"
	ToolRead      Tool = "Read"
	ToolEdit      Tool = "Edit"
	ToolMultiEdit Tool = "MultiEdit"
	ToolWrite     Tool = "Write"
	ToolWebFetch  Tool = "WebFetch"
	ToolWebSearch Tool = "WebSearch"
	ToolTodoRead  Tool = "TodoRead"
	ToolTodoWrite Tool = "TodoWrite"
)

// KnownTools lists every tool a matcher may reference.
var KnownTools = []Tool{
	ToolTask, ToolBash, ToolGlob, ToolGrep, ToolRead, ToolEdit,
	ToolMultiEdit, ToolWrite, ToolWebFetch, ToolWebSearch,
	ToolTodoRead, ToolTodoWrite,
}

// toolGroup binds trigger keywords to the tools they imply.
type toolGroup struct {
	keywords []string
	tools    []Tool
}

// toolGroupTable is evaluated in order and each group is tested
// independently, so a single rule may contribute several groups.
var toolGroupTable = []toolGroup{
	{
		keywords: []string{"edit", "modify", "save", "file", "code"},
		tools:    []Tool{ToolEdit, ToolMultiEdit, ToolWrite},
	},
	{
		keywords: []string{"command", "bash", "shell", "execute", "run"},
		tools:    []Tool{ToolBash},
	},
	{
		keywords: []string{"search", "find", "grep"},
		tools:    []Tool{ToolGrep, ToolGlob},
	},
	{
		keywords: []string{"read"},
		tools:    []Tool{ToolRead},
	},
	{
		keywords: []string{"web", "fetch", "download"},
		tools:    []Tool{ToolWebFetch, ToolWebSearch},
	},
	{
		keywords: []string{"todo"},
		tools:    []Tool{ToolTodoRead, ToolTodoWrite},
	},
}

// DetermineTools returns the tools a rule's hook should be scoped to,
// deduplicated with first occurrence order preserved. An empty result
// means the hook applies to all tools.
func DetermineTools(rule string) []Tool {
	lower := strings.ToLower(rule)

	var matched []Tool
	for _, group := range toolGroupTable {
		for _, keyword := range group.keywords {
			if strings.Contains(lower, keyword) {
				matched = append(matched, group.tools...)
				break
			}
		}
	}

	seen := make(map[Tool]bool, len(matched))
	var unique []Tool
	for _, tool := range matched {
		if !seen[tool] {
			seen[tool] = true
			unique = append(unique, tool)
		}
	}

	return unique
}

// JoinMatcher pipe-joins tools into the matcher string stored in a
// hook group.
func JoinMatcher(tools []Tool) string {
	parts := make([]string, len(tools))
	for i, tool := range tools {
		parts[i] = string(tool)
	}
	return strings.Join(parts, "|")
}
