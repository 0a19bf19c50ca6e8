package rule2hook

import (
	"regexp"
	"strings"
)

var (
	backtickPattern   = regexp.MustCompile("`([^`]+)`")
	quotePattern      = regexp.MustCompile(`"([^"]+)"`)
	verbObjectPattern = regexp.MustCompile(`\b(run|execute|check|validate|format|scan)\s+(\S+)`)
)

// phraseCommand maps a well-known rule phrasing to a ready-to-run
// command string.
type phraseCommand struct {
	matches func(string) bool
	command string
}

// phraseCommandTable is checked in order after the literal backtick and
// quote patterns fail. Matching runs on the lowercased rule text.
var phraseCommandTable = []phraseCommand{
	{matches: containsAll("black", "python"), command: "black . --quiet 2>/dev/null || true"},
	{matches: containsAny("prettier"), command: "prettier --write . 2>/dev/null || true"},
	{matches: containsAny("git status"), command: "git status"},
	{matches: containsAny("npm test"), command: "npm test 2>/dev/null || echo 'Tests need attention'"},
	{matches: containsAny("npm run lint"), command: "npm run lint 2>/dev/null || true"},
	{matches: containsAll("todo", "comment"), command: "grep -r 'TODO' . 2>/dev/null || echo 'No TODOs found'"},
	{matches: containsAny("secret", "credential"), command: "git secrets --scan 2>/dev/null || echo 'No secrets found'"},
}

func containsAll(words ...string) func(string) bool {
	return func(text string) bool {
		for _, word := range words {
			if !strings.Contains(text, word) {
				return false
			}
		}
		return true
	}
}

func containsAny(words ...string) func(string) bool {
	return func(text string) bool {
		for _, word := range words {
			if strings.Contains(text, word) {
				return true
			}
		}
		return false
	}
}

// ExtractCommand extracts or synthesizes the shell command a rule asks
// for. Backtick-delimited text wins over everything else. Quoted text
// counts only when it looks like a command (contains a space, slash, or
// dash), avoiding false positives on quoted single words. Failing both,
// the rule goes through the phrase lookup table and finally a
// verb-object heuristic. Returns false when no command can be derived.
func ExtractCommand(rule string) (string, bool) {
	if m := backtickPattern.FindStringSubmatch(rule); m != nil {
		return m[1], true
	}

	if m := quotePattern.FindStringSubmatch(rule); m != nil && strings.ContainsAny(m[1], " /-") {
		return m[1], true
	}

	lower := strings.ToLower(rule)
	for _, entry := range phraseCommandTable {
		if entry.matches(lower) {
			return entry.command, true
		}
	}

	if m := verbObjectPattern.FindStringSubmatch(lower); m != nil {
		return m[2] + " 2>/dev/null || true", true
	}

	return "", false
}
