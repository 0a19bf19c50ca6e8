package rule2hook

import (
	"fmt"
	"sort"
)

// summaryCommandLimit is the longest command shown in a hooks summary
// before truncation.
const summaryCommandLimit = 50

// HookSummary describes one valid hook entry found during validation.
type HookSummary struct {
	Event   string `json:"event"`
	Matcher string `json:"matcher"`
	Command string `json:"command"`
}

// ValidationReport accumulates everything found while validating a
// hooks document. Issues make the document invalid; warnings do not.
type ValidationReport struct {
	Status     Status        `json:"status"`
	Message    string        `json:"message"`
	Issues     []string      `json:"issues"`
	Warnings   []string      `json:"warnings"`
	Summary    []HookSummary `json:"hooks_summary"`
	TotalHooks int           `json:"total_hooks"`
}

// Validate checks a decoded hooks document against the expected
// structure. Only the two outermost levels fail fast; every deeper
// problem is accumulated so a single call surfaces all of them.
// Unknown event names and unexpected hook entry types are warnings,
// keeping the validator permissive towards newer configurations.
func Validate(document map[string]any) *ValidationReport {
	report := &ValidationReport{
		Issues:   []string{},
		Warnings: []string{},
		Summary:  []HookSummary{},
	}

	if document == nil {
		return report.abort("Root element must be an object")
	}

	rawHooks, ok := document["hooks"]
	if !ok {
		return report.abort("Missing 'hooks' key")
	}

	hooks, ok := rawHooks.(map[string]any)
	if !ok {
		return report.abort("'hooks' must be an object")
	}

	for _, event := range sortedKeys(hooks) {
		if !KnownEventName(event) {
			report.Warnings = append(report.Warnings, fmt.Sprintf("Unknown event type: %s", event))
		}

		groups, ok := hooks[event].([]any)
		if !ok {
			report.Issues = append(report.Issues, fmt.Sprintf("Value of %s must be an array", event))
			continue
		}

		for i, rawGroup := range groups {
			report.validateGroup(event, i, rawGroup)
		}
	}

	report.Status = StatusSuccess
	if len(report.Issues) > 0 {
		report.Status = StatusError
	}
	report.Message = fmt.Sprintf("Found %d valid hooks", report.TotalHooks)

	return report
}

// validateGroup checks a single hook group and its entries,
// accumulating issues instead of returning early to the caller.
func (r *ValidationReport) validateGroup(event string, index int, rawGroup any) {
	group, ok := rawGroup.(map[string]any)
	if !ok {
		r.Issues = append(r.Issues, fmt.Sprintf("%s[%d] must be an object", event, index))
		return
	}

	matcher, _ := group["matcher"].(string)

	rawEntries, ok := group["hooks"]
	if !ok {
		r.Issues = append(r.Issues, fmt.Sprintf("%s[%d] missing 'hooks' array", event, index))
		return
	}

	entries, ok := rawEntries.([]any)
	if !ok {
		r.Issues = append(r.Issues, fmt.Sprintf("%s[%d].hooks must be an array", event, index))
		return
	}

	for j, rawEntry := range entries {
		entry, ok := rawEntry.(map[string]any)
		if !ok {
			r.Issues = append(r.Issues, fmt.Sprintf("%s[%d].hooks[%d] must be an object", event, index, j))
			continue
		}

		if rawType, present := entry["type"]; present && rawType != HookEntryType {
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("%s[%d].hooks[%d] has type: %v (expected: command)", event, index, j, rawType))
		}

		command, _ := entry["command"].(string)
		if command == "" {
			r.Issues = append(r.Issues, fmt.Sprintf("%s[%d].hooks[%d] missing command", event, index, j))
			continue
		}

		r.TotalHooks++
		r.Summary = append(r.Summary, HookSummary{
			Event:   event,
			Matcher: matcherLabel(matcher),
			Command: truncateCommand(command),
		})
	}
}

// abort records a fatal top-level issue and finalizes the report.
func (r *ValidationReport) abort(issue string) *ValidationReport {
	r.Issues = append(r.Issues, issue)
	r.Status = StatusError
	r.Message = "Invalid structure"
	return r
}

// matcherLabel renders an empty matcher as its meaning.
func matcherLabel(matcher string) string {
	if matcher == "" {
		return "All tools"
	}
	return matcher
}

// truncateCommand shortens long commands for summary display.
func truncateCommand(command string) string {
	if len(command) > summaryCommandLimit {
		return command[:summaryCommandLimit] + "..."
	}
	return command
}

// sortedKeys returns map keys in sorted order so validation output is
// deterministic across runs.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
