// Package rule2hook converts natural language automation rules into
// Claude Code hook configurations, validates hooks documents, and
// detects conflicts between configuration sets.
package rule2hook

import "strings"

// Event identifies when a hook fires relative to tool execution.
type Event string

const (
	EventPreToolUse   Event = "PreToolUse"
	EventPostToolUse  Event = "PostToolUse"
	EventStop         Event = "Stop"
	EventNotification Event = "Notification"
)

// eventKeywords binds an event to the keywords that select it.
type eventKeywords struct {
	event       Event
	keywords    []string
	description string
}

// eventKeywordTable is scanned in declaration order and the first event
// with a matching keyword wins, so PreToolUse keywords shadow the rest.
// The order must not change: it determines how ambiguous rules classify.
var eventKeywordTable = []eventKeywords{
	{
		event:       EventPreToolUse,
		keywords:    []string{"before", "check", "validate", "prevent", "scan", "verify"},
		description: "Runs BEFORE a tool is executed",
	},
	{
		event:       EventPostToolUse,
		keywords:    []string{"after", "following", "once done", "when finished"},
		description: "Runs AFTER a tool completes successfully",
	},
	{
		event:       EventStop,
		keywords:    []string{"finish", "complete", "end task", "done", "wrap up"},
		description: "Runs when Claude Code finishes responding",
	},
	{
		event:       EventNotification,
		keywords:    []string{"notify", "alert", "inform", "message"},
		description: "Runs when Claude Code sends notifications",
	},
}

// postToolUseFallbackKeywords push an otherwise unclassified rule to
// PostToolUse before the Stop default applies.
var postToolUseFallbackKeywords = []string{"edit", "modify", "save", "write"}

// DetermineEvent classifies a rule into the hook event it should fire
// on. It never fails: rules matching no keyword default to Stop.
func DetermineEvent(rule string) Event {
	lower := strings.ToLower(rule)

	for _, entry := range eventKeywordTable {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.event
			}
		}
	}

	for _, keyword := range postToolUseFallbackKeywords {
		if strings.Contains(lower, keyword) {
			return EventPostToolUse
		}
	}

	return EventStop
}

// KnownEventName reports whether name is one of the four hook events.
func KnownEventName(name string) bool {
	switch Event(name) {
	case EventPreToolUse, EventPostToolUse, EventStop, EventNotification:
		return true
	}
	return false
}

// EventDescription returns the human-readable description of an event,
// or an empty string for unknown events.
func EventDescription(event Event) string {
	for _, entry := range eventKeywordTable {
		if entry.event == event {
			return entry.description
		}
	}
	return ""
}
