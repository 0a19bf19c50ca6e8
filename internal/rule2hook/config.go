package rule2hook

import (
	"encoding/json"
	"fmt"
	"sort"
)

// HookEntryType is the only hook entry type currently supported.
const HookEntryType = "command"

// HookEntry is a single executable hook. Command must be non-empty.
type HookEntry struct {
	Type    string `json:"type"`
	Command string `json:"command"`
}

// HookGroup binds hook entries to an optional tool matcher. An empty
// matcher means the hooks run for all tools.
type HookGroup struct {
	Matcher string      `json:"matcher,omitempty"`
	Hooks   []HookEntry `json:"hooks"`
}

// HooksConfig is the hooks document persisted to .claude/hooks.json,
// keyed by event name. Group order within an event is insertion order.
type HooksConfig struct {
	Hooks map[Event][]HookGroup `json:"hooks"`
}

// NewHooksConfig returns an empty hooks document.
func NewHooksConfig() *HooksConfig {
	return &HooksConfig{
		Hooks: make(map[Event][]HookGroup),
	}
}

// ParseHooksConfig decodes a hooks document from JSON.
func ParseHooksConfig(data []byte) (*HooksConfig, error) {
	var config HooksConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	if config.Hooks == nil {
		config.Hooks = make(map[Event][]HookGroup)
	}

	return &config, nil
}

// Append adds a hook group under an event, preserving insertion order.
func (c *HooksConfig) Append(event Event, group HookGroup) {
	c.Hooks[event] = append(c.Hooks[event], group)
}

// Merge appends every hook group of other into c, event by event. It
// performs no conflict checking; callers run DetectConflicts first.
func (c *HooksConfig) Merge(other *HooksConfig) {
	if other == nil {
		return
	}
	for _, event := range other.Events() {
		c.Hooks[event] = append(c.Hooks[event], other.Hooks[event]...)
	}
}

// Events returns the document's event names in sorted order, so
// traversal does not depend on map iteration order.
func (c *HooksConfig) Events() []Event {
	events := make([]Event, 0, len(c.Hooks))
	for event := range c.Hooks {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool { return events[i] < events[j] })
	return events
}

// ToJSON renders the document with two-space indentation, the format
// Claude Code uses for .claude/hooks.json.
func (c *HooksConfig) ToJSON() (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal hooks config: %w", err)
	}
	return string(data), nil
}
