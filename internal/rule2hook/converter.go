package rule2hook

import (
	"fmt"
	"regexp"
	"strings"
)

// Status reports the overall outcome of a batch operation.
type Status string

const (
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
	StatusError   Status = "error"
)

// Conversion records one successfully converted rule.
type Conversion struct {
	Rule    string `json:"rule"`
	Event   Event  `json:"event"`
	Tools   []Tool `json:"tools"`
	Command string `json:"command"`
}

// Failure records a rule that could not be converted.
type Failure struct {
	Rule  string `json:"rule"`
	Error string `json:"error"`
}

// ConvertResult aggregates the outcome of one batch conversion.
// Status is "success" when every rule converted, "partial" when some
// failed, and "error" when none converted.
type ConvertResult struct {
	Status      Status       `json:"status"`
	Message     string       `json:"message"`
	HooksConfig *HooksConfig `json:"hooks_config"`
	Converted   []Conversion `json:"converted_rules"`
	Failed      []Failure    `json:"failed_rules"`
	JSON        string       `json:"json"`
}

var ruleSeparatorPattern = regexp.MustCompile(`[,;]`)

// SplitRules breaks free text into candidate rules on commas and
// semicolons, trimming whitespace and dropping empty fragments.
func SplitRules(rules string) []string {
	var out []string
	for _, part := range ruleSeparatorPattern.Split(rules, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Converter turns natural language rules into a hooks configuration.
type Converter struct {
	observer Observer
}

// NewConverter creates a Converter that discards progress
// notifications.
func NewConverter() *Converter {
	return NewConverterWithObserver(NopObserver())
}

// NewConverterWithObserver creates a Converter that reports per-rule
// progress to the given observer. A nil observer falls back to the
// no-op one.
func NewConverterWithObserver(observer Observer) *Converter {
	if observer == nil {
		observer = NopObserver()
	}
	return &Converter{
		observer: observer,
	}
}

// Convert converts a batch of comma or semicolon separated rules.
// Per-rule failures are collected, not raised: a rule with no
// extractable command degrades the batch to "partial" rather than
// aborting it. The call itself fails only when the input contains no
// rules at all.
func (c *Converter) Convert(rules string) (*ConvertResult, error) {
	ruleList := SplitRules(rules)
	if len(ruleList) == 0 {
		return nil, ErrNoRules
	}

	config := NewHooksConfig()
	result := &ConvertResult{
		HooksConfig: config,
		Converted:   []Conversion{},
		Failed:      []Failure{},
	}

	for i, rule := range ruleList {
		c.observer.Info(fmt.Sprintf("Analyzing rule: %s", rule))
		c.observer.Progress(i+1, len(ruleList), rule)

		conversion, err := c.convertRule(rule)
		if err != nil {
			c.observer.Warning(fmt.Sprintf("Could not determine command for rule: %s", rule))
			result.Failed = append(result.Failed, Failure{Rule: rule, Error: err.Error()})
			continue
		}

		config.Append(conversion.Event, buildHookGroup(conversion))
		result.Converted = append(result.Converted, *conversion)

		c.observer.Info(fmt.Sprintf("Converted: %s -> %s event with command: %s",
			rule, conversion.Event, conversion.Command))
	}

	switch {
	case len(result.Failed) == 0:
		result.Status = StatusSuccess
	case len(result.Converted) > 0:
		result.Status = StatusPartial
	default:
		result.Status = StatusError
	}
	result.Message = fmt.Sprintf("Successfully converted %d of %d rules",
		len(result.Converted), len(ruleList))

	serialized, err := config.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize hooks config: %w", err)
	}
	result.JSON = serialized

	return result, nil
}

// convertRule converts a single rule independently of the rest of the
// batch.
func (c *Converter) convertRule(rule string) (*Conversion, error) {
	event := DetermineEvent(rule)
	tools := DetermineTools(rule)

	command, ok := ExtractCommand(rule)
	if !ok {
		return nil, &ParseError{Rule: rule, Reason: "no command could be extracted"}
	}

	return &Conversion{
		Rule:    rule,
		Event:   event,
		Tools:   tools,
		Command: command,
	}, nil
}

// buildHookGroup wraps a conversion into a hook group. Stop hooks and
// hooks with no matched tools are left unscoped so they apply to all
// tools.
func buildHookGroup(conversion *Conversion) HookGroup {
	group := HookGroup{
		Hooks: []HookEntry{
			{Type: HookEntryType, Command: conversion.Command},
		},
	}

	if conversion.Event != EventStop && len(conversion.Tools) > 0 {
		group.Matcher = JoinMatcher(conversion.Tools)
	}

	return group
}
