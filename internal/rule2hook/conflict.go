package rule2hook

import "fmt"

// Conflict describes two hook groups bound to the same event and
// non-empty matcher from different configuration sources.
type Conflict struct {
	Event           Event  `json:"event"`
	Matcher         string `json:"matcher"`
	ExistingCommand string `json:"existing_command"`
	NewCommand      string `json:"new_command"`
}

// ConflictReport is the outcome of comparing two hooks documents.
// Conflicts are informational: the report always carries a success
// status and it is up to the caller to refuse a merge.
type ConflictReport struct {
	Status       Status     `json:"status"`
	Message      string     `json:"message"`
	HasConflicts bool       `json:"has_conflicts"`
	Conflicts    []Conflict `json:"conflicts"`
}

// DetectConflicts compares two hooks documents for groups sharing an
// event and a non-empty matcher. Empty matchers mean "all tools" and
// never conflict. Only the first hook entry of each group is indexed
// and compared; later entries sharing a matcher are invisible here.
func DetectConflicts(existing, incoming *HooksConfig) *ConflictReport {
	report := &ConflictReport{
		Status:    StatusSuccess,
		Conflicts: []Conflict{},
	}

	index := indexMatchers(existing)

	if incoming != nil {
		for _, event := range incoming.Events() {
			matchers, ok := index[event]
			if !ok {
				continue
			}

			for _, group := range incoming.Hooks[event] {
				if group.Matcher == "" {
					continue
				}

				existingCommand, ok := matchers[group.Matcher]
				if !ok {
					continue
				}

				report.Conflicts = append(report.Conflicts, Conflict{
					Event:           event,
					Matcher:         group.Matcher,
					ExistingCommand: existingCommand,
					NewCommand:      firstCommand(group),
				})
			}
		}
	}

	report.HasConflicts = len(report.Conflicts) > 0
	if report.HasConflicts {
		report.Message = fmt.Sprintf("Found %d conflicts", len(report.Conflicts))
	} else {
		report.Message = "No conflicts found"
	}

	return report
}

// indexMatchers maps every (event, non-empty matcher) pair of a
// document to the first command of its group.
func indexMatchers(config *HooksConfig) map[Event]map[string]string {
	index := make(map[Event]map[string]string)
	if config == nil {
		return index
	}

	for _, event := range config.Events() {
		index[event] = make(map[string]string)
		for _, group := range config.Hooks[event] {
			if group.Matcher == "" {
				continue
			}
			index[event][group.Matcher] = firstCommand(group)
		}
	}

	return index
}

func firstCommand(group HookGroup) string {
	if len(group.Hooks) == 0 {
		return ""
	}
	return group.Hooks[0].Command
}
