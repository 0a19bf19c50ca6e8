package rule2hook

import (
	"errors"
	"fmt"
)

// Error variables for common failure conditions
var (
	ErrNoRules          = errors.New("no rules provided")
	ErrInvalidJSON      = errors.New("failed to parse JSON")
	ErrInvalidStructure = errors.New("invalid hooks structure")
)

// ParseError records why a single rule could not be converted. It is
// collected per rule rather than raised, so one bad rule never aborts
// a batch.
type ParseError struct {
	Rule   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse rule %q: %s", e.Rule, e.Reason)
}
