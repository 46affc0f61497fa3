package compat

import "fmt"

// RulesLoadError indicates a rules override file could not be used and the
// built-in defaults were applied instead.
type RulesLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *RulesLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("rules file %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("rules file %s: %s", e.Path, e.Message)
}

func (e *RulesLoadError) Unwrap() error {
	return e.Cause
}
