// Package types provides type definitions for structured data used throughout the ats-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Severity levels for compatibility issues.
const (
	SeverityLow    = "LOW"
	SeverityMedium = "MEDIUM"
	SeverityHigh   = "HIGH"
)

// Issue is a single compatibility violation with its score deduction.
type Issue struct {
	Severity  string `json:"severity"`
	Issue     string `json:"issue"`
	Deduction int    `json:"deduction"`
}

// ATSReport is the result of a document compatibility check.
// Issues are sorted by deduction, largest first.
type ATSReport struct {
	Score           int      `json:"score"`
	Grade           string   `json:"grade"`
	Issues          []Issue  `json:"issues"`
	Recommendations []string `json:"recommendations"`
}
