// Package types provides type definitions for structured data used throughout the ats-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchReport holds keyword match statistics between a document and a
// job-description keyword set. It is recomputed on demand and carries no
// identity across runs.
type MatchReport struct {
	TotalKeywords       int                      `json:"total_keywords"`
	MatchedKeywords     int                      `json:"matched_keywords"`
	MissingKeywords     int                      `json:"missing_keywords"`
	MatchPercentage     float64                  `json:"match_percentage"`
	MissingKeywordsList []string                 `json:"missing_keywords_list"`
	CategoryBreakdown   map[string]CategoryStats `json:"category_breakdown"`
}

// CategoryStats holds per-category match counts. Each category is recomputed
// independently, so a keyword listed in two categories counts in both.
type CategoryStats struct {
	Matched    int     `json:"matched"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// PlacementSuggestion recommends a document section for a missing keyword.
type PlacementSuggestion struct {
	Keyword          string `json:"keyword"`
	SuggestedSection string `json:"suggested_section"`
	Priority         string `json:"priority"`
}
