package match

import (
	"strings"

	"github.com/jonathan/ats-optimizer/internal/patterns"
	"github.com/jonathan/ats-optimizer/internal/types"
)

// maxSuggestions bounds how many missing keywords get a placement.
const maxSuggestions = 10

// Target sections for placement suggestions.
const (
	sectionSkills     = "skills"
	sectionExperience = "experience"
)

// SuggestPlacements recommends a document section for each of the first ten
// missing keywords in the report. Priority is HIGH only when the keyword
// appears in requiredKeywords; the observed callers always pass nil, so
// every suggestion carries MEDIUM priority in practice.
func SuggestPlacements(report *types.MatchReport, requiredKeywords []string) []types.PlacementSuggestion {
	suggestions := []types.PlacementSuggestion{}
	if report == nil {
		return suggestions
	}

	required := make(map[string]bool, len(requiredKeywords))
	for _, kw := range requiredKeywords {
		required[strings.ToLower(strings.TrimSpace(kw))] = true
	}

	missing := report.MissingKeywordsList
	if len(missing) > maxSuggestions {
		missing = missing[:maxSuggestions]
	}

	for _, kw := range missing {
		priority := types.SeverityMedium
		if required[kw] {
			priority = types.SeverityHigh
		}
		suggestions = append(suggestions, types.PlacementSuggestion{
			Keyword:          kw,
			SuggestedSection: bestSection(kw),
			Priority:         priority,
		})
	}
	return suggestions
}

// bestSection picks a target section for a keyword: skills for technical
// terms, experience for action verbs, skills by default.
func bestSection(keyword string) string {
	lower := strings.ToLower(keyword)
	for _, indicator := range patterns.TechnicalIndicators {
		if strings.Contains(lower, indicator) {
			return sectionSkills
		}
	}
	for _, indicator := range patterns.ActionIndicators {
		if strings.Contains(lower, indicator) {
			return sectionExperience
		}
	}
	return sectionSkills
}
