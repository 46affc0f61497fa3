package match

import "github.com/jonathan/ats-optimizer/internal/types"

// FullReport bundles the match statistics with placement suggestions and a
// coarse match grade.
type FullReport struct {
	types.MatchReport
	Suggestions []types.PlacementSuggestion `json:"suggestions"`
	Grade       string                      `json:"grade"`
}

// BuildFullReport computes the match report plus placement suggestions and
// the match grade in one pass.
func BuildFullReport(docText string, keywords map[string][]string) *FullReport {
	report := Calculate(docText, keywords)
	return &FullReport{
		MatchReport: *report,
		Suggestions: SuggestPlacements(report, nil),
		Grade:       matchGrade(report.MatchPercentage),
	}
}

// matchGrade maps a match percentage onto a coarse label.
func matchGrade(percentage float64) string {
	switch {
	case percentage >= 90:
		return "Excellent"
	case percentage >= 80:
		return "Good"
	case percentage >= 70:
		return "Acceptable"
	case percentage >= 60:
		return "Needs Improvement"
	default:
		return "Poor"
	}
}
