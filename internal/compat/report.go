package compat

import (
	"sort"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// recommendationRules maps issue-text substrings to fix advice. The first
// matching rule wins for each issue, mirroring the issue classification
// used by the checks.
var recommendationRules = []struct {
	substrings []string
	advice     string
}{
	{[]string{"table"}, "Remove all tables and use plain text with bullets"},
	{[]string{"column"}, "Convert to single-column layout"},
	{[]string{"font"}, "Change all fonts to Calibri, Arial, or Times New Roman (10-12pt)"},
	{[]string{"header", "footer"}, "Move all header/footer content into main document body"},
	{[]string{"image", "graphic"}, "Remove all images, logos, and graphics"},
	{[]string{"format"}, "Convert file to .docx format"},
}

// GenerateReport runs every check and assembles the full compatibility
// report: score, letter grade, issues sorted by deduction descending, and
// deduplicated recommendations.
func (c *Checker) GenerateReport() *types.ATSReport {
	score := c.Score()

	issues := make([]types.Issue, len(c.issues))
	copy(issues, c.issues)
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Deduction > issues[j].Deduction
	})

	return &types.ATSReport{
		Score:           score,
		Grade:           letterGrade(score),
		Issues:          issues,
		Recommendations: recommendations(issues),
	}
}

// letterGrade maps a compatibility score onto a letter grade.
func letterGrade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// recommendations derives fix advice from the issue texts, deduplicated in
// first-encounter order.
func recommendations(issues []types.Issue) []string {
	recs := []string{}
	seen := make(map[string]bool)
	for _, issue := range issues {
		lower := strings.ToLower(issue.Issue)
		for _, rule := range recommendationRules {
			if !containsAny(lower, rule.substrings) {
				continue
			}
			if !seen[rule.advice] {
				seen[rule.advice] = true
				recs = append(recs, rule.advice)
			}
			break
		}
	}
	return recs
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
