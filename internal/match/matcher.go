// Package match computes keyword match statistics between a candidate
// document's text and a job description keyword set. Matching is pure and
// recomputed on demand; reports carry no identity across runs.
package match

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// maxMissingListed caps the missing-keyword list carried in a report.
const maxMissingListed = 20

// Calculate computes the match report for a document against a mapping of
// category name → keyword list. A keyword counts as present only when it
// occurs as a whole-word, case-insensitive phrase in the document text;
// substring hits inside larger words do not count. Categories are
// recomputed independently, so a keyword listed in two categories counts
// toward both breakdowns.
func Calculate(docText string, keywords map[string][]string) *types.MatchReport {
	report := &types.MatchReport{
		MissingKeywordsList: []string{},
		CategoryBreakdown:   map[string]types.CategoryStats{},
	}

	categories := make([]string, 0, len(keywords))
	for category := range keywords {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	// Deduplicated keyword pool, iterated in sorted-category order so the
	// missing list is deterministic.
	seen := make(map[string]bool)
	var pool []string
	for _, category := range categories {
		for _, kw := range keywords[category] {
			normalized := strings.ToLower(strings.TrimSpace(kw))
			if normalized == "" || seen[normalized] {
				continue
			}
			seen[normalized] = true
			pool = append(pool, normalized)
		}
	}

	matched := 0
	for _, kw := range pool {
		if containsKeyword(docText, kw) {
			matched++
		} else {
			report.MissingKeywordsList = append(report.MissingKeywordsList, kw)
		}
	}

	report.TotalKeywords = len(pool)
	report.MatchedKeywords = matched
	report.MissingKeywords = len(report.MissingKeywordsList)
	if report.TotalKeywords > 0 {
		report.MatchPercentage = round1(float64(matched) / float64(report.TotalKeywords) * 100)
	}
	if len(report.MissingKeywordsList) > maxMissingListed {
		report.MissingKeywordsList = report.MissingKeywordsList[:maxMissingListed]
	}

	for _, category := range categories {
		report.CategoryBreakdown[category] = categoryStats(docText, keywords[category])
	}

	return report
}

// categoryStats recomputes the whole-word match for a single category.
func categoryStats(docText string, keywords []string) types.CategoryStats {
	stats := types.CategoryStats{}
	for _, kw := range keywords {
		normalized := strings.ToLower(strings.TrimSpace(kw))
		if normalized == "" {
			continue
		}
		stats.Total++
		if containsKeyword(docText, normalized) {
			stats.Matched++
		}
	}
	if stats.Total > 0 {
		stats.Percentage = round1(float64(stats.Matched) / float64(stats.Total) * 100)
	}
	return stats
}

// containsKeyword reports whether the keyword occurs as a whole-word,
// case-insensitive phrase in the text.
func containsKeyword(text, keyword string) bool {
	pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
	if err != nil {
		return false
	}
	return pattern.MatchString(text)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
