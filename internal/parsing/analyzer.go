// Package parsing implements rule-based extraction of structured data from
// job description text. Every extractor is best-effort: malformed or sparse
// input degrades to an empty result, never an error. Running any extractor
// twice on the same text yields identical output.
package parsing

import (
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// Analyze runs every extraction pass over the job description text and
// returns the complete analysis. The result is immutable by convention:
// callers treat it as read-only after creation.
func Analyze(text string) *types.JDAnalysis {
	analysis := types.NewJDAnalysis()

	analysis.JobTitle = ExtractJobTitle(text)
	analysis.TechnicalSkills = ExtractTechnicalSkills(text)
	analysis.RequiredSkills, analysis.PreferredSkills = ExtractRequiredPreferred(text)
	analysis.VerbatimPhrases = ExtractVerbatimPhrases(text)
	analysis.CompanyValues = ExtractCompanyValues(text)
	analysis.Structure = AnalyzeStructure(text)
	analysis.KeywordDensity = KeywordDensity(text)
	analysis.ExperienceRequirements = ExtractExperienceRequirements(text)

	return analysis
}

// KeywordChecklist organizes the analysis into category → keyword lists,
// the shape consumed by the keyword matcher. Only the top 5 verbatim
// phrases are carried over.
func KeywordChecklist(analysis *types.JDAnalysis) map[string][]string {
	if analysis == nil {
		return map[string][]string{}
	}

	phrases := analysis.VerbatimPhrases
	if len(phrases) > 5 {
		phrases = phrases[:5]
	}

	return map[string][]string{
		"Required Skills":  analysis.RequiredSkills,
		"Preferred Skills": analysis.PreferredSkills,
		"Technical Skills": analysis.TechnicalSkills,
		"Company Values":   analysis.CompanyValues,
		"Key Phrases":      phrases,
	}
}

// markerWindow returns the fixed-size character window following the first
// occurrence of marker in text, searching case-insensitively. Returns ""
// when the marker is absent. The window deliberately truncates at the fixed
// size rather than at a section boundary.
func markerWindow(text, lower, marker string, size int) string {
	start := strings.Index(lower, marker)
	if start < 0 {
		return ""
	}
	end := start + size
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}
