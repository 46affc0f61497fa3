package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_Scenario(t *testing.T) {
	keywords := map[string][]string{
		"skills": {"SQL", "Python", "Tableau"},
	}
	report := Calculate("I use SQL and Python daily", keywords)

	assert.Equal(t, 3, report.TotalKeywords)
	assert.Equal(t, 2, report.MatchedKeywords)
	assert.Equal(t, 1, report.MissingKeywords)
	assert.InDelta(t, 66.7, report.MatchPercentage, 0.05)
	assert.Equal(t, []string{"tableau"}, report.MissingKeywordsList)

	stats := report.CategoryBreakdown["skills"]
	assert.Equal(t, 2, stats.Matched)
	assert.Equal(t, 3, stats.Total)
	assert.InDelta(t, 66.7, stats.Percentage, 0.05)
}

func TestCalculate_WholeWordOnly(t *testing.T) {
	keywords := map[string][]string{"skills": {"Java"}}

	report := Calculate("I write JavaScript all day", keywords)
	assert.Equal(t, 0, report.MatchedKeywords)

	report = Calculate("I write Java all day", keywords)
	assert.Equal(t, 1, report.MatchedKeywords)
}

func TestCalculate_CaseInsensitivePhrase(t *testing.T) {
	keywords := map[string][]string{"skills": {"machine learning"}}
	report := Calculate("Built Machine Learning systems at scale", keywords)
	assert.Equal(t, 1, report.MatchedKeywords)
}

func TestCalculate_EmptyKeywords(t *testing.T) {
	report := Calculate("some document text", map[string][]string{})
	assert.Equal(t, 0, report.TotalKeywords)
	assert.Equal(t, float64(0), report.MatchPercentage)
	assert.NotNil(t, report.MissingKeywordsList)
	assert.Empty(t, report.MissingKeywordsList)
}

func TestCalculate_KeywordInMultipleCategories(t *testing.T) {
	keywords := map[string][]string{
		"skills": {"SQL"},
		"tools":  {"SQL"},
	}
	report := Calculate("SQL everywhere", keywords)

	// Deduplicated in the top-level pool, counted in both categories.
	assert.Equal(t, 1, report.TotalKeywords)
	assert.Equal(t, 1, report.CategoryBreakdown["skills"].Matched)
	assert.Equal(t, 1, report.CategoryBreakdown["tools"].Matched)
}

func TestCalculate_MissingListCappedAtTwenty(t *testing.T) {
	var many []string
	for _, prefix := range []string{"alpha", "beta", "gamma", "delta", "epsilon"} {
		for _, suffix := range []string{"one", "two", "three", "four", "five"} {
			many = append(many, prefix+" "+suffix)
		}
	}
	report := Calculate("nothing matches here", map[string][]string{"skills": many})

	assert.Equal(t, 25, report.TotalKeywords)
	assert.Equal(t, 25, report.MissingKeywords)
	assert.Len(t, report.MissingKeywordsList, 20)
}

func TestCalculate_PercentageConsistentWithBreakdown(t *testing.T) {
	keywords := map[string][]string{
		"skills": {"SQL", "Python", "Tableau", "Spark"},
		"tools":  {"Git", "Docker"},
	}
	report := Calculate("SQL Python Git", keywords)

	matched, total := 0, 0
	for _, stats := range report.CategoryBreakdown {
		matched += stats.Matched
		total += stats.Total
	}
	// No keyword repeats across categories here, so the aggregated
	// breakdown counts must reproduce the top-level percentage.
	assert.Equal(t, report.MatchedKeywords, matched)
	assert.Equal(t, report.TotalKeywords, total)
	assert.InDelta(t, float64(matched)/float64(total)*100, report.MatchPercentage, 0.05)
}

func TestSuggestPlacements_AlwaysMediumWithoutRequiredContext(t *testing.T) {
	keywords := map[string][]string{
		"skills": {"Snowflake", "Airflow", "dbt"},
	}
	report := Calculate("unrelated text", keywords)
	suggestions := SuggestPlacements(report, nil)

	require.Len(t, suggestions, 3)
	for _, s := range suggestions {
		assert.Equal(t, "MEDIUM", s.Priority)
	}
}

func TestSuggestPlacements_SectionAssignment(t *testing.T) {
	keywords := map[string][]string{
		"skills": {"PostgreSQL tuning", "led migrations", "stakeholder empathy"},
	}
	report := Calculate("nothing here", keywords)
	suggestions := SuggestPlacements(report, nil)
	require.Len(t, suggestions, 3)

	bySection := map[string]string{}
	for _, s := range suggestions {
		bySection[s.Keyword] = s.SuggestedSection
	}
	assert.Equal(t, "skills", bySection["postgresql tuning"])   // contains "sql"
	assert.Equal(t, "experience", bySection["led migrations"])  // contains "led"
	assert.Equal(t, "skills", bySection["stakeholder empathy"]) // default
}

func TestSuggestPlacements_RequiredContextRaisesPriority(t *testing.T) {
	report := Calculate("no match", map[string][]string{"skills": {"Terraform"}})
	suggestions := SuggestPlacements(report, []string{"Terraform"})
	require.Len(t, suggestions, 1)
	assert.Equal(t, "HIGH", suggestions[0].Priority)
}

func TestSuggestPlacements_CapsAtTen(t *testing.T) {
	var many []string
	for _, prefix := range []string{"quux", "corge", "grault"} {
		for _, suffix := range []string{"oneword", "twoword", "redword", "blueword"} {
			many = append(many, prefix+" "+suffix)
		}
	}
	report := Calculate("no matches", map[string][]string{"skills": many})
	suggestions := SuggestPlacements(report, nil)
	assert.Len(t, suggestions, 10)
}

func TestBuildFullReport_GradeAndSuggestions(t *testing.T) {
	full := BuildFullReport("I use SQL and Python daily", map[string][]string{
		"skills": {"SQL", "Python", "Tableau"},
	})

	assert.Equal(t, "Needs Improvement", full.Grade)
	require.Len(t, full.Suggestions, 1)
	assert.Equal(t, "tableau", full.Suggestions[0].Keyword)
}

func TestMatchGrade_Thresholds(t *testing.T) {
	testCases := []struct {
		percentage float64
		expected   string
	}{
		{95, "Excellent"},
		{90, "Excellent"},
		{85, "Good"},
		{75, "Acceptable"},
		{65, "Needs Improvement"},
		{50, "Poor"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, matchGrade(tc.percentage))
	}
}
