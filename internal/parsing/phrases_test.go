package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-optimizer/internal/types"
)

func TestExtractVerbatimPhrases_KeepsIndicatorSentences(t *testing.T) {
	text := "We are looking for someone with experience with data pipelines and modern cloud infrastructure at scale. " +
		"Experience with SQL required. " +
		"The office has a nice view of the park and plenty of coffee available for everyone all day."
	phrases := ExtractVerbatimPhrases(text)

	require.Len(t, phrases, 1)
	assert.Contains(t, strings.ToLower(phrases[0]), "experience with")
}

func TestExtractVerbatimPhrases_CapsAtTen(t *testing.T) {
	sentence := "You have demonstrated experience building reliable data systems and the ability to work across many teams."
	text := strings.Repeat(sentence+" ", 15)
	phrases := ExtractVerbatimPhrases(text)
	assert.Len(t, phrases, 10)
}

func TestExtractVerbatimPhrases_EmptyInput(t *testing.T) {
	phrases := ExtractVerbatimPhrases("")
	assert.NotNil(t, phrases)
	assert.Empty(t, phrases)
}

func TestKeywordDensity_CountsAndOrder(t *testing.T) {
	text := "data data data pipeline pipeline code with that this from"
	density := KeywordDensity(text)

	require.Len(t, density, 3)
	assert.Equal(t, types.KeywordCount{Word: "data", Count: 3}, density[0])
	assert.Equal(t, types.KeywordCount{Word: "pipeline", Count: 2}, density[1])
	assert.Equal(t, types.KeywordCount{Word: "code", Count: 1}, density[2])
}

func TestKeywordDensity_TieBrokenByFirstAppearance(t *testing.T) {
	density := KeywordDensity("alpha beta alpha beta gamma")
	require.Len(t, density, 3)
	assert.Equal(t, "alpha", density[0].Word)
	assert.Equal(t, "beta", density[1].Word)
	assert.Equal(t, "gamma", density[2].Word)
}

func TestKeywordDensity_IgnoresShortAndStopWords(t *testing.T) {
	density := KeywordDensity("the cat sat with this that from have will")
	assert.Empty(t, density)
}
