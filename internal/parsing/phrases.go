package parsing

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/patterns"
	"github.com/jonathan/ats-optimizer/internal/types"
)

const (
	// Verbatim phrases are complete sentences of 10-30 words.
	minPhraseWords = 10
	maxPhraseWords = 30
	maxPhrases     = 10

	densityTopN = 20
)

var sentenceBoundary = regexp.MustCompile(`[.!?]\s+`)

// ExtractVerbatimPhrases returns complete sentences worth copying
// near-verbatim into a tailored document: sentences of 10-30 words that
// contain at least one skill-indicator phrase. Document order is preserved
// and the result is capped at 10.
func ExtractVerbatimPhrases(text string) []string {
	phrases := []string{}
	for _, sent := range sentenceBoundary.Split(text, -1) {
		sent = strings.TrimSpace(sent)
		if sent == "" {
			continue
		}
		wordCount := len(strings.Fields(sent))
		if wordCount < minPhraseWords || wordCount > maxPhraseWords {
			continue
		}
		lower := strings.ToLower(sent)
		for _, indicator := range patterns.SkillIndicators {
			if strings.Contains(lower, indicator) {
				phrases = append(phrases, sent)
				break
			}
		}
		if len(phrases) == maxPhrases {
			break
		}
	}
	return phrases
}

// KeywordDensity counts lowercase alphabetic words longer than three
// characters, excluding stop words, and returns the 20 most frequent.
// Ties are broken by order of first appearance in the text.
func KeywordDensity(text string) []types.KeywordCount {
	lower := strings.ToLower(text)

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, w := range patterns.DensityWord.FindAllString(lower, -1) {
		if patterns.StopWords[w] {
			continue
		}
		if _, ok := counts[w]; !ok {
			firstSeen[w] = i
		}
		counts[w]++
	}

	entries := make([]types.KeywordCount, 0, len(counts))
	for w, c := range counts {
		entries = append(entries, types.KeywordCount{Word: w, Count: c})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return firstSeen[entries[i].Word] < firstSeen[entries[j].Word]
	})

	if len(entries) > densityTopN {
		entries = entries[:densityTopN]
	}
	return entries
}
