// Package quality checks a candidate document against resume best
// practices: quantified achievement bullets, title alignment with the
// target role, and required-keyword coverage.
package quality

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/patterns"
	"github.com/jonathan/ats-optimizer/internal/types"
)

// maxQuantifiableWarnings caps how many unquantified bullets get reported.
const maxQuantifiableWarnings = 5

// warningSnippetLen is how much of the offending bullet the warning quotes.
const warningSnippetLen = 50

// titleScanParagraphs is how many leading paragraphs are scanned for a
// bold or large-font title run.
const titleScanParagraphs = 10

// titleMatchThreshold is the word-overlap ratio above which the document
// title counts as matching the target title.
const titleMatchThreshold = 0.5

// numberPattern recognizes quantified metrics inside a bullet.
var numberPattern = regexp.MustCompile(`(?i)\d+[%£$KM]|\d+%|\d+\s*(?:percent|million|thousand|k|m)`)

// achievementVerbs mark a bullet as an achievement statement that should
// carry a metric.
var achievementVerbs = []string{
	"led", "managed", "increased", "decreased", "improved",
	"reduced", "achieved", "delivered", "created", "built",
}

// Coverage reports which required keywords the document carries.
type Coverage struct {
	Present  []string `json:"present"`
	Missing  []string `json:"missing"`
	Coverage float64  `json:"coverage"`
}

// Results bundles the output of every quality check. TitleMatch and
// KeywordCoverage are nil when the corresponding input was not supplied.
type Results struct {
	QuantifiableWarnings []string  `json:"quantifiable_warnings"`
	TitleMatch           *bool     `json:"title_match"`
	KeywordCoverage      *Coverage `json:"keyword_coverage"`
}

// Validator runs quality checks over a document. It accepts either a full
// snapshot, which enables run-level title detection, or bare text.
type Validator struct {
	snapshot  *types.DocumentSnapshot
	text      string
	textLower string
}

// NewValidator builds a validator over a document snapshot.
func NewValidator(snapshot *types.DocumentSnapshot) *Validator {
	text := ""
	if snapshot != nil {
		text = snapshot.Text()
	}
	return &Validator{snapshot: snapshot, text: text, textLower: strings.ToLower(text)}
}

// NewTextValidator builds a validator over plain document text. Title
// extraction falls back to the first line.
func NewTextValidator(text string) *Validator {
	return &Validator{text: text, textLower: strings.ToLower(text)}
}

// QuantifiableWarnings flags achievement bullets that carry no metric.
// A bullet counts as an achievement when it starts with an action verb;
// at most five warnings are returned, in document order.
func (v *Validator) QuantifiableWarnings() []string {
	warnings := []string{}
	for _, match := range patterns.BulletLine.FindAllStringSubmatch(v.text, -1) {
		bullet := match[1]
		if numberPattern.MatchString(bullet) {
			continue
		}
		if !startsWithAchievementVerb(bullet) {
			continue
		}
		warnings = append(warnings, "Consider adding quantifiable metrics: "+snippet(bullet)+"...")
		if len(warnings) == maxQuantifiableWarnings {
			break
		}
	}
	return warnings
}

// Title extracts the document's job title: the first paragraph among the
// first ten whose leading run is bold or larger than 12pt, else the first
// line of text.
func (v *Validator) Title() string {
	if v.snapshot != nil {
		limit := len(v.snapshot.Paragraphs)
		if limit > titleScanParagraphs {
			limit = titleScanParagraphs
		}
		for _, paragraph := range v.snapshot.Paragraphs[:limit] {
			if len(paragraph.Runs) == 0 {
				continue
			}
			first := paragraph.Runs[0]
			if first.Bold || first.FontSizePt > 12 {
				return strings.TrimSpace(paragraph.Text)
			}
		}
	}
	line, _, _ := strings.Cut(v.text, "\n")
	return strings.TrimSpace(line)
}

// TitleMatches reports whether the document title shares at least half of
// the target title's words, case-insensitive.
func (v *Validator) TitleMatches(targetTitle string) bool {
	targetWords := wordSet(targetTitle)
	if len(targetWords) == 0 {
		return false
	}
	titleWords := wordSet(v.Title())

	overlap := 0
	for word := range targetWords {
		if titleWords[word] {
			overlap++
		}
	}
	return float64(overlap)/float64(len(targetWords)) >= titleMatchThreshold
}

// KeywordCoverage reports which required keywords occur in the document as
// whole-word, case-insensitive matches, preserving input order.
func (v *Validator) KeywordCoverage(requiredKeywords []string) *Coverage {
	coverage := &Coverage{Present: []string{}, Missing: []string{}}
	for _, keyword := range requiredKeywords {
		pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(strings.ToLower(keyword)) + `\b`)
		if err != nil {
			continue
		}
		if pattern.MatchString(v.textLower) {
			coverage.Present = append(coverage.Present, keyword)
		} else {
			coverage.Missing = append(coverage.Missing, keyword)
		}
	}
	if len(requiredKeywords) > 0 {
		coverage.Coverage = float64(len(coverage.Present)) / float64(len(requiredKeywords)) * 100
	}
	return coverage
}

// ValidateAll runs every check. The title and keyword checks are skipped
// when their inputs are empty.
func (v *Validator) ValidateAll(targetTitle string, requiredKeywords []string) *Results {
	results := &Results{QuantifiableWarnings: v.QuantifiableWarnings()}
	if targetTitle != "" {
		match := v.TitleMatches(targetTitle)
		results.TitleMatch = &match
	}
	if len(requiredKeywords) > 0 {
		results.KeywordCoverage = v.KeywordCoverage(requiredKeywords)
	}
	return results
}

func startsWithAchievementVerb(bullet string) bool {
	lower := strings.ToLower(bullet)
	for _, verb := range achievementVerbs {
		if strings.HasPrefix(lower, verb) {
			return true
		}
	}
	return false
}

func snippet(s string) string {
	runes := []rune(s)
	if len(runes) <= warningSnippetLen {
		return s
	}
	return string(runes[:warningSnippetLen])
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(s)) {
		set[word] = true
	}
	return set
}
