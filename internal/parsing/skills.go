package parsing

import (
	"sort"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/patterns"
)

// ExtractTechnicalSkills matches every skill category pattern across the
// full text and returns the union as a deduplicated, alphabetically sorted
// set. Matches are reported in the vocabulary's canonical casing, so
// "python" and "Python" collapse to one entry.
func ExtractTechnicalSkills(text string) []string {
	seen := make(map[string]bool)
	for _, pattern := range patterns.SkillCategories {
		for _, m := range pattern.FindAllString(text, -1) {
			seen[patterns.CanonicalSkill(m)] = true
		}
	}

	skills := make([]string, 0, len(seen))
	for s := range seen {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}

// ExtractRequiredPreferred separates required from preferred skill lines.
// For each marker phrase present in the text, the fixed character window
// following its first occurrence is collected; all windows of a category
// are concatenated before bullet extraction, so multiple markers feed one
// pool per category.
func ExtractRequiredPreferred(text string) (required, preferred []string) {
	lower := strings.ToLower(text)

	var requiredSection, preferredSection strings.Builder
	for _, marker := range patterns.RequiredMarkers {
		requiredSection.WriteString(markerWindow(text, lower, marker, patterns.MarkerWindowSize))
	}
	for _, marker := range patterns.PreferredMarkers {
		preferredSection.WriteString(markerWindow(text, lower, marker, patterns.MarkerWindowSize))
	}

	return extractBullets(requiredSection.String()), extractBullets(preferredSection.String())
}

// extractBullets pulls bullet-style lines out of a text window: `•`, `-`
// and `*` bullets first, then numbered lines.
func extractBullets(text string) []string {
	bullets := []string{}
	for _, m := range patterns.BulletLine.FindAllStringSubmatch(text, -1) {
		bullets = append(bullets, strings.TrimSpace(m[1]))
	}
	for _, m := range patterns.NumberedLine.FindAllStringSubmatch(text, -1) {
		bullets = append(bullets, strings.TrimSpace(m[1]))
	}
	return bullets
}

// ExtractCompanyValues looks for capitalized words near each value marker
// phrase, keeping at most five per marker window, deduplicated across
// markers in order of first appearance.
func ExtractCompanyValues(text string) []string {
	lower := strings.ToLower(text)

	values := []string{}
	seen := make(map[string]bool)
	for _, marker := range patterns.ValueMarkers {
		window := markerWindow(text, lower, marker, patterns.MarkerWindowSize)
		if window == "" {
			continue
		}
		words := patterns.CapitalizedWord.FindAllString(window, -1)
		if len(words) > 5 {
			words = words[:5]
		}
		for _, w := range words {
			if !seen[w] {
				seen[w] = true
				values = append(values, w)
			}
		}
	}
	return values
}

// ExtractExperienceRequirements collects years-of-experience spans and
// domain-experience phrases, deduplicated in order of first appearance.
func ExtractExperienceRequirements(text string) []string {
	requirements := []string{}
	seen := make(map[string]bool)

	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			requirements = append(requirements, s)
		}
	}

	for _, m := range patterns.YearsOfExperience.FindAllString(text, -1) {
		add(m)
	}
	for _, pattern := range patterns.DomainExperience {
		for _, m := range pattern.FindAllString(text, -1) {
			add(m)
		}
	}
	return requirements
}
