// Package patterns holds the immutable pattern tables shared by the job
// description analyzers, the keyword matcher, and the compatibility checker.
// The tables are process-wide configuration built once at init and treated
// as read-only by every caller; each table is a named constant so unit
// tests can pin exact matching behavior.
package patterns

import (
	"regexp"
	"sort"
	"strings"
)

// skillVocabulary lists the recognized skill terms per category, in their
// canonical casing. The category regexes below are generated from it.
var skillVocabulary = map[string][]string{
	"programming":   {"Python", "Java", "JavaScript", "R", "SQL", "C++", "Scala", "Ruby", "Go", "TypeScript"},
	"tools":         {"Tableau", "Power BI", "Excel", "JIRA", "Git", "Docker", "AWS", "Azure", "GCP", "Kubernetes", "Jenkins"},
	"frameworks":    {"React", "Angular", "Django", "Flask", "Pandas", "NumPy", "TensorFlow", "PyTorch", "Spark"},
	"databases":     {"PostgreSQL", "MySQL", "MongoDB", "Redis", "Cassandra", "Oracle", "Snowflake", "Redshift"},
	"methodologies": {"Agile", "Scrum", "Kanban", "Waterfall", "DevOps", "CI/CD"},
}

// SkillCategories maps each category name to its compiled, case-insensitive
// whole-word pattern.
var SkillCategories = buildSkillCategories()

// canonicalSkills maps the lowercase form of every vocabulary term to its
// canonical casing.
var canonicalSkills = buildCanonicalSkills()

func buildSkillCategories() map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(skillVocabulary))
	for category, terms := range skillVocabulary {
		quoted := make([]string, len(terms))
		for i, t := range terms {
			quoted[i] = regexp.QuoteMeta(t)
		}
		out[category] = regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
	}
	return out
}

func buildCanonicalSkills() map[string]string {
	out := make(map[string]string)
	for _, terms := range skillVocabulary {
		for _, t := range terms {
			out[strings.ToLower(t)] = t
		}
	}
	return out
}

// CanonicalSkill returns the vocabulary casing for a matched skill term.
// Unknown terms are returned unchanged.
func CanonicalSkill(match string) string {
	if canonical, ok := canonicalSkills[strings.ToLower(match)]; ok {
		return canonical
	}
	return match
}

// SkillCategoryNames returns the category names in sorted order.
func SkillCategoryNames() []string {
	names := make([]string, 0, len(skillVocabulary))
	for name := range skillVocabulary {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Marker phrases locating required vs. preferred skill windows.
var (
	RequiredMarkers  = []string{"required", "must have", "essential", "mandatory", "must", "need"}
	PreferredMarkers = []string{"preferred", "nice to have", "desirable", "bonus", "plus", "advantage"}
)

// MarkerWindowSize is the fixed character window read after each marker
// phrase. Window-based extraction truncates at this count rather than at a
// section boundary; compatible output depends on reproducing that.
const MarkerWindowSize = 500

// SkillIndicators are the phrases that qualify a sentence as a verbatim
// skill phrase.
var SkillIndicators = []string{
	"ability to", "experience with", "proficient in",
	"knowledge of", "skilled in", "expertise in",
	"strong skills", "demonstrated experience", "proven ability",
}

// ValueMarkers introduce company value statements.
var ValueMarkers = []string{
	"our values", "company values", "core values",
	"we believe", "our culture", "values we",
}

// StopWords are excluded from keyword density counting.
var StopWords = map[string]bool{
	"that": true, "this": true, "with": true, "from": true,
	"have": true, "will": true, "would": true, "could": true, "should": true,
}

// Bullet line patterns. BulletLine matches `•`, `-` and `*` bullets,
// NumberedLine matches `1.`-style bullets.
var (
	BulletLine   = regexp.MustCompile(`(?m)[•\-*]\s*(.+)$`)
	NumberedLine = regexp.MustCompile(`(?m)\d+\.\s*(.+)$`)
	// LeadingBullet matches only lines that start with a bullet marker,
	// used by the structure analyzer on already-trimmed lines.
	LeadingBullet = regexp.MustCompile(`^[•\-*]\s*(.+)`)
)

// Section header patterns for the structure analyzer.
var (
	HeaderAllCaps   = regexp.MustCompile(`^([A-Z][A-Z\s]+):?$`)
	HeaderTitleCase = regexp.MustCompile(`^([A-Z][a-z\s]+):$`)
	HeaderMarkdown  = regexp.MustCompile(`^\*\*([^*]+)\*\*`)
)

// HeaderPatterns is the ordered list applied to each line.
var HeaderPatterns = []*regexp.Regexp{HeaderAllCaps, HeaderTitleCase, HeaderMarkdown}

// Experience requirement patterns.
var (
	YearsOfExperience = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)?`)
	DomainExperience  = []*regexp.Regexp{
		regexp.MustCompile(`(?i)experience\s+in\s+([A-Z][a-z\s]+)`),
		regexp.MustCompile(`(?i)background\s+in\s+([A-Z][a-z\s]+)`),
	}
)

// Job title extraction templates, applied in order.
var TitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)hiring\s+(?:a|an)\s+([A-Z][a-zA-Z\s]+?)(?:\s+at|\s+to|\.|,)`),
	regexp.MustCompile(`(?im)^([A-Z][a-zA-Z\s]+?)\s*[-–]\s*[A-Z]`),
	regexp.MustCompile(`(?im)Position:\s*([A-Z][a-zA-Z\s]+)`),
	regexp.MustCompile(`(?im)Role:\s*([A-Z][a-zA-Z\s]+)`),
	regexp.MustCompile(`(?im)Job Title:\s*([A-Z][a-zA-Z\s]+)`),
	regexp.MustCompile(`(?im)Title:\s*([A-Z][a-zA-Z\s]+)`),
}

// CapitalizedWord matches a single capitalized word, used for company value
// extraction inside marker windows.
var CapitalizedWord = regexp.MustCompile(`\b[A-Z][a-z]+\b`)

// DensityWord matches the lowercase alphabetic words counted for keyword
// density (length > 3).
var DensityWord = regexp.MustCompile(`\b[a-z]{4,}\b`)

// UnusualBullets are glyphs most ATS parsers mangle; their presence is a
// compatibility deduction.
var UnusualBullets = []string{"→", "►", "▪", "▫", "■", "□", "◆", "◇"}

// Placement indicator lists for keyword placement suggestions.
var (
	TechnicalIndicators = []string{"sql", "python", "java", "tableau", "aws", "docker"}
	ActionIndicators    = []string{"led", "managed", "developed", "implemented", "designed"}
)
