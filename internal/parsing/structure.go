package parsing

import (
	"strings"

	"github.com/jonathan/ats-optimizer/internal/patterns"
	"github.com/jonathan/ats-optimizer/internal/types"
)

// sectionLookahead bounds how far below a header bullets are collected.
const sectionLookahead = 20

// Section classifications.
const (
	classResponsibilities = "responsibilities"
	classRequirements     = "requirements"
	classNone             = ""
)

// AnalyzeStructure segments job description text into named sections and
// classifies the bullet runs under "responsibilities" and "requirements"
// headers. Headers are ALL-CAPS lines, Title-Case-with-colon lines, or
// markdown-bold lines. Order of discovery is preserved.
func AnalyzeStructure(text string) types.JDStructure {
	structure := types.JDStructure{
		Sections:         []string{},
		Responsibilities: []string{},
		Requirements:     []string{},
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		for _, pattern := range patterns.HeaderPatterns {
			m := pattern.FindStringSubmatch(stripped)
			if m == nil {
				continue
			}
			header := strings.TrimSpace(m[1])
			structure.Sections = append(structure.Sections, header)

			switch classifyHeader(header) {
			case classResponsibilities:
				structure.Responsibilities = append(structure.Responsibilities,
					collectBullets(lines, i, classResponsibilities)...)
			case classRequirements:
				structure.Requirements = append(structure.Requirements,
					collectBullets(lines, i, classRequirements)...)
			}
		}
	}

	return structure
}

// classifyHeader maps a header text onto a section classification.
func classifyHeader(header string) string {
	lower := strings.ToLower(header)
	switch {
	case strings.Contains(lower, "responsibilit") || strings.Contains(lower, "what you"):
		return classResponsibilities
	case strings.Contains(lower, "requirement") || strings.Contains(lower, "about you") ||
		strings.Contains(lower, "qualification"):
		return classRequirements
	default:
		return classNone
	}
}

// collectBullets gathers the bulleted lines following the header at index
// start. Collection ends at an ALL-CAPS header of a different
// classification or at any other non-bulleted, non-empty line; blank lines
// and same-classification headers do not break the run.
func collectBullets(lines []string, start int, classification string) []string {
	end := start + sectionLookahead
	if end > len(lines) {
		end = len(lines)
	}

	bullets := []string{}
	for j := start + 1; j < end; j++ {
		stripped := strings.TrimSpace(lines[j])
		if stripped == "" {
			continue
		}
		if m := patterns.LeadingBullet.FindStringSubmatch(stripped); m != nil {
			bullets = append(bullets, strings.TrimSpace(m[1]))
			continue
		}
		if h := patterns.HeaderAllCaps.FindStringSubmatch(stripped); h != nil {
			if classifyHeader(strings.TrimSpace(h[1])) == classification {
				continue
			}
			break
		}
		break
	}
	return bullets
}
