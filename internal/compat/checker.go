package compat

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/patterns"
	"github.com/jonathan/ats-optimizer/internal/types"
)

// Checker runs formatting checks against a single document snapshot.
type Checker struct {
	snapshot *types.DocumentSnapshot
	rules    *Rules
	issues   []types.Issue
}

// NewChecker builds a checker for a loaded snapshot. The snapshot is
// required; nil rules fall back to the built-in defaults.
func NewChecker(snapshot *types.DocumentSnapshot, rules *Rules) (*Checker, error) {
	if snapshot == nil {
		return nil, errors.New("compat: document snapshot is required")
	}
	if rules == nil {
		rules = DefaultRules()
	}
	return &Checker{snapshot: snapshot, rules: rules}, nil
}

// Score runs every check and returns the final score, floored at zero.
// Issues accumulated by the checks are discarded from any previous run, so
// repeated calls produce identical results.
func (c *Checker) Score() int {
	c.issues = nil

	total := 0
	total += c.checkFileFormat()
	total += c.checkLayout()
	total += c.checkFonts()
	total += c.checkHeadersFooters()
	total += c.checkGraphics()
	total += c.checkSpecialCharacters()

	score := 100 - total
	if score < 0 {
		score = 0
	}
	return score
}

// checkFileFormat deducts the configured file-format weight when the
// snapshot's extension is not in the allowed list.
func (c *Checker) checkFileFormat() int {
	ext := strings.ToLower(filepath.Ext(c.snapshot.FileName))
	for _, allowed := range c.rules.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			return 0
		}
	}
	c.addIssue(types.SeverityHigh,
		fmt.Sprintf("File format is %s, should be %s", ext, strings.Join(c.rules.AllowedExtensions, ", ")),
		c.rules.FileFormatWeight)
	return c.rules.FileFormatWeight
}

// checkLayout deducts for tables and for multi-column sections. The column
// deduction applies once, at the first section reporting more than one
// column; sections with an unknown column count are skipped.
func (c *Checker) checkLayout() int {
	deduction := 0

	if c.snapshot.TableCount > 0 {
		c.addIssue(types.SeverityHigh,
			fmt.Sprintf("Found %d table(s) - ATS may not parse correctly", c.snapshot.TableCount),
			tableDeduction)
		deduction += tableDeduction
	}

	for _, section := range c.snapshot.Sections {
		if section.Columns > 1 {
			c.addIssue(types.SeverityHigh, "Multi-column layout detected", multiColumnDeduction)
			deduction += multiColumnDeduction
			break
		}
	}

	return deduction
}

// checkFonts deducts once for non-standard font names and once for font
// sizes outside the allowed range. Offending names and sizes are reported
// in first-encounter order.
func (c *Checker) checkFonts() int {
	allowed := make(map[string]bool, len(c.rules.AllowedFonts))
	for _, name := range c.rules.AllowedFonts {
		allowed[name] = true
	}

	seenFonts := make(map[string]bool)
	seenSizes := make(map[float64]bool)
	var nonStandard []string
	var invalidSizes []float64

	for _, paragraph := range c.snapshot.Paragraphs {
		for _, run := range paragraph.Runs {
			if run.FontName != "" && !allowed[run.FontName] && !seenFonts[run.FontName] {
				seenFonts[run.FontName] = true
				nonStandard = append(nonStandard, run.FontName)
			}
			if run.FontSizePt > 0 && (run.FontSizePt < c.rules.MinFontSizePt || run.FontSizePt > c.rules.MaxFontSizePt) {
				if !seenSizes[run.FontSizePt] {
					seenSizes[run.FontSizePt] = true
					invalidSizes = append(invalidSizes, run.FontSizePt)
				}
			}
		}
	}

	deduction := 0
	if len(nonStandard) > 0 {
		c.addIssue(types.SeverityMedium,
			"Non-standard fonts detected: "+strings.Join(nonStandard, ", "),
			c.rules.FontWeight)
		deduction += c.rules.FontWeight
	}
	if len(invalidSizes) > 0 {
		c.addIssue(types.SeverityMedium,
			fmt.Sprintf("Font sizes outside recommended range (%s-%spt): %s",
				formatPt(c.rules.MinFontSizePt), formatPt(c.rules.MaxFontSizePt), joinSizes(invalidSizes)),
			fontSizeDeduction)
		deduction += fontSizeDeduction
	}
	return deduction
}

// checkHeadersFooters deducts per section for any header or footer that
// carries non-empty text.
func (c *Checker) checkHeadersFooters() int {
	deduction := 0
	for _, section := range c.snapshot.Sections {
		if hasText(section.HeaderParagraphs) {
			c.addIssue(types.SeverityMedium, "Header contains text - ATS may not read it", headerDeduction)
			deduction += headerDeduction
		}
		if hasText(section.FooterParagraphs) {
			c.addIssue(types.SeverityMedium, "Footer contains text - ATS may not read it", footerDeduction)
			deduction += footerDeduction
		}
	}
	return deduction
}

// checkGraphics deducts the configured graphics weight when any embedded
// relationship target references an image.
func (c *Checker) checkGraphics() int {
	for _, target := range c.snapshot.MediaTargets {
		if strings.Contains(strings.ToLower(target), "image") {
			c.addIssue(types.SeverityHigh, "Images/graphics detected - ATS cannot read these", c.rules.GraphicsWeight)
			return c.rules.GraphicsWeight
		}
	}
	return 0
}

// checkSpecialCharacters deducts once when the document text contains any
// bullet glyph outside the standard set.
func (c *Checker) checkSpecialCharacters() int {
	text := c.snapshot.Text()
	var found []string
	for _, bullet := range patterns.UnusualBullets {
		if strings.Contains(text, bullet) {
			found = append(found, bullet)
		}
	}
	if len(found) == 0 {
		return 0
	}
	c.addIssue(types.SeverityLow,
		"Unusual bullet points detected: "+strings.Join(found, ", "),
		specialCharsDeduction)
	return specialCharsDeduction
}

func (c *Checker) addIssue(severity, issue string, deduction int) {
	c.issues = append(c.issues, types.Issue{
		Severity:  severity,
		Issue:     issue,
		Deduction: deduction,
	})
}

func hasText(paragraphs []string) bool {
	for _, p := range paragraphs {
		if strings.TrimSpace(p) != "" {
			return true
		}
	}
	return false
}

func formatPt(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func joinSizes(sizes []float64) string {
	parts := make([]string, 0, len(sizes))
	for _, s := range sizes {
		parts = append(parts, formatPt(s))
	}
	return strings.Join(parts, ", ")
}
