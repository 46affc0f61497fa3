// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/ats-optimizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJDAnalysis outputs a human-readable summary of the analyzed job description.
func (p *Printer) PrintJDAnalysis(analysis *types.JDAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", analysis.JobTitle))
	sb.WriteString("\n")

	if len(analysis.TechnicalSkills) > 0 {
		sb.WriteString("Technical Skills:\n")
		count := min(len(analysis.TechnicalSkills), maxItemsToShow)
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(analysis.TechnicalSkills[:count], ", ")))
		if len(analysis.TechnicalSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.TechnicalSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(analysis.RequiredSkills) > 0 {
		sb.WriteString("Required:\n")
		count := min(len(analysis.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := analysis.RequiredSkills[i]
			if len(skill) > 50 {
				skill = skill[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", skill))
		}
		if len(analysis.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.RequiredSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(analysis.PreferredSkills) > 0 {
		sb.WriteString("Preferred:\n")
		count := min(len(analysis.PreferredSkills), 3)
		for i := 0; i < count; i++ {
			skill := analysis.PreferredSkills[i]
			if len(skill) > 50 {
				skill = skill[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", skill))
		}
		if len(analysis.PreferredSkills) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.PreferredSkills)-3))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Sections: %d  Responsibilities: %d  Requirements: %d",
		len(analysis.Structure.Sections),
		len(analysis.Structure.Responsibilities),
		len(analysis.Structure.Requirements)))

	p.printBox("JOB DESCRIPTION ANALYSIS", sb.String())
}

// PrintMatchReport outputs the keyword match statistics per category.
func (p *Printer) PrintMatchReport(report *types.MatchReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched:  %d / %d (%.1f%%)\n", report.MatchedKeywords, report.TotalKeywords, report.MatchPercentage))
	sb.WriteString("\n")

	if len(report.CategoryBreakdown) > 0 {
		sb.WriteString("By Category:\n")
		for _, category := range sortedCategories(report.CategoryBreakdown) {
			stats := report.CategoryBreakdown[category]
			sb.WriteString(fmt.Sprintf("  %-18s %d/%d (%.1f%%)\n", category, stats.Matched, stats.Total, stats.Percentage))
		}
		sb.WriteString("\n")
	}

	if len(report.MissingKeywordsList) > 0 {
		sb.WriteString("Missing:\n")
		count := min(len(report.MissingKeywordsList), maxItemsToShow)
		sb.WriteString(fmt.Sprintf("  %s", strings.Join(report.MissingKeywordsList[:count], ", ")))
		if len(report.MissingKeywordsList) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("\n  ... and %d more", len(report.MissingKeywordsList)-maxItemsToShow))
		}
	}

	p.printBox("KEYWORD MATCH REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs placement suggestions for missing keywords.
func (p *Printer) PrintSuggestions(suggestions []types.PlacementSuggestion) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	for i, s := range suggestions {
		sb.WriteString(fmt.Sprintf("[%s] %s → %s", s.Priority, s.Keyword, s.SuggestedSection))
		if i < len(suggestions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PLACEMENT SUGGESTIONS", sb.String())
}

// PrintATSReport outputs the compatibility score, issues, and recommendations.
func (p *Printer) PrintATSReport(report *types.ATSReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %d / 100 (grade %s)\n", report.Score, report.Grade))

	if len(report.Issues) == 0 {
		sb.WriteString("\nNo issues found")
		p.printBox("ATS COMPATIBILITY", sb.String())
		return
	}

	sb.WriteString("\nIssues:\n")
	for _, issue := range report.Issues {
		text := issue.Issue
		if len(text) > 42 {
			text = text[:39] + "..."
		}
		sb.WriteString(fmt.Sprintf("  -%d [%s] %s\n", issue.Deduction, issue.Severity, text))
	}

	if len(report.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, rec := range report.Recommendations {
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	p.printBox("ATS COMPATIBILITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDetection outputs the detected ATS system with its guidance.
func (p *Printer) PrintDetection(system, focus string, tips []string) {
	var sb strings.Builder
	if system == "" {
		sb.WriteString("System:   not recognized\n")
	} else {
		sb.WriteString(fmt.Sprintf("System:   %s\n", system))
	}
	sb.WriteString(fmt.Sprintf("Focus:    %s\n", focus))

	if len(tips) > 0 {
		sb.WriteString("\nTips:\n")
		for _, tip := range tips {
			sb.WriteString(fmt.Sprintf("  • %s\n", tip))
		}
	}

	p.printBox("ATS SYSTEM DETECTION", strings.TrimSuffix(sb.String(), "\n"))
}

func sortedCategories(breakdown map[string]types.CategoryStats) []string {
	categories := make([]string, 0, len(breakdown))
	for category := range breakdown {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}
