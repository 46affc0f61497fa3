package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-optimizer/internal/docio"
	"github.com/jonathan/ats-optimizer/internal/match"
	"github.com/jonathan/ats-optimizer/internal/observability"
	"github.com/jonathan/ats-optimizer/internal/parsing"
	"github.com/jonathan/ats-optimizer/internal/types"
)

var matchKeywordsCmd = &cobra.Command{
	Use:   "match-keywords",
	Short: "Score a resume against job description keywords",
	Long:  "Match a resume document against the keyword checklist derived from an analyzed job description, producing per-category statistics and optionally placement suggestions.",
	RunE:  runMatchKeywords,
}

var (
	matchAnalysisFile string
	matchResumeFile   string
	matchOutputFile   string
	matchFull         bool
	matchVerbose      bool
)

func init() {
	matchKeywordsCmd.Flags().StringVar(&matchAnalysisFile, "jd-analysis", "", "Path to job description analysis JSON (required)")
	matchKeywordsCmd.Flags().StringVar(&matchResumeFile, "resume", "", "Path to resume document (.docx, .pdf, .txt, .md) (required)")
	matchKeywordsCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	matchKeywordsCmd.Flags().BoolVar(&matchFull, "full", false, "Include placement suggestions and match grade")
	matchKeywordsCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed debug information")
	_ = matchKeywordsCmd.MarkFlagRequired("jd-analysis")
	_ = matchKeywordsCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(matchKeywordsCmd)
}

func runMatchKeywords(_ *cobra.Command, _ []string) error {
	analysisBytes, err := os.ReadFile(matchAnalysisFile)
	if err != nil {
		return fmt.Errorf("failed to read analysis file: %w", err)
	}
	var analysis types.JDAnalysis
	if err := json.Unmarshal(analysisBytes, &analysis); err != nil {
		return fmt.Errorf("failed to parse analysis file: %w", err)
	}

	resumeText, err := docio.ExtractText(matchResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	keywords := parsing.KeywordChecklist(&analysis)

	var result any
	if matchFull {
		full := match.BuildFullReport(resumeText, keywords)
		if matchVerbose {
			printer := observability.NewPrinter(os.Stderr)
			printer.PrintMatchReport(&full.MatchReport)
			printer.PrintSuggestions(full.Suggestions)
		}
		result = full
	} else {
		report := match.Calculate(resumeText, keywords)
		if matchVerbose {
			observability.NewPrinter(os.Stderr).PrintMatchReport(report)
		}
		result = report
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if matchOutputFile == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
		return nil
	}

	if err := os.WriteFile(matchOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully matched resume against job description\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", matchOutputFile)

	return nil
}
