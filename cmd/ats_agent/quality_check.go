package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-optimizer/internal/docio"
	"github.com/jonathan/ats-optimizer/internal/quality"
	"github.com/jonathan/ats-optimizer/internal/types"
)

var qualityCheckCmd = &cobra.Command{
	Use:   "quality-check",
	Short: "Validate a resume against quality best practices",
	Long:  "Check a resume for unquantified achievement bullets, title alignment with the target role, and required-keyword coverage. Title and keyword checks run only when a job description analysis is supplied.",
	RunE:  runQualityCheck,
}

var (
	qualityResumeFile   string
	qualityAnalysisFile string
	qualityOutputFile   string
)

func init() {
	qualityCheckCmd.Flags().StringVar(&qualityResumeFile, "resume", "", "Path to resume document (.docx, .pdf, .txt, .md) (required)")
	qualityCheckCmd.Flags().StringVar(&qualityAnalysisFile, "jd-analysis", "", "Path to job description analysis JSON (enables title and keyword checks)")
	qualityCheckCmd.Flags().StringVarP(&qualityOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	_ = qualityCheckCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(qualityCheckCmd)
}

func runQualityCheck(_ *cobra.Command, _ []string) error {
	var validator *quality.Validator
	if strings.EqualFold(filepath.Ext(qualityResumeFile), ".docx") {
		snapshot, err := docio.LoadSnapshot(qualityResumeFile)
		if err != nil {
			return fmt.Errorf("failed to load resume: %w", err)
		}
		validator = quality.NewValidator(snapshot)
	} else {
		text, err := docio.ExtractText(qualityResumeFile)
		if err != nil {
			return fmt.Errorf("failed to read resume: %w", err)
		}
		validator = quality.NewTextValidator(text)
	}

	var targetTitle string
	var requiredKeywords []string
	if qualityAnalysisFile != "" {
		analysisBytes, err := os.ReadFile(qualityAnalysisFile)
		if err != nil {
			return fmt.Errorf("failed to read analysis file: %w", err)
		}
		var analysis types.JDAnalysis
		if err := json.Unmarshal(analysisBytes, &analysis); err != nil {
			return fmt.Errorf("failed to parse analysis file: %w", err)
		}
		if analysis.JobTitle != types.UnknownTitle {
			targetTitle = analysis.JobTitle
		}
		requiredKeywords = analysis.TechnicalSkills
	}

	results := validator.ValidateAll(targetTitle, requiredKeywords)

	jsonBytes, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if qualityOutputFile == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
		return nil
	}

	if err := os.WriteFile(qualityOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Quality check complete: %d warning(s)\n", len(results.QuantifiableWarnings))
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", qualityOutputFile)

	return nil
}
