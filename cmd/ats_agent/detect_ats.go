package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-optimizer/internal/detect"
	"github.com/jonathan/ats-optimizer/internal/observability"
)

var detectATSCmd = &cobra.Command{
	Use:   "detect-ats",
	Short: "Identify the ATS serving a job posting",
	Long:  "Detect which applicant tracking system serves a posting from its application URL and/or page HTML, and print system-specific optimization guidance.",
	RunE:  runDetectATS,
}

var (
	detectURL            string
	detectHTMLFile       string
	detectSignaturesFile string
	detectOutputFile     string
	detectVerbose        bool
)

func init() {
	detectATSCmd.Flags().StringVar(&detectURL, "url", "", "Application URL to inspect")
	detectATSCmd.Flags().StringVar(&detectHTMLFile, "html", "", "Path to a saved HTML page to inspect")
	detectATSCmd.Flags().StringVar(&detectSignaturesFile, "signatures", "", "Path to external signatures JSON file (extends built-ins)")
	detectATSCmd.Flags().StringVarP(&detectOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	detectATSCmd.Flags().BoolVarP(&detectVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(detectATSCmd)
}

func runDetectATS(_ *cobra.Command, _ []string) error {
	if detectURL == "" && detectHTMLFile == "" {
		return fmt.Errorf("must provide --url or --html")
	}

	var external map[string]detect.Signature
	if detectSignaturesFile != "" {
		loaded, err := detect.LoadSignatures(detectSignaturesFile)
		if err != nil {
			return fmt.Errorf("failed to load signatures: %w", err)
		}
		external = loaded
	}

	var htmlContent string
	if detectHTMLFile != "" {
		htmlBytes, err := os.ReadFile(detectHTMLFile)
		if err != nil {
			return fmt.Errorf("failed to read HTML file: %w", err)
		}
		htmlContent = string(htmlBytes)
	}

	detector := detect.NewDetector(external)
	system := detector.Detect(detectURL, htmlContent)
	tips := detector.OptimizationTips(system)

	if detectVerbose {
		observability.NewPrinter(os.Stderr).PrintDetection(system, tips.Focus, tips.Tips)
	}

	jsonBytes, err := json.MarshalIndent(tips, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if detectOutputFile == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
		return nil
	}

	if err := os.WriteFile(detectOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if system == "" {
		_, _ = fmt.Fprintf(os.Stdout, "No known ATS recognized\n")
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "Detected ATS: %s\n", system)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", detectOutputFile)

	return nil
}
