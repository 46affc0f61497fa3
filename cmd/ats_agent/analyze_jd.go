package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-optimizer/internal/config"
	"github.com/jonathan/ats-optimizer/internal/ingestion"
	"github.com/jonathan/ats-optimizer/internal/observability"
	"github.com/jonathan/ats-optimizer/internal/parsing"
	"github.com/jonathan/ats-optimizer/internal/schemas"
)

var analyzeJDCmd = &cobra.Command{
	Use:   "analyze-jd",
	Short: "Analyze a job description into structured JSON",
	Long:  "Analyze a job description from a text file or URL: job title, skills, verbatim phrases, company values, structure, keyword density, and experience requirements.",
	RunE:  runAnalyzeJD,
}

var (
	analyzeConfigPath string
	analyzeInputFile  string
	analyzeURL        string
	analyzeOutputFile string
	analyzeUseBrowser bool
	analyzeVerbose    bool
)

func init() {
	analyzeJDCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeJDCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to job description text file (mutually exclusive with --url)")
	analyzeJDCmd.Flags().StringVar(&analyzeURL, "url", "", "URL to fetch the job description from (mutually exclusive with --in)")
	analyzeJDCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	analyzeJDCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	analyzeJDCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(analyzeJDCmd)
}

func runAnalyzeJD(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Job:        analyzeInputFile,
		JobURL:     analyzeURL,
		UseBrowser: analyzeUseBrowser,
		Verbose:    analyzeVerbose,
	}
	if analyzeConfigPath != "" {
		loaded, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*loaded)
		cfg.UseBrowser = cfg.UseBrowser || loaded.UseBrowser
		cfg.Verbose = cfg.Verbose || loaded.Verbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("must provide --in or --url")
	}

	var text string
	if cfg.JobURL != "" {
		cleaned, _, err := ingestion.IngestFromURL(context.Background(), cfg.JobURL, cfg.UseBrowser, cfg.Verbose)
		if err != nil {
			return fmt.Errorf("failed to ingest job posting: %w", err)
		}
		text = cleaned
	} else {
		cleaned, _, err := ingestion.IngestFromFile(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to read job posting: %w", err)
		}
		text = cleaned
	}

	analysis := parsing.Analyze(text)

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintJDAnalysis(analysis)
	}

	jsonBytes, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if analyzeOutputFile == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
		return nil
	}

	if err := os.WriteFile(analyzeOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	// Validate against schema (if schema file exists)
	schemaPath := schemas.ResolveSchemaPath("schemas/jd_analysis.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, analyzeOutputFile); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("generated JSON does not validate against schema: %w", err)
			}
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully analyzed job description\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", analyzeOutputFile)

	return nil
}
