package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-optimizer/internal/ingestion"
)

var ingestJobCmd = &cobra.Command{
	Use:   "ingest-job",
	Short: "Fetch and clean a job posting, writing text and metadata to a directory",
	RunE:  runIngestJob,
}

var (
	ingestURL        string
	ingestFile       string
	ingestOutDir     string
	ingestUseBrowser bool
	ingestVerbose    bool
)

func init() {
	ingestJobCmd.Flags().StringVar(&ingestURL, "url", "", "URL to fetch the job posting from (mutually exclusive with --in)")
	ingestJobCmd.Flags().StringVarP(&ingestFile, "in", "i", "", "Path to job posting text file (mutually exclusive with --url)")
	ingestJobCmd.Flags().StringVarP(&ingestOutDir, "out-dir", "o", "", "Directory to write cleaned text and metadata to (required)")
	ingestJobCmd.Flags().BoolVar(&ingestUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	ingestJobCmd.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Print detailed debug information")
	_ = ingestJobCmd.MarkFlagRequired("out-dir")

	rootCmd.AddCommand(ingestJobCmd)
}

func runIngestJob(_ *cobra.Command, _ []string) error {
	if (ingestURL == "") == (ingestFile == "") {
		return fmt.Errorf("must provide exactly one of --url or --in")
	}

	var (
		cleaned  string
		metadata *ingestion.Metadata
		err      error
	)
	if ingestURL != "" {
		cleaned, metadata, err = ingestion.IngestFromURL(context.Background(), ingestURL, ingestUseBrowser, ingestVerbose)
	} else {
		cleaned, metadata, err = ingestion.IngestFromFile(ingestFile)
	}
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	if err := ingestion.WriteOutput(ingestOutDir, cleaned, metadata); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Ingested %d chars\n", len(cleaned))
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", ingestOutDir)

	return nil
}
