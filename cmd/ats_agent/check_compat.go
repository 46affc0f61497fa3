package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-optimizer/internal/compat"
	"github.com/jonathan/ats-optimizer/internal/docio"
	"github.com/jonathan/ats-optimizer/internal/observability"
	"github.com/jonathan/ats-optimizer/internal/types"
)

// maxConcurrentChecks bounds how many documents are scored in parallel.
const maxConcurrentChecks = 4

var checkCompatCmd = &cobra.Command{
	Use:   "check-compat <resume.docx> [more.docx ...]",
	Short: "Score documents for ATS formatting compatibility",
	Long:  "Check one or more .docx documents against ATS formatting rules: tables, columns, fonts, headers/footers, graphics, and unusual characters. Each document gets a 0-100 score with a letter grade.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheckCompat,
}

var (
	checkRulesFile string
	checkOutDir    string
	checkVerbose   bool
)

// compatArtifact is the JSON artifact written per checked document.
type compatArtifact struct {
	RunID       string           `json:"run_id"`
	Document    string           `json:"document"`
	GeneratedAt time.Time        `json:"generated_at"`
	Report      *types.ATSReport `json:"report"`
}

func init() {
	checkCompatCmd.Flags().StringVar(&checkRulesFile, "rules", "", "Path to ATS rules JSON file (defaults used when omitted)")
	checkCompatCmd.Flags().StringVar(&checkOutDir, "out-dir", "", "Directory to write report JSON files to (defaults to stdout)")
	checkCompatCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(checkCompatCmd)
}

func runCheckCompat(_ *cobra.Command, args []string) error {
	rules, err := compat.LoadRules(checkRulesFile)
	if err != nil {
		var loadErr *compat.RulesLoadError
		if errors.As(err, &loadErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		} else {
			return err
		}
	}

	if checkOutDir != "" {
		if err := os.MkdirAll(checkOutDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	artifacts := make([]*compatArtifact, len(args))

	var g errgroup.Group
	g.SetLimit(maxConcurrentChecks)
	for i, docPath := range args {
		g.Go(func() error {
			snapshot, err := docio.LoadSnapshot(docPath)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", docPath, err)
			}
			checker, err := compat.NewChecker(snapshot, rules)
			if err != nil {
				return err
			}
			artifacts[i] = &compatArtifact{
				RunID:       uuid.NewString(),
				Document:    docPath,
				GeneratedAt: time.Now().UTC(),
				Report:      checker.GenerateReport(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, artifact := range artifacts {
		if checkVerbose {
			observability.NewPrinter(os.Stderr).PrintATSReport(artifact.Report)
		}

		jsonBytes, err := json.MarshalIndent(artifact, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}

		if checkOutDir == "" {
			_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
			continue
		}

		outPath := filepath.Join(checkOutDir, reportFileName(artifact.Document))
		if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "%s: %d/100 (grade %s) → %s\n",
			artifact.Document, artifact.Report.Score, artifact.Report.Grade, outPath)
	}

	return nil
}

// reportFileName derives the artifact name from the document name, e.g.
// resume.docx → resume.ats_report.json.
func reportFileName(docPath string) string {
	base := filepath.Base(docPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + ".ats_report.json"
}
