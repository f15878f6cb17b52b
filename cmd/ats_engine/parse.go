package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-engine/internal/extraction"
	"github.com/jonathan/ats-engine/internal/parsing"
	"github.com/jonathan/ats-engine/internal/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a résumé document into a candidate record",
	Long:  "Extract text from a résumé document (pdf, doc, docx, txt), parse it into a structured candidate profile, and store it as a durable JSON record.",
	RunE:  runParse,
}

var (
	parseFile   string
	parseFormat string
)

func init() {
	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", "Path to résumé document (required)")
	parseCmd.Flags().StringVar(&parseFormat, "format", "", "Declared format (defaults to the file extension)")

	_ = parseCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	cfg, err := loadEngineConfig()
	if err != nil {
		return err
	}

	format := parseFormat
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(parseFile), ".")
	}

	text, err := extraction.Text(parseFile, format)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	profile := parsing.Parse(text)
	record := types.NewCandidateRecord(filepath.Base(parseFile), filepath.Base(parseFile), profile)

	outPath := filepath.Join(cfg.DataDir, record.ID+".json")
	if err := writeJSON(outPath, record); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Parsed %s\n", parseFile)
	fmt.Fprintf(os.Stdout, "Candidate record: %s\n", outPath)
	fmt.Fprintf(os.Stdout, "Skills found: %d, estimated experience: %d years\n",
		profile.Skills.SkillCount, profile.Experience.EstimatedYears)

	return nil
}
