package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-engine/internal/suggestions"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Generate résumé improvement suggestions for a candidate",
	RunE:  runSuggest,
}

var suggestCandidateFile string

func init() {
	suggestCmd.Flags().StringVarP(&suggestCandidateFile, "candidate", "c", "", "Path to candidate record (required)")

	_ = suggestCmd.MarkFlagRequired("candidate")

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(_ *cobra.Command, _ []string) error {
	record, err := loadCandidate(suggestCandidateFile)
	if err != nil {
		return err
	}

	result := suggestions.Generate(&record.ParsedData)
	if len(result) == 0 {
		fmt.Fprintln(os.Stdout, "No suggestions: the résumé covers all checks.")
		return nil
	}

	for _, s := range result {
		fmt.Fprintf(os.Stdout, "[%s] %s: %s\n", s.Priority, s.Category, s.Suggestion)
		fmt.Fprintf(os.Stdout, "    Impact: %s\n", s.Impact)
	}

	return nil
}
