package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-engine/internal/ranking"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match all stored candidates against a job posting",
	Long:  "Score every stored candidate record against a job posting and print ranked results with per-dimension breakdowns, strengths, and gaps.",
	RunE:  runMatch,
}

var (
	matchJobFile string
	matchTop     int
)

func init() {
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job posting record (required)")
	matchCmd.Flags().IntVar(&matchTop, "top", 0, "Limit output to the top N matches (0 = all)")

	_ = matchCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	cfg, err := loadEngineConfig()
	if err != nil {
		return err
	}

	job, err := loadJob(matchJobFile)
	if err != nil {
		return err
	}

	candidates, err := loadCandidates(cfg.DataDir)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		fmt.Fprintln(os.Stdout, "No candidate records found.")
		return nil
	}

	results := ranking.MatchCandidates(job, candidates)

	limit := matchTop
	if limit == 0 {
		limit = cfg.TopMatches
	}
	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}

	fmt.Fprintf(os.Stdout, "Matches for %q (%d candidates):\n\n", job.Title, len(candidates))
	for i, result := range results {
		name := result.Candidate.ParsedData.ContactInfo.Name
		if name == "" {
			name = result.Candidate.OriginalFilename
		}

		fmt.Fprintf(os.Stdout, "%2d. %s: %.2f%%\n", i+1, name, result.MatchScore)
		fmt.Fprintf(os.Stdout, "    skills %.2f | experience %.2f | education %.2f | keywords %.2f",
			result.Breakdown.Skills, result.Breakdown.Experience,
			result.Breakdown.Education, result.Breakdown.Keywords)
		if len(job.DynamicKeywords) > 0 {
			fmt.Fprintf(os.Stdout, " | dynamic %.2f", result.Breakdown.DynamicKeywords)
		}
		fmt.Fprintln(os.Stdout)

		if len(result.Strengths) > 0 {
			fmt.Fprintf(os.Stdout, "    + %s\n", strings.Join(result.Strengths, "; "))
		}
		if len(result.Gaps) > 0 {
			fmt.Fprintf(os.Stdout, "    - %s\n", strings.Join(result.Gaps, "; "))
		}
	}

	return nil
}
