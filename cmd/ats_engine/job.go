package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/ats-engine/internal/ingestion"
	"github.com/jonathan/ats-engine/internal/keywords"
	"github.com/jonathan/ats-engine/internal/types"
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Create a job posting record with extracted dynamic keywords",
	Long:  "Create a durable job posting record. Dynamic keywords are mined from the description once at creation time and persisted with the posting.",
	RunE:  runJob,
}

var (
	jobTitle           string
	jobDescriptionFile string
	jobSkills          string
	jobExperienceYears int
	jobEducationLevel  string
	jobLocation        string
	jobType            string
)

func init() {
	jobCmd.Flags().StringVar(&jobTitle, "title", "", "Job title (required)")
	jobCmd.Flags().StringVarP(&jobDescriptionFile, "description-file", "d", "", "Path to description text or HTML file (required)")
	jobCmd.Flags().StringVar(&jobSkills, "skills", "", "Comma-separated required skills")
	jobCmd.Flags().IntVar(&jobExperienceYears, "experience-years", 0, "Required years of experience")
	jobCmd.Flags().StringVar(&jobEducationLevel, "education-level", "", "Required education level (free text)")
	jobCmd.Flags().StringVar(&jobLocation, "location", "", "Job location")
	jobCmd.Flags().StringVar(&jobType, "job-type", "Full-time", "Job type")

	_ = jobCmd.MarkFlagRequired("title")
	_ = jobCmd.MarkFlagRequired("description-file")

	rootCmd.AddCommand(jobCmd)
}

func runJob(_ *cobra.Command, _ []string) error {
	cfg, err := loadEngineConfig()
	if err != nil {
		return err
	}

	description, err := ingestion.ReadDescription(jobDescriptionFile)
	if err != nil {
		return err
	}

	job := types.JobPosting{
		ID:              jobFilePrefix + uuid.NewString(),
		Title:           jobTitle,
		Description:     description,
		RequiredSkills:  types.ParseRequiredSkills(jobSkills),
		ExperienceYears: jobExperienceYears,
		EducationLevel:  jobEducationLevel,
		Location:        jobLocation,
		JobType:         jobType,
		DynamicKeywords: keywords.ExtractJobKeywords(description),
		CreatedDate:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := job.Validate(); err != nil {
		return fmt.Errorf("invalid job posting: %w", err)
	}

	outPath := filepath.Join(cfg.DataDir, job.ID+".json")
	if err := writeJSON(outPath, job); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Created job posting: %s\n", outPath)
	fmt.Fprintf(os.Stdout, "Dynamic keywords extracted: %d\n", len(job.DynamicKeywords))

	return nil
}
