package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/ats-engine/internal/config"
	"github.com/jonathan/ats-engine/internal/schemas"
	"github.com/jonathan/ats-engine/internal/types"
)

// jobFilePrefix distinguishes job records from candidate records inside the
// data directory.
const jobFilePrefix = "job_"

// loadEngineConfig resolves the effective configuration: file values when
// --config is given, built-in defaults otherwise.
func loadEngineConfig() (config.Config, error) {
	defaults := config.Defaults()
	if configPath == "" {
		return defaults, nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg.MergeWithDefaults(defaults), nil
}

// writeJSON marshals v with indentation and writes it to path, creating the
// parent directory if needed.
func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// loadCandidates reads every candidate record in the data directory, skipping
// job records and files that fail schema validation, and returns the
// survivors newest-upload-first.
func loadCandidates(dataDir string) ([]types.CandidateRecord, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory %s: %w", dataDir, err)
	}

	var records []types.CandidateRecord
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, jobFilePrefix) || !strings.HasSuffix(name, ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dataDir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", name, err)
			continue
		}
		if err := schemas.ValidateCandidateRecord(data); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", name, err)
			continue
		}

		var record types.CandidateRecord
		if err := json.Unmarshal(data, &record); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", name, err)
			continue
		}
		records = append(records, record)
	}

	types.SortByUploadDesc(records)
	return records, nil
}

// loadJob reads and validates one job posting record.
func loadJob(path string) (*types.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	if err := schemas.ValidateJobPosting(data); err != nil {
		return nil, fmt.Errorf("invalid job record %s: %w", path, err)
	}

	var job types.JobPosting
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job record: %w", err)
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job posting: %w", err)
	}
	return &job, nil
}

// loadCandidate reads and validates one candidate record.
func loadCandidate(path string) (*types.CandidateRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate file: %w", err)
	}
	if err := schemas.ValidateCandidateRecord(data); err != nil {
		return nil, fmt.Errorf("invalid candidate record %s: %w", path, err)
	}

	var record types.CandidateRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse candidate record: %w", err)
	}
	return &record, nil
}
