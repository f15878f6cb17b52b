package types

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// CandidateRecord is the durable form of a parsed résumé. The storage
// collaborator persists it as one JSON document per candidate; the core only
// reads ParsedData and never mutates a loaded record.
type CandidateRecord struct {
	ID               string           `json:"id"`
	Filename         string           `json:"filename"`
	OriginalFilename string           `json:"original_filename"`
	UploadDate       string           `json:"upload_date"` // RFC3339
	ParsedData       CandidateProfile `json:"parsed_data"`
}

// NewCandidateRecord wraps a freshly parsed profile in a durable record with
// a generated ID and the current upload timestamp.
func NewCandidateRecord(filename, originalFilename string, profile CandidateProfile) CandidateRecord {
	return CandidateRecord{
		ID:               uuid.NewString(),
		Filename:         filename,
		OriginalFilename: originalFilename,
		UploadDate:       time.Now().UTC().Format(time.RFC3339),
		ParsedData:       profile,
	}
}

// SortByUploadDesc orders records newest-upload-first. Matching relies on
// this order so that score ties implicitly favor more recent uploads.
func SortByUploadDesc(records []CandidateRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].UploadDate > records[j].UploadDate
	})
}
