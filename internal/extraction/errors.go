package extraction

import "fmt"

// UnsupportedFormatError indicates a document extension outside the accepted
// set (pdf, doc, docx, txt).
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Format)
}

// BackendUnavailableError indicates that the extraction backend for a format
// is not available in this runtime.
type BackendUnavailableError struct {
	Format  string
	Backend string
}

func (e *BackendUnavailableError) Error() string {
	return fmt.Sprintf("extraction backend %s for format %s is unavailable", e.Backend, e.Format)
}

// ExtractionError indicates an I/O, decode, or malformed-document failure
// while extracting text.
type ExtractionError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed for %s: %s", e.Path, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
