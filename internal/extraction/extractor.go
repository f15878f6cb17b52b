// Package extraction converts stored résumé documents (PDF, DOC/DOCX, plain
// text) into a single raw text blob.
package extraction

import "strings"

// Extractor converts one document format into plain text.
type Extractor interface {
	// Extract reads the document at path and returns its text content.
	Extract(path string) (string, error)
	// Available reports whether the backing format library is usable in
	// this runtime.
	Available() bool
}

// strategies maps a normalized format tag to its extraction strategy.
// Availability is queried explicitly rather than discovered through failures.
var strategies = map[string]Extractor{
	"pdf":  pdfExtractor{},
	"docx": docxExtractor{},
	"doc":  docxExtractor{},
	"txt":  txtExtractor{},
}

// Text extracts the text content of the document at path. declaredFormat is
// the extension the boundary derived from the uploaded filename; a leading
// dot and mixed case are tolerated.
func Text(path, declaredFormat string) (string, error) {
	format := strings.ToLower(strings.TrimPrefix(declaredFormat, "."))

	strategy, ok := strategies[format]
	if !ok {
		return "", &UnsupportedFormatError{Format: format}
	}
	if !strategy.Available() {
		return "", &BackendUnavailableError{Format: format, Backend: backendName(format)}
	}

	return strategy.Extract(path)
}

func backendName(format string) string {
	switch format {
	case "pdf":
		return "ledongthuc/pdf"
	case "doc", "docx":
		return "nguyenthenguyen/docx"
	default:
		return "stdlib"
	}
}
