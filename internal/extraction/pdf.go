package extraction

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfExtractor extracts text from PDF documents page by page.
type pdfExtractor struct{}

func (pdfExtractor) Available() bool { return true }

func (pdfExtractor) Extract(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to open pdf", Cause: err}
	}
	defer func() { _ = file.Close() }()

	// Pages are concatenated in order with newline separators. A page that
	// yields no text contributes an empty string, not an error.
	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		if i > 1 {
			sb.WriteString("\n")
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}
