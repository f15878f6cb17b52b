package extraction

import (
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// docxExtractor extracts paragraph text from Word documents. Legacy binary
// .doc files are routed here too; the OOXML reader reports them as malformed,
// which surfaces as an ExtractionError.
type docxExtractor struct{}

var (
	paragraphEnd = regexp.MustCompile(`</w:p>`)
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
)

func (docxExtractor) Available() bool { return true }

func (docxExtractor) Extract(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to open document", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	return paragraphsToText(doc.Editable().GetContent()), nil
}

// paragraphsToText flattens document XML into plain text, joining paragraphs
// with newline separators in document order.
func paragraphsToText(content string) string {
	content = paragraphEnd.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")

	content = strings.ReplaceAll(content, "&amp;", "&")
	content = strings.ReplaceAll(content, "&lt;", "<")
	content = strings.ReplaceAll(content, "&gt;", ">")
	content = strings.ReplaceAll(content, "&quot;", `"`)
	content = strings.ReplaceAll(content, "&apos;", "'")

	return strings.TrimRight(content, "\n")
}
