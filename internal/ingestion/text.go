// Package ingestion normalizes job description input before keyword
// extraction: plain text cleanup and HTML-to-text conversion for saved
// postings.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var excessiveBlankLines = regexp.MustCompile(`\n\n\n+`)

// CleanText normalizes line endings, trims trailing whitespace per line, and
// collapses runs of blank lines.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, strings.TrimRight(line, " \t"))
	}

	result := strings.Join(cleaned, "\n")
	result = excessiveBlankLines.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// ReadDescription loads a job description from a file. HTML files are
// converted to plain text first; everything else is treated as text.
func ReadDescription(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read description file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err := HTMLToText(string(data))
		if err != nil {
			return "", fmt.Errorf("failed to convert HTML description: %w", err)
		}
		return text, nil
	default:
		return CleanText(string(data)), nil
	}
}
