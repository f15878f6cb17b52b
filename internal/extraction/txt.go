package extraction

import (
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// txtExtractor reads plain text files. It never depends on optional format
// backends.
type txtExtractor struct{}

func (txtExtractor) Available() bool { return true }

func (txtExtractor) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to read file", Cause: err}
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	// Permissive fallback for files saved with a legacy single-byte
	// encoding before declaring failure.
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to decode text", Cause: err}
	}
	return string(decoded), nil
}
