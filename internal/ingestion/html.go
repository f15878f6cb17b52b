package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLToText strips markup from an HTML job posting, dropping script and
// style content, and returns cleaned visible text.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript").Remove()

	// Block-level elements become line breaks so headings and list items
	// stay on their own lines.
	doc.Find("br, p, div, li, h1, h2, h3, h4, h5, h6, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return CleanText(doc.Text()), nil
}
