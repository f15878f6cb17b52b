package parsing

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/ats-engine/internal/types"
)

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// phonePatterns are tried in order; the first match wins. Variants cover US
// numbers with and without country code, international numbers, generic
// separator styles, and bare ten-digit runs.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+?1[-.\s]?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`),
	regexp.MustCompile(`\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`),
	regexp.MustCompile(`\+[0-9]{1,4}[-.\s]?\(?[0-9]{1,4}\)?[-.\s]?[0-9]{3,4}[-.\s]?[0-9]{3,4}`),
	regexp.MustCompile(`[0-9]{3}[-.\s][0-9]{3}[-.\s][0-9]{4}`),
	regexp.MustCompile(`\([0-9]{3}\)\s*[0-9]{3}[-.\s]?[0-9]{4}`),
	regexp.MustCompile(`\b[0-9]{10}\b`),
}

var (
	linkedinPattern = regexp.MustCompile(`(?:https?://)?(?:www\.)?linkedin\.com/(?:in|pub)/[A-Za-z0-9_-]+`)
	nonDigit        = regexp.MustCompile(`[^0-9]`)
)

// nameSkipTokens mark header-like lines that cannot be a candidate name.
var nameSkipTokens = []string{
	"resume", "cv", "curriculum", "vitae", "@", "phone", "email", "address",
}

const (
	nameScanLines = 5
	maxNameLength = 50
	minPhoneDigit = 7
	maxPhoneDigit = 15
)

func extractContactInfo(text string) types.ContactInfo {
	return types.ContactInfo{
		Name:     extractName(text),
		Email:    extractEmail(text),
		Phone:    extractPhone(text),
		LinkedIn: extractLinkedIn(text),
	}
}

// extractEmail returns the first email-shaped match that contains an "@" and
// a "." after it.
func extractEmail(text string) string {
	for _, match := range emailPattern.FindAllString(text, -1) {
		at := strings.Index(match, "@")
		if at >= 0 && strings.Contains(match[at:], ".") {
			return match
		}
	}
	return ""
}

// extractPhone tries the pattern variants in order, keeps the digits of the
// first match with an acceptable digit count, and reformats exactly ten
// digits as (XXX) XXX-XXXX.
func extractPhone(text string) string {
	for _, pattern := range phonePatterns {
		match := pattern.FindString(text)
		if match == "" {
			continue
		}
		digits := nonDigit.ReplaceAllString(match, "")
		if len(digits) < minPhoneDigit || len(digits) > maxPhoneDigit {
			continue
		}
		if len(digits) == 10 {
			return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
		}
		return digits
	}
	return ""
}

// extractLinkedIn finds a profile URL of a known path shape and normalizes it
// to an absolute https URL.
func extractLinkedIn(text string) string {
	match := linkedinPattern.FindString(strings.ToLower(text))
	if match == "" {
		return ""
	}
	if !strings.HasPrefix(match, "http") {
		match = "https://" + match
	}
	return match
}

// extractName scans the first few non-blank lines for one that looks like a
// person's name: 2-4 whitespace-separated alphabetic tokens (dots allowed for
// initials), on a line free of header tokens.
func extractName(text string) string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
		if len(lines) == nameScanLines {
			break
		}
	}

	for _, line := range lines {
		if containsSkipToken(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if !allAlphabetic(words) {
			continue
		}
		if len(line) > maxNameLength {
			line = line[:maxNameLength]
		}
		return line
	}
	return ""
}

func containsSkipToken(line string) bool {
	lower := strings.ToLower(line)
	for _, token := range nameSkipTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

func allAlphabetic(words []string) bool {
	for _, word := range words {
		stripped := strings.ReplaceAll(word, ".", "")
		if stripped == "" {
			return false
		}
		for _, r := range stripped {
			if !unicode.IsLetter(r) {
				return false
			}
		}
	}
	return true
}
