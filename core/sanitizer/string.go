package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Trim removes leading and trailing whitespace from the string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts the string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper converts the string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// TrimToLower trims whitespace and converts to lowercase in one operation.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MaxLength truncates s to maxLen runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

// RemoveExtraWhitespace collapses runs of whitespace into one space.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars drops control characters except newlines and tabs.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// SingleLine replaces line breaks with spaces and collapses whitespace.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return RemoveExtraWhitespace(s)
}

// NormalizeEmail trims and lowercases an address. Inner spaces are removed.
func NormalizeEmail(s string) string {
	return strings.ReplaceAll(TrimToLower(s), " ", "")
}
