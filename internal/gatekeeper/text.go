package gatekeeper

import (
	"regexp"
	"strings"
)

// TextIssue classifies why a free-text field failed the quality check.
type TextIssue string

const (
	TextEmpty           TextIssue = "EMPTY"
	TextTooShort        TextIssue = "TOO_SHORT"
	TextNoLetters       TextIssue = "NO_LETTERS"
	TextLowEntropy      TextIssue = "LOW_ENTROPY"
	TextNotEnoughTokens TextIssue = "NOT_ENOUGH_TOKENS"
)

// TextOptions configures a single ValidateText call. Zero values fall back
// to minLen 3 and minTokens 1.
type TextOptions struct {
	MinLen     int
	MinTokens  int
	AllowEmpty bool
}

var (
	letterPattern    = regexp.MustCompile(`[A-Za-zА-Яа-яЁё]`)
	tokenSplitter    = regexp.MustCompile(`[^A-Za-zА-Яа-яЁё0-9]+`)
	spaceCollapser   = regexp.MustCompile(`\s+`)
	whitespaceOnly   = regexp.MustCompile(`\s`)
	lowEntropyMinLen = 6
)

// NormalizeText trims the value and collapses internal whitespace runs into
// single spaces.
func NormalizeText(v string) string {
	return spaceCollapser.ReplaceAllString(strings.TrimSpace(v), " ")
}

// ValidateText normalizes the candidate string and classifies it. Checks run
// in a fixed order and the first failure wins; on success the normalized
// value is returned.
func ValidateText(raw string, opts TextOptions) (string, TextIssue, bool) {
	value := NormalizeText(raw)

	if value == "" {
		if opts.AllowEmpty {
			return "", "", true
		}
		return value, TextEmpty, false
	}

	minLen := opts.MinLen
	if minLen <= 0 {
		minLen = 3
	}
	if len([]rune(value)) < minLen {
		return value, TextTooShort, false
	}

	if !letterPattern.MatchString(value) {
		return value, TextNoLetters, false
	}

	if isLowEntropyRepeat(value) {
		return value, TextLowEntropy, false
	}

	minTokens := opts.MinTokens
	if minTokens > 1 {
		if len(meaningfulTokens(value)) < minTokens {
			return value, TextNotEnoughTokens, false
		}
	}

	return value, "", true
}

// isLowEntropyRepeat reports whether the value, with whitespace removed, is
// a single rune repeated at least six times.
func isLowEntropyRepeat(s string) bool {
	stripped := whitespaceOnly.ReplaceAllString(s, "")
	runes := []rune(stripped)
	if len(runes) < lowEntropyMinLen {
		return false
	}
	first := runes[0]
	for _, r := range runes[1:] {
		if r != first {
			return false
		}
	}
	return true
}

// meaningfulTokens splits on non-alphanumeric boundaries and keeps tokens of
// at least two runes.
func meaningfulTokens(s string) []string {
	parts := tokenSplitter.Split(s, -1)
	var out []string
	for _, part := range parts {
		if len([]rune(part)) >= 2 {
			out = append(out, part)
		}
	}
	return out
}

// issueNote renders a human-readable diagnostic for a failed text check.
func issueNote(field string, issue TextIssue) string {
	switch issue {
	case TextEmpty:
		return "Field \"" + field + "\" is empty."
	case TextTooShort:
		return "Field \"" + field + "\" is too short."
	case TextNoLetters:
		return "Field \"" + field + "\" contains no letters (digits/symbols only)."
	case TextLowEntropy:
		return "Field \"" + field + "\" is a repeated-character filler."
	case TextNotEnoughTokens:
		return "Field \"" + field + "\" needs at least two meaningful words."
	default:
		return "Field \"" + field + "\" is filled in incorrectly."
	}
}
