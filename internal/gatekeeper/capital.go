package gatekeeper

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	currencyStripper = regexp.MustCompile(`(?i)₽|руб\.?|rur|rub`)
	thousandsSuffix  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*[kк]`)
	nonDigit         = regexp.MustCompile(`[^0-9]`)
)

// ParseCapital converts a loosely formatted money value into a whole amount.
// It accepts numbers and strings like "100000", "100 000", "100k", "100к",
// "до 200000", "≈ 200000 руб". The second return is false when the value is
// absent or unparsable.
func ParseCapital(value any) (int64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int64(math.Round(v)), true
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return ParseCapital(f)
		}
		return 0, false
	case string:
		return parseCapitalString(v)
	default:
		return 0, false
	}
}

func parseCapitalString(raw string) (int64, bool) {
	s := strings.ToLower(raw)
	s = strings.ReplaceAll(s, ",", ".")
	s = currencyStripper.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	// 100k / 100к, but not inside a longer word ("100кг").
	if m := thousandsSuffix.FindStringSubmatchIndex(s); m != nil {
		if suffixBoundary(s, m[1]) {
			n, err := strconv.ParseFloat(s[m[2]:m[3]], 64)
			if err == nil {
				return int64(math.Round(n * 1000)), true
			}
		}
	}

	digits := nonDigit.ReplaceAllString(s, "")
	if digits == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// suffixBoundary reports whether the rune following the k/к suffix ends the
// token (end of string or a non-alphanumeric rune).
func suffixBoundary(s string, end int) bool {
	if end >= len(s) {
		return true
	}
	rest := []rune(s[end:])
	return !letterPattern.MatchString(string(rest[0])) && (rest[0] < '0' || rest[0] > '9')
}
