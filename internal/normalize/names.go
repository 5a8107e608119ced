package normalize

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// NormalizeName lowercases, collapses whitespace, and trims the input.
// Returns nil if the result is empty. Used for payer-name matching columns.
func NormalizeName(v string) *string {
	s := strings.TrimSpace(v)
	if s == "" {
		return nil
	}
	s = strings.ToLower(s)
	s = multiSpace.ReplaceAllString(s, " ")
	return &s
}
