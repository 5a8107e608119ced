package normalize

import (
	"strings"
	"time"
)

// Date formats seen in 835 files and payer sidecar metadata. CCYYMMDD is the
// X12 standard; the rest show up in clearinghouse-massaged copies.
var dateFormats = []string{
	"20060102",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
}

// ParseDate attempts to parse a date string in multiple common formats.
// Returns nil if the input is empty or unparseable.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, fmt := range dateFormats {
		if t, err := time.Parse(fmt, s); err == nil {
			return &t
		}
	}
	return nil
}
