package x12

import (
	"math"
	"strconv"
	"time"
)

// parseCents converts an X12 decimal amount ("100.00", "-12.5", "80") to
// integer cents. Empty or unparseable tokens become 0; adjustment amounts are
// best-effort data, not structure.
func parseCents(s string) int64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int64(math.Round(v * 100))
}

// parseDate8 converts an exactly-eight-digit CCYYMMDD token to a calendar
// date. Any other shape returns nil; the raw token is kept regardless.
func parseDate8(s string) *time.Time {
	if len(s) != 8 {
		return nil
	}
	t, err := time.Parse("20060102", s)
	if err != nil {
		return nil
	}
	return &t
}
