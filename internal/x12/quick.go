package x12

import (
	"regexp"
	"strings"
)

// Fast-path extractors: independent pattern scans over the raw text for
// callers that need a cheap preview (search indexing, file listings) without
// a full structural parse. Absence of a match is not an error.

// quickSeps returns regexp-quoted element and terminator characters to scan
// with. When the content opens with a full ISA header the declared separators
// are used; otherwise fall back to the conventional '*' and '~'.
func quickSeps(content string) (sep, term string) {
	if strings.HasPrefix(content, "ISA") && len(content) >= isaLength {
		return regexp.QuoteMeta(content[3:4]), regexp.QuoteMeta(content[105:106])
	}
	return `\*`, `~`
}

// QuickTraceNumber scans for the TRN check/EFT trace number.
func QuickTraceNumber(content string) (string, bool) {
	sep, term := quickSeps(content)
	re := regexp.MustCompile(`TRN` + sep + `\d+` + sep + `([^` + sep + term + `\s]+)`)
	m := re.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// QuickPayerName scans for the payer identification N1*PR name.
func QuickPayerName(content string) (string, bool) {
	sep, term := quickSeps(content)
	re := regexp.MustCompile(`N1` + sep + `PR` + sep + `([^` + sep + term + `]+)`)
	m := re.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// QuickTotalAmount scans for the BPR declared payment total, in cents.
func QuickTotalAmount(content string) (int64, bool) {
	sep, _ := quickSeps(content)
	re := regexp.MustCompile(`BPR` + sep + `[^` + sep + `]*` + sep + `(-?\d+(?:\.\d+)?)`)
	m := re.FindStringSubmatch(content)
	if m == nil {
		return 0, false
	}
	return parseCents(m[1]), true
}
