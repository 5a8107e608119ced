package x12

import (
	"fmt"
	"strings"
)

// requiredIdentifiers are the segment IDs a structurally sound 835 must
// contain somewhere in its text.
var requiredIdentifiers = []string{"ISA", "GS", "ST", "BPR", "TRN", "N1", "SE", "GE", "IEA"}

// Validate835 is a pre-flight structural check over the raw text, without
// tokenizing. It returns human-readable problems; an empty slice means the
// content is worth committing to a full parse. It never fails.
func Validate835(content string) []string {
	var problems []string

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		problems = append(problems, "content is empty")
		return problems
	}

	if !strings.HasPrefix(trimmed, "ISA") {
		problems = append(problems, "content does not begin with ISA interchange header")
	}

	for _, id := range requiredIdentifiers {
		if !strings.Contains(content, id) {
			problems = append(problems, fmt.Sprintf("required segment %s not found", id))
		}
	}

	if !strings.Contains(content, "CLP") {
		problems = append(problems, "no claim payment (CLP) segments found")
	}

	return problems
}
