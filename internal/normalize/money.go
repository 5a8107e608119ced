package normalize

import "fmt"

// FormatCents renders integer cents as a two-decimal dollar string for
// display and export. Negative amounts keep their sign.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
