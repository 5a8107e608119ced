// mkfixture generates a synthetic 835 remittance fixture with a configurable
// number of claims for parser and ingest testing.
// Usage: go run ./cmd/mkfixture --out testdata/synthetic.835 --claims 25
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
)

var (
	firstNames = []string{"JOHN", "JANE", "MARIA", "ROBERT", "LINDA", "DAVID", "SUSAN", "CARLOS"}
	lastNames  = []string{"DOE", "SMITH", "GARCIA", "JOHNSON", "LEE", "BROWN", "WILSON", "NGUYEN"}
	procCodes  = []string{"99213", "99214", "99203", "80053", "85025", "71046", "93000", "36415"}
	reasonsCO  = []string{"45", "97", "16"}
	reasonsPR  = []string{"1", "2", "3"}
)

func main() {
	out := flag.String("out", "testdata/synthetic.835", "output file path")
	claims := flag.Int("claims", 10, "number of claims to generate")
	maxLines := flag.Int("max-lines", 4, "max service lines per claim")
	seed := flag.Int64("seed", 1, "random seed")
	denyRate := flag.Float64("deny-rate", 0.2, "fraction of claims denied")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	var body []string
	var totalPaidCents int64

	for c := 0; c < *claims; c++ {
		lines := 1 + rng.Intn(*maxLines)
		denied := rng.Float64() < *denyRate

		var billedCents, paidCents, patientCents int64
		type line struct {
			code                 string
			charged, paid, adjCO int64
		}
		svcLines := make([]line, lines)
		for i := range svcLines {
			charged := int64(2500 + rng.Intn(40000))
			var paid, adj int64
			if !denied {
				adj = charged * int64(10+rng.Intn(30)) / 100
				paid = charged - adj
			} else {
				adj = charged
			}
			svcLines[i] = line{
				code:    procCodes[rng.Intn(len(procCodes))],
				charged: charged,
				paid:    paid,
				adjCO:   adj,
			}
			billedCents += charged
			paidCents += paid
		}

		statusCode := "1"
		if denied {
			statusCode = "4"
		} else if rng.Intn(3) == 0 {
			patientCents = int64(500 + rng.Intn(3000))
			if patientCents > paidCents {
				patientCents = paidCents
			}
			paidCents -= patientCents
		}
		totalPaidCents += paidCents

		claimNum := fmt.Sprintf("PCN%05d", c+1)
		body = append(body, fmt.Sprintf("CLP*%s*%s*%s*%s*%s*MC*ICN%07d*11*1",
			claimNum, statusCode, dollars(billedCents), dollars(paidCents),
			dollars(patientCents), c+1))
		body = append(body, fmt.Sprintf("NM1*QC*1*%s*%s****MI*MEMBER%04d",
			lastNames[rng.Intn(len(lastNames))],
			firstNames[rng.Intn(len(firstNames))], c+1))
		if patientCents > 0 {
			body = append(body, fmt.Sprintf("CAS*PR*%s*%s",
				reasonsPR[rng.Intn(len(reasonsPR))], dollars(patientCents)))
		}
		for i, sl := range svcLines {
			body = append(body, fmt.Sprintf("SVC*HC:%s*%s*%s**1",
				sl.code, dollars(sl.charged), dollars(sl.paid)))
			body = append(body, fmt.Sprintf("DTM*472*2024%02d%02d",
				1+rng.Intn(12), 1+rng.Intn(28)))
			if sl.adjCO > 0 {
				body = append(body, fmt.Sprintf("CAS*CO*%s*%s",
					reasonsCO[rng.Intn(len(reasonsCO))], dollars(sl.adjCO)))
			}
			body = append(body, fmt.Sprintf("REF*6R*%s-%d", claimNum, i+1))
		}
	}

	isaFields := []string{
		"00", strings.Repeat(" ", 10),
		"00", strings.Repeat(" ", 10),
		"ZZ", "PAYERID        ",
		"ZZ", "PROVIDERID     ",
		"240315", "1200", "^", "00501", "000000905", "0", "P", ":",
	}
	header := []string{
		"ISA*" + strings.Join(isaFields, "*"),
		"GS*HP*PAYERID*PROVIDERID*20240315*1200*1*X*005010X221A1",
		"ST*835*0001",
		fmt.Sprintf("BPR*I*%s*C*ACH*CCP*01*999999992*DA*123456*1512345678**01*999988880*DA*98765*20240316",
			dollars(totalPaidCents)),
		"TRN*1*71700666555*1512345678",
		"N1*PR*SYNTHETIC HEALTH PLAN*XV*12345",
		"N1*PE*GOOD HEALTH CLINIC*XX*1234567890",
		"LX*1",
	}
	trailer := []string{
		fmt.Sprintf("SE*%d*0001", len(header)+len(body)-2+1),
		"GE*1*1",
		"IEA*1*000000905",
	}

	var sb strings.Builder
	for _, seg := range header {
		sb.WriteString(seg)
		sb.WriteString("~\n")
	}
	for _, seg := range body {
		sb.WriteString(seg)
		sb.WriteString("~\n")
	}
	for _, seg := range trailer {
		sb.WriteString(seg)
		sb.WriteString("~\n")
	}

	if err := os.WriteFile(*out, []byte(sb.String()), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d claims (%s total paid) to %s\n",
		*claims, dollars(totalPaidCents), *out)
}

// dollars renders cents as an X12 monetary value.
func dollars(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
