// Package x12 parses ANSI X12 005010X221 835 (Electronic Remittance Advice)
// transactions into a typed Remittance aggregate.
//
// X12 is delimiter-relative text: the separators are declared inside the
// fixed-width ISA header, and business entities are implicit loops of
// segments bounded only by the next loop's anchor. Parsing is a pure,
// synchronous transformation over an in-memory buffer; every sub-parser is a
// function over the flat segment sequence with explicit index bounds, so
// independent inputs can be parsed concurrently.
//
// Failures come in exactly two severities. A missing required envelope
// segment or a malformed ISA header aborts the parse with a typed error;
// everything else (unknown qualifiers, unknown status codes, absent optional
// loops) degrades silently to neutral defaults.
package x12

import "time"

// Parse converts one complete 835 interchange into a Remittance. The raw
// content is retained on the aggregate for audit.
func Parse(content string) (*Remittance, error) {
	delims, err := DetectDelimiters(content)
	if err != nil {
		return nil, err
	}

	segs := Tokenize(content, delims)

	env, err := extractEnvelope(segs)
	if err != nil {
		return nil, err
	}

	financial := parseFinancial(env.bpr)
	claims := parseClaims(segs, delims)
	providerAdjs := parseProviderAdjustments(segs, delims)

	return &Remittance{
		InterchangeControlNumber: env.isa.Element(13),
		GroupControlNumber:       env.gs.Element(6),
		TransactionControlNumber: env.st.Element(2),
		Financial:                financial,
		Trace:                    parseTrace(env.trn),
		Payer:                    parseParty(segs, EntityPayer),
		Payee:                    parseParty(segs, EntityPayee),
		Claims:                   claims,
		ProviderAdjustments:      providerAdjs,
		Summary:                  summarize(claims, providerAdjs, financial.TotalPaidCents),
		Raw:                      content,
		ParsedAt:                 time.Now().UTC(),
		Status:                   StatusAwaitingReview,
	}, nil
}
