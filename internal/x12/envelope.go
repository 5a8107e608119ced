package x12

import "fmt"

// SegmentMissingError is a fatal structural failure: a required envelope
// segment is absent from the document.
type SegmentMissingError struct {
	ID string
}

func (e *SegmentMissingError) Error() string {
	return fmt.Sprintf("required segment %s not found", e.ID)
}

// envelope holds the five required header segments located by a forward scan.
type envelope struct {
	isa Segment
	gs  Segment
	st  Segment
	bpr Segment
	trn Segment
}

// requiredKinds drives both the envelope scan and the structural validator.
var requiredEnvelope = []struct {
	kind SegmentKind
	id   string
}{
	{KindISA, "ISA"},
	{KindGS, "GS"},
	{KindST, "ST"},
	{KindBPR, "BPR"},
	{KindTRN, "TRN"},
}

// extractEnvelope locates the first occurrence of each required header
// segment. Missing any of the five aborts the parse.
func extractEnvelope(segs []Segment) (envelope, error) {
	var env envelope
	for _, req := range requiredEnvelope {
		idx := indexOfKind(segs, 0, req.kind)
		if idx < 0 {
			return env, &SegmentMissingError{ID: req.id}
		}
		switch req.kind {
		case KindISA:
			env.isa = segs[idx]
		case KindGS:
			env.gs = segs[idx]
		case KindST:
			env.st = segs[idx]
		case KindBPR:
			env.bpr = segs[idx]
		case KindTRN:
			env.trn = segs[idx]
		}
	}
	return env, nil
}

// parseFinancial reads the BPR segment into FinancialInfo. The declared
// total is the payer's own figure and flows through to the summary unchanged.
func parseFinancial(bpr Segment) FinancialInfo {
	date := bpr.Element(16)
	return FinancialInfo{
		HandlingCode:      bpr.Element(1),
		TotalPaidCents:    parseCents(bpr.Element(2)),
		CreditDebitFlag:   bpr.Element(3),
		PaymentMethod:     bpr.Element(4),
		PaymentFormat:     bpr.Element(5),
		SenderRouting:     bpr.Element(7),
		SenderAccount:     bpr.Element(9),
		OriginatingCompID: bpr.Element(10),
		ReceiverRouting:   bpr.Element(13),
		ReceiverAccount:   bpr.Element(15),
		PaymentDate:       date,
		PaymentDateParsed: parseDate8(date),
	}
}

// parseTrace reads the TRN reassociation segment.
func parseTrace(trn Segment) TraceNumber {
	return TraceNumber{
		TraceType:       trn.Element(1),
		Number:          trn.Element(2),
		PayerIdentifier: trn.Element(3),
		SupplementalID:  trn.Element(4),
	}
}
