package x12

// NM1 role qualifiers dispatched at claim level.
const (
	roleQualifierPatient   = "QC"
	roleQualifierInsured   = "IL"
	roleQualifierCorrected = "74"
	roleQualifierRendering = "82"
)

// parseClaims runs the claim windowing over the full segment sequence. Each
// CLP anchors a claim whose slice ends at the next CLP, else at the first
// provider-level adjustment or transaction trailer, else at end of document.
// That precedence keeps trailer and PLB segments out of the last claim.
func parseClaims(segs []Segment, d Delimiters) []ClaimPayment {
	windows := Windows(segs, 0, len(segs),
		func(s Segment) bool { return s.Kind() == KindCLP },
		func(s Segment) bool { return s.Kind() == KindPLB || s.Kind() == KindSE },
	)

	claims := make([]ClaimPayment, 0, len(windows))
	for _, w := range windows {
		claims = append(claims, parseClaim(segs, w, d))
	}
	return claims
}

// parseClaim builds one ClaimPayment from its window. Claim-level segments
// are dispatched up to the first SVC; everything from there on belongs to the
// nested service windows.
func parseClaim(segs []Segment, w Window, d Delimiters) ClaimPayment {
	clp := segs[w.Start]
	status, desc := claimStatus(clp.Element(2))
	claim := ClaimPayment{
		ClaimNumber:        clp.Element(1),
		StatusCode:         clp.Element(2),
		Status:             status,
		StatusDescription:  desc,
		BilledCents:        parseCents(clp.Element(3)),
		PaidCents:          parseCents(clp.Element(4)),
		PatientRespCents:   parseCents(clp.Element(5)),
		FilingIndicator:    clp.Element(6),
		PayerControlNumber: clp.Element(7),
		FacilityType:       clp.Element(8),
		FrequencyCode:      clp.Element(9),
		DRGCode:            clp.Element(11),
		DRGWeight:          clp.Element(12),
	}

	firstService := w.End
	if idx := indexOfKind(segs[:w.End], w.Start+1, KindSVC); idx >= 0 {
		firstService = idx
	}

	for i := w.Start + 1; i < firstService; i++ {
		seg := segs[i]
		switch seg.Kind() {
		case KindCAS:
			claim.Adjustments = append(claim.Adjustments, expandAdjustments(seg)...)
		case KindNM1:
			dispatchName(&claim, seg)
		case KindMIA:
			if claim.Outpatient == nil {
				claim.Inpatient = parseInpatient(seg)
			}
		case KindMOA:
			if claim.Inpatient == nil {
				claim.Outpatient = parseOutpatient(seg)
			}
		case KindREF:
			claim.References = append(claim.References, Reference{
				Qualifier:   seg.Element(1),
				Value:       seg.Element(2),
				Description: refDescriptions[seg.Element(1)],
			})
		case KindDTM:
			claim.Dates = append(claim.Dates, DateInfo{
				Qualifier:   seg.Element(1),
				Date:        seg.Element(2),
				Parsed:      parseDate8(seg.Element(2)),
				Description: dtmDescriptions[seg.Element(1)],
			})
		case KindAMT:
			claim.Amounts = append(claim.Amounts, AmountInfo{
				Qualifier:   seg.Element(1),
				AmountCents: parseCents(seg.Element(2)),
				Description: amtDescriptions[seg.Element(1)],
			})
		case KindQTY:
			claim.Quantities = append(claim.Quantities, QuantityInfo{
				Qualifier:   seg.Element(1),
				Quantity:    seg.Element(2),
				Description: qtyDescriptions[seg.Element(1)],
			})
		}
	}

	claim.Services = parseServices(segs, Window{Start: firstService, End: w.End}, d)
	return claim
}

// dispatchName routes an NM1 segment to the claim identity slot matching its
// role qualifier. Unrecognized roles are ignored.
func dispatchName(claim *ClaimPayment, seg Segment) {
	name := &PersonName{
		LastOrOrgName: seg.Element(3),
		FirstName:     seg.Element(4),
		MiddleName:    seg.Element(5),
		Suffix:        seg.Element(7),
		IDQualifier:   seg.Element(8),
		ID:            seg.Element(9),
	}
	switch seg.Element(1) {
	case roleQualifierPatient:
		claim.Patient = name
	case roleQualifierInsured:
		claim.Insured = name
	case roleQualifierCorrected:
		claim.CorrectedInsured = name
	case roleQualifierRendering:
		claim.RenderingProvider = name
	}
}

func parseInpatient(mia Segment) *InpatientAdjudication {
	adj := &InpatientAdjudication{
		CoveredDays:     mia.Element(1),
		LifetimeReserve: mia.Element(3),
		DRGAmountCents:  parseCents(mia.Element(4)),
	}
	for _, at := range []int{5, 20, 21, 22, 23} {
		if code := mia.Element(at); code != "" {
			adj.RemarkCodes = append(adj.RemarkCodes, code)
		}
	}
	return adj
}

func parseOutpatient(moa Segment) *OutpatientAdjudication {
	adj := &OutpatientAdjudication{
		ReimbursementRate:   moa.Element(1),
		HCPCSPayableCents:   parseCents(moa.Element(2)),
		ESRDPaymentCents:    parseCents(moa.Element(8)),
		NonPayableProfCents: parseCents(moa.Element(9)),
	}
	for _, at := range []int{3, 4, 5, 6, 7} {
		if code := moa.Element(at); code != "" {
			adj.RemarkCodes = append(adj.RemarkCodes, code)
		}
	}
	return adj
}
