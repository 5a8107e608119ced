package x12

// summarize recomputes the reconciliation totals from the parsed claims and
// provider adjustments. declaredCents is the BPR total carried through for
// the posting collaborator to reconcile against; it is never derived here.
func summarize(claims []ClaimPayment, providerAdjs []ProviderAdjustment, declaredCents int64) Summary {
	s := Summary{
		TotalClaims:   len(claims),
		DeclaredCents: declaredCents,
	}

	for _, claim := range claims {
		s.BilledCents += claim.BilledCents
		s.PaidCents += claim.PaidCents
		s.PatientRespCents += claim.PatientRespCents

		switch {
		case claim.Status == StatusDenied:
			s.ClaimsDenied++
		case claim.BilledCents > 0 && claim.PaidCents >= claim.BilledCents:
			s.ClaimsPaidInFull++
		default:
			s.ClaimsPartiallyPaid++
		}

		bucketAdjustments(&s, claim.Adjustments)
		for _, svc := range claim.Services {
			bucketAdjustments(&s, svc.Adjustments)
		}
	}

	for _, adj := range providerAdjs {
		s.ProviderAdjCents += adj.AmountCents
	}
	return s
}

// bucketAdjustments splits adjustment amounts into contractual versus other.
// Patient responsibility is excluded from both: it is owed by the patient,
// not written off by anyone.
func bucketAdjustments(s *Summary, adjs []AdjustmentInfo) {
	for _, adj := range adjs {
		switch adj.Group {
		case GroupContractual:
			s.ContractualAdjCents += adj.AmountCents
		case GroupPatientResp:
			// not a write-off
		default:
			s.OtherAdjCents += adj.AmountCents
		}
	}
}
