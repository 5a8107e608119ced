package x12

// expandAdjustments unpacks one CAS segment into its adjustment entries. The
// segment carries a group code followed by up to six (reason, amount,
// quantity) triples at fixed offsets; expansion stops at the first empty
// reason slot. Every triple becomes an independent entry sharing the group
// code, never a merged one.
func expandAdjustments(cas Segment) []AdjustmentInfo {
	group := AdjustmentGroup(cas.Element(1))
	var out []AdjustmentInfo
	for _, at := range []int{2, 5, 8, 11, 14, 17} {
		reason := cas.Element(at)
		if reason == "" {
			break
		}
		out = append(out, AdjustmentInfo{
			Group:       group,
			ReasonCode:  reason,
			AmountCents: parseCents(cas.Element(at + 1)),
			Quantity:    cas.Element(at + 2),
		})
	}
	return out
}

// parseProviderAdjustments expands every PLB segment found in segs. Each PLB
// carries a provider ID, a fiscal period date, and up to six (composite
// reason, amount) pairs; the composite splits into an adjustment code and an
// optional reference ID.
func parseProviderAdjustments(segs []Segment, d Delimiters) []ProviderAdjustment {
	var out []ProviderAdjustment
	for _, seg := range segs {
		if seg.Kind() != KindPLB {
			continue
		}
		providerID := seg.Element(1)
		fiscalPeriod := seg.Element(2)
		for _, at := range []int{3, 5, 7, 9, 11, 13} {
			composite := seg.Components(at, d)
			if len(composite) == 0 || composite[0] == "" {
				continue
			}
			adj := ProviderAdjustment{
				ProviderID:   providerID,
				FiscalPeriod: fiscalPeriod,
				Code:         composite[0],
				Description:  plbDescriptions[composite[0]],
				AmountCents:  parseCents(seg.Element(at + 1)),
			}
			if len(composite) > 1 {
				adj.ReferenceID = composite[1]
			}
			out = append(out, adj)
		}
	}
	return out
}
