package x12

// Entity qualifiers for the N1 identification loops.
const (
	EntityPayer = "PR"
	EntityPayee = "PE"
)

// parseParty extracts one payer/payee identification loop. The loop starts
// at the first N1 carrying the qualifier and runs until the next loop opener
// (another N1, an LX, or the first CLP). A file without the loop yields the
// zero value; payee detail in particular is often omitted.
func parseParty(segs []Segment, qualifier string) PartyInfo {
	start := -1
	for i, s := range segs {
		if s.Kind() == KindN1 && s.Element(1) == qualifier {
			start = i
			break
		}
	}
	if start < 0 {
		return PartyInfo{}
	}

	end := len(segs)
	for i := start + 1; i < len(segs); i++ {
		k := segs[i].Kind()
		if k == KindN1 || k == KindLX || k == KindCLP {
			end = i
			break
		}
	}

	anchor := segs[start]
	party := PartyInfo{
		Name:        anchor.Element(2),
		IDQualifier: anchor.Element(3),
		ID:          anchor.Element(4),
	}

	haveContact := false
	for i := start + 1; i < end; i++ {
		seg := segs[i]
		switch seg.Kind() {
		case KindREF:
			party.AdditionalIDs = append(party.AdditionalIDs, Reference{
				Qualifier:   seg.Element(1),
				Value:       seg.Element(2),
				Description: refDescriptions[seg.Element(1)],
			})
		case KindPER:
			if !haveContact {
				party.Contact = parseContact(seg)
				haveContact = true
			}
		case KindN3:
			party.Address.Line1 = seg.Element(1)
			party.Address.Line2 = seg.Element(2)
		case KindN4:
			party.Address.City = seg.Element(1)
			party.Address.State = seg.Element(2)
			party.Address.Zip = seg.Element(3)
			party.Address.Country = seg.Element(4)
		}
	}
	return party
}

// parseContact dispatches the PER segment's up-to-three communication pairs
// by qualifier. Unknown qualifiers are skipped.
func parseContact(per Segment) ContactInfo {
	c := ContactInfo{
		FunctionCode: per.Element(1),
		Name:         per.Element(2),
	}
	for _, at := range []int{3, 5, 7} {
		value := per.Element(at + 1)
		if value == "" {
			continue
		}
		switch per.Element(at) {
		case "TE":
			c.Phone = value
		case "FX":
			c.Fax = value
		case "EM":
			c.Email = value
		case "UR":
			c.URL = value
		case "EX":
			c.Extension = value
		}
	}
	return c
}
