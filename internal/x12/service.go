package x12

// refQualifierLineControl is the REF qualifier whose value is additionally
// captured as the service line's control number.
const refQualifierLineControl = "6R"

// parseServices extracts the service lines inside a claim slice. Each SVC
// anchors a sub-window ending at the next SVC or the slice end. Line numbers
// are assigned 1..n in parse order; the source format carries none.
func parseServices(segs []Segment, w Window, d Delimiters) []ServicePayment {
	windows := Windows(segs, w.Start, w.End,
		func(s Segment) bool { return s.Kind() == KindSVC },
		nil,
	)

	services := make([]ServicePayment, 0, len(windows))
	for i, sw := range windows {
		svc := parseService(segs, sw, d)
		svc.LineNumber = i + 1
		services = append(services, svc)
	}
	return services
}

// parseService builds one ServicePayment from its sub-window.
func parseService(segs []Segment, w Window, d Delimiters) ServicePayment {
	anchor := segs[w.Start]

	svc := ServicePayment{
		ChargedCents: parseCents(anchor.Element(2)),
		PaidCents:    parseCents(anchor.Element(3)),
		RevenueCode:  anchor.Element(4),
		Units:        anchor.Element(5),
	}

	// SVC01 is a composite: qualifier, procedure code, up to four modifiers.
	procedure := anchor.Components(1, d)
	if len(procedure) > 0 {
		svc.ProcedureQualifier = procedure[0]
	}
	if len(procedure) > 1 {
		svc.ProcedureCode = procedure[1]
	}
	for i := 2; i < len(procedure) && i < 6; i++ {
		if procedure[i] != "" {
			svc.Modifiers = append(svc.Modifiers, procedure[i])
		}
	}

	for i := w.Start + 1; i < w.End; i++ {
		seg := segs[i]
		switch seg.Kind() {
		case KindCAS:
			svc.Adjustments = append(svc.Adjustments, expandAdjustments(seg)...)
		case KindREF:
			ref := Reference{
				Qualifier:   seg.Element(1),
				Value:       seg.Element(2),
				Description: refDescriptions[seg.Element(1)],
			}
			svc.References = append(svc.References, ref)
			if ref.Qualifier == refQualifierLineControl {
				svc.ControlNumber = ref.Value
			}
		case KindDTM:
			svc.Dates = append(svc.Dates, DateInfo{
				Qualifier:   seg.Element(1),
				Date:        seg.Element(2),
				Parsed:      parseDate8(seg.Element(2)),
				Description: dtmDescriptions[seg.Element(1)],
			})
		case KindLQ:
			// A remark code qualifies the adjustment that precedes it. With
			// no adjustment yet on this line the remark has no referent and
			// is dropped.
			if n := len(svc.Adjustments); n > 0 {
				svc.Adjustments[n-1].RemarkCode = seg.Element(2)
			}
		}
	}
	return svc
}
