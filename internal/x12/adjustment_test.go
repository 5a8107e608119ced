package x12

import "testing"

func TestExpandAdjustments_ThreeTriples(t *testing.T) {
	cas := NewSegment("CAS", "CO", "45", "20.00", "", "97", "15.50", "2", "253", "1.00", "")
	adjs := expandAdjustments(cas)
	if len(adjs) != 3 {
		t.Fatalf("expected 3 adjustments, got %d", len(adjs))
	}
	for i, adj := range adjs {
		if adj.Group != GroupContractual {
			t.Errorf("adjustment %d group = %q, want CO", i, adj.Group)
		}
	}
	if adjs[0].ReasonCode != "45" || adjs[0].AmountCents != 2000 {
		t.Errorf("first adjustment = %+v", adjs[0])
	}
	if adjs[1].ReasonCode != "97" || adjs[1].AmountCents != 1550 || adjs[1].Quantity != "2" {
		t.Errorf("second adjustment = %+v", adjs[1])
	}
	if adjs[2].ReasonCode != "253" || adjs[2].AmountCents != 100 {
		t.Errorf("third adjustment = %+v", adjs[2])
	}
}

func TestExpandAdjustments_SingleTriple(t *testing.T) {
	adjs := expandAdjustments(NewSegment("CAS", "PR", "1", "25.00"))
	if len(adjs) != 1 {
		t.Fatalf("expected 1 adjustment, got %d", len(adjs))
	}
	if adjs[0].Group != GroupPatientResp || adjs[0].AmountCents != 2500 {
		t.Errorf("adjustment = %+v", adjs[0])
	}
}

func TestExpandAdjustments_StopsAtEmptyReason(t *testing.T) {
	cas := NewSegment("CAS", "OA", "23", "10.00", "", "", "99.00", "", "94", "5.00")
	adjs := expandAdjustments(cas)
	if len(adjs) != 1 {
		t.Fatalf("expected expansion to stop at empty reason slot, got %d entries", len(adjs))
	}
}

func TestExpandAdjustments_NegativeAmount(t *testing.T) {
	adjs := expandAdjustments(NewSegment("CAS", "CR", "45", "-20.00"))
	if len(adjs) != 1 || adjs[0].AmountCents != -2000 {
		t.Fatalf("reversal amount should stay negative, got %+v", adjs)
	}
}

func TestExpandAdjustments_EmptyAmountDefaultsZero(t *testing.T) {
	adjs := expandAdjustments(NewSegment("CAS", "CO", "45"))
	if len(adjs) != 1 || adjs[0].AmountCents != 0 {
		t.Fatalf("expected one zero-amount adjustment, got %+v", adjs)
	}
}

func TestParseProviderAdjustments_MultiPair(t *testing.T) {
	segs := []Segment{
		NewSegment("CLP", "A", "1", "10.00", "10.00"),
		NewSegment("PLB", "1234567890", "20241231", "WO:CLAIM001", "25.00", "L6", "-5.00"),
	}
	adjs := parseProviderAdjustments(segs, testDelims)
	if len(adjs) != 2 {
		t.Fatalf("expected 2 provider adjustments, got %d", len(adjs))
	}
	if adjs[0].ProviderID != "1234567890" || adjs[0].FiscalPeriod != "20241231" {
		t.Errorf("first adjustment header = %+v", adjs[0])
	}
	if adjs[0].Code != "WO" || adjs[0].ReferenceID != "CLAIM001" || adjs[0].AmountCents != 2500 {
		t.Errorf("first adjustment = %+v", adjs[0])
	}
	if adjs[0].Description != "Overpayment Recovery" {
		t.Errorf("WO description = %q", adjs[0].Description)
	}
	if adjs[1].Code != "L6" || adjs[1].ReferenceID != "" || adjs[1].AmountCents != -500 {
		t.Errorf("second adjustment = %+v", adjs[1])
	}
}

func TestParseProviderAdjustments_NonePresent(t *testing.T) {
	segs := []Segment{NewSegment("CLP", "A", "1", "10.00", "10.00")}
	if adjs := parseProviderAdjustments(segs, testDelims); len(adjs) != 0 {
		t.Fatalf("expected none, got %+v", adjs)
	}
}
