package x12

import "testing"

var testDelims = Delimiters{Element: '*', Component: ':', Terminator: '~'}

func TestTokenize_NewlinesAfterTerminator(t *testing.T) {
	content := "ST*835*0001~\nBPR*I*100.00*C*ACH~\r\nTRN*1*12345~\n"
	segs := Tokenize(content, testDelims)
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	if segs[0].ID != "ST" || segs[1].ID != "BPR" || segs[2].ID != "TRN" {
		t.Errorf("unexpected segment IDs: %s %s %s", segs[0].ID, segs[1].ID, segs[2].ID)
	}
}

func TestTokenize_DropsEmptyFragments(t *testing.T) {
	segs := Tokenize("ST*835*0001~~~  ~GE*1*1~", testDelims)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
}

func TestSegment_ElementOneBased(t *testing.T) {
	seg := NewSegment("CLP", "PCN001", "1", "100.00")
	if got := seg.Element(1); got != "PCN001" {
		t.Errorf("Element(1) = %q, want PCN001", got)
	}
	if got := seg.Element(3); got != "100.00" {
		t.Errorf("Element(3) = %q, want 100.00", got)
	}
	if got := seg.Element(0); got != "" {
		t.Errorf("Element(0) = %q, want empty", got)
	}
	if got := seg.Element(99); got != "" {
		t.Errorf("Element(99) = %q, want empty", got)
	}
}

func TestSegment_KindFallback(t *testing.T) {
	if kind := NewSegment("CLP", "X").Kind(); kind != KindCLP {
		t.Errorf("CLP kind = %v, want KindCLP", kind)
	}
	if kind := NewSegment("ZZZ", "X").Kind(); kind != KindOther {
		t.Errorf("ZZZ kind = %v, want KindOther", kind)
	}
}

func TestSegment_Components(t *testing.T) {
	seg := NewSegment("SVC", "HC:99213:25", "100.00")
	parts := seg.Components(1, testDelims)
	if len(parts) != 3 || parts[0] != "HC" || parts[1] != "99213" || parts[2] != "25" {
		t.Errorf("unexpected components: %v", parts)
	}
	if parts := seg.Components(9, testDelims); parts != nil {
		t.Errorf("Components(9) = %v, want nil", parts)
	}
}
