package x12

import "testing"

func isCLP(s Segment) bool { return s.Kind() == KindCLP }
func isPLB(s Segment) bool { return s.Kind() == KindPLB }

func TestWindows_NextAnchorWins(t *testing.T) {
	segs := []Segment{
		NewSegment("CLP", "A"),
		NewSegment("CAS", "CO", "45", "10.00"),
		NewSegment("CLP", "B"),
		NewSegment("CAS", "PR", "1", "5.00"),
		NewSegment("PLB", "X"),
	}
	windows := Windows(segs, 0, len(segs), isCLP, isPLB)
	if len(windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(windows))
	}
	if windows[0] != (Window{Start: 0, End: 2}) {
		t.Errorf("first window = %+v, want {0 2}", windows[0])
	}
	if windows[1] != (Window{Start: 2, End: 4}) {
		t.Errorf("second window = %+v, want {2 4}", windows[1])
	}
}

func TestWindows_StopBeatsEnd(t *testing.T) {
	segs := []Segment{
		NewSegment("CLP", "A"),
		NewSegment("CAS", "CO", "45", "10.00"),
		NewSegment("PLB", "X"),
		NewSegment("SE", "5", "0001"),
	}
	windows := Windows(segs, 0, len(segs), isCLP, isPLB)
	if len(windows) != 1 {
		t.Fatalf("expected 1 window, got %d", len(windows))
	}
	if windows[0].End != 2 {
		t.Errorf("window end = %d, want 2 (the PLB index)", windows[0].End)
	}
}

func TestWindows_EndOfSequence(t *testing.T) {
	segs := []Segment{
		NewSegment("CLP", "A"),
		NewSegment("CAS", "CO", "45", "10.00"),
	}
	windows := Windows(segs, 0, len(segs), isCLP, isPLB)
	if len(windows) != 1 || windows[0].End != 2 {
		t.Fatalf("unexpected windows: %+v", windows)
	}
}

func TestWindows_NoAnchors(t *testing.T) {
	segs := []Segment{NewSegment("BPR", "I"), NewSegment("TRN", "1")}
	if windows := Windows(segs, 0, len(segs), isCLP, nil); len(windows) != 0 {
		t.Fatalf("expected no windows, got %+v", windows)
	}
}

func TestWindows_NilStop(t *testing.T) {
	segs := []Segment{
		NewSegment("SVC", "HC:1"),
		NewSegment("CAS", "CO", "45", "1.00"),
		NewSegment("SVC", "HC:2"),
	}
	windows := Windows(segs, 0, len(segs), func(s Segment) bool { return s.Kind() == KindSVC }, nil)
	if len(windows) != 2 || windows[0].End != 2 || windows[1].End != 3 {
		t.Fatalf("unexpected windows: %+v", windows)
	}
}
