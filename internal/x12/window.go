package x12

// Window is a half-open index range [Start, End) over a segment sequence.
// Start always points at the anchor segment that opened the loop.
type Window struct {
	Start int
	End   int
}

// Windows computes the implicit-loop slices within segs[start:end). Each
// segment matching anchor opens a window; the window closes at the next
// anchor match, else at the first later segment matching stop, else at end.
// That precedence order (next anchor > stop > end) is what keeps trailing
// document segments from being attributed to the last loop. stop may be nil.
func Windows(segs []Segment, start, end int, anchor, stop func(Segment) bool) []Window {
	if end > len(segs) {
		end = len(segs)
	}
	var anchors []int
	for i := start; i < end; i++ {
		if anchor(segs[i]) {
			anchors = append(anchors, i)
		}
	}

	windows := make([]Window, 0, len(anchors))
	for i, at := range anchors {
		w := Window{Start: at, End: end}
		if i+1 < len(anchors) {
			w.End = anchors[i+1]
		} else if stop != nil {
			for j := at + 1; j < end; j++ {
				if stop(segs[j]) {
					w.End = j
					break
				}
			}
		}
		windows = append(windows, w)
	}
	return windows
}

// indexOfKind returns the index of the first segment of the given kind at or
// after start, or -1.
func indexOfKind(segs []Segment, start int, kind SegmentKind) int {
	for i := start; i < len(segs); i++ {
		if segs[i].Kind() == kind {
			return i
		}
	}
	return -1
}
