package x12

import "strings"

// SegmentKind is the closed set of segment identifiers this parser dispatches
// on. Anything else maps to KindOther and is carried through untouched.
type SegmentKind int

const (
	KindOther SegmentKind = iota
	KindISA               // interchange header
	KindGS                // functional group header
	KindST                // transaction set header
	KindBPR               // financial information
	KindTRN               // reassociation trace number
	KindREF               // reference identification
	KindDTM               // date/time reference
	KindN1                // entity identifier (payer/payee loops)
	KindN3                // address line
	KindN4                // city/state/zip
	KindPER               // administrative contact
	KindLX                // header number (service loop grouping)
	KindCLP               // claim payment information
	KindCAS               // claim/service adjustment
	KindNM1               // individual or organizational name
	KindMIA               // inpatient adjudication
	KindMOA               // outpatient adjudication
	KindAMT               // monetary amount
	KindQTY               // quantity
	KindSVC               // service payment information
	KindLQ                // remark code
	KindPLB               // provider-level adjustment
	KindSE                // transaction set trailer
	KindGE                // functional group trailer
	KindIEA               // interchange trailer
)

var kindByID = map[string]SegmentKind{
	"ISA": KindISA, "GS": KindGS, "ST": KindST, "BPR": KindBPR,
	"TRN": KindTRN, "REF": KindREF, "DTM": KindDTM, "N1": KindN1,
	"N3": KindN3, "N4": KindN4, "PER": KindPER, "LX": KindLX,
	"CLP": KindCLP, "CAS": KindCAS, "NM1": KindNM1, "MIA": KindMIA,
	"MOA": KindMOA, "AMT": KindAMT, "QTY": KindQTY, "SVC": KindSVC,
	"LQ": KindLQ, "PLB": KindPLB, "SE": KindSE, "GE": KindGE, "IEA": KindIEA,
}

// Segment is the atomic unit of an X12 document: an identifier plus its
// ordered elements. Segments are immutable once tokenized.
type Segment struct {
	ID       string
	elements []string
}

// Kind maps the segment identifier onto the closed SegmentKind set.
func (s Segment) Kind() SegmentKind {
	return kindByID[s.ID]
}

// Element returns the n-th element using X12's 1-based numbering (CLP01 is
// Element(1)). Out-of-range positions return the empty string so callers can
// read optional trailing elements without bounds checks.
func (s Segment) Element(n int) string {
	if n < 1 || n > len(s.elements) {
		return ""
	}
	return s.elements[n-1]
}

// ElementCount reports how many elements follow the identifier.
func (s Segment) ElementCount() int {
	return len(s.elements)
}

// Components splits the n-th element on the component separator. Composite
// elements like the SVC procedure code carry sub-values this way.
func (s Segment) Components(n int, d Delimiters) []string {
	v := s.Element(n)
	if v == "" {
		return nil
	}
	return strings.Split(v, string(d.Component))
}

// Tokenize splits the document into its flat segment sequence using the
// detected delimiters. Fragments are trimmed and empty ones dropped, so a
// terminator followed by a newline (common in pretty-printed files) still
// yields one boundary. No tree is built here; all loop structure is derived
// later by scanning this sequence.
func Tokenize(content string, d Delimiters) []Segment {
	raw := strings.Split(content, string(d.Terminator))
	segments := make([]Segment, 0, len(raw))
	for _, frag := range raw {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		parts := strings.Split(frag, string(d.Element))
		segments = append(segments, Segment{ID: parts[0], elements: parts[1:]})
	}
	return segments
}

// NewSegment builds a segment directly from its parts. Test and fixture code
// uses this to assemble synthetic sequences without going through Tokenize.
func NewSegment(id string, elements ...string) Segment {
	return Segment{ID: id, elements: elements}
}
