package x12

import "fmt"

// isaLength is the fixed width of an X12 interchange header: the "ISA" tag
// plus 16 elements at mandated offsets. Everything after it is
// delimiter-relative, so a document shorter than this cannot be tokenized.
const isaLength = 106

// Delimiters holds the three separators declared by a specific 835 file.
// X12 does not mandate fixed characters; each interchange declares its own
// inside the ISA header.
type Delimiters struct {
	Element    byte // separates elements within a segment, commonly '*'
	Component  byte // separates components within a composite element, commonly ':'
	Terminator byte // ends a segment, commonly '~'
}

// EnvelopeError is a fatal structural failure in the interchange header.
type EnvelopeError struct {
	Reason string
}

func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("malformed interchange envelope: %s", e.Reason)
}

// DetectDelimiters reads the separators out of the fixed-width ISA header.
// The element separator is the byte immediately after the "ISA" tag, the
// component separator sits at offset 104, and the segment terminator at 105.
func DetectDelimiters(content string) (Delimiters, error) {
	if len(content) < isaLength {
		return Delimiters{}, &EnvelopeError{
			Reason: fmt.Sprintf("content is %d bytes, interchange header requires %d", len(content), isaLength),
		}
	}
	if content[0:3] != "ISA" {
		return Delimiters{}, &EnvelopeError{Reason: "content does not begin with ISA"}
	}
	return Delimiters{
		Element:    content[3],
		Component:  content[104],
		Terminator: content[105],
	}, nil
}
