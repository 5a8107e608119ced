package x12

import (
	"errors"
	"strings"
	"testing"
)

func TestDetectDelimiters_Standard(t *testing.T) {
	d, err := DetectDelimiters(isaHeader("*", ":", "~"))
	if err != nil {
		t.Fatalf("DetectDelimiters: %v", err)
	}
	if d.Element != '*' || d.Component != ':' || d.Terminator != '~' {
		t.Errorf("unexpected delimiters: %+v", d)
	}
}

func TestDetectDelimiters_NonStandard(t *testing.T) {
	d, err := DetectDelimiters(isaHeader("|", ">", "!"))
	if err != nil {
		t.Fatalf("DetectDelimiters: %v", err)
	}
	if d.Element != '|' || d.Component != '>' || d.Terminator != '!' {
		t.Errorf("unexpected delimiters: %+v", d)
	}
}

func TestDetectDelimiters_TooShort(t *testing.T) {
	_, err := DetectDelimiters("ISA*00*short")
	var envErr *EnvelopeError
	if !errors.As(err, &envErr) {
		t.Fatalf("expected EnvelopeError, got %v", err)
	}
}

func TestDetectDelimiters_MissingISA(t *testing.T) {
	content := strings.Replace(isaHeader("*", ":", "~"), "ISA", "XXX", 1)
	_, err := DetectDelimiters(content)
	var envErr *EnvelopeError
	if !errors.As(err, &envErr) {
		t.Fatalf("expected EnvelopeError, got %v", err)
	}
}

// isaHeader builds a full-width (106 byte) interchange header using the given
// separators.
func isaHeader(elem, comp, term string) string {
	fields := []string{
		"00", strings.Repeat(" ", 10),
		"00", strings.Repeat(" ", 10),
		"ZZ", "PAYERID        ",
		"ZZ", "PROVIDERID     ",
		"240315", "1200", "^", "00501", "000000905", "0", "P", comp,
	}
	return "ISA" + elem + strings.Join(fields, elem) + term
}
