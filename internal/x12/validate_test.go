package x12

import (
	"strings"
	"testing"
)

func TestValidate835_Empty(t *testing.T) {
	problems := Validate835("")
	if len(problems) == 0 {
		t.Fatal("expected problems for empty content")
	}
	if problems[0] != "content is empty" {
		t.Errorf("first problem = %q", problems[0])
	}
}

func TestValidate835_MissingBPR(t *testing.T) {
	content := strings.Replace(sample835(), "BPR", "XPR", 1)
	problems := Validate835(content)
	found := false
	for _, p := range problems {
		if strings.Contains(p, "BPR") {
			found = true
		}
	}
	if !found {
		t.Errorf("problems should name BPR, got %v", problems)
	}
}

func TestValidate835_MissingClaims(t *testing.T) {
	content := strings.ReplaceAll(sample835(), "CLP", "XLP")
	problems := Validate835(content)
	found := false
	for _, p := range problems {
		if strings.Contains(p, "CLP") {
			found = true
		}
	}
	if !found {
		t.Errorf("problems should flag missing claim segments, got %v", problems)
	}
}

func TestValidate835_NotISA(t *testing.T) {
	problems := Validate835("hello world")
	found := false
	for _, p := range problems {
		if strings.Contains(p, "ISA") {
			found = true
		}
	}
	if !found {
		t.Errorf("problems should flag missing ISA, got %v", problems)
	}
}

func TestValidate835_WellFormed(t *testing.T) {
	if problems := Validate835(sample835()); len(problems) != 0 {
		t.Errorf("well-formed sample should validate clean, got %v", problems)
	}
}
