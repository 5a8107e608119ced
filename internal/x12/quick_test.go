package x12

import "testing"

func TestQuickTraceNumber(t *testing.T) {
	got, ok := QuickTraceNumber(sample835())
	if !ok || got != "71700666555" {
		t.Errorf("trace = %q ok=%v", got, ok)
	}
}

func TestQuickTraceNumber_Absent(t *testing.T) {
	if _, ok := QuickTraceNumber("no trace here"); ok {
		t.Error("match on unrelated text")
	}
}

func TestQuickPayerName(t *testing.T) {
	got, ok := QuickPayerName(sample835())
	if !ok || got != "ACME HEALTH INSURANCE" {
		t.Errorf("payer = %q ok=%v", got, ok)
	}
}

func TestQuickTotalAmount(t *testing.T) {
	got, ok := QuickTotalAmount(sample835())
	if !ok || got != 13000 {
		t.Errorf("total = %d ok=%v", got, ok)
	}
}

func TestQuick_NonStandardSeparator(t *testing.T) {
	content := isaHeader("|", ">", "!") + "BPR|I|80.00|C|CHK!TRN|1|999!N1|PR|PAYER X!"
	if got, ok := QuickTotalAmount(content); !ok || got != 8000 {
		t.Errorf("total = %d ok=%v", got, ok)
	}
	if got, ok := QuickTraceNumber(content); !ok || got != "999" {
		t.Errorf("trace = %q ok=%v", got, ok)
	}
	if got, ok := QuickPayerName(content); !ok || got != "PAYER X" {
		t.Errorf("payer = %q ok=%v", got, ok)
	}
}
