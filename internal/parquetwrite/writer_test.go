package parquetwrite

import (
	"path/filepath"
	"testing"

	"github.com/gyeh/remitstats/internal/x12"
)

func TestExport_RoundTrip(t *testing.T) {
	remit := &x12.Remittance{
		Trace: x12.TraceNumber{Number: "71700666555"},
		Payer: x12.PartyInfo{Name: "ACME HEALTH"},
		Claims: []x12.ClaimPayment{
			{
				ClaimNumber: "PCN001",
				Status:      x12.StatusPrimary,
				BilledCents: 10000,
				PaidCents:   8000,
				Services: []x12.ServicePayment{
					{LineNumber: 1, ProcedureCode: "99213", ChargedCents: 6000, PaidCents: 5000},
					{LineNumber: 2, ProcedureCode: "99214", ChargedCents: 4000, PaidCents: 3000},
				},
			},
			{
				ClaimNumber: "PCN002",
				Status:      x12.StatusDenied,
				BilledCents: 5000,
			},
		},
	}

	path := filepath.Join(t.TempDir(), "remit.parquet")
	n, err := Export(path, remit)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	// two service lines plus one service-less claim row
	if n != 3 {
		t.Fatalf("rows written = %d, want 3", n)
	}

	rows, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows read = %d", len(rows))
	}
	if rows[0].ClaimNumber != "PCN001" || rows[0].LineNumber != 1 || *rows[0].ProcedureCode != "99213" {
		t.Errorf("first row = %+v", rows[0])
	}
	if rows[2].ClaimNumber != "PCN002" || rows[2].ClaimStatus != string(x12.StatusDenied) {
		t.Errorf("claim-only row = %+v", rows[2])
	}
	if rows[0].PayerName != "ACME HEALTH" || rows[0].TraceNumber != "71700666555" {
		t.Errorf("payment context = %+v", rows[0])
	}
}

func TestExport_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.parquet")
	n, err := Export(path, &x12.Remittance{})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if n != 0 {
		t.Errorf("rows = %d", n)
	}
	rows, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("read %d rows from empty export", len(rows))
	}
}
