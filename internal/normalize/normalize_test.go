package normalize

import (
	"testing"

	"github.com/google/uuid"

	"github.com/gyeh/remitstats/internal/model"
	"github.com/gyeh/remitstats/internal/x12"
)

func testRemittance(t *testing.T) *x12.Remittance {
	t.Helper()
	return &x12.Remittance{
		Trace: x12.TraceNumber{Number: "71700666555"},
		Payer: x12.PartyInfo{Name: "ACME HEALTH"},
		Claims: []x12.ClaimPayment{
			{
				ClaimNumber: "PCN001",
				StatusCode:  "1",
				Status:      x12.StatusPrimary,
				BilledCents: 10000,
				PaidCents:   8000,
				Patient:     &x12.PersonName{LastOrOrgName: "DOE", FirstName: "JOHN", ID: "M001"},
				Adjustments: []x12.AdjustmentInfo{
					{Group: x12.GroupPatientResp, ReasonCode: "1", AmountCents: 2000},
				},
				Services: []x12.ServicePayment{
					{
						LineNumber:    1,
						ProcedureCode: "99213",
						Modifiers:     []string{"25"},
						ChargedCents:  10000,
						PaidCents:     8000,
						Adjustments: []x12.AdjustmentInfo{
							{Group: x12.GroupContractual, ReasonCode: "45", AmountCents: 2000},
						},
					},
				},
			},
		},
		ProviderAdjustments: []x12.ProviderAdjustment{
			{ProviderID: "123", Code: "WO", ReferenceID: "PCN000", AmountCents: 2500},
		},
	}
}

func TestFlatten(t *testing.T) {
	batch := uuid.New()
	res := Flatten(testRemittance(t), batch, 7, nil)

	if len(res.Claims) != 1 {
		t.Fatalf("claims = %d", len(res.Claims))
	}
	claim := res.Claims[0]
	if claim.ERAFileID != 7 || claim.IngestBatchID != batch {
		t.Errorf("claim keys = %+v", claim)
	}
	if claim.PatientLastName == nil || *claim.PatientLastName != "DOE" {
		t.Errorf("patient last name = %v", claim.PatientLastName)
	}
	if claim.ServiceCount != 1 {
		t.Errorf("service count = %d", claim.ServiceCount)
	}
	if len(claim.RowHash) == 0 {
		t.Error("row hash should be set")
	}

	if len(res.Lines) != 1 {
		t.Fatalf("lines = %d", len(res.Lines))
	}
	line := res.Lines[0]
	if line.LineNumber != 1 || *line.ProcedureCode != "99213" || *line.Modifiers != "25" {
		t.Errorf("line = %+v", line)
	}

	// claim PR + service CO + provider WO
	if len(res.Adjustments) != 3 {
		t.Fatalf("adjustments = %d", len(res.Adjustments))
	}
	byLevel := map[string]*model.AdjustmentRow{}
	for _, a := range res.Adjustments {
		byLevel[a.Level] = a
	}
	if byLevel[model.AdjLevelClaim].GroupCode != "PR" {
		t.Errorf("claim-level adjustment = %+v", byLevel[model.AdjLevelClaim])
	}
	svcAdj := byLevel[model.AdjLevelService]
	if svcAdj.LineNumber == nil || *svcAdj.LineNumber != 1 {
		t.Errorf("service-level adjustment line = %+v", svcAdj)
	}
	prov := byLevel[model.AdjLevelProvider]
	if prov.ClaimNumber != nil || *prov.ReferenceID != "PCN000" {
		t.Errorf("provider-level adjustment = %+v", prov)
	}
}

func TestFlatten_GroupFilter(t *testing.T) {
	res := Flatten(testRemittance(t), uuid.New(), 7, map[string]bool{"CO": true})
	// Provider-level adjustments bypass the CAS group filter.
	if len(res.Adjustments) != 2 {
		t.Fatalf("adjustments = %+v", res.Adjustments)
	}
	for _, a := range res.Adjustments {
		if a.Level == model.AdjLevelClaim {
			t.Errorf("PR claim adjustment should have been filtered: %+v", a)
		}
	}
}

func TestToParquetRows(t *testing.T) {
	rows := ToParquetRows(testRemittance(t))
	if len(rows) != 1 {
		t.Fatalf("rows = %d", len(rows))
	}
	row := rows[0]
	if row.PayerName != "ACME HEALTH" || row.ClaimNumber != "PCN001" {
		t.Errorf("row context = %+v", row)
	}
	if row.ContractualAdjCents != 2000 {
		t.Errorf("contractual = %d", row.ContractualAdjCents)
	}
}

func TestToParquetRows_ClaimWithoutServices(t *testing.T) {
	r := testRemittance(t)
	r.Claims[0].Services = nil
	rows := ToParquetRows(r)
	if len(rows) != 1 || rows[0].LineNumber != 0 {
		t.Fatalf("claim without services should still export one row, got %+v", rows)
	}
}

func TestFormatCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{10000, "100.00"},
		{-2000, "-20.00"},
		{123456789, "1234567.89"},
	}
	for _, tc := range cases {
		if got := FormatCents(tc.cents); got != tc.want {
			t.Errorf("FormatCents(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	if d := ParseDate("20240315"); d == nil || d.Day() != 15 {
		t.Errorf("CCYYMMDD parse = %v", d)
	}
	if d := ParseDate("2024-03-15"); d == nil {
		t.Error("ISO date should parse")
	}
	if d := ParseDate(""); d != nil {
		t.Error("empty input should return nil")
	}
	if d := ParseDate("not a date"); d != nil {
		t.Error("garbage should return nil")
	}
}

func TestNormalizeName(t *testing.T) {
	if got := NormalizeName("  ACME   Health\tINSURANCE "); got == nil || *got != "acme health insurance" {
		t.Errorf("NormalizeName = %v", got)
	}
	if got := NormalizeName("   "); got != nil {
		t.Errorf("blank input should return nil, got %v", got)
	}
}
