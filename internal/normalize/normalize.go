package normalize

import (
	"strings"

	"github.com/google/uuid"

	"github.com/gyeh/remitstats/internal/model"
	"github.com/gyeh/remitstats/internal/x12"
)

// FlattenResult holds the DB-ready rows produced from one parsed remittance.
type FlattenResult struct {
	Claims      []*model.ClaimRow
	Lines       []*model.ServiceLineRow
	Adjustments []*model.AdjustmentRow
}

// Flatten converts a parsed remittance into staging rows tagged with the
// ingest batch. groups restricts which adjustment group codes are kept; nil
// or empty keeps all.
func Flatten(r *x12.Remittance, batchID uuid.UUID, eraFileID int64, groups map[string]bool) *FlattenResult {
	out := &FlattenResult{}
	keep := func(g x12.AdjustmentGroup) bool {
		return len(groups) == 0 || groups[string(g)]
	}

	for i, claim := range r.Claims {
		row := &model.ClaimRow{
			IngestBatchID:      batchID,
			ERAFileID:          eraFileID,
			ClaimNumber:        claim.ClaimNumber,
			StatusCode:         claim.StatusCode,
			Status:             string(claim.Status),
			BilledCents:        claim.BilledCents,
			PaidCents:          claim.PaidCents,
			PatientRespCents:   claim.PatientRespCents,
			FilingIndicator:    optStr(claim.FilingIndicator),
			PayerControlNumber: optStr(claim.PayerControlNumber),
			DRGCode:            optStr(claim.DRGCode),
			ServiceCount:       int32(len(claim.Services)),
		}
		if claim.Patient != nil {
			row.PatientLastName = optStr(claim.Patient.LastOrOrgName)
			row.PatientFirstName = optStr(claim.Patient.FirstName)
			row.PatientID = optStr(claim.Patient.ID)
		}
		row.RowHash = RowHashFromValues(int64(i+1),
			claim.ClaimNumber, claim.StatusCode, r.Trace.Number)
		out.Claims = append(out.Claims, row)

		for _, adj := range claim.Adjustments {
			if !keep(adj.Group) {
				continue
			}
			out.Adjustments = append(out.Adjustments, adjustmentRow(
				batchID, eraFileID, model.AdjLevelClaim, optStr(claim.ClaimNumber), nil, adj))
		}

		for _, svc := range claim.Services {
			line := int32(svc.LineNumber)
			lineRow := &model.ServiceLineRow{
				IngestBatchID:      batchID,
				ERAFileID:          eraFileID,
				ClaimNumber:        claim.ClaimNumber,
				LineNumber:         line,
				ProcedureQualifier: optStr(svc.ProcedureQualifier),
				ProcedureCode:      optStr(svc.ProcedureCode),
				Modifiers:          optStr(strings.Join(svc.Modifiers, ",")),
				ChargedCents:       svc.ChargedCents,
				PaidCents:          svc.PaidCents,
				RevenueCode:        optStr(svc.RevenueCode),
				Units:              optStr(svc.Units),
				ControlNumber:      optStr(svc.ControlNumber),
			}
			for _, d := range svc.Dates {
				if d.Parsed != nil {
					lineRow.ServiceDate = d.Parsed
					break
				}
			}
			out.Lines = append(out.Lines, lineRow)

			for _, adj := range svc.Adjustments {
				if !keep(adj.Group) {
					continue
				}
				out.Adjustments = append(out.Adjustments, adjustmentRow(
					batchID, eraFileID, model.AdjLevelService, optStr(claim.ClaimNumber), &line, adj))
			}
		}
	}

	for _, padj := range r.ProviderAdjustments {
		out.Adjustments = append(out.Adjustments, &model.AdjustmentRow{
			IngestBatchID: batchID,
			ERAFileID:     eraFileID,
			Level:         model.AdjLevelProvider,
			GroupCode:     padj.Code,
			ReasonCode:    padj.Code,
			AmountCents:   padj.AmountCents,
			ReferenceID:   optStr(padj.ReferenceID),
		})
	}

	return out
}

func adjustmentRow(batchID uuid.UUID, eraFileID int64, level string, claimNumber *string, line *int32, adj x12.AdjustmentInfo) *model.AdjustmentRow {
	return &model.AdjustmentRow{
		IngestBatchID: batchID,
		ERAFileID:     eraFileID,
		Level:         level,
		ClaimNumber:   claimNumber,
		LineNumber:    line,
		GroupCode:     string(adj.Group),
		ReasonCode:    adj.ReasonCode,
		AmountCents:   adj.AmountCents,
		Quantity:      optStr(adj.Quantity),
		RemarkCode:    optStr(adj.RemarkCode),
	}
}

// ToParquetRows flattens a remittance into the analytics export schema, one
// row per service line. Claims with no service detail still export a single
// row carrying the claim-level amounts.
func ToParquetRows(r *x12.Remittance) []model.RemitLineRow {
	var rows []model.RemitLineRow
	for _, claim := range r.Claims {
		base := model.RemitLineRow{
			PayerName:        r.Payer.Name,
			PayeeName:        r.Payee.Name,
			TraceNumber:      r.Trace.Number,
			PaymentDate:      r.Financial.PaymentDate,
			ClaimNumber:      claim.ClaimNumber,
			ClaimStatus:      string(claim.Status),
			ClaimBilledCents: claim.BilledCents,
			ClaimPaidCents:   claim.PaidCents,
			PatientRespCents: claim.PatientRespCents,
		}
		base.ContractualAdjCents, base.OtherAdjCents = adjustmentTotals(claim.Adjustments)

		if len(claim.Services) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, svc := range claim.Services {
			row := base
			row.LineNumber = int32(svc.LineNumber)
			row.ProcedureQualifier = optStr(svc.ProcedureQualifier)
			row.ProcedureCode = optStr(svc.ProcedureCode)
			row.Modifiers = optStr(strings.Join(svc.Modifiers, ","))
			row.ChargedCents = svc.ChargedCents
			row.PaidCents = svc.PaidCents
			row.RevenueCode = optStr(svc.RevenueCode)
			row.ControlNumber = optStr(svc.ControlNumber)
			for _, d := range svc.Dates {
				if d.Parsed != nil {
					s := d.Parsed.Format("2006-01-02")
					row.ServiceDate = &s
					break
				}
			}
			svcCO, svcOther := adjustmentTotals(svc.Adjustments)
			row.ContractualAdjCents += svcCO
			row.OtherAdjCents += svcOther
			rows = append(rows, row)
		}
	}
	return rows
}

func adjustmentTotals(adjs []x12.AdjustmentInfo) (contractual, other int64) {
	for _, adj := range adjs {
		switch adj.Group {
		case x12.GroupContractual:
			contractual += adj.AmountCents
		case x12.GroupPatientResp:
		default:
			other += adj.AmountCents
		}
	}
	return contractual, other
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
