package model

import (
	"time"

	"github.com/google/uuid"
)

// ClaimRow is the DB-ready representation of one adjudicated claim, flattened
// from the parsed aggregate. Money values are int64 cents.
type ClaimRow struct {
	IngestBatchID uuid.UUID
	ERAFileID     int64

	ClaimNumber        string
	StatusCode         string
	Status             string
	BilledCents        int64
	PaidCents          int64
	PatientRespCents   int64
	FilingIndicator    *string
	PayerControlNumber *string
	DRGCode            *string

	PatientLastName  *string
	PatientFirstName *string
	PatientID        *string

	ServiceCount int32
	RowHash      []byte
}

// ClaimColumns returns the ordered column names for COPY into remit.stage_claims.
func ClaimColumns() []string {
	return []string{
		"ingest_batch_id",
		"era_file_id",
		"claim_number",
		"status_code",
		"status",
		"billed_cents",
		"paid_cents",
		"patient_resp_cents",
		"filing_indicator",
		"payer_control_number",
		"drg_code",
		"patient_last_name",
		"patient_first_name",
		"patient_id",
		"service_count",
		"row_hash",
	}
}

// CopyValues returns the row values in ClaimColumns order, suitable for pgx
// CopyFromSource.
func (r *ClaimRow) CopyValues() []any {
	return []any{
		r.IngestBatchID,
		r.ERAFileID,
		r.ClaimNumber,
		r.StatusCode,
		r.Status,
		r.BilledCents,
		r.PaidCents,
		r.PatientRespCents,
		r.FilingIndicator,
		r.PayerControlNumber,
		r.DRGCode,
		r.PatientLastName,
		r.PatientFirstName,
		r.PatientID,
		r.ServiceCount,
		r.RowHash,
	}
}

// ServiceLineRow is one service line, keyed back to its claim by number.
type ServiceLineRow struct {
	IngestBatchID uuid.UUID
	ERAFileID     int64

	ClaimNumber        string
	LineNumber         int32
	ProcedureQualifier *string
	ProcedureCode      *string
	Modifiers          *string // comma-joined
	ChargedCents       int64
	PaidCents          int64
	RevenueCode        *string
	Units              *string
	ControlNumber      *string
	ServiceDate        *time.Time
}

func ServiceLineColumns() []string {
	return []string{
		"ingest_batch_id",
		"era_file_id",
		"claim_number",
		"line_number",
		"procedure_qualifier",
		"procedure_code",
		"modifiers",
		"charged_cents",
		"paid_cents",
		"revenue_code",
		"units",
		"control_number",
		"service_date",
	}
}

func (r *ServiceLineRow) CopyValues() []any {
	return []any{
		r.IngestBatchID,
		r.ERAFileID,
		r.ClaimNumber,
		r.LineNumber,
		r.ProcedureQualifier,
		r.ProcedureCode,
		r.Modifiers,
		r.ChargedCents,
		r.PaidCents,
		r.RevenueCode,
		r.Units,
		r.ControlNumber,
		r.ServiceDate,
	}
}

// Adjustment levels for AdjustmentRow.Level.
const (
	AdjLevelClaim    = "claim"
	AdjLevelService  = "service"
	AdjLevelProvider = "provider"
)

// AdjustmentRow is one reason-coded adjustment at claim, service, or
// document (provider) level. LineNumber is nil except at service level, and
// ClaimNumber is nil at provider level.
type AdjustmentRow struct {
	IngestBatchID uuid.UUID
	ERAFileID     int64

	Level       string
	ClaimNumber *string
	LineNumber  *int32
	GroupCode   string
	ReasonCode  string
	AmountCents int64
	Quantity    *string
	RemarkCode  *string
	ReferenceID *string // provider level only
}

func AdjustmentColumns() []string {
	return []string{
		"ingest_batch_id",
		"era_file_id",
		"level",
		"claim_number",
		"line_number",
		"group_code",
		"reason_code",
		"amount_cents",
		"quantity",
		"remark_code",
		"reference_id",
	}
}

func (r *AdjustmentRow) CopyValues() []any {
	return []any{
		r.IngestBatchID,
		r.ERAFileID,
		r.Level,
		r.ClaimNumber,
		r.LineNumber,
		r.GroupCode,
		r.ReasonCode,
		r.AmountCents,
		r.Quantity,
		r.RemarkCode,
		r.ReferenceID,
	}
}
