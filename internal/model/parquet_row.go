package model

// RemitLineRow mirrors the Parquet export schema: one row per service line
// with its claim and payment context denormalized in, for downstream
// analytics over many remittance files.
type RemitLineRow struct {
	PayerName   string `parquet:"payer_name"`
	PayeeName   string `parquet:"payee_name,optional"`
	TraceNumber string `parquet:"trace_number"`
	PaymentDate string `parquet:"payment_date,optional"`

	ClaimNumber      string `parquet:"claim_number"`
	ClaimStatus      string `parquet:"claim_status"`
	ClaimBilledCents int64  `parquet:"claim_billed_cents"`
	ClaimPaidCents   int64  `parquet:"claim_paid_cents"`
	PatientRespCents int64  `parquet:"patient_resp_cents"`

	LineNumber         int32   `parquet:"line_number"`
	ProcedureQualifier *string `parquet:"procedure_qualifier,optional"`
	ProcedureCode      *string `parquet:"procedure_code,optional"`
	Modifiers          *string `parquet:"modifiers,optional"`
	ChargedCents       int64   `parquet:"charged_cents"`
	PaidCents          int64   `parquet:"paid_cents"`
	RevenueCode        *string `parquet:"revenue_code,optional"`
	ServiceDate        *string `parquet:"service_date,optional"`
	ControlNumber      *string `parquet:"control_number,optional"`

	ContractualAdjCents int64 `parquet:"contractual_adj_cents"`
	OtherAdjCents       int64 `parquet:"other_adj_cents"`
}
