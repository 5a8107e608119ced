package x12

import "time"

// LifecycleStatus is the initial state marker handed to the posting
// collaborator. The parser sets StatusAwaitingReview and never transitions it.
type LifecycleStatus string

const StatusAwaitingReview LifecycleStatus = "awaiting_review"

// Remittance is the root aggregate for one parsed 835 transaction. It is
// built once per Parse call and not mutated afterwards; Raw retains the
// original bytes for audit alongside the structured view.
type Remittance struct {
	InterchangeControlNumber string
	GroupControlNumber       string
	TransactionControlNumber string

	Financial FinancialInfo
	Trace     TraceNumber
	Payer     PartyInfo
	Payee     PartyInfo

	Claims              []ClaimPayment
	ProviderAdjustments []ProviderAdjustment
	Summary             Summary

	Raw      string
	ParsedAt time.Time
	Status   LifecycleStatus
}

// FinancialInfo carries the BPR segment: how and how much the payer paid.
// Money is integer cents throughout; the declared total is the payer's own
// figure and is never recomputed here.
type FinancialInfo struct {
	HandlingCode      string // BPR01, e.g. "I" remittance with payment
	TotalPaidCents    int64  // BPR02
	CreditDebitFlag   string // BPR03, "C" or "D"
	PaymentMethod     string // BPR04, ACH / CHK / NON / FWT
	PaymentFormat     string // BPR05
	SenderRouting     string // BPR07
	SenderAccount     string // BPR09
	OriginatingCompID string // BPR10
	ReceiverRouting   string // BPR13
	ReceiverAccount   string // BPR15
	PaymentDate       string // BPR16, CCYYMMDD as written
	PaymentDateParsed *time.Time
}

// TraceNumber carries the TRN reassociation segment linking this remittance
// to a check or EFT.
type TraceNumber struct {
	TraceType       string // TRN01, "1" = current transaction trace
	Number          string // TRN02, the check/EFT number
	PayerIdentifier string // TRN03
	SupplementalID  string // TRN04
}

// PartyInfo is a payer or payee identification loop (N1 through PER). A file
// that omits the loop yields a zero value, not an error.
type PartyInfo struct {
	Name          string
	IDQualifier   string
	ID            string
	AdditionalIDs []Reference
	Contact       ContactInfo
	Address       Address
}

// ContactInfo is the first PER segment in an entity loop, with communication
// numbers dispatched by qualifier.
type ContactInfo struct {
	FunctionCode string
	Name         string
	Phone        string
	Fax          string
	Email        string
	URL          string
	Extension    string
}

// Address pairs the N3 street lines with the N4 locality segment.
type Address struct {
	Line1   string
	Line2   string
	City    string
	State   string
	Zip     string
	Country string
}

// ClaimStatus is the normalized CLP02 adjudication status. Codes outside the
// known set map to StatusOther rather than failing the parse.
type ClaimStatus string

const (
	StatusPrimary            ClaimStatus = "processed_primary"
	StatusSecondary          ClaimStatus = "processed_secondary"
	StatusTertiary           ClaimStatus = "processed_tertiary"
	StatusDenied             ClaimStatus = "denied"
	StatusPrimaryForwarded   ClaimStatus = "processed_primary_forwarded"
	StatusSecondaryForwarded ClaimStatus = "processed_secondary_forwarded"
	StatusTertiaryForwarded  ClaimStatus = "processed_tertiary_forwarded"
	StatusReversal           ClaimStatus = "reversal"
	StatusNotOurClaim        ClaimStatus = "not_our_claim_forwarded"
	StatusOther              ClaimStatus = "other"
)

// ClaimPayment is one claim's adjudication result: the CLP anchor plus every
// claim-level segment inside its slice, and the nested service lines.
type ClaimPayment struct {
	ClaimNumber        string
	StatusCode         string
	Status             ClaimStatus
	StatusDescription  string
	BilledCents        int64
	PaidCents          int64
	PatientRespCents   int64
	FilingIndicator    string
	PayerControlNumber string // ICN
	FacilityType       string
	FrequencyCode      string
	DRGCode            string
	DRGWeight          string

	Patient           *PersonName
	Insured           *PersonName
	CorrectedInsured  *PersonName
	RenderingProvider *PersonName

	// At most one of these is set; a claim carries inpatient or outpatient
	// adjudication detail, never both.
	Inpatient  *InpatientAdjudication
	Outpatient *OutpatientAdjudication

	Adjustments []AdjustmentInfo
	Services    []ServicePayment

	References []Reference
	Dates      []DateInfo
	Amounts    []AmountInfo
	Quantities []QuantityInfo
}

// PersonName is an NM1 identity dispatched by role qualifier.
type PersonName struct {
	LastOrOrgName string
	FirstName     string
	MiddleName    string
	Suffix        string
	IDQualifier   string
	ID            string
}

// InpatientAdjudication is the MIA remark block.
type InpatientAdjudication struct {
	CoveredDays     string
	LifetimeReserve string
	DRGAmountCents  int64
	RemarkCodes     []string
}

// OutpatientAdjudication is the MOA remark block.
type OutpatientAdjudication struct {
	ReimbursementRate   string
	HCPCSPayableCents   int64
	ESRDPaymentCents    int64
	NonPayableProfCents int64
	RemarkCodes         []string
}

// ServicePayment is one SVC service line within a claim. LineNumber is
// assigned by parse order starting at 1; the 835 format carries no explicit
// line number of its own.
type ServicePayment struct {
	LineNumber         int
	ProcedureQualifier string
	ProcedureCode      string
	Modifiers          []string
	ChargedCents       int64
	PaidCents          int64
	RevenueCode        string
	Units              string
	ControlNumber      string // REF*6R line item control number

	Adjustments []AdjustmentInfo
	References  []Reference
	Dates       []DateInfo
}

// AdjustmentGroup is the CAS group code: who absorbs the adjustment.
type AdjustmentGroup string

const (
	GroupContractual    AdjustmentGroup = "CO"
	GroupPatientResp    AdjustmentGroup = "PR"
	GroupOtherAdj       AdjustmentGroup = "OA"
	GroupPayerInitiated AdjustmentGroup = "PI"
	GroupCorrection     AdjustmentGroup = "CR"
)

// AdjustmentInfo is one reason-coded adjustment. A single CAS segment can
// expand into up to six of these, all sharing the segment's group code.
// Amounts follow the source sign convention and can be negative (reversals).
type AdjustmentInfo struct {
	Group       AdjustmentGroup
	ReasonCode  string
	AmountCents int64
	Quantity    string
	RemarkCode  string // attached from a following LQ segment
}

// ProviderAdjustment is one document-level PLB adjustment pair, not tied to
// any claim.
type ProviderAdjustment struct {
	ProviderID   string
	FiscalPeriod string
	Code         string
	Description  string
	ReferenceID  string
	AmountCents  int64
}

// Reference is a qualifier/value pair from a REF segment, with a best-effort
// human-readable description (empty when the qualifier is unrecognized).
type Reference struct {
	Qualifier   string
	Value       string
	Description string
}

// DateInfo is a DTM qualifier/date pair. Parsed is set only when the raw
// token is exactly eight digits (CCYYMMDD).
type DateInfo struct {
	Qualifier   string
	Date        string
	Parsed      *time.Time
	Description string
}

// AmountInfo is an AMT qualifier/amount pair.
type AmountInfo struct {
	Qualifier   string
	AmountCents int64
	Description string
}

// QuantityInfo is a QTY qualifier/count pair.
type QuantityInfo struct {
	Qualifier   string
	Quantity    string
	Description string
}

// Summary holds the derived reconciliation totals. It is always recomputed
// from the claim and adjustment lists, never set directly; DeclaredCents is
// the lone pass-through from the BPR header.
type Summary struct {
	TotalClaims          int
	ClaimsPaidInFull     int
	ClaimsDenied         int
	ClaimsPartiallyPaid  int
	BilledCents          int64
	PaidCents            int64
	PatientRespCents     int64
	ContractualAdjCents  int64
	OtherAdjCents        int64
	ProviderAdjCents     int64
	DeclaredCents        int64
}
