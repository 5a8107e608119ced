package x12

// CLP02 claim status codes from the 005010X221 implementation guide.
var claimStatusByCode = map[string]ClaimStatus{
	"1":  StatusPrimary,
	"2":  StatusSecondary,
	"3":  StatusTertiary,
	"4":  StatusDenied,
	"19": StatusPrimaryForwarded,
	"20": StatusSecondaryForwarded,
	"21": StatusTertiaryForwarded,
	"22": StatusReversal,
	"23": StatusNotOurClaim,
}

var claimStatusDescriptions = map[ClaimStatus]string{
	StatusPrimary:            "Processed as Primary",
	StatusSecondary:          "Processed as Secondary",
	StatusTertiary:           "Processed as Tertiary",
	StatusDenied:             "Denied",
	StatusPrimaryForwarded:   "Processed as Primary, Forwarded to Additional Payer(s)",
	StatusSecondaryForwarded: "Processed as Secondary, Forwarded to Additional Payer(s)",
	StatusTertiaryForwarded:  "Processed as Tertiary, Forwarded to Additional Payer(s)",
	StatusReversal:           "Reversal of Previous Payment",
	StatusNotOurClaim:        "Not Our Claim, Forwarded to Additional Payer(s)",
	StatusOther:              "Other",
}

// claimStatus normalizes a CLP02 code. Unknown codes land in StatusOther;
// payers do emit codes outside the guide and that must not abort a parse.
func claimStatus(code string) (ClaimStatus, string) {
	if st, ok := claimStatusByCode[code]; ok {
		return st, claimStatusDescriptions[st]
	}
	return StatusOther, claimStatusDescriptions[StatusOther]
}

// REF qualifier descriptions, claim and service level. Lookup misses keep an
// empty description rather than failing.
var refDescriptions = map[string]string{
	"1K": "Payer Claim Number",
	"1L": "Group or Policy Number",
	"1W": "Member Identification Number",
	"28": "Employee Identification Number",
	"6P": "Group Number",
	"6R": "Line Item Control Number",
	"9A": "Repriced Claim Reference Number",
	"9C": "Adjusted Repriced Claim Reference Number",
	"APC": "Ambulatory Payment Classification",
	"BB": "Authorization Number",
	"CE": "Class of Contract Code",
	"EA": "Medical Record Number",
	"EV": "Receiver Identification Number",
	"F8": "Original Reference Number",
	"G1": "Prior Authorization Number",
	"G3": "Predetermination of Benefits Number",
	"HPI": "National Provider Identifier",
	"IG": "Insurance Policy Number",
	"LU": "Location Number",
	"NF": "NAIC Code",
	"PQ": "Payee Identification",
	"RB": "Rate Code Number",
	"SY": "Social Security Number",
	"TJ": "Federal Taxpayer Identification Number",
}

var dtmDescriptions = map[string]string{
	"036": "Coverage Expiration",
	"050": "Received",
	"150": "Service Period Start",
	"151": "Service Period End",
	"232": "Claim Statement Period Start",
	"233": "Claim Statement Period End",
	"405": "Production",
	"472": "Service",
}

var amtDescriptions = map[string]string{
	"AU": "Coverage Amount",
	"B6": "Allowed Amount",
	"D8": "Discount Amount",
	"DY": "Per Day Limit",
	"F5": "Patient Paid Amount",
	"I":  "Interest",
	"NL": "Negative Ledger Balance",
	"T":  "Tax",
	"T2": "Total Claim Before Taxes",
	"ZK": "Federal Medicare Category 1",
	"ZL": "Federal Medicare Category 2",
}

var qtyDescriptions = map[string]string{
	"CA": "Covered - Actual",
	"CD": "Co-insured - Actual",
	"LA": "Life-time Reserve - Actual",
	"LE": "Life-time Reserve - Estimated",
	"NE": "Non-Covered - Estimated",
	"OU": "Outlier Days",
	"PS": "Prescription",
	"VS": "Visits",
	"ZK": "Federal Medicare Category 1",
}

// PLB adjustment reason codes (the commonly seen subset).
var plbDescriptions = map[string]string{
	"50": "Late Charge",
	"51": "Interest Penalty Charge",
	"72": "Authorized Return",
	"90": "Early Payment Allowance",
	"AH": "Origination Fee",
	"AM": "Applied to Borrower's Account",
	"AP": "Acceleration of Benefits",
	"B2": "Rebate",
	"B3": "Recovery Allowance",
	"BD": "Bad Debt Adjustment",
	"BN": "Bonus",
	"C5": "Temporary Allowance",
	"CR": "Capitation Interest",
	"CS": "Adjustment",
	"CT": "Capitation Payment",
	"CV": "Capital Passthru",
	"CW": "Certified Registered Nurse Anesthetist Passthru",
	"DM": "Direct Medical Education Passthru",
	"E3": "Withholding",
	"FB": "Forwarding Balance",
	"FC": "Fund Allocation",
	"GO": "Graduate Medical Education Passthru",
	"HM": "Hemophilia Clotting Factor Supplement",
	"IP": "Incentive Premium Payment",
	"IR": "Internal Revenue Service Withholding",
	"IS": "Interim Settlement",
	"J1": "Nonreimbursable",
	"L3": "Penalty",
	"L6": "Interest Owed",
	"LE": "Levy",
	"LS": "Lump Sum",
	"OA": "Organ Acquisition Passthru",
	"OB": "Offset for Affiliated Providers",
	"PI": "Periodic Interim Payment",
	"PL": "Payment Final",
	"RA": "Retro-activity Adjustment",
	"RE": "Return on Equity",
	"SL": "Student Loan Repayment",
	"TL": "Third Party Liability",
	"WO": "Overpayment Recovery",
	"WU": "Unspecified Recovery",
}
