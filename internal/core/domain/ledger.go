package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnchorType identifies which business entity a ledger document is attached to.
type AnchorType string

const (
	AnchorSalesOrder  AnchorType = "SO"
	AnchorAppointment AnchorType = "APPT"
)

// DocumentRole is the economic category of a ledger document.
type DocumentRole string

const (
	RoleInvoice DocumentRole = "INVOICE"
	RoleReceipt DocumentRole = "RECEIPT"
	RoleCredit  DocumentRole = "CREDIT"
)

// Canonical document types.
const (
	DocTypeDepositInvoice = "Deposit Invoice"
	DocTypeDepositReceipt = "Deposit Receipt"
	DocTypeSalesInvoice   = "Sales Invoice"
	DocTypeSalesReceipt   = "Sales Receipt"
	DocTypeCreditMemo     = "Credit Memo"
	DocTypePaymentReceipt = "Payment Receipt"
)

// Canonical document statuses accepted on submission.
const (
	DocStatusDraft  = "DRAFT"
	DocStatusIssued = "ISSUED"
)

// RecordStatus tells the caller whether a record call created or updated the document.
type RecordStatus string

const (
	RecordCreated RecordStatus = "CREATED"
	RecordUpdated RecordStatus = "UPDATED"
)

// LedgerLine is a normalized line item. LineTotal = Amount x Quantity rounded to 2dp.
type LedgerLine struct {
	Description *string
	Quantity    decimal.Decimal
	Amount      decimal.Decimal
	LineTotal   decimal.Decimal
}

// ValidatedPayment is a submission after normalization. It carries no identity yet.
type ValidatedPayment struct {
	DocNumber       *string // caller supplied, optional
	DocRole         DocumentRole
	AnchorType      AnchorType
	RootApptID      *string
	SONumber        *string
	DocType         string
	DocStatus       string
	PaymentDateTime time.Time
	Method          string
	Reference       *string
	Notes           *string
	AmountGross     decimal.Decimal
	FeePercent      *decimal.Decimal
	FeeAmount       *decimal.Decimal
	Subtotal        decimal.Decimal
	AmountNet       decimal.Decimal
	Lines           []LedgerLine
}

// LedgerDocument is the persisted financial document keyed by DocNumber.
type LedgerDocument struct {
	DocNumber       string
	DocRole         DocumentRole
	AnchorType      AnchorType
	RootApptID      *string
	SONumber        *string
	DocType         string
	DocStatus       string
	PaymentDateTime *time.Time
	Method          *string
	Reference       *string
	Notes           *string
	AmountGross     decimal.Decimal
	FeePercent      *decimal.Decimal
	FeeAmount       *decimal.Decimal
	Subtotal        decimal.Decimal
	AmountNet       decimal.Decimal
	Lines           []LedgerLine
	RequestHash     string
	SubmittedBy     *string
	SubmittedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EffectiveTime is the ordering key for summaries: payment time, else submission time.
func (d LedgerDocument) EffectiveTime() time.Time {
	if d.PaymentDateTime != nil {
		return *d.PaymentDateTime
	}
	if d.SubmittedAt != nil {
		return *d.SubmittedAt
	}
	return time.Time{}
}

// LedgerFilter selects documents for a summary. Set fields are ANDed.
type LedgerFilter struct {
	RootApptID *string
	SONumber   *string
}

// IsEmpty reports whether no identifier is set.
func (f LedgerFilter) IsEmpty() bool {
	return f.RootApptID == nil && f.SONumber == nil
}

// Matches reports whether doc satisfies every set identifier.
func (f LedgerFilter) Matches(doc LedgerDocument) bool {
	if f.RootApptID != nil && (doc.RootApptID == nil || *doc.RootApptID != *f.RootApptID) {
		return false
	}
	if f.SONumber != nil && (doc.SONumber == nil || *doc.SONumber != *f.SONumber) {
		return false
	}
	return true
}

// RecordResult is the outcome of recording a submission.
type RecordResult struct {
	Status   RecordStatus
	Document LedgerDocument
}

// MethodTotal is one entry of the per-method payment breakdown.
type MethodTotal struct {
	Method string
	Amount decimal.Decimal
}

// LedgerSummary aggregates every document of an anchor. It is derived, never stored.
type LedgerSummary struct {
	InvoicesLinesSubtotal decimal.Decimal
	TotalPayments         decimal.Decimal
	NetLinesMinusPayments decimal.Decimal
	ByMethod              []MethodTotal // sorted by method, case-insensitive
	Entries               []LedgerDocument
}
