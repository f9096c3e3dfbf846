package models

import (
	"encoding/json"
	"time"

	"github.com/hpvvs/salesops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerEntry is a row of the payments_ledger table.
type LedgerEntry struct {
	DocNumber       string           `json:"docNumber"` // Primary Key
	DocRole         string           `json:"docRole"`
	AnchorType      string           `json:"anchorType"`
	RootApptID      *string          `json:"rootApptId"`
	SONumber        *string          `json:"soNumber"`
	DocType         string           `json:"docType"`
	DocStatus       string           `json:"docStatus"`
	PaymentDateTime *time.Time       `json:"paymentDateTime"`
	Method          *string          `json:"method"`
	Reference       *string          `json:"reference"`
	Notes           *string          `json:"notes"`
	AmountGross     decimal.Decimal  `json:"amountGross"`
	FeePercent      *decimal.Decimal `json:"feePercent"`
	FeeAmount       *decimal.Decimal `json:"feeAmount"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	AmountNet       decimal.Decimal  `json:"amountNet"`
	LinesJSON       []byte           `json:"linesJson"` // jsonb
	RequestHash     string           `json:"requestHash"`
	SubmittedBy     *string          `json:"submittedBy"` // sticky
	SubmittedAt     *time.Time       `json:"submittedAt"` // sticky
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// LedgerLine is the stored JSON shape of a line item.
type LedgerLine struct {
	Desc      *string         `json:"desc"`
	Qty       decimal.Decimal `json:"qty"`
	Amt       decimal.Decimal `json:"amt"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// MarshalJSON writes amt and lineTotal as fixed two place strings. The output feeds the request hash.
func (l LedgerLine) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Desc      *string `json:"desc"`
		Qty       string  `json:"qty"`
		Amt       string  `json:"amt"`
		LineTotal string  `json:"lineTotal"`
	}{
		Desc:      l.Desc,
		Qty:       l.Qty.String(),
		Amt:       l.Amt.StringFixed(domain.MoneyScale),
		LineTotal: l.LineTotal.StringFixed(domain.MoneyScale),
	})
}
