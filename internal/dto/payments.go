package dto

import (
	"bytes"
	"encoding/json"

	"github.com/hpvvs/salesops_backend/internal/core/domain"
	"github.com/hpvvs/salesops_backend/internal/utils/timeutil"
	"github.com/shopspring/decimal"
)

// RecordPaymentLine is one inbound line item.
type RecordPaymentLine struct {
	Desc *string          `json:"desc,omitempty"`
	Qty  *decimal.Decimal `json:"qty,omitempty"`
	Amt  *decimal.Decimal `json:"amt,omitempty"`
}

// RecordPaymentRequest is the inbound financial document submission.
type RecordPaymentRequest struct {
	AnchorType      string              `json:"anchorType" binding:"required" example:"SO"`
	RootApptID      *string             `json:"rootApptId,omitempty" example:"HP-ROOT-1"`
	SONumber        *string             `json:"soNumber,omitempty" example:"SO-1001"`
	DocNumber       *string             `json:"docNumber,omitempty"`
	DocRole         *string             `json:"docRole,omitempty"`
	DocType         string              `json:"docType" binding:"required" example:"Deposit Receipt"`
	DocStatus       *string             `json:"docStatus,omitempty" example:"ISSUED"`
	PaymentDateTime string              `json:"paymentDateTime" binding:"required" example:"2024-07-04T17:15:00Z"`
	AmountGross     *decimal.Decimal    `json:"amountGross" binding:"required" swaggertype:"number" example:"200.00"`
	FeePercent      *decimal.Decimal    `json:"feePercent,omitempty" swaggertype:"number" example:"2.75"`
	FeeAmount       *decimal.Decimal    `json:"feeAmount,omitempty" swaggertype:"number"`
	Method          string              `json:"method" binding:"required" example:"Card"`
	Reference       *string             `json:"reference,omitempty" example:"AUTH-001"`
	Notes           *string             `json:"notes,omitempty"`
	Lines           []RecordPaymentLine `json:"lines,omitempty"`
}

// PaymentLineResponse is a normalized line item as stored.
type PaymentLineResponse struct {
	Desc      *string  `json:"desc,omitempty"`
	Qty       Quantity `json:"qty" swaggertype:"number"`
	Amt       Money    `json:"amt" swaggertype:"number"`
	LineTotal Money    `json:"lineTotal" swaggertype:"number"`
}

// LedgerEntryResponse is a stored ledger document.
type LedgerEntryResponse struct {
	DocNumber       string                `json:"docNumber"`
	DocRole         string                `json:"docRole"`
	AnchorType      string                `json:"anchorType"`
	RootApptID      *string               `json:"rootApptId"`
	SONumber        *string               `json:"soNumber"`
	DocType         string                `json:"docType"`
	DocStatus       string                `json:"docStatus"`
	PaymentDateTime *string               `json:"paymentDateTime"`
	Method          *string               `json:"method"`
	Reference       *string               `json:"reference"`
	Notes           *string               `json:"notes"`
	AmountGross     Money                 `json:"amountGross" swaggertype:"number" example:"200.00"`
	FeePercent      *Percent              `json:"feePercent" swaggertype:"number" example:"2.7500"`
	FeeAmount       *Money                `json:"feeAmount" swaggertype:"number"`
	Subtotal        Money                 `json:"subtotal" swaggertype:"number"`
	AmountNet       Money                 `json:"amountNet" swaggertype:"number" example:"194.50"`
	Lines           []PaymentLineResponse `json:"lines"`
	RequestHash     string                `json:"requestHash"`
	SubmittedAt     *string               `json:"submittedAt,omitempty"`
}

// RecordPaymentResponse is returned by the record endpoint.
type RecordPaymentResponse struct {
	Status string `json:"status" example:"CREATED"`
	LedgerEntryResponse
}

// MethodTotals renders as a JSON object whose keys keep slice order.
type MethodTotals []domain.MethodTotal

func (m MethodTotals) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Method)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(Money(entry.Amount))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// PaymentsSummaryResponse is returned by the summary endpoint.
type PaymentsSummaryResponse struct {
	InvoicesLinesSubtotal Money                 `json:"invoicesLinesSubtotal" swaggertype:"number"`
	TotalPayments         Money                 `json:"totalPayments" swaggertype:"number"`
	NetLinesMinusPayments Money                 `json:"netLinesMinusPayments" swaggertype:"number"`
	ByMethod              MethodTotals          `json:"byMethod" swaggertype:"object,number"`
	Entries               []LedgerEntryResponse `json:"entries"`
}

// ToLedgerEntryResponse converts a domain.LedgerDocument, rendering timestamps in the business zone.
func ToLedgerEntryResponse(doc domain.LedgerDocument, tu *timeutil.TimeUtil) LedgerEntryResponse {
	lines := make([]PaymentLineResponse, len(doc.Lines))
	for i, line := range doc.Lines {
		lines[i] = PaymentLineResponse{
			Desc:      line.Description,
			Qty:       Quantity(line.Quantity),
			Amt:       Money(line.Amount),
			LineTotal: Money(line.LineTotal),
		}
	}
	return LedgerEntryResponse{
		DocNumber:       doc.DocNumber,
		DocRole:         string(doc.DocRole),
		AnchorType:      string(doc.AnchorType),
		RootApptID:      doc.RootApptID,
		SONumber:        doc.SONumber,
		DocType:         doc.DocType,
		DocStatus:       doc.DocStatus,
		PaymentDateTime: tu.FormatDateTimePtr(doc.PaymentDateTime),
		Method:          doc.Method,
		Reference:       doc.Reference,
		Notes:           doc.Notes,
		AmountGross:     Money(doc.AmountGross),
		FeePercent:      percentPtr(doc.FeePercent),
		FeeAmount:       moneyPtr(doc.FeeAmount),
		Subtotal:        Money(doc.Subtotal),
		AmountNet:       Money(doc.AmountNet),
		Lines:           lines,
		RequestHash:     doc.RequestHash,
		SubmittedAt:     tu.FormatDateTimePtr(doc.SubmittedAt),
	}
}

// ToRecordPaymentResponse converts a domain.RecordResult.
func ToRecordPaymentResponse(result domain.RecordResult, tu *timeutil.TimeUtil) RecordPaymentResponse {
	return RecordPaymentResponse{
		Status:              string(result.Status),
		LedgerEntryResponse: ToLedgerEntryResponse(result.Document, tu),
	}
}

// ToPaymentsSummaryResponse converts a domain.LedgerSummary.
func ToPaymentsSummaryResponse(summary domain.LedgerSummary, tu *timeutil.TimeUtil) PaymentsSummaryResponse {
	entries := make([]LedgerEntryResponse, len(summary.Entries))
	for i, doc := range summary.Entries {
		entries[i] = ToLedgerEntryResponse(doc, tu)
	}
	return PaymentsSummaryResponse{
		InvoicesLinesSubtotal: Money(summary.InvoicesLinesSubtotal),
		TotalPayments:         Money(summary.TotalPayments),
		NetLinesMinusPayments: Money(summary.NetLinesMinusPayments),
		ByMethod:              MethodTotals(summary.ByMethod),
		Entries:               entries,
	}
}
