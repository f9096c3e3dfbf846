package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/hpvvs/salesops_backend/internal/core/domain"
	"github.com/hpvvs/salesops_backend/internal/models"
)

// LinesToJSON serializes line items in their stored shape. Empty input yields "[]".
func LinesToJSON(lines []domain.LedgerLine) ([]byte, error) {
	rows := make([]models.LedgerLine, len(lines))
	for i, line := range lines {
		rows[i] = models.LedgerLine{
			Desc:      line.Description,
			Qty:       line.Quantity,
			Amt:       line.Amount,
			LineTotal: line.LineTotal,
		}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize ledger lines: %w", err)
	}
	return data, nil
}

// LinesFromJSON parses stored line items. Empty input yields no lines.
func LinesFromJSON(data []byte) ([]domain.LedgerLine, error) {
	if len(data) == 0 {
		return []domain.LedgerLine{}, nil
	}
	var rows []models.LedgerLine
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to deserialize ledger lines: %w", err)
	}
	lines := make([]domain.LedgerLine, len(rows))
	for i, row := range rows {
		lines[i] = domain.LedgerLine{
			Description: row.Desc,
			Quantity:    row.Qty,
			Amount:      row.Amt,
			LineTotal:   row.LineTotal,
		}
	}
	return lines, nil
}

// ToModelLedgerEntry converts a domain LedgerDocument to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerDocument) (models.LedgerEntry, error) {
	linesJSON, err := LinesToJSON(d.Lines)
	if err != nil {
		return models.LedgerEntry{}, err
	}
	return models.LedgerEntry{
		DocNumber:       d.DocNumber,
		DocRole:         string(d.DocRole),
		AnchorType:      string(d.AnchorType),
		RootApptID:      d.RootApptID,
		SONumber:        d.SONumber,
		DocType:         d.DocType,
		DocStatus:       d.DocStatus,
		PaymentDateTime: d.PaymentDateTime,
		Method:          d.Method,
		Reference:       d.Reference,
		Notes:           d.Notes,
		AmountGross:     d.AmountGross,
		FeePercent:      d.FeePercent,
		FeeAmount:       d.FeeAmount,
		Subtotal:        d.Subtotal,
		AmountNet:       d.AmountNet,
		LinesJSON:       linesJSON,
		RequestHash:     d.RequestHash,
		SubmittedBy:     d.SubmittedBy,
		SubmittedAt:     d.SubmittedAt,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}, nil
}

// ToDomainLedgerDocument converts a model LedgerEntry to a domain LedgerDocument
func ToDomainLedgerDocument(m models.LedgerEntry) (domain.LedgerDocument, error) {
	lines, err := LinesFromJSON(m.LinesJSON)
	if err != nil {
		return domain.LedgerDocument{}, err
	}
	return domain.LedgerDocument{
		DocNumber:       m.DocNumber,
		DocRole:         domain.DocumentRole(m.DocRole),
		AnchorType:      domain.AnchorType(m.AnchorType),
		RootApptID:      m.RootApptID,
		SONumber:        m.SONumber,
		DocType:         m.DocType,
		DocStatus:       m.DocStatus,
		PaymentDateTime: m.PaymentDateTime,
		Method:          m.Method,
		Reference:       m.Reference,
		Notes:           m.Notes,
		AmountGross:     m.AmountGross,
		FeePercent:      m.FeePercent,
		FeeAmount:       m.FeeAmount,
		Subtotal:        m.Subtotal,
		AmountNet:       m.AmountNet,
		Lines:           lines,
		RequestHash:     m.RequestHash,
		SubmittedBy:     m.SubmittedBy,
		SubmittedAt:     m.SubmittedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}, nil
}
