package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/hpvvs/salesops_backend/internal/apperrors"
	"github.com/hpvvs/salesops_backend/internal/core/domain"
	"github.com/hpvvs/salesops_backend/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// Statuses that keep a receipt out of realized payments.
var blockedStatuses = map[string]bool{
	"VOID":      true,
	"VOIDED":    true,
	"CANCELLED": true,
	"CANCELED":  true,
	"REVERSED":  true,
}

// SummarizePayments implements portssvc.PaymentsReaderSvc
func (s *paymentsService) SummarizePayments(ctx context.Context, rootApptID, soNumber string) (*domain.LedgerSummary, error) {
	start := time.Now()

	filter := domain.LedgerFilter{
		RootApptID: trimToNil(&rootApptID),
		SONumber:   trimToNil(&soNumber),
	}
	if filter.IsEmpty() {
		s.metrics.ObserveSummary(metrics.SummaryResultRejected, time.Since(start))
		return nil, apperrors.NewFieldError("rootApptId", "rootApptId or soNumber is required")
	}

	docs, err := s.ledgerRepo.ListDocuments(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger documents",
			slog.String("root_appt_id", rootApptID),
			slog.String("so_number", soNumber))
		s.metrics.ObserveSummary(metrics.SummaryResultError, time.Since(start))
		return nil, fmt.Errorf("failed to list ledger documents: %w", err)
	}

	summary := Summarize(docs)
	s.metrics.ObserveSummary(metrics.SummaryResultOK, time.Since(start))
	s.LogDebug(ctx, "Payments summarized",
		slog.Int("entries", len(summary.Entries)),
		slog.String("total_payments", summary.TotalPayments.StringFixed(domain.MoneyScale)))
	return &summary, nil
}

// Summarize aggregates docs, which must already be ordered by effective time.
func Summarize(docs []domain.LedgerDocument) domain.LedgerSummary {
	invoiced := make([]decimal.Decimal, 0, len(docs))
	payments := make([]decimal.Decimal, 0, len(docs))
	perMethod := make(map[string]decimal.Decimal)

	for _, doc := range docs {
		if strings.EqualFold(string(doc.DocRole), string(domain.RoleInvoice)) {
			invoiced = append(invoiced, doc.Subtotal)
		}
		if !isRealizedPayment(doc) {
			continue
		}
		payments = append(payments, doc.AmountNet)
		if doc.Method != nil {
			perMethod[*doc.Method] = perMethod[*doc.Method].Add(doc.AmountNet)
		}
	}

	invoicesSubtotal := domain.SumMoney(invoiced...)
	totalPayments := domain.SumMoney(payments...)
	net := domain.RoundMoney(invoicesSubtotal.Sub(totalPayments))
	if net.IsNegative() {
		net = decimal.Zero
	}

	entries := docs
	if entries == nil {
		entries = []domain.LedgerDocument{}
	}

	return domain.LedgerSummary{
		InvoicesLinesSubtotal: invoicesSubtotal,
		TotalPayments:         totalPayments,
		NetLinesMinusPayments: net,
		ByMethod:              sortedMethodTotals(perMethod),
		Entries:               entries,
	}
}

func isRealizedPayment(doc domain.LedgerDocument) bool {
	if doc.DocRole != domain.RoleReceipt {
		return false
	}
	if !doc.AmountNet.IsPositive() {
		return false
	}
	return !blockedStatuses[strings.ToUpper(doc.DocStatus)]
}

func sortedMethodTotals(perMethod map[string]decimal.Decimal) []domain.MethodTotal {
	totals := make([]domain.MethodTotal, 0, len(perMethod))
	for method, amount := range perMethod {
		totals = append(totals, domain.MethodTotal{Method: method, Amount: domain.RoundMoney(amount)})
	}
	sort.Slice(totals, func(i, j int) bool {
		a, b := strings.ToLower(totals[i].Method), strings.ToLower(totals[j].Method)
		if a != b {
			return a < b
		}
		return totals[i].Method < totals[j].Method
	})
	return totals
}
