package services

import (
	"context"

	"github.com/hpvvs/salesops_backend/internal/core/domain"
	"github.com/hpvvs/salesops_backend/internal/dto"
)

// PaymentsRecorderSvc defines the write path of the payments ledger
type PaymentsRecorderSvc interface {
	// RecordPayment validates, fingerprints and upserts a financial document submission.
	// Resubmitting an identical payload converges onto the same document (status UPDATED).
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (*domain.RecordResult, error)
}

// PaymentsReaderSvc defines the read path of the payments ledger
type PaymentsReaderSvc interface {
	// SummarizePayments aggregates every document of a root appointment and/or sales order.
	SummarizePayments(ctx context.Context, rootApptID, soNumber string) (*domain.LedgerSummary, error)

	// GetDocument returns a single ledger document by number.
	GetDocument(ctx context.Context, docNumber string) (*domain.LedgerDocument, error)
}

// PaymentsSvcFacade combines all payments service interfaces
type PaymentsSvcFacade interface {
	PaymentsRecorderSvc
	PaymentsReaderSvc
}
