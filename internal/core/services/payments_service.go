package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hpvvs/salesops_backend/internal/apperrors"
	"github.com/hpvvs/salesops_backend/internal/core/domain"
	portsrepo "github.com/hpvvs/salesops_backend/internal/core/ports/repositories"
	portssvc "github.com/hpvvs/salesops_backend/internal/core/ports/services"
	"github.com/hpvvs/salesops_backend/internal/dto"
	"github.com/hpvvs/salesops_backend/internal/platform/clock"
	"github.com/hpvvs/salesops_backend/internal/platform/metrics"
	"github.com/hpvvs/salesops_backend/internal/utils/timeutil"
	"github.com/shopspring/decimal"
)

// DefaultSubmittedBy is the audit label stamped on first write.
const DefaultSubmittedBy = "payments-service"

// paymentsService records and summarizes ledger documents.
type paymentsService struct {
	BaseService
	ledgerRepo   portsrepo.LedgerRepositoryFacade
	validator    *PaymentsValidator
	hasher       *RequestHasher
	identity     *DocumentIdentityResolver
	clock        clock.Clock
	timeUtil     *timeutil.TimeUtil
	feeTolerance decimal.Decimal
	submittedBy  string
	metrics      *metrics.LedgerMetrics
}

// PaymentsOption is a functional option for configuring the payments service
type PaymentsOption func(*paymentsService)

// WithClock sets the clock used for submittedAt.
func WithClock(c clock.Clock) PaymentsOption {
	return func(s *paymentsService) {
		s.clock = c
	}
}

// WithTimeUtil sets the business time zone used for parsing and hashing timestamps.
func WithTimeUtil(tu *timeutil.TimeUtil) PaymentsOption {
	return func(s *paymentsService) {
		s.timeUtil = tu
	}
}

// WithFeeTolerance sets the accepted gap between percent-derived and supplied fees.
func WithFeeTolerance(tolerance decimal.Decimal) PaymentsOption {
	return func(s *paymentsService) {
		s.feeTolerance = tolerance
	}
}

// WithSubmittedBy sets the audit label stamped on first write.
func WithSubmittedBy(submittedBy string) PaymentsOption {
	return func(s *paymentsService) {
		s.submittedBy = submittedBy
	}
}

// WithMetrics attaches prometheus collectors.
func WithMetrics(m *metrics.LedgerMetrics) PaymentsOption {
	return func(s *paymentsService) {
		s.metrics = m
	}
}

// NewPaymentsService creates a new payments service with the provided options
func NewPaymentsService(repo portsrepo.LedgerRepositoryFacade, options ...PaymentsOption) portssvc.PaymentsSvcFacade {
	svc := &paymentsService{
		ledgerRepo:   repo,
		clock:        clock.SystemClock{},
		feeTolerance: DefaultFeeTolerance,
		submittedBy:  DefaultSubmittedBy,
	}

	for _, option := range options {
		option(svc)
	}

	if svc.timeUtil == nil {
		svc.timeUtil = timeutil.MustNew(timeutil.DefaultZone)
	}
	svc.validator = NewPaymentsValidator(svc.timeUtil, svc.feeTolerance)
	svc.hasher = NewRequestHasher(svc.timeUtil)
	svc.identity = NewDocumentIdentityResolver(repo)

	return svc
}

// Ensure paymentsService implements the PaymentsSvcFacade interface
var _ portssvc.PaymentsSvcFacade = (*paymentsService)(nil)

// RecordPayment implements portssvc.PaymentsRecorderSvc
func (s *paymentsService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (*domain.RecordResult, error) {
	start := time.Now()

	validated, err := s.validator.Validate(req)
	if err != nil {
		field, _ := apperrors.FieldOf(err)
		s.GetLogger(ctx).Warn("Payment submission rejected", slog.String("field", field), slog.String("error", err.Error()))
		s.metrics.ObserveRecord(metrics.RecordStatusRejected, time.Since(start))
		return nil, err
	}

	result, err := s.record(ctx, *validated)
	if err != nil {
		s.LogError(ctx, err, "Failed to record payment", slog.String("anchor_type", string(validated.AnchorType)))
		s.metrics.ObserveRecord(metrics.RecordStatusError, time.Since(start))
		return nil, err
	}

	status := metrics.RecordStatusCreated
	if result.Status == domain.RecordUpdated {
		status = metrics.RecordStatusUpdated
	}
	s.metrics.ObserveRecord(status, time.Since(start))
	s.LogInfo(ctx, "Payment recorded",
		slog.String("status", string(result.Status)),
		slog.String("doc_number", result.Document.DocNumber),
		slog.String("anchor_type", string(result.Document.AnchorType)),
		slog.String("request_hash", result.Document.RequestHash))
	return result, nil
}

func (s *paymentsService) record(ctx context.Context, validated domain.ValidatedPayment) (*domain.RecordResult, error) {
	requestHash, err := s.hasher.ComputeRequestHash(validated)
	if err != nil {
		return nil, fmt.Errorf("failed to compute request hash: %w", err)
	}

	docNumber, err := s.identity.ResolveDocNumber(ctx, validated, requestHash)
	if err != nil {
		return nil, err
	}

	existed, err := s.ledgerRepo.DocumentExists(ctx, docNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check document existence: %w", err)
	}

	doc := s.buildDocument(validated, docNumber, requestHash)
	err = s.ledgerRepo.UpsertDocument(ctx, doc)
	if errors.Is(err, apperrors.ErrDuplicate) {
		// Another number took this fingerprint between resolve and write; land on it instead.
		winner, findErr := s.identity.FindByHash(ctx, validated.AnchorType, requestHash)
		if findErr != nil {
			return nil, findErr
		}
		if winner == "" || winner == docNumber {
			return nil, fmt.Errorf("failed to upsert document %s: %w", docNumber, err)
		}
		s.LogDebug(ctx, "Converged onto existing document", slog.String("requested", docNumber), slog.String("doc_number", winner))
		docNumber = winner
		doc.DocNumber = winner
		existed = true
		err = s.ledgerRepo.UpsertDocument(ctx, doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to upsert document %s: %w", docNumber, err)
	}

	stored, err := s.ledgerRepo.FindDocumentByNumber(ctx, docNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment record %s: %w", docNumber, err)
	}

	status := domain.RecordCreated
	if existed {
		status = domain.RecordUpdated
	}
	return &domain.RecordResult{Status: status, Document: *stored}, nil
}

func (s *paymentsService) buildDocument(v domain.ValidatedPayment, docNumber, requestHash string) domain.LedgerDocument {
	now := s.clock.Now()
	paymentDateTime := v.PaymentDateTime
	method := v.Method
	var submittedBy *string
	if s.submittedBy != "" {
		by := s.submittedBy
		submittedBy = &by
	}
	return domain.LedgerDocument{
		DocNumber:       docNumber,
		DocRole:         v.DocRole,
		AnchorType:      v.AnchorType,
		RootApptID:      v.RootApptID,
		SONumber:        v.SONumber,
		DocType:         v.DocType,
		DocStatus:       v.DocStatus,
		PaymentDateTime: &paymentDateTime,
		Method:          &method,
		Reference:       v.Reference,
		Notes:           v.Notes,
		AmountGross:     v.AmountGross,
		FeePercent:      v.FeePercent,
		FeeAmount:       v.FeeAmount,
		Subtotal:        v.Subtotal,
		AmountNet:       v.AmountNet,
		Lines:           v.Lines,
		RequestHash:     requestHash,
		SubmittedBy:     submittedBy,
		SubmittedAt:     &now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// GetDocument implements portssvc.PaymentsReaderSvc
func (s *paymentsService) GetDocument(ctx context.Context, docNumber string) (*domain.LedgerDocument, error) {
	doc, err := s.ledgerRepo.FindDocumentByNumber(ctx, docNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load ledger document", slog.String("doc_number", docNumber))
		}
		return nil, err
	}
	return doc, nil
}
