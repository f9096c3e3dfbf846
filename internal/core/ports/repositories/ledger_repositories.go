package repositories

import (
	"context"

	"github.com/hpvvs/salesops_backend/internal/core/domain"
)

// LedgerReader defines read operations for ledger documents
type LedgerReader interface {
	// FindDocumentByNumber retrieves a document by its document number. Returns apperrors.ErrNotFound when absent.
	FindDocumentByNumber(ctx context.Context, docNumber string) (*domain.LedgerDocument, error)

	// FindDocNumberByHash returns the document number already owning (anchorType, requestHash).
	// Returns apperrors.ErrNotFound when no document carries that fingerprint.
	FindDocNumberByHash(ctx context.Context, anchorType domain.AnchorType, requestHash string) (string, error)

	// DocumentExists reports whether a document with the given number is stored.
	DocumentExists(ctx context.Context, docNumber string) (bool, error)

	// ListDocuments returns every document matching the filter ordered by
	// payment time (falling back to submission time) ascending.
	ListDocuments(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerDocument, error)
}

// LedgerWriter defines write operations for ledger documents
type LedgerWriter interface {
	// UpsertDocument inserts the document or merges it onto the existing row with the same
	// document number in one atomic step. SubmittedBy/SubmittedAt of an existing row are kept
	// when already set. Returns apperrors.ErrDuplicate when another document number already
	// owns the (anchorType, requestHash) pair.
	UpsertDocument(ctx context.Context, doc domain.LedgerDocument) error
}

// LedgerRepositoryFacade combines all ledger repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
