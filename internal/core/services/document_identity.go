package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/hpvvs/salesops_backend/internal/apperrors"
	"github.com/hpvvs/salesops_backend/internal/core/domain"
	portsrepo "github.com/hpvvs/salesops_backend/internal/core/ports/repositories"
)

// DocumentIdentityResolver decides which document number a submission lands on.
type DocumentIdentityResolver struct {
	ledgerRepo portsrepo.LedgerReader
}

// NewDocumentIdentityResolver creates a resolver backed by repo.
func NewDocumentIdentityResolver(repo portsrepo.LedgerReader) *DocumentIdentityResolver {
	return &DocumentIdentityResolver{ledgerRepo: repo}
}

// ResolveDocNumber returns the number already owning (anchorType, requestHash), else the
// caller supplied number, else a synthesized one.
func (r *DocumentIdentityResolver) ResolveDocNumber(ctx context.Context, p domain.ValidatedPayment, requestHash string) (string, error) {
	existing, err := r.FindByHash(ctx, p.AnchorType, requestHash)
	if err != nil {
		return "", err
	}
	if existing != "" {
		return existing, nil
	}
	if p.DocNumber != nil {
		return *p.DocNumber, nil
	}
	return GenerateDocNumber(p, requestHash), nil
}

// FindByHash returns the document number owning the fingerprint, or "" when none does.
func (r *DocumentIdentityResolver) FindByHash(ctx context.Context, anchorType domain.AnchorType, requestHash string) (string, error) {
	docNumber, err := r.ledgerRepo.FindDocNumberByHash(ctx, anchorType, requestHash)
	if errors.Is(err, apperrors.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up document by request hash: %w", err)
	}
	return docNumber, nil
}
