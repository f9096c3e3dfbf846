package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/hpvvs/salesops_backend/internal/apperrors"
	"github.com/hpvvs/salesops_backend/internal/core/domain"
	portsrepo "github.com/hpvvs/salesops_backend/internal/core/ports/repositories"
)

type hashKey struct {
	anchorType  domain.AnchorType
	requestHash string
}

// LedgerRepository keeps ledger documents in process memory. Each call holds the
// lock for its whole duration, which makes UpsertDocument atomic.
type LedgerRepository struct {
	mu     sync.RWMutex
	docs   map[string]domain.LedgerDocument
	byHash map[hashKey]string
}

// NewLedgerRepository creates an empty in-memory ledger store.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{
		docs:   make(map[string]domain.LedgerDocument),
		byHash: make(map[hashKey]string),
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*LedgerRepository)(nil)

func (r *LedgerRepository) FindDocumentByNumber(ctx context.Context, docNumber string) (*domain.LedgerDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[docNumber]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := cloneDocument(doc)
	return &out, nil
}

func (r *LedgerRepository) FindDocNumberByHash(ctx context.Context, anchorType domain.AnchorType, requestHash string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docNumber, ok := r.byHash[hashKey{anchorType, requestHash}]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return docNumber, nil
}

func (r *LedgerRepository) DocumentExists(ctx context.Context, docNumber string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.docs[docNumber]
	return ok, nil
}

func (r *LedgerRepository) ListDocuments(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.LedgerDocument, 0)
	for _, doc := range r.docs {
		if filter.Matches(doc) {
			out = append(out, cloneDocument(doc))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := out[i].EffectiveTime(), out[j].EffectiveTime()
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return out[i].DocNumber < out[j].DocNumber
	})
	return out, nil
}

func (r *LedgerRepository) UpsertDocument(ctx context.Context, doc domain.LedgerDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := hashKey{doc.AnchorType, doc.RequestHash}
	if owner, ok := r.byHash[key]; ok && owner != doc.DocNumber {
		return apperrors.ErrDuplicate
	}

	stored := cloneDocument(doc)
	if existing, ok := r.docs[doc.DocNumber]; ok {
		if existing.SubmittedBy != nil {
			stored.SubmittedBy = existing.SubmittedBy
		}
		if existing.SubmittedAt != nil {
			stored.SubmittedAt = existing.SubmittedAt
		}
		stored.CreatedAt = existing.CreatedAt
		delete(r.byHash, hashKey{existing.AnchorType, existing.RequestHash})
	}

	r.docs[doc.DocNumber] = stored
	r.byHash[key] = doc.DocNumber
	return nil
}

// Count returns how many documents are stored.
func (r *LedgerRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs)
}

func cloneDocument(doc domain.LedgerDocument) domain.LedgerDocument {
	out := doc
	if doc.Lines != nil {
		out.Lines = make([]domain.LedgerLine, len(doc.Lines))
		copy(out.Lines, doc.Lines)
	}
	return out
}
