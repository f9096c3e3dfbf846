package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/hpvvs/salesops_backend/internal/apperrors"
	"github.com/hpvvs/salesops_backend/internal/core/domain"
	"github.com/hpvvs/salesops_backend/internal/repositories/database/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type LedgerRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo *memory.LedgerRepository
}

func (suite *LedgerRepositoryTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repo = memory.NewLedgerRepository()
}

func ptr[T any](v T) *T { return &v }

func newDoc(number, hash string, paid time.Time) domain.LedgerDocument {
	return domain.LedgerDocument{
		DocNumber:       number,
		DocRole:         domain.RoleReceipt,
		AnchorType:      domain.AnchorSalesOrder,
		SONumber:        ptr("SO-1"),
		DocType:         domain.DocTypeSalesReceipt,
		DocStatus:       domain.DocStatusIssued,
		PaymentDateTime: &paid,
		Method:          ptr("Card"),
		AmountGross:     decimal.RequireFromString("150.00"),
		AmountNet:       decimal.RequireFromString("147.50"),
		RequestHash:     hash,
		SubmittedBy:     ptr("payments-service"),
		SubmittedAt:     &paid,
		CreatedAt:       paid,
		UpdatedAt:       paid,
	}
}

func (suite *LedgerRepositoryTestSuite) TestUpsertKeepsStickyAuditFields() {
	first := time.Date(2024, 7, 1, 15, 0, 0, 0, time.UTC)
	later := first.Add(time.Hour)

	require.NoError(suite.T(), suite.repo.UpsertDocument(suite.ctx, newDoc("DOC-1", "h1", first)))

	update := newDoc("DOC-1", "h2", later)
	update.SubmittedBy = ptr("someone-else")
	update.Notes = ptr("changed")
	require.NoError(suite.T(), suite.repo.UpsertDocument(suite.ctx, update))

	stored, err := suite.repo.FindDocumentByNumber(suite.ctx, "DOC-1")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "payments-service", *stored.SubmittedBy)
	assert.Equal(suite.T(), first, *stored.SubmittedAt)
	assert.Equal(suite.T(), first, stored.CreatedAt)
	assert.Equal(suite.T(), "changed", *stored.Notes)
	assert.Equal(suite.T(), "h2", stored.RequestHash)
	assert.Equal(suite.T(), 1, suite.repo.Count())

	// The old fingerprint no longer points anywhere.
	_, err = suite.repo.FindDocNumberByHash(suite.ctx, domain.AnchorSalesOrder, "h1")
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	number, err := suite.repo.FindDocNumberByHash(suite.ctx, domain.AnchorSalesOrder, "h2")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "DOC-1", number)
}

func (suite *LedgerRepositoryTestSuite) TestUpsertBackfillsMissingAuditFields() {
	paid := time.Date(2024, 7, 1, 15, 0, 0, 0, time.UTC)
	doc := newDoc("DOC-1", "h1", paid)
	doc.SubmittedBy = nil
	doc.SubmittedAt = nil
	require.NoError(suite.T(), suite.repo.UpsertDocument(suite.ctx, doc))

	require.NoError(suite.T(), suite.repo.UpsertDocument(suite.ctx, newDoc("DOC-1", "h1", paid)))
	stored, err := suite.repo.FindDocumentByNumber(suite.ctx, "DOC-1")
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), stored.SubmittedBy)
	assert.Equal(suite.T(), "payments-service", *stored.SubmittedBy)
}

func (suite *LedgerRepositoryTestSuite) TestUpsertRejectsSecondOwnerOfHash() {
	paid := time.Date(2024, 7, 1, 15, 0, 0, 0, time.UTC)
	require.NoError(suite.T(), suite.repo.UpsertDocument(suite.ctx, newDoc("DOC-1", "h1", paid)))

	err := suite.repo.UpsertDocument(suite.ctx, newDoc("DOC-2", "h1", paid))
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicate)

	// Same hash under the other anchor type is a different identity.
	other := newDoc("DOC-3", "h1", paid)
	other.AnchorType = domain.AnchorAppointment
	assert.NoError(suite.T(), suite.repo.UpsertDocument(suite.ctx, other))
}

func (suite *LedgerRepositoryTestSuite) TestListDocumentsFiltersAndOrders() {
	base := time.Date(2024, 7, 1, 15, 0, 0, 0, time.UTC)

	late := newDoc("DOC-LATE", "h1", base.Add(48*time.Hour))
	early := newDoc("DOC-EARLY", "h2", base)
	noPayment := newDoc("DOC-SUBMITTED", "h3", base)
	noPayment.PaymentDateTime = nil
	submitted := base.Add(24 * time.Hour)
	noPayment.SubmittedAt = &submitted
	otherOrder := newDoc("DOC-OTHER", "h4", base)
	otherOrder.SONumber = ptr("SO-2")

	for _, doc := range []domain.LedgerDocument{late, early, noPayment, otherOrder} {
		require.NoError(suite.T(), suite.repo.UpsertDocument(suite.ctx, doc))
	}

	docs, err := suite.repo.ListDocuments(suite.ctx, domain.LedgerFilter{SONumber: ptr("SO-1")})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), docs, 3)
	assert.Equal(suite.T(), "DOC-EARLY", docs[0].DocNumber)
	assert.Equal(suite.T(), "DOC-SUBMITTED", docs[1].DocNumber)
	assert.Equal(suite.T(), "DOC-LATE", docs[2].DocNumber)
}

func (suite *LedgerRepositoryTestSuite) TestFindDocumentByNumberNotFound() {
	_, err := suite.repo.FindDocumentByNumber(suite.ctx, "missing")
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)

	exists, err := suite.repo.DocumentExists(suite.ctx, "missing")
	require.NoError(suite.T(), err)
	assert.False(suite.T(), exists)
}

func (suite *LedgerRepositoryTestSuite) TestStoredLinesAreCopied() {
	paid := time.Date(2024, 7, 1, 15, 0, 0, 0, time.UTC)
	doc := newDoc("DOC-1", "h1", paid)
	doc.Lines = []domain.LedgerLine{{Quantity: decimal.NewFromInt(1), Amount: decimal.NewFromInt(5), LineTotal: decimal.NewFromInt(5)}}
	require.NoError(suite.T(), suite.repo.UpsertDocument(suite.ctx, doc))

	doc.Lines[0].Amount = decimal.NewFromInt(999)
	stored, err := suite.repo.FindDocumentByNumber(suite.ctx, "DOC-1")
	require.NoError(suite.T(), err)
	assert.True(suite.T(), stored.Lines[0].Amount.Equal(decimal.NewFromInt(5)))
}

func TestLedgerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerRepositoryTestSuite))
}
