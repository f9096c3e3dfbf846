package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hpvvs/salesops_backend/internal/apperrors"
	"github.com/hpvvs/salesops_backend/internal/core/domain"
	portsrepo "github.com/hpvvs/salesops_backend/internal/core/ports/repositories"
	"github.com/hpvvs/salesops_backend/internal/models"
	"github.com/hpvvs/salesops_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Unique index on (anchor_type, request_hash).
const requestHashConstraint = "payments_ledger_anchor_hash_key"

const ledgerColumns = `doc_number, doc_role, anchor_type, root_appt_id, so_number, doc_type, doc_status,
	payment_datetime, method, reference, notes, amount_gross, fee_percent, fee_amount, subtotal,
	amount_net, lines_json, request_hash, submitted_by, submitted_at, created_at, updated_at`

const upsertLedgerSQL = `
	INSERT INTO payments_ledger (
		doc_number, doc_role, anchor_type, root_appt_id, so_number, doc_type, doc_status,
		payment_datetime, method, reference, notes, amount_gross, fee_percent, fee_amount, subtotal,
		amount_net, lines_json, request_hash, submitted_by, submitted_at, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, NOW(), NOW())
	ON CONFLICT (doc_number) DO UPDATE SET
		doc_role = EXCLUDED.doc_role,
		anchor_type = EXCLUDED.anchor_type,
		root_appt_id = EXCLUDED.root_appt_id,
		so_number = EXCLUDED.so_number,
		doc_type = EXCLUDED.doc_type,
		doc_status = EXCLUDED.doc_status,
		payment_datetime = EXCLUDED.payment_datetime,
		method = EXCLUDED.method,
		reference = EXCLUDED.reference,
		notes = EXCLUDED.notes,
		amount_gross = EXCLUDED.amount_gross,
		fee_percent = EXCLUDED.fee_percent,
		fee_amount = EXCLUDED.fee_amount,
		subtotal = EXCLUDED.subtotal,
		amount_net = EXCLUDED.amount_net,
		lines_json = EXCLUDED.lines_json,
		request_hash = EXCLUDED.request_hash,
		submitted_by = COALESCE(payments_ledger.submitted_by, EXCLUDED.submitted_by),
		submitted_at = COALESCE(payments_ledger.submitted_at, EXCLUDED.submitted_at),
		updated_at = NOW()`

// PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade using pgxpool.
type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger documents.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// UpsertDocument inserts or merges a document in a single statement.
func (r *PgxLedgerRepository) UpsertDocument(ctx context.Context, doc domain.LedgerDocument) error {
	m, err := mapping.ToModelLedgerEntry(doc)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode ledger lines", err)
	}

	_, err = r.Pool.Exec(ctx, upsertLedgerSQL,
		m.DocNumber, m.DocRole, m.AnchorType, m.RootApptID, m.SONumber, m.DocType, m.DocStatus,
		m.PaymentDateTime, m.Method, m.Reference, m.Notes, m.AmountGross, m.FeePercent, m.FeeAmount, m.Subtotal,
		m.AmountNet, m.LinesJSON, m.RequestHash, m.SubmittedBy, m.SubmittedAt,
	)
	if err != nil {
		if uniqueViolationOn(err, requestHashConstraint) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to upsert ledger document", err)
	}
	return nil
}

// FindDocumentByNumber retrieves a document by its number.
func (r *PgxLedgerRepository) FindDocumentByNumber(ctx context.Context, docNumber string) (*domain.LedgerDocument, error) {
	query := `SELECT ` + ledgerColumns + ` FROM payments_ledger WHERE doc_number = $1`
	doc, err := r.scanDocument(r.Pool.QueryRow(ctx, query, docNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find ledger document", err)
	}
	return doc, nil
}

// FindDocNumberByHash returns the number of the document owning the fingerprint.
func (r *PgxLedgerRepository) FindDocNumberByHash(ctx context.Context, anchorType domain.AnchorType, requestHash string) (string, error) {
	var docNumber string
	err := r.Pool.QueryRow(ctx,
		`SELECT doc_number FROM payments_ledger WHERE anchor_type = $1 AND request_hash = $2 LIMIT 1`,
		string(anchorType), requestHash,
	).Scan(&docNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.NewAppError(500, "failed to find ledger document by hash", err)
	}
	return docNumber, nil
}

// DocumentExists reports whether the document number is taken.
func (r *PgxLedgerRepository) DocumentExists(ctx context.Context, docNumber string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM payments_ledger WHERE doc_number = $1)`,
		docNumber,
	).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check ledger document", err)
	}
	return exists, nil
}

// ListDocuments returns the documents of an anchor ordered by effective time.
func (r *PgxLedgerRepository) ListDocuments(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerDocument, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.RootApptID != nil {
		args = append(args, *filter.RootApptID)
		conditions = append(conditions, fmt.Sprintf("root_appt_id = $%d", len(args)))
	}
	if filter.SONumber != nil {
		args = append(args, *filter.SONumber)
		conditions = append(conditions, fmt.Sprintf("so_number = $%d", len(args)))
	}
	if len(conditions) == 0 {
		return nil, apperrors.NewFieldError("rootApptId", "rootApptId or soNumber is required")
	}

	query := `SELECT ` + ledgerColumns + ` FROM payments_ledger WHERE ` + strings.Join(conditions, " AND ") +
		` ORDER BY COALESCE(payment_datetime, submitted_at), doc_number`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list ledger documents", err)
	}
	defer rows.Close()

	docs := make([]domain.LedgerDocument, 0)
	for rows.Next() {
		doc, err := r.scanDocument(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger document", err)
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate ledger documents", err)
	}
	return docs, nil
}

func (r *PgxLedgerRepository) scanDocument(row pgx.Row) (*domain.LedgerDocument, error) {
	var (
		m          models.LedgerEntry
		feePercent decimal.NullDecimal
		feeAmount  decimal.NullDecimal
	)
	err := row.Scan(
		&m.DocNumber, &m.DocRole, &m.AnchorType, &m.RootApptID, &m.SONumber, &m.DocType, &m.DocStatus,
		&m.PaymentDateTime, &m.Method, &m.Reference, &m.Notes, &m.AmountGross, &feePercent, &feeAmount, &m.Subtotal,
		&m.AmountNet, &m.LinesJSON, &m.RequestHash, &m.SubmittedBy, &m.SubmittedAt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if feePercent.Valid {
		m.FeePercent = &feePercent.Decimal
	}
	if feeAmount.Valid {
		m.FeeAmount = &feeAmount.Decimal
	}

	doc, err := mapping.ToDomainLedgerDocument(m)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
