package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestUniqueViolationOn(t *testing.T) {
	hashClash := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: requestHashConstraint}

	cases := map[string]struct {
		err  error
		want bool
	}{
		"hash constraint":         {hashClash, true},
		"wrapped hash constraint": {fmt.Errorf("exec: %w", hashClash), true},
		"primary key":             {&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "payments_ledger_pkey"}, false},
		"not null violation":      {&pgconn.PgError{Code: "23502", ConstraintName: requestHashConstraint}, false},
		"plain error":             {errors.New("connection reset"), false},
		"nil":                     {nil, false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, uniqueViolationOn(tc.err, requestHashConstraint))
		})
	}
}

func TestUpsertKeepsFirstSubmitter(t *testing.T) {
	assert.Contains(t, upsertLedgerSQL, "ON CONFLICT (doc_number) DO UPDATE")
	assert.Contains(t, upsertLedgerSQL, "submitted_by = COALESCE(payments_ledger.submitted_by, EXCLUDED.submitted_by)")
	assert.Contains(t, upsertLedgerSQL, "submitted_at = COALESCE(payments_ledger.submitted_at, EXCLUDED.submitted_at)")
	assert.NotContains(t, upsertLedgerSQL, "created_at = EXCLUDED")
}
