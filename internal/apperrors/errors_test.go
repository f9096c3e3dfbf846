package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hpvvs/salesops_backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestFieldErrorMatchesValidationSentinel(t *testing.T) {
	err := fmt.Errorf("record: %w", apperrors.NewFieldError("amountGross", "amountGross must be greater than zero"))

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)

	field, ok := apperrors.FieldOf(err)
	assert.True(t, ok)
	assert.Equal(t, "amountGross", field)
	assert.Equal(t, "record: amountGross: amountGross must be greater than zero", err.Error())
}

func TestAppErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperrors.NewAppError(500, "failed to upsert ledger document", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to upsert ledger document: connection refused", err.Error())

	_, ok := apperrors.FieldOf(err)
	assert.False(t, ok)
}
