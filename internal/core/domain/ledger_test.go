package domain_test

import (
	"testing"
	"time"

	"github.com/hpvvs/salesops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestPercentOfRoundsHalfUp(t *testing.T) {
	fee := domain.PercentOf(decimal.RequireFromString("200.00"), decimal.RequireFromString("2.75"))
	assert.Equal(t, "5.50", fee.StringFixed(2))

	// 10.005 rounds up at the cent.
	fee = domain.PercentOf(decimal.RequireFromString("100.05"), decimal.RequireFromString("10"))
	assert.Equal(t, "10.01", fee.StringFixed(2))
}

func TestSumMoney(t *testing.T) {
	assert.True(t, domain.SumMoney().Equal(decimal.Zero))
	total := domain.SumMoney(decimal.RequireFromString("147.50"), decimal.RequireFromString("0.005"))
	assert.Equal(t, "147.51", total.StringFixed(2))
}

func TestLedgerFilterMatchesAllSetIdentifiers(t *testing.T) {
	doc := domain.LedgerDocument{RootApptID: strPtr("HP-1"), SONumber: strPtr("SO-1")}

	assert.True(t, domain.LedgerFilter{SONumber: strPtr("SO-1")}.Matches(doc))
	assert.True(t, domain.LedgerFilter{RootApptID: strPtr("HP-1"), SONumber: strPtr("SO-1")}.Matches(doc))
	assert.False(t, domain.LedgerFilter{RootApptID: strPtr("HP-1"), SONumber: strPtr("SO-2")}.Matches(doc))
	assert.False(t, domain.LedgerFilter{RootApptID: strPtr("HP-1")}.Matches(domain.LedgerDocument{SONumber: strPtr("SO-1")}))
	assert.True(t, domain.LedgerFilter{}.IsEmpty())
}

func TestEffectiveTimeFallsBackToSubmittedAt(t *testing.T) {
	paid := time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC)
	submitted := time.Date(2024, 7, 3, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, paid, domain.LedgerDocument{PaymentDateTime: &paid, SubmittedAt: &submitted}.EffectiveTime())
	assert.Equal(t, submitted, domain.LedgerDocument{SubmittedAt: &submitted}.EffectiveTime())
	assert.True(t, domain.LedgerDocument{}.EffectiveTime().IsZero())
}
