package dto

import (
	"github.com/hpvvs/salesops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Money renders as an unquoted JSON number with exactly two decimal places.
type Money decimal.Decimal

// Percent renders as an unquoted JSON number with exactly four decimal places.
type Percent decimal.Decimal

// Quantity renders as an unquoted JSON number at its stored scale.
type Quantity decimal.Decimal

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(m).StringFixed(domain.MoneyScale)), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*m = Money(d)
	return nil
}

func (p Percent) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(p).StringFixed(domain.PercentScale)), nil
}

func (p *Percent) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*p = Percent(d)
	return nil
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(q).String()), nil
}

func (q *Quantity) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*q = Quantity(d)
	return nil
}

// Decimal returns the underlying value.
func (m Money) Decimal() decimal.Decimal { return decimal.Decimal(m) }

// Decimal returns the underlying value.
func (p Percent) Decimal() decimal.Decimal { return decimal.Decimal(p) }

func moneyPtr(d *decimal.Decimal) *Money {
	if d == nil {
		return nil
	}
	m := Money(*d)
	return &m
}

func percentPtr(d *decimal.Decimal) *Percent {
	if d == nil {
		return nil
	}
	p := Percent(*d)
	return &p
}
