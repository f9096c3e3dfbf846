package domain

import "github.com/shopspring/decimal"

const (
	MoneyScale   int32 = 2
	PercentScale int32 = 4
)

var hundred = decimal.NewFromInt(100)

// RoundMoney rounds half-up to 2 decimal places.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// RoundPercent rounds half-up to 4 decimal places.
func RoundPercent(d decimal.Decimal) decimal.Decimal {
	return d.Round(PercentScale)
}

// SumMoney adds the values and rounds the total to 2 decimal places.
func SumMoney(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return RoundMoney(total)
}

// PercentOf returns amount x percent / 100 rounded to 2 decimal places.
func PercentOf(amount, percent decimal.Decimal) decimal.Decimal {
	return RoundMoney(amount.Mul(percent).DivRound(hundred, 6))
}
