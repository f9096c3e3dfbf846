package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/hpvvs/salesops_backend/internal/core/domain"
	"github.com/hpvvs/salesops_backend/internal/dto"
	"github.com/hpvvs/salesops_backend/internal/utils/timeutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyMarshalsFixedScaleNumbers(t *testing.T) {
	cases := map[string]struct {
		value any
		want  string
	}{
		"whole amount":    {dto.Money(decimal.RequireFromString("200")), `200.00`},
		"half cent trail": {dto.Money(decimal.RequireFromString("194.5")), `194.50`},
		"zero":            {dto.Money(decimal.Zero), `0.00`},
		"negative":        {dto.Money(decimal.RequireFromString("-12.3")), `-12.30`},
		"percent":         {dto.Percent(decimal.RequireFromString("2.75")), `2.7500`},
		"quantity as is":  {dto.Quantity(decimal.RequireFromString("1.5")), `1.5`},
		"nil money":       {(*dto.Money)(nil), `null`},
		"nil percent":     {(*dto.Percent)(nil), `null`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := json.Marshal(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestMoneyUnmarshalsNumbersAndStrings(t *testing.T) {
	var m dto.Money
	require.NoError(t, json.Unmarshal([]byte(`147.50`), &m))
	assert.True(t, m.Decimal().Equal(decimal.RequireFromString("147.5")))

	var p dto.Percent
	require.NoError(t, json.Unmarshal([]byte(`"2.75"`), &p))
	assert.Equal(t, "2.75", p.Decimal().String())

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &m))
}

func TestLedgerEntryResponseKeepsMoneyScale(t *testing.T) {
	fee := decimal.RequireFromString("2.75")
	feeAmount := decimal.RequireFromString("5.5")
	desc := "Setting labor"
	doc := domain.LedgerDocument{
		DocNumber:   "SO-RECEIPT-1",
		DocRole:     domain.RoleReceipt,
		AnchorType:  domain.AnchorSalesOrder,
		DocType:     domain.DocTypeSalesReceipt,
		DocStatus:   domain.DocStatusIssued,
		AmountGross: decimal.RequireFromString("200"),
		FeePercent:  &fee,
		FeeAmount:   &feeAmount,
		Subtotal:    decimal.RequireFromString("150"),
		AmountNet:   decimal.RequireFromString("194.5"),
		Lines: []domain.LedgerLine{{
			Description: &desc,
			Quantity:    decimal.NewFromInt(2),
			Amount:      decimal.RequireFromString("75"),
			LineTotal:   decimal.RequireFromString("150"),
		}},
	}

	raw, err := json.Marshal(dto.ToLedgerEntryResponse(doc, timeutil.MustNew("America/Los_Angeles")))
	require.NoError(t, err)
	body := string(raw)

	assert.Contains(t, body, `"amountGross":200.00`)
	assert.Contains(t, body, `"feePercent":2.7500`)
	assert.Contains(t, body, `"feeAmount":5.50`)
	assert.Contains(t, body, `"subtotal":150.00`)
	assert.Contains(t, body, `"amountNet":194.50`)
	assert.Contains(t, body, `"lines":[{"desc":"Setting labor","qty":2,"amt":75.00,"lineTotal":150.00}]`)
	assert.Contains(t, body, `"paymentDateTime":null`)
}

func TestPaymentsSummaryResponseKeepsMoneyScale(t *testing.T) {
	summary := domain.LedgerSummary{
		InvoicesLinesSubtotal: decimal.RequireFromString("300"),
		TotalPayments:         decimal.RequireFromString("147.5"),
		NetLinesMinusPayments: decimal.RequireFromString("152.5"),
		ByMethod: []domain.MethodTotal{
			{Method: "Card", Amount: decimal.RequireFromString("147.5")},
			{Method: "Zelle", Amount: decimal.Zero},
		},
		Entries: []domain.LedgerDocument{},
	}

	raw, err := json.Marshal(dto.ToPaymentsSummaryResponse(summary, timeutil.MustNew("America/Los_Angeles")))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"invoicesLinesSubtotal": 300.00,
		"totalPayments": 147.50,
		"netLinesMinusPayments": 152.50,
		"byMethod": {"Card": 147.50, "Zelle": 0.00},
		"entries": []
	}`, string(raw))
	assert.Contains(t, string(raw), `"byMethod":{"Card":147.50,"Zelle":0.00}`)
}
