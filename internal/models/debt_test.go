package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeriveDebtStatus(t *testing.T) {
	d := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	tests := []struct {
		name    string
		amount  decimal.Decimal
		payment decimal.Decimal
		want    DebtStatus
	}{
		{"no payment", d("40.00"), d("0"), DebtPending},
		{"partial payment", d("40.00"), d("15.50"), DebtPartial},
		{"paid exactly", d("40.00"), d("40.00"), DebtPaid},
		{"overpaid", d("40.00"), d("45.00"), DebtPaid},
		{"cent short stays partial", d("40.00"), d("39.99"), DebtPartial},
		{"zero amount", d("0"), d("0"), DebtPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveDebtStatus(tt.amount, tt.payment))
		})
	}
}
