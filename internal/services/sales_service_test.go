package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDebtForSale(t *testing.T) {
	d := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	tests := []struct {
		name  string
		total decimal.Decimal
		paid  decimal.Decimal
		want  decimal.Decimal
	}{
		{"partial payment leaves a debt", d("100.00"), d("60.00"), d("40.00")},
		{"paid in full", d("100.00"), d("100.00"), d("0")},
		{"overpaid clamps to zero", d("100.00"), d("120.00"), d("0")},
		{"nothing paid", d("75.25"), d("0"), d("75.25")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DebtForSale(tt.total, tt.paid)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}
