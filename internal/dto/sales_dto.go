package dto

import "github.com/shopspring/decimal"

// QuickSaleRequest records a POS sale; paid may fall short of total, in
// which case the shortfall becomes a debt.
type QuickSaleRequest struct {
	Total    decimal.Decimal `json:"total" validate:"required"`
	Paid     decimal.Decimal `json:"paid"`
	Customer string          `json:"customer"`
	Items    []QuickSaleItem `json:"items" validate:"dive"`
}

type QuickSaleItem struct {
	Product  string          `json:"product" validate:"required"`
	Quantity int             `json:"quantity" validate:"required,gt=0"`
	Price    decimal.Decimal `json:"price"`
}

type DebtPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

type SupplierOrderRequest struct {
	Supplier string `json:"supplier"`
	Product  string `json:"product" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}
