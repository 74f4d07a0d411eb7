package services

import (
	"fmt"

	"github.com/kwadjo-mensah/shopledger-backend/internal/dto"
	"github.com/kwadjo-mensah/shopledger-backend/internal/models"
	"github.com/kwadjo-mensah/shopledger-backend/internal/tenant"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SalesService struct {
	db *gorm.DB
}

func NewSalesService(db *gorm.DB) *SalesService {
	return &SalesService{db: db}
}

// DebtForSale returns what remains owed on a sale, zero when paid in full
// or overpaid.
func DebtForSale(total, paid decimal.Decimal) decimal.Decimal {
	debt := total.Sub(paid)
	if debt.IsNegative() {
		return decimal.Zero
	}
	return debt
}

// RecordQuickSale writes the sale and, when paid falls short of total,
// the matching debt row in a single transaction so neither can exist
// without the other.
func (s *SalesService) RecordQuickSale(businessID uint, req *dto.QuickSaleRequest) (*models.Sale, error) {
	if req.Total.IsNegative() || req.Paid.IsNegative() {
		return nil, fmt.Errorf("total and paid must not be negative")
	}

	debt := DebtForSale(req.Total, req.Paid)

	sale := models.Sale{
		BusinessID: businessID,
		Total:      req.Total,
		Paid:       req.Paid,
		Customer:   req.Customer,
	}
	for _, item := range req.Items {
		sale.Items = append(sale.Items, models.SaleItem{
			Product:  item.Product,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sale).Error; err != nil {
			return fmt.Errorf("create sale: %w", err)
		}
		if debt.IsPositive() {
			d := models.Debt{
				BusinessID: businessID,
				Customer:   req.Customer,
				Amount:     debt,
				Status:     models.DebtPending,
			}
			if err := tx.Create(&d).Error; err != nil {
				return fmt.Errorf("create debt: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (s *SalesService) List(businessID uint) ([]models.Sale, error) {
	var sales []models.Sale
	err := s.db.Scopes(tenant.ForBusiness(businessID)).
		Preload("Items").
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

// RevenueTotal sums all sale totals for one business.
func (s *SalesService) RevenueTotal(businessID uint) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := s.db.Model(&models.Sale{}).
		Scopes(tenant.ForBusiness(businessID)).
		Select("SUM(total)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
