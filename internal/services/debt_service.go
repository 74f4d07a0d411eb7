package services

import (
	"errors"
	"fmt"

	"github.com/kwadjo-mensah/shopledger-backend/internal/models"
	"github.com/kwadjo-mensah/shopledger-backend/internal/tenant"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDebtNotFound = errors.New("debt not found")

type DebtService struct {
	db *gorm.DB
}

func NewDebtService(db *gorm.DB) *DebtService {
	return &DebtService{db: db}
}

func (s *DebtService) List(businessID uint) ([]models.Debt, error) {
	var debts []models.Debt
	err := s.db.Scopes(tenant.ForBusiness(businessID)).
		Order("created_at DESC").
		Find(&debts).Error
	return debts, err
}

// RecordPayment adds a payment to a debt and re-derives its status. The
// read takes a FOR UPDATE row lock so concurrent payments serialize on
// the debt and neither increment is lost; the status derivation needs
// the post-increment value, so the lock covers both.
func (s *DebtService) RecordPayment(businessID, debtID uint, amount decimal.Decimal) (*models.Debt, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("payment amount must be positive")
	}

	var debt models.Debt
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Scopes(tenant.ForBusiness(businessID)).
			First(&debt, debtID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDebtNotFound
			}
			return err
		}

		debt.PaymentAmount = debt.PaymentAmount.Add(amount)
		debt.Status = models.DeriveDebtStatus(debt.Amount, debt.PaymentAmount)

		return tx.Model(&debt).Updates(map[string]interface{}{
			"payment_amount": debt.PaymentAmount,
			"status":         debt.Status,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &debt, nil
}
