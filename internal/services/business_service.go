package services

import (
	"errors"
	"fmt"

	"github.com/kwadjo-mensah/shopledger-backend/internal/dto"
	"github.com/kwadjo-mensah/shopledger-backend/internal/models"
	"gorm.io/gorm"
)

type BusinessService struct {
	db *gorm.DB
}

func NewBusinessService(db *gorm.DB) *BusinessService {
	return &BusinessService{db: db}
}

func (s *BusinessService) Get(businessID uint) (*models.Business, error) {
	var biz models.Business
	if err := s.db.First(&biz, businessID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return &biz, nil
}

// Update applies only the fields present in the request.
func (s *BusinessService) Update(businessID uint, req *dto.UpdateBusinessRequest) (*models.Business, error) {
	updates := map[string]interface{}{}
	if req.ShopName != nil {
		updates["shop_name"] = *req.ShopName
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.LogoURL != nil {
		updates["logo_url"] = *req.LogoURL
	}

	if len(updates) > 0 {
		res := s.db.Model(&models.Business{}).Where("id = ?", businessID).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, ErrBusinessNotFound
		}
	}
	return s.Get(businessID)
}

// DeleteAccount removes the whole tenant in one transaction, child rows
// before parents so foreign keys hold throughout. Partial completion is
// never observable.
func (s *BusinessService) DeleteAccount(businessID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sale_id IN (?)",
			tx.Model(&models.Sale{}).Select("id").Where("business_id = ?", businessID),
		).Delete(&models.SaleItem{}).Error; err != nil {
			return fmt.Errorf("delete sale items: %w", err)
		}
		if err := tx.Where("business_id = ?", businessID).Delete(&models.Sale{}).Error; err != nil {
			return fmt.Errorf("delete sales: %w", err)
		}
		if err := tx.Where("business_id = ?", businessID).Delete(&models.InventoryItem{}).Error; err != nil {
			return fmt.Errorf("delete inventory: %w", err)
		}
		if err := tx.Where("business_id = ?", businessID).Delete(&models.Customer{}).Error; err != nil {
			return fmt.Errorf("delete customers: %w", err)
		}
		if err := tx.Where("business_id = ?", businessID).Delete(&models.Debt{}).Error; err != nil {
			return fmt.Errorf("delete debts: %w", err)
		}
		if err := tx.Where("business_id = ?", businessID).Delete(&models.Order{}).Error; err != nil {
			return fmt.Errorf("delete orders: %w", err)
		}
		if err := tx.Where("business_id = ?", businessID).Delete(&models.SubscriptionPayment{}).Error; err != nil {
			return fmt.Errorf("delete subscription payments: %w", err)
		}
		if err := tx.Where("user_id IN (?)",
			tx.Model(&models.User{}).Select("id").Where("business_id = ?", businessID),
		).Delete(&models.PasswordResetToken{}).Error; err != nil {
			return fmt.Errorf("delete reset tokens: %w", err)
		}
		if err := tx.Where("business_id = ?", businessID).Delete(&models.User{}).Error; err != nil {
			return fmt.Errorf("delete users: %w", err)
		}
		if err := tx.Delete(&models.Business{}, businessID).Error; err != nil {
			return fmt.Errorf("delete business: %w", err)
		}
		return nil
	})
}
