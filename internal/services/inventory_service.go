package services

import (
	"fmt"

	"github.com/kwadjo-mensah/shopledger-backend/internal/dto"
	"github.com/kwadjo-mensah/shopledger-backend/internal/models"
	"github.com/kwadjo-mensah/shopledger-backend/internal/tenant"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryService struct {
	db *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// RecordSupplierOrder logs the supplier delivery and increments stock in
// one transaction. The upsert keys on (business_id, product) so repeated
// receipts accumulate instead of duplicating rows.
func (s *InventoryService) RecordSupplierOrder(businessID uint, req *dto.SupplierOrderRequest) (*models.InventoryItem, error) {
	item := models.InventoryItem{
		BusinessID: businessID,
		Product:    req.Product,
		Quantity:   req.Quantity,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		order := models.Order{
			BusinessID: businessID,
			Supplier:   req.Supplier,
			Product:    req.Product,
			Quantity:   req.Quantity,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "business_id"}, {Name: "product"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("inventory_items.quantity + ?", req.Quantity),
			}),
		}).Create(&item).Error; err != nil {
			return fmt.Errorf("upsert inventory: %w", err)
		}

		// Re-read so the caller sees the accumulated quantity, not just
		// this delivery's.
		return tx.Scopes(tenant.ForBusiness(businessID)).
			Where("product = ?", req.Product).
			First(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *InventoryService) List(businessID uint) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := s.db.Scopes(tenant.ForBusiness(businessID)).
		Order("product").
		Find(&items).Error
	return items, err
}
