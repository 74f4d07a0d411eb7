package services

import (
	"github.com/kwadjo-mensah/shopledger-backend/internal/dto"
	"github.com/kwadjo-mensah/shopledger-backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Monthly plan price used for the operator revenue estimate, in whole
// currency units.
const monthlyPlanPrice = 19

// PlatformService serves the operator-only surface. Its queries are the
// only ones in the repo not scoped by business_id.
type PlatformService struct {
	db *gorm.DB
}

func NewPlatformService(db *gorm.DB) *PlatformService {
	return &PlatformService{db: db}
}

func (s *PlatformService) Stats() (*dto.PlatformStatsResponse, error) {
	var totalBusinesses, activeSubs int64
	if err := s.db.Model(&models.Business{}).Count(&totalBusinesses).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Business{}).
		Where("subscription_active = true").
		Count(&activeSubs).Error; err != nil {
		return nil, err
	}

	var totalSales decimal.NullDecimal
	if err := s.db.Model(&models.Sale{}).Select("SUM(total)").Scan(&totalSales).Error; err != nil {
		return nil, err
	}
	total := decimal.Zero
	if totalSales.Valid {
		total = totalSales.Decimal
	}

	return &dto.PlatformStatsResponse{
		TotalBusinesses:     totalBusinesses,
		ActiveSubscriptions: activeSubs,
		TotalSales:          total.StringFixed(2),
	}, nil
}

func (s *PlatformService) ListBusinesses() ([]models.Business, error) {
	var businesses []models.Business
	err := s.db.Select("id", "name", "subscription_active", "trial_end").
		Order("created_at DESC").
		Find(&businesses).Error
	return businesses, err
}

func (s *PlatformService) Revenue() (*dto.PlatformRevenueResponse, error) {
	var paying int64
	if err := s.db.Model(&models.Business{}).
		Where("subscription_active = true").
		Count(&paying).Error; err != nil {
		return nil, err
	}
	return &dto.PlatformRevenueResponse{
		PayingBusinesses:        paying,
		EstimatedMonthlyRevenue: paying * monthlyPlanPrice,
	}, nil
}
