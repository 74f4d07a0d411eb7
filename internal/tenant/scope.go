package tenant

import "gorm.io/gorm"

// ForBusiness returns a GORM scope that filters by business_id.
func ForBusiness(businessID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("business_id = ?", businessID)
	}
}
