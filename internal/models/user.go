package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of permission levels. Platform admins are not
// tied to a business; everyone else belongs to exactly one.
type Role string

const (
	RoleOwner         Role = "owner"
	RoleManager       Role = "manager"
	RoleCashier       Role = "cashier"
	RolePlatformAdmin Role = "platform_admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleManager, RoleCashier, RolePlatformAdmin:
		return true
	}
	return false
}

// User belongs to a single business (nil for platform admins). The
// partial unique index on business_id keeps each business at exactly one
// owner row.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string    `gorm:"not null;size:255" json:"name"`
	Email      string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	Role       Role      `gorm:"not null;size:20;default:'cashier'" json:"role"`
	BusinessID *uint     `gorm:"index;uniqueIndex:idx_users_single_owner,where:role = 'owner'" json:"business_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
