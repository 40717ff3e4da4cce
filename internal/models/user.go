package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of account roles. Permission checks match on
// it exhaustively rather than comparing free-form strings.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleProvider, RoleAdmin:
		return true
	}
	return false
}

// User is an account of any role. A provider-role user owns at most
// one ProviderProfile, removed together with the user.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string         `gorm:"size:100;not null" json:"name"`
	Email        string         `gorm:"size:120;not null;uniqueIndex" json:"email"`
	Phone        string         `gorm:"size:15;not null" json:"phone"`
	Password     string         `gorm:"size:255;not null" json:"-"`
	Role         Role           `gorm:"size:20;not null;default:'customer'" json:"role"`
	Location     string         `gorm:"size:200" json:"location"`
	IsVerified   bool           `gorm:"default:false" json:"is_verified"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	ProfileImage string         `gorm:"size:255" json:"profile_image"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Profile *ProviderProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
