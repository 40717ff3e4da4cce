package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is written by a booking's customer after completion. The
// unique index on BookingID enforces at most one review per booking.
// Only verified reviews count toward the provider's aggregate rating.
type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BookingID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"booking_id"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	ProviderID uuid.UUID `gorm:"type:uuid;not null;index" json:"provider_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment"`
	// No DB default: a false here must survive a struct insert, and a
	// bool default would make GORM omit the zero value from the INSERT.
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`

	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
}
