package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// bookingTransitions is the full status graph. Completed and cancelled
// have no outgoing edges: they are terminal.
var bookingTransitions = map[BookingStatus]map[BookingStatus]struct{}{
	BookingPending: {
		BookingConfirmed: {},
		BookingCancelled: {},
	},
	BookingConfirmed: {
		BookingInProgress: {},
		BookingCancelled:  {},
	},
	BookingInProgress: {
		BookingCompleted: {},
		BookingCancelled: {},
	},
	BookingCompleted: {},
	BookingCancelled: {},
}

func (s BookingStatus) Valid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

// Terminal reports whether no further transition is permitted from s.
func (s BookingStatus) Terminal() bool {
	allowed, ok := bookingTransitions[s]
	return ok && len(allowed) == 0
}

// CanTransition returns whether a booking may move from one status to
// the target status. Self-transitions are not permitted.
func CanTransition(from, to BookingStatus) bool {
	allowed, ok := bookingTransitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// Booking is created by a customer in the pending status and mutated
// only through status transitions. Bookings are never hard-deleted.
type Booking struct {
	ID                  uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID          uuid.UUID     `gorm:"type:uuid;not null;index" json:"customer_id"`
	ProviderID          uuid.UUID     `gorm:"type:uuid;not null;index" json:"provider_id"`
	ServiceDate         time.Time     `gorm:"not null" json:"service_date"`
	ServiceDuration     int           `json:"service_duration"`
	ServiceAddress      string        `gorm:"type:text;not null" json:"service_address"`
	SpecialRequirements string        `gorm:"type:text" json:"special_requirements"`
	EstimatedPrice      *float64      `gorm:"type:numeric(10,2)" json:"estimated_price"`
	FinalPrice          *float64      `gorm:"type:numeric(10,2)" json:"final_price"`
	Status              BookingStatus `gorm:"size:20;not null;default:'pending';index" json:"status"`
	PaymentStatus       string        `gorm:"size:50;default:'pending'" json:"payment_status"`
	Notes               string        `gorm:"type:text" json:"notes"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`

	Customer User            `gorm:"foreignKey:CustomerID" json:"-"`
	Provider ProviderProfile `gorm:"foreignKey:ProviderID" json:"-"`
}
