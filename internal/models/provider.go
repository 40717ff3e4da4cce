package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProviderProfile is a provider's bookable service listing.
//
// Rating and TotalReviews are derived state: Rating always equals the
// two-decimal mean of all verified reviews referencing the profile
// (0 when there are none) and TotalReviews their count. Only the
// rating aggregator writes Rating.
type ProviderProfile struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CategoryID            uuid.UUID      `gorm:"type:uuid;not null;index" json:"category_id"`
	ServiceTitle          string         `gorm:"size:200;not null" json:"service_title"`
	Description           string         `gorm:"type:text;not null" json:"description"`
	Specialties           datatypes.JSON `gorm:"type:jsonb" json:"specialties"`
	ExperienceYears       int            `json:"experience_years"`
	PriceRangeMin         *float64       `gorm:"type:numeric(10,2)" json:"price_range_min"`
	PriceRangeMax         *float64       `gorm:"type:numeric(10,2)" json:"price_range_max"`
	PriceUnit             string         `gorm:"size:50" json:"price_unit"`
	Availability          datatypes.JSON `gorm:"type:jsonb" json:"availability"`
	ServiceArea           string         `gorm:"size:500" json:"service_area"`
	Rating                float64        `gorm:"type:numeric(3,2);default:0" json:"rating"`
	TotalReviews          int            `gorm:"default:0" json:"total_reviews"`
	TotalBookings         int            `gorm:"default:0" json:"total_bookings"`
	IsApproved            bool           `gorm:"default:false" json:"is_approved"`
	IsActive              bool           `gorm:"default:true" json:"is_active"`
	VerificationDocuments datatypes.JSON `gorm:"type:jsonb" json:"verification_documents"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`

	User     User            `gorm:"foreignKey:UserID" json:"-"`
	Category ServiceCategory `gorm:"foreignKey:CategoryID" json:"-"`
}

func (ProviderProfile) TableName() string { return "service_providers" }
