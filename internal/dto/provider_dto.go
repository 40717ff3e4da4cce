package dto

import (
	"github.com/gharkakaam/marketplace-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CreateProviderRequest struct {
	CategoryID            uuid.UUID      `json:"category_id"`
	ServiceTitle          string         `json:"service_title"`
	Description           string         `json:"description"`
	Specialties           datatypes.JSON `json:"specialties"`
	ExperienceYears       int            `json:"experience_years"`
	PriceRangeMin         *float64       `json:"price_range_min"`
	PriceRangeMax         *float64       `json:"price_range_max"`
	PriceUnit             string         `json:"price_unit"`
	Availability          datatypes.JSON `json:"availability"`
	ServiceArea           string         `json:"service_area"`
	VerificationDocuments datatypes.JSON `json:"verification_documents"`
}

// UpdateProviderRequest carries only the owner-updatable fields; nil
// pointers leave the stored value untouched.
type UpdateProviderRequest struct {
	ServiceTitle          *string         `json:"service_title"`
	Description           *string         `json:"description"`
	Specialties           *datatypes.JSON `json:"specialties"`
	ExperienceYears       *int            `json:"experience_years"`
	PriceRangeMin         *float64        `json:"price_range_min"`
	PriceRangeMax         *float64        `json:"price_range_max"`
	PriceUnit             *string         `json:"price_unit"`
	Availability          *datatypes.JSON `json:"availability"`
	ServiceArea           *string         `json:"service_area"`
	VerificationDocuments *datatypes.JSON `json:"verification_documents"`
}

type ProviderSearchQuery struct {
	CategoryID uuid.UUID
	Location   string
	Search     string
	MinRating  float64
}

type ProvidersListResponse struct {
	Providers   []models.ProviderProfile `json:"providers"`
	Total       int64                    `json:"total"`
	Pages       int                      `json:"pages"`
	CurrentPage int                      `json:"current_page"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type CategoriesResponse struct {
	Categories []models.ServiceCategory `json:"categories"`
}
