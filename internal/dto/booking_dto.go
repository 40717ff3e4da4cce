package dto

import (
	"github.com/gharkakaam/marketplace-backend/internal/models"
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ProviderID          uuid.UUID `json:"provider_id"`
	ServiceDate         string    `json:"service_date"`
	ServiceDuration     int       `json:"service_duration"`
	ServiceAddress      string    `json:"service_address"`
	SpecialRequirements string    `json:"special_requirements"`
	EstimatedPrice      *float64  `json:"estimated_price"`
}

type UpdateBookingStatusRequest struct {
	Status     string   `json:"status"`
	Notes      *string  `json:"notes"`
	FinalPrice *float64 `json:"final_price"`
}

type BookingsListResponse struct {
	Bookings    []models.Booking `json:"bookings"`
	Total       int64            `json:"total"`
	Pages       int              `json:"pages"`
	CurrentPage int              `json:"current_page"`
}
