package dto

import (
	"github.com/gharkakaam/marketplace-backend/internal/models"
	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	BookingID uuid.UUID `json:"booking_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

type ReviewsListResponse struct {
	Reviews     []models.Review `json:"reviews"`
	Total       int64           `json:"total"`
	Pages       int             `json:"pages"`
	CurrentPage int             `json:"current_page"`
}
