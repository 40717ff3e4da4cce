package dto

import "github.com/gharkakaam/marketplace-backend/internal/models"

type UsersListResponse struct {
	Users       []models.User `json:"users"`
	Total       int64         `json:"total"`
	Pages       int           `json:"pages"`
	CurrentPage int           `json:"current_page"`
}
