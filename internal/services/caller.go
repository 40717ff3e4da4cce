package services

import (
	"errors"

	"github.com/gharkakaam/marketplace-backend/internal/apperr"
	"github.com/gharkakaam/marketplace-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// loadCaller resolves an authenticated user id to its account row.
// A missing or deactivated account means the identity cannot be
// established, regardless of what the token claims.
func loadCaller(db *gorm.DB, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Auth("account not found")
		}
		return nil, apperr.Internal(err)
	}
	if !user.IsActive {
		return nil, apperr.Auth("account is deactivated")
	}
	return &user, nil
}
