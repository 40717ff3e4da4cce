package services

import (
	"errors"

	"github.com/gharkakaam/marketplace-backend/internal/apperr"
	"github.com/gharkakaam/marketplace-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// List returns active users, optionally filtered by role.
func (s *UserService) List(role string, limit, offset int) ([]models.User, int64, error) {
	if role != "" && !models.Role(role).Valid() {
		return nil, 0, apperr.Validation("invalid user role")
	}

	scope := func(db *gorm.DB) *gorm.DB {
		q := db.Where("is_active = ?", true)
		if role != "" {
			q = q.Where("role = ?", role)
		}
		return q
	}

	var total int64
	if err := scope(s.db.Model(&models.User{})).Count(&total).Error; err != nil {
		return nil, 0, apperr.Internal(err)
	}

	var users []models.User
	err := scope(s.db.Model(&models.User{})).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return users, total, nil
}

func (s *UserService) Get(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Internal(err)
	}
	return &user, nil
}

// Verify marks an account as identity-verified. Admin-only, enforced
// by route middleware.
func (s *UserService) Verify(userID uuid.UUID) (*models.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(user).Update("is_verified", true).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	user.IsVerified = true
	return user, nil
}
