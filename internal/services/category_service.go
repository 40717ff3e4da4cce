package services

import (
	"errors"

	"github.com/gharkakaam/marketplace-backend/internal/apperr"
	"github.com/gharkakaam/marketplace-backend/internal/dto"
	"github.com/gharkakaam/marketplace-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) List() ([]models.ServiceCategory, error) {
	var categories []models.ServiceCategory
	if err := s.db.Where("is_active = ?", true).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return categories, nil
}

// Create adds a category. Admin-only, enforced by route middleware.
func (s *CategoryService) Create(req *dto.CreateCategoryRequest) (*models.ServiceCategory, error) {
	if req.Name == "" {
		return nil, apperr.Validation("category name is required")
	}

	category := models.ServiceCategory{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		IsActive:    true,
	}
	if err := s.db.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("category already exists")
		}
		return nil, apperr.Internal(err)
	}
	return &category, nil
}
