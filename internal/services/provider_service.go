package services

import (
	"errors"

	"github.com/gharkakaam/marketplace-backend/internal/apperr"
	"github.com/gharkakaam/marketplace-backend/internal/dto"
	"github.com/gharkakaam/marketplace-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProviderService struct {
	db *gorm.DB
}

func NewProviderService(db *gorm.DB) *ProviderService {
	return &ProviderService{db: db}
}

// Search lists approved, active profiles filtered by category,
// service area, free text and minimum rating, best-rated first.
func (s *ProviderService) Search(q *dto.ProviderSearchQuery, limit, offset int) ([]models.ProviderProfile, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		query := db.Where("service_providers.is_approved = ? AND service_providers.is_active = ?", true, true)
		if q.CategoryID != uuid.Nil {
			query = query.Where("service_providers.category_id = ?", q.CategoryID)
		}
		if q.Location != "" {
			query = query.Where("LOWER(service_providers.service_area) LIKE LOWER(?)", "%"+q.Location+"%")
		}
		if q.Search != "" {
			pattern := "%" + q.Search + "%"
			query = query.
				Joins("JOIN users ON users.id = service_providers.user_id").
				Where("LOWER(service_providers.service_title) LIKE LOWER(?) OR LOWER(service_providers.description) LIKE LOWER(?) OR LOWER(users.name) LIKE LOWER(?)",
					pattern, pattern, pattern)
		}
		if q.MinRating > 0 {
			query = query.Where("service_providers.rating >= ?", q.MinRating)
		}
		return query
	}

	var total int64
	if err := scope(s.db.Model(&models.ProviderProfile{})).Count(&total).Error; err != nil {
		return nil, 0, apperr.Internal(err)
	}

	var providers []models.ProviderProfile
	err := scope(s.db.Model(&models.ProviderProfile{})).
		Order("service_providers.rating DESC, service_providers.total_reviews DESC").
		Limit(limit).
		Offset(offset).
		Find(&providers).Error
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return providers, total, nil
}

func (s *ProviderService) Get(providerID uuid.UUID) (*models.ProviderProfile, error) {
	var provider models.ProviderProfile
	if err := s.db.First(&provider, "id = ?", providerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("provider not found")
		}
		return nil, apperr.Internal(err)
	}
	return &provider, nil
}

// Create opens a provider profile for a provider-role user. At most
// one profile per user.
func (s *ProviderService) Create(userID uuid.UUID, req *dto.CreateProviderRequest) (*models.ProviderProfile, error) {
	caller, err := loadCaller(s.db, userID)
	if err != nil {
		return nil, err
	}
	if caller.Role != models.RoleProvider {
		return nil, apperr.Permission("only service providers can create profiles")
	}

	var existing models.ProviderProfile
	if err := s.db.First(&existing, "user_id = ?", userID).Error; err == nil {
		return nil, apperr.Conflict("provider profile already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}

	if req.CategoryID == uuid.Nil || req.ServiceTitle == "" || req.Description == "" {
		return nil, apperr.Validation("category_id, service_title and description are required")
	}

	provider := models.ProviderProfile{
		ID:                    uuid.New(),
		UserID:                userID,
		CategoryID:            req.CategoryID,
		ServiceTitle:          req.ServiceTitle,
		Description:           req.Description,
		Specialties:           req.Specialties,
		ExperienceYears:       req.ExperienceYears,
		PriceRangeMin:         req.PriceRangeMin,
		PriceRangeMax:         req.PriceRangeMax,
		PriceUnit:             req.PriceUnit,
		Availability:          req.Availability,
		ServiceArea:           req.ServiceArea,
		VerificationDocuments: req.VerificationDocuments,
	}
	if err := s.db.Create(&provider).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("provider profile already exists")
		}
		return nil, apperr.Internal(err)
	}
	return &provider, nil
}

// Update applies owner-supplied profile changes. Rating, counters and
// approval are never updatable here.
func (s *ProviderService) Update(providerID, callerID uuid.UUID, req *dto.UpdateProviderRequest) (*models.ProviderProfile, error) {
	var provider models.ProviderProfile
	if err := s.db.First(&provider, "id = ?", providerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("provider not found")
		}
		return nil, apperr.Internal(err)
	}

	if provider.UserID != callerID {
		return nil, apperr.Permission("only the profile owner can update it")
	}

	updates := map[string]interface{}{}
	if req.ServiceTitle != nil {
		updates["service_title"] = *req.ServiceTitle
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Specialties != nil {
		updates["specialties"] = *req.Specialties
	}
	if req.ExperienceYears != nil {
		updates["experience_years"] = *req.ExperienceYears
	}
	if req.PriceRangeMin != nil {
		updates["price_range_min"] = *req.PriceRangeMin
	}
	if req.PriceRangeMax != nil {
		updates["price_range_max"] = *req.PriceRangeMax
	}
	if req.PriceUnit != nil {
		updates["price_unit"] = *req.PriceUnit
	}
	if req.Availability != nil {
		updates["availability"] = *req.Availability
	}
	if req.ServiceArea != nil {
		updates["service_area"] = *req.ServiceArea
	}
	if req.VerificationDocuments != nil {
		updates["verification_documents"] = *req.VerificationDocuments
	}

	if len(updates) > 0 {
		if err := s.db.Model(&provider).Updates(updates).Error; err != nil {
			return nil, apperr.Internal(err)
		}
	}

	if err := s.db.First(&provider, "id = ?", provider.ID).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &provider, nil
}

// Approve marks a profile as bookable. Admin-only, enforced by route
// middleware.
func (s *ProviderService) Approve(providerID uuid.UUID) (*models.ProviderProfile, error) {
	var provider models.ProviderProfile
	if err := s.db.First(&provider, "id = ?", providerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("provider not found")
		}
		return nil, apperr.Internal(err)
	}

	if err := s.db.Model(&provider).Update("is_approved", true).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	provider.IsApproved = true
	return &provider, nil
}
