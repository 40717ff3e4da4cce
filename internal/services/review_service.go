package services

import (
	"errors"

	"github.com/gharkakaam/marketplace-backend/internal/apperr"
	"github.com/gharkakaam/marketplace-backend/internal/dto"
	"github.com/gharkakaam/marketplace-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewService owns the review lifecycle: one verified review per
// completed booking, written by the booking's customer. Every mutation
// commits the review write, the profile's review counter, and the
// rating recompute as one transaction.
type ReviewService struct {
	db     *gorm.DB
	rating *RatingAggregator
	filter *ContentFilter
}

func NewReviewService(db *gorm.DB, rating *RatingAggregator, filter *ContentFilter) *ReviewService {
	return &ReviewService{db: db, rating: rating, filter: filter}
}

func (s *ReviewService) Create(customerID uuid.UUID, req *dto.CreateReviewRequest) (*models.Review, error) {
	if req.BookingID == uuid.Nil {
		return nil, apperr.Validation("booking_id is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperr.Validation("rating must be between 1 and 5")
	}

	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", req.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("booking not found")
		}
		return nil, apperr.Internal(err)
	}

	if booking.CustomerID != customerID {
		return nil, apperr.Permission("only the booking's customer can review it")
	}
	if booking.Status != models.BookingCompleted {
		return nil, apperr.InvalidState("can only review completed bookings")
	}

	var existing models.Review
	err := s.db.First(&existing, "booking_id = ?", req.BookingID).Error
	if err == nil {
		return nil, apperr.Conflict("review already exists for this booking")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}

	if ok, reason := s.filter.Check(req.Comment); !ok {
		return nil, apperr.Validation(s.filter.RejectionMessage(reason))
	}

	review := models.Review{
		ID:         uuid.New(),
		BookingID:  booking.ID,
		CustomerID: customerID,
		ProviderID: booking.ProviderID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		IsVerified: true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			// Unique index on booking_id closes the race between the
			// existence check above and this insert.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Conflict("review already exists for this booking")
			}
			return apperr.Internal(err)
		}

		res := tx.Model(&models.ProviderProfile{}).
			Where("id = ?", booking.ProviderID).
			UpdateColumn("total_reviews", gorm.Expr("total_reviews + 1"))
		if res.Error != nil {
			return apperr.Internal(res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("provider not found")
		}

		return s.rating.Recompute(tx, booking.ProviderID)
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *ReviewService) Update(reviewID, callerID uuid.UUID, req *dto.UpdateReviewRequest) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, "id = ?", reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("review not found")
		}
		return nil, apperr.Internal(err)
	}

	if review.CustomerID != callerID {
		return nil, apperr.Permission("only the review author can update it")
	}

	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return nil, apperr.Validation("rating must be between 1 and 5")
	}
	if req.Comment != nil {
		if ok, reason := s.filter.Check(*req.Comment); !ok {
			return nil, apperr.Validation(s.filter.RejectionMessage(reason))
		}
	}

	updates := map[string]interface{}{}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.Comment != nil {
		updates["comment"] = *req.Comment
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&review).Updates(updates).Error; err != nil {
				return apperr.Internal(err)
			}
		}
		return s.rating.Recompute(tx, review.ProviderID)
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.First(&review, "id = ?", review.ID).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &review, nil
}

func (s *ReviewService) Delete(reviewID, callerID uuid.UUID) error {
	var review models.Review
	if err := s.db.First(&review, "id = ?", reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("review not found")
		}
		return apperr.Internal(err)
	}

	if review.CustomerID != callerID {
		return apperr.Permission("only the review author can delete it")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		// The counter tracks verified reviews only; deleting an
		// unverified one must not move it.
		if review.IsVerified {
			res := tx.Model(&models.ProviderProfile{}).
				Where("id = ?", review.ProviderID).
				UpdateColumn("total_reviews", gorm.Expr("total_reviews - 1"))
			if res.Error != nil {
				return apperr.Internal(res.Error)
			}
			if res.RowsAffected == 0 {
				return apperr.NotFound("provider not found")
			}
		}

		if err := tx.Delete(&models.Review{}, "id = ?", review.ID).Error; err != nil {
			return apperr.Internal(err)
		}

		return s.rating.Recompute(tx, review.ProviderID)
	})
}

// ListForProvider returns only verified reviews, newest first.
func (s *ReviewService) ListForProvider(providerID uuid.UUID, limit, offset int) ([]models.Review, int64, error) {
	var total int64
	err := s.db.Model(&models.Review{}).
		Where("provider_id = ? AND is_verified = ?", providerID, true).
		Count(&total).Error
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}

	var reviews []models.Review
	err = s.db.
		Where("provider_id = ? AND is_verified = ?", providerID, true).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return reviews, total, nil
}
