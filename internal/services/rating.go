package services

import (
	"database/sql"
	"math"

	"github.com/gharkakaam/marketplace-backend/internal/apperr"
	"github.com/gharkakaam/marketplace-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RatingAggregator recomputes a provider profile's cached rating from
// its verified reviews. It is the only code path that writes the
// rating column; callers pass their own transaction handle so the
// recompute commits or rolls back with the review mutation that
// triggered it.
type RatingAggregator struct{}

func NewRatingAggregator() *RatingAggregator {
	return &RatingAggregator{}
}

// Recompute writes the two-decimal mean of all verified review ratings
// for the profile, or 0 when none exist. Idempotent: recomputing with
// an unchanged review set yields the same value.
func (a *RatingAggregator) Recompute(tx *gorm.DB, providerID uuid.UUID) error {
	var avg sql.NullFloat64
	err := tx.Model(&models.Review{}).
		Where("provider_id = ? AND is_verified = ?", providerID, true).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return apperr.Internal(err)
	}

	rating := 0.0
	if avg.Valid {
		rating = math.Round(avg.Float64*100) / 100
	}

	res := tx.Model(&models.ProviderProfile{}).
		Where("id = ?", providerID).
		UpdateColumn("rating", rating)
	if res.Error != nil {
		return apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("provider not found")
	}
	return nil
}
