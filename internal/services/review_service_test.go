package services

import (
	"testing"

	"github.com/gharkakaam/marketplace-backend/internal/apperr"
	"github.com/gharkakaam/marketplace-backend/internal/dto"
	"github.com/gharkakaam/marketplace-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(db, NewRatingAggregator(), NewContentFilter())
}

func TestReviewCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)

	customer, profile, booking := completedBooking(t, db)

	t.Run("creates verified review and updates aggregates", func(t *testing.T) {
		review, err := svc.Create(customer.ID, &dto.CreateReviewRequest{
			BookingID: booking.ID,
			Rating:    5,
			Comment:   "quick and tidy work",
		})
		require.NoError(t, err)
		assert.True(t, review.IsVerified)
		assert.Equal(t, profile.ID, review.ProviderID)

		updated := reloadProfile(t, db, profile.ID)
		assert.Equal(t, 1, updated.TotalReviews)
		assert.Equal(t, 5.0, updated.Rating)
	})

	t.Run("second review for same booking conflicts", func(t *testing.T) {
		_, err := svc.Create(customer.ID, &dto.CreateReviewRequest{
			BookingID: booking.ID,
			Rating:    4,
		})
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
		assert.Equal(t, 1, reloadProfile(t, db, profile.ID).TotalReviews)
	})

	t.Run("missing booking id", func(t *testing.T) {
		_, err := svc.Create(customer.ID, &dto.CreateReviewRequest{Rating: 5})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("rating out of range", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			_, err := svc.Create(customer.ID, &dto.CreateReviewRequest{
				BookingID: booking.ID,
				Rating:    rating,
			})
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err), "rating %d", rating)
		}
	})

	t.Run("booking not found", func(t *testing.T) {
		_, err := svc.Create(customer.ID, &dto.CreateReviewRequest{
			BookingID: uuid.New(),
			Rating:    5,
		})
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("only the booking customer may review", func(t *testing.T) {
		stranger := seedUser(t, db, models.RoleCustomer)
		_, err := svc.Create(stranger.ID, &dto.CreateReviewRequest{
			BookingID: booking.ID,
			Rating:    5,
		})
		assert.Equal(t, apperr.KindPermission, apperr.KindOf(err))
	})

	t.Run("booking must be completed", func(t *testing.T) {
		for _, status := range []models.BookingStatus{
			models.BookingPending,
			models.BookingConfirmed,
			models.BookingInProgress,
			models.BookingCancelled,
		} {
			open := seedBooking(t, db, customer.ID, profile.ID, status)
			_, err := svc.Create(customer.ID, &dto.CreateReviewRequest{
				BookingID: open.ID,
				Rating:    5,
			})
			assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err), "status %s", status)
		}
	})

	t.Run("filtered comment is rejected", func(t *testing.T) {
		open := seedBooking(t, db, customer.ID, profile.ID, models.BookingCompleted)
		for _, comment := range []string{
			"absolute shit, avoid",
			"book direct at https://cheaper.example.com",
			"call me on 555-123-4567",
		} {
			_, err := svc.Create(customer.ID, &dto.CreateReviewRequest{
				BookingID: open.ID,
				Rating:    1,
				Comment:   comment,
			})
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err), "comment %q", comment)
		}
	})
}

// A review insert that cannot reach its provider profile must leave no
// trace: the whole transaction rolls back.
func TestReviewCreateRollsBackWithoutProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)

	customer, profile, booking := completedBooking(t, db)
	require.NoError(t, db.Exec("DELETE FROM service_providers WHERE id = ?", profile.ID).Error)

	_, err := svc.Create(customer.ID, &dto.CreateReviewRequest{
		BookingID: booking.ID,
		Rating:    5,
	})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestReviewUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)

	customer, profile, booking := completedBooking(t, db)
	review, err := svc.Create(customer.ID, &dto.CreateReviewRequest{
		BookingID: booking.ID,
		Rating:    5,
		Comment:   "great",
	})
	require.NoError(t, err)

	t.Run("rating change recomputes the aggregate", func(t *testing.T) {
		newRating := 3
		updated, err := svc.Update(review.ID, customer.ID, &dto.UpdateReviewRequest{
			Rating: &newRating,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, updated.Rating)
		assert.Equal(t, "great", updated.Comment)
		assert.Equal(t, 3.0, reloadProfile(t, db, profile.ID).Rating)
	})

	t.Run("comment-only change keeps the rating", func(t *testing.T) {
		comment := "good, a bit late"
		updated, err := svc.Update(review.ID, customer.ID, &dto.UpdateReviewRequest{
			Comment: &comment,
		})
		require.NoError(t, err)
		assert.Equal(t, comment, updated.Comment)
		assert.Equal(t, 3.0, reloadProfile(t, db, profile.ID).Rating)
	})

	t.Run("only the author may update", func(t *testing.T) {
		stranger := seedUser(t, db, models.RoleCustomer)
		rating := 1
		_, err := svc.Update(review.ID, stranger.ID, &dto.UpdateReviewRequest{Rating: &rating})
		assert.Equal(t, apperr.KindPermission, apperr.KindOf(err))
	})

	t.Run("rating out of range", func(t *testing.T) {
		rating := 9
		_, err := svc.Update(review.ID, customer.ID, &dto.UpdateReviewRequest{Rating: &rating})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("filtered comment", func(t *testing.T) {
		comment := "email me at someone@example.com"
		_, err := svc.Update(review.ID, customer.ID, &dto.UpdateReviewRequest{Comment: &comment})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("unknown review", func(t *testing.T) {
		rating := 4
		_, err := svc.Update(uuid.New(), customer.ID, &dto.UpdateReviewRequest{Rating: &rating})
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestReviewDelete(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)

	customer, profile, _ := completedBooking(t, db)
	first := seedBooking(t, db, customer.ID, profile.ID, models.BookingCompleted)
	second := seedBooking(t, db, customer.ID, profile.ID, models.BookingCompleted)

	fourStars, err := svc.Create(customer.ID, &dto.CreateReviewRequest{BookingID: first.ID, Rating: 4})
	require.NoError(t, err)
	_, err = svc.Create(customer.ID, &dto.CreateReviewRequest{BookingID: second.ID, Rating: 5})
	require.NoError(t, err)
	require.Equal(t, 4.5, reloadProfile(t, db, profile.ID).Rating)

	t.Run("only the author may delete", func(t *testing.T) {
		stranger := seedUser(t, db, models.RoleCustomer)
		err := svc.Delete(fourStars.ID, stranger.ID)
		assert.Equal(t, apperr.KindPermission, apperr.KindOf(err))
	})

	t.Run("delete recomputes from the remaining reviews", func(t *testing.T) {
		require.NoError(t, svc.Delete(fourStars.ID, customer.ID))

		updated := reloadProfile(t, db, profile.ID)
		assert.Equal(t, 1, updated.TotalReviews)
		assert.Equal(t, 5.0, updated.Rating)
	})

	t.Run("deleting twice is not found", func(t *testing.T) {
		err := svc.Delete(fourStars.ID, customer.ID)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

// The cached rating must always equal the mean of the verified reviews
// on record, reset to zero when the last one goes away.
func TestReviewAggregateInvariant(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)

	customer, profile, _ := completedBooking(t, db)

	var reviews []*models.Review
	for _, rating := range []int{5, 4, 4} {
		booking := seedBooking(t, db, customer.ID, profile.ID, models.BookingCompleted)
		review, err := svc.Create(customer.ID, &dto.CreateReviewRequest{
			BookingID: booking.ID,
			Rating:    rating,
		})
		require.NoError(t, err)
		reviews = append(reviews, review)
	}

	// Mean of 5, 4, 4 rounded to two decimals.
	updated := reloadProfile(t, db, profile.ID)
	assert.Equal(t, 4.33, updated.Rating)
	assert.Equal(t, 3, updated.TotalReviews)

	for _, review := range reviews {
		require.NoError(t, svc.Delete(review.ID, customer.ID))
	}

	updated = reloadProfile(t, db, profile.ID)
	assert.Equal(t, 0.0, updated.Rating)
	assert.Equal(t, 0, updated.TotalReviews)
}

func TestRatingRecompute(t *testing.T) {
	db := newTestDB(t)
	agg := NewRatingAggregator()

	customer, profile, booking := completedBooking(t, db)

	t.Run("unknown provider", func(t *testing.T) {
		err := agg.Recompute(db, uuid.New())
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("ignores unverified reviews", func(t *testing.T) {
		require.NoError(t, db.Create(&models.Review{
			ID:         uuid.New(),
			BookingID:  booking.ID,
			CustomerID: customer.ID,
			ProviderID: profile.ID,
			Rating:     1,
			IsVerified: false,
		}).Error)

		require.NoError(t, agg.Recompute(db, profile.ID))
		assert.Equal(t, 0.0, reloadProfile(t, db, profile.ID).Rating)
	})

	t.Run("idempotent", func(t *testing.T) {
		other := seedBooking(t, db, customer.ID, profile.ID, models.BookingCompleted)
		require.NoError(t, db.Create(&models.Review{
			ID:         uuid.New(),
			BookingID:  other.ID,
			CustomerID: customer.ID,
			ProviderID: profile.ID,
			Rating:     4,
			IsVerified: true,
		}).Error)

		require.NoError(t, agg.Recompute(db, profile.ID))
		first := reloadProfile(t, db, profile.ID).Rating
		require.NoError(t, agg.Recompute(db, profile.ID))
		assert.Equal(t, first, reloadProfile(t, db, profile.ID).Rating)
		assert.Equal(t, 4.0, first)
	})
}

func TestReviewListForProvider(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)

	customer, profile, booking := completedBooking(t, db)
	review, err := svc.Create(customer.ID, &dto.CreateReviewRequest{
		BookingID: booking.ID,
		Rating:    5,
		Comment:   "spotless",
	})
	require.NoError(t, err)

	// An unverified review never shows on the public listing.
	hidden := seedBooking(t, db, customer.ID, profile.ID, models.BookingCompleted)
	require.NoError(t, db.Create(&models.Review{
		ID:         uuid.New(),
		BookingID:  hidden.ID,
		CustomerID: customer.ID,
		ProviderID: profile.ID,
		Rating:     1,
		IsVerified: false,
	}).Error)

	reviews, total, err := svc.ListForProvider(profile.ID, 20, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, reviews, 1)
	assert.Equal(t, review.ID, reviews[0].ID)
}

// Moderation parks a review as unverified; that state must survive a
// struct insert rather than being clobbered by a column default.
func TestReviewUnverifiedRoundTrip(t *testing.T) {
	db := newTestDB(t)
	customer, profile, booking := completedBooking(t, db)

	require.NoError(t, db.Create(&models.Review{
		ID:         uuid.New(),
		BookingID:  booking.ID,
		CustomerID: customer.ID,
		ProviderID: profile.ID,
		Rating:     2,
		IsVerified: false,
	}).Error)

	var stored models.Review
	require.NoError(t, db.First(&stored, "booking_id = ?", booking.ID).Error)
	assert.False(t, stored.IsVerified)
}

// total_reviews counts verified reviews; deleting an unverified one
// must leave the counter and the rating alone.
func TestReviewDeleteUnverifiedKeepsCounter(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)

	customer, profile, booking := completedBooking(t, db)
	_, err := svc.Create(customer.ID, &dto.CreateReviewRequest{
		BookingID: booking.ID,
		Rating:    5,
	})
	require.NoError(t, err)

	hidden := seedBooking(t, db, customer.ID, profile.ID, models.BookingCompleted)
	unverified := models.Review{
		ID:         uuid.New(),
		BookingID:  hidden.ID,
		CustomerID: customer.ID,
		ProviderID: profile.ID,
		Rating:     1,
		IsVerified: false,
	}
	require.NoError(t, db.Create(&unverified).Error)

	require.NoError(t, svc.Delete(unverified.ID, customer.ID))

	updated := reloadProfile(t, db, profile.ID)
	assert.Equal(t, 1, updated.TotalReviews)
	assert.Equal(t, 5.0, updated.Rating)
}
