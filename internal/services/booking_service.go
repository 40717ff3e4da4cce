package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/gharkakaam/marketplace-backend/internal/apperr"
	"github.com/gharkakaam/marketplace-backend/internal/dto"
	"github.com/gharkakaam/marketplace-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// Create opens a booking in the pending status against an approved
// provider profile. Only customer accounts may book.
func (s *BookingService) Create(customerID uuid.UUID, req *dto.CreateBookingRequest) (*models.Booking, error) {
	if req.ProviderID == uuid.Nil || req.ServiceDate == "" || req.ServiceAddress == "" {
		return nil, apperr.Validation("provider_id, service_date and service_address are required")
	}

	caller, err := loadCaller(s.db, customerID)
	if err != nil {
		return nil, err
	}
	if caller.Role != models.RoleCustomer {
		return nil, apperr.Permission("only customers can create bookings")
	}

	var provider models.ProviderProfile
	if err := s.db.First(&provider, "id = ?", req.ProviderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("provider not found or not approved")
		}
		return nil, apperr.Internal(err)
	}
	if !provider.IsApproved {
		return nil, apperr.NotFound("provider not found or not approved")
	}

	serviceDate, err := time.Parse(time.RFC3339, req.ServiceDate)
	if err != nil {
		return nil, apperr.Validation("invalid service date format")
	}

	booking := models.Booking{
		ID:                  uuid.New(),
		CustomerID:          customerID,
		ProviderID:          provider.ID,
		ServiceDate:         serviceDate,
		ServiceDuration:     req.ServiceDuration,
		ServiceAddress:      req.ServiceAddress,
		SpecialRequirements: req.SpecialRequirements,
		EstimatedPrice:      req.EstimatedPrice,
		Status:              models.BookingPending,
		PaymentStatus:       "pending",
	}
	if err := s.db.Create(&booking).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &booking, nil
}

// UpdateStatus applies a status transition. Authorization depends on
// the direction of the move and is checked before transition validity:
// a customer may cancel but can never confirm, start, or complete a
// booking, so both checks must independently reject a bad request.
func (s *BookingService) UpdateStatus(bookingID, callerID uuid.UUID, req *dto.UpdateBookingStatusRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Provider").First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("booking not found")
		}
		return nil, apperr.Internal(err)
	}

	if req.Status == "" {
		return nil, apperr.Validation("status is required")
	}
	target := models.BookingStatus(req.Status)
	if !target.Valid() {
		return nil, apperr.Validation("invalid status")
	}

	isProvider := booking.Provider.UserID == callerID
	isCustomer := booking.CustomerID == callerID

	switch target {
	case models.BookingConfirmed, models.BookingInProgress, models.BookingCompleted:
		if !isProvider {
			return nil, apperr.Permission("only the provider can update to this status")
		}
	default:
		if !isProvider && !isCustomer {
			return nil, apperr.Permission("not a participant of this booking")
		}
	}

	if !models.CanTransition(booking.Status, target) {
		return nil, apperr.InvalidTransition(fmt.Sprintf("cannot change status from %s to %s", booking.Status, target))
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": target}
		if req.Notes != nil {
			updates["notes"] = *req.Notes
		}
		// Final price is only honored when set by the provider.
		if req.FinalPrice != nil && isProvider {
			updates["final_price"] = *req.FinalPrice
		}

		// Conditional write: a racing transition that committed first
		// leaves zero rows matching the status we validated against.
		res := tx.Model(&models.Booking{}).
			Where("id = ? AND status = ?", booking.ID, booking.Status).
			Updates(updates)
		if res.Error != nil {
			return apperr.Internal(res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.InvalidTransition("booking status changed concurrently")
		}

		if target == models.BookingCompleted {
			if err := tx.Model(&models.ProviderProfile{}).
				Where("id = ?", booking.ProviderID).
				UpdateColumn("total_bookings", gorm.Expr("total_bookings + 1")).Error; err != nil {
				return apperr.Internal(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.First(&booking, "id = ?", booking.ID).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &booking, nil
}

// Get returns a booking visible only to its customer or the owning
// provider.
func (s *BookingService) Get(bookingID, callerID uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Provider").First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("booking not found")
		}
		return nil, apperr.Internal(err)
	}

	if booking.CustomerID != callerID && booking.Provider.UserID != callerID {
		return nil, apperr.Permission("not authorized to view this booking")
	}
	return &booking, nil
}

// List returns bookings where the caller is the customer or the owning
// provider, newest first, optionally filtered by status.
func (s *BookingService) List(callerID uuid.UUID, status string, limit, offset int) ([]models.Booking, int64, error) {
	if status != "" && !models.BookingStatus(status).Valid() {
		return nil, 0, apperr.Validation("invalid status")
	}

	scope := func(db *gorm.DB) *gorm.DB {
		q := db.
			Joins("JOIN service_providers ON service_providers.id = bookings.provider_id").
			Where("bookings.customer_id = ? OR service_providers.user_id = ?", callerID, callerID)
		if status != "" {
			q = q.Where("bookings.status = ?", status)
		}
		return q
	}

	var total int64
	if err := scope(s.db.Model(&models.Booking{})).Count(&total).Error; err != nil {
		return nil, 0, apperr.Internal(err)
	}

	var bookings []models.Booking
	err := scope(s.db.Model(&models.Booking{})).
		Order("bookings.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return bookings, total, nil
}
