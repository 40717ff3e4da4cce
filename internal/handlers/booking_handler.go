package handlers

import (
	"github.com/gharkakaam/marketplace-backend/internal/dto"
	"github.com/gharkakaam/marketplace-backend/internal/identity"
	"github.com/gharkakaam/marketplace-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Create handles POST /bookings.
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	booking, err := h.bookingService.Create(userID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

// List handles GET /bookings - bookings where the caller is either
// side, optionally filtered by ?status=.
func (h *BookingHandler) List(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	page, perPage, offset := pagination(c, 10)
	status := c.Query("status")

	bookings, total, err := h.bookingService.List(userID, status, perPage, offset)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.BookingsListResponse{
		Bookings:    bookings,
		Total:       total,
		Pages:       pageCount(total, perPage),
		CurrentPage: page,
	})
}

// Get handles GET /bookings/:id.
func (h *BookingHandler) Get(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid booking id")
	}

	booking, err := h.bookingService.Get(bookingID, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(booking)
}

// UpdateStatus handles PUT /bookings/:id/status.
func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid booking id")
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	booking, err := h.bookingService.UpdateStatus(bookingID, userID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(booking)
}
