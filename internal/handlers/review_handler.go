package handlers

import (
	"github.com/gharkakaam/marketplace-backend/internal/dto"
	"github.com/gharkakaam/marketplace-backend/internal/identity"
	"github.com/gharkakaam/marketplace-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ListForProvider handles GET /reviews/provider/:id - public, verified
// reviews only.
func (h *ReviewHandler) ListForProvider(c *fiber.Ctx) error {
	providerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid provider id")
	}

	page, perPage, offset := pagination(c, 10)

	reviews, total, err := h.reviewService.ListForProvider(providerID, perPage, offset)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.ReviewsListResponse{
		Reviews:     reviews,
		Total:       total,
		Pages:       pageCount(total, perPage),
		CurrentPage: page,
	})
}

// Create handles POST /reviews.
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	review, err := h.reviewService.Create(userID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// Update handles PUT /reviews/:id.
func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	reviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid review id")
	}

	var req dto.UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	review, err := h.reviewService.Update(reviewID, userID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(review)
}

// Delete handles DELETE /reviews/:id.
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	reviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid review id")
	}

	if err := h.reviewService.Delete(reviewID, userID); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Review deleted successfully"})
}
