package handlers

import (
	"github.com/gharkakaam/marketplace-backend/internal/dto"
	"github.com/gharkakaam/marketplace-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles GET /users - active users, optional ?role= filter.
func (h *UserHandler) List(c *fiber.Ctx) error {
	page, perPage, offset := pagination(c, 10)

	users, total, err := h.userService.List(c.Query("role"), perPage, offset)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.UsersListResponse{
		Users:       users,
		Total:       total,
		Pages:       pageCount(total, perPage),
		CurrentPage: page,
	})
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	user, err := h.userService.Get(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

// Verify handles POST /users/:id/verify - admin only.
func (h *UserHandler) Verify(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	user, err := h.userService.Verify(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}
