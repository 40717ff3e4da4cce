package handlers

import (
	"log/slog"

	"github.com/gharkakaam/marketplace-backend/internal/apperr"
	"github.com/gharkakaam/marketplace-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// fail translates a service error into the stable status category for
// its kind. Internal errors are logged and replaced with a generic
// message; everything else is client-safe by construction.
func fail(c *fiber.Ctx, err error) error {
	kind := apperr.KindOf(err)
	status := apperr.HTTPStatus(kind)

	message := err.Error()
	if status >= fiber.StatusInternalServerError {
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		message = "Internal server error"
	}

	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
}

// pagination reads page/per_page query params, clamped to sane bounds.
func pagination(c *fiber.Ctx, defaultPerPage int) (page, perPage, offset int) {
	page = c.QueryInt("page", 1)
	perPage = c.QueryInt("per_page", defaultPerPage)
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = defaultPerPage
	}
	return page, perPage, (page - 1) * perPage
}

func pageCount(total int64, perPage int) int {
	return int((total + int64(perPage) - 1) / int64(perPage))
}
