package handlers

import (
	"github.com/gharkakaam/marketplace-backend/internal/dto"
	"github.com/gharkakaam/marketplace-backend/internal/identity"
	"github.com/gharkakaam/marketplace-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProviderHandler struct {
	providerService *services.ProviderService
}

func NewProviderHandler(providerService *services.ProviderService) *ProviderHandler {
	return &ProviderHandler{providerService: providerService}
}

// Search handles GET /services/providers - public provider search.
func (h *ProviderHandler) Search(c *fiber.Ctx) error {
	page, perPage, offset := pagination(c, 12)

	q := dto.ProviderSearchQuery{
		Location:  c.Query("location"),
		Search:    c.Query("search"),
		MinRating: c.QueryFloat("min_rating", 0),
	}
	if raw := c.Query("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "Invalid category id")
		}
		q.CategoryID = categoryID
	}

	providers, total, err := h.providerService.Search(&q, perPage, offset)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.ProvidersListResponse{
		Providers:   providers,
		Total:       total,
		Pages:       pageCount(total, perPage),
		CurrentPage: page,
	})
}

// Get handles GET /services/providers/:id - public.
func (h *ProviderHandler) Get(c *fiber.Ctx) error {
	providerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid provider id")
	}

	provider, err := h.providerService.Get(providerID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(provider)
}

// Create handles POST /services/providers.
func (h *ProviderHandler) Create(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateProviderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	provider, err := h.providerService.Create(userID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(provider)
}

// Update handles PUT /services/providers/:id - profile owner only.
func (h *ProviderHandler) Update(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	providerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid provider id")
	}

	var req dto.UpdateProviderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	provider, err := h.providerService.Update(providerID, userID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(provider)
}

// Approve handles POST /services/providers/:id/approve - admin only.
func (h *ProviderHandler) Approve(c *fiber.Ctx) error {
	providerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid provider id")
	}

	provider, err := h.providerService.Approve(providerID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(provider)
}
