// Package identity extracts the authenticated caller from JWT claims
// placed in the Fiber context by the auth middleware. All permission
// checks downstream trust this identity.
package identity

import (
	"errors"

	"github.com/gharkakaam/marketplace-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UserID extracts the caller's UUID from JWT claims in context.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	claims, err := tokenClaims(c)
	if err != nil {
		return uuid.Nil, err
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}

// Role extracts the caller's role claim. The claim is advisory for
// routing; services re-check the role against the stored user row.
func Role(c *fiber.Ctx) (models.Role, error) {
	claims, err := tokenClaims(c)
	if err != nil {
		return "", err
	}

	role, ok := claims["role"].(string)
	if !ok {
		return "", errors.New("missing role claim")
	}
	return models.Role(role), nil
}

// Email extracts the caller's email claim.
func Email(c *fiber.Ctx) (string, error) {
	claims, err := tokenClaims(c)
	if err != nil {
		return "", err
	}
	email, _ := claims["email"].(string)
	return email, nil
}

func tokenClaims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, errors.New("invalid token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
