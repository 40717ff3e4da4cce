package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("booking not found")))
	assert.Equal(t, KindPermission, KindOf(Permission("nope")))
	assert.Equal(t, KindInternal, KindOf(errors.New("raw db error")))
	assert.Equal(t, KindInternal, KindOf(Internal(errors.New("boom"))))
}

func TestKindOfWrapped(t *testing.T) {
	// Kind survives another wrapping layer.
	err := fmt.Errorf("update booking: %w", InvalidTransition("cannot cancel a completed booking"))
	assert.Equal(t, KindInvalidTransition, KindOf(err))
	assert.True(t, IsKind(err, KindInvalidTransition))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(KindInternal, "internal server error", cause)
	require.ErrorIs(t, err, cause)
	assert.Equal(t, "internal server error", err.Error())
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:        fiber.StatusBadRequest,
		KindAuth:              fiber.StatusUnauthorized,
		KindPermission:        fiber.StatusForbidden,
		KindNotFound:          fiber.StatusNotFound,
		KindConflict:          fiber.StatusConflict,
		KindInvalidTransition: fiber.StatusUnprocessableEntity,
		KindInvalidState:      fiber.StatusUnprocessableEntity,
		KindInternal:          fiber.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, HTTPStatus(kind), kind.String())
	}
}
