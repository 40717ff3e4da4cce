package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to BookingStatus }{
		{BookingPending, BookingConfirmed},
		{BookingPending, BookingCancelled},
		{BookingConfirmed, BookingInProgress},
		{BookingConfirmed, BookingCancelled},
		{BookingInProgress, BookingCompleted},
		{BookingInProgress, BookingCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	denied := []struct{ from, to BookingStatus }{
		{BookingPending, BookingInProgress},
		{BookingPending, BookingCompleted},
		{BookingConfirmed, BookingCompleted},
		{BookingInProgress, BookingConfirmed},
		{BookingCompleted, BookingCancelled},
		{BookingCompleted, BookingCompleted},
		{BookingCancelled, BookingPending},
		{BookingCancelled, BookingConfirmed},
	}
	for _, tc := range denied {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s should be denied", tc.from, tc.to)
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	assert.False(t, CanTransition("archived", BookingCancelled))
	assert.False(t, CanTransition(BookingPending, "archived"))
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, BookingCompleted.Terminal())
	assert.True(t, BookingCancelled.Terminal())
	assert.False(t, BookingPending.Terminal())
	assert.False(t, BookingConfirmed.Terminal())
	assert.False(t, BookingInProgress.Terminal())
	assert.False(t, BookingStatus("archived").Terminal())
}

func TestBookingStatusValid(t *testing.T) {
	for _, s := range []BookingStatus{BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, BookingStatus("done").Valid())
	assert.False(t, BookingStatus("").Valid())
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleCustomer.Valid())
	assert.True(t, RoleProvider.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}
