package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := map[ReservationStatus][]ReservationStatus{
		StatusRequested:  {StatusConfirmed, StatusCancelledByUser, StatusCancelledByShop},
		StatusConfirmed:  {StatusInProgress, StatusCompleted, StatusCancelledByUser, StatusCancelledByShop, StatusNoShow},
		StatusInProgress: {StatusCompleted},
	}
	all := []ReservationStatus{
		StatusRequested, StatusConfirmed, StatusInProgress, StatusCompleted,
		StatusCancelledByUser, StatusCancelledByShop, StatusNoShow,
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, contains(allowed[from], to), CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	for _, s := range []ReservationStatus{StatusCompleted, StatusCancelledByUser, StatusCancelledByShop, StatusNoShow} {
		assert.True(t, s.IsTerminal(), s)
		assert.False(t, s.IsActive(), s)
		assert.False(t, CanForceComplete(s), s)
	}
	for _, s := range ActiveStatuses {
		assert.False(t, s.IsTerminal(), s)
		assert.True(t, CanForceComplete(s), s)
	}
	assert.False(t, CanForceComplete("archived"))
}

func TestRequiresSettlement(t *testing.T) {
	assert.True(t, StatusCompleted.RequiresSettlement())
	assert.False(t, StatusConfirmed.RequiresSettlement())
	assert.True(t, PaymentFullyPaid.Settled())
	assert.False(t, PaymentDepositPaid.Settled())
}

func contains(list []ReservationStatus, s ReservationStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
