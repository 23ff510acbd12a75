package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveReservationCreate(t *testing.T) {
	before := testutil.ToFloat64(reservationCreate.WithLabelValues(outcomeOK))
	conflicts := testutil.ToFloat64(reservationCreate.WithLabelValues("SLOT_CONFLICT"))

	ObserveReservationCreate("", 10*time.Millisecond)
	ObserveReservationCreate("SLOT_CONFLICT", 5*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(reservationCreate.WithLabelValues(outcomeOK)))
	assert.Equal(t, conflicts+1, testutil.ToFloat64(reservationCreate.WithLabelValues("SLOT_CONFLICT")))
}

func TestIncStatusTransition(t *testing.T) {
	before := testutil.ToFloat64(statusTransition.WithLabelValues("confirmed", outcomeOK))

	IncStatusTransition("confirmed", "")

	assert.Equal(t, before+1, testutil.ToFloat64(statusTransition.WithLabelValues("confirmed", outcomeOK)))
}

func TestRegister_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}
