package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/SalonBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var allStatuses = []domain.ReservationStatus{
	domain.StatusRequested,
	domain.StatusConfirmed,
	domain.StatusInProgress,
	domain.StatusCompleted,
	domain.StatusCancelledByUser,
	domain.StatusCancelledByShop,
	domain.StatusNoShow,
}

func seedReservation(env *testEnv, id string, status domain.ReservationStatus) {
	start := testDay.Add(10 * time.Hour)
	env.store.seed(&domain.Reservation{
		ID:              id,
		ShopID:          shopA,
		UserID:          userA,
		ReservationDate: testDay,
		ReservationTime: "10:00",
		DurationMinutes: 60,
		Status:          status,
		TotalAmount:     50_000,
		DepositAmount:   12_500,
		RemainingAmount: 37_500,
	}, domain.NewWindow(start, time.Hour, domain.BufferTime))
}

func transitionInput(id string, to domain.ReservationStatus) domain.TransitionInput {
	return domain.TransitionInput{
		ReservationID: id,
		Target:        to,
		ActorKind:     domain.ActorShop,
		ActorID:       "staff-1",
		Reason:        "test",
	}
}

func TestReservationService_TransitionStatus_Graph(t *testing.T) {
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				env := newTestEnv(t)
				env.payments.EXPECT().PaymentStatus(mock.Anything, "r-1").Return(domain.PaymentFullyPaid, nil).Maybe()
				seedReservation(env, "r-1", from)

				r, err := env.svc.TransitionStatus(context.Background(), transitionInput("r-1", to))

				logs := env.store.logsFor("r-1")
				stored, getErr := env.svc.GetReservation(context.Background(), "r-1")
				require.NoError(t, getErr)

				if domain.CanTransition(from, to) {
					require.NoError(t, err)
					assert.Equal(t, to, r.Status)
					assert.Equal(t, to, stored.Status)
					require.Len(t, logs, 1)
					assert.Equal(t, from, logs[0].FromStatus)
					assert.Equal(t, to, logs[0].ToStatus)
					assert.Equal(t, domain.ActorShop, logs[0].ActorKind)
					assert.Equal(t, "staff-1", logs[0].ActorID)
					return
				}

				assert.Equal(t, domain.CodeInvalidTransition, domain.Code(err))
				assert.Equal(t, from, stored.Status)
				assert.Empty(t, logs)
			})
		}
	}
}

func TestReservationService_TransitionStatus_CompletionRequiresPayment(t *testing.T) {
	tests := []struct {
		payment domain.PaymentStatus
		wantErr error
	}{
		{domain.PaymentPending, domain.ErrPaymentNotCompleted},
		{domain.PaymentDepositPaid, domain.ErrPaymentNotCompleted},
		{domain.PaymentRefunded, domain.ErrPaymentNotCompleted},
		{domain.PaymentFullyPaid, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.payment), func(t *testing.T) {
			env := newTestEnv(t)
			seedReservation(env, "r-1", domain.StatusConfirmed)
			env.payments.EXPECT().PaymentStatus(mock.Anything, "r-1").Return(tt.payment, nil).Once()

			_, err := env.svc.TransitionStatus(context.Background(), transitionInput("r-1", domain.StatusCompleted))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), "payment must be completed before this transition")
				assert.Empty(t, env.store.logsFor("r-1"))
				return
			}
			require.NoError(t, err)
			assert.Len(t, env.store.logsFor("r-1"), 1)
		})
	}
}

func TestReservationService_TransitionStatus_RejectsUnknownValues(t *testing.T) {
	env := newTestEnv(t)
	seedReservation(env, "r-1", domain.StatusRequested)

	_, err := env.svc.TransitionStatus(context.Background(), transitionInput("r-1", "archived"))
	assert.Equal(t, domain.CodeValidation, domain.Code(err))

	in := transitionInput("r-1", domain.StatusConfirmed)
	in.ActorKind = "robot"
	_, err = env.svc.TransitionStatus(context.Background(), in)
	assert.Equal(t, domain.CodeValidation, domain.Code(err))

	assert.Empty(t, env.store.logsFor("r-1"))
}

func TestReservationService_TransitionStatus_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.TransitionStatus(context.Background(), transitionInput("missing", domain.StatusConfirmed))
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_TransitionStatus_ConcurrentConfirm(t *testing.T) {
	env := newTestEnv(t)
	seedReservation(env, "r-1", domain.StatusRequested)

	const workers = 10
	var (
		wg   sync.WaitGroup
		errs = make([]error, workers)
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.svc.TransitionStatus(context.Background(), transitionInput("r-1", domain.StatusConfirmed))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	}

	assert.Equal(t, 1, succeeded)
	assert.Len(t, env.store.logsFor("r-1"), succeeded)
}

func TestReservationService_ForceComplete(t *testing.T) {
	env := newTestEnv(t)
	seedReservation(env, "r-1", domain.StatusRequested)
	env.payments.EXPECT().PaymentStatus(mock.Anything, "r-1").Return(domain.PaymentFullyPaid, nil).Once()

	r, err := env.svc.ForceComplete(context.Background(), "r-1", "admin-7", "customer left early")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, r.Status)

	logs := env.store.logsFor("r-1")
	require.Len(t, logs, 1)
	assert.Equal(t, domain.StatusRequested, logs[0].FromStatus)
	assert.Equal(t, domain.ActorAdmin, logs[0].ActorKind)
	assert.Equal(t, "admin-7", logs[0].ActorID)

	var meta map[string]any
	require.NoError(t, json.Unmarshal(logs[0].Metadata, &meta))
	assert.Equal(t, true, meta["forced"])
}

func TestReservationService_ForceComplete_Guards(t *testing.T) {
	t.Run("terminal", func(t *testing.T) {
		env := newTestEnv(t)
		seedReservation(env, "r-1", domain.StatusNoShow)

		_, err := env.svc.ForceComplete(context.Background(), "r-1", "admin-7", "")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("unpaid", func(t *testing.T) {
		env := newTestEnv(t)
		seedReservation(env, "r-1", domain.StatusInProgress)
		env.payments.EXPECT().PaymentStatus(mock.Anything, "r-1").Return(domain.PaymentDepositPaid, nil).Once()

		_, err := env.svc.ForceComplete(context.Background(), "r-1", "admin-7", "")
		assert.ErrorIs(t, err, domain.ErrPaymentNotCompleted)
		assert.Empty(t, env.store.logsFor("r-1"))
	})
}

func TestReservationService_BulkTransitionStatus(t *testing.T) {
	env := newTestEnv(t)
	seedReservation(env, "r-1", domain.StatusRequested)
	seedReservation(env, "r-2", domain.StatusCompleted)
	seedReservation(env, "r-3", domain.StatusConfirmed)

	results := env.svc.BulkTransitionStatus(context.Background(),
		[]string{"r-1", "r-2", "missing", "r-3"}, domain.StatusCancelledByShop, "admin-1", "shop closed")

	require.Len(t, results, 4)

	assert.NoError(t, results[0].Err)
	assert.Equal(t, domain.StatusCancelledByShop, results[0].Reservation.Status)
	assert.ErrorIs(t, results[1].Err, domain.ErrInvalidTransition)
	assert.ErrorIs(t, results[2].Err, domain.ErrReservationNotFound)
	assert.NoError(t, results[3].Err)

	for _, id := range []string{"r-1", "r-3"} {
		logs := env.store.logsFor(id)
		require.Len(t, logs, 1)
		assert.Equal(t, domain.ActorAdmin, logs[0].ActorKind)
		assert.Equal(t, "shop closed", logs[0].Reason)
	}
	assert.Empty(t, env.store.logsFor("r-2"))
}
