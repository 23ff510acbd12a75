package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/SalonBooker/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_Sweeps(t *testing.T) {
	sweeper := mocks.NewMockConflictSweeper(t)
	s := New(sweeper, time.Minute, newTestLogger(t))

	sweeper.EXPECT().SweepOverlaps(mock.Anything).Return(2, nil).Once()

	s.tick(context.Background())
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	sweeper := mocks.NewMockConflictSweeper(t)
	s := New(sweeper, time.Minute, newTestLogger(t))

	sweeper.EXPECT().SweepOverlaps(mock.Anything).Return(0, errors.New("db error")).Once()

	assert.NotPanics(t, func() { s.tick(context.Background()) })
}

func TestScheduler_Start_TicksUntilCancelled(t *testing.T) {
	sweeper := mocks.NewMockConflictSweeper(t)
	s := New(sweeper, 10*time.Millisecond, newTestLogger(t))

	ticked := make(chan struct{}, 1)
	sweeper.EXPECT().SweepOverlaps(mock.Anything).
		Run(func(context.Context) {
			select {
			case ticked <- struct{}{}:
			default:
			}
		}).
		Return(0, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-ticked:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not tick")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_Start_SweepsImmediately(t *testing.T) {
	sweeper := mocks.NewMockConflictSweeper(t)
	s := New(sweeper, time.Hour, newTestLogger(t))

	swept := make(chan struct{})
	sweeper.EXPECT().SweepOverlaps(mock.Anything).
		Run(func(context.Context) { close(swept) }).
		Return(1, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Start(ctx)

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("first sweep did not run on start")
	}
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	sweeper := mocks.NewMockConflictSweeper(t)
	s := New(sweeper, time.Hour, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
	sweeper.AssertNotCalled(t, "SweepOverlaps", mock.Anything)
}
