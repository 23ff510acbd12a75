package repository

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/SalonBooker/internal/domain"
	"github.com/stpnv0/SalonBooker/internal/service/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

// Integration tests run against a real Postgres when SALONBOOKER_TEST_DSN is set.
const testDSNEnv = "SALONBOOKER_TEST_DSN"

var (
	migrateOnce sync.Once
	migrateErr  error
)

func testDB(t *testing.T) *dbpg.DB {
	t.Helper()
	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s is not set", testDSNEnv)
	}

	migrateOnce.Do(func() {
		var db *sql.DB
		db, migrateErr = sql.Open("postgres", dsn)
		if migrateErr != nil {
			return
		}
		defer db.Close()
		migrateErr = goose.Up(db, "../../migrations")
	})
	require.NoError(t, migrateErr)

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 10, MaxIdleConns: 5})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Master.Close() })
	return db
}

func newTestReservation(shopID string, start time.Time) (*domain.Reservation, domain.TimeWindow) {
	now := time.Now().UTC()
	r := &domain.Reservation{
		ID:              uuid.New().String(),
		ShopID:          shopID,
		UserID:          uuid.New().String(),
		ReservationDate: start.Truncate(24 * time.Hour),
		ReservationTime: start.Format(domain.TimeLayout),
		DurationMinutes: 60,
		Status:          domain.StatusRequested,
		TotalAmount:     50_000,
		DepositAmount:   12_500,
		RemainingAmount: 37_500,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return r, domain.NewWindow(start, time.Hour, domain.BufferTime)
}

func insert(ctx context.Context, repo *ReservationRepository, r *domain.Reservation, w domain.TimeWindow) error {
	return repo.WithinTx(ctx, func(ctx context.Context, tx ports.ReservationTx) error {
		return tx.InsertReservation(ctx, r, w)
	})
}

func TestIntegration_SlotLockIsExclusive(t *testing.T) {
	repo := NewReservationRepo(testDB(t))
	ctx := context.Background()

	slot := domain.Slot{ShopID: uuid.New().String(), Date: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), Time: "10:00"}

	held := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- repo.WithinTx(ctx, func(ctx context.Context, tx ports.ReservationTx) error {
			if err := tx.AcquireSlotLock(ctx, slot); err != nil {
				close(held)
				return err
			}
			close(held)
			<-release
			return nil
		})
	}()
	<-held

	err := repo.WithinTx(ctx, func(ctx context.Context, tx ports.ReservationTx) error {
		return tx.AcquireSlotLock(ctx, slot)
	})
	assert.ErrorIs(t, err, domain.ErrAdvisoryLockTimeout)

	other := slot
	other.Time = "12:00"
	err = repo.WithinTx(ctx, func(ctx context.Context, tx ports.ReservationTx) error {
		return tx.AcquireSlotLock(ctx, other)
	})
	assert.NoError(t, err)

	close(release)
	require.NoError(t, <-done)

	err = repo.WithinTx(ctx, func(ctx context.Context, tx ports.ReservationTx) error {
		return tx.AcquireSlotLock(ctx, slot)
	})
	assert.NoError(t, err, "lock must be released at commit")
}

func TestIntegration_ExclusionConstraint(t *testing.T) {
	repo := NewReservationRepo(testDB(t))
	ctx := context.Background()
	shopID := uuid.New().String()
	start := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)

	first, w1 := newTestReservation(shopID, start)
	require.NoError(t, insert(ctx, repo, first, w1))

	second, w2 := newTestReservation(shopID, start.Add(30*time.Minute))
	err := insert(ctx, repo, second, w2)
	assert.ErrorIs(t, err, domain.ErrSlotConflict)

	adjacent, w3 := newTestReservation(shopID, start.Add(75*time.Minute))
	assert.NoError(t, insert(ctx, repo, adjacent, w3))

	otherShop, w4 := newTestReservation(uuid.New().String(), start)
	assert.NoError(t, insert(ctx, repo, otherShop, w4))
}

func TestIntegration_FindOverlappingSpansMidnight(t *testing.T) {
	repo := NewReservationRepo(testDB(t))
	ctx := context.Background()
	shopID := uuid.New().String()

	late, w := newTestReservation(shopID, time.Date(2026, 7, 2, 23, 30, 0, 0, time.UTC))
	require.NoError(t, insert(ctx, repo, late, w))

	probe := domain.NewWindow(time.Date(2026, 7, 3, 0, 15, 0, 0, time.UTC), 30*time.Minute, domain.BufferTime)
	var ids []string
	err := repo.WithinTx(ctx, func(ctx context.Context, tx ports.ReservationTx) error {
		var err error
		ids, err = tx.FindOverlapping(ctx, shopID, probe)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, []string{late.ID}, ids)
}

func TestIntegration_RollbackLeavesNothing(t *testing.T) {
	repo := NewReservationRepo(testDB(t))
	ctx := context.Background()

	r, w := newTestReservation(uuid.New().String(), time.Date(2026, 7, 4, 10, 0, 0, 0, time.UTC))
	boom := errors.New("boom")

	err := repo.WithinTx(ctx, func(ctx context.Context, tx ports.ReservationTx) error {
		if err := tx.InsertReservation(ctx, r, w); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repo.GetByID(ctx, r.ID)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestIntegration_StatusUpdateAndLog(t *testing.T) {
	repo := NewReservationRepo(testDB(t))
	ctx := context.Background()

	r, w := newTestReservation(uuid.New().String(), time.Date(2026, 7, 5, 10, 0, 0, 0, time.UTC))
	require.NoError(t, insert(ctx, repo, r, w))

	err := repo.WithinTx(ctx, func(ctx context.Context, tx ports.ReservationTx) error {
		locked, err := tx.GetForUpdate(ctx, r.ID)
		if err != nil {
			return err
		}
		if err = tx.UpdateStatus(ctx, locked.ID, domain.StatusConfirmed, time.Now().UTC()); err != nil {
			return err
		}
		return tx.InsertStatusLog(ctx, &domain.StatusLog{
			ID:            uuid.New().String(),
			ReservationID: locked.ID,
			FromStatus:    locked.Status,
			ToStatus:      domain.StatusConfirmed,
			ActorKind:     domain.ActorShop,
			Metadata:      []byte(`{}`),
			CreatedAt:     time.Now().UTC(),
		})
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
	assert.Equal(t, "10:00", got.ReservationTime)
}

func TestIntegration_ConflictResolvesOnce(t *testing.T) {
	repo := NewConflictRepo(testDB(t))
	ctx := context.Background()

	ids := []string{uuid.New().String(), uuid.New().String()}
	c := &domain.Conflict{
		ID:                     uuid.New().String(),
		Type:                   domain.ConflictDoubleBooking,
		Severity:               domain.SeverityHigh,
		Description:            "integration",
		AffectedReservationIDs: ids,
		ShopID:                 uuid.New().String(),
		DetectedAt:             time.Now().UTC(),
		Metadata:               []byte(`{}`),
	}
	require.NoError(t, repo.Create(ctx, c))

	exists, err := repo.HasUnresolved(ctx, domain.ConflictDoubleBooking, ids)
	require.NoError(t, err)
	assert.True(t, exists)

	in := domain.ResolveConflictInput{ConflictID: c.ID, ResolverID: "admin-1", Method: "refund", Compensation: []byte(`{}`)}

	resolved, err := repo.Resolve(ctx, in, time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, resolved.Resolved())

	_, err = repo.Resolve(ctx, in, time.Now().UTC())
	assert.ErrorIs(t, err, domain.ErrConflictAlreadyResolved)

	in.ConflictID = uuid.New().String()
	_, err = repo.Resolve(ctx, in, time.Now().UTC())
	assert.ErrorIs(t, err, domain.ErrConflictNotFound)

	exists, err = repo.HasUnresolved(ctx, domain.ConflictDoubleBooking, ids)
	require.NoError(t, err)
	assert.False(t, exists)
}
