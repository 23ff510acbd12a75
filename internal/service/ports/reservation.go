package ports

import (
	"context"
	"time"

	"github.com/stpnv0/SalonBooker/internal/domain"
)

// ReservationTx is the set of statements that must share one database
// transaction. Locks taken through it are released when the transaction ends.
type ReservationTx interface {
	SetLockTimeout(ctx context.Context, d time.Duration) error
	AcquireSlotLock(ctx context.Context, slot domain.Slot) error
	LockServices(ctx context.Context, shopID string, serviceIDs []string) (map[string]domain.ShopService, error)
	FindOverlapping(ctx context.Context, shopID string, window domain.TimeWindow) ([]string, error)
	InsertReservation(ctx context.Context, r *domain.Reservation, window domain.TimeWindow) error
	InsertLineItems(ctx context.Context, items []domain.LineItem) error
	DeleteReservation(ctx context.Context, id string) error
	GetForUpdate(ctx context.Context, id string) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus, at time.Time) error
	InsertStatusLog(ctx context.Context, l *domain.StatusLog) error
}

type ReservationRepo interface {
	// WithinTx commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx ReservationTx) error) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	OverlapFinder
}

// OverlapFinder lists pairs of active reservations whose windows intersect.
type OverlapFinder interface {
	FindOverlappingPairs(ctx context.Context, since time.Time) ([]domain.OverlapPair, error)
}
