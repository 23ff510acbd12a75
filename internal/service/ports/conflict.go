package ports

import (
	"context"
	"time"

	"github.com/stpnv0/SalonBooker/internal/domain"
)

type ConflictRepo interface {
	Create(ctx context.Context, c *domain.Conflict) error
	Resolve(ctx context.Context, in domain.ResolveConflictInput, at time.Time) (*domain.Conflict, error)
	List(ctx context.Context, f domain.ConflictFilter) ([]*domain.Conflict, error)
	HasUnresolved(ctx context.Context, t domain.ConflictType, reservationIDs []string) (bool, error)
}
