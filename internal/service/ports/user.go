package ports

import (
	"context"

	"github.com/stpnv0/SalonBooker/internal/domain"
)

type UserRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
