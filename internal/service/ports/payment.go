package ports

import (
	"context"

	"github.com/stpnv0/SalonBooker/internal/domain"
)

type PaymentLookup interface {
	PaymentStatus(ctx context.Context, reservationID string) (domain.PaymentStatus, error)
}
