package ports

import (
	"context"

	"github.com/stpnv0/SalonBooker/internal/domain"
)

type ReservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, user *domain.User, r *domain.Reservation)
	NotifyStatusChanged(ctx context.Context, user *domain.User, r *domain.Reservation, from domain.ReservationStatus)
}

type EventPublisher interface {
	Publish(ctx context.Context, e domain.ReservationEvent) error
}
