package domain

import "time"

type EventType string

const (
	EventReservationCreated EventType = "reservation.created"
	EventStatusChanged      EventType = "reservation.status_changed"
)

// ReservationEvent is the payload handed to downstream consumers
// (notifications, financial reporting) after a commit.
type ReservationEvent struct {
	Type            EventType         `json:"type"`
	ReservationID   string            `json:"reservation_id"`
	ShopID          string            `json:"shop_id"`
	UserID          string            `json:"user_id"`
	ReservationDate string            `json:"reservation_date"`
	ReservationTime string            `json:"reservation_time"`
	FromStatus      ReservationStatus `json:"from_status,omitempty"`
	Status          ReservationStatus `json:"status"`
	TotalAmount     int64             `json:"total_amount"`
	DepositAmount   int64             `json:"deposit_amount"`
	RemainingAmount int64             `json:"remaining_amount"`
	ActorKind       ActorKind         `json:"actor_kind,omitempty"`
	ActorID         string            `json:"actor_id,omitempty"`
	OccurredAt      time.Time         `json:"occurred_at"`
}

func NewReservationEvent(t EventType, r *Reservation, at time.Time) ReservationEvent {
	return ReservationEvent{
		Type:            t,
		ReservationID:   r.ID,
		ShopID:          r.ShopID,
		UserID:          r.UserID,
		ReservationDate: r.ReservationDate.Format(DateLayout),
		ReservationTime: r.ReservationTime,
		Status:          r.Status,
		TotalAmount:     r.TotalAmount,
		DepositAmount:   r.DepositAmount,
		RemainingAmount: r.RemainingAmount,
		OccurredAt:      at,
	}
}
