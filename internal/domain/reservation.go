package domain

import (
	"encoding/json"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Reservation struct {
	ID              string            `json:"id"`
	ShopID          string            `json:"shop_id"`
	UserID          string            `json:"user_id"`
	ReservationDate time.Time         `json:"reservation_date"`
	ReservationTime string            `json:"reservation_time"`
	DurationMinutes int               `json:"duration_minutes"`
	Status          ReservationStatus `json:"status"`
	TotalAmount     int64             `json:"total_amount"`
	DepositAmount   int64             `json:"deposit_amount"`
	RemainingAmount int64             `json:"remaining_amount"`
	PointsUsed      int64             `json:"points_used"`
	SpecialRequest  string            `json:"special_request"`
	Items           []LineItem        `json:"items"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// Slot returns the (shop, date, time) tuple the reservation occupies.
func (r *Reservation) Slot() Slot {
	return Slot{ShopID: r.ShopID, Date: r.ReservationDate, Time: r.ReservationTime}
}

// AmountsBalanced checks deposit + remaining == total and 0 <= deposit <= total.
func (r *Reservation) AmountsBalanced() bool {
	return r.DepositAmount >= 0 &&
		r.DepositAmount <= r.TotalAmount &&
		r.DepositAmount+r.RemainingAmount == r.TotalAmount
}

// LineItem is one booked service; price, duration and deposit policy are
// snapshotted from the catalog at booking time.
type LineItem struct {
	ID              string        `json:"id"`
	ReservationID   string        `json:"reservation_id"`
	ServiceID       string        `json:"service_id"`
	Quantity        int           `json:"quantity"`
	UnitPrice       int64         `json:"unit_price"`
	LineTotal       int64         `json:"line_total"`
	DurationMinutes int           `json:"duration_minutes"`
	Deposit         DepositPolicy `json:"deposit"`
	CreatedAt       time.Time     `json:"created_at"`
}

// DepositPolicy is either a fixed amount per unit, a percentage of the line
// total, or neither (platform default).
type DepositPolicy struct {
	FixedAmount *int64   `json:"fixed_amount,omitempty"`
	Percentage  *float64 `json:"percentage,omitempty"`
}

type ShopService struct {
	ID              string
	ShopID          string
	Name            string
	Price           int64
	DurationMinutes int
	Deposit         DepositPolicy
	Available       bool
}

type ServiceRequest struct {
	ServiceID string
	Quantity  int
}

type CreateReservationInput struct {
	ShopID            string
	UserID            string
	Date              time.Time
	Time              string
	Services          []ServiceRequest
	PointsUsed        int64
	SpecialRequest    string
	DepositOverride   *int64
	RemainingOverride *int64
	// LockTimeout bounds row-lock waits; zero means the configured default.
	LockTimeout time.Duration
}

type StatusLog struct {
	ID            string            `json:"id"`
	ReservationID string            `json:"reservation_id"`
	FromStatus    ReservationStatus `json:"from_status"`
	ToStatus      ReservationStatus `json:"to_status"`
	ActorKind     ActorKind         `json:"actor_kind"`
	ActorID       string            `json:"actor_id"`
	Reason        string            `json:"reason,omitempty"`
	Metadata      json.RawMessage   `json:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

type TransitionInput struct {
	ReservationID string
	Target        ReservationStatus
	ActorKind     ActorKind
	ActorID       string
	Reason        string
	Force         bool
}

type BulkResult struct {
	ReservationID string       `json:"reservation_id"`
	Reservation   *Reservation `json:"reservation,omitempty"`
	Err           error        `json:"-"`
}
