package domain

type ReservationStatus string

const (
	StatusRequested       ReservationStatus = "requested"
	StatusConfirmed       ReservationStatus = "confirmed"
	StatusInProgress      ReservationStatus = "in_progress"
	StatusCompleted       ReservationStatus = "completed"
	StatusCancelledByUser ReservationStatus = "cancelled_by_user"
	StatusCancelledByShop ReservationStatus = "cancelled_by_shop"
	StatusNoShow          ReservationStatus = "no_show"
)

// ActiveStatuses occupy a slot for conflict detection.
var ActiveStatuses = []ReservationStatus{StatusRequested, StatusConfirmed, StatusInProgress}

var transitions = map[ReservationStatus][]ReservationStatus{
	StatusRequested: {
		StatusConfirmed,
		StatusCancelledByUser,
		StatusCancelledByShop,
	},
	StatusConfirmed: {
		StatusInProgress,
		StatusCompleted,
		StatusCancelledByUser,
		StatusCancelledByShop,
		StatusNoShow,
	},
	StatusInProgress: {
		StatusCompleted,
	},
}

func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusRequested, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelledByUser, StatusCancelledByShop, StatusNoShow:
		return true
	default:
		return false
	}
}

func (s ReservationStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelledByUser, StatusCancelledByShop, StatusNoShow:
		return true
	default:
		return false
	}
}

func (s ReservationStatus) IsActive() bool {
	for _, a := range ActiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}

// CanTransition reports whether from -> to is an edge of the lifecycle graph.
func CanTransition(from, to ReservationStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanForceComplete allows admins to close any non-terminal reservation.
func CanForceComplete(from ReservationStatus) bool {
	return from.Valid() && !from.IsTerminal()
}

// RequiresSettlement marks targets guarded by full payment.
func (s ReservationStatus) RequiresSettlement() bool {
	return s == StatusCompleted
}

type ActorKind string

const (
	ActorUser   ActorKind = "user"
	ActorShop   ActorKind = "shop"
	ActorSystem ActorKind = "system"
	ActorAdmin  ActorKind = "admin"
)

func (a ActorKind) Valid() bool {
	switch a {
	case ActorUser, ActorShop, ActorSystem, ActorAdmin:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentPending     PaymentStatus = "pending"
	PaymentDepositPaid PaymentStatus = "deposit_paid"
	PaymentFullyPaid   PaymentStatus = "fully_paid"
	PaymentRefunded    PaymentStatus = "refunded"
	PaymentFailed      PaymentStatus = "failed"
)

func (p PaymentStatus) Settled() bool {
	return p == PaymentFullyPaid
}
