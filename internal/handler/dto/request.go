package dto

import "encoding/json"

type ServiceItem struct {
	ServiceID string `json:"service_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type CreateReservationRequest struct {
	UserID            string        `json:"user_id" binding:"required,uuid"`
	Date              string        `json:"reservation_date" binding:"required"`
	Time              string        `json:"reservation_time" binding:"required"`
	Services          []ServiceItem `json:"services" binding:"required,min=1,dive"`
	PointsUsed        int64         `json:"points_used"`
	SpecialRequest    string        `json:"special_request"`
	DepositOverride   *int64        `json:"deposit_amount"`
	RemainingOverride *int64        `json:"remaining_amount"`
	LockTimeoutMs     int           `json:"lock_timeout_ms" binding:"gte=0"`
}

type TransitionRequest struct {
	Status    string `json:"status" binding:"required"`
	ActorKind string `json:"actor_kind" binding:"required"`
	ActorID   string `json:"actor_id"`
	Reason    string `json:"reason"`
}

type ForceCompleteRequest struct {
	ActorID string `json:"actor_id" binding:"required"`
	Reason  string `json:"reason"`
}

type BulkStatusRequest struct {
	ReservationIDs []string `json:"reservation_ids" binding:"required,min=1"`
	Status         string   `json:"status" binding:"required"`
	ActorID        string   `json:"actor_id" binding:"required"`
	Reason         string   `json:"reason"`
}

type RecordConflictRequest struct {
	Type                   string          `json:"conflict_type" binding:"required"`
	Severity               string          `json:"severity" binding:"required"`
	Description            string          `json:"description" binding:"required"`
	AffectedReservationIDs []string        `json:"affected_reservation_ids" binding:"dive,uuid"`
	ShopID                 string          `json:"shop_id" binding:"required,uuid"`
	Metadata               json.RawMessage `json:"metadata"`
}

type ResolveConflictRequest struct {
	ResolverID   string          `json:"resolver_id" binding:"required"`
	Method       string          `json:"resolution_method" binding:"required"`
	Compensation json.RawMessage `json:"compensation"`
}
