package domain

import (
	"encoding/json"
	"time"
)

type ConflictType string

const (
	ConflictTimeOverlap      ConflictType = "time_overlap"
	ConflictResourceShortage ConflictType = "resource_shortage"
	ConflictStaffUnavailable ConflictType = "staff_unavailability"
	ConflictCapacityExceeded ConflictType = "capacity_exceeded"
	ConflictDoubleBooking    ConflictType = "double_booking"
	ConflictServiceConflict  ConflictType = "service_conflict"
	ConflictPaymentConflict  ConflictType = "payment_conflict"
)

func (t ConflictType) Valid() bool {
	switch t {
	case ConflictTimeOverlap, ConflictResourceShortage, ConflictStaffUnavailable,
		ConflictCapacityExceeded, ConflictDoubleBooking, ConflictServiceConflict, ConflictPaymentConflict:
		return true
	default:
		return false
	}
}

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	default:
		return false
	}
}

// Conflict is an audit record of a scheduling anomaly found after the fact.
// ResolvedAt and ResolvedBy are either both set or both nil.
type Conflict struct {
	ID                     string          `json:"id"`
	Type                   ConflictType    `json:"type"`
	Severity               Severity        `json:"severity"`
	Description            string          `json:"description"`
	AffectedReservationIDs []string        `json:"affected_reservation_ids"`
	ShopID                 string          `json:"shop_id"`
	DetectedAt             time.Time       `json:"detected_at"`
	ResolvedAt             *time.Time      `json:"resolved_at,omitempty"`
	ResolvedBy             *string         `json:"resolved_by,omitempty"`
	ResolutionMethod       *string         `json:"resolution_method,omitempty"`
	Compensation           json.RawMessage `json:"compensation,omitempty"`
	Metadata               json.RawMessage `json:"metadata,omitempty"`
}

func (c *Conflict) Resolved() bool {
	return c.ResolvedAt != nil
}

type RecordConflictInput struct {
	Type                   ConflictType
	Severity               Severity
	Description            string
	AffectedReservationIDs []string
	ShopID                 string
	Metadata               json.RawMessage
}

type ResolveConflictInput struct {
	ConflictID   string
	ResolverID   string
	Method       string
	Compensation json.RawMessage
}

type ConflictFilter struct {
	ShopID         string
	UnresolvedOnly bool
	Since          time.Time
	Limit          int
}

// OverlapPair is two active reservations of one shop whose windows intersect.
type OverlapPair struct {
	ShopID string
	First  string
	Second string
	Date   time.Time
}
