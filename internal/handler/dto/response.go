package dto

import (
	"encoding/json"
	"time"

	"github.com/stpnv0/SalonBooker/internal/domain"
)

type LineItemResponse struct {
	ID                string   `json:"id"`
	ServiceID         string   `json:"service_id"`
	Quantity          int      `json:"quantity"`
	UnitPrice         int64    `json:"unit_price"`
	LineTotal         int64    `json:"line_total"`
	DurationMinutes   int      `json:"duration_minutes"`
	DepositAmount     *int64   `json:"deposit_amount,omitempty"`
	DepositPercentage *float64 `json:"deposit_percentage,omitempty"`
}

type ReservationResponse struct {
	ID              string             `json:"id"`
	ShopID          string             `json:"shop_id"`
	UserID          string             `json:"user_id"`
	ReservationDate string             `json:"reservation_date"`
	ReservationTime string             `json:"reservation_time"`
	DurationMinutes int                `json:"duration_minutes"`
	Status          string             `json:"status"`
	TotalAmount     int64              `json:"total_amount"`
	DepositAmount   int64              `json:"deposit_amount"`
	RemainingAmount int64              `json:"remaining_amount"`
	PointsUsed      int64              `json:"points_used"`
	SpecialRequest  string             `json:"special_request,omitempty"`
	Services        []LineItemResponse `json:"services"`
	CreatedAt       string             `json:"created_at"`
	UpdatedAt       string             `json:"updated_at"`
}

type BulkItemResponse struct {
	ReservationID string               `json:"reservation_id"`
	Success       bool                 `json:"success"`
	Reservation   *ReservationResponse `json:"reservation,omitempty"`
	Error         string               `json:"error,omitempty"`
	Code          string               `json:"code,omitempty"`
}

type BulkStatusResponse struct {
	Results   []BulkItemResponse `json:"results"`
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
}

type ConflictResponse struct {
	ID                     string          `json:"id"`
	Type                   string          `json:"conflict_type"`
	Severity               string          `json:"severity"`
	Description            string          `json:"description"`
	AffectedReservationIDs []string        `json:"affected_reservation_ids"`
	ShopID                 string          `json:"shop_id"`
	DetectedAt             string          `json:"detected_at"`
	ResolvedAt             *string         `json:"resolved_at,omitempty"`
	ResolvedBy             *string         `json:"resolved_by,omitempty"`
	ResolutionMethod       *string         `json:"resolution_method,omitempty"`
	Compensation           json.RawMessage `json:"compensation,omitempty"`
	Metadata               json.RawMessage `json:"metadata,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	items := make([]LineItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, LineItemResponse{
			ID:                it.ID,
			ServiceID:         it.ServiceID,
			Quantity:          it.Quantity,
			UnitPrice:         it.UnitPrice,
			LineTotal:         it.LineTotal,
			DurationMinutes:   it.DurationMinutes,
			DepositAmount:     it.Deposit.FixedAmount,
			DepositPercentage: it.Deposit.Percentage,
		})
	}

	return ReservationResponse{
		ID:              r.ID,
		ShopID:          r.ShopID,
		UserID:          r.UserID,
		ReservationDate: r.ReservationDate.Format(domain.DateLayout),
		ReservationTime: r.ReservationTime,
		DurationMinutes: r.DurationMinutes,
		Status:          string(r.Status),
		TotalAmount:     r.TotalAmount,
		DepositAmount:   r.DepositAmount,
		RemainingAmount: r.RemainingAmount,
		PointsUsed:      r.PointsUsed,
		SpecialRequest:  r.SpecialRequest,
		Services:        items,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBulkStatusResponse(results []domain.BulkResult) BulkStatusResponse {
	resp := BulkStatusResponse{Results: make([]BulkItemResponse, 0, len(results))}
	for _, res := range results {
		item := BulkItemResponse{ReservationID: res.ReservationID}
		if res.Err != nil {
			item.Error = res.Err.Error()
			item.Code = domain.Code(res.Err)
			resp.Failed++
		} else {
			rr := ToReservationResponse(res.Reservation)
			item.Success = true
			item.Reservation = &rr
			resp.Succeeded++
		}
		resp.Results = append(resp.Results, item)
	}
	return resp
}

func ToConflictResponse(c *domain.Conflict) ConflictResponse {
	resp := ConflictResponse{
		ID:                     c.ID,
		Type:                   string(c.Type),
		Severity:               string(c.Severity),
		Description:            c.Description,
		AffectedReservationIDs: c.AffectedReservationIDs,
		ShopID:                 c.ShopID,
		DetectedAt:             c.DetectedAt.Format(time.RFC3339),
		ResolvedBy:             c.ResolvedBy,
		ResolutionMethod:       c.ResolutionMethod,
		Compensation:           c.Compensation,
		Metadata:               c.Metadata,
	}
	if c.ResolvedAt != nil {
		s := c.ResolvedAt.Format(time.RFC3339)
		resp.ResolvedAt = &s
	}
	if resp.AffectedReservationIDs == nil {
		resp.AffectedReservationIDs = []string{}
	}
	return resp
}
