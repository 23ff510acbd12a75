package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SalonBooker/internal/domain"
	"github.com/stpnv0/SalonBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// retryAfterSeconds is sent with 503 responses caused by lock contention.
	retryAfterSeconds = "1"
)

type ReservationSvc interface {
	CreateReservation(ctx context.Context, in domain.CreateReservationInput) (*domain.Reservation, error)
	GetReservation(ctx context.Context, id string) (*domain.Reservation, error)
	TransitionStatus(ctx context.Context, in domain.TransitionInput) (*domain.Reservation, error)
	ForceComplete(ctx context.Context, id, actorID, reason string) (*domain.Reservation, error)
	BulkTransitionStatus(ctx context.Context, ids []string, target domain.ReservationStatus, actorID, reason string) []domain.BulkResult
}

type ConflictSvc interface {
	RecordConflict(ctx context.Context, in domain.RecordConflictInput) (*domain.Conflict, error)
	ResolveConflict(ctx context.Context, in domain.ResolveConflictInput) (*domain.Conflict, error)
	ListConflicts(ctx context.Context, f domain.ConflictFilter) ([]*domain.Conflict, error)
	ExportConflicts(ctx context.Context, f domain.ConflictFilter, w io.Writer) error
}

type Handler struct {
	reservationService ReservationSvc
	conflictService    ConflictSvc
}

func NewHandler(reservationService ReservationSvc, conflictService ConflictSvc) *Handler {
	return &Handler{
		reservationService: reservationService,
		conflictService:    conflictService,
	}
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	shopID := c.Param("id")
	if _, err := uuid.Parse(shopID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid shop id", Code: domain.CodeValidation})
		return
	}

	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: domain.CodeValidation})
		return
	}

	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid reservation_date format, expected YYYY-MM-DD",
			Code:  domain.CodeValidation,
		})
		return
	}

	services := make([]domain.ServiceRequest, 0, len(req.Services))
	for _, s := range req.Services {
		services = append(services, domain.ServiceRequest{ServiceID: s.ServiceID, Quantity: s.Quantity})
	}

	input := domain.CreateReservationInput{
		ShopID:            shopID,
		UserID:            req.UserID,
		Date:              date,
		Time:              req.Time,
		Services:          services,
		PointsUsed:        req.PointsUsed,
		SpecialRequest:    req.SpecialRequest,
		DepositOverride:   req.DepositOverride,
		RemainingOverride: req.RemainingOverride,
		LockTimeout:       time.Duration(req.LockTimeoutMs) * time.Millisecond,
	}

	r, err := h.reservationService.CreateReservation(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(r))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	r, err := h.reservationService.GetReservation(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(r))
}

func (h *Handler) TransitionStatus(c *ginext.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: domain.CodeValidation})
		return
	}

	r, err := h.reservationService.TransitionStatus(c.Request.Context(), domain.TransitionInput{
		ReservationID: id,
		Target:        domain.ReservationStatus(req.Status),
		ActorKind:     domain.ActorKind(req.ActorKind),
		ActorID:       req.ActorID,
		Reason:        req.Reason,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(r))
}

func (h *Handler) ForceComplete(c *ginext.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	var req dto.ForceCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: domain.CodeValidation})
		return
	}

	r, err := h.reservationService.ForceComplete(c.Request.Context(), id, req.ActorID, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(r))
}

// BulkTransitionStatus always answers 200; per-item failures are in the body.
func (h *Handler) BulkTransitionStatus(c *ginext.Context) {
	var req dto.BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: domain.CodeValidation})
		return
	}

	results := h.reservationService.BulkTransitionStatus(
		c.Request.Context(),
		req.ReservationIDs,
		domain.ReservationStatus(req.Status),
		req.ActorID,
		req.Reason,
	)

	c.JSON(http.StatusOK, dto.ToBulkStatusResponse(results))
}

// Conflicts

func (h *Handler) RecordConflict(c *ginext.Context) {
	var req dto.RecordConflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: domain.CodeValidation})
		return
	}

	conflict, err := h.conflictService.RecordConflict(c.Request.Context(), domain.RecordConflictInput{
		Type:                   domain.ConflictType(req.Type),
		Severity:               domain.Severity(req.Severity),
		Description:            req.Description,
		AffectedReservationIDs: req.AffectedReservationIDs,
		ShopID:                 req.ShopID,
		Metadata:               req.Metadata,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToConflictResponse(conflict))
}

func (h *Handler) ResolveConflict(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid conflict id", Code: domain.CodeValidation})
		return
	}

	var req dto.ResolveConflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: domain.CodeValidation})
		return
	}

	conflict, err := h.conflictService.ResolveConflict(c.Request.Context(), domain.ResolveConflictInput{
		ConflictID:   id,
		ResolverID:   req.ResolverID,
		Method:       req.Method,
		Compensation: req.Compensation,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConflictResponse(conflict))
}

func (h *Handler) ListConflicts(c *ginext.Context) {
	f, err := conflictFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: domain.CodeValidation})
		return
	}

	conflicts, err := h.conflictService.ListConflicts(c.Request.Context(), f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ConflictResponse, 0, len(conflicts))
	for _, conflict := range conflicts {
		resp = append(resp, dto.ToConflictResponse(conflict))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ExportConflicts(c *ginext.Context) {
	f, err := conflictFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: domain.CodeValidation})
		return
	}

	var buf bytes.Buffer
	if err = h.conflictService.ExportConflicts(c.Request.Context(), f, &buf); err != nil {
		h.handleError(c, err)
		return
	}

	filename := fmt.Sprintf("conflicts_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func reservationID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id", Code: domain.CodeValidation})
		return "", false
	}
	return id, true
}

func conflictFilter(c *ginext.Context) (domain.ConflictFilter, error) {
	f := domain.ConflictFilter{
		ShopID:         c.Query("shop_id"),
		UnresolvedOnly: c.Query("unresolved") == "true",
	}
	if f.ShopID != "" {
		if _, err := uuid.Parse(f.ShopID); err != nil {
			return f, fmt.Errorf("invalid shop_id")
		}
	}
	if since := c.Query("since"); since != "" {
		t, err := time.Parse(time.RFC3339, since)
		if err != nil {
			return f, fmt.Errorf("invalid since format, expected RFC3339")
		}
		f.Since = t
	}
	if limit := c.Query("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n <= 0 {
			return f, fmt.Errorf("limit must be a positive integer")
		}
		f.Limit = n
	}
	return f, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	code := domain.Code(err)
	status := statusFor(code)

	msg := err.Error()
	switch status {
	case http.StatusInternalServerError:
		msg = "internal server error"
	case http.StatusServiceUnavailable:
		c.Header("Retry-After", retryAfterSeconds)
	}

	c.JSON(status, dto.ErrorResponse{Error: msg, Code: code})
}

func statusFor(code string) int {
	switch code {
	case domain.CodeNotFound, domain.CodeServiceNotFound:
		return http.StatusNotFound
	case domain.CodeValidation, domain.CodeInvalidQuantity, domain.CodeInvalidPoints, domain.CodeInsufficientAmount:
		return http.StatusBadRequest
	case domain.CodeSlotConflict, domain.CodeInvalidTransition, domain.CodePaymentNotCompleted, domain.CodeAlreadyResolved:
		return http.StatusConflict
	case domain.CodeAdvisoryLockTimeout, domain.CodeLockTimeout, domain.CodeDeadlockRetryExceeded:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
