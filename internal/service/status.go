package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/stpnv0/SalonBooker/internal/domain"
	"github.com/stpnv0/SalonBooker/internal/metrics"
	"github.com/stpnv0/SalonBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

func (s *ReservationService) TransitionStatus(ctx context.Context, in domain.TransitionInput) (*domain.Reservation, error) {
	in.Force = false
	return s.transition(ctx, in)
}

// ForceComplete moves any non-terminal reservation to completed. Payment must
// still be settled.
func (s *ReservationService) ForceComplete(ctx context.Context, id, actorID, reason string) (*domain.Reservation, error) {
	return s.transition(ctx, domain.TransitionInput{
		ReservationID: id,
		Target:        domain.StatusCompleted,
		ActorKind:     domain.ActorAdmin,
		ActorID:       actorID,
		Reason:        reason,
		Force:         true,
	})
}

// BulkTransitionStatus applies each transition in its own transaction, so one
// failing reservation does not affect the others.
func (s *ReservationService) BulkTransitionStatus(
	ctx context.Context,
	ids []string,
	target domain.ReservationStatus,
	actorID, reason string,
) []domain.BulkResult {
	results := make([]domain.BulkResult, 0, len(ids))
	for _, id := range ids {
		r, err := s.transition(ctx, domain.TransitionInput{
			ReservationID: id,
			Target:        target,
			ActorKind:     domain.ActorAdmin,
			ActorID:       actorID,
			Reason:        reason,
		})
		results = append(results, domain.BulkResult{ReservationID: id, Reservation: r, Err: err})
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	s.logger.Info("bulk status transition finished",
		logger.String("target", string(target)),
		logger.Int("total", len(results)),
		logger.Int("failed", failed),
	)
	return results
}

func (s *ReservationService) transition(ctx context.Context, in domain.TransitionInput) (*domain.Reservation, error) {
	if err := validateTransitionInput(in); err != nil {
		metrics.IncStatusTransition(string(in.Target), domain.Code(err))
		return nil, err
	}

	var (
		updated *domain.Reservation
		from    domain.ReservationStatus
	)
	err := s.runTx(ctx, func(ctx context.Context, tx ports.ReservationTx) error {
		if err := tx.SetLockTimeout(ctx, s.cfg.LockTimeout); err != nil {
			return fmt.Errorf("set lock timeout: %w", err)
		}

		r, err := tx.GetForUpdate(ctx, in.ReservationID)
		if err != nil {
			return err
		}
		if err = s.guardTransition(ctx, r, in); err != nil {
			return err
		}

		now := s.now()
		if err = tx.UpdateStatus(ctx, r.ID, in.Target, now); err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		entry := &domain.StatusLog{
			ID:            uuid.New().String(),
			ReservationID: r.ID,
			FromStatus:    r.Status,
			ToStatus:      in.Target,
			ActorKind:     in.ActorKind,
			ActorID:       in.ActorID,
			Reason:        in.Reason,
			Metadata:      transitionMetadata(in),
			CreatedAt:     now,
		}
		if err = tx.InsertStatusLog(ctx, entry); err != nil {
			return fmt.Errorf("insert status log: %w", err)
		}

		from = r.Status
		r.Status = in.Target
		r.UpdatedAt = now
		updated = r
		return nil
	})

	metrics.IncStatusTransition(string(in.Target), domain.Code(err))
	if err != nil {
		s.logger.Warn("status transition rejected",
			logger.String("reservation_id", in.ReservationID),
			logger.String("target", string(in.Target)),
			logger.String("code", domain.Code(err)),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("transition reservation %s: %w", in.ReservationID, err)
	}

	s.logger.Info("reservation status changed",
		logger.String("reservation_id", updated.ID),
		logger.String("from", string(from)),
		logger.String("to", string(updated.Status)),
		logger.String("actor_kind", string(in.ActorKind)),
	)

	go s.afterTransition(context.WithoutCancel(ctx), updated, from, in)

	return updated, nil
}

func (s *ReservationService) guardTransition(ctx context.Context, r *domain.Reservation, in domain.TransitionInput) error {
	if r.Status.IsTerminal() {
		return fmt.Errorf("%w: reservation is already %s", domain.ErrInvalidTransition, r.Status)
	}

	allowed := domain.CanTransition(r.Status, in.Target)
	if in.Force {
		allowed = domain.CanForceComplete(r.Status)
	}
	if !allowed {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, r.Status, in.Target)
	}

	if !in.Target.RequiresSettlement() {
		return nil
	}
	paid, err := s.payments.PaymentStatus(ctx, r.ID)
	if err != nil {
		return fmt.Errorf("payment status: %w", err)
	}
	if !paid.Settled() {
		return fmt.Errorf("%w: payment is %s", domain.ErrPaymentNotCompleted, paid)
	}
	return nil
}

func (s *ReservationService) afterTransition(ctx context.Context, r *domain.Reservation, from domain.ReservationStatus, in domain.TransitionInput) {
	e := domain.NewReservationEvent(domain.EventStatusChanged, r, r.UpdatedAt)
	e.FromStatus = from
	e.ActorKind = in.ActorKind
	e.ActorID = in.ActorID
	s.publish(ctx, e)

	user, err := s.users.GetByID(ctx, r.UserID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", r.UserID),
			logger.String("error", err.Error()),
		)
		return
	}
	s.notifier.NotifyStatusChanged(ctx, user, r, from)
}

func validateTransitionInput(in domain.TransitionInput) error {
	switch {
	case in.ReservationID == "":
		return fmt.Errorf("%w: reservation id is required", domain.ErrValidation)
	case !in.Target.Valid():
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, in.Target)
	case !in.ActorKind.Valid():
		return fmt.Errorf("%w: unknown actor kind %q", domain.ErrValidation, in.ActorKind)
	}
	return nil
}

func transitionMetadata(in domain.TransitionInput) json.RawMessage {
	if !in.Force {
		return json.RawMessage(`{}`)
	}
	return json.RawMessage(`{"forced":true}`)
}
