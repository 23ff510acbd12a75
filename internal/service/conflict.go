package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SalonBooker/internal/domain"
	"github.com/stpnv0/SalonBooker/internal/report"
	"github.com/stpnv0/SalonBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultConflictListLimit = 100

type ConflictService struct {
	repo     ports.ConflictRepo
	overlaps ports.OverlapFinder
	lookback time.Duration
	logger   logger.Logger
	now      func() time.Time
}

func NewConflictService(
	repo ports.ConflictRepo,
	overlaps ports.OverlapFinder,
	lookback time.Duration,
	log logger.Logger,
	opts ...Option,
) *ConflictService {
	o := options{now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(&o)
	}
	return &ConflictService{
		repo:     repo,
		overlaps: overlaps,
		lookback: lookback,
		logger:   log,
		now:      o.now,
	}
}

func (s *ConflictService) RecordConflict(ctx context.Context, in domain.RecordConflictInput) (*domain.Conflict, error) {
	switch {
	case !in.Type.Valid():
		return nil, fmt.Errorf("%w: unknown conflict type %q", domain.ErrValidation, in.Type)
	case !in.Severity.Valid():
		return nil, fmt.Errorf("%w: unknown severity %q", domain.ErrValidation, in.Severity)
	case in.ShopID == "":
		return nil, fmt.Errorf("%w: shop_id is required", domain.ErrValidation)
	case in.Description == "":
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if _, err := uuid.Parse(in.ShopID); err != nil {
		return nil, fmt.Errorf("%w: shop_id %q is not a uuid", domain.ErrValidation, in.ShopID)
	}
	for _, id := range in.AffectedReservationIDs {
		if _, err := uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("%w: reservation id %q is not a uuid", domain.ErrValidation, id)
		}
	}

	metadata := in.Metadata
	if len(metadata) == 0 {
		metadata = json.RawMessage(`{}`)
	}
	ids := in.AffectedReservationIDs
	if ids == nil {
		ids = []string{}
	}

	c := &domain.Conflict{
		ID:                     uuid.New().String(),
		Type:                   in.Type,
		Severity:               in.Severity,
		Description:            in.Description,
		AffectedReservationIDs: ids,
		ShopID:                 in.ShopID,
		DetectedAt:             s.now(),
		Metadata:               metadata,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("record conflict: %w", err)
	}

	s.logger.Info("conflict recorded",
		logger.String("conflict_id", c.ID),
		logger.String("type", string(c.Type)),
		logger.String("severity", string(c.Severity)),
		logger.String("shop_id", c.ShopID),
	)
	return c, nil
}

// ResolveConflict succeeds once; later calls fail with ErrConflictAlreadyResolved.
func (s *ConflictService) ResolveConflict(ctx context.Context, in domain.ResolveConflictInput) (*domain.Conflict, error) {
	switch {
	case in.ConflictID == "":
		return nil, fmt.Errorf("%w: conflict id is required", domain.ErrValidation)
	case in.ResolverID == "":
		return nil, fmt.Errorf("%w: resolver id is required", domain.ErrValidation)
	case in.Method == "":
		return nil, fmt.Errorf("%w: resolution method is required", domain.ErrValidation)
	}
	if len(in.Compensation) == 0 {
		in.Compensation = json.RawMessage(`{}`)
	}

	c, err := s.repo.Resolve(ctx, in, s.now())
	if err != nil {
		return nil, fmt.Errorf("resolve conflict %s: %w", in.ConflictID, err)
	}

	s.logger.Info("conflict resolved",
		logger.String("conflict_id", c.ID),
		logger.String("resolver_id", in.ResolverID),
		logger.String("method", in.Method),
	)
	return c, nil
}

func (s *ConflictService) ListConflicts(ctx context.Context, f domain.ConflictFilter) ([]*domain.Conflict, error) {
	if f.Limit <= 0 {
		f.Limit = defaultConflictListLimit
	}
	return s.repo.List(ctx, f)
}

// ExportConflicts writes the filtered conflicts to w as an xlsx workbook.
func (s *ConflictService) ExportConflicts(ctx context.Context, f domain.ConflictFilter, w io.Writer) error {
	conflicts, err := s.ListConflicts(ctx, f)
	if err != nil {
		return fmt.Errorf("list conflicts: %w", err)
	}
	if err = report.WriteConflicts(w, conflicts); err != nil {
		return fmt.Errorf("write conflicts report: %w", err)
	}
	return nil
}

// SweepOverlaps records a double_booking conflict for every overlapping pair
// of active reservations that has no unresolved record yet. It returns the
// number of new conflicts.
func (s *ConflictService) SweepOverlaps(ctx context.Context) (int, error) {
	pairs, err := s.overlaps.FindOverlappingPairs(ctx, s.now().Add(-s.lookback))
	if err != nil {
		return 0, fmt.Errorf("find overlapping pairs: %w", err)
	}

	recorded := 0
	for _, p := range pairs {
		ids := []string{p.First, p.Second}
		sort.Strings(ids)

		exists, err := s.repo.HasUnresolved(ctx, domain.ConflictDoubleBooking, ids)
		if err != nil {
			return recorded, fmt.Errorf("check existing conflict: %w", err)
		}
		if exists {
			continue
		}

		_, err = s.RecordConflict(ctx, domain.RecordConflictInput{
			Type:                   domain.ConflictDoubleBooking,
			Severity:               domain.SeverityHigh,
			Description:            fmt.Sprintf("reservations %s and %s overlap on %s", ids[0], ids[1], p.Date.Format(domain.DateLayout)),
			AffectedReservationIDs: ids,
			ShopID:                 p.ShopID,
			Metadata:               json.RawMessage(`{"source":"sweep"}`),
		})
		if err != nil {
			return recorded, err
		}
		recorded++
	}

	if recorded > 0 {
		s.logger.Warn("double bookings detected",
			logger.Int("pairs", len(pairs)),
			logger.Int("recorded", recorded),
		)
	}
	return recorded, nil
}
