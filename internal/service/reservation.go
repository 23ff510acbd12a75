package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SalonBooker/internal/deposit"
	"github.com/stpnv0/SalonBooker/internal/domain"
	"github.com/stpnv0/SalonBooker/internal/metrics"
	"github.com/stpnv0/SalonBooker/internal/service/ports"
	"github.com/stpnv0/SalonBooker/internal/txretry"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

type ReservationConfig struct {
	LockTimeout time.Duration
	Buffer      time.Duration
	Retry       retry.Strategy
}

// DefaultReservationConfig retries a deadlocked transaction 3 times in total,
// sleeping 100ms and then 200ms; a 400ms step would need Attempts: 4.
func DefaultReservationConfig() ReservationConfig {
	return ReservationConfig{
		LockTimeout: 3 * time.Second,
		Buffer:      domain.BufferTime,
		Retry: retry.Strategy{
			Attempts: 3,
			Delay:    100 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type ReservationService struct {
	repo      ports.ReservationRepo
	payments  ports.PaymentLookup
	users     ports.UserRepo
	notifier  ports.ReservationNotifier
	publisher ports.EventPublisher
	calc      *deposit.Calculator
	cfg       ReservationConfig
	retrier   *txretry.Retrier
	logger    logger.Logger
	now       func() time.Time
}

type Option func(*options)

type options struct {
	sleeper txretry.Sleeper
	now     func() time.Time
}

// WithSleeper replaces the backoff sleep, mostly for tests.
func WithSleeper(s txretry.Sleeper) Option {
	return func(o *options) { o.sleeper = s }
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func NewReservationService(
	repo ports.ReservationRepo,
	payments ports.PaymentLookup,
	users ports.UserRepo,
	notifier ports.ReservationNotifier,
	publisher ports.EventPublisher,
	calc *deposit.Calculator,
	cfg ReservationConfig,
	log logger.Logger,
	opts ...Option,
) *ReservationService {
	o := options{now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(&o)
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = domain.BufferTime
	}

	s := &ReservationService{
		repo:      repo,
		payments:  payments,
		users:     users,
		notifier:  notifier,
		publisher: publisher,
		calc:      calc,
		cfg:       cfg,
		logger:    log,
		now:       o.now,
	}
	s.retrier = txretry.New(cfg.Retry, isDeadlock,
		txretry.WithSleeper(o.sleeper),
		txretry.WithOnRetry(s.logRetry),
	)
	return s
}

func isDeadlock(err error) bool {
	return errors.Is(err, domain.ErrDeadlockDetected)
}

func (s *ReservationService) logRetry(attempt int, delay time.Duration, err error) {
	metrics.IncDeadlockRetry()
	s.logger.Warn("deadlock detected, retrying",
		logger.Int("attempt", attempt),
		logger.Duration("backoff", delay),
		logger.String("error", err.Error()),
	)
}

// runTx runs fn in its own transaction, retrying the whole transaction on deadlock.
func (s *ReservationService) runTx(ctx context.Context, fn func(ctx context.Context, tx ports.ReservationTx) error) error {
	err := s.retrier.Do(ctx, func(ctx context.Context, _ int) error {
		return s.repo.WithinTx(ctx, fn)
	})
	if errors.Is(err, txretry.ErrExhausted) {
		return fmt.Errorf("%w: %d attempts", domain.ErrDeadlockRetryExceeded, s.retrier.Attempts())
	}
	return err
}

func (s *ReservationService) CreateReservation(ctx context.Context, in domain.CreateReservationInput) (*domain.Reservation, error) {
	started := time.Now()

	if err := validateCreateInput(in); err != nil {
		metrics.ObserveReservationCreate(domain.Code(err), time.Since(started))
		return nil, err
	}

	var created *domain.Reservation
	err := s.runTx(ctx, func(ctx context.Context, tx ports.ReservationTx) error {
		r, err := s.book(ctx, tx, in)
		if err != nil {
			return err
		}
		created = r
		return nil
	})

	metrics.ObserveReservationCreate(domain.Code(err), time.Since(started))
	if err != nil {
		s.logger.Warn("reservation rejected",
			logger.String("shop_id", in.ShopID),
			logger.String("user_id", in.UserID),
			logger.String("date", in.Date.Format(domain.DateLayout)),
			logger.String("time", in.Time),
			logger.String("code", domain.Code(err)),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", created.ID),
		logger.String("shop_id", created.ShopID),
		logger.String("user_id", created.UserID),
		logger.Int64("total_amount", created.TotalAmount),
		logger.Int64("deposit_amount", created.DepositAmount),
	)

	go s.afterCreate(context.WithoutCancel(ctx), created)

	return created, nil
}

// book is one attempt: slot lock, catalog read and validation, conflict
// check, deposit math and write, all inside tx.
func (s *ReservationService) book(ctx context.Context, tx ports.ReservationTx, in domain.CreateReservationInput) (*domain.Reservation, error) {
	if err := tx.SetLockTimeout(ctx, s.lockTimeout(in)); err != nil {
		return nil, fmt.Errorf("set lock timeout: %w", err)
	}

	at, err := domain.NormalizeSlotTime(in.Time)
	if err != nil {
		return nil, err
	}
	slot := domain.Slot{ShopID: in.ShopID, Date: dateOnly(in.Date), Time: at}
	if err = tx.AcquireSlotLock(ctx, slot); err != nil {
		return nil, fmt.Errorf("acquire slot lock: %w", err)
	}

	items, err := s.resolveItems(ctx, tx, in)
	if err != nil {
		return nil, err
	}

	start, err := slot.StartAt()
	if err != nil {
		return nil, err
	}
	window := domain.NewWindow(start, totalDuration(items), s.cfg.Buffer)

	overlapping, err := tx.FindOverlapping(ctx, in.ShopID, window)
	if err != nil {
		return nil, fmt.Errorf("find overlapping: %w", err)
	}
	if len(overlapping) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrSlotConflict, strings.Join(overlapping, ","))
	}

	amounts := s.calc.Calculate(items, deposit.Overrides{
		Deposit:   in.DepositOverride,
		Remaining: in.RemainingOverride,
	})
	if in.PointsUsed > amounts.TotalAmount {
		return nil, fmt.Errorf("%w: points %d, total %d",
			domain.ErrInsufficientAmount, in.PointsUsed, amounts.TotalAmount)
	}

	now := s.now()
	r := &domain.Reservation{
		ID:              uuid.New().String(),
		ShopID:          in.ShopID,
		UserID:          in.UserID,
		ReservationDate: slot.Date,
		ReservationTime: slot.Time,
		DurationMinutes: int(totalDuration(items) / time.Minute),
		Status:          domain.StatusRequested,
		TotalAmount:     amounts.TotalAmount,
		DepositAmount:   amounts.DepositAmount,
		RemainingAmount: amounts.RemainingAmount,
		PointsUsed:      in.PointsUsed,
		SpecialRequest:  in.SpecialRequest,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err = s.writeReservation(ctx, tx, r, items, window); err != nil {
		return nil, err
	}
	return r, nil
}

// resolveItems reads the requested services under lock and snapshots price,
// duration and deposit policy into line items.
func (s *ReservationService) resolveItems(ctx context.Context, tx ports.ReservationTx, in domain.CreateReservationInput) ([]domain.LineItem, error) {
	ids := make([]string, 0, len(in.Services))
	for _, req := range in.Services {
		if req.Quantity <= 0 {
			return nil, fmt.Errorf("%w: service %s quantity %d", domain.ErrInvalidQuantity, req.ServiceID, req.Quantity)
		}
		ids = append(ids, req.ServiceID)
	}
	if in.PointsUsed < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidPoints, in.PointsUsed)
	}

	catalog, err := tx.LockServices(ctx, in.ShopID, ids)
	if err != nil {
		return nil, fmt.Errorf("lock services: %w", err)
	}

	items := make([]domain.LineItem, 0, len(in.Services))
	for _, req := range in.Services {
		svc, ok := catalog[req.ServiceID]
		if !ok || !svc.Available || svc.ShopID != in.ShopID {
			return nil, fmt.Errorf("%w: %s", domain.ErrServiceNotFound, req.ServiceID)
		}
		items = append(items, domain.LineItem{
			ServiceID:       svc.ID,
			Quantity:        req.Quantity,
			UnitPrice:       svc.Price,
			LineTotal:       deposit.LineTotal(svc.Price, req.Quantity),
			DurationMinutes: svc.DurationMinutes,
			Deposit:         svc.Deposit,
		})
	}
	return items, nil
}

// writeReservation inserts the header and its line items. Once the header exists, any
// failure goes through a single compensation step before propagating.
func (s *ReservationService) writeReservation(
	ctx context.Context,
	tx ports.ReservationTx,
	r *domain.Reservation,
	items []domain.LineItem,
	window domain.TimeWindow,
) (err error) {
	if err = tx.InsertReservation(ctx, r, window); err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}

	defer func() {
		if err == nil {
			return
		}
		if cerr := tx.DeleteReservation(ctx, r.ID); cerr != nil {
			s.logger.Error("reservation compensation failed",
				logger.String("reservation_id", r.ID),
				logger.String("error", cerr.Error()),
			)
			err = errors.Join(err, fmt.Errorf("compensate: %w", cerr))
		}
	}()

	for i := range items {
		items[i].ID = uuid.New().String()
		items[i].ReservationID = r.ID
		items[i].CreatedAt = r.CreatedAt
	}
	if err = tx.InsertLineItems(ctx, items); err != nil {
		return fmt.Errorf("insert line items: %w", err)
	}

	if err = verifyWritten(r, items); err != nil {
		return err
	}

	r.Items = items
	return nil
}

func verifyWritten(r *domain.Reservation, items []domain.LineItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: reservation has no line items", domain.ErrValidation)
	}
	var sum int64
	for _, it := range items {
		if it.LineTotal != deposit.LineTotal(it.UnitPrice, it.Quantity) {
			return fmt.Errorf("line item %s total mismatch", it.ServiceID)
		}
		sum += it.LineTotal
	}
	if sum != r.TotalAmount {
		return fmt.Errorf("line totals %d do not match reservation total %d", sum, r.TotalAmount)
	}
	if !r.AmountsBalanced() {
		return fmt.Errorf("deposit %d and remaining %d do not add up to total %d",
			r.DepositAmount, r.RemainingAmount, r.TotalAmount)
	}
	return nil
}

func (s *ReservationService) GetReservation(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ReservationService) lockTimeout(in domain.CreateReservationInput) time.Duration {
	if in.LockTimeout > 0 {
		return in.LockTimeout
	}
	return s.cfg.LockTimeout
}

func (s *ReservationService) afterCreate(ctx context.Context, r *domain.Reservation) {
	s.publish(ctx, domain.NewReservationEvent(domain.EventReservationCreated, r, r.CreatedAt))

	user, err := s.users.GetByID(ctx, r.UserID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", r.UserID),
			logger.String("error", err.Error()),
		)
		return
	}
	s.notifier.NotifyReservationCreated(ctx, user, r)
}

func (s *ReservationService) publish(ctx context.Context, e domain.ReservationEvent) {
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.logger.Error("failed to publish reservation event",
			logger.String("reservation_id", e.ReservationID),
			logger.String("type", string(e.Type)),
			logger.String("error", err.Error()),
		)
	}
}

func validateCreateInput(in domain.CreateReservationInput) error {
	switch {
	case in.ShopID == "":
		return fmt.Errorf("%w: shop_id is required", domain.ErrValidation)
	case in.UserID == "":
		return fmt.Errorf("%w: user_id is required", domain.ErrValidation)
	case in.Date.IsZero():
		return fmt.Errorf("%w: reservation date is required", domain.ErrValidation)
	case len(in.Services) == 0:
		return fmt.Errorf("%w: at least one service is required", domain.ErrValidation)
	case in.LockTimeout < 0:
		return fmt.Errorf("%w: lock timeout must not be negative", domain.ErrValidation)
	}
	if _, err := domain.ParseSlotTime(in.Time); err != nil {
		return err
	}
	return nil
}

// totalDuration is the chair time of all items; quantities are served back to back.
func totalDuration(items []domain.LineItem) time.Duration {
	var minutes int
	for _, it := range items {
		minutes += it.DurationMinutes * it.Quantity
	}
	return time.Duration(minutes) * time.Minute
}

// dateOnly keeps the caller's calendar day: a local midnight must not shift
// to the previous day through UTC conversion.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
