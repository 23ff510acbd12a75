package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type conflictSweeper interface {
	SweepOverlaps(ctx context.Context) (int, error)
}

// Scheduler periodically audits committed reservations for double bookings.
// The first sweep runs right away so a restart does not delay detection by a full interval.
type Scheduler struct {
	sweeper  conflictSweeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	sweeper conflictSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("conflict sweep scheduler started",
		logger.Duration("interval", s.interval),
	)

	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("conflict sweep scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	started := time.Now()

	recorded, err := s.sweeper.SweepOverlaps(ctx)
	if err != nil {
		s.logger.Error("conflict sweep failed",
			logger.Int("recorded", recorded),
			logger.String("error", err.Error()),
		)
		return
	}

	if recorded == 0 {
		s.logger.Debug("conflict sweep finished, no new double bookings",
			logger.Duration("took", time.Since(started)),
		)
		return
	}
	s.logger.Warn("conflict sweep recorded double bookings",
		logger.Int("recorded", recorded),
		logger.Duration("took", time.Since(started)),
	)
}
