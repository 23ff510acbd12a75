package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/stpnv0/SalonBooker/internal/domain"
	"github.com/stpnv0/SalonBooker/internal/service/ports"
)

// fakeStore is an in-memory ports.ReservationRepo with the locking behaviour
// the booking path relies on: non-blocking slot locks held until the
// transaction ends, blocking row locks, and an overlap check at commit that
// plays the role of the exclusion constraint.
type fakeStore struct {
	mu           sync.Mutex
	services     map[string]domain.ShopService
	reservations map[string]*domain.Reservation
	windows      map[string]domain.TimeWindow
	items        map[string][]domain.LineItem
	logs         []domain.StatusLog
	slotLocks    map[string]bool
	rowLocks     map[string]*sync.Mutex

	// fault injection
	deadlocks    int
	overlapErr   error
	lineItemsErr error

	attempts      int
	compensations int
	lockTimeouts  []time.Duration
}

func newFakeStore(services ...domain.ShopService) *fakeStore {
	s := &fakeStore{
		services:     make(map[string]domain.ShopService),
		reservations: make(map[string]*domain.Reservation),
		windows:      make(map[string]domain.TimeWindow),
		items:        make(map[string][]domain.LineItem),
		slotLocks:    make(map[string]bool),
		rowLocks:     make(map[string]*sync.Mutex),
	}
	for _, svc := range services {
		s.services[svc.ID] = svc
	}
	return s
}

func (s *fakeStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx ports.ReservationTx) error) error {
	s.mu.Lock()
	s.attempts++
	s.mu.Unlock()

	tx := &fakeTx{
		s:            s,
		reservations: make(map[string]*domain.Reservation),
		windows:      make(map[string]domain.TimeWindow),
		items:        make(map[string][]domain.LineItem),
		statuses:     make(map[string]domain.ReservationStatus),
	}
	defer tx.release()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return s.commit(tx)
}

func (s *fakeStore) commit(tx *fakeTx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, r := range tx.reservations {
		for otherID, other := range s.reservations {
			if other.ShopID == r.ShopID && other.Status.IsActive() &&
				s.windows[otherID].Overlaps(tx.windows[id]) {
				return fmt.Errorf("%w: exclusion violation with %s", domain.ErrSlotConflict, otherID)
			}
		}
	}

	for id, r := range tx.reservations {
		s.reservations[id] = r
		s.windows[id] = tx.windows[id]
		s.items[id] = tx.items[id]
	}
	for id, status := range tx.statuses {
		s.reservations[id].Status = status
	}
	s.logs = append(s.logs, tx.logs...)
	return nil
}

func (s *fakeStore) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reservations[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	cp := *r
	cp.Items = append([]domain.LineItem(nil), s.items[id]...)
	return &cp, nil
}

func (s *fakeStore) FindOverlappingPairs(context.Context, time.Time) ([]domain.OverlapPair, error) {
	return nil, nil
}

func (s *fakeStore) seed(r *domain.Reservation, w domain.TimeWindow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations[r.ID] = r
	s.windows[r.ID] = w
}

func (s *fakeStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reservations)
}

func (s *fakeStore) logsFor(id string) []domain.StatusLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []domain.StatusLog
	for _, l := range s.logs {
		if l.ReservationID == id {
			res = append(res, l)
		}
	}
	return res
}

func (s *fakeStore) heldSlotLocks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slotLocks)
}

func (s *fakeStore) rowLock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.rowLocks[id]
	if !ok {
		l = &sync.Mutex{}
		s.rowLocks[id] = l
	}
	return l
}

type fakeTx struct {
	s *fakeStore

	slots []string
	rows  []*sync.Mutex

	reservations map[string]*domain.Reservation
	windows      map[string]domain.TimeWindow
	items        map[string][]domain.LineItem
	statuses     map[string]domain.ReservationStatus
	logs         []domain.StatusLog
}

func (t *fakeTx) release() {
	t.s.mu.Lock()
	for _, key := range t.slots {
		delete(t.s.slotLocks, key)
	}
	t.s.mu.Unlock()

	for _, l := range t.rows {
		l.Unlock()
	}
}

func (t *fakeTx) SetLockTimeout(_ context.Context, d time.Duration) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	t.s.lockTimeouts = append(t.s.lockTimeouts, d)
	return nil
}

func (t *fakeTx) AcquireSlotLock(_ context.Context, slot domain.Slot) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	key := slot.String()
	if t.s.slotLocks[key] {
		return fmt.Errorf("%w: %s", domain.ErrAdvisoryLockTimeout, key)
	}
	t.s.slotLocks[key] = true
	t.slots = append(t.slots, key)
	return nil
}

func (t *fakeTx) LockServices(_ context.Context, shopID string, ids []string) (map[string]domain.ShopService, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	res := make(map[string]domain.ShopService)
	for _, id := range ids {
		if svc, ok := t.s.services[id]; ok && svc.ShopID == shopID {
			res[id] = svc
		}
	}
	return res, nil
}

func (t *fakeTx) FindOverlapping(_ context.Context, shopID string, w domain.TimeWindow) ([]string, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if t.s.deadlocks > 0 {
		t.s.deadlocks--
		return nil, fmt.Errorf("select overlapping: %w", domain.ErrDeadlockDetected)
	}
	if t.s.overlapErr != nil {
		return nil, t.s.overlapErr
	}

	var ids []string
	for id, r := range t.s.reservations {
		if r.ShopID == shopID && r.Status.IsActive() && t.s.windows[id].Overlaps(w) {
			ids = append(ids, id)
		}
	}
	for id, r := range t.reservations {
		if r.ShopID == shopID && t.windows[id].Overlaps(w) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (t *fakeTx) InsertReservation(_ context.Context, r *domain.Reservation, w domain.TimeWindow) error {
	cp := *r
	t.reservations[r.ID] = &cp
	t.windows[r.ID] = w
	return nil
}

func (t *fakeTx) InsertLineItems(_ context.Context, items []domain.LineItem) error {
	t.s.mu.Lock()
	injected := t.s.lineItemsErr
	t.s.mu.Unlock()
	if injected != nil {
		return injected
	}

	for _, it := range items {
		t.items[it.ReservationID] = append(t.items[it.ReservationID], it)
	}
	return nil
}

func (t *fakeTx) DeleteReservation(_ context.Context, id string) error {
	delete(t.items, id)
	delete(t.reservations, id)
	delete(t.windows, id)

	t.s.mu.Lock()
	t.s.compensations++
	t.s.mu.Unlock()
	return nil
}

func (t *fakeTx) GetForUpdate(ctx context.Context, id string) (*domain.Reservation, error) {
	t.s.mu.Lock()
	_, ok := t.s.reservations[id]
	t.s.mu.Unlock()
	if !ok {
		return nil, domain.ErrReservationNotFound
	}

	l := t.s.rowLock(id)
	l.Lock()
	t.rows = append(t.rows, l)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	cp := *t.s.reservations[id]
	if status, ok := t.statuses[id]; ok {
		cp.Status = status
	}
	return &cp, nil
}

func (t *fakeTx) UpdateStatus(_ context.Context, id string, status domain.ReservationStatus, _ time.Time) error {
	t.statuses[id] = status
	return nil
}

func (t *fakeTx) InsertStatusLog(_ context.Context, l *domain.StatusLog) error {
	t.logs = append(t.logs, *l)
	return nil
}
