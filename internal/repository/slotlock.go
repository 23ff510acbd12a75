package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/stpnv0/SalonBooker/internal/domain"
)

// SlotKey maps a slot to the bigint key of a Postgres advisory lock.
// Equal slots always give equal keys; distinct slots may collide, which only
// costs a spurious ADVISORY_LOCK_TIMEOUT.
func SlotKey(slot domain.Slot) int64 {
	return int64(xxhash.Sum64String(slot.String()))
}

// acquireSlotLock takes a transaction-scoped advisory lock without waiting.
// There is no unlock: Postgres releases it at commit or rollback.
func acquireSlotLock(ctx context.Context, tx *sql.Tx, slot domain.Slot) error {
	var acquired bool
	err := tx.QueryRowContext(ctx, `SELECT pg_try_advisory_xact_lock($1)`, SlotKey(slot)).Scan(&acquired)
	if err != nil {
		return fmt.Errorf("advisory lock: %w", classify(ctx, err))
	}
	if !acquired {
		return fmt.Errorf("%w: %s", domain.ErrAdvisoryLockTimeout, slot)
	}
	return nil
}
