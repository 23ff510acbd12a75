package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/SalonBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const conflictColumns = `id, conflict_type, severity, description, affected_reservation_ids, shop_id,
	detected_at, resolved_at, resolved_by, resolution_method, compensation, metadata`

type ConflictRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewConflictRepo(db *dbpg.DB) *ConflictRepository {
	return &ConflictRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ConflictRepository) Create(ctx context.Context, c *domain.Conflict) error {
	query := `INSERT INTO conflicts (id, conflict_type, severity, description,
				affected_reservation_ids, shop_id, detected_at, metadata)
			  VALUES ($1, $2, $3, $4, $5::uuid[], $6, $7, $8)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		c.ID, c.Type, c.Severity, c.Description,
		pq.Array(c.AffectedReservationIDs), c.ShopID, c.DetectedAt, []byte(c.Metadata),
	)
	if err != nil {
		return fmt.Errorf("insert conflict: %w", err)
	}
	return nil
}

// Resolve sets the resolution fields only while the conflict is unresolved,
// so concurrent resolvers cannot both win.
func (r *ConflictRepository) Resolve(ctx context.Context, in domain.ResolveConflictInput, at time.Time) (*domain.Conflict, error) {
	if !validID(in.ConflictID) {
		return nil, domain.ErrConflictNotFound
	}

	query := `UPDATE conflicts
			  SET resolved_at = $2, resolved_by = $3, resolution_method = $4, compensation = $5
			  WHERE id = $1 AND resolved_at IS NULL
			  RETURNING ` + conflictColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query,
		in.ConflictID, at, in.ResolverID, in.Method, []byte(in.Compensation))
	if err != nil {
		return nil, fmt.Errorf("resolve conflict: %w", err)
	}

	c, err := scanConflict(row)
	if !errors.Is(err, domain.ErrConflictNotFound) {
		return c, err
	}

	// Определяем причину: конфликта нет или он уже разрешён
	var exists bool
	row, err = r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT EXISTS(SELECT 1 FROM conflicts WHERE id = $1)`, in.ConflictID)
	if err != nil {
		return nil, fmt.Errorf("check conflict: %w", err)
	}
	if err = row.Scan(&exists); err != nil {
		return nil, fmt.Errorf("scan conflict existence: %w", err)
	}
	if exists {
		return nil, domain.ErrConflictAlreadyResolved
	}
	return nil, domain.ErrConflictNotFound
}

func (r *ConflictRepository) List(ctx context.Context, f domain.ConflictFilter) ([]*domain.Conflict, error) {
	var (
		where []string
		args  []any
	)
	if f.ShopID != "" {
		if !validID(f.ShopID) {
			return nil, nil
		}
		args = append(args, f.ShopID)
		where = append(where, fmt.Sprintf("shop_id = $%d", len(args)))
	}
	if f.UnresolvedOnly {
		where = append(where, "resolved_at IS NULL")
	}
	if !f.Since.IsZero() {
		args = append(args, f.Since)
		where = append(where, fmt.Sprintf("detected_at >= $%d", len(args)))
	}

	query := `SELECT ` + conflictColumns + ` FROM conflicts`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY detected_at DESC, id`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list conflicts: %w", err)
	}
	defer rows.Close()

	var res []*domain.Conflict
	for rows.Next() {
		c, err := scanConflict(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

// HasUnresolved reports whether an open conflict of type t covers exactly reservationIDs.
func (r *ConflictRepository) HasUnresolved(ctx context.Context, t domain.ConflictType, reservationIDs []string) (bool, error) {
	query := `SELECT EXISTS(
				SELECT 1 FROM conflicts
				WHERE conflict_type = $1
				  AND resolved_at IS NULL
				  AND affected_reservation_ids @> $2::uuid[]
				  AND affected_reservation_ids <@ $2::uuid[])`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, t, pq.Array(reservationIDs))
	if err != nil {
		return false, fmt.Errorf("check unresolved conflict: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan unresolved conflict: %w", err)
	}
	return exists, nil
}

func scanConflict(row rowScanner) (*domain.Conflict, error) {
	var (
		c            domain.Conflict
		resolvedAt   sql.NullTime
		resolvedBy   sql.NullString
		method       sql.NullString
		compensation []byte
		metadata     []byte
	)
	err := row.Scan(
		&c.ID, &c.Type, &c.Severity, &c.Description, pq.Array(&c.AffectedReservationIDs),
		&c.ShopID, &c.DetectedAt, &resolvedAt, &resolvedBy, &method, &compensation, &metadata,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrConflictNotFound
		}
		return nil, fmt.Errorf("scan conflict: %w", err)
	}

	if resolvedAt.Valid {
		t := resolvedAt.Time
		c.ResolvedAt = &t
	}
	if resolvedBy.Valid {
		c.ResolvedBy = &resolvedBy.String
	}
	if method.Valid {
		c.ResolutionMethod = &method.String
	}
	c.Compensation = compensation
	c.Metadata = metadata
	return &c, nil
}
