package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/SalonBooker/internal/domain"
	"github.com/stpnv0/SalonBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const reservationColumns = `id, shop_id, user_id, reservation_date, to_char(reservation_time, 'HH24:MI'),
	duration_minutes, status, total_amount, deposit_amount, remaining_amount, points_used,
	special_request, created_at, updated_at`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReservationRepository) WithinTx(ctx context.Context, fn func(ctx context.Context, tx ports.ReservationTx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", classify(ctx, err))
	}
	defer tx.Rollback()

	if err = fn(ctx, &reservationTx{tx: tx}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", classify(ctx, err))
	}
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	if !validID(id) {
		return nil, domain.ErrReservationNotFound
	}

	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, lineItemsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get line items: %w", err)
	}
	defer rows.Close()

	if res.Items, err = scanLineItems(rows); err != nil {
		return nil, err
	}
	return res, nil
}

// FindOverlappingPairs returns each intersecting pair of active reservations
// once, ordered by date.
func (r *ReservationRepository) FindOverlappingPairs(ctx context.Context, since time.Time) ([]domain.OverlapPair, error) {
	query := `SELECT a.shop_id, a.id, b.id, a.reservation_date
			  FROM reservations a
			  JOIN reservations b
			    ON b.shop_id = a.shop_id
			   AND b.id > a.id
			   AND b.slot_range && a.slot_range
			  WHERE a.status = ANY($1)
			    AND b.status = ANY($1)
			    AND a.reservation_date >= $2::date
			  ORDER BY a.reservation_date, a.id, b.id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		pq.Array(domain.ActiveStatuses), since.UTC().Format(domain.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("find overlapping pairs: %w", err)
	}
	defer rows.Close()

	var res []domain.OverlapPair
	for rows.Next() {
		var p domain.OverlapPair
		if err = rows.Scan(&p.ShopID, &p.First, &p.Second, &p.Date); err != nil {
			return nil, fmt.Errorf("scan overlap pair: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res     domain.Reservation
		request sql.NullString
	)
	err := row.Scan(
		&res.ID, &res.ShopID, &res.UserID, &res.ReservationDate, &res.ReservationTime,
		&res.DurationMinutes, &res.Status, &res.TotalAmount, &res.DepositAmount,
		&res.RemainingAmount, &res.PointsUsed, &request, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}
	res.SpecialRequest = request.String
	return &res, nil
}

const lineItemsQuery = `SELECT id, reservation_id, service_id, quantity, unit_price, line_total,
	duration_minutes, deposit_amount, deposit_percentage, created_at
	FROM reservation_services
	WHERE reservation_id = $1
	ORDER BY created_at, id`

func scanLineItems(rows *sql.Rows) ([]domain.LineItem, error) {
	var items []domain.LineItem
	for rows.Next() {
		var (
			it    domain.LineItem
			fixed sql.NullInt64
			pct   sql.NullFloat64
		)
		err := rows.Scan(
			&it.ID, &it.ReservationID, &it.ServiceID, &it.Quantity, &it.UnitPrice,
			&it.LineTotal, &it.DurationMinutes, &fixed, &pct, &it.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		it.Deposit = depositPolicy(fixed, pct)
		items = append(items, it)
	}
	return items, rows.Err()
}

func depositPolicy(fixed sql.NullInt64, pct sql.NullFloat64) domain.DepositPolicy {
	var p domain.DepositPolicy
	if fixed.Valid {
		v := fixed.Int64
		p.FixedAmount = &v
	}
	if pct.Valid {
		v := pct.Float64
		p.Percentage = &v
	}
	return p
}
