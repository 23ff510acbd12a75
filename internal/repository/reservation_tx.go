package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/SalonBooker/internal/domain"
)

// reservationTx runs the booking and transition statements on one *sql.Tx.
type reservationTx struct {
	tx *sql.Tx
}

// SetLockTimeout bounds row lock waits for the rest of the transaction.
// A non-positive d keeps the server default lock_timeout.
func (t *reservationTx) SetLockTimeout(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	// is_local = true: сбрасывается вместе с транзакцией
	_, err := t.tx.ExecContext(ctx, `SELECT set_config('lock_timeout', $1, true)`,
		fmt.Sprintf("%dms", d.Milliseconds()))
	if err != nil {
		return classify(ctx, err)
	}
	return nil
}

func (t *reservationTx) AcquireSlotLock(ctx context.Context, slot domain.Slot) error {
	return acquireSlotLock(ctx, t.tx, slot)
}

// LockServices reads the requested catalog rows FOR SHARE so prices and
// availability cannot change until commit. Unknown ids are simply absent.
func (t *reservationTx) LockServices(ctx context.Context, shopID string, serviceIDs []string) (map[string]domain.ShopService, error) {
	ids := make([]string, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		if validID(id) {
			ids = append(ids, id)
		}
	}
	res := make(map[string]domain.ShopService, len(ids))
	if len(ids) == 0 || !validID(shopID) {
		return res, nil
	}

	query := `SELECT id, shop_id, name, price, duration_minutes,
			         deposit_amount, deposit_percentage, is_available
			  FROM shop_services
			  WHERE shop_id = $1 AND id = ANY($2::uuid[])
			  ORDER BY id
			  FOR SHARE`
	rows, err := t.tx.QueryContext(ctx, query, shopID, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("select services: %w", classify(ctx, err))
	}
	defer rows.Close()

	for rows.Next() {
		var (
			s     domain.ShopService
			fixed sql.NullInt64
			pct   sql.NullFloat64
		)
		err = rows.Scan(&s.ID, &s.ShopID, &s.Name, &s.Price, &s.DurationMinutes, &fixed, &pct, &s.Available)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		s.Deposit = depositPolicy(fixed, pct)
		res[s.ID] = s
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate services: %w", classify(ctx, err))
	}
	return res, nil
}

// FindOverlapping locks every active reservation of the shop whose blocked
// window intersects w and returns their ids.
func (t *reservationTx) FindOverlapping(ctx context.Context, shopID string, w domain.TimeWindow) ([]string, error) {
	query := `SELECT id FROM reservations
			  WHERE shop_id = $1
			    AND status = ANY($2)
			    AND slot_range && tsrange($3::timestamp, $4::timestamp, '[)')
			  ORDER BY id
			  FOR UPDATE`
	rows, err := t.tx.QueryContext(ctx, query, shopID, pq.Array(domain.ActiveStatuses), tsBound(w.Start), tsBound(w.End))
	if err != nil {
		return nil, fmt.Errorf("select overlapping: %w", classify(ctx, err))
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan overlapping id: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate overlapping: %w", classify(ctx, err))
	}
	return ids, nil
}

func (t *reservationTx) InsertReservation(ctx context.Context, r *domain.Reservation, w domain.TimeWindow) error {
	query := `INSERT INTO reservations (
				id, shop_id, user_id, reservation_date, reservation_time, duration_minutes,
				slot_range, status, total_amount, deposit_amount, remaining_amount,
				points_used, special_request, created_at, updated_at)
			  VALUES ($1, $2, $3, $4::date, $5::time, $6,
				tsrange($7::timestamp, $8::timestamp, '[)'), $9, $10, $11, $12,
				$13, $14, $15, $16)`
	_, err := t.tx.ExecContext(ctx, query,
		r.ID, r.ShopID, r.UserID, r.ReservationDate.Format(domain.DateLayout), r.ReservationTime,
		r.DurationMinutes, tsBound(w.Start), tsBound(w.End), r.Status, r.TotalAmount,
		r.DepositAmount, r.RemainingAmount, r.PointsUsed, r.SpecialRequest, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return classify(ctx, err)
	}
	return nil
}

func (t *reservationTx) InsertLineItems(ctx context.Context, items []domain.LineItem) error {
	query := `INSERT INTO reservation_services (
				id, reservation_id, service_id, quantity, unit_price, line_total,
				duration_minutes, deposit_amount, deposit_percentage, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for _, it := range items {
		_, err := t.tx.ExecContext(ctx, query,
			it.ID, it.ReservationID, it.ServiceID, it.Quantity, it.UnitPrice, it.LineTotal,
			it.DurationMinutes, it.Deposit.FixedAmount, it.Deposit.Percentage, it.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert line item %s: %w", it.ServiceID, classify(ctx, err))
		}
	}
	return nil
}

// DeleteReservation removes line items and header written earlier in this
// transaction.
func (t *reservationTx) DeleteReservation(ctx context.Context, id string) error {
	_, err := t.tx.ExecContext(ctx, `DELETE FROM reservation_services WHERE reservation_id = $1`, id)
	if isCode(err, codeInFailedTransaction) {
		// transaction already aborted: rollback discards the rows
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete line items: %w", classify(ctx, err))
	}

	if _, err = t.tx.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete reservation: %w", classify(ctx, err))
	}
	return nil
}

func (t *reservationTx) GetForUpdate(ctx context.Context, id string) (*domain.Reservation, error) {
	if !validID(id) {
		return nil, domain.ErrReservationNotFound
	}

	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE`
	res, err := scanReservation(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, classify(ctx, err)
	}

	rows, err := t.tx.QueryContext(ctx, lineItemsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get line items: %w", classify(ctx, err))
	}
	defer rows.Close()

	if res.Items, err = scanLineItems(rows); err != nil {
		return nil, err
	}
	return res, nil
}

func (t *reservationTx) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus, at time.Time) error {
	res, err := t.tx.ExecContext(ctx,
		`UPDATE reservations SET status = $2, updated_at = $3 WHERE id = $1`, id, status, at)
	if err != nil {
		return classify(ctx, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (t *reservationTx) InsertStatusLog(ctx context.Context, l *domain.StatusLog) error {
	query := `INSERT INTO reservation_status_logs (
				id, reservation_id, from_status, to_status, changed_by, changed_by_id,
				reason, metadata, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := t.tx.ExecContext(ctx, query,
		l.ID, l.ReservationID, l.FromStatus, l.ToStatus, l.ActorKind, nullString(l.ActorID),
		nullString(l.Reason), []byte(l.Metadata), l.CreatedAt,
	)
	if err != nil {
		return classify(ctx, err)
	}
	return nil
}

// tsBound formats t for a timestamp without time zone column; windows are UTC.
func tsBound(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
