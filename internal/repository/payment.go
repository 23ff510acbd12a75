package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/SalonBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// PaymentRepository reads payment state owned by the payment service.
type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// PaymentStatus returns the latest payment status; no payment yet means pending.
func (r *PaymentRepository) PaymentStatus(ctx context.Context, reservationID string) (domain.PaymentStatus, error) {
	query := `SELECT payment_status
			  FROM reservation_payments
			  WHERE reservation_id = $1
			  ORDER BY created_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, reservationID)
	if err != nil {
		return "", fmt.Errorf("get payment status: %w", err)
	}

	var status domain.PaymentStatus
	if err = row.Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.PaymentPending, nil
		}
		return "", fmt.Errorf("scan payment status: %w", err)
	}
	return status, nil
}
