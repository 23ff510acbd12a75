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

// UserRepository reads customers for post-commit notifications only;
// it never takes part in a booking transaction.
type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 2,
			Delay:    200 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const userColumns = `id, username, telegram_chat_id`

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if !validID(id) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	}

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	}
	return u, err
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u      domain.User
		chatID sql.NullInt64
	)
	if err := row.Scan(&u.ID, &u.Username, &chatID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	if chatID.Valid {
		u.TelegramChatID = &chatID.Int64
	}
	return &u, nil
}
