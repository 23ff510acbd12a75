package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stpnv0/SalonBooker/internal/domain"
)

// Postgres SQLSTATE codes the booking path reacts to.
const (
	codeDeadlock            = "40P01"
	codeLockNotAvailable    = "55P03"
	codeQueryCanceled       = "57014"
	codeExclusionViolation  = "23P01"
	codeInFailedTransaction = "25P02"
)

// classify wraps driver errors into domain errors, keeping the original in the chain.
func classify(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeDeadlock:
		return fmt.Errorf("%w: %w", domain.ErrDeadlockDetected, err)
	case codeQueryCanceled:
		// pq cancels the running query when ctx is done
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %w", ctxErr, err)
		}
		return fmt.Errorf("%w: %w", domain.ErrLockTimeout, err)
	case codeLockNotAvailable:
		return fmt.Errorf("%w: %w", domain.ErrLockTimeout, err)
	case codeExclusionViolation:
		return fmt.Errorf("%w: %w", domain.ErrSlotConflict, err)
	}
	return err
}

func isCode(err error, code string) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && string(pgErr.Code) == code
}

// validID filters out ids Postgres would reject with invalid_text_representation.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
