package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("create: %w", ErrSlotConflict), CodeSlotConflict},
		{fmt.Errorf("%w: 3 attempts", ErrDeadlockRetryExceeded), CodeDeadlockRetryExceeded},
		{ErrConflictNotFound, CodeNotFound},
		{ErrUserNotFound, CodeNotFound},
		{fmt.Errorf("%w: bad input", ErrValidation), CodeValidation},
		{errors.Join(errors.New("insert failed"), ErrLockTimeout), CodeLockTimeout},
		{context.Canceled, CodeInternal},
		{errors.New("boom"), CodeInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Code(tt.err), "%v", tt.err)
	}
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(fmt.Errorf("wrap: %w", ErrAdvisoryLockTimeout)))
	assert.True(t, IsTransient(ErrLockTimeout))
	assert.True(t, IsTransient(ErrDeadlockRetryExceeded))

	assert.False(t, IsTransient(ErrSlotConflict))
	assert.False(t, IsTransient(ErrDeadlockDetected))
	assert.False(t, IsTransient(nil))
}
