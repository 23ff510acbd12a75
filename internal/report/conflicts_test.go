package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stpnv0/SalonBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteConflicts(t *testing.T) {
	resolvedAt := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	resolver := "admin-1"
	method := "refund"

	conflicts := []*domain.Conflict{
		{
			ID:                     "c-1",
			ShopID:                 "shop-1",
			Type:                   domain.ConflictDoubleBooking,
			Severity:               domain.SeverityHigh,
			Description:            "two reservations overlap",
			AffectedReservationIDs: []string{"r-1", "r-2"},
			DetectedAt:             time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
			ResolvedAt:             &resolvedAt,
			ResolvedBy:             &resolver,
			ResolutionMethod:       &method,
		},
		{
			ID:         "c-2",
			ShopID:     "shop-1",
			Type:       domain.ConflictPaymentConflict,
			Severity:   domain.SeverityLow,
			DetectedAt: time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteConflicts(&buf, conflicts))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(conflictSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "c-1", rows[1][0])
	assert.Equal(t, "r-1, r-2", rows[1][5])
	assert.Equal(t, "2026-03-02T10:00:00Z", rows[1][7])
	assert.Equal(t, "refund", rows[1][9])
	assert.Equal(t, "payment_conflict", rows[2][2])
}

func TestWriteConflicts_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteConflicts(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(conflictSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
