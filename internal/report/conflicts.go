// Package report renders conflict audit records as xlsx workbooks.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/stpnv0/SalonBooker/internal/domain"
	"github.com/xuri/excelize/v2"
)

const conflictSheet = "Conflicts"

var conflictColumns = []string{
	"ID", "Shop", "Type", "Severity", "Description", "Reservations",
	"Detected at", "Resolved at", "Resolved by", "Method",
}

func WriteConflicts(w io.Writer, conflicts []*domain.Conflict) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", conflictSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeRow(f, 1, toCells(conflictColumns)); err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		end, _ := excelize.CoordinatesToCellName(len(conflictColumns), 1)
		_ = f.SetCellStyle(conflictSheet, "A1", end, style)
	}

	for i, c := range conflicts {
		if err = writeRow(f, i+2, conflictRow(c)); err != nil {
			return err
		}
	}

	if _, err = f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func conflictRow(c *domain.Conflict) []any {
	return []any{
		c.ID,
		c.ShopID,
		string(c.Type),
		string(c.Severity),
		c.Description,
		strings.Join(c.AffectedReservationIDs, ", "),
		c.DetectedAt.UTC().Format(time.RFC3339),
		formatTime(c.ResolvedAt),
		deref(c.ResolvedBy),
		deref(c.ResolutionMethod),
	}
}

func writeRow(f *excelize.File, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err = f.SetCellValue(conflictSheet, cell, v); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}

func toCells(s []string) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
