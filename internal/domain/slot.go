package domain

import (
	"fmt"
	"time"
)

// BufferTime pads every appointment for turnover between customers.
const BufferTime = 15 * time.Minute

type Slot struct {
	ShopID string
	Date   time.Time
	Time   string
}

// StartAt combines the slot date and time into a UTC wall-clock timestamp.
// The calendar day is taken in the location Date carries, not converted to UTC.
func (s Slot) StartAt() (time.Time, error) {
	t, err := ParseSlotTime(s.Time)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := s.Date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}

// String is the advisory lock key source: shop|YYYY-MM-DD|HH:MM.
// Equivalent time spellings ("10:00", "10:00:00") give the same string.
func (s Slot) String() string {
	start, err := s.StartAt()
	if err != nil {
		y, m, d := s.Date.Date()
		return fmt.Sprintf("%s|%04d-%02d-%02d|%s", s.ShopID, y, m, d, s.Time)
	}
	return s.ShopID + "|" + start.Format(DateLayout+"|"+TimeLayout)
}

// NormalizeSlotTime returns v in the canonical "HH:MM" form.
func NormalizeSlotTime(v string) (string, error) {
	t, err := ParseSlotTime(v)
	if err != nil {
		return "", err
	}
	return t.Format(TimeLayout), nil
}

// ParseSlotTime accepts "HH:MM" and "HH:MM:SS" (the form Postgres returns).
func ParseSlotTime(v string) (time.Time, error) {
	if t, err := time.Parse(TimeLayout, v); err == nil {
		return t, nil
	}
	t, err := time.Parse("15:04:05", v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid reservation time %q", ErrValidation, v)
	}
	return t, nil
}

// TimeWindow is the half-open interval [Start, End).
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// NewWindow builds the blocked window of an appointment: duration plus buffer.
func NewWindow(start time.Time, duration, buffer time.Duration) TimeWindow {
	return TimeWindow{Start: start, End: start.Add(duration + buffer)}
}

func (w TimeWindow) Overlaps(o TimeWindow) bool {
	return w.Start.Before(o.End) && o.Start.Before(w.End)
}
