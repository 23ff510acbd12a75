package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot_StartAtAndString(t *testing.T) {
	s := Slot{ShopID: "shop-1", Date: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), Time: "09:30"}

	start, err := s.StartAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 6, 15, 9, 30, 0, 0, time.UTC), start)
	assert.Equal(t, "shop-1|2026-06-15|09:30", s.String())

	s.Time = "09:30:00"
	start, err = s.StartAt()
	require.NoError(t, err)
	assert.Equal(t, 30, start.Minute())

	s.Time = "9h30"
	_, err = s.StartAt()
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSlot_EquivalentSpellings(t *testing.T) {
	day := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	short := Slot{ShopID: "shop-1", Date: day, Time: "10:00"}
	long := Slot{ShopID: "shop-1", Date: day, Time: "10:00:00"}

	assert.Equal(t, short.String(), long.String())

	norm, err := NormalizeSlotTime("10:00:00")
	require.NoError(t, err)
	assert.Equal(t, "10:00", norm)
}

func TestSlot_KeepsLocalCalendarDay(t *testing.T) {
	kst := time.FixedZone("KST", 9*60*60)
	s := Slot{ShopID: "shop-1", Date: time.Date(2026, 6, 15, 0, 0, 0, 0, kst), Time: "10:00"}

	start, err := s.StartAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC), start)
	assert.Equal(t, "shop-1|2026-06-15|10:00", s.String())
}

func TestTimeWindow_Overlaps(t *testing.T) {
	base := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	booked := NewWindow(base, time.Hour, BufferTime) // [10:00, 11:15)

	tests := []struct {
		name  string
		start time.Time
		dur   time.Duration
		want  bool
	}{
		{"same start", base, time.Hour, true},
		{"starts inside buffer", base.Add(70 * time.Minute), 30 * time.Minute, true},
		{"starts at buffer end", base.Add(75 * time.Minute), 30 * time.Minute, false},
		{"ends at booked start", base.Add(-75 * time.Minute), time.Hour, false},
		{"ends inside", base.Add(-30 * time.Minute), time.Hour, true},
		{"contains", base.Add(-time.Hour), 3 * time.Hour, true},
		{"previous day", base.Add(-24 * time.Hour), time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWindow(tt.start, tt.dur, BufferTime)
			assert.Equal(t, tt.want, booked.Overlaps(w))
			assert.Equal(t, tt.want, w.Overlaps(booked))
		})
	}
}

func TestTimeWindow_CrossesMidnight(t *testing.T) {
	late := NewWindow(time.Date(2026, 6, 15, 23, 30, 0, 0, time.UTC), time.Hour, BufferTime)
	early := NewWindow(time.Date(2026, 6, 16, 0, 15, 0, 0, time.UTC), 30*time.Minute, BufferTime)

	assert.True(t, late.Overlaps(early))
}
