package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayOfWeek(t *testing.T) {
	tests := []struct {
		input   string
		want    DayOfWeek
		wantErr bool
	}{
		{"monday", Monday, false},
		{"Monday", Monday, false},
		{"SUNDAY", Sunday, false},
		{"  friday  ", Friday, false},
		{"", "", true},
		{"mon", "", true},
		{"funday", "", true},
		{"понедельник", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDayOfWeek(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDayOfWeek)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDayOfWeekFromDate(t *testing.T) {
	// 2026-01-05 - понедельник
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	for i, want := range AllDaysOfWeek {
		date := monday.AddDate(0, 0, i)
		assert.Equal(t, want, DayOfWeekFromDate(date), "date %s", date.Format(DateFormat))
	}
}

func TestDayOfWeek_ISONumber(t *testing.T) {
	assert.Equal(t, 1, Monday.ISONumber())
	assert.Equal(t, 7, Sunday.ISONumber())
	assert.Equal(t, 0, DayOfWeek("bogus").ISONumber())
}
