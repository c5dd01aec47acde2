package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{"hh:mm", "14:30", "14:30", false},
		{"with seconds", "09:05:00", "09:05", false},
		{"single digit hour", "9:05", "09:05", false},
		{"midnight", "00:00", "00:00", false},
		{"out of range", "25:00", "", true},
		{"garbage", "abc", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_On(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	date := time.Date(2025, 3, 10, 23, 59, 59, 999, loc)

	got := TimeString("14:30").On(date)

	assert.Equal(t, time.Date(2025, 3, 10, 14, 30, 0, 0, loc), got)
}
