package bookings

import (
	"testing"

	"github.com/Spok95/shopdesk/internal/domain/activities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	a := activities.Activity{
		Name:         "Töpfern",
		HalfHourRate: decimal.RequireFromString("5.00"),
		HourRate:     decimal.RequireFromString("10.00"),
	}
	cases := []struct {
		duration, participants int
		want                   string
	}{
		{30, 1, "5.00"},
		{60, 1, "10.00"},
		{120, 2, "40.00"},
		{45, 1, "7.50"},
		{90, 3, "45.00"},
		{30, 0, "0"},
	}
	for _, tc := range cases {
		got := Quote(a, tc.duration, tc.participants)
		require.True(t, decimal.RequireFromString(tc.want).Equal(got),
			"%d min x %d: got %s", tc.duration, tc.participants, got)
	}
}

// Получасовая ставка применяется только к ровно 30 минутам.
func TestQuote_KeepsTierDiscontinuity(t *testing.T) {
	a := activities.Activity{
		HalfHourRate: decimal.NewFromInt(4),
		HourRate:     decimal.NewFromInt(12),
	}
	require.True(t, decimal.NewFromInt(4).Equal(Quote(a, 30, 1)))
	require.True(t, decimal.NewFromInt(6).Equal(Quote(a, 31, 1).Round(0)))
}
