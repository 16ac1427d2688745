//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hall-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWindow(t *testing.T, start, end string) booking.TimeWindow {
	t.Helper()
	s, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, end)
	require.NoError(t, err)
	w, err := booking.NewTimeWindow(s, e)
	require.NoError(t, err)
	return w
}

func TestNewTimeWindow(t *testing.T) {
	now := time.Date(2030, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("start must precede end", func(t *testing.T) {
		_, err := booking.NewTimeWindow(now, now)
		assert.ErrorIs(t, err, booking.ErrInvalidWindow)

		_, err = booking.NewTimeWindow(now.Add(time.Hour), now)
		assert.ErrorIs(t, err, booking.ErrInvalidWindow)
	})

	t.Run("past start policy", func(t *testing.T) {
		w, err := booking.NewTimeWindow(now.Add(-time.Hour), now.Add(time.Hour))
		require.NoError(t, err)

		assert.ErrorIs(t, w.ValidateStartAt(now, true), booking.ErrPastStart)
		assert.NoError(t, w.ValidateStartAt(now, false))
	})
}

func TestTimeWindow_Overlaps(t *testing.T) {
	base := mustWindow(t, "2030-05-01T10:00:00Z", "2030-05-01T12:00:00Z")

	cases := []struct {
		name  string
		other booking.TimeWindow
		want  bool
	}{
		{"identical", mustWindow(t, "2030-05-01T10:00:00Z", "2030-05-01T12:00:00Z"), true},
		{"contained", mustWindow(t, "2030-05-01T10:30:00Z", "2030-05-01T11:30:00Z"), true},
		{"straddles start", mustWindow(t, "2030-05-01T09:00:00Z", "2030-05-01T10:30:00Z"), true},
		{"straddles end", mustWindow(t, "2030-05-01T11:30:00Z", "2030-05-01T13:00:00Z"), true},
		{"touching before", mustWindow(t, "2030-05-01T08:00:00Z", "2030-05-01T10:00:00Z"), false},
		{"touching after", mustWindow(t, "2030-05-01T12:00:00Z", "2030-05-01T14:00:00Z"), false},
		{"disjoint", mustWindow(t, "2030-05-01T14:00:00Z", "2030-05-01T16:00:00Z"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Overlaps(tc.other))
			assert.Equal(t, tc.want, tc.other.Overlaps(base))
		})
	}
}

func TestTimeWindow_Hours(t *testing.T) {
	w := mustWindow(t, "2030-05-01T10:00:00Z", "2030-05-01T11:30:00Z")
	assert.InDelta(t, 1.5, w.Hours(), 1e-9)
	assert.Equal(t, 1, w.BillableHours(), "service lines bill whole hours")
}
