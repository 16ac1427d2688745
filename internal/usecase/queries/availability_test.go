//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/pkg/clock"
	"hall-booking/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeFreeHallRepo struct {
	lastWindow booking.TimeWindow
	views      []*queries.FreeHallView
}

func (f *fakeFreeHallRepo) FindFreeDuring(_ context.Context, window booking.TimeWindow) ([]*queries.FreeHallView, error) {
	f.lastWindow = window
	return f.views, nil
}

func TestAvailabilityQueries_FreeHalls(t *testing.T) {
	now := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	want := []*queries.FreeHallView{
		{ID: uuid.New(), Name: "north hall", SportType: "basketball", HourlyRateCents: 1500, Capacity: 30},
		{ID: uuid.New(), Name: "south hall", SportType: "tennis", HourlyRateCents: 1200, Capacity: 8},
	}
	repo := &fakeFreeHallRepo{views: want}
	q := queries.NewAvailabilityQueries(repo, clock.NewMockClock(now))

	t.Run("passes the requested window through", func(t *testing.T) {
		start := now.Add(time.Hour)
		end := now.Add(3 * time.Hour)

		got, err := q.FreeHalls(context.Background(), start, end)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(want, got))
		require.Equal(t, start, repo.lastWindow.Start())
		require.Equal(t, end, repo.lastWindow.End())
	})

	t.Run("rejects an inverted window", func(t *testing.T) {
		_, err := q.FreeHalls(context.Background(), now.Add(time.Hour), now)
		require.ErrorIs(t, err, queries.ErrInvalidQueryWindow)
	})

	t.Run("free now uses an instant-wide window at the current time", func(t *testing.T) {
		got, err := q.FreeHallsNow(context.Background())
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(want, got))
		require.Equal(t, now, repo.lastWindow.Start())
		require.True(t, repo.lastWindow.End().After(now))
	})
}
