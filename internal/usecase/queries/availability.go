package queries

import (
	"context"
	"time"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/pkg/clock"
	"hall-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidQueryWindow = errs.New("invalid availability window")

type FreeHallView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	SportType       string    `json:"sport_type"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	Capacity        int       `json:"capacity"`
}

type AvailabilityQueries interface {
	FreeHalls(ctx context.Context, start, end time.Time) ([]*FreeHallView, error)
	FreeHallsNow(ctx context.Context) ([]*FreeHallView, error)
}

type FreeHallViewRepo interface {
	FindFreeDuring(ctx context.Context, window booking.TimeWindow) ([]*FreeHallView, error)
}

type availabilityQueriesImpl struct {
	repo  FreeHallViewRepo
	clock clock.Clock
}

func NewAvailabilityQueries(repo FreeHallViewRepo, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo, clock: clk}
}

func (q *availabilityQueriesImpl) FreeHalls(ctx context.Context, start, end time.Time) ([]*FreeHallView, error) {
	window, err := booking.NewTimeWindow(start, end)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQueryWindow)
	}
	return q.repo.FindFreeDuring(ctx, window)
}

// FreeHallsNow mirrors the free-halls view: halls with no active
// reservation covering the current instant.
func (q *availabilityQueriesImpl) FreeHallsNow(ctx context.Context) ([]*FreeHallView, error) {
	now := q.clock.Now()
	window, err := booking.NewTimeWindow(now, now.Add(time.Second))
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQueryWindow)
	}
	return q.repo.FindFreeDuring(ctx, window)
}
