//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/domain/catalog"
	"hall-booking/internal/events"
	"hall-booking/internal/infra/db"
	"hall-booking/internal/pkg/clock"
	"hall-booking/internal/pkg/keylock"
	"hall-booking/internal/usecase/commands"
	"hall-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// memoryBookingStore backs the concurrency test. It deliberately has no
// locking of its own: the command's per-hall locks must be what keeps
// the check-then-write sequence race free.
type memoryBookingStore struct {
	halls       map[uuid.UUID]*catalog.Hall
	windows     map[uuid.UUID]booking.TimeWindow
	assignments map[uuid.UUID][]booking.TimeWindow
}

func newMemoryBookingStore(halls ...*catalog.Hall) *memoryBookingStore {
	s := &memoryBookingStore{
		halls:       make(map[uuid.UUID]*catalog.Hall),
		windows:     make(map[uuid.UUID]booking.TimeWindow),
		assignments: make(map[uuid.UUID][]booking.TimeWindow),
	}
	for _, h := range halls {
		s.halls[h.ID()] = h
	}
	return s
}

func (s *memoryBookingStore) FreeHalls(_ context.Context, _ db.DBTX, window booking.TimeWindow) (map[uuid.UUID]struct{}, error) {
	free := make(map[uuid.UUID]struct{})
	for id := range s.halls {
		taken := false
		for _, w := range s.assignments[id] {
			if w.Overlaps(window) {
				taken = true
				break
			}
		}
		if !taken {
			free[id] = struct{}{}
		}
	}
	return free, nil
}

func (s *memoryBookingStore) Create(_ context.Context, _ db.DBTX, res *booking.Reservation) (uuid.UUID, error) {
	id := uuid.New()
	s.windows[id] = res.Window()
	return id, nil
}

func (s *memoryBookingStore) AddServiceLine(context.Context, db.DBTX, booking.ServiceLine) error {
	return nil
}

func (s *memoryBookingStore) AddHallAssignment(_ context.Context, _ db.DBTX, a booking.HallAssignment) error {
	s.assignments[a.HallID] = append(s.assignments[a.HallID], s.windows[a.ReservationID])
	return nil
}

func (s *memoryBookingStore) SetStatus(context.Context, db.DBTX, uuid.UUID, booking.Status) error {
	return nil
}

func (s *memoryBookingStore) CreateHall(context.Context, db.DBTX, *catalog.Hall) (uuid.UUID, error) {
	return uuid.Nil, errors.New("not supported")
}

func (s *memoryBookingStore) CreateService(context.Context, db.DBTX, *catalog.Service) (uuid.UUID, error) {
	return uuid.Nil, errors.New("not supported")
}

func (s *memoryBookingStore) HallsByIDs(_ context.Context, _ db.DBTX, ids []uuid.UUID) ([]*catalog.Hall, error) {
	out := make([]*catalog.Hall, 0, len(ids))
	for _, id := range ids {
		if h, ok := s.halls[id]; ok {
			out = append(out, h)
		}
	}
	return out, nil
}

func (s *memoryBookingStore) ServicesByIDs(context.Context, db.DBTX, []uuid.UUID) ([]*catalog.Service, error) {
	return nil, nil
}

func (s *memoryBookingStore) NotOptionalServices(context.Context, db.DBTX) ([]*catalog.Service, error) {
	return nil, nil
}

func newConcurrencyBookings(store *memoryBookingStore) commands.BookingCommands {
	return commands.NewBookingCommands(
		passthroughTx{},
		store,
		store,
		commands.NewConflictDetector(store),
		keylock.New(),
		events.NopPublisher{},
		clock.NewMockClock(builder.BaseTime),
		commands.BookingPolicy{RejectPastStart: true},
	)
}

func TestCreateReservation_ConcurrentOverlap(t *testing.T) {
	hall := catalog.ReconstructHall(uuid.New(), "arena", "handball", booking.NewMoneyFromCents(2000), 40)
	store := newMemoryBookingStore(hall)
	bookings := newConcurrencyBookings(store)

	base := builder.BaseTime.Add(24 * time.Hour)
	windows := [][2]time.Time{
		{base, base.Add(2 * time.Hour)},
		{base.Add(time.Hour), base.Add(3 * time.Hour)},
	}

	var wg sync.WaitGroup
	results := make([]error, len(windows))
	for i, w := range windows {
		wg.Add(1)
		go func(i int, start, end time.Time) {
			defer wg.Done()
			params := builder.NewReservationParamsBuilder().
				WithHallIDs(hall.ID()).
				WithWindow(start, end).
				Build()
			_, results[i] = bookings.CreateReservation(context.Background(), params)
		}(i, w[0], w[1])
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, commands.ErrHallUnavailable):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	require.Equal(t, 1, succeeded, "exactly one overlapping attempt may win the hall")
	require.Equal(t, 1, conflicted, "the loser must see a conflict, not a double booking")
	require.Len(t, store.assignments[hall.ID()], 1)
}

func TestCreateReservation_ConcurrentDisjointWindows(t *testing.T) {
	hall := catalog.ReconstructHall(uuid.New(), "arena", "handball", booking.NewMoneyFromCents(2000), 40)
	store := newMemoryBookingStore(hall)
	bookings := newConcurrencyBookings(store)

	base := builder.BaseTime.Add(24 * time.Hour)
	windows := [][2]time.Time{
		{base, base.Add(time.Hour)},
		{base.Add(time.Hour), base.Add(2 * time.Hour)}, // touching is not overlapping
		{base.Add(3 * time.Hour), base.Add(4 * time.Hour)},
	}

	var wg sync.WaitGroup
	results := make([]error, len(windows))
	for i, w := range windows {
		wg.Add(1)
		go func(i int, start, end time.Time) {
			defer wg.Done()
			params := builder.NewReservationParamsBuilder().
				WithHallIDs(hall.ID()).
				WithWindow(start, end).
				Build()
			_, results[i] = bookings.CreateReservation(context.Background(), params)
		}(i, w[0], w[1])
	}
	wg.Wait()

	for i, err := range results {
		require.NoErrorf(t, err, "window %d should not conflict", i)
	}
	require.Len(t, store.assignments[hall.ID()], len(windows))
}
