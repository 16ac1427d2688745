//go:build unit

package builder

import (
	"time"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// BaseTime is a fixed instant the unit tests anchor their windows and
// mock clocks to.
var BaseTime = time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

type ReservationParamsBuilder struct {
	CustomerID       uuid.UUID
	Start            time.Time
	End              time.Time
	HallIDs          []uuid.UUID
	OptionalServices []commands.OptionalServiceChoice
}

func NewReservationParamsBuilder() *ReservationParamsBuilder {
	return &ReservationParamsBuilder{
		CustomerID: uuid.New(),
		Start:      BaseTime.Add(2 * time.Hour),
		End:        BaseTime.Add(4 * time.Hour),
		HallIDs:    []uuid.UUID{uuid.New()},
	}
}

func (b *ReservationParamsBuilder) Build() commands.CreateReservationParams {
	window, err := booking.NewTimeWindow(b.Start, b.End)
	if err != nil {
		panic("builder produced an invalid window: " + err.Error())
	}
	return commands.CreateReservationParams{
		CustomerID:       b.CustomerID,
		Window:           window,
		HallIDs:          b.HallIDs,
		OptionalServices: b.OptionalServices,
	}
}

// Fluent builder methods
func (b *ReservationParamsBuilder) WithWindow(start, end time.Time) *ReservationParamsBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *ReservationParamsBuilder) WithHallIDs(ids ...uuid.UUID) *ReservationParamsBuilder {
	b.HallIDs = ids
	return b
}

func (b *ReservationParamsBuilder) WithOptionalService(serviceID uuid.UUID, chosenPriceCents int64) *ReservationParamsBuilder {
	b.OptionalServices = append(b.OptionalServices, commands.OptionalServiceChoice{
		ServiceID:        serviceID,
		ChosenPriceCents: chosenPriceCents,
	})
	return b
}
