package request

import (
	"time"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type OptionalServiceChoice struct {
	ServiceID        uuid.UUID `json:"service_id" binding:"required"`
	ChosenPriceCents int64     `json:"chosen_price_cents" binding:"required,gt=0"`
}

type CreateReservation struct {
	CustomerID       uuid.UUID               `json:"customer_id" binding:"required"`
	Start            time.Time               `json:"start" binding:"required"`
	End              time.Time               `json:"end" binding:"required"`
	HallIDs          []uuid.UUID             `json:"hall_ids" binding:"required,min=1"`
	OptionalServices []OptionalServiceChoice `json:"optional_services"`
}

func (r CreateReservation) ToParams() (commands.CreateReservationParams, error) {
	window, err := booking.NewTimeWindow(r.Start, r.End)
	if err != nil {
		return commands.CreateReservationParams{}, err
	}

	choices := make([]commands.OptionalServiceChoice, 0, len(r.OptionalServices))
	for _, c := range r.OptionalServices {
		choices = append(choices, commands.OptionalServiceChoice{
			ServiceID:        c.ServiceID,
			ChosenPriceCents: c.ChosenPriceCents,
		})
	}

	return commands.CreateReservationParams{
		CustomerID:       r.CustomerID,
		Window:           window,
		HallIDs:          r.HallIDs,
		OptionalServices: choices,
	}, nil
}

type SettleReservation struct {
	AccountID   uuid.UUID `json:"account_id" binding:"required"`
	AmountCents int64     `json:"amount_cents" binding:"required,gt=0"`
}
