// Package events defines the reservation lifecycle messages published
// to the broker for downstream consumers (mailers, reporting).
package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	QueueReservationCreated   = "reservation.created"
	QueueReservationConfirmed = "reservation.confirmed"
)

type ReservationCreated struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	HallIDs       []uuid.UUID `json:"hall_ids"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	TotalCents    int64     `json:"total_cents"`
}

type ReservationConfirmed struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	PaymentID     uuid.UUID `json:"payment_id"`
	AccountID     uuid.UUID `json:"account_id"`
	AmountCents   int64     `json:"amount_cents"`
	PaidAt        time.Time `json:"paid_at"`
}
