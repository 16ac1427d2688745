package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPriceNotPositive = errors.New("total price must be positive")
	ErrNoHalls          = errors.New("reservation needs at least one hall")
	ErrInvalidStatus    = errors.New("invalid reservation status")
)

// Reservation is the aggregate root of one booking. It owns zero or more
// service lines and one or more hall assignments. The price is always the
// pricing engine's output for the final line and hall set; it is never
// edited independently.
type Reservation struct {
	id         uuid.UUID
	customerID uuid.UUID
	window     TimeWindow
	totalPrice Money
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReservation(customerID uuid.UUID, window TimeWindow, totalPrice Money) (*Reservation, error) {
	if !totalPrice.IsPositive() {
		return nil, ErrPriceNotPositive
	}

	return &Reservation{
		id:         uuid.New(),
		customerID: customerID,
		window:     window,
		totalPrice: totalPrice,
		status:     StatusCreated,
	}, nil
}

func ReconstructReservation(
	id, customerID uuid.UUID,
	window TimeWindow,
	totalPrice Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		customerID: customerID,
		window:     window,
		totalPrice: totalPrice,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) CustomerID() uuid.UUID { return r.customerID }
func (r *Reservation) Window() TimeWindow    { return r.window }
func (r *Reservation) TotalPrice() Money     { return r.totalPrice }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

// ServiceLine bills integer hours of one service for a reservation,
// whether the service was optional or not.
type ServiceLine struct {
	ReservationID uuid.UUID
	ServiceID     uuid.UUID
	Hours         int
}

// HallAssignment claims exclusive occupancy of a hall for the
// reservation's window while the reservation is not cancelled.
type HallAssignment struct {
	ReservationID uuid.UUID
	HallID        uuid.UUID
}
