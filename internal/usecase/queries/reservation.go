package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID            uuid.UUID `json:"id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Status        string    `json:"status"`
	TotalCents    int64     `json:"total_cents"`
	HallNames     []string  `json:"hall_names"`
	CreatedAt     time.Time `json:"created_at"`
}

// UnpaidReservationView feeds the settlement form: reservations with no
// payment row yet, joined with the paying account.
type UnpaidReservationView struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	AccountID     uuid.UUID `json:"account_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	TotalCents    int64     `json:"total_cents"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListDetails(ctx context.Context) ([]*ReservationView, error)
	ListUnpaid(ctx context.Context) ([]*UnpaidReservationView, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindAllDetailed(ctx context.Context) ([]*ReservationView, error)
	FindUnpaid(ctx context.Context) ([]*UnpaidReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *reservationQueriesImpl) ListDetails(ctx context.Context) ([]*ReservationView, error) {
	return q.repo.FindAllDetailed(ctx)
}

func (q *reservationQueriesImpl) ListUnpaid(ctx context.Context) ([]*UnpaidReservationView, error) {
	return q.repo.FindUnpaid(ctx)
}
