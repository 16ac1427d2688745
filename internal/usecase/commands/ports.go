package commands

import (
	"context"

	"hall-booking/internal/domain/account"
	"hall-booking/internal/domain/booking"
	"hall-booking/internal/domain/catalog"
	"hall-booking/internal/events"
	"hall-booking/internal/infra/db"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// TxManager scopes a sequence of repository calls to one transaction
// (Within) or runs them auto-committed against the pool (WithDB).
type TxManager interface {
	Within(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type ReservationRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, res *booking.Reservation) (uuid.UUID, error)
	AddServiceLine(ctx context.Context, dbtx db.DBTX, line booking.ServiceLine) error
	AddHallAssignment(ctx context.Context, dbtx db.DBTX, assignment booking.HallAssignment) error
	SetStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error
}

// AvailabilityReader answers which halls have no overlapping assignment
// from a non-cancelled reservation for the window.
type AvailabilityReader interface {
	FreeHalls(ctx context.Context, dbtx db.DBTX, window booking.TimeWindow) (map[uuid.UUID]struct{}, error)
}

type CatalogRepository interface {
	CreateHall(ctx context.Context, dbtx db.DBTX, hall *catalog.Hall) (uuid.UUID, error)
	CreateService(ctx context.Context, dbtx db.DBTX, svc *catalog.Service) (uuid.UUID, error)
	HallsByIDs(ctx context.Context, dbtx db.DBTX, ids []uuid.UUID) ([]*catalog.Hall, error)
	ServicesByIDs(ctx context.Context, dbtx db.DBTX, ids []uuid.UUID) ([]*catalog.Service, error)
	NotOptionalServices(ctx context.Context, dbtx db.DBTX) ([]*catalog.Service, error)
}

// AccountRepository is the ledger. Balances move only through these
// named operations; there is no free-form attribute update.
type AccountRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, acc *account.CashAccount) (uuid.UUID, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*account.CashAccount, error)
	Credit(ctx context.Context, dbtx db.DBTX, id uuid.UUID, amount booking.Money) error
	Debit(ctx context.Context, dbtx db.DBTX, id uuid.UUID, amount booking.Money) error
	CreditSystem(ctx context.Context, dbtx db.DBTX, amount booking.Money) error
}

type CustomerRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, cust *account.Customer) (uuid.UUID, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*account.Customer, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID, amount booking.Money) (uuid.UUID, error)
	Delete(ctx context.Context, dbtx db.DBTX, paymentID uuid.UUID) error
	ExistsForReservation(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID) (bool, error)
}

// EventPublisher pushes reservation lifecycle events to the broker.
// Publishing is best-effort; implementations log and swallow failures.
type EventPublisher interface {
	ReservationCreated(ctx context.Context, event events.ReservationCreated)
	ReservationConfirmed(ctx context.Context, event events.ReservationConfirmed)
}
