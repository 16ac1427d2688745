package commands

import (
	"context"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/domain/catalog"
	"hall-booking/internal/events"
	"hall-booking/internal/infra/db"
	"hall-booking/internal/pkg/clock"
	"hall-booking/internal/pkg/errs"
	"hall-booking/internal/pkg/keylock"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow           = errs.New("invalid reservation window")
	ErrPriceNotPositive        = errs.New("reservation price must be positive")
	ErrHallNotFound            = errs.New("hall not found")
	ErrServiceNotFound         = errs.New("service not found")
	ErrNoHallsRequested        = errs.New("at least one hall must be requested")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// OptionalServiceChoice is one optional service picked by the customer
// together with the flat price quoted to them for it.
type OptionalServiceChoice struct {
	ServiceID        uuid.UUID
	ChosenPriceCents int64
}

type CreateReservationParams struct {
	CustomerID       uuid.UUID
	Window           booking.TimeWindow
	HallIDs          []uuid.UUID
	OptionalServices []OptionalServiceChoice
}

type BookingPolicy struct {
	RejectPastStart bool
	Pricing         booking.PricingPolicy
}

type BookingCommands interface {
	CreateReservation(ctx context.Context, params CreateReservationParams) (uuid.UUID, error)
	CancelReservation(ctx context.Context, reservationID uuid.UUID) error
}

// bookingCommandsImpl orchestrates one reservation-creation attempt:
// validate the window, detect conflicts, price, then write the
// reservation with its lines and assignments in a single transaction.
// The per-hall locks stay held from the availability read until the
// assignment writes commit, so two overlapping attempts on the same hall
// can never both succeed.
type bookingCommandsImpl struct {
	tx           TxManager
	reservations ReservationRepository
	catalogRepo  CatalogRepository
	detector     *ConflictDetector
	hallLocks    *keylock.KeyLock
	publisher    EventPublisher
	clock        clock.Clock
	policy       BookingPolicy
}

func NewBookingCommands(
	tx TxManager,
	reservations ReservationRepository,
	catalogRepo CatalogRepository,
	detector *ConflictDetector,
	hallLocks *keylock.KeyLock,
	publisher EventPublisher,
	clk clock.Clock,
	policy BookingPolicy,
) BookingCommands {
	return &bookingCommandsImpl{
		tx:           tx,
		reservations: reservations,
		catalogRepo:  catalogRepo,
		detector:     detector,
		hallLocks:    hallLocks,
		publisher:    publisher,
		clock:        clk,
		policy:       policy,
	}
}

func (b *bookingCommandsImpl) CreateReservation(ctx context.Context, params CreateReservationParams) (uuid.UUID, error) {
	if len(params.HallIDs) == 0 {
		return uuid.Nil, ErrNoHallsRequested
	}
	if err := params.Window.ValidateStartAt(b.clock.Now(), b.policy.RejectPastStart); err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidWindow)
	}

	halls, notOptional, chosen, err := b.loadPricingInputs(ctx, params)
	if err != nil {
		return uuid.Nil, err
	}

	totalPrice := booking.Quote(b.policy.Pricing, hallItems(halls), params.Window, serviceItems(notOptional), chosen)
	if !totalPrice.IsPositive() {
		return uuid.Nil, ErrPriceNotPositive
	}

	reservation, err := booking.NewReservation(params.CustomerID, params.Window, totalPrice)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrPriceNotPositive)
	}

	// Billed services: all non-optional plus the distinct chosen ones.
	serviceIDs := billedServiceIDs(notOptional, params.OptionalServices)

	unlock := b.hallLocks.Lock(params.HallIDs...)
	defer unlock()

	var reservationID uuid.UUID
	err = b.tx.Within(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if checkErr := b.detector.Check(ctx, dbtx, params.HallIDs, params.Window); checkErr != nil {
			return checkErr
		}

		id, createErr := b.reservations.Create(ctx, dbtx, reservation)
		if createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		reservationID = id

		hours := params.Window.BillableHours()
		for _, serviceID := range serviceIDs {
			line := booking.ServiceLine{ReservationID: id, ServiceID: serviceID, Hours: hours}
			if lineErr := b.reservations.AddServiceLine(ctx, dbtx, line); lineErr != nil {
				return errs.Mark(lineErr, ErrDatabaseOperationFailed)
			}
		}

		for _, hallID := range params.HallIDs {
			assignment := booking.HallAssignment{ReservationID: id, HallID: hallID}
			if assignErr := b.reservations.AddHallAssignment(ctx, dbtx, assignment); assignErr != nil {
				return errs.Mark(assignErr, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	b.publisher.ReservationCreated(ctx, events.ReservationCreated{
		ReservationID: reservationID,
		CustomerID:    params.CustomerID,
		HallIDs:       params.HallIDs,
		Start:         params.Window.Start(),
		End:           params.Window.End(),
		TotalCents:    totalPrice.Cents(),
	})

	return reservationID, nil
}

// CancelReservation releases the halls by marking the reservation
// CANCELLED; cancelled reservations are invisible to conflict checks.
func (b *bookingCommandsImpl) CancelReservation(ctx context.Context, reservationID uuid.UUID) error {
	return b.tx.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if err := b.reservations.SetStatus(ctx, dbtx, reservationID, booking.StatusCancelled); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (b *bookingCommandsImpl) loadPricingInputs(ctx context.Context, params CreateReservationParams) (
	halls []*catalog.Hall,
	notOptional []*catalog.Service,
	chosen []booking.OptionalSelection,
	err error,
) {
	err = b.tx.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var loadErr error
		halls, loadErr = b.catalogRepo.HallsByIDs(ctx, dbtx, params.HallIDs)
		if loadErr != nil {
			return errs.Mark(loadErr, ErrDatabaseOperationFailed)
		}
		if len(halls) != len(dedupe(params.HallIDs)) {
			return ErrHallNotFound
		}

		notOptional, loadErr = b.catalogRepo.NotOptionalServices(ctx, dbtx)
		if loadErr != nil {
			return errs.Mark(loadErr, ErrDatabaseOperationFailed)
		}

		chosenIDs := make([]uuid.UUID, 0, len(params.OptionalServices))
		for _, choice := range params.OptionalServices {
			chosenIDs = append(chosenIDs, choice.ServiceID)
		}
		chosenServices, loadErr := b.catalogRepo.ServicesByIDs(ctx, dbtx, chosenIDs)
		if loadErr != nil {
			return errs.Mark(loadErr, ErrDatabaseOperationFailed)
		}
		if len(chosenServices) != len(dedupe(chosenIDs)) {
			return ErrServiceNotFound
		}

		rates := make(map[uuid.UUID]int64, len(chosenServices))
		for _, svc := range chosenServices {
			rates[svc.ID()] = svc.HourlyRate().Cents()
		}
		chosen = make([]booking.OptionalSelection, 0, len(params.OptionalServices))
		for _, choice := range params.OptionalServices {
			chosen = append(chosen, booking.OptionalSelection{
				ServiceID:        choice.ServiceID.String(),
				ChosenPriceCents: choice.ChosenPriceCents,
				HourlyRateCents:  rates[choice.ServiceID],
			})
		}
		return nil
	})
	return halls, notOptional, chosen, err
}

func hallItems(halls []*catalog.Hall) []booking.PricedItem {
	items := make([]booking.PricedItem, 0, len(halls))
	for _, h := range halls {
		items = append(items, booking.PricedItem{HourlyRateCents: h.HourlyRate().Cents()})
	}
	return items
}

func serviceItems(services []*catalog.Service) []booking.PricedItem {
	items := make([]booking.PricedItem, 0, len(services))
	for _, s := range services {
		items = append(items, booking.PricedItem{HourlyRateCents: s.HourlyRate().Cents()})
	}
	return items
}

func billedServiceIDs(notOptional []*catalog.Service, chosen []OptionalServiceChoice) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(notOptional)+len(chosen))
	for _, svc := range notOptional {
		ids = append(ids, svc.ID())
	}
	for _, choice := range chosen {
		ids = append(ids, choice.ServiceID)
	}
	return dedupe(ids)
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
