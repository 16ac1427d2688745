package components

import (
	"hall-booking/internal/domain/booking"
	"hall-booking/internal/pkg/clock"
	"hall-booking/internal/pkg/config"
	"hall-booking/internal/pkg/keylock"
	"hall-booking/internal/usecase/commands"
	"hall-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	commands.NewConflictDetector,
	func(cfg config.Config) commands.BookingPolicy {
		return commands.BookingPolicy{
			RejectPastStart: cfg.Booking.RejectPastStart,
			Pricing: booking.PricingPolicy{
				UniformServiceRates: cfg.Booking.UniformServicePricing,
			},
		}
	},
)

// The hall lock set and the account lock set are independent; the
// wrappers keep each one private to the command that needs it.
var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCustomerCommands,
		commands.NewCatalogCommands,
		func(
			tx commands.TxManager,
			reservations commands.ReservationRepository,
			catalogRepo commands.CatalogRepository,
			detector *commands.ConflictDetector,
			publisher commands.EventPublisher,
			clk clock.Clock,
			policy commands.BookingPolicy,
		) commands.BookingCommands {
			return commands.NewBookingCommands(
				tx, reservations, catalogRepo, detector, keylock.New(), publisher, clk, policy)
		},
		func(
			tx commands.TxManager,
			reservations commands.ReservationRepository,
			accounts commands.AccountRepository,
			payments commands.PaymentRepository,
			publisher commands.EventPublisher,
			clk clock.Clock,
		) commands.SettlementCommands {
			return commands.NewSettlementCommands(
				tx, reservations, accounts, payments, keylock.New(), publisher, clk)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewAvailabilityQueries,
		queries.NewCustomerQueries,
		queries.NewCatalogQueries,
	),
)
