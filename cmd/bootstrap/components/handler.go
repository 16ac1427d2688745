package components

import (
	"hall-booking/internal/handler"
	"hall-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewSettlementHandler,
		api.NewCustomerHandler,
		api.NewCatalogHandler,
		api.NewReservationQueryHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	settlement *api.SettlementHandler,
	customer *api.CustomerHandler,
	catalog *api.CatalogHandler,
	reservation *api.ReservationQueryHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Booking:     booking,
		Settlement:  settlement,
		Customer:    customer,
		Catalog:     catalog,
		Reservation: reservation,
	}
}
