package bootstrap

import (
	"context"

	"hall-booking/internal/events"
	"hall-booking/internal/pkg/config"
	"hall-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		fx.Annotate(
			NewEventPublisher,
			fx.As(new(commands.EventPublisher)),
		),
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) *events.Publisher {
	publisher := events.NewPublisher(cfg.AMQP)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			publisher.Close()
			return nil
		},
	})

	return publisher
}
