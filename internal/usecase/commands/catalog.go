package commands

import (
	"context"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/domain/catalog"
	"hall-booking/internal/infra/db"
	"hall-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidHall    = errs.New("invalid hall data")
	ErrInvalidService = errs.New("invalid service data")
)

type CreateHallParams struct {
	Name            string
	SportType       string
	HourlyRateCents int64
	Capacity        int
}

type CreateServiceParams struct {
	Name            string
	HourlyRateCents int64
	Optional        bool
}

type CatalogCommands interface {
	CreateHall(ctx context.Context, params CreateHallParams) (uuid.UUID, error)
	CreateService(ctx context.Context, params CreateServiceParams) (uuid.UUID, error)
}

type catalogCommandsImpl struct {
	tx          TxManager
	catalogRepo CatalogRepository
}

func NewCatalogCommands(tx TxManager, catalogRepo CatalogRepository) CatalogCommands {
	return &catalogCommandsImpl{
		tx:          tx,
		catalogRepo: catalogRepo,
	}
}

func (c *catalogCommandsImpl) CreateHall(ctx context.Context, params CreateHallParams) (uuid.UUID, error) {
	hall, err := catalog.NewHall(params.Name, params.SportType, booking.NewMoneyFromCents(params.HourlyRateCents), params.Capacity)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidHall)
	}

	var id uuid.UUID
	err = c.tx.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		created, createErr := c.catalogRepo.CreateHall(ctx, dbtx, hall)
		if createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *catalogCommandsImpl) CreateService(ctx context.Context, params CreateServiceParams) (uuid.UUID, error) {
	svc, err := catalog.NewService(params.Name, booking.NewMoneyFromCents(params.HourlyRateCents), params.Optional)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidService)
	}

	var id uuid.UUID
	err = c.tx.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		created, createErr := c.catalogRepo.CreateService(ctx, dbtx, svc)
		if createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
