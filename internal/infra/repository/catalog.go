package repository

import (
	"context"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/domain/catalog"
	"hall-booking/internal/infra"
	"hall-booking/internal/infra/db"

	"github.com/google/uuid"
)

type CatalogRepository struct{}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

func (r *CatalogRepository) CreateHall(ctx context.Context, dbtx db.DBTX, hall *catalog.Hall) (uuid.UUID, error) {
	const q = `
		INSERT INTO halls (id, name, sport_type, hourly_rate_cents, capacity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, q, hall.ID(), hall.Name(), hall.SportType(), hall.HourlyRate().Cents(), hall.Capacity()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create hall", err)
	}
	return id, nil
}

func (r *CatalogRepository) CreateService(ctx context.Context, dbtx db.DBTX, svc *catalog.Service) (uuid.UUID, error) {
	const q = `
		INSERT INTO services (id, name, hourly_rate_cents, optional)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, q, svc.ID(), svc.Name(), svc.HourlyRate().Cents(), svc.IsOptional()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create service", err)
	}
	return id, nil
}

func (r *CatalogRepository) HallsByIDs(ctx context.Context, dbtx db.DBTX, ids []uuid.UUID) ([]*catalog.Hall, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	const q = `
		SELECT id, name, sport_type, hourly_rate_cents, capacity
		FROM halls
		WHERE id = ANY($1)`

	rows, err := dbtx.Query(ctx, q, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query halls", err)
	}
	defer rows.Close()

	var halls []*catalog.Hall
	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			sportType string
			rate      int64
			capacity  int
		)
		if scanErr := rows.Scan(&id, &name, &sportType, &rate, &capacity); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan hall", scanErr)
		}
		halls = append(halls, catalog.ReconstructHall(id, name, sportType, booking.NewMoneyFromCents(rate), capacity))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read halls", err)
	}
	return halls, nil
}

func (r *CatalogRepository) ServicesByIDs(ctx context.Context, dbtx db.DBTX, ids []uuid.UUID) ([]*catalog.Service, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	const q = `
		SELECT id, name, hourly_rate_cents, optional
		FROM services
		WHERE id = ANY($1)`

	return r.queryServices(ctx, dbtx, q, ids)
}

func (r *CatalogRepository) NotOptionalServices(ctx context.Context, dbtx db.DBTX) ([]*catalog.Service, error) {
	const q = `
		SELECT id, name, hourly_rate_cents, optional
		FROM services
		WHERE optional = false`

	return r.queryServices(ctx, dbtx, q)
}

func (r *CatalogRepository) queryServices(ctx context.Context, dbtx db.DBTX, q string, args ...any) ([]*catalog.Service, error) {
	rows, err := dbtx.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query services", err)
	}
	defer rows.Close()

	var services []*catalog.Service
	for rows.Next() {
		var (
			id       uuid.UUID
			name     string
			rate     int64
			optional bool
		)
		if scanErr := rows.Scan(&id, &name, &rate, &optional); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan service", scanErr)
		}
		services = append(services, catalog.ReconstructService(id, name, booking.NewMoneyFromCents(rate), optional))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read services", err)
	}
	return services, nil
}
