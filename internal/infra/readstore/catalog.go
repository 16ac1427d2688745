package readstore

import (
	"context"

	"hall-booking/internal/infra"
	"hall-booking/internal/infra/db"
	"hall-booking/internal/usecase/queries"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx}
}

func (s *CatalogReadStore) FindAllHalls(ctx context.Context) ([]*queries.HallView, error) {
	const q = `
		SELECT id, name, sport_type, hourly_rate_cents, capacity
		FROM halls
		ORDER BY name`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list halls", err)
	}
	defer rows.Close()

	var views []*queries.HallView
	for rows.Next() {
		var v queries.HallView
		if scanErr := rows.Scan(&v.ID, &v.Name, &v.SportType, &v.HourlyRateCents, &v.Capacity); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan hall", scanErr)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read halls", err)
	}
	return views, nil
}

func (s *CatalogReadStore) FindAllServices(ctx context.Context) ([]*queries.ServiceView, error) {
	const q = `
		SELECT id, name, hourly_rate_cents, optional
		FROM services
		ORDER BY optional, name`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	var views []*queries.ServiceView
	for rows.Next() {
		var v queries.ServiceView
		if scanErr := rows.Scan(&v.ID, &v.Name, &v.HourlyRateCents, &v.Optional); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan service", scanErr)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read services", err)
	}
	return views, nil
}
