package readstore

import (
	"context"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/infra"
	"hall-booking/internal/infra/db"
	"hall-booking/internal/usecase/queries"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

func (s *AvailabilityReadStore) FindFreeDuring(ctx context.Context, window booking.TimeWindow) ([]*queries.FreeHallView, error) {
	const q = `
		SELECT h.id, h.name, h.sport_type, h.hourly_rate_cents, h.capacity
		FROM halls h
		WHERE NOT EXISTS (
			SELECT 1
			FROM reservation_halls rh
			JOIN reservations r ON r.id = rh.reservation_id
			WHERE rh.hall_id = h.id
			  AND r.status <> 'CANCELLED'
			  AND r.start_time < $2
			  AND r.end_time > $1
		)
		ORDER BY h.name`

	rows, err := s.db.Query(ctx, q, window.Start(), window.End())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list free halls", err)
	}
	defer rows.Close()

	var views []*queries.FreeHallView
	for rows.Next() {
		var v queries.FreeHallView
		if scanErr := rows.Scan(&v.ID, &v.Name, &v.SportType, &v.HourlyRateCents, &v.Capacity); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan free hall", scanErr)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read free halls", err)
	}
	return views, nil
}
