package repository

import (
	"context"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/infra"
	"hall-booking/internal/infra/db"

	"github.com/google/uuid"
)

// AvailabilityReader answers the hall-availability query with the
// half-open overlap test: existing.start < window.end AND
// existing.end > window.start. Cancelled reservations do not occupy.
type AvailabilityReader struct{}

func NewAvailabilityReader() *AvailabilityReader {
	return &AvailabilityReader{}
}

func (r *AvailabilityReader) FreeHalls(ctx context.Context, dbtx db.DBTX, window booking.TimeWindow) (map[uuid.UUID]struct{}, error) {
	const q = `
		SELECT h.id
		FROM halls h
		WHERE NOT EXISTS (
			SELECT 1
			FROM reservation_halls rh
			JOIN reservations r ON r.id = rh.reservation_id
			WHERE rh.hall_id = h.id
			  AND r.status <> 'CANCELLED'
			  AND r.start_time < $2
			  AND r.end_time > $1
		)`

	rows, err := dbtx.Query(ctx, q, window.Start(), window.End())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query free halls", err)
	}
	defer rows.Close()

	free := make(map[uuid.UUID]struct{})
	for rows.Next() {
		var id uuid.UUID
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan hall id", scanErr)
		}
		free[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read free halls", err)
	}
	return free, nil
}
