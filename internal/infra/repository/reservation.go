package repository

import (
	"context"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/infra"
	"hall-booking/internal/infra/db"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, dbtx db.DBTX, res *booking.Reservation) (uuid.UUID, error) {
	const q = `
		INSERT INTO reservations (id, customer_id, start_time, end_time, total_price_cents, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, q,
		res.ID(),
		res.CustomerID(),
		res.Window().Start(),
		res.Window().End(),
		res.TotalPrice().Cents(),
		res.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) AddServiceLine(ctx context.Context, dbtx db.DBTX, line booking.ServiceLine) error {
	const q = `
		INSERT INTO reservation_services (reservation_id, service_id, hours)
		VALUES ($1, $2, $3)`

	if _, err := dbtx.Exec(ctx, q, line.ReservationID, line.ServiceID, line.Hours); err != nil {
		return infra.WrapRepoErr("failed to create service line", err)
	}
	return nil
}

func (r *ReservationRepository) AddHallAssignment(ctx context.Context, dbtx db.DBTX, assignment booking.HallAssignment) error {
	const q = `
		INSERT INTO reservation_halls (reservation_id, hall_id)
		VALUES ($1, $2)`

	if _, err := dbtx.Exec(ctx, q, assignment.ReservationID, assignment.HallID); err != nil {
		return infra.WrapRepoErr("failed to create hall assignment", err)
	}
	return nil
}

// SetStatus is the only reservation mutation. Free-form attribute
// updates never cross this boundary.
func (r *ReservationRepository) SetStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error {
	if !status.IsValid() {
		return infra.NewRepoErr(infra.KindCheckViolated, "invalid reservation status")
	}

	const q = `UPDATE reservations SET status = $1, updated_at = now() WHERE id = $2`

	tag, err := dbtx.Exec(ctx, q, status.String(), id)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	const q = `DELETE FROM reservations WHERE id = $1`

	tag, err := dbtx.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return nil
}
