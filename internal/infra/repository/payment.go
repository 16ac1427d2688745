package repository

import (
	"context"

	"hall-booking/internal/domain/booking"
	"hall-booking/internal/infra"
	"hall-booking/internal/infra/db"

	"github.com/google/uuid"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) Create(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID, amount booking.Money) (uuid.UUID, error) {
	const q = `
		INSERT INTO payments (id, reservation_id, amount_cents)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, q, uuid.New(), reservationID, amount.Cents()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment", err)
	}
	return id, nil
}

// Delete exists solely as the compensating action for a failed transfer.
func (r *PaymentRepository) Delete(ctx context.Context, dbtx db.DBTX, paymentID uuid.UUID) error {
	const q = `DELETE FROM payments WHERE id = $1`

	tag, err := dbtx.Exec(ctx, q, paymentID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "payment not found")
	}
	return nil
}

func (r *PaymentRepository) ExistsForReservation(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM payments WHERE reservation_id = $1)`

	var exists bool
	if err := dbtx.QueryRow(ctx, q, reservationID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check payment existence", err)
	}
	return exists, nil
}
