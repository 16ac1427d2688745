package readstore

import (
	"context"
	"time"

	"hall-booking/internal/infra"
	"hall-booking/internal/infra/db"
	"hall-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const reservationViewSelect = `
	SELECT r.id, r.customer_id, c.name, c.email,
	       r.start_time, r.end_time, r.status, r.total_price_cents, r.created_at,
	       COALESCE(array_agg(h.name ORDER BY h.name) FILTER (WHERE h.name IS NOT NULL), '{}')
	FROM reservations r
	JOIN customers c ON c.id = r.customer_id
	LEFT JOIN reservation_halls rh ON rh.reservation_id = r.id
	LEFT JOIN halls h ON h.id = rh.hall_id`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	q := reservationViewSelect + `
	WHERE r.id = $1
	GROUP BY r.id, c.name, c.email`

	view, err := scanReservationView(s.db.QueryRow(ctx, q, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return view, nil
}

func (s *ReservationReadStore) FindAllDetailed(ctx context.Context) ([]*queries.ReservationView, error) {
	q := reservationViewSelect + `
	GROUP BY r.id, c.name, c.email
	ORDER BY r.start_time`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		view, scanErr := scanReservationView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservations", err)
	}
	return views, nil
}

// FindUnpaid returns reservations with no payment row, joined with the
// paying account. This view is the at-most-once settlement work list.
func (s *ReservationReadStore) FindUnpaid(ctx context.Context) ([]*queries.UnpaidReservationView, error) {
	const q = `
		SELECT r.id, c.id, c.account_id, c.name, c.email, r.total_price_cents
		FROM reservations r
		JOIN customers c ON c.id = r.customer_id
		LEFT JOIN payments p ON p.reservation_id = r.id
		WHERE p.id IS NULL
		  AND r.status <> 'CANCELLED'
		ORDER BY r.created_at`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unpaid reservations", err)
	}
	defer rows.Close()

	var views []*queries.UnpaidReservationView
	for rows.Next() {
		var v queries.UnpaidReservationView
		if scanErr := rows.Scan(&v.ReservationID, &v.CustomerID, &v.AccountID, &v.CustomerName, &v.CustomerEmail, &v.TotalCents); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan unpaid reservation", scanErr)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read unpaid reservations", err)
	}
	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var (
		v         queries.ReservationView
		start     time.Time
		end       time.Time
		createdAt time.Time
	)
	err := row.Scan(&v.ID, &v.CustomerID, &v.CustomerName, &v.CustomerEmail,
		&start, &end, &v.Status, &v.TotalCents, &createdAt, &v.HallNames)
	if err != nil {
		return nil, err
	}
	v.Start = start
	v.End = end
	v.CreatedAt = createdAt
	return &v, nil
}
