package repository

import (
	"context"

	"hall-booking/internal/domain/account"
	"hall-booking/internal/infra"
	"hall-booking/internal/infra/db"

	"github.com/google/uuid"
)

type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

func (r *CustomerRepository) Create(ctx context.Context, dbtx db.DBTX, cust *account.Customer) (uuid.UUID, error) {
	const q = `
		INSERT INTO customers (id, account_id, name, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, q, cust.ID(), cust.AccountID(), cust.Name(), cust.Email(), cust.Phone()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create customer", err)
	}
	return id, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*account.Customer, error) {
	const q = `
		SELECT id, account_id, name, email, phone
		FROM customers
		WHERE id = $1`

	var (
		custID    uuid.UUID
		accountID uuid.UUID
		name      string
		email     string
		phone     string
	)
	err := dbtx.QueryRow(ctx, q, id).Scan(&custID, &accountID, &name, &email, &phone)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}

	return account.ReconstructCustomer(custID, accountID, name, email, phone), nil
}
