package commands

import (
	"context"

	"hall-booking/internal/domain/account"
	"hall-booking/internal/domain/booking"
	"hall-booking/internal/infra/db"
	"hall-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCustomer = errs.New("invalid customer data")
	ErrInvalidTopUp    = errs.New("top-up amount must be positive")
)

type CreateCustomerParams struct {
	Name  string
	Email string
	Phone string
}

type CustomerCommands interface {
	CreateCustomer(ctx context.Context, params CreateCustomerParams) (uuid.UUID, error)
	TopUpBalance(ctx context.Context, accountID uuid.UUID, amount booking.Money) error
}

// customerCommandsImpl creates the customer together with its cash
// account in one transaction, keeping the one-to-one pairing intact.
type customerCommandsImpl struct {
	tx        TxManager
	customers CustomerRepository
	accounts  AccountRepository
}

func NewCustomerCommands(tx TxManager, customers CustomerRepository, accounts AccountRepository) CustomerCommands {
	return &customerCommandsImpl{
		tx:        tx,
		customers: customers,
		accounts:  accounts,
	}
}

func (c *customerCommandsImpl) CreateCustomer(ctx context.Context, params CreateCustomerParams) (uuid.UUID, error) {
	acc, err := account.NewCashAccount(account.TypeCustomer, 0)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidCustomer)
	}

	var customerID uuid.UUID
	err = c.tx.Within(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		accountID, accErr := c.accounts.Create(ctx, dbtx, acc)
		if accErr != nil {
			return errs.Mark(accErr, ErrDatabaseOperationFailed)
		}

		cust, custErr := account.NewCustomer(accountID, params.Name, params.Email, params.Phone)
		if custErr != nil {
			return errs.Mark(custErr, ErrInvalidCustomer)
		}

		id, createErr := c.customers.Create(ctx, dbtx, cust)
		if createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		customerID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return customerID, nil
}

func (c *customerCommandsImpl) TopUpBalance(ctx context.Context, accountID uuid.UUID, amount booking.Money) error {
	if !amount.IsPositive() {
		return ErrInvalidTopUp
	}

	return c.tx.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if err := c.accounts.Credit(ctx, dbtx, accountID, amount); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
