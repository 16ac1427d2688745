package account

import (
	"errors"
	"time"

	"hall-booking/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrInvalidAccountType   = errors.New("invalid account type")
	ErrNegativeBalance      = errors.New("balance cannot be negative")
	ErrSystemAccountExists  = errors.New("system account already exists")
	ErrSystemAccountMissing = errors.New("system account does not exist")
)

type Type string

const (
	TypeCustomer Type = "CUSTOMER"
	TypeSystem   Type = "SYSTEM"
)

func (t Type) IsValid() bool {
	return t == TypeCustomer || t == TypeSystem
}

// CashAccount holds prepaid funds. Balances change only through the
// ledger's credit/debit primitives; at most one SYSTEM account exists
// process-wide, enforced at creation time.
type CashAccount struct {
	id        uuid.UUID
	balance   booking.Money
	accType   Type
	createdAt time.Time
}

func NewCashAccount(accType Type, openingBalance booking.Money) (*CashAccount, error) {
	if !accType.IsValid() {
		return nil, ErrInvalidAccountType
	}
	if openingBalance.IsNegative() {
		return nil, ErrNegativeBalance
	}

	return &CashAccount{
		id:      uuid.New(),
		balance: openingBalance,
		accType: accType,
	}, nil
}

func ReconstructCashAccount(id uuid.UUID, balance booking.Money, accType Type, createdAt time.Time) *CashAccount {
	return &CashAccount{
		id:        id,
		balance:   balance,
		accType:   accType,
		createdAt: createdAt,
	}
}

func (a *CashAccount) ID() uuid.UUID          { return a.id }
func (a *CashAccount) Balance() booking.Money { return a.balance }
func (a *CashAccount) Type() Type             { return a.accType }
func (a *CashAccount) CreatedAt() time.Time   { return a.createdAt }

func (a *CashAccount) IsSystem() bool {
	return a.accType == TypeSystem
}

// CanCover reports whether the balance covers amount. This is the
// advisory pre-check; the ledger's debit re-verifies atomically.
func (a *CashAccount) CanCover(amount booking.Money) bool {
	return a.balance >= amount
}

// Customer is created together with its cash account (one-to-one).
type Customer struct {
	id        uuid.UUID
	accountID uuid.UUID
	name      string
	email     string
	phone     string
}

var ErrInvalidCustomer = errors.New("customer name and email are required")

func NewCustomer(accountID uuid.UUID, name, email, phone string) (*Customer, error) {
	if name == "" || email == "" {
		return nil, ErrInvalidCustomer
	}
	return &Customer{
		id:        uuid.New(),
		accountID: accountID,
		name:      name,
		email:     email,
		phone:     phone,
	}, nil
}

func ReconstructCustomer(id, accountID uuid.UUID, name, email, phone string) *Customer {
	return &Customer{
		id:        id,
		accountID: accountID,
		name:      name,
		email:     email,
		phone:     phone,
	}
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) AccountID() uuid.UUID { return c.accountID }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Phone() string        { return c.phone }
