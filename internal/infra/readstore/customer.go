package readstore

import (
	"context"

	"hall-booking/internal/infra"
	"hall-booking/internal/infra/db"
	"hall-booking/internal/usecase/queries"
)

type CustomerReadStore struct {
	db db.DBTX
}

func NewCustomerReadStore(dbtx db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: dbtx}
}

func (s *CustomerReadStore) FindAllWithBalances(ctx context.Context) ([]*queries.CustomerBalanceView, error) {
	const q = `
		SELECT c.id, c.name, c.email, ca.id, ca.balance_cents
		FROM customers c
		JOIN cash_accounts ca ON ca.id = c.account_id
		ORDER BY c.name`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers with balances", err)
	}
	defer rows.Close()

	var views []*queries.CustomerBalanceView
	for rows.Next() {
		var v queries.CustomerBalanceView
		if scanErr := rows.Scan(&v.CustomerID, &v.Name, &v.Email, &v.AccountID, &v.BalanceCents); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan customer balance", scanErr)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read customer balances", err)
	}
	return views, nil
}
