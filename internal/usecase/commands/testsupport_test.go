//go:build unit

package commands_test

import (
	"context"

	"hall-booking/internal/infra/db"
)

// passthroughTx runs the callback directly; unit tests exercise the
// command logic, not transaction plumbing.
type passthroughTx struct{}

func (passthroughTx) Within(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
	return fn(ctx, nil)
}

func (passthroughTx) WithDB(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
	return fn(ctx, nil)
}
