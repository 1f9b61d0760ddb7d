package trm

import "context"

// Noop returns a Manager for stores that apply every write atomically on
// their own, such as the in-memory adapter. Do simply runs the callback.
func Noop() Manager {
	return noopManager{}
}

type noopManager struct{}

type noopTx struct{}

func (noopTx) Commit() error   { return nil }
func (noopTx) Rollback() error { return nil }

func (noopManager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	return ctx, noopTx{}, nil
}

func (noopManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	return callback(ctx)
}
