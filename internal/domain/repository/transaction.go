package repository

import "context"

// TransactionManager runs fn in a unit of work: commit when fn returns nil,
// roll back on error or panic. Repositories called with the ctx passed to fn
// join the transaction.
type TransactionManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
