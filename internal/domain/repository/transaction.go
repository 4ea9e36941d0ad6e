package repository

import "context"

// TransactionManager defines the interface for grouping several state writes.
// This allows the persister to flush a batch without depending on a specific backend.
type TransactionManager interface {
	// Execute runs fn with a StateRepository bound to one unit of work.
	// If fn returns an error, backends that support it discard the whole batch.
	Execute(ctx context.Context, fn func(repo StateRepository) error) error
}
