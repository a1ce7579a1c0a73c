package repository

import "context"

// TransactionManager runs read-modify-write sequences against the catalog
// atomically, without the use case layer depending on a specific store.
type TransactionManager interface {
	// Execute runs fn within a single transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Every catalog
	// call made through the repository handed to fn shares the transaction.
	Execute(ctx context.Context, fn func(catalog CatalogRepository) error) error
}
