package domain

import "context"

// Store groups the repositories over one connection pool or one transaction.
type Store interface {
	Users() UserRepository
	Items() ItemRepository
	Activities() ActivityRepository
	// Atomic runs fn in a transaction: commit when fn returns nil, rollback otherwise.
	Atomic(ctx context.Context, fn func(tx Store) error) error
}
