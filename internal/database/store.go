package database

//go:generate mockgen -source=store.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/forgo/northstar/internal/model"
)

// Store is the storage port used by the invariant checks. A Store handed out
// by TxRunner is bound to that transaction.
type Store interface {
	// FindOwned returns the record with id owned by userID, or nil when it
	// doesn't exist or belongs to someone else.
	FindOwned(ctx context.Context, kind model.EntityKind, id, userID string) (*model.Record, error)

	// CountWhere counts records of kind matching filter.
	CountWhere(ctx context.Context, kind model.EntityKind, filter model.Filter) (int, error)

	// FindByNormalizedKey looks up a record by its lowercase-trimmed unique
	// column (life area name, task title) within filter's scope. Returns nil
	// when there is no match.
	FindByNormalizedKey(ctx context.Context, kind model.EntityKind, filter model.Filter, normalized string) (*model.Record, error)

	// ListOrdered returns the user's records ordered by their order column.
	ListOrdered(ctx context.Context, kind model.EntityKind, userID string) ([]*model.Record, error)

	// UpdateOrder sets a record's order.
	UpdateOrder(ctx context.Context, kind model.EntityKind, id string, order int) error
}

// TxRunner runs fn inside one storage transaction. If fn returns an error the
// transaction is rolled back and the error returned unchanged.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}
