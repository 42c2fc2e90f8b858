// Package database holds the storage ports and connections for northstar.
//
// # Ports
//
// Store is the narrow port the invariant checks talk to. It exposes only the
// lookups and the single write (order updates) the engine needs, so the
// persistence layer stays free to pick tables, isolation level and rollback:
//
//	err := runner.WithinTx(ctx, func(ctx context.Context, tx database.Store) error {
//	    n, err := tx.CountWhere(ctx, model.KindGoal, model.Filter{UserID: uid, Status: model.GoalStatusActive})
//	    ...
//	})
//
// # Connections
//
// The SurrealDB connection (Database, Transaction) is a thin query interface.
// Transactions against it are BATCH-BASED: statements accumulate in memory and
// run inside BEGIN/COMMIT TRANSACTION at Commit, so reads made while a batch
// is open see committed state only. OpenPostgres returns a database/sql pool
// on the pgx driver.
//
// # Constraint errors
//
// Classify inspects any storage error shape (pgx, lib/pq, Prisma-style maps,
// SurrealDB index messages) and reports whether it is a unique or check
// violation and which constraint fired. The constraint Catalog names every
// constraint the schemas declare.
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: Record does not exist
//   - ErrDuplicate: Unique constraint violation
//   - ErrConnection: Database connection issues
//   - ErrQuery: Query execution failures
//   - ErrUnsupported: Entity kind has no such operation
package database
