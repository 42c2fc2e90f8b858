// Package repository implements database.Store for northstar's entities.
//
// Three backends share one contract:
//
//   - MemoryStore keeps records in maps and runs transactions on a copy
//   - PostgresStore runs on database/sql with the pgx driver
//   - SurrealStore runs SurrealQL through database.Database
//
// Each store reads only the attributes the invariant checks need
// (model.Record). Names and titles are compared through their normalized
// columns, see model.NormalizeKey.
//
// # Schemas
//
// ApplyPostgresSchema and ApplySurrealSchema create tables and the named
// constraints listed in database.Catalog, so storage errors raised by either
// backend map back to the same rules.
//
// # Example Usage
//
//	store := NewPostgresStore(db, WithIsolation(sql.LevelSerializable))
//	err := store.WithinTx(ctx, func(ctx context.Context, tx database.Store) error {
//	    n, err := tx.CountWhere(ctx, model.KindGoal, model.Filter{UserID: userID, Status: model.GoalStatusActive})
//	    ...
//	})
package repository
