// Package fixtures creates northstar entities in a SurrealDB test database.
//
// Factories pair with testdb:
//
//	tdb := testdb.New(t, repository.ApplySurrealSchema)
//	defer tdb.Close()
//
//	f := fixtures.New(tdb.DB)
//	week := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
//	f.CreateWeeklyTask(t, "u1", "Stretch", week)
//
// Put dispatches on model.Record.Kind so shared store tests can seed any
// backend through one function.
package fixtures
