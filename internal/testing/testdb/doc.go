// Package testdb manages SurrealDB databases for integration tests.
//
// # Server
//
// TEST_DB_HOST, TEST_DB_PORT, TEST_DB_USER and TEST_DB_PASSWORD point the
// tests at a running server. When TEST_DB_HOST is unset a SurrealDB container
// is started with testcontainers and shared by every test in the binary.
//
// # Isolation
//
// Each New call gets its own namespace, removed again by Close:
//
//	func TestA(t *testing.T) {
//	    tdb := testdb.New(t, repository.ApplySurrealSchema) // namespace: test_<nanos>_1
//	    defer tdb.Close()
//	}
//
// Reset clears named tables between subtests that share one TestDB.
package testdb
