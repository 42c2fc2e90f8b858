// Package testdb provides isolated SurrealDB databases for integration tests.
//
// Each TestDB runs in its own namespace on a shared server, so tests can run
// against real SurrealQL behavior, unique indexes included, without seeing
// each other's rows.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t, repository.ApplySurrealSchema)
//	    defer tdb.Close()
//
//	    result, err := tdb.DB.Query(tdb.Ctx(), "SELECT * FROM life_area", nil)
//	}
package testdb

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/forgo/northstar/internal/database"
)

// SchemaFunc prepares a fresh namespace, e.g. repository.ApplySurrealSchema.
type SchemaFunc func(ctx context.Context, db database.Database) error

// TestDB provides an isolated database environment for testing.
// Each TestDB instance gets a unique namespace to ensure test isolation.
type TestDB struct {
	DB        database.Database
	Namespace string
	Database  string
	t         *testing.T
}

const surrealImage = "surrealdb/surrealdb:v2.1.4"

var (
	// serverOnce starts at most one SurrealDB container per test binary
	serverOnce sync.Once
	serverCfg  database.Config
	serverErr  error

	// counterMu protects the namespace counter
	counterMu sync.Mutex
	counter   int64
)

// serverConfig returns the server to test against. TEST_DB_HOST selects an
// existing server; otherwise a container is started and reused.
func serverConfig(ctx context.Context) (database.Config, error) {
	serverOnce.Do(func() {
		cfg := database.Config{
			Host:     os.Getenv("TEST_DB_HOST"),
			Port:     envOr("TEST_DB_PORT", "8000"),
			User:     envOr("TEST_DB_USER", "root"),
			Password: envOr("TEST_DB_PASSWORD", "root"),
		}
		if cfg.Host != "" {
			serverCfg = cfg
			return
		}

		container, err := testcontainers.Run(ctx, surrealImage,
			testcontainers.WithCmd("start", "--user", cfg.User, "--pass", cfg.Password, "memory"),
			testcontainers.WithExposedPorts("8000/tcp"),
			testcontainers.WithWaitStrategy(
				wait.ForListeningPort("8000/tcp").WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			serverErr = fmt.Errorf("start surrealdb: %w", err)
			return
		}

		host, err := container.Host(ctx)
		if err != nil {
			serverErr = fmt.Errorf("surrealdb host: %w", err)
			return
		}
		port, err := container.MappedPort(ctx, "8000/tcp")
		if err != nil {
			serverErr = fmt.Errorf("surrealdb port: %w", err)
			return
		}
		cfg.Host = host
		cfg.Port = port.Port()
		serverCfg = cfg
	})
	return serverCfg, serverErr
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// uniqueNamespace generates a unique namespace for test isolation
func uniqueNamespace() string {
	counterMu.Lock()
	defer counterMu.Unlock()
	counter++
	return fmt.Sprintf("test_%d_%d", time.Now().UnixNano(), counter)
}

// New connects to a fresh namespace and applies schema to it.
// Call Close() when done to remove the namespace.
func New(t *testing.T, schema SchemaFunc) *TestDB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	cfg, err := serverConfig(ctx)
	if err != nil {
		t.Fatalf("testdb: %v", err)
	}
	cfg.Namespace = uniqueNamespace()
	cfg.Database = "test"

	db := database.NewSurrealDB(cfg)
	if err := db.Connect(ctx); err != nil {
		t.Fatalf("testdb: failed to connect: %v", err)
	}

	tdb := &TestDB{
		DB:        db,
		Namespace: cfg.Namespace,
		Database:  cfg.Database,
		t:         t,
	}

	if schema != nil {
		if err := schema(ctx, db); err != nil {
			db.Close()
			t.Fatalf("testdb: schema failed: %v", err)
		}
	}
	return tdb
}

// Close cleans up the test database by removing the namespace.
func (tdb *TestDB) Close() {
	if tdb.DB == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = tdb.DB.Execute(ctx, fmt.Sprintf("REMOVE NAMESPACE %s", tdb.Namespace), nil)
	tdb.DB.Close()
}

// Reset deletes every row from tables while keeping tables and indexes.
func (tdb *TestDB) Reset(t *testing.T, tables ...string) {
	t.Helper()

	for _, table := range tables {
		if err := tdb.DB.Execute(tdb.Ctx(), "DELETE type::table($tb)", map[string]interface{}{"tb": table}); err != nil {
			t.Fatalf("testdb: failed to clear %s: %v", table, err)
		}
	}
}

// Ctx returns a context with a reasonable timeout for test operations.
func (tdb *TestDB) Ctx() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	tdb.t.Cleanup(cancel)
	return ctx
}

// MustExec executes a query and fails the test on error.
func (tdb *TestDB) MustExec(query string, vars map[string]interface{}) {
	tdb.t.Helper()
	if err := tdb.DB.Execute(tdb.Ctx(), query, vars); err != nil {
		tdb.t.Fatalf("testdb: exec failed: %v\nQuery: %s", err, query)
	}
}

// MustQuery executes a query and returns results, failing the test on error.
func (tdb *TestDB) MustQuery(query string, vars map[string]interface{}) []interface{} {
	tdb.t.Helper()
	results, err := tdb.DB.Query(tdb.Ctx(), query, vars)
	if err != nil {
		tdb.t.Fatalf("testdb: query failed: %v\nQuery: %s", err, query)
	}
	return results
}
