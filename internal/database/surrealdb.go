package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/surrealdb/surrealdb.go"
)

// SurrealDB implements Database over a websocket connection
type SurrealDB struct {
	db     *surrealdb.DB
	config Config
}

// NewSurrealDB creates a new SurrealDB instance
func NewSurrealDB(cfg Config) *SurrealDB {
	return &SurrealDB{
		config: cfg,
	}
}

// Connect establishes a connection, signs in and selects the namespace
func (s *SurrealDB) Connect(ctx context.Context) error {
	endpoint := fmt.Sprintf("ws://%s:%s", s.config.Host, s.config.Port)

	db, err := surrealdb.FromEndpointURLString(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	_, err = db.SignIn(ctx, &surrealdb.Auth{
		Username: s.config.User,
		Password: s.config.Password,
	})
	if err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: signin failed: %v", ErrConnection, err)
	}

	if err := db.Use(ctx, s.config.Namespace, s.config.Database); err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: use failed: %v", ErrConnection, err)
	}

	s.db = db
	return nil
}

// Close closes the database connection
func (s *SurrealDB) Close() error {
	if s.db != nil {
		return s.db.Close(context.Background())
	}
	return nil
}

// Ping checks the database connection
func (s *SurrealDB) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrConnection
	}
	if _, err := s.db.Version(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Query executes a query and returns one {status, result} map per statement.
// When any statement fails, every statement error is joined into the
// returned error so index violations stay visible behind the generic
// "failed transaction" errors SurrealDB reports for the rest of a batch.
func (s *SurrealDB) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	if s.db == nil {
		return nil, ErrConnection
	}

	results, err := surrealdb.Query[interface{}](ctx, s.db, query, vars)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	if results == nil {
		return nil, nil
	}

	output := make([]interface{}, 0, len(*results))
	var failures []string
	for _, r := range *results {
		if r.Status != "OK" {
			if r.Error != nil {
				failures = append(failures, r.Error.Message)
			} else {
				failures = append(failures, r.Status)
			}
			continue
		}
		output = append(output, map[string]interface{}{
			"status": r.Status,
			"result": r.Result,
		})
	}
	if len(failures) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrQuery, strings.Join(failures, "; "))
	}

	return output, nil
}

// QueryOne returns the first record of the first statement
func (s *SurrealDB) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	results, err := s.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := StatementRecords(results, 0)
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return records[0], nil
}

// Execute runs a query without returning results
func (s *SurrealDB) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	_, err := s.Query(ctx, query, vars)
	return err
}

// BeginTx starts a batch transaction. Statements run at Commit.
func (s *SurrealDB) BeginTx(ctx context.Context) (Transaction, error) {
	if s.db == nil {
		return nil, ErrConnection
	}
	return newBatchTx(ctx, s), nil
}

// batchTx buffers statements in a TxBuilder and runs them atomically on
// Commit. It works against any Database, which keeps it testable.
type batchTx struct {
	ctx       context.Context
	db        Database
	builder   *TxBuilder
	committed bool
}

func newBatchTx(ctx context.Context, db Database) *batchTx {
	return &batchTx{ctx: ctx, db: db, builder: NewTxBuilder()}
}

// NewBatchTx returns a batch transaction over db. Database implementations
// without native transactions can return it from BeginTx.
func NewBatchTx(ctx context.Context, db Database) Transaction {
	return newBatchTx(ctx, db)
}

func (t *batchTx) Execute(_ context.Context, query string, vars map[string]interface{}) error {
	if t.committed {
		return fmt.Errorf("%w: transaction already committed", ErrQuery)
	}
	t.builder.Add(query, vars)
	return nil
}

func (t *batchTx) Commit() error {
	if t.committed {
		return nil
	}
	t.committed = true
	if _, err := ExecuteTransaction(t.ctx, t.db, t.builder); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (t *batchTx) Rollback() error {
	t.builder = NewTxBuilder()
	return nil
}

// StatementRecords returns the records produced by statement i of a Query
// result. Non-array results (scalars, single objects) come back as a
// one-element slice.
func StatementRecords(results []interface{}, i int) []map[string]interface{} {
	if i < 0 || i >= len(results) {
		return nil
	}
	var payload interface{} = results[i]
	if resp, ok := payload.(map[string]interface{}); ok {
		if _, wrapped := resp["status"]; wrapped {
			payload = resp["result"]
		}
	}

	switch v := payload.(type) {
	case []interface{}:
		out := make([]map[string]interface{}, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]interface{}); ok {
				out = append(out, m)
			}
		}
		return out
	case map[string]interface{}:
		return []map[string]interface{}{v}
	}
	return nil
}
