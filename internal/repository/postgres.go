package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/forgo/northstar/internal/database"
	"github.com/forgo/northstar/internal/model"
)

//go:embed schema.sql
var postgresSchema string

// ApplyPostgresSchema creates the northstar tables if they don't exist.
func ApplyPostgresSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, postgresSchema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PostgresStore implements database.Store and database.TxRunner on PostgreSQL.
type PostgresStore struct {
	db     *sql.DB
	q      querier
	txOpts *sql.TxOptions
}

// PostgresOption configures a PostgresStore.
type PostgresOption func(*PostgresStore)

// WithIsolation sets the isolation level used by WithinTx.
func WithIsolation(level sql.IsolationLevel) PostgresOption {
	return func(s *PostgresStore) {
		s.txOpts = &sql.TxOptions{Isolation: level}
	}
}

// NewPostgresStore constructs a PostgreSQL-backed store.
func NewPostgresStore(db *sql.DB, opts ...PostgresOption) *PostgresStore {
	s := &PostgresStore{db: db, q: db}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// WithinTx runs fn in a database transaction.
func (s *PostgresStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx database.Store) error) error {
	tx, err := s.db.BeginTx(ctx, s.txOpts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	scoped := &PostgresStore{db: s.db, q: tx, txOpts: s.txOpts}
	if err := fn(ctx, scoped); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindOwned(ctx context.Context, kind model.EntityKind, id, userID string) (*model.Record, error) {
	schema, err := schemaFor(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE "id" = $1 AND "userId" = $2`,
		schema.projection(), pq.QuoteIdentifier(schema.table))
	rec, err := scanRecord(kind, s.q.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", kind.Label(), err)
	}
	return rec, nil
}

func (s *PostgresStore) CountWhere(ctx context.Context, kind model.EntityKind, filter model.Filter) (int, error) {
	schema, err := schemaFor(kind)
	if err != nil {
		return 0, err
	}
	if err := schema.checkFilter(kind, filter); err != nil {
		return 0, err
	}

	where, args := whereClause(filter)
	query := fmt.Sprintf(`SELECT count(*) FROM %s%s`, pq.QuoteIdentifier(schema.table), where)

	var count int
	if err := s.q.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", kind.Label(), err)
	}
	return count, nil
}

func (s *PostgresStore) FindByNormalizedKey(ctx context.Context, kind model.EntityKind, filter model.Filter, normalized string) (*model.Record, error) {
	schema, err := schemaFor(kind)
	if err != nil {
		return nil, err
	}
	if err := schema.requireNormKey(kind); err != nil {
		return nil, err
	}
	if err := schema.checkFilter(kind, filter); err != nil {
		return nil, err
	}

	where, args := whereClause(filter)
	args = append(args, normalized)
	conj := " WHERE "
	if where != "" {
		conj = " AND "
	}
	query := fmt.Sprintf(`SELECT %s FROM %s%s%s%s = $%d LIMIT 1`,
		schema.projection(), pq.QuoteIdentifier(schema.table), where, conj,
		pq.QuoteIdentifier(schema.normKey), len(args))

	rec, err := scanRecord(kind, s.q.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("find %s by key: %w", kind.Label(), err)
	}
	return rec, nil
}

func (s *PostgresStore) ListOrdered(ctx context.Context, kind model.EntityKind, userID string) ([]*model.Record, error) {
	schema, err := schemaFor(kind)
	if err != nil {
		return nil, err
	}
	if err := schema.requireOrdered(kind); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE "userId" = $1 ORDER BY "order", "id"`,
		schema.projection(), pq.QuoteIdentifier(schema.table))
	rows, err := s.q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind.Label(), err)
	}
	defer rows.Close()

	var out []*model.Record
	for rows.Next() {
		rec, err := scanRecord(kind, rows)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", kind.Label(), err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", kind.Label(), err)
	}
	return out, nil
}

func (s *PostgresStore) UpdateOrder(ctx context.Context, kind model.EntityKind, id string, order int) error {
	schema, err := schemaFor(kind)
	if err != nil {
		return err
	}
	if err := schema.requireOrdered(kind); err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE %s SET "order" = $1 WHERE "id" = $2`, pq.QuoteIdentifier(schema.table))
	res, err := s.q.ExecContext(ctx, query, order, id)
	if err != nil {
		return fmt.Errorf("update %s order: %w", kind.Label(), err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s %s: %w", kind.Label(), id, database.ErrNotFound)
	}
	return nil
}

// projection selects the columns scanRecord reads, with typed placeholders
// for columns the table doesn't have.
func (s entitySchema) projection() string {
	q := pq.QuoteIdentifier
	cols := []string{q("id"), q("userId"), q(s.label), "0", "''", "''", "NULL::date", "NULL::date", "NULL::date"}
	if s.ordered {
		cols[3] = q("order")
	}
	if s.hasStatus {
		cols[4] = q("horizon")
		cols[5] = q("status")
		cols[6] = q("targetDate")
	}
	if s.weekly {
		cols[7] = q("weekStart")
	}
	if s.dated {
		cols[8] = q("date")
	}
	return strings.Join(cols, ", ")
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanRecord reads one projection row. A missing row yields nil, nil.
func scanRecord(kind model.EntityKind, row rowScanner) (*model.Record, error) {
	var (
		rec                     = model.Record{Kind: kind}
		horizon, status         string
		targetDate, week, dated sql.NullTime
	)
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Label, &rec.Order, &horizon, &status, &targetDate, &week, &dated)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rec.Horizon = model.Horizon(horizon)
	rec.Status = model.GoalStatus(status)
	rec.TargetDate = dateOrNil(targetDate)
	rec.WeekStart = dateOrNil(week)
	rec.Date = dateOrNil(dated)
	return &rec, nil
}

func dateOrNil(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	d := time.Date(t.Time.Year(), t.Time.Month(), t.Time.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

// whereClause renders filter with positional arguments.
func whereClause(f model.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(col string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf("%s = $%d", pq.QuoteIdentifier(col), len(args)))
	}

	if f.UserID != "" {
		add("userId", f.UserID)
	}
	if f.Status != "" {
		add("status", string(f.Status))
	}
	if f.WeekStart != nil {
		add("weekStart", *f.WeekStart)
	}
	if f.ExcludeID != "" {
		args = append(args, f.ExcludeID)
		conds = append(conds, fmt.Sprintf(`"id" <> $%d`, len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
