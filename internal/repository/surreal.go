package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/forgo/northstar/internal/database"
	"github.com/forgo/northstar/internal/model"
)

// surrealSchema defines the tables and the unique indexes named in
// database.Catalog.
var surrealSchema = []string{
	`DEFINE TABLE IF NOT EXISTS life_area SCHEMALESS`,
	`DEFINE INDEX IF NOT EXISTS LifeArea_userId_nameNorm_key ON TABLE life_area FIELDS userId, nameNorm UNIQUE`,
	`DEFINE TABLE IF NOT EXISTS goal SCHEMALESS`,
	`DEFINE INDEX IF NOT EXISTS Goal_userId_status_idx ON TABLE goal FIELDS userId, status`,
	`DEFINE TABLE IF NOT EXISTS weekly_task SCHEMALESS`,
	`DEFINE INDEX IF NOT EXISTS WeeklyTask_userId_weekStart_titleNorm_key ON TABLE weekly_task FIELDS userId, weekStart, titleNorm UNIQUE`,
	`DEFINE TABLE IF NOT EXISTS weekly_focus_theme SCHEMALESS`,
	`DEFINE INDEX IF NOT EXISTS WeeklyFocusTheme_userId_weekStart_key ON TABLE weekly_focus_theme FIELDS userId, weekStart UNIQUE`,
	`DEFINE TABLE IF NOT EXISTS signal SCHEMALESS`,
	`DEFINE INDEX IF NOT EXISTS Signal_userId_date_type_key ON TABLE signal FIELDS userId, date, type UNIQUE`,
}

// ApplySurrealSchema defines tables and indexes in one atomic batch.
func ApplySurrealSchema(ctx context.Context, db database.Database) error {
	batch := database.NewAtomicBatch()
	for _, stmt := range surrealSchema {
		batch.Add(stmt, nil)
	}
	if err := batch.Execute(ctx, db); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// SurrealStore implements database.Store and database.TxRunner on SurrealDB.
//
// Transactions are batch-based: inside WithinTx reads see committed data and
// order updates are buffered until fn returns.
type SurrealStore struct {
	db database.Database
	tx database.Transaction
}

// NewSurrealStore creates a new SurrealDB store
func NewSurrealStore(db database.Database) *SurrealStore {
	return &SurrealStore{db: db}
}

// WithinTx implements database.TxRunner
func (s *SurrealStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx database.Store) error) error {
	return withinTx(ctx, s.db, func(tx database.Transaction) error {
		return fn(ctx, &SurrealStore{db: s.db, tx: tx})
	})
}

func (s *SurrealStore) FindOwned(ctx context.Context, kind model.EntityKind, id, userID string) (*model.Record, error) {
	schema, err := schemaFor(kind)
	if err != nil {
		return nil, err
	}

	query := `SELECT * FROM type::record($id) WHERE userId = $userId`
	vars := map[string]interface{}{
		"id":     recordID(kind, id),
		"userId": userID,
	}

	result, err := s.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	return parseSurrealRecord(kind, schema, data), nil
}

func (s *SurrealStore) CountWhere(ctx context.Context, kind model.EntityKind, filter model.Filter) (int, error) {
	schema, err := schemaFor(kind)
	if err != nil {
		return 0, err
	}
	if err := schema.checkFilter(kind, filter); err != nil {
		return 0, err
	}

	where, vars := surrealWhere(kind, filter)
	query := `SELECT count() AS count FROM type::table($tb)` + where + ` GROUP ALL`

	result, err := s.db.Query(ctx, query, vars)
	if err != nil {
		return 0, err
	}
	return extractCount(result), nil
}

func (s *SurrealStore) FindByNormalizedKey(ctx context.Context, kind model.EntityKind, filter model.Filter, normalized string) (*model.Record, error) {
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

	where, vars := surrealWhere(kind, filter)
	vars["norm"] = normalized
	conj := " WHERE "
	if where != "" {
		conj = " AND "
	}
	query := `SELECT * FROM type::table($tb)` + where + conj + schema.normKey + ` = $norm LIMIT 1`

	result, err := s.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	records := database.StatementRecords(result, 0)
	if len(records) == 0 {
		return nil, nil
	}
	return parseSurrealRecord(kind, schema, records[0]), nil
}

func (s *SurrealStore) ListOrdered(ctx context.Context, kind model.EntityKind, userID string) ([]*model.Record, error) {
	schema, err := schemaFor(kind)
	if err != nil {
		return nil, err
	}
	if err := schema.requireOrdered(kind); err != nil {
		return nil, err
	}

	query := `SELECT * FROM type::table($tb) WHERE userId = $userId ORDER BY sortOrder ASC, id ASC`
	vars := map[string]interface{}{"tb": string(kind), "userId": userID}

	result, err := s.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := database.StatementRecords(result, 0)
	out := make([]*model.Record, 0, len(records))
	for _, data := range records {
		out = append(out, parseSurrealRecord(kind, schema, data))
	}
	return out, nil
}

func (s *SurrealStore) UpdateOrder(ctx context.Context, kind model.EntityKind, id string, order int) error {
	schema, err := schemaFor(kind)
	if err != nil {
		return err
	}
	if err := schema.requireOrdered(kind); err != nil {
		return err
	}

	query := `UPDATE type::record($id) SET sortOrder = $order`
	vars := map[string]interface{}{"id": recordID(kind, id), "order": order}

	if s.tx != nil {
		return s.tx.Execute(ctx, query, vars)
	}
	return s.db.Execute(ctx, query, vars)
}

// surrealWhere renders filter as a WHERE clause with named variables. The
// table variable $tb is always set.
func surrealWhere(kind model.EntityKind, f model.Filter) (string, map[string]interface{}) {
	vars := map[string]interface{}{"tb": string(kind)}
	var conds []string

	if f.UserID != "" {
		conds = append(conds, "userId = $userId")
		vars["userId"] = f.UserID
	}
	if f.Status != "" {
		conds = append(conds, "status = $status")
		vars["status"] = string(f.Status)
	}
	if f.WeekStart != nil {
		conds = append(conds, "weekStart = $weekStart")
		vars["weekStart"] = f.WeekStart.Format("2006-01-02")
	}
	if f.ExcludeID != "" {
		conds = append(conds, "id != type::record($excludeId)")
		vars["excludeId"] = recordID(kind, f.ExcludeID)
	}

	if len(conds) == 0 {
		return "", vars
	}
	return " WHERE " + strings.Join(conds, " AND "), vars
}

func parseSurrealRecord(kind model.EntityKind, schema entitySchema, data map[string]interface{}) *model.Record {
	return &model.Record{
		Kind:       kind,
		ID:         extractRecordID(data["id"]),
		UserID:     getString(data, "userId"),
		Label:      getString(data, schema.label),
		Order:      getInt(data, "sortOrder"),
		Horizon:    model.Horizon(getString(data, "horizon")),
		Status:     model.GoalStatus(getString(data, "status")),
		TargetDate: getDate(data, "targetDate"),
		WeekStart:  getDate(data, "weekStart"),
		Date:       getDate(data, "date"),
	}
}
