package repository

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/forgo/northstar/internal/calendar"
	"github.com/forgo/northstar/internal/database"
	"github.com/forgo/northstar/internal/model"
)

// extractRecordID extracts record ID from SurrealDB result
func extractRecordID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return v.String()
	case *models.RecordID:
		if v != nil {
			return v.String()
		}
	case map[string]interface{}:
		// Handle {"tb": "table", "id": "xxx"} format
		if tb, ok := v["tb"].(string); ok {
			if id, ok := v["id"].(string); ok {
				return tb + ":" + id
			}
		}
	}

	// Try JSON marshaling as fallback
	if data, err := json.Marshal(id); err == nil {
		var recordID models.RecordID
		if err := json.Unmarshal(data, &recordID); err == nil {
			return recordID.String()
		}
	}

	return ""
}

// recordID qualifies a bare id with its table.
func recordID(kind model.EntityKind, id string) string {
	if strings.Contains(id, ":") {
		return id
	}
	return string(kind) + ":" + id
}

// extractCount extracts count from a `SELECT count() ... GROUP ALL` result
func extractCount(results []interface{}) int {
	records := database.StatementRecords(results, 0)
	if len(records) == 0 {
		return 0
	}
	return extractCountValue(records[0]["count"])
}

// extractCountValue converts various numeric types to int
func extractCountValue(v interface{}) int {
	switch c := v.(type) {
	case float64:
		return int(c)
	case float32:
		return int(c)
	case int:
		return c
	case int64:
		return int(c)
	case uint64:
		return int(c)
	}
	return 0
}

// getString extracts a string value from a map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getInt extracts an int value from a map
func getInt(m map[string]interface{}, key string) int {
	return extractCountValue(m[key])
}

// getDate extracts a calendar date stored as YYYY-MM-DD, an RFC 3339
// timestamp or a SurrealDB datetime. Returns nil when absent.
func getDate(m map[string]interface{}, key string) *time.Time {
	switch v := m[key].(type) {
	case string:
		if t, err := calendar.ParseCalendarDate(v); err == nil {
			return &t
		}
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			t = t.UTC()
			return &t
		}
	case time.Time:
		t := v.UTC()
		return &t
	case models.CustomDateTime:
		t := v.Time.UTC()
		return &t
	case *models.CustomDateTime:
		if v != nil {
			t := v.Time.UTC()
			return &t
		}
	}
	return nil
}

// withinTx runs fn in a SurrealDB batch transaction, rolling back when fn fails
func withinTx(ctx context.Context, db database.Database, fn func(tx database.Transaction) error) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}
