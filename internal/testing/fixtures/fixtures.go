// Package fixtures provides SurrealDB test data factories.
//
// Each factory method stores an entity with sensible defaults and returns
// its record ID. Rows are written in the same shape repository.SurrealStore
// reads: dates as YYYY-MM-DD strings, normalized keys alongside labels, and
// life area order under sortOrder.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	area := f.CreateLifeArea(t, "u1", "Health", 1)
//	goal := f.CreateGoal(t, "u1", func(o *fixtures.GoalOpts) { o.Horizon = model.HorizonWeek })
package fixtures

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/forgo/northstar/internal/calendar"
	"github.com/forgo/northstar/internal/database"
	"github.com/forgo/northstar/internal/model"
)

// Factory creates test entities in the database
type Factory struct {
	db database.Database
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{db: db}
}

// ctx returns a context with timeout
func ctx(t *testing.T) context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return c
}

// ============================================================================
// Life Area Fixtures
// ============================================================================

// CreateLifeArea stores a life area at the given order
func (f *Factory) CreateLifeArea(t *testing.T, userID, name string, order int) string {
	t.Helper()
	return f.create(t, model.KindLifeArea, map[string]interface{}{
		"userId":    userID,
		"name":      name,
		"nameNorm":  model.NormalizeKey(name),
		"sortOrder": order,
	})
}

// ============================================================================
// Goal Fixtures
// ============================================================================

// GoalOpts customizes goal creation
type GoalOpts struct {
	Title      string
	Horizon    model.Horizon
	Status     model.GoalStatus
	TargetDate *time.Time
}

// CreateGoal creates an active yearly goal with optional customizations
func (f *Factory) CreateGoal(t *testing.T, userID string, opts ...func(*GoalOpts)) string {
	t.Helper()

	o := &GoalOpts{
		Title:   "Goal",
		Horizon: model.HorizonYear,
		Status:  model.GoalStatusActive,
	}
	for _, fn := range opts {
		fn(o)
	}

	data := map[string]interface{}{
		"userId":  userID,
		"title":   o.Title,
		"horizon": string(o.Horizon),
		"status":  string(o.Status),
	}
	if o.TargetDate != nil {
		data["targetDate"] = calendar.FormatCalendarDate(*o.TargetDate)
	}
	return f.create(t, model.KindGoal, data)
}

// ============================================================================
// Weekly Fixtures
// ============================================================================

// CreateWeeklyTask stores a task with every day flag off
func (f *Factory) CreateWeeklyTask(t *testing.T, userID, title string, weekStart time.Time) string {
	t.Helper()

	data := map[string]interface{}{
		"userId":    userID,
		"title":     title,
		"titleNorm": model.NormalizeKey(title),
		"weekStart": calendar.FormatCalendarDate(weekStart),
		"goalId":    nil,
	}
	for _, day := range model.Weekdays {
		data[day] = false
	}
	return f.create(t, model.KindWeeklyTask, data)
}

// CreateFocusTheme stores a focus theme with no linked goals
func (f *Factory) CreateFocusTheme(t *testing.T, userID, title string, weekStart time.Time) string {
	t.Helper()
	return f.create(t, model.KindWeeklyFocusTheme, map[string]interface{}{
		"userId":      userID,
		"title":       title,
		"weekStart":   calendar.FormatCalendarDate(weekStart),
		"linkedGoals": []string{},
	})
}

// ============================================================================
// Records
// ============================================================================

// Put stores rec through the factory method for its kind.
func (f *Factory) Put(t *testing.T, rec model.Record) string {
	t.Helper()

	switch rec.Kind {
	case model.KindLifeArea:
		return f.CreateLifeArea(t, rec.UserID, rec.Label, rec.Order)
	case model.KindGoal:
		return f.CreateGoal(t, rec.UserID, func(o *GoalOpts) {
			o.Title = rec.Label
			o.Horizon = rec.Horizon
			o.Status = rec.Status
			o.TargetDate = rec.TargetDate
		})
	case model.KindWeeklyTask:
		return f.CreateWeeklyTask(t, rec.UserID, rec.Label, *rec.WeekStart)
	case model.KindWeeklyFocusTheme:
		return f.CreateFocusTheme(t, rec.UserID, rec.Label, *rec.WeekStart)
	}
	t.Fatalf("fixtures: no factory for %s", rec.Kind)
	return ""
}

func (f *Factory) create(t *testing.T, kind model.EntityKind, data map[string]interface{}) string {
	t.Helper()

	results, err := f.db.Query(ctx(t), "CREATE type::table($tb) CONTENT $data", map[string]interface{}{
		"tb":   string(kind),
		"data": data,
	})
	if err != nil {
		t.Fatalf("fixtures: create %s: %v", kind, err)
	}

	records := database.StatementRecords(results, 0)
	if len(records) == 0 {
		t.Fatalf("fixtures: create %s returned no record", kind)
	}
	return recordID(t, records[0]["id"])
}

func recordID(t *testing.T, id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return v.String()
	case *models.RecordID:
		return v.String()
	}
	t.Fatalf("fixtures: unexpected id type %T", id)
	return ""
}

// ErrorFromCreate runs a create expected to fail and returns its error.
func (f *Factory) ErrorFromCreate(t *testing.T, kind model.EntityKind, data map[string]interface{}) error {
	t.Helper()

	_, err := f.db.Query(ctx(t), "CREATE type::table($tb) CONTENT $data", map[string]interface{}{
		"tb":   string(kind),
		"data": data,
	})
	if err == nil {
		t.Fatalf("fixtures: expected create %s to fail", kind)
	}
	return fmt.Errorf("create %s: %w", kind, err)
}
