package repository

import (
	"fmt"

	"github.com/forgo/northstar/internal/database"
	"github.com/forgo/northstar/internal/model"
)

// entitySchema describes how a kind is stored. Column names are the Postgres
// ones; SurrealDB fields use the same names except the order field.
type entitySchema struct {
	table     string
	label     string
	normKey   string // normalized unique column
	ordered   bool
	hasStatus bool
	weekly    bool
	dated     bool
}

var schemas = map[model.EntityKind]entitySchema{
	model.KindLifeArea:         {table: "LifeArea", label: "name", normKey: "nameNorm", ordered: true},
	model.KindGoal:             {table: "Goal", label: "title", hasStatus: true},
	model.KindWeeklyTask:       {table: "WeeklyTask", label: "title", normKey: "titleNorm", weekly: true},
	model.KindWeeklyFocusTheme: {table: "WeeklyFocusTheme", label: "title", weekly: true},
	model.KindSignal:           {table: "Signal", label: "type", dated: true},
}

func schemaFor(kind model.EntityKind) (entitySchema, error) {
	s, ok := schemas[kind]
	if !ok {
		return entitySchema{}, fmt.Errorf("%w: unknown entity kind %q", database.ErrUnsupported, kind)
	}
	return s, nil
}

func (s entitySchema) checkFilter(kind model.EntityKind, f model.Filter) error {
	if f.Status != "" && !s.hasStatus {
		return fmt.Errorf("%w: %s has no status", database.ErrUnsupported, kind.Label())
	}
	if f.WeekStart != nil && !s.weekly {
		return fmt.Errorf("%w: %s has no week", database.ErrUnsupported, kind.Label())
	}
	return nil
}

func (s entitySchema) requireNormKey(kind model.EntityKind) error {
	if s.normKey == "" {
		return fmt.Errorf("%w: %s has no normalized key", database.ErrUnsupported, kind.Label())
	}
	return nil
}

func (s entitySchema) requireOrdered(kind model.EntityKind) error {
	if !s.ordered {
		return fmt.Errorf("%w: %s is not ordered", database.ErrUnsupported, kind.Label())
	}
	return nil
}

// matches applies a filter to a record in memory.
func matches(rec *model.Record, f model.Filter) bool {
	if f.UserID != "" && rec.UserID != f.UserID {
		return false
	}
	if f.Status != "" && rec.Status != f.Status {
		return false
	}
	if f.WeekStart != nil && (rec.WeekStart == nil || !rec.WeekStart.Equal(*f.WeekStart)) {
		return false
	}
	if f.ExcludeID != "" && rec.ID == f.ExcludeID {
		return false
	}
	return true
}
