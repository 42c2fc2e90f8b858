package service

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/forgo/northstar/internal/metrics"
	"github.com/forgo/northstar/internal/model"
)

// ============================================================================
// MapStorageErrorToUserCopy
// ============================================================================

func TestMapStorageErrorToUserCopy_LifeAreaColumns(t *testing.T) {
	t.Parallel()

	err := map[string]any{
		"code": "P2002",
		"meta": map[string]any{"target": []any{"userId", "nameNorm"}},
	}
	got := MapStorageErrorToUserCopy(err, CopyContext{LifeAreaName: "Health"})
	assert.Equal(t, "You already have a life area named 'Health'", got)
}

func TestMapStorageErrorToUserCopy(t *testing.T) {
	t.Parallel()

	full := CopyContext{
		LifeAreaName: "Health",
		TaskTitle:    "Stretch",
		WeekStart:    "2025-01-06",
		SignalType:   "WELLBEING",
		SignalDate:   "2025-01-07",
	}

	tests := []struct {
		name string
		err  any
		ctx  CopyContext
		want string
	}{
		{
			name: "life area without context",
			err:  map[string]any{"code": "P2002", "meta": map[string]any{"target": []any{"user_id", "name_norm"}}},
			want: "You already have a life area named that name",
		},
		{
			name: "task by columns",
			err:  map[string]any{"code": "P2002", "meta": map[string]any{"target": []string{"userId", "weekStart", "titleNorm"}}},
			ctx:  full,
			want: "You already have 'Stretch' for the week of 2025-01-06",
		},
		{
			name: "task without context",
			err:  map[string]any{"code": "P2002", "meta": map[string]any{"target": "WeeklyTask_userId_weekStart_titleNorm_key"}},
			want: "You already have this task for this week",
		},
		{
			name: "focus theme by constraint name",
			err:  map[string]any{"code": "P2002", "meta": map[string]any{"target": "WeeklyFocusTheme_userId_weekStart_key"}},
			ctx:  full,
			want: "You already have a focus theme for the week of 2025-01-06",
		},
		{
			name: "signal from pgx",
			err:  fmt.Errorf("insert signal: %w", &pgconn.PgError{Code: "23505", ConstraintName: "Signal_userId_date_type_key"}),
			ctx:  full,
			want: "You already logged wellbeing for 2025-01-07",
		},
		{
			name: "monday check",
			err:  &pgconn.PgError{Code: "23514", ConstraintName: "WeeklyTask_weekStart_monday_check"},
			want: "Week start must be a Monday",
		},
		{
			name: "sleep check",
			err:  map[string]any{"code": "P2004", "meta": map[string]any{"constraint": "Signal_sleep_value_check"}},
			want: model.MsgSleepStep,
		},
		{
			name: "wellbeing check",
			err:  &pgconn.PgError{Code: "23514", ConstraintName: "Signal_wellbeing_value_check"},
			want: "Wellbeing must be a whole number from 1 to 10",
		},
		{
			name: "blank name check",
			err:  &pgconn.PgError{Code: "23514", ConstraintName: "LifeArea_name_not_blank"},
			want: "Name can't be empty",
		},
		{
			name: "blank title check",
			err:  &pgconn.PgError{Code: "23514", ConstraintName: "Goal_title_not_blank"},
			want: "Title can't be empty",
		},
		{
			name: "color check",
			err:  &pgconn.PgError{Code: "23514", ConstraintName: "LifeArea_color_hex_check"},
			want: "Color must be a hex code like #4F46E5",
		},
		{
			name: "linked goals check",
			err:  &pgconn.PgError{Code: "23514", ConstraintName: "WeeklyFocusTheme_linkedGoals_max_check"},
			want: "Can't link more than 3 goals",
		},
		{
			name: "surreal index",
			err:  errors.New("Database index `LifeArea_userId_nameNorm_key` already contains ['u1', 'health']"),
			ctx:  full,
			want: "You already have a life area named 'Health'",
		},
		{name: "nil", err: nil, want: model.MsgSomethingWentWrong},
		{name: "string", err: "boom", want: model.MsgSomethingWentWrong},
		{name: "number", err: 42, want: model.MsgSomethingWentWrong},
		{name: "network", err: errors.New("dial tcp: connection refused"), want: model.MsgSomethingWentWrong},
		{
			name: "unknown constraint",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "Goal_something_key"},
			want: model.MsgSomethingWentWrong,
		},
		{
			name: "unknown columns",
			err:  map[string]any{"code": "P2002", "meta": map[string]any{"target": []any{"email"}}},
			want: model.MsgSomethingWentWrong,
		},
		{
			name: "unique code with check constraint",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "Signal_sleep_value_check"},
			want: model.MsgSomethingWentWrong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapStorageErrorToUserCopy(tt.err, tt.ctx))
		})
	}
}

// ============================================================================
// UserCopy
// ============================================================================

func TestUserCopy(t *testing.T) {
	t.Parallel()

	m := metrics.New(prometheus.NewRegistry())
	inv := NewInvariants(InvariantsConfig{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics: m,
	})

	rule := fmt.Errorf("create task: %w", newRuleError(ErrLimitReached, "You can have up to 7 tasks per week"))
	assert.Equal(t, "You can have up to 7 tasks per week", inv.UserCopy(rule, CopyContext{}))

	unique := &pgconn.PgError{Code: "23505", ConstraintName: "LifeArea_userId_nameNorm_key"}
	assert.Equal(t, "You already have a life area named 'Work'", inv.UserCopy(unique, CopyContext{LifeAreaName: "Work"}))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StorageErrorsMapped.WithLabelValues("unique")))

	assert.Equal(t, model.MsgSomethingWentWrong, inv.UserCopy(errors.New("timeout"), CopyContext{}))
	assert.Equal(t, "", inv.UserCopy(nil, CopyContext{}))
}
