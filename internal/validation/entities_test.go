package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/northstar/internal/model"
)

const (
	goalA = "3f2504e0-4f89-41d3-9a0c-0305e82c3301"
	goalB = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	goalC = "f47ac10b-58cc-4372-a567-0e02b2c3d479"
	goalD = "16fd2706-8baf-433b-82eb-8c7fada847da"
)

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fullTask() Input {
	return Input{
		"title":     "Task",
		"weekStart": "2025-01-07",
		"monday":    true,
		"tuesday":   false,
		"wednesday": false,
		"thursday":  false,
		"friday":    false,
		"saturday":  false,
		"sunday":    false,
	}
}

// ============================================================================
// LifeArea
// ============================================================================

func TestValidateLifeAreaInput_Create(t *testing.T) {
	t.Parallel()

	res := ValidateLifeAreaInput(Input{"name": "  Health ", "color": "#4F46E5", "vision": "  "}, Options{})
	require.True(t, res.OK, res.Error)
	assert.Equal(t, model.Given("Health"), res.Data.Name)
	assert.Equal(t, "#4F46E5", *res.Data.Color.Value)
	assert.True(t, res.Data.Vision.Present)
	assert.Nil(t, res.Data.Vision.Value)
	assert.True(t, res.Data.Strategy.Present)
	assert.Nil(t, res.Data.Strategy.Value)
	assert.False(t, res.Data.Order.Present)
}

func TestValidateLifeAreaInput_FieldOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  Input
		want string
	}{
		{"missing name", Input{}, "Name is required"},
		{"blank name first", Input{"name": " ", "color": "red"}, "Name can't be empty"},
		{"name too long", Input{"name": strings.Repeat("a", 51)}, "Name must be 50 characters or less"},
		{"bad color before vision", Input{"name": "Health", "color": "red", "vision": strings.Repeat("a", 501)}, model.MsgColor},
		{"vision too long", Input{"name": "Health", "vision": strings.Repeat("a", 501)}, "Vision must be 500 characters or less"},
		{"strategy too long", Input{"name": "Health", "strategy": strings.Repeat("a", 501)}, "Strategy must be 500 characters or less"},
		{"fractional order", Input{"name": "Health", "order": 1.5}, model.MsgOrderWhole},
		{"text order", Input{"name": "Health", "order": "2"}, model.MsgOrderWhole},
	}
	for _, tt := range tests {
		res := ValidateLifeAreaInput(tt.raw, Options{})
		assert.False(t, res.OK, tt.name)
		assert.Equal(t, tt.want, res.Error, tt.name)
	}
}

func TestValidateLifeAreaInput_LengthBoundary(t *testing.T) {
	t.Parallel()

	res := ValidateLifeAreaInput(Input{"name": strings.Repeat("a", 50), "vision": strings.Repeat("v", 500)}, Options{})
	assert.True(t, res.OK, res.Error)
}

func TestValidateLifeAreaInput_PartialOmitsUnsupplied(t *testing.T) {
	t.Parallel()

	res := ValidateLifeAreaInput(Input{"color": nil, "order": -3}, Options{Partial: true})
	require.True(t, res.OK, res.Error)
	assert.False(t, res.Data.Name.Present)
	assert.True(t, res.Data.Color.Present)
	assert.Nil(t, res.Data.Color.Value)
	assert.False(t, res.Data.Vision.Present)
	assert.Equal(t, model.Given(-3), res.Data.Order)
}

// ============================================================================
// Goal
// ============================================================================

func TestValidateGoalInput_CreateNormalizes(t *testing.T) {
	t.Parallel()

	res := ValidateGoalInput(Input{"title": "  Learn Spanish  ", "horizon": "YEAR", "status": "active"}, Options{})
	require.True(t, res.OK, res.Error)

	assert.Equal(t, map[string]any{
		"title":       "Learn Spanish",
		"description": nil,
		"horizon":     "YEAR",
		"status":      "active",
		"targetDate":  nil,
		"lifeAreaId":  nil,
	}, res.Data.Raw())
}

func TestValidateGoalInput_FieldOrder(t *testing.T) {
	t.Parallel()

	base := func(kv ...any) Input {
		in := Input{"title": "Run", "horizon": "WEEK", "status": "active"}
		for i := 0; i < len(kv); i += 2 {
			in[kv[i].(string)] = kv[i+1]
		}
		return in
	}

	tests := []struct {
		name string
		raw  Input
		want string
	}{
		{"missing title", Input{"horizon": "YEAR", "status": "active"}, "Title is required"},
		{"title too long", base("title", strings.Repeat("t", 101)), "Title must be 100 characters or less"},
		{"blank description", base("description", "  "), "Description can't be empty"},
		{"description too long", base("description", strings.Repeat("d", 1001)), "Description must be 1000 characters or less"},
		{"missing horizon", Input{"title": "Run", "status": "active"}, "Horizon must be one of: YEAR, SIX_MONTH, MONTH, WEEK"},
		{"bad status", base("status", "ACTIVE"), "Status must be one of: active, paused, done"},
		{"impossible target date", base("targetDate", "2025-02-30"), "Target date must be in YYYY-MM-DD format"},
		{"malformed target date", base("targetDate", "2025/02/03"), "Target date must be in YYYY-MM-DD format"},
		{"bad life area", base("lifeAreaId", "abc"), "Life area ID must be a valid UUID"},
	}
	for _, tt := range tests {
		res := ValidateGoalInput(tt.raw, Options{})
		assert.False(t, res.OK, tt.name)
		assert.Equal(t, tt.want, res.Error, tt.name)
	}
}

func TestValidateGoalInput_TargetDateAndLifeArea(t *testing.T) {
	t.Parallel()

	res := ValidateGoalInput(Input{
		"title":      "Run",
		"horizon":    "WEEK",
		"status":     "paused",
		"targetDate": "2025-01-10",
		"lifeAreaId": " " + goalA + " ",
	}, Options{})
	require.True(t, res.OK, res.Error)
	assert.Equal(t, utcDate(2025, time.January, 10), *res.Data.TargetDate.Value)
	assert.Equal(t, goalA, *res.Data.LifeAreaID.Value)
}

func TestValidateGoalInput_Partial(t *testing.T) {
	t.Parallel()

	res := ValidateGoalInput(Input{"status": "done"}, Options{Partial: true})
	require.True(t, res.OK, res.Error)
	assert.Equal(t, map[string]any{"status": "done"}, res.Data.Raw())

	res = ValidateGoalInput(Input{"title": nil}, Options{Partial: true})
	assert.Equal(t, "Title is required", res.Error)
}

// ============================================================================
// WeeklyTask
// ============================================================================

func TestValidateWeeklyTaskInput_AcceptsAnyRealDate(t *testing.T) {
	t.Parallel()

	res := ValidateWeeklyTaskInput(fullTask(), Options{})
	require.True(t, res.OK, res.Error)
	assert.Equal(t, utcDate(2025, time.January, 7), res.Data.WeekStart.Value)
	assert.Equal(t, model.Given(true), res.Data.Day("monday"))
	assert.Equal(t, model.Given(false), res.Data.Day("sunday"))
	assert.True(t, res.Data.GoalID.Present)
	assert.Nil(t, res.Data.GoalID.Value)
}

func TestValidateWeeklyTaskInput_DayFlags(t *testing.T) {
	t.Parallel()

	missing := fullTask()
	delete(missing, "wednesday")
	res := ValidateWeeklyTaskInput(missing, Options{})
	assert.Equal(t, "Wednesday is required", res.Error)

	nullDay := fullTask()
	nullDay["friday"] = nil
	res = ValidateWeeklyTaskInput(nullDay, Options{})
	assert.Equal(t, "Friday is required", res.Error)

	notBool := fullTask()
	notBool["tuesday"] = "yes"
	notBool["saturday"] = 1
	res = ValidateWeeklyTaskInput(notBool, Options{})
	assert.Equal(t, "Tuesday must be true or false", res.Error)
}

func TestValidateWeeklyTaskInput_FieldOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(Input)
		want   string
	}{
		{"title too long", func(in Input) { in["title"] = strings.Repeat("t", 81); in["weekStart"] = "bad" }, "Title must be 80 characters or less"},
		{"bad week", func(in Input) { in["weekStart"] = "2025-13-01"; delete(in, "monday") }, "Week start must be in YYYY-MM-DD format"},
		{"missing week", func(in Input) { delete(in, "weekStart") }, "Week start is required"},
		{"bad goal", func(in Input) { in["goalId"] = "nope" }, "Goal ID must be a valid UUID"},
	}
	for _, tt := range tests {
		in := fullTask()
		tt.mutate(in)
		res := ValidateWeeklyTaskInput(in, Options{})
		assert.Equal(t, tt.want, res.Error, tt.name)
	}

	res := ValidateWeeklyTaskInput(Input{"title": strings.Repeat("t", 80), "weekStart": "2025-01-06",
		"monday": true, "tuesday": true, "wednesday": true, "thursday": true, "friday": true,
		"saturday": true, "sunday": true}, Options{})
	assert.True(t, res.OK, res.Error)
}

func TestValidateWeeklyTaskInput_Partial(t *testing.T) {
	t.Parallel()

	res := ValidateWeeklyTaskInput(Input{"sunday": true}, Options{Partial: true})
	require.True(t, res.OK, res.Error)
	assert.Equal(t, map[string]any{"sunday": true}, res.Data.Raw())
}

// ============================================================================
// WeeklyFocusTheme
// ============================================================================

func TestValidateWeeklyFocusThemeInput(t *testing.T) {
	t.Parallel()

	res := ValidateWeeklyFocusThemeInput(Input{"title": " Rest ", "weekStart": "2025-01-06"}, Options{})
	require.True(t, res.OK, res.Error)
	assert.Equal(t, map[string]any{
		"title":       "Rest",
		"note":        nil,
		"weekStart":   "2025-01-06",
		"linkedGoals": []any{},
	}, res.Data.Raw())

	res = ValidateWeeklyFocusThemeInput(Input{"title": "Rest", "weekStart": "2025-01-07"}, Options{})
	assert.Equal(t, "Week start must be a Monday", res.Error)

	res = ValidateWeeklyFocusThemeInput(Input{"title": "Rest", "note": strings.Repeat("n", 401), "weekStart": "x"}, Options{})
	assert.Equal(t, "Note must be 400 characters or less", res.Error)

	res = ValidateWeeklyFocusThemeInput(Input{"title": strings.Repeat("t", 61)}, Options{})
	assert.Equal(t, "Title must be 60 characters or less", res.Error)

	res = ValidateWeeklyFocusThemeInput(Input{"title": "Rest", "weekStart": "2025-01-06", "linkedGoals": "x"}, Options{})
	assert.Equal(t, model.MsgLinkedGoalsList, res.Error)
}

func TestValidateWeeklyFocusThemeInput_PartialLeavesLinksAlone(t *testing.T) {
	t.Parallel()

	res := ValidateWeeklyFocusThemeInput(Input{"note": ""}, Options{Partial: true})
	require.True(t, res.OK, res.Error)
	assert.False(t, res.Data.LinkedGoals.Present)
	assert.True(t, res.Data.Note.Present)
	assert.Nil(t, res.Data.Note.Value)
}

// ============================================================================
// LinkedGoals
// ============================================================================

func TestValidateLinkedGoals(t *testing.T) {
	t.Parallel()

	for _, ok := range [][]any{{}, {goalA}, {goalA, goalB, goalC}} {
		res := ValidateLinkedGoals(ok)
		assert.True(t, res.OK, res.Error)
		assert.Len(t, res.Data, len(ok))
	}

	tests := []struct {
		name string
		raw  any
		want string
	}{
		{"not a list", goalA, model.MsgLinkedGoalsList},
		{"null", nil, model.MsgLinkedGoalsList},
		{"four", []any{goalA, goalB, goalC, goalD}, model.MsgLinkedGoalsMax},
		{"bad element", []any{goalA, "x"}, model.MsgLinkedGoalsUUID},
		{"non-string element", []any{goalA, 3}, model.MsgLinkedGoalsUUID},
		{"duplicate pair", []any{goalA, goalA}, model.MsgLinkedGoalsDuplicate},
		{"duplicate after trim", []string{goalA, " " + goalA}, model.MsgLinkedGoalsDuplicate},
	}
	for _, tt := range tests {
		res := ValidateLinkedGoals(tt.raw)
		assert.False(t, res.OK, tt.name)
		assert.Equal(t, tt.want, res.Error, tt.name)
	}
}

// ============================================================================
// Signal
// ============================================================================

func TestValidateSignalInput_Sleep(t *testing.T) {
	t.Parallel()

	for _, v := range []any{0, 0.25, 7.5, 14} {
		res := ValidateSignalInput(Input{"type": "SLEEP", "date": "2025-01-06", "value": v}, Options{})
		assert.True(t, res.OK, "%v: %s", v, res.Error)
	}

	tests := []struct {
		value any
		want  string
	}{
		{15, model.MsgSleepMax},
		{14.01, model.MsgSleepMax},
		{-0.01, model.MsgSleepStep},
		{-1, model.MsgSleepStep},
		{7.3, model.MsgSleepStep},
		{nil, model.MsgValueRequired},
		{"8", model.MsgValueNumber},
	}
	for _, tt := range tests {
		res := ValidateSignalInput(Input{"type": "SLEEP", "date": "2025-01-06", "value": tt.value}, Options{})
		assert.Equal(t, tt.want, res.Error, "%v", tt.value)
	}
}

func TestValidateSignalInput_Wellbeing(t *testing.T) {
	t.Parallel()

	for _, v := range []any{1, 5, 10.0} {
		res := ValidateSignalInput(Input{"type": "WELLBEING", "date": "2025-01-06", "value": v}, Options{})
		assert.True(t, res.OK, "%v: %s", v, res.Error)
	}
	for _, v := range []any{0, 11, 5.5} {
		res := ValidateSignalInput(Input{"type": "WELLBEING", "date": "2025-01-06", "value": v}, Options{})
		assert.Equal(t, model.MsgWellbeing, res.Error, "%v", v)
	}
}

func TestValidateSignalInput_FieldOrderAndContext(t *testing.T) {
	t.Parallel()

	res := ValidateSignalInput(Input{"date": "bad", "value": 99}, Options{})
	assert.Equal(t, "Type must be one of: SLEEP, WELLBEING", res.Error)

	res = ValidateSignalInput(Input{"type": "SLEEP", "date": "2025-06-00", "value": 99}, Options{})
	assert.Equal(t, "Date must be in YYYY-MM-DD format", res.Error)

	res = ValidateSignalInput(Input{"type": "SLEEP", "date": "2025-06-01"}, Options{})
	assert.Equal(t, model.MsgValueRequired, res.Error)

	res = ValidateSignalInput(Input{"value": 8}, Options{Partial: true})
	assert.Equal(t, model.MsgTypeNeededForValue, res.Error)

	res = ValidateSignalInput(Input{"value": 12}, Options{Partial: true, ExistingType: model.SignalWellbeing})
	assert.Equal(t, model.MsgWellbeing, res.Error)

	res = ValidateSignalInput(Input{"value": 8.75}, Options{Partial: true, ExistingType: model.SignalSleep})
	require.True(t, res.OK, res.Error)
	assert.Equal(t, model.Given(8.75), res.Data.Value)
	assert.False(t, res.Data.Type.Present)
}

// ============================================================================
// ValidateWeekStart
// ============================================================================

func TestValidateWeekStart(t *testing.T) {
	t.Parallel()

	res := ValidateWeekStart("2025-01-06")
	require.True(t, res.OK)
	assert.Equal(t, utcDate(2025, time.January, 6), res.Data)

	for _, day := range []string{"2025-01-07", "2025-01-08", "2025-01-09", "2025-01-10", "2025-01-11", "2025-01-12"} {
		assert.Equal(t, "Week start must be a Monday", ValidateWeekStart(day).Error, day)
	}
	for _, bad := range []any{"2025-02-30", "2025-13-01", "2025-00-15", "2025-06-00", "06/01/2025", 20250106} {
		assert.Equal(t, "Week start must be in YYYY-MM-DD format", ValidateWeekStart(bad).Error, "%v", bad)
	}
	assert.Equal(t, "Week start is required", ValidateWeekStart(nil).Error)
}
