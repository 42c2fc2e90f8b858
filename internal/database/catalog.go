package database

import (
	"sort"
	"strings"

	"github.com/forgo/northstar/internal/model"
)

// Rule identifies what a constraint protects. The user copy for a violation
// is chosen by rule.
type Rule string

const (
	RuleLifeAreaNameUnique   Rule = "life_area_name_unique"
	RuleTaskTitleUnique      Rule = "weekly_task_title_unique"
	RuleFocusThemeWeekUnique Rule = "focus_theme_week_unique"
	RuleSignalDayUnique      Rule = "signal_day_unique"

	RuleLifeAreaNameNotBlank Rule = "life_area_name_not_blank"
	RuleLifeAreaColorHex     Rule = "life_area_color_hex"
	RuleGoalTitleNotBlank    Rule = "goal_title_not_blank"
	RuleWeekStartMonday      Rule = "week_start_monday"
	RuleLinkedGoalsMax       Rule = "linked_goals_max"
	RuleSignalSleepValue     Rule = "signal_sleep_value"
	RuleSignalWellbeingValue Rule = "signal_wellbeing_value"
)

// Constraint is a named storage constraint.
type Constraint struct {
	Name    string
	Kind    ViolationKind
	Entity  model.EntityKind
	Columns []string // unique constraints only
	Rule    Rule
}

// Catalog lists every constraint declared by the Postgres schema and the
// SurrealDB index definitions.
var Catalog = []Constraint{
	{Name: "LifeArea_userId_nameNorm_key", Kind: ViolationUnique, Entity: model.KindLifeArea,
		Columns: []string{"userId", "nameNorm"}, Rule: RuleLifeAreaNameUnique},
	{Name: "WeeklyTask_userId_weekStart_titleNorm_key", Kind: ViolationUnique, Entity: model.KindWeeklyTask,
		Columns: []string{"userId", "weekStart", "titleNorm"}, Rule: RuleTaskTitleUnique},
	{Name: "WeeklyFocusTheme_userId_weekStart_key", Kind: ViolationUnique, Entity: model.KindWeeklyFocusTheme,
		Columns: []string{"userId", "weekStart"}, Rule: RuleFocusThemeWeekUnique},
	{Name: "Signal_userId_date_type_key", Kind: ViolationUnique, Entity: model.KindSignal,
		Columns: []string{"userId", "date", "type"}, Rule: RuleSignalDayUnique},

	{Name: "LifeArea_name_not_blank", Kind: ViolationCheck, Entity: model.KindLifeArea, Rule: RuleLifeAreaNameNotBlank},
	{Name: "LifeArea_color_hex_check", Kind: ViolationCheck, Entity: model.KindLifeArea, Rule: RuleLifeAreaColorHex},
	{Name: "Goal_title_not_blank", Kind: ViolationCheck, Entity: model.KindGoal, Rule: RuleGoalTitleNotBlank},
	{Name: "WeeklyTask_weekStart_monday_check", Kind: ViolationCheck, Entity: model.KindWeeklyTask, Rule: RuleWeekStartMonday},
	{Name: "WeeklyFocusTheme_weekStart_monday_check", Kind: ViolationCheck, Entity: model.KindWeeklyFocusTheme, Rule: RuleWeekStartMonday},
	{Name: "WeeklyFocusTheme_linkedGoals_max_check", Kind: ViolationCheck, Entity: model.KindWeeklyFocusTheme, Rule: RuleLinkedGoalsMax},
	{Name: "Signal_sleep_value_check", Kind: ViolationCheck, Entity: model.KindSignal, Rule: RuleSignalSleepValue},
	{Name: "Signal_wellbeing_value_check", Kind: ViolationCheck, Entity: model.KindSignal, Rule: RuleSignalWellbeingValue},
}

var (
	uniqueByColumns = map[string]Constraint{}
	uniqueByName    = map[string]Constraint{}
	checkByName     = map[string]Constraint{}
)

func init() {
	for _, c := range Catalog {
		switch c.Kind {
		case ViolationUnique:
			uniqueByColumns[ColumnKey(c.Columns)] = c
			uniqueByName[c.Name] = c
		case ViolationCheck:
			checkByName[c.Name] = c
		}
	}
}

// ColumnKey normalizes a column list so camelCase and snake_case spellings in
// any order share one key: lowercase, underscores dropped, sorted, joined by
// commas.
func ColumnKey(columns []string) string {
	keys := make([]string, 0, len(columns))
	for _, c := range columns {
		c = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(c), "_", ""))
		c = strings.Trim(c, `"`)
		if c != "" {
			keys = append(keys, c)
		}
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}

// LookupUnique finds a unique constraint by name, falling back to its column
// list.
func LookupUnique(name string, columns []string) (Constraint, bool) {
	if c, ok := uniqueByName[name]; ok && name != "" {
		return c, true
	}
	if len(columns) == 0 {
		return Constraint{}, false
	}
	c, ok := uniqueByColumns[ColumnKey(columns)]
	return c, ok
}

// LookupCheck finds a check constraint by name.
func LookupCheck(name string) (Constraint, bool) {
	c, ok := checkByName[name]
	return c, ok
}
