package model

import (
	"strings"
	"time"
)

// EntityKind names a stored entity type. Stores map kinds to tables.
type EntityKind string

const (
	KindLifeArea         EntityKind = "life_area"
	KindGoal             EntityKind = "goal"
	KindWeeklyTask       EntityKind = "weekly_task"
	KindWeeklyFocusTheme EntityKind = "weekly_focus_theme"
	KindSignal           EntityKind = "signal"
)

// Label returns a lowercase human name for the kind.
func (k EntityKind) Label() string {
	switch k {
	case KindLifeArea:
		return "life area"
	case KindGoal:
		return "goal"
	case KindWeeklyTask:
		return "task"
	case KindWeeklyFocusTheme:
		return "focus theme"
	case KindSignal:
		return "signal"
	}
	return string(k)
}

// Record is the slice of a stored row the invariant checks read. Only the
// attributes meaningful for the row's kind are populated.
type Record struct {
	Kind   EntityKind
	ID     string
	UserID string

	// Label is the display value: a life area's name, a goal's or task's
	// title, a signal's type.
	Label string

	Order      int        // life areas
	Horizon    Horizon    // goals
	Status     GoalStatus // goals
	TargetDate *time.Time // goals
	WeekStart  *time.Time // weekly tasks and focus themes
	Date       *time.Time // signals
}

// Filter scopes a count or lookup. Zero-valued fields are ignored.
type Filter struct {
	UserID    string
	Status    GoalStatus
	WeekStart *time.Time
	ExcludeID string
}

// NormalizeKey is the case-folded, trimmed form stored in nameNorm and
// titleNorm columns and compared by duplicate checks.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
