package model

import (
	"fmt"
	"strings"
)

// User-facing copy. Validators, invariant checks and the storage error mapper
// all draw from this file so a conflict reads the same whether it was caught
// before the write or at commit.

// MsgSomethingWentWrong is the fallback for anything unrecognized.
const MsgSomethingWentWrong = "Something went wrong. Please try again."

// Field labels
const (
	LabelName        = "Name"
	LabelColor       = "Color"
	LabelVision      = "Vision"
	LabelStrategy    = "Strategy"
	LabelOrder       = "Order"
	LabelTitle       = "Title"
	LabelDescription = "Description"
	LabelHorizon     = "Horizon"
	LabelStatus      = "Status"
	LabelTargetDate  = "Target date"
	LabelLifeAreaID  = "Life area ID"
	LabelWeekStart   = "Week start"
	LabelGoalID      = "Goal ID"
	LabelNote        = "Note"
	LabelLinkedGoals = "Linked goals"
	LabelType        = "Type"
	LabelDate        = "Date"
	LabelValue       = "Value"
)

// Fixed field messages
const (
	MsgColor                = "Color must be a hex code like #4F46E5"
	MsgOrderWhole           = "Order must be a whole number"
	MsgValueRequired        = "Value is required"
	MsgValueNumber          = "Value must be a number"
	MsgSleepMax             = "Sleep can't exceed 14 hours"
	MsgSleepStep            = "Sleep must be between 0 and 14 hours in 0.25-hour increments"
	MsgWellbeing            = "Wellbeing must be a whole number from 1 to 10"
	MsgTypeNeededForValue   = "Type is required to validate value"
	MsgLinkedGoalsList      = "Linked goals must be a list"
	MsgLinkedGoalsMax       = "Can't link more than 3 goals"
	MsgLinkedGoalsUUID      = "All goal IDs must be valid UUIDs"
	MsgLinkedGoalsDuplicate = "Can't link the same goal multiple times"
	MsgGoalNotWeekly        = "Only weekly goals can be linked to a task"
	MsgGoalWrongWeek        = "That goal is set for a different week"
)

// Placeholders used when the conflicting value isn't known.
const (
	PlaceholderName  = "that name"
	PlaceholderTask  = "this task"
	PlaceholderWeek  = "this week"
	PlaceholderDay   = "this day"
	PlaceholderEntry = "this signal"
)

func MsgRequired(label string) string { return label + " is required" }

func MsgEmpty(label string) string { return label + " can't be empty" }

func MsgNotText(label string) string { return label + " must be text" }

func MsgTooLong(label string, max int) string {
	return fmt.Sprintf("%s must be %d characters or less", label, max)
}

func MsgInvalidUUID(label string) string { return label + " must be a valid UUID" }

func MsgOneOf(label string, allowed []string) string {
	return fmt.Sprintf("%s must be one of: %s", label, strings.Join(allowed, ", "))
}

func MsgDateFormat(label string) string { return label + " must be in YYYY-MM-DD format" }

func MsgMonday(label string) string { return label + " must be a Monday" }

func MsgDayRequired(day string) string { return capitalize(day) + " is required" }

func MsgDayBoolean(day string) string { return capitalize(day) + " must be true or false" }

// MsgActiveGoalCap is shown when the active goal soft limit is reached.
func MsgActiveGoalCap(limit int) string {
	return fmt.Sprintf("You can have up to %d active goals. Pause or finish one to add another.", limit)
}

// MsgWeeklyTaskCap is shown when a week already holds the maximum tasks.
func MsgWeeklyTaskCap(limit int) string {
	return fmt.Sprintf("You can have up to %d tasks per week", limit)
}

// MsgDuplicateLifeArea names the conflicting life area when it is known.
func MsgDuplicateLifeArea(name string) string {
	return "You already have a life area named " + quotedOr(name, PlaceholderName)
}

// MsgDuplicateTask names the conflicting task and week when known.
func MsgDuplicateTask(title, weekStart string) string {
	return fmt.Sprintf("You already have %s for %s", quotedOr(title, PlaceholderTask), weekOr(weekStart))
}

// MsgDuplicateFocusTheme names the week when known.
func MsgDuplicateFocusTheme(weekStart string) string {
	return "You already have a focus theme for " + weekOr(weekStart)
}

// MsgDuplicateSignal names the signal type and date when known.
func MsgDuplicateSignal(signalType, date string) string {
	what := PlaceholderEntry
	if t := strings.TrimSpace(signalType); t != "" {
		what = strings.ToLower(t)
	}
	when := PlaceholderDay
	if d := strings.TrimSpace(date); d != "" {
		when = d
	}
	return fmt.Sprintf("You already logged %s for %s", what, when)
}

func quotedOr(value, placeholder string) string {
	if v := strings.TrimSpace(value); v != "" {
		return "'" + v + "'"
	}
	return placeholder
}

func weekOr(weekStart string) string {
	if w := strings.TrimSpace(weekStart); w != "" {
		return "the week of " + w
	}
	return PlaceholderWeek
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
