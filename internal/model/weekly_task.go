package model

import "time"

// Weekly task constraints
const (
	MaxWeeklyTaskTitleLength = 80
	MaxTasksPerWeek          = 7
	MinTasksPerWeek          = 2 // advisory only
)

// Weekdays lists the day-flag keys in week order.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// WeeklyTaskInput is a validated weekly task payload.
type WeeklyTaskInput struct {
	Title     Field[string]
	WeekStart Field[time.Time] // UTC midnight

	// Days holds the monday..sunday flags in week order.
	Days [7]Field[bool]

	GoalID Field[*string]
}

// Day returns the flag for a key from Weekdays.
func (in WeeklyTaskInput) Day(key string) Field[bool] {
	for i, k := range Weekdays {
		if k == key {
			return in.Days[i]
		}
	}
	return Field[bool]{}
}

// Raw renders the input back into its payload shape.
func (in WeeklyTaskInput) Raw() map[string]any {
	raw := map[string]any{}
	putValue(raw, "title", in.Title)
	putDate(raw, "weekStart", in.WeekStart)
	for i, key := range Weekdays {
		putValue(raw, key, in.Days[i])
	}
	putNullable(raw, "goalId", in.GoalID)
	return raw
}
