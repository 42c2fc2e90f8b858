// Package model defines the northstar entities, their limits and the user-facing
// copy shared by validation, invariant checks and storage error mapping.
//
// # Inputs
//
// Each entity has a normalized input type produced by the validation package:
//
//   - LifeAreaInput: name, color, vision, strategy and display order
//   - GoalInput: title, description, horizon, status, target date, life area
//   - WeeklyTaskInput: title, week start, the seven day flags, linked goal
//   - WeeklyFocusThemeInput: title, note, week start, up to three linked goals
//   - SignalInput: a sleep or wellbeing value logged for one day
//
// Fields are wrapped in Field so partial updates can tell an absent field from
// one explicitly set to null:
//
//	in.Color.Present && in.Color.Value == nil // clear the color
//	!in.Color.Present                         // leave it alone
//
// Raw renders an input back into its payload shape, with dates as YYYY-MM-DD.
//
// # Records
//
// Record is the slice of a stored row that cross-entity checks read. Stores
// return Records for every EntityKind and scope lookups with a Filter.
//
// # Limits
//
// Length limits and soft caps are package constants:
//
//	const (
//	    MaxActiveGoals  = 12
//	    MaxTasksPerWeek = 7
//	    MinTasksPerWeek = 2 // advisory only
//	)
//
// # Messages
//
// messages.go holds every string shown to a user. Duplicate messages name the
// conflicting value when it is known and fall back to a placeholder otherwise.
package model
