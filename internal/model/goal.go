package model

import "time"

// Horizon is a goal's time scale
type Horizon string

const (
	HorizonYear     Horizon = "YEAR"
	HorizonSixMonth Horizon = "SIX_MONTH"
	HorizonMonth    Horizon = "MONTH"
	HorizonWeek     Horizon = "WEEK"
)

// Horizons lists every horizon in declaration order.
var Horizons = []Horizon{HorizonYear, HorizonSixMonth, HorizonMonth, HorizonWeek}

// GoalStatus is a goal's lifecycle state
type GoalStatus string

const (
	GoalStatusActive GoalStatus = "active"
	GoalStatusPaused GoalStatus = "paused"
	GoalStatusDone   GoalStatus = "done"
)

// GoalStatuses lists every status in declaration order.
var GoalStatuses = []GoalStatus{GoalStatusActive, GoalStatusPaused, GoalStatusDone}

// Goal constraints
const (
	MaxGoalTitleLength       = 100
	MaxGoalDescriptionLength = 1000
	MaxActiveGoals           = 12
)

// GoalInput is a validated goal payload.
type GoalInput struct {
	Title       Field[string]
	Description Field[*string]
	Horizon     Field[Horizon]
	Status      Field[GoalStatus]
	TargetDate  Field[*time.Time] // UTC midnight
	LifeAreaID  Field[*string]
}

// Raw renders the input back into its payload shape.
func (in GoalInput) Raw() map[string]any {
	raw := map[string]any{}
	putValue(raw, "title", in.Title)
	putNullable(raw, "description", in.Description)
	if in.Horizon.Present {
		raw["horizon"] = string(in.Horizon.Value)
	}
	if in.Status.Present {
		raw["status"] = string(in.Status.Value)
	}
	putNullableDate(raw, "targetDate", in.TargetDate)
	putNullable(raw, "lifeAreaId", in.LifeAreaID)
	return raw
}
