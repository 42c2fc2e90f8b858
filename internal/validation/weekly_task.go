package validation

import "github.com/forgo/northstar/internal/model"

// ValidateWeeklyTaskInput validates title, weekStart, the seven day flags in
// week order, then goalId.
//
// weekStart only has to be a real date here. Callers that accept a week from
// the user run ValidateWeekStart, and storage rejects non-Monday rows.
func ValidateWeeklyTaskInput(raw Input, opts Options) Result[model.WeeklyTaskInput] {
	var out model.WeeklyTaskInput

	if v, ok := raw.take("title", opts.Partial); ok {
		title, ferr := NonEmptyTrimmed(model.LabelTitle, v, model.MaxWeeklyTaskTitleLength)
		if ferr != nil {
			return Fail[model.WeeklyTaskInput](ferr.Message)
		}
		out.Title = model.Given(title)
	}

	if v, ok := raw.take("weekStart", opts.Partial); ok {
		week, ferr := CalendarDate(model.LabelWeekStart, v)
		if ferr != nil {
			return Fail[model.WeeklyTaskInput](ferr.Message)
		}
		out.WeekStart = model.Given(week)
	}

	for i, day := range model.Weekdays {
		v, ok := raw.take(day, opts.Partial)
		if !ok {
			continue
		}
		if v == nil {
			return Fail[model.WeeklyTaskInput](model.MsgDayRequired(day))
		}
		flag, isBool := v.(bool)
		if !isBool {
			return Fail[model.WeeklyTaskInput](model.MsgDayBoolean(day))
		}
		out.Days[i] = model.Given(flag)
	}

	if v, ok := raw.take("goalId", opts.Partial); ok {
		id, ferr := optionalUUID(model.LabelGoalID, v)
		if ferr != nil {
			return Fail[model.WeeklyTaskInput](ferr.Message)
		}
		out.GoalID = model.Given(id)
	}

	return Ok(out)
}
