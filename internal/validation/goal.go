package validation

import "github.com/forgo/northstar/internal/model"

// ValidateGoalInput validates title, description, horizon, status,
// targetDate, then lifeAreaId.
func ValidateGoalInput(raw Input, opts Options) Result[model.GoalInput] {
	var out model.GoalInput

	if v, ok := raw.take("title", opts.Partial); ok {
		title, ferr := NonEmptyTrimmed(model.LabelTitle, v, model.MaxGoalTitleLength)
		if ferr != nil {
			return Fail[model.GoalInput](ferr.Message)
		}
		out.Title = model.Given(title)
	}

	if v, ok := raw.take("description", opts.Partial); ok {
		desc, ferr := OptionalTrimmed(model.LabelDescription, v, model.MaxGoalDescriptionLength, false)
		if ferr != nil {
			return Fail[model.GoalInput](ferr.Message)
		}
		out.Description = model.Given(desc)
	}

	if v, ok := raw.take("horizon", opts.Partial); ok {
		horizon, ferr := EnumMember(model.LabelHorizon, v, model.Horizons)
		if ferr != nil {
			return Fail[model.GoalInput](ferr.Message)
		}
		out.Horizon = model.Given(horizon)
	}

	if v, ok := raw.take("status", opts.Partial); ok {
		status, ferr := EnumMember(model.LabelStatus, v, model.GoalStatuses)
		if ferr != nil {
			return Fail[model.GoalInput](ferr.Message)
		}
		out.Status = model.Given(status)
	}

	if v, ok := raw.take("targetDate", opts.Partial); ok {
		target, ferr := optionalCalendarDate(model.LabelTargetDate, v)
		if ferr != nil {
			return Fail[model.GoalInput](ferr.Message)
		}
		out.TargetDate = model.Given(target)
	}

	if v, ok := raw.take("lifeAreaId", opts.Partial); ok {
		id, ferr := optionalUUID(model.LabelLifeAreaID, v)
		if ferr != nil {
			return Fail[model.GoalInput](ferr.Message)
		}
		out.LifeAreaID = model.Given(id)
	}

	return Ok(out)
}
