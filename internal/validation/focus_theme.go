package validation

import "github.com/forgo/northstar/internal/model"

// ValidateWeeklyFocusThemeInput validates title, note, weekStart, then
// linkedGoals. Created themes without linkedGoals link nothing.
func ValidateWeeklyFocusThemeInput(raw Input, opts Options) Result[model.WeeklyFocusThemeInput] {
	var out model.WeeklyFocusThemeInput

	if v, ok := raw.take("title", opts.Partial); ok {
		title, ferr := NonEmptyTrimmed(model.LabelTitle, v, model.MaxFocusThemeTitleLength)
		if ferr != nil {
			return Fail[model.WeeklyFocusThemeInput](ferr.Message)
		}
		out.Title = model.Given(title)
	}

	if v, ok := raw.take("note", opts.Partial); ok {
		note, ferr := OptionalTrimmed(model.LabelNote, v, model.MaxFocusThemeNoteLength, true)
		if ferr != nil {
			return Fail[model.WeeklyFocusThemeInput](ferr.Message)
		}
		out.Note = model.Given(note)
	}

	if v, ok := raw.take("weekStart", opts.Partial); ok {
		week, ferr := mondayDate(model.LabelWeekStart, v)
		if ferr != nil {
			return Fail[model.WeeklyFocusThemeInput](ferr.Message)
		}
		out.WeekStart = model.Given(week)
	}

	if v, ok := raw["linkedGoals"]; ok {
		res := ValidateLinkedGoals(v)
		if !res.OK {
			return Fail[model.WeeklyFocusThemeInput](res.Error)
		}
		out.LinkedGoals = model.Given(res.Data)
	} else if !opts.Partial {
		out.LinkedGoals = model.Given([]string{})
	}

	return Ok(out)
}
