package model

import "time"

// Weekly focus theme constraints
const (
	MaxFocusThemeTitleLength = 60
	MaxFocusThemeNoteLength  = 400
	MaxLinkedGoals           = 3
)

// WeeklyFocusThemeInput is a validated weekly focus theme payload.
type WeeklyFocusThemeInput struct {
	Title       Field[string]
	Note        Field[*string]
	WeekStart   Field[time.Time] // Monday, UTC midnight
	LinkedGoals Field[[]string]
}

// Raw renders the input back into its payload shape.
func (in WeeklyFocusThemeInput) Raw() map[string]any {
	raw := map[string]any{}
	putValue(raw, "title", in.Title)
	putNullable(raw, "note", in.Note)
	putDate(raw, "weekStart", in.WeekStart)
	if in.LinkedGoals.Present {
		ids := make([]any, len(in.LinkedGoals.Value))
		for i, id := range in.LinkedGoals.Value {
			ids[i] = id
		}
		raw["linkedGoals"] = ids
	}
	return raw
}
