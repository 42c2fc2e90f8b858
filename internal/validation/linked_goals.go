package validation

import "github.com/forgo/northstar/internal/model"

// ValidateLinkedGoals validates a list of at most three distinct goal UUIDs.
// Size is checked first, then every element's shape, then duplicates by
// trimmed value.
func ValidateLinkedGoals(raw any) Result[[]string] {
	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case []string:
		items = make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
	default:
		return Fail[[]string](model.MsgLinkedGoalsList)
	}

	if len(items) > model.MaxLinkedGoals {
		return Fail[[]string](model.MsgLinkedGoalsMax)
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		id, ferr := UUID(model.LabelGoalID, item)
		if ferr != nil {
			return Fail[[]string](model.MsgLinkedGoalsUUID)
		}
		ids = append(ids, id)
	}

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return Fail[[]string](model.MsgLinkedGoalsDuplicate)
		}
		seen[id] = struct{}{}
	}

	return Ok(ids)
}
