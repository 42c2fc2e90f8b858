package service

import (
	"errors"
	"log/slog"

	"github.com/forgo/northstar/internal/database"
	"github.com/forgo/northstar/internal/model"
)

// CopyContext carries the values a conflict message names. Empty fields fall
// back to placeholder wording.
type CopyContext struct {
	LifeAreaName string
	TaskTitle    string
	WeekStart    string // YYYY-MM-DD
	SignalType   string
	SignalDate   string // YYYY-MM-DD
}

// MapStorageErrorToUserCopy turns a storage constraint error into the same
// message the matching validator or invariant check would have produced.
// err may be a driver error, a wrapped error, or a decoded error object.
// Anything unrecognized maps to model.MsgSomethingWentWrong.
func MapStorageErrorToUserCopy(err any, c CopyContext) string {
	constraint, ok := database.Classify(err).Lookup()
	if !ok {
		return model.MsgSomethingWentWrong
	}

	switch constraint.Rule {
	// ===== Unique Violations =====
	case database.RuleLifeAreaNameUnique:
		return model.MsgDuplicateLifeArea(c.LifeAreaName)
	case database.RuleTaskTitleUnique:
		return model.MsgDuplicateTask(c.TaskTitle, c.WeekStart)
	case database.RuleFocusThemeWeekUnique:
		return model.MsgDuplicateFocusTheme(c.WeekStart)
	case database.RuleSignalDayUnique:
		return model.MsgDuplicateSignal(c.SignalType, c.SignalDate)

	// ===== Check Violations =====
	case database.RuleLifeAreaNameNotBlank:
		return model.MsgEmpty(model.LabelName)
	case database.RuleLifeAreaColorHex:
		return model.MsgColor
	case database.RuleGoalTitleNotBlank:
		return model.MsgEmpty(model.LabelTitle)
	case database.RuleWeekStartMonday:
		return model.MsgMonday(model.LabelWeekStart)
	case database.RuleLinkedGoalsMax:
		return model.MsgLinkedGoalsMax
	case database.RuleSignalSleepValue:
		return model.MsgSleepStep
	case database.RuleSignalWellbeingValue:
		return model.MsgWellbeing
	}
	return model.MsgSomethingWentWrong
}

// UserCopy returns the message to show for an error from a write path.
// A *RuleError already carries its copy; other errors go through
// MapStorageErrorToUserCopy.
func (s *Invariants) UserCopy(err error, c CopyContext) string {
	if err == nil {
		return ""
	}

	var ruleErr *RuleError
	if errors.As(err, &ruleErr) {
		return ruleErr.Message
	}

	v := database.Classify(err)
	msg := MapStorageErrorToUserCopy(err, c)
	if msg != model.MsgSomethingWentWrong {
		s.metrics.IncrementStorageErrorMapped(string(v.Kind))
	} else {
		s.logger.Error("unmapped write error", slog.String("error", err.Error()))
	}
	return msg
}
