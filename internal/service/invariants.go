package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/forgo/northstar/internal/calendar"
	"github.com/forgo/northstar/internal/database"
	"github.com/forgo/northstar/internal/metrics"
	"github.com/forgo/northstar/internal/model"
)

// Limits holds the soft caps enforced before writes.
type Limits struct {
	ActiveGoals   int
	WeeklyTasks   int
	WeeklyTaskMin int // advisory, never blocks a write
}

// DefaultLimits are the product limits.
var DefaultLimits = Limits{
	ActiveGoals:   model.MaxActiveGoals,
	WeeklyTasks:   model.MaxTasksPerWeek,
	WeeklyTaskMin: model.MinTasksPerWeek,
}

// Invariants runs the cross-entity checks that need a storage read.
//
// Every method takes the Store to read through. Callers pass the handle from
// database.TxRunner.WithinTx so the check and the write it guards commit
// together.
type Invariants struct {
	limits  Limits
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// InvariantsConfig holds the dependencies for Invariants.
type InvariantsConfig struct {
	Limits  *Limits      // Optional, uses DefaultLimits if nil
	Logger  *slog.Logger // Optional, uses slog.Default() if nil
	Metrics *metrics.Metrics
}

// NewInvariants creates the invariant checker
func NewInvariants(cfg InvariantsConfig) *Invariants {
	limits := DefaultLimits
	if cfg.Limits != nil {
		limits = *cfg.Limits
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Invariants{
		limits:  limits,
		logger:  logger,
		metrics: cfg.Metrics,
	}
}

// Limits returns the configured caps.
func (s *Invariants) Limits() Limits {
	return s.limits
}

// EnsureOwnership loads a record owned by userID. Missing and foreign
// records both fail with ErrNotFound.
func (s *Invariants) EnsureOwnership(ctx context.Context, tx database.Store, kind model.EntityKind, id, userID string) (*model.Record, error) {
	rec, err := tx.FindOwned(ctx, kind, id, userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%s: %w", kind.Label(), ErrNotFound)
	}
	return rec, nil
}

// SoftCap describes a count that must stay below Limit.
type SoftCap struct {
	Name    string // metric label
	Kind    model.EntityKind
	Filter  model.Filter // set ExcludeID when updating in place
	Limit   int
	Message string
}

// EnforceSoftCap fails with ErrLimitReached when the matching count is
// already at or above the cap.
func (s *Invariants) EnforceSoftCap(ctx context.Context, tx database.Store, c SoftCap) error {
	count, err := tx.CountWhere(ctx, c.Kind, c.Filter)
	if err != nil {
		return err
	}
	if count >= c.Limit {
		s.metrics.IncrementCapRejection(c.Name)
		return newRuleError(ErrLimitReached, c.Message)
	}
	return nil
}

// EnforceActiveGoalCap guards creating an active goal or reactivating one.
// excludeID is the goal being updated, if any.
func (s *Invariants) EnforceActiveGoalCap(ctx context.Context, tx database.Store, userID, excludeID string) error {
	return s.EnforceSoftCap(ctx, tx, SoftCap{
		Name: "active_goals",
		Kind: model.KindGoal,
		Filter: model.Filter{
			UserID:    userID,
			Status:    model.GoalStatusActive,
			ExcludeID: excludeID,
		},
		Limit:   s.limits.ActiveGoals,
		Message: model.MsgActiveGoalCap(s.limits.ActiveGoals),
	})
}

// EnforceWeeklyTaskCap guards adding a task to a week, or moving one into it.
func (s *Invariants) EnforceWeeklyTaskCap(ctx context.Context, tx database.Store, userID string, weekStart time.Time, excludeID string) error {
	return s.EnforceSoftCap(ctx, tx, SoftCap{
		Name: "weekly_tasks",
		Kind: model.KindWeeklyTask,
		Filter: model.Filter{
			UserID:    userID,
			WeekStart: &weekStart,
			ExcludeID: excludeID,
		},
		Limit:   s.limits.WeeklyTasks,
		Message: model.MsgWeeklyTaskCap(s.limits.WeeklyTasks),
	})
}

// CheckWeeklyTaskMinimum counts a week's tasks after a deletion and logs when
// the week has dropped below the advisory minimum. It never fails the
// deletion; only storage errors are returned.
func (s *Invariants) CheckWeeklyTaskMinimum(ctx context.Context, tx database.Store, userID string, weekStart time.Time) (count int, below bool, err error) {
	count, err = tx.CountWhere(ctx, model.KindWeeklyTask, model.Filter{UserID: userID, WeekStart: &weekStart})
	if err != nil {
		return 0, false, err
	}
	if count >= s.limits.WeeklyTaskMin {
		return count, false, nil
	}

	s.metrics.IncrementWeeklyMinimumBreach()
	s.logger.WarnContext(ctx, "week below task minimum",
		slog.String("user_id", userID),
		slog.String("week_start", calendar.FormatCalendarDate(weekStart)),
		slog.Int("count", count),
		slog.Int("minimum", s.limits.WeeklyTaskMin),
	)
	return count, true, nil
}

// CheckCaseInsensitiveDuplicate looks value up by its normalized key within
// filter's scope. It returns the conflicting record's original label when
// one exists.
func (s *Invariants) CheckCaseInsensitiveDuplicate(ctx context.Context, tx database.Store, kind model.EntityKind, filter model.Filter, value string) (bool, string, error) {
	rec, err := tx.FindByNormalizedKey(ctx, kind, filter, model.NormalizeKey(value))
	if err != nil {
		return false, "", err
	}
	if rec == nil {
		return false, "", nil
	}
	return true, rec.Label, nil
}

// EnsureUniqueLifeAreaName rejects a name another of the user's life areas
// already has, ignoring case and surrounding whitespace.
func (s *Invariants) EnsureUniqueLifeAreaName(ctx context.Context, tx database.Store, userID, name, excludeID string) error {
	conflict, existing, err := s.CheckCaseInsensitiveDuplicate(ctx, tx, model.KindLifeArea,
		model.Filter{UserID: userID, ExcludeID: excludeID}, name)
	if err != nil {
		return err
	}
	if conflict {
		s.metrics.IncrementDuplicateRejection(string(model.KindLifeArea))
		return newRuleError(ErrDuplicate, model.MsgDuplicateLifeArea(existing))
	}
	return nil
}

// EnsureUniqueTaskTitle rejects a title already used in the same week.
func (s *Invariants) EnsureUniqueTaskTitle(ctx context.Context, tx database.Store, userID string, weekStart time.Time, title, excludeID string) error {
	conflict, existing, err := s.CheckCaseInsensitiveDuplicate(ctx, tx, model.KindWeeklyTask,
		model.Filter{UserID: userID, WeekStart: &weekStart, ExcludeID: excludeID}, title)
	if err != nil {
		return err
	}
	if conflict {
		s.metrics.IncrementDuplicateRejection(string(model.KindWeeklyTask))
		return newRuleError(ErrDuplicate, model.MsgDuplicateTask(existing, calendar.FormatCalendarDate(weekStart)))
	}
	return nil
}

// EnsureFocusThemeWeekFree rejects a second focus theme for the same week.
func (s *Invariants) EnsureFocusThemeWeekFree(ctx context.Context, tx database.Store, userID string, weekStart time.Time, excludeID string) error {
	count, err := tx.CountWhere(ctx, model.KindWeeklyFocusTheme,
		model.Filter{UserID: userID, WeekStart: &weekStart, ExcludeID: excludeID})
	if err != nil {
		return err
	}
	if count > 0 {
		s.metrics.IncrementDuplicateRejection(string(model.KindWeeklyFocusTheme))
		return newRuleError(ErrDuplicate, model.MsgDuplicateFocusTheme(calendar.FormatCalendarDate(weekStart)))
	}
	return nil
}

// ValidateGoalLinkage checks that a task in weekStart may link goalID: the
// goal must be the user's, have the WEEK horizon and, when it has a target
// date, fall in the same week.
func (s *Invariants) ValidateGoalLinkage(ctx context.Context, tx database.Store, userID, goalID string, weekStart time.Time) error {
	goal, err := s.EnsureOwnership(ctx, tx, model.KindGoal, goalID, userID)
	if err != nil {
		return err
	}
	if goal.Horizon != model.HorizonWeek {
		return newRuleError(ErrGoalLinkage, model.MsgGoalNotWeekly)
	}
	if goal.TargetDate != nil {
		goalWeek := calendar.WeekStartIn(*goal.TargetDate, time.UTC)
		if calendar.FormatCalendarDate(goalWeek) != calendar.FormatCalendarDate(weekStart) {
			return newRuleError(ErrGoalLinkage, model.MsgGoalWrongWeek)
		}
	}
	return nil
}

// EnsureGoalsOwned checks every linked goal belongs to userID.
func (s *Invariants) EnsureGoalsOwned(ctx context.Context, tx database.Store, userID string, goalIDs []string) error {
	for _, id := range goalIDs {
		if _, err := s.EnsureOwnership(ctx, tx, model.KindGoal, id, userID); err != nil {
			return err
		}
	}
	return nil
}
