package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/forgo/northstar/internal/calendar"
	"github.com/forgo/northstar/internal/database"
	"github.com/forgo/northstar/internal/service"
	"github.com/forgo/northstar/internal/validation"
)

var (
	checkWeekUser string
	checkWeekWeek string
)

func init() {
	rootCmd.AddCommand(checkWeekCmd)
	checkWeekCmd.Flags().StringVar(&checkWeekUser, "user", "", "User whose week is checked")
	checkWeekCmd.Flags().StringVar(&checkWeekWeek, "week", "", "Week start, a Monday in YYYY-MM-DD")
	_ = checkWeekCmd.MarkFlagRequired("user")
	_ = checkWeekCmd.MarkFlagRequired("week")
}

var checkWeekCmd = &cobra.Command{
	Use:   "check-week",
	Short: "Report a week's task count against the limits",
	Long: `Count a user's tasks for one week and compare with the weekly cap and the
advisory minimum. A week below the minimum is logged but is not an error.`,
	Args: cobra.NoArgs,
	RunE: runCheckWeek,
}

// CheckWeekResponse is the response for the check-week command.
type CheckWeekResponse struct {
	UserID       string `json:"userId"`
	WeekStart    string `json:"weekStart"`
	Count        int    `json:"count"`
	Cap          int    `json:"cap"`
	Minimum      int    `json:"minimum"`
	BelowMinimum bool   `json:"belowMinimum"`
	AtCap        bool   `json:"atCap"`
}

func runCheckWeek(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	week := validation.ValidateWeekStart(checkWeekWeek)
	if !week.OK {
		return rejectWith(cmd.OutOrStdout(), ExitDataError, week.Error)
	}

	store, release, err := openStore(ctx, cfg, logger)
	if err != nil {
		return &exitError{code: ExitStoreError, err: err}
	}
	defer release()

	inv := newInvariants(cfg, logger, registry)
	resp, err := checkWeek(ctx, store, inv, checkWeekUser, week.Data)
	if err != nil {
		return &exitError{code: ExitStoreError, err: err}
	}
	return outputJSON(cmd.OutOrStdout(), resp)
}

func checkWeek(ctx context.Context, store database.Store, inv *service.Invariants, userID string, week time.Time) (CheckWeekResponse, error) {
	count, below, err := inv.CheckWeeklyTaskMinimum(ctx, store, userID, week)
	if err != nil {
		return CheckWeekResponse{}, err
	}
	limits := inv.Limits()
	return CheckWeekResponse{
		UserID:       userID,
		WeekStart:    calendar.FormatCalendarDate(week),
		Count:        count,
		Cap:          limits.WeeklyTasks,
		Minimum:      limits.WeeklyTaskMin,
		BelowMinimum: below,
		AtCap:        count >= limits.WeeklyTasks,
	}, nil
}
