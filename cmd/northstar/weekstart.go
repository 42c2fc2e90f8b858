package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/forgo/northstar/internal/calendar"
)

var (
	weekStartTZ string
	weekStartAt string
)

func init() {
	rootCmd.AddCommand(weekStartCmd)
	weekStartCmd.Flags().StringVar(&weekStartTZ, "tz", "", "IANA timezone (default DEFAULT_TIMEZONE)")
	weekStartCmd.Flags().StringVar(&weekStartAt, "at", "", "RFC3339 instant (default now)")
}

var weekStartCmd = &cobra.Command{
	Use:   "week-start",
	Short: "Print the Monday that starts the week",
	Long:  `Print local midnight on the Monday of the week containing --at in --tz.`,
	Args:  cobra.NoArgs,
	RunE:  runWeekStart,
}

// WeekStartResponse is the response for the week-start command.
type WeekStartResponse struct {
	WeekStart time.Time `json:"weekStart"`
	Date      string    `json:"date"`
	Timezone  string    `json:"timezone"`
}

func runWeekStart(cmd *cobra.Command, args []string) error {
	tz := weekStartTZ
	if tz == "" {
		tz = cfg.DefaultTimezone
	}

	resp, err := computeWeekStart(weekStartAt, tz, time.Now())
	if err != nil {
		return &exitError{code: ExitDataError, err: err}
	}
	return outputJSON(cmd.OutOrStdout(), resp)
}

func computeWeekStart(at, tz string, now time.Time) (WeekStartResponse, error) {
	instant := now
	if at != "" {
		t, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return WeekStartResponse{}, fmt.Errorf("--at must be RFC3339: %w", err)
		}
		instant = t
	}

	start, err := calendar.WeekStartFor(instant, tz)
	if err != nil {
		return WeekStartResponse{}, fmt.Errorf("%w: %s", err, tz)
	}
	return WeekStartResponse{
		WeekStart: start,
		Date:      calendar.FormatCalendarDate(start),
		Timezone:  start.Location().String(),
	}, nil
}
