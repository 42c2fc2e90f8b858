package main

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forgo/northstar/internal/database"
	"github.com/forgo/northstar/internal/service"
)

var (
	mapErrorText    bool
	mapErrorContext service.CopyContext
)

func init() {
	rootCmd.AddCommand(mapErrorCmd)
	f := mapErrorCmd.Flags()
	f.BoolVar(&mapErrorText, "text", false, "Treat stdin as a plain error message instead of a JSON object")
	f.StringVar(&mapErrorContext.LifeAreaName, "name", "", "Life area name for the message")
	f.StringVar(&mapErrorContext.TaskTitle, "title", "", "Task title for the message")
	f.StringVar(&mapErrorContext.WeekStart, "week", "", "Week start (YYYY-MM-DD) for the message")
	f.StringVar(&mapErrorContext.SignalType, "signal-type", "", "Signal type for the message")
	f.StringVar(&mapErrorContext.SignalDate, "date", "", "Signal date (YYYY-MM-DD) for the message")
}

var mapErrorCmd = &cobra.Command{
	Use:   "map-error",
	Short: "Translate a storage error into user copy",
	Long: `Read a storage error from stdin and print the message a user would see.

The error is either a JSON object such as {"code":"P2002","meta":{"target":["userId","nameNorm"]}}
or, with --text, a driver error message.`,
	Args: cobra.NoArgs,
	RunE: runMapError,
}

// MapErrorResponse is the response for the map-error command.
type MapErrorResponse struct {
	Message    string `json:"message"`
	Kind       string `json:"kind"`
	Constraint string `json:"constraint,omitempty"`
}

func runMapError(cmd *cobra.Command, args []string) error {
	data, err := readPayload(cmd.InOrStdin(), "")
	if err != nil {
		return err
	}
	return outputJSON(cmd.OutOrStdout(), mapErrorInput(data, mapErrorText, mapErrorContext))
}

func mapErrorInput(data []byte, text bool, c service.CopyContext) MapErrorResponse {
	var input any
	if text {
		input = errors.New(strings.TrimSpace(string(data)))
	} else if err := json.Unmarshal(data, &input); err != nil {
		input = nil
	}

	v := database.Classify(input)
	return MapErrorResponse{
		Message:    service.MapStorageErrorToUserCopy(input, c),
		Kind:       string(v.Kind),
		Constraint: v.Constraint,
	}
}
