package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgo/northstar/internal/model"
	"github.com/forgo/northstar/internal/validation"
)

var (
	validatePartial      bool
	validateFile         string
	validateExistingType string
)

var validateEntities = []string{"life-area", "goal", "weekly-task", "focus-theme", "signal", "linked-goals"}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validatePartial, "partial", false, "Validate only the supplied fields (update payload)")
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Read the payload from a file instead of stdin")
	validateCmd.Flags().StringVar(&validateExistingType, "existing-type", "", "Stored signal type for partial signal updates")
}

var validateCmd = &cobra.Command{
	Use:       "validate <life-area|goal|weekly-task|focus-theme|signal|linked-goals>",
	Short:     "Validate and normalize a JSON payload",
	Long:      `Validate a JSON payload and print its normalized form, or the first error.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: validateEntities,
	RunE:      runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := readPayload(cmd.InOrStdin(), validateFile)
	if err != nil {
		return err
	}

	opts := validation.Options{
		Partial:      validatePartial,
		ExistingType: model.SignalType(validateExistingType),
	}
	normalized, message, err := validatePayload(args[0], data, opts)
	if err != nil {
		return &exitError{code: ExitDataError, err: err}
	}
	if message != "" {
		return rejectWith(cmd.OutOrStdout(), ExitDataError, message)
	}
	return outputJSON(cmd.OutOrStdout(), normalized)
}

// validatePayload runs the validator for entity. It returns the normalized
// payload, or the user-facing message when validation fails. err is set only
// when the payload isn't usable JSON or the entity is unknown.
func validatePayload(entity string, data []byte, opts validation.Options) (any, string, error) {
	if entity == "linked-goals" {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, "", fmt.Errorf("decode payload: %w", err)
		}
		r := validation.ValidateLinkedGoals(v)
		if !r.OK {
			return nil, r.Error, nil
		}
		return r.Data, "", nil
	}

	in, err := validation.ParseInput(data)
	if err != nil {
		return nil, "", err
	}

	switch entity {
	case "life-area":
		return normalizedRaw(validation.ValidateLifeAreaInput(in, opts))
	case "goal":
		return normalizedRaw(validation.ValidateGoalInput(in, opts))
	case "weekly-task":
		return normalizedRaw(validation.ValidateWeeklyTaskInput(in, opts))
	case "focus-theme":
		return normalizedRaw(validation.ValidateWeeklyFocusThemeInput(in, opts))
	case "signal":
		return normalizedRaw(validation.ValidateSignalInput(in, opts))
	}
	return nil, "", fmt.Errorf("unknown entity %q", entity)
}

type rawPayload interface {
	Raw() map[string]any
}

func normalizedRaw[T rawPayload](r validation.Result[T]) (any, string, error) {
	if !r.OK {
		return nil, r.Error, nil
	}
	return r.Data.Raw(), "", nil
}
