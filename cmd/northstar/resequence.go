package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/forgo/northstar/internal/database"
	"github.com/forgo/northstar/internal/model"
	"github.com/forgo/northstar/internal/service"
)

var resequenceUser string

func init() {
	rootCmd.AddCommand(resequenceCmd)
	resequenceCmd.Flags().StringVar(&resequenceUser, "user", "", "User whose life areas are resequenced")
	_ = resequenceCmd.MarkFlagRequired("user")
}

var resequenceCmd = &cobra.Command{
	Use:   "resequence",
	Short: "Compact a user's life area order to 1..N",
	Args:  cobra.NoArgs,
	RunE:  runResequence,
}

// ResequenceResponse is the response for the resequence command.
type ResequenceResponse struct {
	UserID  string `json:"userId"`
	Changed int    `json:"changed"`
}

func runResequence(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, release, err := openStore(ctx, cfg, logger)
	if err != nil {
		return &exitError{code: ExitStoreError, err: err}
	}
	defer release()

	inv := newInvariants(cfg, logger, registry)
	resp, err := resequenceLifeAreas(ctx, store, inv, resequenceUser)
	if err != nil {
		return &exitError{code: ExitStoreError, err: err}
	}

	logger.Info("life areas resequenced",
		slog.String("user_id", resp.UserID),
		slog.Int("changed", resp.Changed),
	)
	return outputJSON(cmd.OutOrStdout(), resp)
}

func resequenceLifeAreas(ctx context.Context, store engineStore, inv *service.Invariants, userID string) (ResequenceResponse, error) {
	var changed int
	err := store.WithinTx(ctx, func(ctx context.Context, tx database.Store) error {
		n, err := inv.Resequence(ctx, tx, model.KindLifeArea, userID)
		changed = n
		return err
	})
	if err != nil {
		return ResequenceResponse{}, err
	}
	return ResequenceResponse{UserID: userID, Changed: changed}, nil
}
