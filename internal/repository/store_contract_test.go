package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/northstar/internal/database"
	"github.com/forgo/northstar/internal/model"
)

// storeUnderTest is a Store that can also run transactions.
type storeUnderTest interface {
	database.Store
	database.TxRunner
}

// seedFunc stores rec and returns its ID.
type seedFunc func(t *testing.T, rec model.Record) string

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// runStoreContract exercises behavior every Store implementation shares.
func runStoreContract(t *testing.T, store storeUnderTest, seed seedFunc) {
	ctx := context.Background()
	week := day(2025, time.January, 6)
	nextWeek := day(2025, time.January, 13)

	health := seed(t, model.Record{Kind: model.KindLifeArea, UserID: "u1", Label: "Health", Order: 1})
	work := seed(t, model.Record{Kind: model.KindLifeArea, UserID: "u1", Label: "Work", Order: 2})
	seed(t, model.Record{Kind: model.KindLifeArea, UserID: "u2", Label: "Health", Order: 1})

	goal := seed(t, model.Record{Kind: model.KindGoal, UserID: "u1", Label: "Run", Horizon: model.HorizonWeek,
		Status: model.GoalStatusActive, TargetDate: day(2025, time.January, 8)})
	seed(t, model.Record{Kind: model.KindGoal, UserID: "u1", Label: "Read", Horizon: model.HorizonYear, Status: model.GoalStatusActive})
	seed(t, model.Record{Kind: model.KindGoal, UserID: "u1", Label: "Swim", Horizon: model.HorizonYear, Status: model.GoalStatusPaused})

	task := seed(t, model.Record{Kind: model.KindWeeklyTask, UserID: "u1", Label: "Stretch", WeekStart: week})
	seed(t, model.Record{Kind: model.KindWeeklyTask, UserID: "u1", Label: "Plan", WeekStart: week})
	seed(t, model.Record{Kind: model.KindWeeklyTask, UserID: "u1", Label: "Stretch", WeekStart: nextWeek})

	t.Run("find owned", func(t *testing.T) {
		rec, err := store.FindOwned(ctx, model.KindGoal, goal, "u1")
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, "Run", rec.Label)
		assert.Equal(t, model.HorizonWeek, rec.Horizon)
		require.NotNil(t, rec.TargetDate)
		assert.True(t, rec.TargetDate.Equal(*day(2025, time.January, 8)))

		rec, err = store.FindOwned(ctx, model.KindGoal, goal, "u2")
		require.NoError(t, err)
		assert.Nil(t, rec, "foreign records read as absent")

		rec, err = store.FindOwned(ctx, model.KindGoal, "missing", "u1")
		require.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run("count where", func(t *testing.T) {
		n, err := store.CountWhere(ctx, model.KindGoal, model.Filter{UserID: "u1", Status: model.GoalStatusActive})
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		n, err = store.CountWhere(ctx, model.KindGoal, model.Filter{UserID: "u1", Status: model.GoalStatusActive, ExcludeID: goal})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		n, err = store.CountWhere(ctx, model.KindWeeklyTask, model.Filter{UserID: "u1", WeekStart: week})
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		_, err = store.CountWhere(ctx, model.KindLifeArea, model.Filter{UserID: "u1", Status: model.GoalStatusActive})
		assert.True(t, errors.Is(err, database.ErrUnsupported))
	})

	t.Run("find by normalized key", func(t *testing.T) {
		rec, err := store.FindByNormalizedKey(ctx, model.KindLifeArea, model.Filter{UserID: "u1"}, "health")
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, health, rec.ID)
		assert.Equal(t, "Health", rec.Label)

		rec, err = store.FindByNormalizedKey(ctx, model.KindLifeArea, model.Filter{UserID: "u1", ExcludeID: health}, "health")
		require.NoError(t, err)
		assert.Nil(t, rec)

		rec, err = store.FindByNormalizedKey(ctx, model.KindWeeklyTask, model.Filter{UserID: "u1", WeekStart: week}, "stretch")
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, task, rec.ID)

		_, err = store.FindByNormalizedKey(ctx, model.KindGoal, model.Filter{UserID: "u1"}, "run")
		assert.True(t, errors.Is(err, database.ErrUnsupported))
	})

	t.Run("ordering", func(t *testing.T) {
		recs, err := store.ListOrdered(ctx, model.KindLifeArea, "u1")
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, []string{health, work}, []string{recs[0].ID, recs[1].ID})

		require.NoError(t, store.UpdateOrder(ctx, model.KindLifeArea, health, 3))
		recs, err = store.ListOrdered(ctx, model.KindLifeArea, "u1")
		require.NoError(t, err)
		assert.Equal(t, []string{work, health}, []string{recs[0].ID, recs[1].ID})

		assert.True(t, errors.Is(store.UpdateOrder(ctx, model.KindGoal, goal, 1), database.ErrUnsupported))
	})

	t.Run("transaction rollback", func(t *testing.T) {
		boom := errors.New("boom")
		err := store.WithinTx(ctx, func(ctx context.Context, tx database.Store) error {
			if err := tx.UpdateOrder(ctx, model.KindLifeArea, work, 9); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		recs, err := store.ListOrdered(ctx, model.KindLifeArea, "u1")
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, work, recs[0].ID)
		assert.Equal(t, 2, recs[0].Order, "order unchanged after rollback")
		assert.Equal(t, 3, recs[1].Order)
	})

	t.Run("transaction commit", func(t *testing.T) {
		err := store.WithinTx(ctx, func(ctx context.Context, tx database.Store) error {
			return tx.UpdateOrder(ctx, model.KindLifeArea, work, 7)
		})
		require.NoError(t, err)

		recs, err := store.ListOrdered(ctx, model.KindLifeArea, "u1")
		require.NoError(t, err)
		assert.Equal(t, health, recs[0].ID)
		assert.Equal(t, 7, recs[1].Order)
	})
}
