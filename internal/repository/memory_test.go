package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/northstar/internal/database"
	"github.com/forgo/northstar/internal/model"
)

var _ database.Store = (*MemoryStore)(nil)
var _ database.TxRunner = (*MemoryStore)(nil)

func TestMemoryStore_Contract(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	runStoreContract(t, store, func(_ *testing.T, rec model.Record) string {
		return store.Put(rec)
	})
}

func TestMemoryStore_PutAssignsID(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	id := store.Put(model.Record{Kind: model.KindGoal, UserID: "u1", Label: "Run"})
	assert.Len(t, id, 36)

	rec, ok := store.Get(model.KindGoal, id)
	require.True(t, ok)
	assert.Equal(t, "Run", rec.Label)

	_, ok = store.Get(model.KindGoal, "nope")
	assert.False(t, ok)
}

func TestMemoryStore_TxSeesOwnWrites(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	id := store.Put(model.Record{Kind: model.KindLifeArea, UserID: "u1", Label: "Health", Order: 1})

	err := store.WithinTx(context.Background(), func(ctx context.Context, tx database.Store) error {
		if err := tx.UpdateOrder(ctx, model.KindLifeArea, id, 5); err != nil {
			return err
		}
		recs, err := tx.ListOrdered(ctx, model.KindLifeArea, "u1")
		if err != nil {
			return err
		}
		assert.Equal(t, 5, recs[0].Order)
		return nil
	})
	require.NoError(t, err)

	live, ok := store.Get(model.KindLifeArea, id)
	require.True(t, ok)
	assert.Equal(t, 5, live.Order)
}

func TestMemoryStore_UnknownKind(t *testing.T) {
	t.Parallel()

	_, err := NewMemoryStore().CountWhere(context.Background(), model.EntityKind("habit"), model.Filter{})
	assert.ErrorIs(t, err, database.ErrUnsupported)
}
