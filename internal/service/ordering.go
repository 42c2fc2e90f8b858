package service

import (
	"context"

	"github.com/forgo/northstar/internal/database"
	"github.com/forgo/northstar/internal/model"
)

// Ordered records keep a dense 1..N order per user. Both helpers issue
// several writes and must run inside one transaction.

// InsertAtOrder opens a slot for a new record at the requested position and
// returns the position actually used. The request is clamped into [1, N+1]
// and every record at or after it moves down by one.
func (s *Invariants) InsertAtOrder(ctx context.Context, tx database.Store, kind model.EntityKind, userID string, requested int) (int, error) {
	recs, err := tx.ListOrdered(ctx, kind, userID)
	if err != nil {
		return 0, err
	}

	pos := clampOrder(requested, len(recs)+1)

	// Highest first so no two rows share an order mid-shift.
	for i := len(recs) - 1; i >= 0; i-- {
		rec := recs[i]
		if rec.Order < pos {
			continue
		}
		if err := tx.UpdateOrder(ctx, kind, rec.ID, rec.Order+1); err != nil {
			return 0, err
		}
	}
	return pos, nil
}

// Resequence reassigns orders 1..N keeping the current relative order, and
// returns how many records changed.
func (s *Invariants) Resequence(ctx context.Context, tx database.Store, kind model.EntityKind, userID string) (int, error) {
	recs, err := tx.ListOrdered(ctx, kind, userID)
	if err != nil {
		return 0, err
	}

	changed := 0
	for i, rec := range recs {
		want := i + 1
		if rec.Order == want {
			continue
		}
		if err := tx.UpdateOrder(ctx, kind, rec.ID, want); err != nil {
			return changed, err
		}
		changed++
	}
	return changed, nil
}

func clampOrder(requested, last int) int {
	if requested < 1 {
		return 1
	}
	if requested > last {
		return last
	}
	return requested
}
