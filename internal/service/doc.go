// Package service holds the checks that need storage: ownership, soft caps,
// case-insensitive duplicates, goal linkage and order sequencing. It also
// maps storage constraint errors back to user copy.
//
// Checks read through a database.Store passed by the caller, normally the
// handle from database.TxRunner.WithinTx:
//
//	err := store.WithinTx(ctx, func(ctx context.Context, tx database.Store) error {
//	    if err := inv.EnforceActiveGoalCap(ctx, tx, userID, ""); err != nil {
//	        return err
//	    }
//	    return insertGoal(ctx, tx, goal)
//	})
//	if err != nil {
//	    msg := inv.UserCopy(err, service.CopyContext{})
//	    ...
//	}
//
// Rejections are *RuleError values; errors.Is matches them against
// ErrLimitReached, ErrDuplicate and ErrGoalLinkage.
package service
