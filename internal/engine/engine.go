// Package engine computes habit streaks and derives the achievement ledger.
//
// The engine is stateless: every operation is a pure function over a
// storage.View, with the reference day ("today") passed in explicitly so
// behavior is deterministic under test. It reads habits and completions and
// writes only achievement rows; completion toggles themselves belong to the
// caller, which flips the row and runs the matching engine pass in the same
// transaction.
package engine

import (
	"github.com/julianstephens/tend/internal/apperr"
	"github.com/julianstephens/tend/internal/dateutil"
	"github.com/julianstephens/tend/internal/logger"
	"github.com/julianstephens/tend/internal/storage"
)

// Engine wires the pure passes to a storage provider.
type Engine struct {
	store storage.Provider
}

func New(store storage.Provider) *Engine {
	return &Engine{store: store}
}

// OnCompletionToggled runs the pass matching a completion change that has
// already been written: the award pass when the day was just completed, the
// invalidation pass when it was just cleared. The pass runs in its own
// transaction; either every achievement change commits or none do.
func (e *Engine) OnCompletionToggled(day, habitID string, nowCompleted bool) error {
	if !dateutil.Valid(day) {
		return apperr.InvalidDate(day)
	}

	return e.store.WithTx(func(v storage.View) error {
		if nowCompleted {
			return Award(v, day)
		}
		return Invalidate(v, day, habitID)
	})
}

// ToggleCompletion flips the completion record for (habitID, day) and runs
// the matching pass, all inside one transaction. It returns the new
// completion state. If anything fails the completion flip rolls back along
// with any achievement changes.
func (e *Engine) ToggleCompletion(day, habitID string) (bool, error) {
	if !dateutil.Valid(day) {
		return false, apperr.InvalidDate(day)
	}

	var nowCompleted bool
	err := e.store.WithTx(func(v storage.View) error {
		if _, err := v.GetHabit(habitID); err != nil {
			return err
		}

		done, err := v.CompletionExists(habitID, day)
		if err != nil {
			return err
		}

		if done {
			if err := v.DeleteCompletion(habitID, day); err != nil {
				return err
			}
			nowCompleted = false
			return Invalidate(v, day, habitID)
		}

		if err := v.AddCompletion(habitID, day); err != nil {
			return err
		}
		nowCompleted = true
		return Award(v, day)
	})
	if err != nil {
		return false, err
	}

	logger.Debug("Completion toggled", "habit", habitID, "day", day, "completed", nowCompleted)
	return nowCompleted, nil
}
