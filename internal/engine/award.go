package engine

import (
	"github.com/julianstephens/tend/internal/constants"
	"github.com/julianstephens/tend/internal/dateutil"
	"github.com/julianstephens/tend/internal/models"
	"github.com/julianstephens/tend/internal/storage"
)

var streakThresholds = []int{constants.StreakBronze, constants.StreakSilver, constants.StreakGold}

// Award records every achievement newly earned as of day, after a completion
// was marked done for that day. Safe to invoke redundantly: achievement
// identity is the full (type, habit, earned_on) triple, so repeats are
// no-ops. Must run inside the same transaction as the completion write.
func Award(v storage.View, day string) error {
	habits, err := v.ListHabits()
	if err != nil {
		return err
	}
	active := activeHabits(habits, day)

	if err := awardPerfectDay(v, active, day); err != nil {
		return err
	}
	if err := awardHabitStreaks(v, active, day); err != nil {
		return err
	}
	if err := awardGlobalStreaks(v, habits, day); err != nil {
		return err
	}
	return awardPerfectMonth(v, habits, day)
}

// awardPerfectDay grants the global perfect_day when every active habit has
// a completion for day. An empty active set never qualifies; "all zero
// habits are done" is vacuously true and deliberately rejected.
func awardPerfectDay(v storage.View, active []models.Habit, day string) error {
	if len(active) == 0 {
		return nil
	}
	for _, h := range active {
		done, err := v.CompletionExists(h.ID, day)
		if err != nil {
			return err
		}
		if !done {
			return nil
		}
	}
	return v.UpsertAchievement(models.Achievement{
		Type:     models.PerfectDay,
		HabitID:  models.GlobalHabitID,
		EarnedOn: day,
	})
}

// awardHabitStreaks grants streak_7/14/21 per habit based on the committed
// run ending at day. A run of 21 earns all three types at day.
func awardHabitStreaks(v storage.View, active []models.Habit, day string) error {
	for _, h := range active {
		run, err := committedRun(v, h.ID, day)
		if err != nil {
			return err
		}
		for _, n := range streakThresholds {
			if run < n {
				break
			}
			err := v.UpsertAchievement(models.Achievement{
				Type:     models.StreakType(n),
				HabitID:  h.ID,
				EarnedOn: day,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// awardGlobalStreaks grants global streak_N when each of the N days ending
// at day had a non-empty active-habit set with every member completed. The
// active set is evaluated per day inside the window, so habits created or
// deleted mid-window are judged only for the days they existed.
func awardGlobalStreaks(v storage.View, habits []models.Habit, day string) error {
	for _, n := range streakThresholds {
		qualified := true
		cur := day
		for i := 0; i < n; i++ {
			ok, err := allActiveDone(v, habits, cur)
			if err != nil {
				return err
			}
			if !ok {
				qualified = false
				break
			}
			cur = dateutil.ShiftDate(cur, -1)
		}
		if !qualified {
			// A longer window contains this one; no point checking it.
			break
		}
		err := v.UpsertAchievement(models.Achievement{
			Type:     models.StreakType(n),
			HabitID:  models.GlobalHabitID,
			EarnedOn: day,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// awardPerfectMonth evaluates the most recently fully-elapsed month: the
// calendar month immediately preceding day's month. Per-habit awards go to
// habits that existed on or before the first of that month and completed
// every day; the global award additionally requires every day of the month
// to have had a non-empty, fully-completed active set. Awards are keyed by
// first-of-month, so re-running on later days in the same month is
// idempotent.
func awardPerfectMonth(v storage.View, habits []models.Habit, day string) error {
	first := dateutil.PrevMonthFirst(day)
	last := dateutil.LastOfMonth(first)
	year, month := dateutil.YearMonth(first)
	monthLen := dateutil.DaysInMonth(year, month)

	for _, h := range habits {
		if !ActiveForAchievements(h, day) || h.CreatedOn > first {
			continue
		}
		count, err := v.CountCompletions(h.ID, first, last)
		if err != nil {
			return err
		}
		if count < monthLen {
			continue
		}
		err = v.UpsertAchievement(models.Achievement{
			Type:     models.PerfectMonth,
			HabitID:  h.ID,
			EarnedOn: first,
		})
		if err != nil {
			return err
		}
	}

	for cur := first; cur <= last; cur = dateutil.ShiftDate(cur, 1) {
		ok, err := allActiveDone(v, habits, cur)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	return v.UpsertAchievement(models.Achievement{
		Type:     models.PerfectMonth,
		HabitID:  models.GlobalHabitID,
		EarnedOn: first,
	})
}

// allActiveDone reports whether day had at least one active habit and every
// active habit completed. An empty active set fails, mirroring the
// perfect-day vacuous-truth rule.
func allActiveDone(v storage.View, habits []models.Habit, day string) (bool, error) {
	n := 0
	for _, h := range habits {
		if !ActiveForAchievements(h, day) {
			continue
		}
		n++
		done, err := v.CompletionExists(h.ID, day)
		if err != nil {
			return false, err
		}
		if !done {
			return false, nil
		}
	}
	return n > 0, nil
}
