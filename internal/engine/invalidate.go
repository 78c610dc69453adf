package engine

import (
	"github.com/julianstephens/tend/internal/dateutil"
	"github.com/julianstephens/tend/internal/models"
	"github.com/julianstephens/tend/internal/storage"
)

// Invalidate retracts every achievement whose qualifying window could have
// included the completion just cleared from (habitID, day):
//
//   - the global perfect_day earned exactly on day;
//   - per-habit and global streak_N earned anywhere in [day, day+N-1],
//     since a streak of N ending there spans back over day;
//   - per-habit and global perfect_month for day's month, keyed by its
//     first-of-month.
//
// It never re-derives or re-awards; if the user later restores the
// condition a separate award pass records it again, at a new earned date.
// Must run inside the same transaction as the completion delete.
func Invalidate(v storage.View, day, habitID string) error {
	err := v.DeleteAchievement(models.PerfectDay, models.GlobalHabitID, day)
	if err != nil {
		return err
	}

	for _, n := range streakThresholds {
		windowEnd := dateutil.ShiftDate(day, n-1)
		t := models.StreakType(n)
		if err := v.DeleteAchievementsInRange(t, habitID, day, windowEnd); err != nil {
			return err
		}
		if err := v.DeleteAchievementsInRange(t, models.GlobalHabitID, day, windowEnd); err != nil {
			return err
		}
	}

	first := dateutil.FirstOfMonth(day)
	if err := v.DeleteAchievement(models.PerfectMonth, habitID, first); err != nil {
		return err
	}
	return v.DeleteAchievement(models.PerfectMonth, models.GlobalHabitID, first)
}
