package engine

import (
	"sort"

	"github.com/julianstephens/tend/internal/apperr"
	"github.com/julianstephens/tend/internal/dateutil"
	"github.com/julianstephens/tend/internal/models"
	"github.com/julianstephens/tend/internal/storage"
)

// HabitStreak pairs a habit with the length of its current streak.
type HabitStreak struct {
	Habit  models.Habit `json:"habit"`
	Streak int          `json:"streak"`
}

// committedRun is the length of the consecutive-completion run ending at
// day, counting day itself. This is the run the award pass scores; unlike
// StreakAsOf it gives no credit for a not-yet-over "today".
func committedRun(v storage.View, habitID, day string) (int, error) {
	n := 0
	for cur := day; ; cur = dateutil.ShiftDate(cur, -1) {
		done, err := v.CompletionExists(habitID, cur)
		if err != nil {
			return 0, err
		}
		if !done {
			return n, nil
		}
		n++
	}
}

// StreakAsOf returns the length of the habit's consecutive-completion streak
// as seen on viewDay. An incomplete viewDay normally means no streak, except
// when viewDay is today: the day is not over yet, so the walk starts at
// yesterday instead and an intact run keeps its length.
func StreakAsOf(v storage.View, habitID, viewDay, today string) (int, error) {
	done, err := v.CompletionExists(habitID, viewDay)
	if err != nil {
		return 0, err
	}

	start := viewDay
	if !done {
		if viewDay != today {
			return 0, nil
		}
		start = dateutil.ShiftDate(today, -1)
	}
	return committedRun(v, habitID, start)
}

// StreaksAsOf returns every habit visible on viewDay with a positive streak,
// ranked by streak length descending. Ties keep display order.
func (e *Engine) StreaksAsOf(viewDay, today string) ([]HabitStreak, error) {
	if !dateutil.Valid(viewDay) {
		return nil, apperr.InvalidDate(viewDay)
	}

	habits, err := e.store.ListHabits()
	if err != nil {
		return nil, err
	}

	var streaks []HabitStreak
	for _, h := range habits {
		if !Visible(h, viewDay) {
			continue
		}
		n, err := StreakAsOf(e.store, h.ID, viewDay, today)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			streaks = append(streaks, HabitStreak{Habit: h, Streak: n})
		}
	}

	sort.SliceStable(streaks, func(i, j int) bool {
		return streaks[i].Streak > streaks[j].Streak
	})
	return streaks, nil
}

// Streak returns a single habit's streak as seen on viewDay.
func (e *Engine) Streak(habitID, viewDay, today string) (int, error) {
	if !dateutil.Valid(viewDay) {
		return 0, apperr.InvalidDate(viewDay)
	}
	return StreakAsOf(e.store, habitID, viewDay, today)
}
