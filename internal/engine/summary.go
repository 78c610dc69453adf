package engine

import (
	"github.com/julianstephens/tend/internal/apperr"
	"github.com/julianstephens/tend/internal/dateutil"
	"github.com/julianstephens/tend/internal/models"
)

// Summary is a read-only projection of the achievement ledger: per-type
// counts and the most recent earned day, globally and per visible habit.
type Summary struct {
	Global   []models.AchievementStat            `json:"global"`
	PerHabit map[string][]models.AchievementStat `json:"per_habit"` // keyed by habit ID
	Habits   map[string]models.Habit             `json:"habits"`    // visible habits by ID
}

// Summary assembles the achievement projection as seen on today. Stats for
// habits no longer visible are dropped; their ledger rows stay in storage
// untouched.
func (e *Engine) Summary(today string) (*Summary, error) {
	if !dateutil.Valid(today) {
		return nil, apperr.InvalidDate(today)
	}

	habits, err := e.store.ListHabits()
	if err != nil {
		return nil, err
	}
	visible := make(map[string]models.Habit)
	for _, h := range habits {
		if Visible(h, today) {
			visible[h.ID] = h
		}
	}

	stats, err := e.store.AchievementStats()
	if err != nil {
		return nil, err
	}

	out := &Summary{
		PerHabit: make(map[string][]models.AchievementStat),
		Habits:   visible,
	}
	for _, st := range stats {
		if st.HabitID == models.GlobalHabitID {
			out.Global = append(out.Global, st)
			continue
		}
		if _, ok := visible[st.HabitID]; !ok {
			continue
		}
		out.PerHabit[st.HabitID] = append(out.PerHabit[st.HabitID], st)
	}
	return out, nil
}
