package models

import (
	"fmt"

	"github.com/julianstephens/tend/internal/constants"
)

// AchievementType identifies a milestone kind.
type AchievementType string

const (
	PerfectDay   AchievementType = "perfect_day"
	Streak7      AchievementType = "streak_7"
	Streak14     AchievementType = "streak_14"
	Streak21     AchievementType = "streak_21"
	PerfectMonth AchievementType = "perfect_month"
)

// GlobalHabitID marks an achievement that spans all active habits at once.
const GlobalHabitID = constants.GlobalHabitID

// Achievement is a durable milestone record. Identity is the full
// (Type, HabitID, EarnedOn) triple, so re-awarding the same triple is a no-op.
// For streak types EarnedOn is the day the Nth consecutive completion
// occurred; for PerfectMonth it is the first day of the month.
type Achievement struct {
	Type     AchievementType `json:"type"`
	HabitID  string          `json:"habit_id,omitempty"`
	EarnedOn string          `json:"earned_on"` // YYYY-MM-DD
}

// Global reports whether the achievement is cross-habit.
func (a Achievement) Global() bool {
	return a.HabitID == GlobalHabitID
}

// StreakType returns the achievement type for a streak threshold.
// Panics on an unknown threshold; callers iterate the fixed set.
func StreakType(days int) AchievementType {
	switch days {
	case constants.StreakBronze:
		return Streak7
	case constants.StreakSilver:
		return Streak14
	case constants.StreakGold:
		return Streak21
	}
	panic(fmt.Sprintf("no streak achievement for %d days", days))
}

// Label returns a human-readable name for the achievement type.
func (t AchievementType) Label() string {
	switch t {
	case PerfectDay:
		return "Perfect day"
	case Streak7:
		return "7-day streak"
	case Streak14:
		return "14-day streak"
	case Streak21:
		return "21-day streak"
	case PerfectMonth:
		return "Perfect month"
	}
	return string(t)
}

// AchievementStat is one row of the achievement projection: how many times a
// (type, habit) pair has been earned and the most recent earned day.
type AchievementStat struct {
	Type         AchievementType `json:"type"`
	HabitID      string          `json:"habit_id,omitempty"`
	Count        int             `json:"count"`
	LastEarnedOn string          `json:"last_earned_on"`
}

// AchievementTypes lists all types in display order.
var AchievementTypes = []AchievementType{
	PerfectDay, Streak7, Streak14, Streak21, PerfectMonth,
}
