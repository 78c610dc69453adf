package engine

import "github.com/julianstephens/tend/internal/models"

// Visible reports whether a habit belongs in views for the given day.
// A deleted habit stays visible through the day it was deleted, so its
// history is preserved, and disappears for later days.
func Visible(h models.Habit, asOfDay string) bool {
	return h.DeletedOn == nil || asOfDay <= *h.DeletedOn
}

// ActiveForAchievements reports whether a habit counts toward a day's
// perfect-day, streak, and perfect-month logic. A habit that did not yet
// exist on the day must not count against it.
func ActiveForAchievements(h models.Habit, day string) bool {
	return Visible(h, day) && h.CreatedOn <= day
}

func activeHabits(habits []models.Habit, day string) []models.Habit {
	var active []models.Habit
	for _, h := range habits {
		if ActiveForAchievements(h, day) {
			active = append(active, h)
		}
	}
	return active
}
