package engine

import (
	"testing"

	"github.com/julianstephens/tend/internal/models"
)

// The worked scenario: habits A and B complete every day of the first week of
// January, then A's completion on the 3rd is edited away.
func TestInvalidateScenario(t *testing.T) {
	store := setupTestStore(t)

	a := addHabit(t, store, "A", "2024-01-01")
	b := addHabit(t, store, "B", "2024-01-01")
	completeRange(t, store, a.ID, "2024-01-01", "2024-01-07")
	completeRange(t, store, b.ID, "2024-01-01", "2024-01-07")

	award(t, store, "2024-01-07")

	achievements := listAchievements(t, store)
	for _, want := range []models.Achievement{
		{Type: models.PerfectDay, HabitID: models.GlobalHabitID, EarnedOn: "2024-01-07"},
		{Type: models.Streak7, HabitID: a.ID, EarnedOn: "2024-01-07"},
		{Type: models.Streak7, HabitID: b.ID, EarnedOn: "2024-01-07"},
		{Type: models.Streak7, HabitID: models.GlobalHabitID, EarnedOn: "2024-01-07"},
	} {
		if !hasAchievement(achievements, want.Type, want.HabitID, want.EarnedOn) {
			t.Errorf("missing expected achievement %+v", want)
		}
	}

	// Un-complete A on the 3rd; the 3rd falls inside the 7-day window
	// ending on the 7th, so both streak_7 rows for that window go.
	if err := store.DeleteCompletion(a.ID, "2024-01-03"); err != nil {
		t.Fatalf("delete completion failed: %v", err)
	}
	invalidate(t, store, "2024-01-03", a.ID)

	achievements = listAchievements(t, store)
	if hasAchievement(achievements, models.Streak7, a.ID, "2024-01-07") {
		t.Error("A's streak_7 must be retracted")
	}
	if hasAchievement(achievements, models.Streak7, models.GlobalHabitID, "2024-01-07") {
		t.Error("global streak_7 must be retracted")
	}
	if !hasAchievement(achievements, models.PerfectDay, models.GlobalHabitID, "2024-01-07") {
		t.Error("perfect_day on the 7th must survive an edit to the 3rd")
	}
	if !hasAchievement(achievements, models.Streak7, b.ID, "2024-01-07") {
		t.Error("B's streak_7 must survive an edit to A")
	}
}

func TestInvalidatePerfectDay(t *testing.T) {
	store := setupTestStore(t)

	h := addHabit(t, store, "Solo", "2024-01-01")
	complete(t, store, h.ID, "2024-01-10")
	award(t, store, "2024-01-10")

	if err := store.DeleteCompletion(h.ID, "2024-01-10"); err != nil {
		t.Fatalf("delete completion failed: %v", err)
	}
	invalidate(t, store, "2024-01-10", h.ID)

	achievements := listAchievements(t, store)
	if hasAchievement(achievements, models.PerfectDay, models.GlobalHabitID, "2024-01-10") {
		t.Error("perfect_day must be retracted for the cleared day")
	}
}

func TestInvalidateWindowBounds(t *testing.T) {
	store := setupTestStore(t)

	h := addHabit(t, store, "Walk", "2024-01-01")
	// Two separate 7-day runs, scored at their respective 7th days.
	completeRange(t, store, h.ID, "2024-01-01", "2024-01-07")
	completeRange(t, store, h.ID, "2024-01-09", "2024-01-15")
	award(t, store, "2024-01-07")
	award(t, store, "2024-01-15")

	achievements := listAchievements(t, store)
	if !hasAchievement(achievements, models.Streak7, h.ID, "2024-01-07") ||
		!hasAchievement(achievements, models.Streak7, h.ID, "2024-01-15") {
		t.Fatal("expected streak_7 at both run ends")
	}

	// Clearing the 7th retracts windows ending in [01-07, 01-13]. The run
	// scored at the 15th is outside that range and survives.
	if err := store.DeleteCompletion(h.ID, "2024-01-07"); err != nil {
		t.Fatalf("delete completion failed: %v", err)
	}
	invalidate(t, store, "2024-01-07", h.ID)

	achievements = listAchievements(t, store)
	if hasAchievement(achievements, models.Streak7, h.ID, "2024-01-07") {
		t.Error("streak_7 inside the invalidation window must be retracted")
	}
	if !hasAchievement(achievements, models.Streak7, h.ID, "2024-01-15") {
		t.Error("streak_7 outside the invalidation window must survive")
	}
}

func TestInvalidatePerfectMonth(t *testing.T) {
	store := setupTestStore(t)

	h := addHabit(t, store, "Journal", "2023-12-01")
	completeRange(t, store, h.ID, "2024-01-01", "2024-01-31")
	award(t, store, "2024-02-01")

	if err := store.DeleteCompletion(h.ID, "2024-01-17"); err != nil {
		t.Fatalf("delete completion failed: %v", err)
	}
	invalidate(t, store, "2024-01-17", h.ID)

	achievements := listAchievements(t, store)
	if hasAchievement(achievements, models.PerfectMonth, h.ID, "2024-01-01") {
		t.Error("per-habit perfect_month must be retracted for the edited month")
	}
	if hasAchievement(achievements, models.PerfectMonth, models.GlobalHabitID, "2024-01-01") {
		t.Error("global perfect_month must be retracted for the edited month")
	}
}

// Invalidation never re-awards: restoring the condition takes a fresh award
// pass, which records a new earned date rather than resurrecting the old row.
func TestInvalidateDoesNotReaward(t *testing.T) {
	store := setupTestStore(t)
	e := New(store)

	h := addHabit(t, store, "Swim", "2024-01-01")
	completeRange(t, store, h.ID, "2024-01-01", "2024-01-07")
	award(t, store, "2024-01-07")

	// Clear and restore day 3 through the toggle path.
	if _, err := e.ToggleCompletion("2024-01-03", h.ID); err != nil {
		t.Fatalf("toggle off failed: %v", err)
	}
	achievements := listAchievements(t, store)
	if hasAchievement(achievements, models.Streak7, h.ID, "2024-01-07") {
		t.Fatal("streak_7 must be retracted after the toggle off")
	}

	if _, err := e.ToggleCompletion("2024-01-03", h.ID); err != nil {
		t.Fatalf("toggle on failed: %v", err)
	}
	achievements = listAchievements(t, store)

	// The award pass runs as of the re-completed day; the run ending there
	// is only 3 days, so the old streak_7 stays retracted until a later
	// day's pass re-qualifies a full window.
	if hasAchievement(achievements, models.Streak7, h.ID, "2024-01-07") {
		t.Error("retracted streak_7 must not silently reappear")
	}

	award(t, store, "2024-01-07")
	achievements = listAchievements(t, store)
	if !hasAchievement(achievements, models.Streak7, h.ID, "2024-01-07") {
		t.Error("a fresh award pass at the window end must re-derive the streak")
	}
}
