package engine

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/julianstephens/tend/internal/apperr"
	"github.com/julianstephens/tend/internal/dateutil"
	"github.com/julianstephens/tend/internal/models"
	"github.com/julianstephens/tend/internal/storage"
)

func setupTestStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()

	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "tend.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func addHabit(t *testing.T, store storage.Provider, name, createdOn string) models.Habit {
	t.Helper()

	habits, err := store.ListHabits()
	if err != nil {
		t.Fatalf("failed to list habits: %v", err)
	}

	h := models.Habit{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedOn: createdOn,
		Position:  len(habits),
	}
	if err := store.AddHabit(h); err != nil {
		t.Fatalf("failed to add habit %q: %v", name, err)
	}
	return h
}

func complete(t *testing.T, store storage.Provider, habitID string, days ...string) {
	t.Helper()
	for _, day := range days {
		if err := store.AddCompletion(habitID, day); err != nil {
			t.Fatalf("failed to add completion %s/%s: %v", habitID, day, err)
		}
	}
}

func completeRange(t *testing.T, store storage.Provider, habitID, from, to string) {
	t.Helper()
	for day := from; day <= to; day = shift(day, 1) {
		complete(t, store, habitID, day)
	}
}

func shift(day string, delta int) string {
	return dateutil.ShiftDate(day, delta)
}

func listAchievements(t *testing.T, store storage.Provider) []models.Achievement {
	t.Helper()
	achievements, err := store.ListAchievements()
	if err != nil {
		t.Fatalf("failed to list achievements: %v", err)
	}
	return achievements
}

func hasAchievement(achievements []models.Achievement, typ models.AchievementType, habitID, earnedOn string) bool {
	for _, a := range achievements {
		if a.Type == typ && a.HabitID == habitID && a.EarnedOn == earnedOn {
			return true
		}
	}
	return false
}

func award(t *testing.T, store storage.Provider, day string) {
	t.Helper()
	if err := Award(store, day); err != nil {
		t.Fatalf("award pass failed for %s: %v", day, err)
	}
}

func invalidate(t *testing.T, store storage.Provider, day, habitID string) {
	t.Helper()
	if err := Invalidate(store, day, habitID); err != nil {
		t.Fatalf("invalidation pass failed for %s: %v", day, err)
	}
}

func TestToggleCompletion(t *testing.T) {
	store := setupTestStore(t)
	e := New(store)

	h := addHabit(t, store, "Read", "2024-01-01")

	done, err := e.ToggleCompletion("2024-01-10", h.ID)
	if err != nil {
		t.Fatalf("toggle on failed: %v", err)
	}
	if !done {
		t.Error("expected toggle on to report completed")
	}

	exists, err := store.CompletionExists(h.ID, "2024-01-10")
	if err != nil {
		t.Fatalf("completion check failed: %v", err)
	}
	if !exists {
		t.Error("expected completion record after toggle on")
	}

	done, err = e.ToggleCompletion("2024-01-10", h.ID)
	if err != nil {
		t.Fatalf("toggle off failed: %v", err)
	}
	if done {
		t.Error("expected toggle off to report not completed")
	}

	exists, err = store.CompletionExists(h.ID, "2024-01-10")
	if err != nil {
		t.Fatalf("completion check failed: %v", err)
	}
	if exists {
		t.Error("expected no completion record after toggle off")
	}
}

func TestToggleCompletionUnknownHabit(t *testing.T) {
	store := setupTestStore(t)
	e := New(store)

	_, err := e.ToggleCompletion("2024-01-10", "no-such-habit")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// The failed toggle must leave no stray rows behind.
	if got := listAchievements(t, store); len(got) != 0 {
		t.Errorf("expected no achievements, got %d", len(got))
	}
}

func TestToggleCompletionInvalidDate(t *testing.T) {
	store := setupTestStore(t)
	e := New(store)
	h := addHabit(t, store, "Read", "2024-01-01")

	for _, day := range []string{"", "01-10-2024", "2024-1-1", "not-a-date"} {
		if _, err := e.ToggleCompletion(day, h.ID); !errors.Is(err, apperr.ErrInvalidDate) {
			t.Errorf("ToggleCompletion(%q) error = %v, want ErrInvalidDate", day, err)
		}
	}
	if err := e.OnCompletionToggled("2024/01/10", h.ID, true); !errors.Is(err, apperr.ErrInvalidDate) {
		t.Errorf("OnCompletionToggled error = %v, want ErrInvalidDate", err)
	}
}

func TestVisibility(t *testing.T) {
	deletedOn := "2024-03-10"
	tests := []struct {
		name  string
		habit models.Habit
		day   string
		want  bool
	}{
		{
			name:  "live habit is visible",
			habit: models.Habit{CreatedOn: "2024-01-01"},
			day:   "2024-06-01",
			want:  true,
		},
		{
			name:  "visible on the deletion day itself",
			habit: models.Habit{CreatedOn: "2024-01-01", DeletedOn: &deletedOn},
			day:   "2024-03-10",
			want:  true,
		},
		{
			name:  "hidden after the deletion day",
			habit: models.Habit{CreatedOn: "2024-01-01", DeletedOn: &deletedOn},
			day:   "2024-03-11",
			want:  false,
		},
		{
			name:  "visible before the deletion day",
			habit: models.Habit{CreatedOn: "2024-01-01", DeletedOn: &deletedOn},
			day:   "2024-02-01",
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Visible(tt.habit, tt.day); got != tt.want {
				t.Errorf("Visible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestActiveForAchievements(t *testing.T) {
	h := models.Habit{CreatedOn: "2024-02-15"}

	if ActiveForAchievements(h, "2024-02-14") {
		t.Error("habit must not be active before its creation day")
	}
	if !ActiveForAchievements(h, "2024-02-15") {
		t.Error("habit must be active on its creation day")
	}
	if !ActiveForAchievements(h, "2024-03-01") {
		t.Error("habit must be active after its creation day")
	}
}
