package engine

import "testing"

func TestStreakAsOf(t *testing.T) {
	store := setupTestStore(t)
	h := addHabit(t, store, "Stretch", "2024-01-01")
	completeRange(t, store, h.ID, "2024-01-03", "2024-01-07")

	tests := []struct {
		name    string
		viewDay string
		today   string
		want    int
	}{
		{
			name:    "completed view day counts itself",
			viewDay: "2024-01-07",
			today:   "2024-01-07",
			want:    5,
		},
		{
			name:    "mid-run view day counts only up to itself",
			viewDay: "2024-01-05",
			today:   "2024-01-07",
			want:    3,
		},
		{
			name:    "incomplete today falls back to yesterday",
			viewDay: "2024-01-08",
			today:   "2024-01-08",
			want:    5,
		},
		{
			name:    "incomplete past day has no streak",
			viewDay: "2024-01-08",
			today:   "2024-01-09",
			want:    0,
		},
		{
			name:    "day before the run started",
			viewDay: "2024-01-02",
			today:   "2024-01-07",
			want:    0,
		},
		{
			name:    "incomplete today with no yesterday either",
			viewDay: "2024-01-10",
			today:   "2024-01-10",
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StreakAsOf(store, h.ID, tt.viewDay, tt.today)
			if err != nil {
				t.Fatalf("StreakAsOf failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("StreakAsOf(%s, today=%s) = %d, want %d", tt.viewDay, tt.today, got, tt.want)
			}
		})
	}
}

func TestStreakTodayShiftRule(t *testing.T) {
	store := setupTestStore(t)
	h := addHabit(t, store, "Meditate", "2024-01-01")

	// Done yesterday and the day before, not yet today.
	complete(t, store, h.ID, "2024-01-05", "2024-01-06")

	got, err := StreakAsOf(store, h.ID, "2024-01-07", "2024-01-07")
	if err != nil {
		t.Fatalf("StreakAsOf failed: %v", err)
	}
	if got != 2 {
		t.Errorf("streak = %d, want 2 (incomplete today must not zero the streak)", got)
	}
}

func TestStreaksAsOfRanking(t *testing.T) {
	store := setupTestStore(t)
	e := New(store)

	short := addHabit(t, store, "Short", "2024-01-01")
	long := addHabit(t, store, "Long", "2024-01-01")
	idle := addHabit(t, store, "Idle", "2024-01-01")

	completeRange(t, store, short.ID, "2024-01-06", "2024-01-07")
	completeRange(t, store, long.ID, "2024-01-01", "2024-01-07")
	_ = idle

	streaks, err := e.StreaksAsOf("2024-01-07", "2024-01-07")
	if err != nil {
		t.Fatalf("StreaksAsOf failed: %v", err)
	}

	if len(streaks) != 2 {
		t.Fatalf("expected 2 habits with a streak, got %d", len(streaks))
	}
	if streaks[0].Habit.ID != long.ID || streaks[0].Streak != 7 {
		t.Errorf("first = %s/%d, want %s/7", streaks[0].Habit.Name, streaks[0].Streak, "Long")
	}
	if streaks[1].Habit.ID != short.ID || streaks[1].Streak != 2 {
		t.Errorf("second = %s/%d, want %s/2", streaks[1].Habit.Name, streaks[1].Streak, "Short")
	}
}

func TestStreaksAsOfTieKeepsDisplayOrder(t *testing.T) {
	store := setupTestStore(t)
	e := New(store)

	first := addHabit(t, store, "First", "2024-01-01")
	second := addHabit(t, store, "Second", "2024-01-01")

	completeRange(t, store, first.ID, "2024-01-05", "2024-01-07")
	completeRange(t, store, second.ID, "2024-01-05", "2024-01-07")

	streaks, err := e.StreaksAsOf("2024-01-07", "2024-01-07")
	if err != nil {
		t.Fatalf("StreaksAsOf failed: %v", err)
	}
	if len(streaks) != 2 {
		t.Fatalf("expected 2 streaks, got %d", len(streaks))
	}
	if streaks[0].Habit.ID != first.ID || streaks[1].Habit.ID != second.ID {
		t.Error("tied streaks must keep display order")
	}
}

func TestStreaksAsOfSkipsDeletedHabits(t *testing.T) {
	store := setupTestStore(t)
	e := New(store)

	h := addHabit(t, store, "Gone", "2024-01-01")
	completeRange(t, store, h.ID, "2024-01-01", "2024-01-05")
	if err := store.DeleteHabit(h.ID, "2024-01-05"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// Still listed on the deletion day.
	streaks, err := e.StreaksAsOf("2024-01-05", "2024-01-05")
	if err != nil {
		t.Fatalf("StreaksAsOf failed: %v", err)
	}
	if len(streaks) != 1 {
		t.Fatalf("expected the habit on its deletion day, got %d entries", len(streaks))
	}

	// Gone the day after.
	streaks, err = e.StreaksAsOf("2024-01-06", "2024-01-06")
	if err != nil {
		t.Fatalf("StreaksAsOf failed: %v", err)
	}
	if len(streaks) != 0 {
		t.Fatalf("expected no streaks after deletion day, got %d", len(streaks))
	}
}
