package storage

import "github.com/julianstephens/tend/internal/models"

// View is the transaction-scoped data-access surface the achievement engine
// runs against. A View obtained from Provider.WithTx sees and writes a single
// transaction; the Provider itself also implements View for plain reads.
//
// The engine only ever reads habits and completions through a View and only
// ever writes achievements. Completion writes belong to the habit-management
// caller, which flips the row and invokes the engine pass in the same
// transaction.
type View interface {
	// Habits, ordered by display position. Includes soft-deleted rows;
	// callers filter by the visibility predicates.
	ListHabits() ([]models.Habit, error)
	GetHabit(id string) (models.Habit, error)

	// Completion log.
	CompletionExists(habitID, day string) (bool, error)
	CountCompletions(habitID, fromDay, toDay string) (int, error)
	AddCompletion(habitID, day string) error
	DeleteCompletion(habitID, day string) error

	// Achievement ledger. UpsertAchievement is insert-if-absent: re-awarding
	// an existing (type, habit, earned_on) triple is a no-op.
	UpsertAchievement(a models.Achievement) error
	DeleteAchievement(t models.AchievementType, habitID, earnedOn string) error
	DeleteAchievementsInRange(t models.AchievementType, habitID, fromDay, toDay string) error
	AchievementStats() ([]models.AchievementStat, error)
	ListAchievements() ([]models.Achievement, error)
}

// Provider is the full storage collaborator: lifecycle, habit management,
// log reads, and transactional execution.
type Provider interface {
	View

	// Lifecycle
	Init() error
	Load() error
	Close() error
	GetConfigPath() string

	// Habit management. Deletion is a tombstone: the row stays, deleted_on
	// is stamped with the given day. MoveHabit renumbers positions densely.
	AddHabit(habit models.Habit) error
	GetHabitByName(name string) (models.Habit, error)
	RenameHabit(id, name string) error
	DeleteHabit(id, day string) error
	RestoreHabit(id string) error
	MoveHabit(id string, position int) error

	// CompletionDays returns the set of completed days for a habit within
	// the inclusive range, for log and export reads.
	CompletionDays(habitID, fromDay, toDay string) (map[string]bool, error)
	// CompletionsForDay returns all completions recorded for a day.
	CompletionsForDay(day string) ([]models.Completion, error)

	// WithTx runs fn against a single transaction. If fn returns an error
	// the transaction rolls back and nothing fn did is persisted.
	WithTx(fn func(View) error) error
}
