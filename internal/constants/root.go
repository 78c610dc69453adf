package constants

const (
	AppName            = "tend"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/tend/tend.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// GlobalHabitID is the habit_id sentinel for cross-habit achievements.
	// Stored as an empty string rather than NULL so the achievements primary
	// key keeps global rows unique too.
	GlobalHabitID = ""

	// Streak thresholds that earn an achievement, in ascending order.
	StreakBronze = 7
	StreakSilver = 14
	StreakGold   = 21

	// DefaultLogDays is the window shown by `tend log`.
	DefaultLogDays = 14
)
