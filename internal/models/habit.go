package models

// Habit represents a recurring daily practice to track.
//
// CreatedOn and DeletedOn are calendar days (YYYY-MM-DD). DeletedOn is the
// soft-delete tombstone: it is set if and only if the habit has been deleted.
// Habits are never physically removed once created.
type Habit struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	CreatedOn string  `json:"created_on"`
	Position  int     `json:"position"`
	DeletedOn *string `json:"deleted_on,omitempty"`
}

// Deleted reports whether the habit has been soft-deleted.
func (h Habit) Deleted() bool {
	return h.DeletedOn != nil
}

// Completion is the fact that a habit was marked done on a calendar day.
// Identity is the (HabitID, Day) pair; there is no multiplicity and no
// timestamp beyond the day.
type Completion struct {
	HabitID string `json:"habit_id"`
	Day     string `json:"day"` // YYYY-MM-DD
}
