package sqlite

import (
	"github.com/julianstephens/tend/internal/models"
)

func (s *Queries) CompletionExists(habitID, day string) (bool, error) {
	var count int
	err := s.q.QueryRow(`
		SELECT COUNT(*) FROM completions WHERE habit_id = ? AND day = ?`,
		habitID, day).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Queries) CountCompletions(habitID, fromDay, toDay string) (int, error) {
	var count int
	err := s.q.QueryRow(`
		SELECT COUNT(*) FROM completions
		WHERE habit_id = ? AND day >= ? AND day <= ?`,
		habitID, fromDay, toDay).Scan(&count)
	return count, err
}

// AddCompletion records the fact that a habit was done on a day. Inserting
// an already-recorded (habit, day) pair is a no-op.
func (s *Queries) AddCompletion(habitID, day string) error {
	_, err := s.q.Exec(`
		INSERT INTO completions (habit_id, day) VALUES (?, ?)
		ON CONFLICT(habit_id, day) DO NOTHING`,
		habitID, day)
	return err
}

func (s *Queries) DeleteCompletion(habitID, day string) error {
	_, err := s.q.Exec(`
		DELETE FROM completions WHERE habit_id = ? AND day = ?`,
		habitID, day)
	return err
}

func (s *Queries) CompletionDays(habitID, fromDay, toDay string) (map[string]bool, error) {
	rows, err := s.q.Query(`
		SELECT day FROM completions
		WHERE habit_id = ? AND day >= ? AND day <= ?
		ORDER BY day`, habitID, fromDay, toDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make(map[string]bool)
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		days[day] = true
	}
	return days, rows.Err()
}

func (s *Queries) CompletionsForDay(day string) ([]models.Completion, error) {
	rows, err := s.q.Query(`
		SELECT habit_id, day FROM completions WHERE day = ? ORDER BY habit_id`, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []models.Completion
	for rows.Next() {
		var c models.Completion
		if err := rows.Scan(&c.HabitID, &c.Day); err != nil {
			return nil, err
		}
		completions = append(completions, c)
	}
	return completions, rows.Err()
}
