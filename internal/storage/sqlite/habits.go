package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/julianstephens/tend/internal/apperr"
	"github.com/julianstephens/tend/internal/models"
)

func scanHabit(row interface{ Scan(...any) error }) (models.Habit, error) {
	var h models.Habit
	var deletedOn sql.NullString

	if err := row.Scan(&h.ID, &h.Name, &h.CreatedOn, &h.Position, &deletedOn); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, apperr.NotFound("habit")
		}
		return models.Habit{}, err
	}
	if deletedOn.Valid {
		h.DeletedOn = &deletedOn.String
	}
	return h, nil
}

func (s *Queries) AddHabit(habit models.Habit) error {
	var deletedOn sql.NullString
	if habit.DeletedOn != nil {
		deletedOn = sql.NullString{String: *habit.DeletedOn, Valid: true}
	}

	_, err := s.q.Exec(`
		INSERT INTO habits (id, name, created_on, position, deleted_on)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			position = excluded.position,
			deleted_on = excluded.deleted_on`,
		habit.ID, habit.Name, habit.CreatedOn, habit.Position, deletedOn)
	return err
}

func (s *Queries) GetHabit(id string) (models.Habit, error) {
	row := s.q.QueryRow(`
		SELECT id, name, created_on, position, deleted_on
		FROM habits WHERE id = ?`, id)
	return scanHabit(row)
}

func (s *Queries) GetHabitByName(name string) (models.Habit, error) {
	row := s.q.QueryRow(`
		SELECT id, name, created_on, position, deleted_on
		FROM habits WHERE name = ? AND deleted_on IS NULL`, name)
	return scanHabit(row)
}

// ListHabits returns every habit, soft-deleted ones included, ordered by
// display position. Visibility filtering happens in the engine where the
// viewing date is known.
func (s *Queries) ListHabits() ([]models.Habit, error) {
	rows, err := s.q.Query(`
		SELECT id, name, created_on, position, deleted_on
		FROM habits ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *Queries) RenameHabit(id, name string) error {
	result, err := s.q.Exec(`
		UPDATE habits SET name = ? WHERE id = ? AND deleted_on IS NULL`, name, id)
	if err != nil {
		return err
	}
	return requireRow(result, "habit not found or deleted")
}

// DeleteHabit stamps the tombstone day. The row, its completions, and its
// achievements all stay.
func (s *Queries) DeleteHabit(id, day string) error {
	result, err := s.q.Exec(`
		UPDATE habits SET deleted_on = ? WHERE id = ? AND deleted_on IS NULL`, day, id)
	if err != nil {
		return err
	}
	return requireRow(result, "habit not found or already deleted")
}

func (s *Queries) RestoreHabit(id string) error {
	result, err := s.q.Exec(`
		UPDATE habits SET deleted_on = NULL WHERE id = ? AND deleted_on IS NOT NULL`, id)
	if err != nil {
		return err
	}
	return requireRow(result, "habit not found or not deleted")
}

// MoveHabit places the habit at the given position (0-based) and renumbers
// all habits so positions stay dense.
func (s *Queries) MoveHabit(id string, position int) error {
	habits, err := s.ListHabits()
	if err != nil {
		return err
	}

	idx := -1
	for i, h := range habits {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return apperr.NotFound("habit")
	}
	if position < 0 {
		position = 0
	}
	if position >= len(habits) {
		position = len(habits) - 1
	}

	moved := habits[idx]
	habits = append(habits[:idx], habits[idx+1:]...)
	habits = append(habits[:position], append([]models.Habit{moved}, habits[position:]...)...)

	// Two passes through a non-overlapping range keep the unique position
	// index satisfied mid-update.
	for i, h := range habits {
		if _, err := s.q.Exec(`UPDATE habits SET position = ? WHERE id = ?`, i+len(habits), h.ID); err != nil {
			return err
		}
	}
	for i, h := range habits {
		if _, err := s.q.Exec(`UPDATE habits SET position = ? WHERE id = ?`, i, h.ID); err != nil {
			return err
		}
	}
	return nil
}

func requireRow(result sql.Result, msg string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", apperr.ErrNotFound, msg)
	}
	return nil
}
