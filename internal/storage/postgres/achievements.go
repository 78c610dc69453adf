package postgres

import (
	"github.com/julianstephens/tend/internal/models"
)

func (s *Queries) UpsertAchievement(a models.Achievement) error {
	_, err := s.q.Exec(`
		INSERT INTO achievements (type, habit_id, earned_on) VALUES ($1, $2, $3)
		ON CONFLICT(type, habit_id, earned_on) DO NOTHING`,
		string(a.Type), a.HabitID, a.EarnedOn)
	return err
}

func (s *Queries) DeleteAchievement(t models.AchievementType, habitID, earnedOn string) error {
	_, err := s.q.Exec(`
		DELETE FROM achievements WHERE type = $1 AND habit_id = $2 AND earned_on = $3`,
		string(t), habitID, earnedOn)
	return err
}

func (s *Queries) DeleteAchievementsInRange(t models.AchievementType, habitID, fromDay, toDay string) error {
	_, err := s.q.Exec(`
		DELETE FROM achievements
		WHERE type = $1 AND habit_id = $2 AND earned_on >= $3 AND earned_on <= $4`,
		string(t), habitID, fromDay, toDay)
	return err
}

func (s *Queries) AchievementStats() ([]models.AchievementStat, error) {
	rows, err := s.q.Query(`
		SELECT type, habit_id, COUNT(*), MAX(earned_on)
		FROM achievements
		GROUP BY type, habit_id
		ORDER BY habit_id, type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.AchievementStat
	for rows.Next() {
		var st models.AchievementStat
		var typ string
		if err := rows.Scan(&typ, &st.HabitID, &st.Count, &st.LastEarnedOn); err != nil {
			return nil, err
		}
		st.Type = models.AchievementType(typ)
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

func (s *Queries) ListAchievements() ([]models.Achievement, error) {
	rows, err := s.q.Query(`
		SELECT type, habit_id, earned_on FROM achievements
		ORDER BY earned_on, habit_id, type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var achievements []models.Achievement
	for rows.Next() {
		var a models.Achievement
		var typ string
		if err := rows.Scan(&typ, &a.HabitID, &a.EarnedOn); err != nil {
			return nil, err
		}
		a.Type = models.AchievementType(typ)
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}
