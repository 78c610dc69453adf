package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/tend/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.loadErr != nil {
		return docStyle.Render(dangerStyle.Render(fmt.Sprintf("Error: %v", m.loadErr)))
	}

	var content string
	switch m.state {
	case StateToday:
		content = docStyle.Render(m.checklist.View())
	case StateStreaks:
		content = docStyle.Render(m.viewStreaks())
	case StateAchievements:
		content = docStyle.Render(m.viewAchievements())
	case StateAddHabit:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Streaks", "Achievements"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStreaks() string {
	if len(m.streaks) == 0 {
		return dimStyle.Render("No active streaks. Complete a habit to start one.")
	}

	var b strings.Builder
	for _, hs := range m.streaks {
		unit := "days"
		if hs.Streak == 1 {
			unit = "day"
		}
		b.WriteString(fmt.Sprintf("%s  %s\n",
			streakStyle.Render(fmt.Sprintf("%3d %s", hs.Streak, unit)),
			hs.Habit.Name,
		))
	}
	return b.String()
}

func (m Model) viewAchievements() string {
	if m.summary == nil || (len(m.summary.Global) == 0 && len(m.summary.PerHabit) == 0) {
		return dimStyle.Render("No achievements earned yet.")
	}

	var b strings.Builder
	if len(m.summary.Global) > 0 {
		b.WriteString(sectionStyle.Render("All habits"))
		b.WriteString("\n")
		writeStats(&b, m.summary.Global)
	}
	for _, id := range m.sortedHabitIDs() {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(m.summary.Habits[id].Name))
		b.WriteString("\n")
		writeStats(&b, m.summary.PerHabit[id])
	}
	return b.String()
}

func (m Model) sortedHabitIDs() []string {
	ids := make([]string, 0, len(m.summary.PerHabit))
	for id := range m.summary.PerHabit {
		ids = append(ids, id)
	}
	// Insertion sort by display position; the list is small.
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && m.summary.Habits[ids[j]].Position < m.summary.Habits[ids[j-1]].Position; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
	return ids
}

func writeStats(b *strings.Builder, stats []models.AchievementStat) {
	byType := make(map[models.AchievementType]models.AchievementStat, len(stats))
	for _, st := range stats {
		byType[st.Type] = st
	}
	for _, typ := range models.AchievementTypes {
		st, ok := byType[typ]
		if !ok {
			continue
		}
		fmt.Fprintf(b, "  %-15s ×%d  %s\n", st.Type.Label(), st.Count,
			dimStyle.Render("last "+st.LastEarnedOn))
	}
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Are you sure you want to delete this habit?"),
			"Its history and achievements are kept and it can be restored.",
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
