package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/tend/internal/dateutil"
	"github.com/julianstephens/tend/internal/models"
	"github.com/julianstephens/tend/internal/tui/components/checklist"
)

var errEmptyName = errors.New("name cannot be empty")

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.checklist.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		if m.state < mainStates {
			switch {
			case key.Matches(msg, m.keys.Quit):
				m.quitting = true
				return m, tea.Quit
			case key.Matches(msg, m.keys.Tab):
				m.state = (m.state + 1) % mainStates
				return m, nil
			case key.Matches(msg, m.keys.ShiftTab):
				m.state = (m.state - 1 + mainStates) % mainStates
				return m, nil
			case key.Matches(msg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			}
		}
	}

	switch m.state {
	case StateToday:
		return m.updateToday(msg)
	case StateAddHabit:
		return m.updateAddHabit(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}
	return m, nil
}

func (m Model) updateToday(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case checklist.AddHabitMsg:
		m.habitForm = &HabitFormModel{}
		m.form = newHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()

	case checklist.ToggleHabitMsg:
		if _, err := m.engine.ToggleCompletion(dateutil.Today(), msg.ID); err == nil {
			m.refresh()
		}
		return m, nil

	case checklist.DeleteHabitMsg:
		m.habitToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil

	case checklist.RestoreHabitMsg:
		if err := m.store.RestoreHabit(msg.ID); err == nil {
			m.refresh()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.checklist, cmd = m.checklist.Update(msg)
	return m, cmd
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateToday
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		existing, err := m.store.ListHabits()
		if err == nil {
			habit := models.Habit{
				ID:        uuid.New().String(),
				Name:      m.habitForm.Name,
				CreatedOn: dateutil.Today(),
				Position:  len(existing),
			}
			if err := m.store.AddHabit(habit); err == nil {
				m.refresh()
			}
		}
		m.state = StateToday
	case huh.StateAborted:
		m.state = StateToday
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y":
			if err := m.store.DeleteHabit(m.habitToDeleteID, dateutil.Today()); err == nil {
				m.refresh()
			}
			m.habitToDeleteID = ""
			m.state = StateToday
		case "n", "esc", "q":
			m.habitToDeleteID = ""
			m.state = StateToday
		}
	}
	return m, nil
}
