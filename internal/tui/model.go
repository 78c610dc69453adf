package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/tend/internal/dateutil"
	"github.com/julianstephens/tend/internal/engine"
	"github.com/julianstephens/tend/internal/storage"
	"github.com/julianstephens/tend/internal/tui/components/checklist"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateStreaks
	StateAchievements
	StateAddHabit
	StateConfirmDelete
)

// mainStates is how many tab-reachable views there are.
const mainStates = 3

type HabitFormModel struct {
	Name string
}

type Model struct {
	store           storage.Provider
	engine          *engine.Engine
	state           SessionState
	keys            KeyMap
	help            help.Model
	checklist       checklist.Model
	streaks         []engine.HabitStreak
	summary         *engine.Summary
	form            *huh.Form
	habitForm       *HabitFormModel
	habitToDeleteID string
	loadErr         error
	quitting        bool
	width           int
	height          int
}

func NewModel(store storage.Provider, eng *engine.Engine) Model {
	m := Model{
		store:     store,
		engine:    eng,
		state:     StateToday,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		checklist: checklist.New(nil, 0, 0),
	}
	m.refresh()
	return m
}

// refresh reloads everything the views render from storage.
func (m *Model) refresh() {
	today := dateutil.Today()

	habits, err := m.store.ListHabits()
	if err != nil {
		m.loadErr = err
		return
	}
	completions, err := m.store.CompletionsForDay(today)
	if err != nil {
		m.loadErr = err
		return
	}
	done := make(map[string]bool)
	for _, comp := range completions {
		done[comp.HabitID] = true
	}

	var items []checklist.Item
	for _, h := range habits {
		// Keep recently deleted habits in the list so they can be
		// restored, but drop older tombstones.
		if h.Deleted() && *h.DeletedOn < dateutil.ShiftDate(today, -7) {
			continue
		}
		streak, err := engine.StreakAsOf(m.store, h.ID, today, today)
		if err != nil {
			m.loadErr = err
			return
		}
		items = append(items, checklist.Item{
			Habit:     h,
			Done:      done[h.ID],
			Streak:    streak,
			IsDeleted: h.Deleted(),
		})
	}
	m.checklist.SetItems(items)

	streaks, err := m.engine.StreaksAsOf(today, today)
	if err != nil {
		m.loadErr = err
		return
	}
	m.streaks = streaks

	summary, err := m.engine.Summary(today)
	if err != nil {
		m.loadErr = err
		return
	}
	m.summary = summary
	m.loadErr = nil
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		{m.keys.Up, m.keys.Down},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func newHabitForm(f *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&f.Name).
				Validate(func(s string) error {
					if s == "" {
						return errEmptyName
					}
					return nil
				}),
		),
	)
}
