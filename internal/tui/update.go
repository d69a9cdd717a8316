package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/WabweniBrian/infinity-ui-sub003/internal/calendar"
	"github.com/WabweniBrian/infinity-ui-sub003/internal/logger"
	"github.com/WabweniBrian/infinity-ui-sub003/internal/model"
)

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeAddItem:
			return m.updateInput(msg)
		case ModeCategories:
			return m.updateCategories(msg)
		case ModeHelp:
			m.mode = ModeNormal
			return m, nil
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Left):
		m.shiftDays(-1)

	case key.Matches(msg, keys.Right):
		m.shiftDays(1)

	case key.Matches(msg, keys.Up):
		if m.view == calendar.ViewDay {
			if m.itemCursor > 0 {
				m.itemCursor--
			}
		} else {
			m.shiftDays(-7)
		}

	case key.Matches(msg, keys.Down):
		if m.view == calendar.ViewDay {
			if cell := m.selectedCell(); cell != nil && m.itemCursor < len(cell.Occurrences)-1 {
				m.itemCursor++
			}
		} else {
			m.shiftDays(7)
		}

	case key.Matches(msg, keys.PrevPeriod):
		m.shiftPeriod(-1)

	case key.Matches(msg, keys.NextPeriod):
		m.shiftPeriod(1)

	case key.Matches(msg, keys.Today):
		m.refDate = time.Now()
		m.itemCursor = 0
		m.recompute()

	case key.Matches(msg, keys.DayView):
		m.setView(calendar.ViewDay)

	case key.Matches(msg, keys.WeekView):
		m.setView(calendar.ViewWeek)

	case key.Matches(msg, keys.MonthView):
		m.setView(calendar.ViewMonth)

	case key.Matches(msg, keys.Holidays):
		m.showHolidays = !m.showHolidays
		m.recompute()
		if m.showHolidays {
			m.message = "Holidays shown"
		} else {
			m.message = "Holidays hidden"
		}

	case key.Matches(msg, keys.Categories):
		m.mode = ModeCategories
		m.catCursor = 0

	case key.Matches(msg, keys.Add):
		m.mode = ModeAddItem
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.Done), key.Matches(msg, keys.Enter):
		occ := m.selectedOccurrence()
		if occ == nil {
			break
		}
		completed, err := m.store.ToggleTask(occ.Item.ID)
		if err != nil {
			m.message = fmt.Sprintf("Cannot toggle %q: %v", occ.Item.Title, err)
			break
		}
		if completed {
			m.message = fmt.Sprintf("Completed: %s", occ.Item.Title)
		} else {
			m.message = fmt.Sprintf("Reopened: %s", occ.Item.Title)
		}
		m.recompute()

	case key.Matches(msg, keys.Delete):
		occ := m.selectedOccurrence()
		if occ == nil {
			break
		}
		if err := m.store.DeleteItem(occ.Item.ID); err != nil {
			m.message = fmt.Sprintf("Cannot delete %q: %v", occ.Item.Title, err)
			break
		}
		logger.Info("item deleted", logger.F("id", occ.Item.ID))
		m.message = fmt.Sprintf("Deleted: %s", occ.Item.Title)
		m.itemCursor = 0
		m.recompute()

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, keys.Enter):
		title := m.input.Value()
		if title == "" {
			m.mode = ModeNormal
			return m, nil
		}

		// Quick add: one-hour event at 09:00 on the selected day. Anything
		// fancier goes through the CLI flags.
		day := m.refDate
		start := time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, day.Location())
		item := model.NewEvent(title, model.CategoryPersonal, start, start.Add(time.Hour))

		if _, err := m.store.CreateItem(item); err != nil {
			m.message = fmt.Sprintf("Error adding event: %v", err)
		} else {
			m.message = fmt.Sprintf("Added: %s", title)
		}

		m.mode = ModeNormal
		m.recompute()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateCategories(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cats := m.store.Categories()

	switch {
	case key.Matches(msg, keys.Escape), key.Matches(msg, keys.Categories), key.Matches(msg, keys.Quit):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, keys.Up):
		if m.catCursor > 0 {
			m.catCursor--
		}

	case key.Matches(msg, keys.Down):
		if m.catCursor < len(cats)-1 {
			m.catCursor++
		}

	case key.Matches(msg, keys.Enter), msg.String() == " ", msg.String() == "space":
		if m.catCursor < len(cats) {
			visible, err := m.store.ToggleCategory(cats[m.catCursor].ID)
			if err == nil {
				if visible {
					m.message = fmt.Sprintf("Showing %s", cats[m.catCursor].Name)
				} else {
					m.message = fmt.Sprintf("Hiding %s", cats[m.catCursor].Name)
				}
			}
			m.recompute()
		}
	}

	return m, nil
}
