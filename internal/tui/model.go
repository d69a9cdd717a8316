package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/WabweniBrian/infinity-ui-sub003/internal/calendar"
	"github.com/WabweniBrian/infinity-ui-sub003/internal/config"
	"github.com/WabweniBrian/infinity-ui-sub003/internal/logger"
	"github.com/WabweniBrian/infinity-ui-sub003/internal/model"
	"github.com/WabweniBrian/infinity-ui-sub003/internal/store"
)

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeAddItem
	ModeCategories
	ModeHelp
)

// Model is the main TUI model. The store owns all data; the model only
// keeps the recomputed cells for the current view and recomputes them in
// full after every mutation or navigation.
type Model struct {
	store *store.Store
	cfg   *config.Config

	// View state
	view         calendar.View
	refDate      time.Time
	showHolidays bool
	cells        []calendar.Cell

	// UI state
	width      int
	height     int
	mode       Mode
	itemCursor int // cursor within the selected day's occurrence list
	catCursor  int // cursor within the category overlay

	// Input
	input textinput.Model

	message string
}

// NewModel creates a new TUI model
func NewModel(s *store.Store, cfg *config.Config) Model {
	logger.Info("initializing TUI model")

	ti := textinput.New()
	ti.Placeholder = "Event title..."
	ti.CharLimit = 128
	ti.Width = 40

	m := Model{
		store:        s,
		cfg:          cfg,
		view:         calendar.ParseView(cfg.DefaultView),
		refDate:      time.Now(),
		showHolidays: cfg.ShowHolidays,
		mode:         ModeNormal,
		input:        ti,
	}
	m.recompute()

	logger.Debug("TUI model initialized",
		logger.F("view", m.view),
		logger.F("cells", len(m.cells)))
	return m
}

// recompute rebuilds the visible cells from the store snapshot. Cheap
// enough to run on every state change at calendar data scales.
func (m *Model) recompute() {
	opts := calendar.Options{ShowHolidays: m.showHolidays}
	m.cells = calendar.CellsFor(m.view, m.refDate, m.store.Items(), m.store.Categories(), opts)

	if cell := m.selectedCell(); cell != nil && m.itemCursor >= len(cell.Occurrences) {
		m.itemCursor = 0
	}
}

// selectedCell returns the cell for the reference date
func (m *Model) selectedCell() *calendar.Cell {
	for i := range m.cells {
		if calendar.SameDay(m.cells[i].Date, m.refDate) {
			return &m.cells[i]
		}
	}
	return nil
}

// selectedOccurrence returns the occurrence under the item cursor
func (m *Model) selectedOccurrence() *calendar.RenderableOccurrence {
	cell := m.selectedCell()
	if cell == nil || m.itemCursor >= len(cell.Occurrences) {
		return nil
	}
	return &cell.Occurrences[m.itemCursor]
}

// shiftDays moves the selected day, recentering the grid as needed
func (m *Model) shiftDays(n int) {
	m.refDate = m.refDate.AddDate(0, 0, n)
	m.itemCursor = 0
	m.recompute()
}

// shiftPeriod moves by a whole view period
func (m *Model) shiftPeriod(n int) {
	switch m.view {
	case calendar.ViewDay:
		m.refDate = m.refDate.AddDate(0, 0, n)
	case calendar.ViewWeek:
		m.refDate = m.refDate.AddDate(0, 0, 7*n)
	default:
		m.refDate = m.refDate.AddDate(0, n, 0)
	}
	m.itemCursor = 0
	m.recompute()
}

func (m *Model) setView(v calendar.View) {
	m.view = v
	m.itemCursor = 0
	m.recompute()
}

// categoryOf looks up an item's category for coloring
func (m *Model) categoryOf(item model.CalendarItem) model.Category {
	cat, err := m.store.Category(item.CategoryID)
	if err != nil {
		return model.Category{ID: item.CategoryID, Visible: true}
	}
	return cat
}

// Init is the bubbletea entrypoint
func (m Model) Init() tea.Cmd {
	return nil
}
