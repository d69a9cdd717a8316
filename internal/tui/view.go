package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/WabweniBrian/infinity-ui-sub003/internal/calendar"
	"github.com/WabweniBrian/infinity-ui-sub003/internal/model"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := m.renderHeader()

	var body string
	switch m.view {
	case calendar.ViewDay:
		body = m.renderDay()
	case calendar.ViewWeek:
		body = m.renderWeek()
	default:
		body = m.renderMonth()
	}

	statusBar := m.renderStatusBar()
	content := lipgloss.JoinVertical(lipgloss.Left, header, body)

	switch m.mode {
	case ModeAddItem:
		content = m.overlay(m.renderAddModal())
	case ModeCategories:
		content = m.overlay(m.renderCategoryModal())
	case ModeHelp:
		content = m.renderHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m Model) renderHeader() string {
	var title string
	switch m.view {
	case calendar.ViewDay:
		title = m.refDate.Format("Monday, January 2 2006")
	case calendar.ViewWeek:
		title = "Week of " + calendar.WeekStart(m.refDate).Format("Jan 2, 2006")
	default:
		title = m.refDate.Format("January 2006")
	}

	tabs := ""
	for _, v := range []calendar.View{calendar.ViewDay, calendar.ViewWeek, calendar.ViewMonth} {
		style := ViewTabStyle
		if v == m.view {
			style = ViewTabActiveStyle
		}
		tabs += style.Render(string(v))
	}

	holidays := ""
	if !m.showHolidays {
		holidays = HelpStyle.Render("  holidays hidden")
	}

	return HeaderStyle.Render(title) + "  " + tabs + holidays
}

func (m Model) renderMonth() string {
	cellWidth := (m.width - 2) / 7
	if cellWidth < 10 {
		cellWidth = 10
	}

	var weekdayCells []string
	for _, wd := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		weekdayCells = append(weekdayCells, WeekdayHeaderStyle.Width(cellWidth).Render(wd))
	}
	out := lipgloss.JoinHorizontal(lipgloss.Top, weekdayCells...) + "\n"

	for row := 0; row+7 <= len(m.cells); row += 7 {
		var rendered []string
		for _, cell := range m.cells[row : row+7] {
			rendered = append(rendered, m.renderMonthCell(cell, cellWidth))
		}
		out += lipgloss.JoinHorizontal(lipgloss.Top, rendered...) + "\n"
	}

	return out
}

func (m Model) renderMonthCell(cell calendar.Cell, width int) string {
	inner := width - 4 // border + padding

	numStyle := DayNumStyle
	if cell.Date.Month() != m.refDate.Month() {
		numStyle = DayNumOutsideStyle
	}
	if isToday(cell.Date) {
		numStyle = DayNumTodayStyle
	}

	var lines []string
	lines = append(lines, numStyle.Render(fmt.Sprintf("%d", cell.Date.Day())))

	for _, occ := range cell.Occurrences {
		lines = append(lines, m.renderCompact(occ, inner))
	}
	for len(lines) < calendar.MonthCellCap+1 {
		lines = append(lines, "")
	}
	if cell.OverflowCount > 0 {
		lines = append(lines, OverflowStyle.Render(fmt.Sprintf("+%d more", cell.OverflowCount)))
	} else {
		lines = append(lines, "")
	}

	style := CellStyle
	if calendar.SameDay(cell.Date, m.refDate) {
		style = CellSelectedStyle
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// renderCompact is the one-line form used in month cells: continuation
// markers for multi-day spans, checkbox for tasks, category color.
func (m Model) renderCompact(occ calendar.RenderableOccurrence, width int) string {
	prefix := ""
	switch {
	case occ.Item.Type == model.TypeTask && occ.Item.Completed:
		prefix = "✓ "
	case occ.Item.Type == model.TypeTask:
		prefix = "□ "
	case occ.Item.Type == model.TypeHoliday:
		prefix = "★ "
	case !occ.IsFirstDay:
		prefix = "◀ " // continued from a previous day
	}

	suffix := ""
	if !occ.IsLastDay {
		suffix = " ▶"
	}

	text := truncate(prefix+occ.Item.Title+suffix, width)
	style := categoryStyle(m.categoryOf(occ.Item).Color)
	if occ.Item.Type == model.TypeTask && occ.Item.Completed {
		style = ItemDoneStyle.Padding(0)
	}
	return style.Render(text)
}

func (m Model) renderWeek() string {
	colWidth := (m.width - 2) / 7
	if colWidth < 12 {
		colWidth = 12
	}

	var cols []string
	for _, cell := range m.cells {
		header := cell.Date.Format("Mon 2")
		headerStyle := WeekdayHeaderStyle
		if isToday(cell.Date) {
			headerStyle = headerStyle.Foreground(TodayAcc)
		}

		var lines []string
		lines = append(lines, headerStyle.Width(colWidth-4).Render(header))
		lines = append(lines, strings.Repeat("─", colWidth-4))

		for _, occ := range cell.Occurrences {
			lines = append(lines, m.renderCompact(occ, colWidth-4))
			lines = append(lines, HelpStyle.Render(truncate(spanTime(occ), colWidth-4)))
		}
		if len(cell.Occurrences) == 0 {
			lines = append(lines, HelpStyle.Render("·"))
		}

		style := CellStyle
		if calendar.SameDay(cell.Date, m.refDate) {
			style = CellSelectedStyle
		}
		cols = append(cols, style.Width(colWidth-2).Height(m.height-7).Render(strings.Join(lines, "\n")))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) renderDay() string {
	if len(m.cells) == 0 {
		return ""
	}
	cell := m.cells[0]

	var s string
	if len(cell.Occurrences) == 0 {
		s += HelpStyle.Render("  Nothing scheduled. Press 'a' to add an event.") + "\n"
	}

	for i, occ := range cell.Occurrences {
		cursor := "  "
		style := ItemStyle
		if i == m.itemCursor {
			cursor = "❯ "
			style = ItemSelectedStyle
		}
		if occ.Item.Type == model.TypeTask && occ.Item.Completed {
			style = ItemDoneStyle
		}

		check := "   "
		switch occ.Item.Type {
		case model.TypeTask:
			check = "[ ]"
			if occ.Item.Completed {
				check = "[x]"
			}
		case model.TypeHoliday:
			check = " ★ "
		}

		catDot := categoryStyle(m.categoryOf(occ.Item).Color).Render("●")
		line := fmt.Sprintf("%s%s %-14s %s %s",
			cursor, check, spanTime(occ), catDot, truncate(occ.Item.Title, m.width-30))
		s += style.Render(line) + "\n"

		if occ.Item.Description != "" && i == m.itemCursor {
			s += HelpStyle.Render("        "+truncate(occ.Item.Description, m.width-12)) + "\n"
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Height(m.height - 5).Render(s)
}

func (m Model) renderStatusBar() string {
	help := "d/w/m:view  h/l:day  [/]:period  t:today  a:add  x:toggle  D:del  c:categories  H:holidays  ?:help  q:quit"
	if m.message != "" {
		help = m.message
	}
	return StatusBarStyle.Width(m.width).Render(help)
}

func (m Model) renderAddModal() string {
	content := lipgloss.NewStyle().Bold(true).Render("Add event on "+m.refDate.Format("Mon Jan 2")) + "\n\n"
	content += m.input.View() + "\n\n"
	content += HelpStyle.Render("Enter:save  Esc:cancel")
	return ModalStyle.Render(content)
}

func (m Model) renderCategoryModal() string {
	content := lipgloss.NewStyle().Bold(true).Foreground(Primary).Render("Categories") + "\n\n"

	for i, cat := range m.store.Categories() {
		cursor := "  "
		if i == m.catCursor {
			cursor = "❯ "
		}
		eye := "●"
		if !cat.Visible {
			eye = "○"
		}
		line := fmt.Sprintf("%s%s %-12s", cursor, eye, cat.Name)
		style := categoryStyle(cat.Color)
		if !cat.Visible {
			style = HelpStyle
		}
		content += style.Render(line) + "\n"
	}

	content += "\n" + HelpStyle.Render("↑↓:nav  Enter/Space:toggle  Esc:close")
	return ModalStyle.Render(content)
}

func (m Model) renderHelp() string {
	help := `
╭──── Keyboard Shortcuts ────╮
│                            │
│  Navigation                │
│  ──────────                │
│  h/l     Previous/next day │
│  j/k     Move by week      │
│  [/]     Prev/next period  │
│  t       Jump to today     │
│  d/w/m   Switch view       │
│                            │
│  Actions                   │
│  ───────                   │
│  a       Add event         │
│  x/Enter Toggle task       │
│  D       Delete item       │
│  c       Categories        │
│  H       Toggle holidays   │
│                            │
│  Other                     │
│  ─────                     │
│  ?       Toggle help       │
│  q       Quit              │
│                            │
╰────────────────────────────╯

      Press any key to close
`
	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, help)
}

func (m Model) overlay(modal string) string {
	return lipgloss.Place(
		m.width, m.height-2,
		lipgloss.Center, lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
	)
}
