// Package setsui renders the question-set picker: a table of sets with
// a client-local selection that never touches the server.
package setsui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizdeck/internal/question"
)

// Options configures the picker model.
type Options struct {
	NoColor bool
}

// Model is the interactive set picker.
type Model struct {
	sets      []question.Set
	selected  map[int]bool
	table     table.Model
	confirmed bool
	noColor   bool
}

// NewModel constructs a picker over a fetched set list.
func NewModel(sets []question.Set, opts Options) Model {
	t := table.New(
		table.WithColumns(columns()),
		table.WithRows(rows(sets, map[int]bool{})),
		table.WithFocused(true),
		table.WithHeight(min(len(sets)+1, 12)),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		sets:     sets,
		selected: map[int]bool{},
		table:    t,
		noColor:  opts.NoColor,
	}
}

// Selected returns the chosen set ids, in list order.
func (m Model) Selected() []int {
	var ids []int
	for _, set := range m.sets {
		if m.selected[set.ID] {
			ids = append(ids, set.ID)
		}
	}
	return ids
}

// Confirmed reports whether the user chose to start rather than quit.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Init is a no-op; the picker is purely key-driven.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update toggles selection and confirms or cancels the picker.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		return m, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case " ":
			if set, ok := m.cursorSet(); ok {
				m.selected[set.ID] = !m.selected[set.ID]
				m.table.SetRows(rows(m.sets, m.selected))
			}
			return m, nil
		case "enter":
			if len(m.Selected()) > 0 {
				m.confirmed = true
				return m, tea.Quit
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table with a selection footer.
func (m Model) View() string {
	footer := fmt.Sprintf("%d selected · space toggle · enter start · q cancel", len(m.Selected()))
	if m.noColor {
		return m.table.View() + "\n" + footer + "\n"
	}
	return m.table.View() + "\n" + lipgloss.NewStyle().Faint(true).Render(footer) + "\n"
}

// cursorSet returns the set under the table cursor.
func (m Model) cursorSet() (question.Set, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.sets) {
		return question.Set{}, false
	}
	return m.sets[cursor], true
}

// columns defines the picker table layout.
func columns() []table.Column {
	return []table.Column{
		{Title: " ", Width: 3},
		{Title: "ID", Width: 5},
		{Title: "Name", Width: 32},
		{Title: "Questions", Width: 10},
		{Title: "Created", Width: 20},
	}
}

// rows converts sets plus selection state into table rows.
func rows(sets []question.Set, selected map[int]bool) []table.Row {
	out := make([]table.Row, 0, len(sets))
	for _, set := range sets {
		mark := " "
		if selected[set.ID] {
			mark = "*"
		}
		out = append(out, table.Row{
			mark,
			strconv.Itoa(set.ID),
			set.Name,
			strconv.Itoa(set.QuestionCount),
			set.CreatedAt,
		})
	}
	return out
}

// tableStyles returns table styles for the picker.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("69")).Bold(true)
	return styles
}
