// Package history renders the ledger table of the History section.
package history

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Rshep3087/fintui/api"
	"github.com/Rshep3087/fintui/dashboard"
)

// Placeholder is the single row shown when the ledger is empty.
const Placeholder = "No transactions found"

var headers = []string{"ID", "Date", "Amount", "Category", "Description"}

type Colors struct {
	Primary string
	Income  string
	Expense string
}

type KeyMap struct {
	Up   key.Binding
	Down key.Binding
	Top  key.Binding
	End  key.Binding
}

func defaultKeyMap() KeyMap {
	return KeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k")),
		Down: key.NewBinding(key.WithKeys("down", "j")),
		Top:  key.NewBinding(key.WithKeys("home")),
		End:  key.NewBinding(key.WithKeys("end", "G")),
	}
}

type Model struct {
	KeyMap KeyMap

	rows     []dashboard.LedgerRow
	cursor   int
	offset   int
	height   int
	width    int
	focused  bool
	currency string

	header   lipgloss.Style
	cell     lipgloss.Style
	selected lipgloss.Style
	income   lipgloss.Style
	expense  lipgloss.Style
	border   lipgloss.Style
}

func New(colors Colors) Model {
	cell := lipgloss.NewStyle().Padding(0, 1)

	return Model{
		KeyMap:   defaultKeyMap(),
		height:   10,
		currency: dashboard.DefaultCurrency,
		header:   cell.Bold(true).Foreground(lipgloss.Color(colors.Primary)),
		cell:     cell,
		selected: cell.Bold(true).Reverse(true),
		income:   cell.Foreground(lipgloss.Color(colors.Income)),
		expense:  cell.Foreground(lipgloss.Color(colors.Expense)),
		border:   lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Primary)),
	}
}

func (m *Model) SetFocus(focus bool) {
	m.focused = focus
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	// header and borders
	m.height = max(height-4, 1)
	m.clamp()
}

func (m *Model) SetCurrency(code string) {
	m.currency = code
}

// SetTransactions replaces the ledger, keeping the order given.
func (m *Model) SetTransactions(ts []api.Transaction) {
	m.rows = dashboard.LedgerRows(ts, m.currency)
	m.clamp()
}

// Rows returns the ledger rows, which is empty when the placeholder shows.
func (m Model) Rows() []dashboard.LedgerRow {
	return m.rows
}

// Selected returns the row under the cursor. It is false when the table only
// shows the placeholder.
func (m Model) Selected() (dashboard.LedgerRow, bool) {
	if len(m.rows) == 0 {
		return dashboard.LedgerRow{}, false
	}
	return m.rows[m.cursor], true
}

// TableRows is what the table draws: one row per record, or the placeholder.
func (m Model) TableRows() [][]string {
	if len(m.rows) == 0 {
		return [][]string{{"", "", "", "", Placeholder}}
	}

	out := make([][]string, len(m.rows))
	for i, r := range m.rows {
		out[i] = []string{
			strconv.FormatInt(r.ID, 10),
			r.Date,
			r.Amount,
			r.Category,
			r.Description,
		}
	}
	return out
}

func (m *Model) clamp() {
	if m.cursor >= len(m.rows) {
		m.cursor = max(len(m.rows)-1, 0)
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	m.offset = max(m.offset, 0)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.KeyMap.Up):
			m.cursor = max(m.cursor-1, 0)
		case key.Matches(msg, m.KeyMap.Down):
			m.cursor = min(m.cursor+1, max(len(m.rows)-1, 0))
		case key.Matches(msg, m.KeyMap.Top):
			m.cursor = 0
		case key.Matches(msg, m.KeyMap.End):
			m.cursor = max(len(m.rows)-1, 0)
		}
		m.clamp()
	}

	return m, nil
}

func (m Model) View() string {
	all := m.TableRows()
	end := min(m.offset+m.height, len(all))
	visible := all[m.offset:end]

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(m.border).
		Headers(headers...).
		Rows(visible...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return m.header
			}
			if len(m.rows) == 0 {
				return m.cell.Faint(true)
			}

			idx := m.offset + row
			switch {
			case idx == m.cursor && m.focused:
				return m.selected
			case col == 2 && m.rows[idx].Income:
				return m.income
			case col == 2:
				return m.expense
			}
			return m.cell
		})

	if m.width > 0 {
		t = t.Width(m.width)
	}

	return t.String()
}
