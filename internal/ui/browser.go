package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// TokenRow is one token shown in the interactive browser.
type TokenRow struct {
	ID       string
	Owner    string // full address (shown truncated)
	Approved string // full address or ""
	Nonce    string
	URI      string
}

// tokenBrowserModel is the bubbletea model for the interactive token table.
type tokenBrowserModel struct {
	title  string
	rows   []TokenRow
	cursor int
}

func (m tokenBrowserModel) Init() tea.Cmd { return nil }

func (m tokenBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case "g":
			m.cursor = 0
		case "G":
			m.cursor = len(m.rows) - 1
		}
	}
	return m, nil
}

func (m tokenBrowserModel) View() string {
	table := NewTable([]Column{
		{Title: "ID", Width: 8},
		{Title: "OWNER", Width: 14},
		{Title: "APPROVED", Width: 14},
		{Title: "NONCE", Width: 6},
		{Title: "URI", Width: 28},
	})
	for _, r := range m.rows {
		approved := r.Approved
		if approved == "" {
			approved = "—"
		} else {
			approved = TruncateAddr(approved)
		}
		table.AddRow(Row{r.ID, TruncateAddr(r.Owner), approved, r.Nonce, r.URI})
	}
	table.SelIdx = m.cursor

	out := "\n" + StyleTitle.Render("  "+m.title) + "\n\n"
	out += table.Render()

	if m.cursor < len(m.rows) {
		sel := m.rows[m.cursor]
		out += "\n" + StyleMeta.Render("  owner ") + StyleAddress.Render(sel.Owner)
		if sel.Approved != "" {
			out += StyleMeta.Render("   approved ") + StyleAddress.Render(sel.Approved)
		}
		out += "\n"
	}

	out += "\n" + StyleMeta.Render("  [ ↑↓ / jk ] navigate   [ g/G ] first/last   [ q ] quit") + "\n"
	return out
}

// BrowseTokens runs the interactive token browser until the user quits.
func BrowseTokens(title string, rows []TokenRow) error {
	if len(rows) == 0 {
		fmt.Println(Meta("  (no tokens)"))
		return nil
	}
	p := tea.NewProgram(tokenBrowserModel{title: title, rows: rows}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("token browser: %w", err)
	}
	return nil
}
