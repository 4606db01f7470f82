package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WizardResult holds answers collected by the registry setup wizard.
type WizardResult struct {
	Name      string
	Symbol    string
	BaseURI   string
	ChainID   string // numeric string; parsed by the caller
	MaxSupply string // numeric string; empty = unlimited
	Minter    string // 0x address
}

// --- Bubble Tea model ---

type wizardStep int

const (
	stepName wizardStep = iota
	stepSymbol
	stepBaseURI
	stepChain
	stepMaxSupply
	stepMinter
	stepDone
)

type wizardModel struct {
	step      wizardStep
	result    WizardResult
	cursor    int
	choices   []string
	input     string
	inputMode bool
}

// chainPresets maps display labels to chain IDs; "custom" switches to input.
var chainPresets = []string{
	"mainnet (1)",
	"sepolia (11155111)",
	"local (1337)",
	"custom",
}

var chainPresetIDs = map[int]string{0: "1", 1: "11155111", 2: "1337"}

func initialWizard() wizardModel {
	return wizardModel{step: stepName, inputMode: true}
}

func (m wizardModel) Init() tea.Cmd { return nil }

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "up", "k":
			if !m.inputMode && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if !m.inputMode && m.cursor < len(m.choices)-1 {
				m.cursor++
			}

		case "enter":
			if m.inputMode {
				m.applyInput()
			} else {
				m.applyChoice()
			}

		case "backspace":
			if m.inputMode && len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}

		default:
			if m.inputMode && len(msg.String()) == 1 {
				m.input += msg.String()
			}
		}
	}

	if m.step == stepDone {
		return m, tea.Quit
	}
	return m, nil
}

func (m *wizardModel) advance() {
	m.step++
	m.cursor = 0
	m.input = ""
	switch m.step {
	case stepChain:
		m.inputMode = false
		m.choices = chainPresets
	default:
		m.inputMode = true
		m.choices = nil
	}
}

func (m *wizardModel) applyChoice() {
	if m.step != stepChain {
		return
	}
	if id, ok := chainPresetIDs[m.cursor]; ok {
		m.result.ChainID = id
		m.advance()
		return
	}
	// "custom": stay on this step but switch to numeric input.
	m.inputMode = true
	m.input = ""
}

func (m *wizardModel) applyInput() {
	val := strings.TrimSpace(m.input)
	switch m.step {
	case stepName:
		if val == "" {
			return // name is required
		}
		m.result.Name = val
	case stepSymbol:
		if val == "" {
			return
		}
		m.result.Symbol = val
	case stepBaseURI:
		m.result.BaseURI = val
	case stepChain:
		if val == "" {
			return
		}
		m.result.ChainID = val
	case stepMaxSupply:
		m.result.MaxSupply = val
	case stepMinter:
		m.result.Minter = strings.Trim(val, "[]")
	}
	m.advance()
}

func (m wizardModel) View() string {
	var s string

	prompt := func(title, hint string) string {
		out := StyleTitle.Render(title) + "\n\n"
		if hint != "" {
			out += StyleMeta.Render(hint) + "\n"
		}
		out += "> " + StyleAddress.Render(m.input) + "█\n"
		return out
	}

	switch m.step {
	case stepName:
		s = prompt("Collection name", "Binds permit signatures; cannot change later.")
	case stepSymbol:
		s = prompt("Collection symbol", "Short ticker, e.g. TST.")
	case stepBaseURI:
		s = prompt("Base URI (optional)", "Prefix for token URIs; Enter to skip.")
	case stepChain:
		if m.inputMode {
			s = prompt("Chain ID", "Numeric network identifier for domain separation.")
		} else {
			s = renderMenu("Select chain:", m.choices, m.cursor)
		}
	case stepMaxSupply:
		s = prompt("Max supply (optional)", "Cap on tokens ever minted; Enter for unlimited.")
	case stepMinter:
		s = prompt("Minter address", "The only account allowed to mint (0x…).")
	case stepDone:
		s = Success("Registry configured!") + "\n"
	}

	return StyleBorder.Render(s) + "\n"
}

func renderMenu(title string, items []string, cursor int) string {
	s := StyleTitle.Render(title) + "\n\n"
	for i, item := range items {
		icon := "  "
		style := lipgloss.NewStyle().Foreground(ColorValue)
		if i == cursor {
			icon = "▸ "
			style = StyleSelected
		}
		s += icon + style.Render(item) + "\n"
	}
	s += "\n" + StyleMeta.Render("↑/↓ navigate · Enter select · ctrl+c quit")
	return s
}

// RunWizard launches the interactive setup wizard and returns the result.
func RunWizard() (*WizardResult, error) {
	m := initialWizard()
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard error: %w", err)
	}
	result := final.(wizardModel).result
	return &result, nil
}
