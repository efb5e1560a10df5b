package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tillworks/receiptd/internal/discovery"
)

// Messages for async operations
type scanCompleteMsg struct {
	cands []discovery.Candidate
	err   error
}

// pickerModel drives the interactive printer picker: a spinner while the
// discovery pass runs, then a cursor-selectable list of ranked candidates.
type pickerModel struct {
	provider *discovery.Provider

	spinner  spinner.Model
	scanning bool
	scanErr  error

	cands  []discovery.Candidate
	cursor int
	choice *discovery.Candidate
}

func newPickerModel(provider *discovery.Provider) pickerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SelectedStyle
	return pickerModel{
		provider: provider,
		spinner:  s,
		scanning: true,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runScan())
}

func (m pickerModel) runScan() tea.Cmd {
	return func() tea.Msg {
		cands, err := m.provider.Discover(context.Background())
		return scanCompleteMsg{cands: cands, err: err}
	}
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scanCompleteMsg:
		m.scanning = false
		m.scanErr = msg.err
		m.cands = msg.cands
		if msg.err != nil || len(msg.cands) == 0 {
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		if !m.scanning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.cands)-1 {
				m.cursor++
			}
		case "enter":
			if !m.scanning && len(m.cands) > 0 {
				c := m.cands[m.cursor]
				m.choice = &c
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

func (m pickerModel) View() string {
	if m.scanning {
		return fmt.Sprintf("\n %s scanning for printers...\n", m.spinner.View())
	}
	if m.scanErr != nil || len(m.cands) == 0 {
		// Final output is printed by the caller
		return ""
	}

	s := "\n" + TitleStyle.Render("Select a printer") + "\n\n"
	for i, c := range m.cands {
		name := c.DisplayName
		if name == "" {
			name = "unknown device"
		}
		line := fmt.Sprintf("%s %s  %s",
			ConfidenceStyle(c.Confidence).Render(fmt.Sprintf("[%3d]", c.Confidence)),
			c.Transport, name)

		if i == m.cursor {
			s += SelectedStyle.Render("→ "+line) + "\n"
		} else {
			s += "  " + line + "\n"
		}
	}
	s += "\n" + NoteStyle.Render("↑/↓ move · enter select · q quit") + "\n"
	return s
}

// PickPrinter runs a discovery pass behind a spinner and lets the operator
// choose one candidate. Returns nil if the operator quit without choosing or
// no printers were found; returns an error only when discovery itself failed.
func PickPrinter(provider *discovery.Provider) (*discovery.Candidate, error) {
	p := tea.NewProgram(newPickerModel(provider))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}

	m, ok := final.(pickerModel)
	if !ok {
		return nil, fmt.Errorf("picker returned unexpected model")
	}
	if m.scanErr != nil {
		return nil, m.scanErr
	}
	return m.choice, nil
}
