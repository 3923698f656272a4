package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/RucksP/slippi-launcher/internal/settings"
)

// PickerResult holds the outcome of the code picker.
type PickerResult struct {
	// Codes is the full code list with the user's toggles applied.
	Codes []settings.GeckoCode

	// Committed is false when the user quit without saving.
	Committed bool
}

// codeItem implements list.Item for gecko code display. idx is the code's
// position in the full code slice; the list's own index shifts when a
// filter is applied, so toggling must go through the selected item.
type codeItem struct {
	idx  int
	code settings.GeckoCode
}

func (i codeItem) Title() string {
	marker := "○"
	if i.code.Enabled {
		marker = "✓"
	}
	return fmt.Sprintf("%s %s", marker, i.code.Name)
}

func (i codeItem) Description() string {
	if len(i.code.Notes) > 0 {
		return truncateNote(i.code.Notes[0], 60)
	}
	if i.code.Enabled {
		return "enabled"
	}
	return "disabled"
}

func (i codeItem) FilterValue() string {
	return i.code.Name
}

func truncateNote(note string, maxLen int) string {
	if len(note) <= maxLen {
		return note
	}
	return note[:maxLen-3] + "..."
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the gecko code picker.
type Model struct {
	list     list.Model
	codes    []settings.GeckoCode
	result   PickerResult
	quitting bool
}

// NewCodePicker creates a picker over a game's gecko codes.
func NewCodePicker(gameID string, codes []settings.GeckoCode) Model {
	items := make([]list.Item, len(codes))
	for i, code := range codes {
		items[i] = codeItem{idx: i, code: code}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 80, 20)
	l.Title = fmt.Sprintf("Gecko Codes - %s", gameID)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return Model{
		list:  l,
		codes: codes,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter", " ":
			if item, ok := m.list.SelectedItem().(codeItem); ok {
				m.codes[item.idx].Enabled = !m.codes[item.idx].Enabled
				m.list.SetItem(item.idx, codeItem{idx: item.idx, code: m.codes[item.idx]})
			}
			return m, nil

		case "s":
			m.result = PickerResult{Codes: m.codes, Committed: true}
			m.quitting = true
			return m, tea.Quit

		case "q", "esc":
			m.result = PickerResult{Codes: m.codes}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter/space] Toggle  [s] Save  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the picker result.
func (m Model) Result() PickerResult {
	return m.result
}

// RunCodePicker runs the interactive gecko code picker.
func RunCodePicker(gameID string, codes []settings.GeckoCode) (PickerResult, error) {
	if len(codes) == 0 {
		return PickerResult{}, fmt.Errorf("no gecko codes defined for %s", gameID)
	}

	m := NewCodePicker(gameID, codes)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}

// SummarizeCodes renders a non-interactive code listing for plain output.
func SummarizeCodes(gameID string, codes []settings.GeckoCode) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Gecko Codes - %s\n", gameID))
	sb.WriteString(strings.Repeat("─", 40) + "\n")

	if len(codes) == 0 {
		sb.WriteString("No codes defined.\n")
		return sb.String()
	}

	for _, code := range codes {
		marker := "○"
		if code.Enabled {
			marker = "✓"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, code.Name))
	}
	return sb.String()
}
