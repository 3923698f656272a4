package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RucksP/slippi-launcher/internal/settings"
)

func testCodes() []settings.GeckoCode {
	return []settings.GeckoCode{
		{Name: "Faster Melee Netplay Settings", Enabled: true, Notes: []string{"Required for netplay"}},
		{Name: "Widescreen 16:9"},
	}
}

func TestCodeItemMethods(t *testing.T) {
	enabled := codeItem{code: testCodes()[0]}
	disabled := codeItem{code: testCodes()[1]}

	t.Run("Title", func(t *testing.T) {
		if got := enabled.Title(); !strings.HasPrefix(got, "✓ ") {
			t.Errorf("enabled Title() = %q, want ✓ prefix", got)
		}
		if got := disabled.Title(); !strings.HasPrefix(got, "○ ") {
			t.Errorf("disabled Title() = %q, want ○ prefix", got)
		}
	})

	t.Run("Description", func(t *testing.T) {
		if got := enabled.Description(); got != "Required for netplay" {
			t.Errorf("Description() = %q", got)
		}
		if got := disabled.Description(); got != "disabled" {
			t.Errorf("Description() = %q", got)
		}
	})

	t.Run("FilterValue", func(t *testing.T) {
		if got := enabled.FilterValue(); got != "Faster Melee Netplay Settings" {
			t.Errorf("FilterValue() = %q", got)
		}
	})
}

func TestTruncateNote(t *testing.T) {
	tests := []struct {
		note   string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"a much longer note than fits", 10, "a much ..."},
	}

	for _, tt := range tests {
		t.Run(tt.note, func(t *testing.T) {
			if got := truncateNote(tt.note, tt.maxLen); got != tt.want {
				t.Errorf("truncateNote(%q, %d) = %q, want %q", tt.note, tt.maxLen, got, tt.want)
			}
		})
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestPickerToggleAndSave(t *testing.T) {
	m := NewCodePicker("GALE01", testCodes())

	// Toggle the first code off.
	next, _ := m.Update(keyMsg("enter"))
	m = next.(Model)

	// Save and quit.
	next, _ = m.Update(keyMsg("s"))
	m = next.(Model)

	result := m.Result()
	if !result.Committed {
		t.Fatal("Committed = false after save")
	}
	if result.Codes[0].Enabled {
		t.Error("first code should be toggled off")
	}
	if result.Codes[1].Enabled {
		t.Error("second code should stay off")
	}
}

// deliverFilterMatches executes a command returned by Update and feeds any
// resulting FilterMatchesMsg back into the model, standing in for the
// bubbletea runtime which delivers the list's async filter results.
func deliverFilterMatches(m Model, cmd tea.Cmd) Model {
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range out {
			m = deliverFilterMatches(m, c)
		}
	case list.FilterMatchesMsg:
		next, nextCmd := m.Update(out)
		m = deliverFilterMatches(next.(Model), nextCmd)
	}
	return m
}

func TestPickerToggleWithFilterApplied(t *testing.T) {
	m := NewCodePicker("GALE01", testCodes())

	// Narrow the list to the second code and accept the filter.
	next, _ := m.Update(keyMsg("/"))
	m = next.(Model)
	var cmd tea.Cmd
	for _, r := range "Widescreen" {
		next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	// The filter recomputes from the full query, so delivering the results
	// of the final keystroke's command is sufficient.
	m = deliverFilterMatches(m, cmd)
	next, _ = m.Update(keyMsg("enter"))
	m = next.(Model)
	if m.list.FilterState() != list.FilterApplied {
		t.Fatalf("FilterState = %v, want FilterApplied", m.list.FilterState())
	}

	// Toggle the visible selection, then save.
	next, _ = m.Update(keyMsg("enter"))
	m = next.(Model)
	next, _ = m.Update(keyMsg("s"))
	m = next.(Model)

	result := m.Result()
	if !result.Committed {
		t.Fatal("Committed = false after save")
	}
	if !result.Codes[1].Enabled {
		t.Error("the filtered selection (Widescreen) should be toggled on")
	}
	if !result.Codes[0].Enabled {
		t.Error("the code hidden by the filter must keep its state")
	}
}

func TestPickerQuitWithoutSaving(t *testing.T) {
	m := NewCodePicker("GALE01", testCodes())

	next, _ := m.Update(keyMsg("enter"))
	m = next.(Model)
	next, _ = m.Update(keyMsg("q"))
	m = next.(Model)

	if m.Result().Committed {
		t.Error("Committed = true after quit without save")
	}
}

func TestSummarizeCodes(t *testing.T) {
	out := SummarizeCodes("GALE01", testCodes())

	if !strings.Contains(out, "GALE01") {
		t.Errorf("summary missing game id:\n%s", out)
	}
	if !strings.Contains(out, "✓ Faster Melee Netplay Settings") {
		t.Errorf("summary missing enabled marker:\n%s", out)
	}
	if !strings.Contains(out, "○ Widescreen 16:9") {
		t.Errorf("summary missing disabled marker:\n%s", out)
	}

	if got := SummarizeCodes("GALE01", nil); !strings.Contains(got, "No codes defined") {
		t.Errorf("empty summary = %q", got)
	}
}
