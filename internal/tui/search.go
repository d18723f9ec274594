package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

const searchPreview = 3

// searchBar fuzzy-matches clock titles and jumps to the best match
type searchBar struct {
	input   textinput.Model
	ids     []string
	matches fuzzy.Matches
}

func newSearchBar() searchBar {
	input := textinput.New()
	input.Prompt = "Search: "
	input.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight))
	input.CharLimit = 100
	input.Focus()
	return searchBar{input: input}
}

func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.mode = modeDashboard
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if len(m.search.matches) > 0 {
			m.selected = m.search.ids[m.search.matches[0].Index]
		}
		m.mode = modeDashboard
		return m, nil
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)

	clocks := m.manager.Clocks()
	titles := make([]string, len(clocks))
	m.search.ids = make([]string, len(clocks))
	for i, c := range clocks {
		titles[i] = c.Title
		m.search.ids[i] = c.ID
	}
	m.search.matches = fuzzy.Find(m.search.input.Value(), titles)
	return m, cmd
}

// View renders the search bar in place of the help bar
func (s searchBar) View(width int) string {
	var b strings.Builder
	b.WriteString(s.input.View())

	plain := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	hit := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight)).Bold(true)
	for i, match := range s.matches {
		if i == searchPreview {
			break
		}
		b.WriteString(plain.Render("  │ "))
		b.WriteString(highlightMatch(match, plain, hit))
	}
	if s.input.Value() != "" && len(s.matches) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Render("  no match"))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		Width(width).
		Render(b.String())
}

func highlightMatch(match fuzzy.Match, plain, hit lipgloss.Style) string {
	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, i := range match.MatchedIndexes {
		matched[i] = true
	}
	var b strings.Builder
	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(hit.Render(string(r)))
		} else {
			b.WriteString(plain.Render(string(r)))
		}
	}
	return b.String()
}
