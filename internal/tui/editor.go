package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/tminus/internal/countdown"
	"github.com/balkashynov/tminus/internal/models"
	"github.com/balkashynov/tminus/internal/theme"
)

const (
	fieldTitle = iota
	fieldStart
	fieldTarget
	fieldColor
)

// editorFields name the coalescing group of each input
var editorFields = []string{"title", "startDate", "targetDate", "titleColor"}

var editorLabels = []string{"Title", "Start", "Target", "Title color"}

// editor is the modal for changing one clock's fields
type editor struct {
	id     string
	inputs []textinput.Model
	focus  int
	err    string
}

func newEditor(c models.Clock) editor {
	inputs := make([]textinput.Model, len(editorFields))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight))
	}

	inputs[fieldTitle].CharLimit = 200
	inputs[fieldTitle].SetValue(c.Title)

	inputs[fieldStart].Placeholder = countdown.InputLayout
	inputs[fieldStart].CharLimit = 32
	inputs[fieldStart].SetValue(c.StartDate)

	inputs[fieldTarget].Placeholder = countdown.InputLayout
	inputs[fieldTarget].CharLimit = 32
	inputs[fieldTarget].SetValue(c.TargetDate)

	inputs[fieldColor].Placeholder = models.DefaultTitleColor
	inputs[fieldColor].CharLimit = 7
	inputs[fieldColor].SetValue(c.TitleColor)

	inputs[fieldTitle].Focus()
	return editor{id: c.ID, inputs: inputs}
}

func (e editor) setFocus(i int) editor {
	e.inputs[e.focus].Blur()
	e.focus = (i + len(e.inputs)) % len(e.inputs)
	e.inputs[e.focus].Focus()
	return e
}

func (e editor) update(msg tea.Msg) (editor, tea.Cmd) {
	var cmd tea.Cmd
	e.inputs[e.focus], cmd = e.inputs[e.focus].Update(msg)
	return e, cmd
}

// updateEditor applies every change straight to the clock and schedules a
// coalesced write for the edited field
func (m Model) updateEditor(msg tea.KeyMsg) (Model, tea.Cmd) {
	id := m.editor.id
	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Enter):
		m.mode = modeDashboard
		return m, nil

	case key.Matches(msg, m.keys.ResetColor):
		m.manager.ResetTitleColor(id)
		m.editor.inputs[fieldColor].SetValue(models.DefaultTitleColor)
		m.editor.err = ""
		return m.saveNow(id + ":titleColor")

	case key.Matches(msg, m.keys.FocusNext):
		m.editor = m.editor.setFocus(m.editor.focus + 1)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.FocusPrev):
		m.editor = m.editor.setFocus(m.editor.focus - 1)
		return m, textinput.Blink
	}

	field := m.editor.focus
	before := m.editor.inputs[field].Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.update(msg)
	value := m.editor.inputs[field].Value()
	if value == before {
		return m, cmd
	}

	m.editor.err = ""
	switch field {
	case fieldTitle:
		m.manager.SetTitle(id, value)
	case fieldStart:
		m.manager.SetStartDate(id, value)
		if _, ok := countdown.ParseInput(value); !ok {
			m.editor.err = "start is not a date, progress shows N/A"
		}
	case fieldTarget:
		m.manager.SetTargetDate(id, value)
		if _, ok := countdown.ParseInput(value); !ok {
			m.editor.err = "target is not a date"
		}
	case fieldColor:
		if !theme.ValidHex(value) {
			m.editor.err = "enter a color like #FF8800"
			return m, cmd
		}
		m.manager.SetTitleColor(id, theme.Normalize(value, models.DefaultTitleColor))
	}
	return m, tea.Batch(cmd, m.writer.Touch(id+":"+editorFields[field]))
}

// View renders the editor modal
func (e editor) View(accent string) string {
	var b strings.Builder

	header := lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true)
	b.WriteString(header.Render("Edit countdown"))
	b.WriteString("\n\n")

	for i, input := range e.inputs {
		labelColor := ColorSecondaryText
		if i == e.focus {
			labelColor = ColorHighlight
		}
		label := lipgloss.NewStyle().
			Foreground(lipgloss.Color(labelColor)).
			Width(13).
			Render(editorLabels[i])
		line := label + input.View()
		if i == fieldColor && theme.ValidHex(input.Value()) {
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normalize(input.Value(), models.DefaultTitleColor)))
			line += " " + swatch.Render("■")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if e.err != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render(e.err))
	}
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Italic(true)
	b.WriteString(helpStyle.Render("tab next · ctrl+r reset color · enter/esc close"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(accent)).
		Padding(1, 2).
		Width(64).
		Render(b.String())
}
