package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/tminus/internal/models"
	"github.com/balkashynov/tminus/internal/theme"
)

const (
	settingMode = iota
	settingTimeColor
	settingBarColor
	settingCount
)

// settingsPanel edits the theme. Row 0 cycles the badge mode, rows 1 and 2
// are hex inputs.
type settingsPanel struct {
	focus  int
	inputs [2]textinput.Model
	err    string
}

func newSettingsPanel(t models.ThemeSettings) settingsPanel {
	var p settingsPanel
	values := [2]string{t.TimeNumberColor, t.ProgressBarColor}
	for i := range p.inputs {
		p.inputs[i] = textinput.New()
		p.inputs[i].Width = 10
		p.inputs[i].CharLimit = 7
		p.inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		p.inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight))
		p.inputs[i].SetValue(values[i])
	}
	return p
}

func (p settingsPanel) setFocus(i int) settingsPanel {
	if p.focus > settingMode {
		p.inputs[p.focus-1].Blur()
	}
	p.focus = (i + settingCount) % settingCount
	if p.focus > settingMode {
		p.inputs[p.focus-1].Focus()
	}
	return p
}

func (p settingsPanel) update(msg tea.Msg) (settingsPanel, tea.Cmd) {
	if p.focus == settingMode {
		return p, nil
	}
	var cmd tea.Cmd
	p.inputs[p.focus-1], cmd = p.inputs[p.focus-1].Update(msg)
	return p, cmd
}

// updateSettings applies valid changes to the live theme and saves at once
func (m Model) updateSettings(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.mode = modeDashboard
		return m, nil

	case key.Matches(msg, m.keys.ResetColor):
		m.sync.RegenerateColors()
		m.manager.Refresh()
		return m.setStatus("Badge colors regenerated", false)

	case key.Matches(msg, m.keys.FocusNext):
		m.settings = m.settings.setFocus(m.settings.focus + 1)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.FocusPrev):
		m.settings = m.settings.setFocus(m.settings.focus - 1)
		return m, textinput.Blink
	}

	if m.settings.focus == settingMode {
		switch msg.String() {
		case "right", "enter", " ":
			return m.cycleMode(1)
		case "left":
			return m.cycleMode(-1)
		}
		return m, nil
	}

	i := m.settings.focus - 1
	before := m.settings.inputs[i].Value()
	var cmd tea.Cmd
	m.settings, cmd = m.settings.update(msg)
	value := m.settings.inputs[i].Value()
	if value == before {
		return m, cmd
	}
	if !theme.ValidHex(value) {
		m.settings.err = "enter a color like #4CAF50"
		return m, cmd
	}
	m.settings.err = ""

	defaults := models.DefaultThemeSettings()
	if m.settings.focus == settingTimeColor {
		m.theme.TimeNumberColor = theme.Normalize(value, defaults.TimeNumberColor)
	} else {
		m.theme.ProgressBarColor = theme.Normalize(value, defaults.ProgressBarColor)
	}
	m.manager.Refresh()
	m, saveCmd := m.saveTheme()
	return m, tea.Batch(cmd, saveCmd)
}

func (m Model) cycleMode(delta int) (Model, tea.Cmd) {
	modes := models.FabColorModes
	i := 0
	for j, mode := range modes {
		if mode == m.theme.FabColorMode {
			i = j
		}
	}
	m.theme.FabColorMode = modes[(i+delta+len(modes))%len(modes)]
	m.manager.Refresh()
	return m.saveTheme()
}

// View renders the settings modal
func (p settingsPanel) View(accent string, t models.ThemeSettings) string {
	var b strings.Builder

	header := lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true)
	b.WriteString(header.Render("Settings"))
	b.WriteString("\n\n")

	label := func(row int, text string) string {
		color := ColorSecondaryText
		if row == p.focus {
			color = ColorHighlight
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Width(16).Render(text)
	}
	swatch := func(hex string) string {
		if !theme.ValidHex(hex) {
			return ""
		}
		return " " + lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normalize(hex, ColorPrimaryText))).Render("■■")
	}

	modeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	b.WriteString(label(settingMode, "Badge colors") + modeStyle.Render("◂ "+string(t.FabColorMode)+" ▸"))
	b.WriteString("\n")
	b.WriteString(label(settingTimeColor, "Time numbers") + p.inputs[0].View() + swatch(p.inputs[0].Value()))
	b.WriteString("\n")
	b.WriteString(label(settingBarColor, "Progress bar") + p.inputs[1].View() + swatch(p.inputs[1].Value()))
	b.WriteString("\n")

	if p.err != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render(p.err))
	}
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Italic(true)
	b.WriteString(helpStyle.Render("tab next · ←/→ mode · ctrl+r new random colors · esc close"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(accent)).
		Padding(1, 2).
		Width(64).
		Render(b.String())
}
