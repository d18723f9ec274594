package tui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/balkashynov/tminus/internal/clock"
	"github.com/balkashynov/tminus/internal/coalesce"
	"github.com/balkashynov/tminus/internal/config"
	"github.com/balkashynov/tminus/internal/countdown"
	"github.com/balkashynov/tminus/internal/models"
	"github.com/balkashynov/tminus/internal/projection"
	"github.com/balkashynov/tminus/internal/theme"
)

// ClockSaver persists the whole clock collection
type ClockSaver interface {
	Save(clocks []models.Clock) error
}

// ThemeSaver persists the theme settings
type ThemeSaver interface {
	Save(settings models.ThemeSettings) error
}

// Options wires the dashboard to its data
type Options struct {
	Manager   *clock.Manager
	Sync      *projection.Sync
	Theme     *models.ThemeSettings // shared with Sync
	Clocks    ClockSaver
	Themes    ThemeSaver
	Config    config.Config
	Now       func() time.Time
	Clipboard func(string) error

	// Edit opens the editor on this clock at start
	Edit string
}

type mode int

const (
	modeDashboard mode = iota
	modeEditor
	modeSettings
	modeSearch
)

const (
	headerHeight    = 2
	statusLifetime  = 5 * time.Second
	settingsTrigger = "⚙ settings"
)

// statusExpiredMsg clears the status line unless a newer message replaced it
type statusExpiredMsg struct{ seq int }

// animationTickMsg drives the badge shimmer while a burst is running
type animationTickMsg struct{}

type dragState struct {
	id     string
	dx, dy int  // grab point inside the card
	moved  bool // a plain click leaves the card flowing
}

// Model is the countdown dashboard
type Model struct {
	width  int
	height int

	manager *clock.Manager
	sync    *projection.Sync
	theme   *models.ThemeSettings
	themes  ThemeSaver
	writer  *coalesce.Writer
	now     func() time.Time
	copy    func(string) error

	// accent is picked per session and never stored
	accent string

	keys    keyMap
	help    help.Model
	shimmer Shimmer

	mode     mode
	selected string
	editor   editor
	settings settingsPanel
	search   searchBar
	drag     *dragState

	status    string
	statusErr bool
	statusSeq int

	animating bool
}

// New builds the dashboard. An empty collection gets one default clock.
func New(opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	shimmerConfig := DefaultShimmerConfig()
	shimmerConfig.ReduceMotion = opts.Config.ReduceMotion

	manager := opts.Manager
	clocks := opts.Clocks
	m := Model{
		manager: manager,
		sync:    opts.Sync,
		theme:   opts.Theme,
		themes:  opts.Themes,
		now:     now,
		copy:    copyFn,
		accent:  theme.RandomColor(),
		keys:    newKeyMap(),
		help:    newHelp(),
		shimmer: NewShimmer(shimmerConfig),
		writer: coalesce.New(opts.Config.SaveDelay, func() error {
			return clocks.Save(manager.Clocks())
		}),
	}

	if manager.Len() == 0 {
		c := manager.Add()
		if err := m.writer.Now(c.ID + ":add"); err != nil {
			log.Printf("failed to save first countdown: %v", err)
		}
	}
	if all := manager.Clocks(); len(all) > 0 {
		m.selected = all[0].ID
	}
	if _, ok := manager.Get(opts.Edit); ok {
		m.selected = opts.Edit
		m, _ = m.openEditor()
	}
	return m
}

// Init starts the shared one-second tick
func (m Model) Init() tea.Cmd {
	return clock.Schedule()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case clock.TickMsg:
		m.manager.Tick(time.Time(msg))
		var cmd tea.Cmd
		m, cmd = m.startAnimation()
		return m, tea.Batch(clock.Schedule(), cmd)

	case animationTickMsg:
		if m.anyAnimating() {
			return m, animationTick(m.shimmer.Config.Frame)
		}
		m.animating = false
		return m, nil

	case coalesce.FlushMsg:
		if _, err := m.writer.Handle(msg); err != nil {
			log.Printf("failed to save countdowns: %v", err)
			return m.setStatus("Failed to save: "+err.Error(), true)
		}
		return m, nil

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		switch m.mode {
		case modeEditor:
			return m.updateEditor(msg)
		case modeSettings:
			return m.updateSettings(msg)
		case modeSearch:
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}

	// Cursor blinks and the like go to whichever input is focused
	var cmd tea.Cmd
	switch m.mode {
	case modeEditor:
		m.editor, cmd = m.editor.update(msg)
	case modeSettings:
		m.settings, cmd = m.settings.update(msg)
	case modeSearch:
		m.search.input, cmd = m.search.input.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if err := m.writer.FlushPending(); err != nil {
			log.Printf("failed to save countdowns on quit: %v", err)
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		c := m.manager.Add()
		m.selected = c.ID
		return m.saveNow(c.ID + ":add")

	case key.Matches(msg, m.keys.Delete):
		return m.deleteSelected()

	case key.Matches(msg, m.keys.Minimize):
		if !m.manager.ToggleMinimized(m.selected) {
			return m, nil
		}
		return m.saveNow(m.selected + ":isMinimized")

	case key.Matches(msg, m.keys.Enter):
		c, ok := m.manager.Get(m.selected)
		if !ok {
			return m, nil
		}
		if c.IsMinimized {
			m.manager.Restore(c.ID)
			return m.saveNow(c.ID + ":isMinimized")
		}
		return m.openEditor()

	case key.Matches(msg, m.keys.Edit):
		return m.openEditor()

	case key.Matches(msg, m.keys.Next):
		m.selected = m.step(1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.selected = m.step(-1)
		return m, nil

	case key.Matches(msg, m.keys.NudgeUp):
		return m.nudge(0, -1)
	case key.Matches(msg, m.keys.NudgeDown):
		return m.nudge(0, 1)
	case key.Matches(msg, m.keys.NudgeLeft):
		return m.nudge(-2, 0)
	case key.Matches(msg, m.keys.NudgeRight):
		return m.nudge(2, 0)

	case key.Matches(msg, m.keys.Settings):
		return m.openSettings()

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.search = newSearchBar()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Copy):
		return m.copySelected()
	}
	return m, nil
}

// saveNow writes the collection immediately
func (m Model) saveNow(group string) (Model, tea.Cmd) {
	if err := m.writer.Now(group); err != nil {
		log.Printf("failed to save countdowns: %v", err)
		return m.setStatus("Failed to save: "+err.Error(), true)
	}
	return m, nil
}

// saveTheme writes the theme settings immediately
func (m Model) saveTheme() (Model, tea.Cmd) {
	if err := m.themes.Save(*m.theme); err != nil {
		log.Printf("failed to save theme: %v", err)
		return m.setStatus("Failed to save theme: "+err.Error(), true)
	}
	return m, nil
}

func (m Model) setStatus(text string, isErr bool) (Model, tea.Cmd) {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	seq := m.statusSeq
	return m, tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

func (m Model) deleteSelected() (Model, tea.Cmd) {
	id := m.selected
	i := m.manager.Index(id)
	if i < 0 {
		return m, nil
	}
	m.writer.CancelPrefix(id + ":")
	m.manager.Delete(id)

	m.selected = ""
	if all := m.manager.Clocks(); len(all) > 0 {
		m.selected = all[min(i, len(all)-1)].ID
	}
	return m.saveNow(id + ":delete")
}

// step moves the selection through the collection order, wrapping around
func (m Model) step(delta int) string {
	all := m.manager.Clocks()
	if len(all) == 0 {
		return ""
	}
	i := m.manager.Index(m.selected)
	if i < 0 {
		return all[0].ID
	}
	i = (i + delta + len(all)) % len(all)
	return all[i].ID
}

func (m Model) openEditor() (Model, tea.Cmd) {
	c, ok := m.manager.Get(m.selected)
	if !ok {
		return m, nil
	}
	m.mode = modeEditor
	m.editor = newEditor(c)
	return m, textinput.Blink
}

func (m Model) openSettings() (Model, tea.Cmd) {
	m.mode = modeSettings
	m.settings = newSettingsPanel(*m.theme)
	return m, nil
}

// nudge pins the selected card and moves it by (dx, dy), saving right away
func (m Model) nudge(dx, dy int) (Model, tea.Cmd) {
	r, ok := m.cardRect(m.selected)
	if !ok {
		return m, nil
	}
	m.manager.MoveTo(r.id, m.clampPosition(r.x+dx, r.y+dy))
	return m.saveNow(r.id + ":position")
}

func (m Model) clampPosition(left, top int) models.Position {
	maxLeft := max(0, m.width-cardWidth)
	maxTop := max(0, m.canvasHeight()-cardHeight)
	return models.Position{
		Top:  min(max(0, top), maxTop),
		Left: min(max(0, left), maxLeft),
	}
}

func (m Model) copySelected() (Model, tea.Cmd) {
	c, ok := m.manager.Get(m.selected)
	if !ok {
		return m, nil
	}
	r, _ := m.manager.Result(c.ID)
	if err := m.copy(summary(c, r)); err != nil {
		return m.setStatus("Clipboard unavailable: "+err.Error(), true)
	}
	return m.setStatus("Copied \""+c.Title+"\" to clipboard", false)
}

// summary is the plain-text line put on the clipboard
func summary(c models.Clock, r countdown.Result) string {
	if r.Completed {
		return fmt.Sprintf("%s: completed (target %s)", c.Title, c.TargetDate)
	}
	return fmt.Sprintf("%s: %s left, %s elapsed (target %s)", c.Title, r.Parts.String(), r.Progress.String(), c.TargetDate)
}

func animationTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return animationTickMsg{}
	})
}

func (m Model) startAnimation() (Model, tea.Cmd) {
	if m.animating || !m.anyAnimating() {
		return m, nil
	}
	m.animating = true
	return m, animationTick(m.shimmer.Config.Frame)
}

func (m Model) anyAnimating() bool {
	now := m.now()
	for _, c := range m.manager.Clocks() {
		pair := m.sync.Pair(c.ID)
		if pair == nil {
			continue
		}
		b := pair.Badge
		if b.Visible && b.Attention && m.shimmer.Animating(b.AttentionSince, now) {
			return true
		}
	}
	return false
}

// Layout

func (m Model) hasBadges() bool {
	for _, c := range m.manager.Clocks() {
		if c.IsMinimized {
			return true
		}
	}
	return false
}

func (m Model) canvasHeight() int {
	h := m.height - headerHeight - 2 // status + help
	if m.hasBadges() {
		h -= dockHeight
	}
	return max(cardHeight, h)
}

// cardRects lays out visible cards in canvas coordinates, in drawing order:
// flowing cards wrap in rows, then dragged cards sit at their positions
func (m Model) cardRects() []rect {
	perRow := max(1, (m.width+cardGap)/(cardWidth+cardGap))
	var flowing, pinned []rect
	n := 0
	for _, c := range m.manager.Clocks() {
		pair := m.sync.Pair(c.ID)
		if pair == nil || !pair.Card.Visible {
			continue
		}
		if pair.Card.Flowing() {
			flowing = append(flowing, rect{
				id: c.ID,
				x:  (n % perRow) * (cardWidth + cardGap),
				y:  (n / perRow) * (cardHeight + 1),
				w:  cardWidth,
				h:  cardHeight,
			})
			n++
			continue
		}
		pos := m.clampPosition(pair.Card.Position.Left, pair.Card.Position.Top)
		pinned = append(pinned, rect{id: c.ID, x: pos.Left, y: pos.Top, w: cardWidth, h: cardHeight})
	}
	return append(flowing, pinned...)
}

func (m Model) cardRect(id string) (rect, bool) {
	for _, r := range m.cardRects() {
		if r.id == id {
			return r, true
		}
	}
	return rect{}, false
}

// dockRects lays out visible badges in screen coordinates
func (m Model) dockRects() ([]rect, []string) {
	var rects []rect
	var views []string
	x := 0
	y := headerHeight + m.canvasHeight()
	now := m.now()
	for _, c := range m.manager.Clocks() {
		pair := m.sync.Pair(c.ID)
		if pair == nil || !pair.Badge.Visible {
			continue
		}
		view := renderBadge(pair.Badge, c.ID == m.selected, m.shimmer, now)
		w := lipgloss.Width(view)
		rects = append(rects, rect{id: c.ID, x: x, y: y, w: w, h: dockHeight})
		views = append(views, view)
		x += w + 1
	}
	return rects, views
}

// Mouse

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.mode != modeDashboard {
		return m, nil
	}
	cy := msg.Y - headerHeight

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if msg.Y == 0 && msg.X >= m.width-ansi.StringWidth(settingsTrigger)-1 {
			return m.openSettings()
		}
		rects, _ := m.dockRects()
		for _, r := range rects {
			if r.contains(msg.X, msg.Y) {
				m.selected = r.id
				m.manager.Restore(r.id)
				return m.saveNow(r.id + ":isMinimized")
			}
		}
		cards := m.cardRects()
		for i := len(cards) - 1; i >= 0; i-- {
			r := cards[i]
			if !r.contains(msg.X, cy) {
				continue
			}
			m.selected = r.id
			if cy-r.y < headerRows {
				m.drag = &dragState{id: r.id, dx: msg.X - r.x, dy: cy - r.y}
			}
			return m, nil
		}

	case tea.MouseActionMotion:
		if m.drag != nil {
			m.drag.moved = true
			m.manager.MoveTo(m.drag.id, m.clampPosition(msg.X-m.drag.dx, cy-m.drag.dy))
		}

	case tea.MouseActionRelease:
		if m.drag != nil {
			drag := m.drag
			m.drag = nil
			if drag.moved {
				return m.saveNow(drag.id + ":position")
			}
		}
	}
	return m, nil
}

// View renders the dashboard
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	parts := []string{m.renderHeader(), "", m.renderCanvas()}
	if m.hasBadges() {
		parts = append(parts, m.renderDock())
	}
	if m.mode == modeSearch {
		parts = append(parts, m.renderStatus(), m.search.View(m.width))
	} else {
		parts = append(parts, m.renderStatus(), m.renderHelpBar())
	}
	view := lipgloss.JoinVertical(lipgloss.Left, parts...)

	switch m.mode {
	case modeEditor:
		return overlayCenter(view, m.editor.View(m.accent), m.width, m.height)
	case modeSettings:
		return overlayCenter(view, m.settings.View(m.accent, *m.theme), m.width, m.height)
	}
	return view
}

func (m Model) renderHeader() string {
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(m.accent)).Bold(true)
	left := accent.Render("⏳ T-MINUS")

	done := 0
	clocks := m.manager.Clocks()
	for _, c := range clocks {
		if r, ok := m.manager.Result(c.ID); ok && r.Completed {
			done++
		}
	}
	info := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Render(fmt.Sprintf("  %d countdowns · %d done", len(clocks), done))

	clockText := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Render(m.now().Format("Mon 02 Jan 15:04:05") + "  ")
	right := clockText + accent.Render(settingsTrigger)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(info) - lipgloss.Width(right)
	if gap < 1 {
		return ansi.Truncate(left+" "+right, m.width, "")
	}
	return left + info + strings.Repeat(" ", gap) + right
}

func (m Model) renderCanvas() string {
	lines := blankCanvas(m.width, m.canvasHeight())
	rects := m.cardRects()
	if len(rects) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true).
			Render("All countdowns are minimized · press a to add one")
		placeOverlay(lines, 0, 0, empty)
	}
	for _, r := range rects {
		pair := m.sync.Pair(r.id)
		placeOverlay(lines, r.x, r.y, renderCard(pair.Card, r.id == m.selected))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDock() string {
	_, views := m.dockRects()
	var row []string
	for i, v := range views {
		if i > 0 {
			row = append(row, " ")
		}
		row = append(row, v)
	}
	dock := lipgloss.JoinHorizontal(lipgloss.Top, row...)
	lines := strings.Split(dock, "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, m.width, "…")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	color := ColorCompleted
	if m.statusErr {
		color = ColorError
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Width(m.width).
		Align(lipgloss.Center).
		Render(m.status)
}

// renderHelpBar renders the help bar at the bottom
func (m Model) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(m.width)
	return helpStyle.Render(m.help.View(m.keys))
}
