// Package coalesce collapses bursts of edits into single storage writes.
//
// A Writer never runs timers of its own. Touch returns a tea.Cmd that
// delivers a FlushMsg after the delay; the program hands that message back
// to Handle, which flushes only if nothing re-armed the group meanwhile.
// Everything therefore happens on the Bubble Tea update goroutine.
package coalesce

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FlushMsg asks the writer to flush a group if Seq is still current
type FlushMsg struct {
	Group string
	Seq   uint64
}

// Writer debounces flushes per group
type Writer struct {
	delay   time.Duration
	flush   func() error
	seq     uint64
	pending map[string]uint64
}

// New returns a writer that calls flush delay after the last touch of a
// group. flush must read the live state when it runs.
func New(delay time.Duration, flush func() error) *Writer {
	return &Writer{
		delay:   delay,
		flush:   flush,
		pending: make(map[string]uint64),
	}
}

// Touch (re)arms the delayed flush for group, superseding any pending one
func (w *Writer) Touch(group string) tea.Cmd {
	w.seq++
	seq := w.seq
	w.pending[group] = seq
	return tea.Tick(w.delay, func(time.Time) tea.Msg {
		return FlushMsg{Group: group, Seq: seq}
	})
}

// Handle flushes if msg is the latest arming of its group. It reports
// whether a flush happened.
func (w *Writer) Handle(msg FlushMsg) (bool, error) {
	current, ok := w.pending[msg.Group]
	if !ok || current != msg.Seq {
		return false, nil
	}
	delete(w.pending, msg.Group)
	return true, w.flush()
}

// Now cancels any pending flush of group and flushes immediately
func (w *Writer) Now(group string) error {
	delete(w.pending, group)
	return w.flush()
}

// Cancel drops the pending flush of group without writing
func (w *Writer) Cancel(group string) {
	delete(w.pending, group)
}

// CancelPrefix drops every pending group starting with prefix
func (w *Writer) CancelPrefix(prefix string) {
	for group := range w.pending {
		if strings.HasPrefix(group, prefix) {
			delete(w.pending, group)
		}
	}
}

// Pending returns the number of armed groups
func (w *Writer) Pending() int {
	return len(w.pending)
}

// FlushPending writes once if anything is armed and clears all groups
func (w *Writer) FlushPending() error {
	if len(w.pending) == 0 {
		return nil
	}
	clear(w.pending)
	return w.flush()
}
