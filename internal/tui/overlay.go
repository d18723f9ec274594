package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// rect is a hit area in screen cells
type rect struct {
	id   string
	x, y int
	w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// blankCanvas returns height lines of width spaces
func blankCanvas(width, height int) []string {
	lines := make([]string, height)
	row := strings.Repeat(" ", max(0, width))
	for i := range lines {
		lines[i] = row
	}
	return lines
}

// placeOverlay draws fg over the canvas lines with its top-left corner at
// (x, y). Whatever falls outside the canvas is clipped.
func placeOverlay(lines []string, x, y int, fg string) {
	if x < 0 {
		x = 0
	}
	for i, fgLine := range strings.Split(fg, "\n") {
		row := y + i
		if row < 0 || row >= len(lines) {
			continue
		}
		bg := lines[row]
		bgWidth := ansi.StringWidth(bg)
		if x >= bgWidth {
			continue
		}
		fgLine = ansi.Truncate(fgLine, bgWidth-x, "")
		fgWidth := ansi.StringWidth(fgLine)

		left := ansi.Truncate(bg, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(bg, x+fgWidth, "")
		lines[row] = left + fgLine + right
	}
}

// overlayCenter draws fg in the middle of the rendered view
func overlayCenter(view, fg string, width, height int) string {
	lines := strings.Split(view, "\n")
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w < width {
			lines[i] = l + strings.Repeat(" ", width-w)
		}
	}
	fgLines := strings.Split(fg, "\n")
	x := (width - widest(fgLines)) / 2
	y := (height - len(fgLines)) / 2
	placeOverlay(lines, max(0, x), max(0, y), fg)
	return strings.Join(lines, "\n")
}

func widest(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, ansi.StringWidth(l))
	}
	return w
}
