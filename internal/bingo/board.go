package bingo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/balkashynov/tminus/internal/models"
)

const (
	// Placeholder fills cells that have never been generated
	Placeholder = "Generate with AI"
	// Free is the traditional free square; it can't be toggled
	Free = "FREE"
	// DefaultTitle is used when a board is filled without a title
	DefaultTitle = "BINGO"

	size = 5
)

var (
	ErrNotEnoughItems = fmt.Errorf("need at least %d items", models.BingoSize)
	ErrEmptyTitle     = errors.New("title can't be empty")
)

// NewBoard returns an untitled board of placeholder cells
func NewBoard() models.BingoBoard {
	return models.BingoBoard{Cells: placeholderCells()}
}

func placeholderCells() []models.BingoCell {
	cells := make([]models.BingoCell, models.BingoSize)
	for i := range cells {
		cells[i] = models.BingoCell{Text: Placeholder}
	}
	return cells
}

// Normalize resets the cells when a stored board has the wrong shape.
// The title survives.
func Normalize(b models.BingoBoard) models.BingoBoard {
	if len(b.Cells) != models.BingoSize {
		b.Cells = placeholderCells()
	}
	return b
}

// Toggleable reports whether a cell holds real content
func Toggleable(c models.BingoCell) bool {
	return c.Text != Placeholder && c.Text != Free
}

// Toggle flips the completion of cell i (0-based). Placeholder and free
// cells are left alone and report false.
func Toggle(b *models.BingoBoard, i int) (bool, error) {
	if i < 0 || i >= len(b.Cells) {
		return false, fmt.Errorf("cell %d out of range 1-%d", i+1, len(b.Cells))
	}
	if !Toggleable(b.Cells[i]) {
		return false, nil
	}
	b.Cells[i].Completed = !b.Cells[i].Completed
	return true, nil
}

// Won reports whether any row, column or diagonal is fully completed
func Won(b models.BingoBoard) bool {
	if len(b.Cells) != models.BingoSize {
		return false
	}
	done := func(row, col int) bool { return b.Cells[row*size+col].Completed }

	for i := 0; i < size; i++ {
		rowDone, colDone := true, true
		for j := 0; j < size; j++ {
			rowDone = rowDone && done(i, j)
			colDone = colDone && done(j, i)
		}
		if rowDone || colDone {
			return true
		}
	}

	diag, anti := true, true
	for i := 0; i < size; i++ {
		diag = diag && done(i, i)
		anti = anti && done(i, size-1-i)
	}
	return diag || anti
}

// Fill replaces the board content with the first 25 non-empty items. On
// error the board is left untouched.
func Fill(b *models.BingoBoard, title string, items []string) error {
	var cleaned []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			cleaned = append(cleaned, item)
		}
	}
	if len(cleaned) < models.BingoSize {
		return fmt.Errorf("%w, got %d", ErrNotEnoughItems, len(cleaned))
	}

	cells := make([]models.BingoCell, models.BingoSize)
	for i := range cells {
		cells[i] = models.BingoCell{Text: cleaned[i]}
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultTitle
	}
	b.Title = title
	b.Cells = cells
	return nil
}

// Rename sets the board title
func Rename(b *models.BingoBoard, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	b.Title = title
	return nil
}
