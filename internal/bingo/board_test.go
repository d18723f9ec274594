package bingo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/balkashynov/tminus/internal/models"
)

func filledBoard(t *testing.T) models.BingoBoard {
	t.Helper()
	items := make([]string, 30)
	for i := range items {
		items[i] = fmt.Sprintf("item %d", i+1)
	}
	b := NewBoard()
	if err := Fill(&b, "", items); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	return b
}

func TestFillTakesFirst25(t *testing.T) {
	b := filledBoard(t)
	if b.Title != DefaultTitle {
		t.Errorf("title = %q", b.Title)
	}
	if len(b.Cells) != models.BingoSize || b.Cells[24].Text != "item 25" {
		t.Errorf("cells = %+v", b.Cells)
	}
}

func TestFillTooFewLeavesBoardUntouched(t *testing.T) {
	b := NewBoard()
	err := Fill(&b, "x", []string{"a", "b", " "})
	if !errors.Is(err, ErrNotEnoughItems) {
		t.Fatalf("err = %v", err)
	}
	if b.Title != "" || b.Cells[0].Text != Placeholder {
		t.Errorf("board changed: %+v", b)
	}
}

func TestToggleIgnoresPlaceholders(t *testing.T) {
	b := NewBoard()
	changed, err := Toggle(&b, 3)
	if err != nil || changed {
		t.Errorf("Toggle placeholder = %v, %v", changed, err)
	}
	if _, err := Toggle(&b, 25); err == nil {
		t.Error("expected out of range error")
	}
}

func TestWinLines(t *testing.T) {
	lines := map[string][]int{
		"row":      {5, 6, 7, 8, 9},
		"column":   {2, 7, 12, 17, 22},
		"diagonal": {0, 6, 12, 18, 24},
		"anti":     {4, 8, 12, 16, 20},
	}
	for name, cells := range lines {
		t.Run(name, func(t *testing.T) {
			b := filledBoard(t)
			for i, idx := range cells {
				if Won(b) {
					t.Fatalf("won after %d cells", i)
				}
				if _, err := Toggle(&b, idx); err != nil {
					t.Fatal(err)
				}
			}
			if !Won(b) {
				t.Error("expected win")
			}
		})
	}
}

func TestNormalizeResetsWrongShape(t *testing.T) {
	b := Normalize(models.BingoBoard{Title: "keep", Cells: []models.BingoCell{{Text: "x"}}})
	if b.Title != "keep" || len(b.Cells) != models.BingoSize || b.Cells[0].Text != Placeholder {
		t.Errorf("Normalize = %+v", b)
	}
}
