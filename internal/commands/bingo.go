package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/balkashynov/tminus/internal/bingo"
	"github.com/balkashynov/tminus/internal/models"
)

const bingoCellWidth = 14

var bingoCmd = &cobra.Command{
	Use:   "bingo",
	Short: "Show the BINGO board",
	Long: `Show the 5x5 BINGO board. Cells are numbered 1-25 row by row.

  tminus bingo toggle 7        Mark cell 7 done or undone
  tminus bingo fill items.txt  Fill the board from a file, one item per line
  tminus bingo title "Trip"    Rename the board
  tminus bingo reset           Clear the board`,
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		board, err := a.boards.Load()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println(renderBingo(board))
	}),
}

var bingoToggleCmd = &cobra.Command{
	Use:   "toggle <cell>",
	Short: "Toggle a cell (1-25)",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Error: invalid cell %q\n", args[0])
			return
		}
		board, err := a.boards.Load()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		wasWon := bingo.Won(board)
		changed, err := bingo.Toggle(&board, n-1)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if !changed {
			fmt.Printf("Cell %d can't be toggled\n", n)
			return
		}
		if err := a.boards.Save(board); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Println(renderBingo(board))
		if bingo.Won(board) && !wasWon {
			fmt.Println("🎉 BINGO!")
		}
	}),
}

var bingoFillCmd = &cobra.Command{
	Use:   "fill <file>",
	Short: "Fill the board from a file with one item per line",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		items, err := readLines(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		board, err := a.boards.Load()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		title, _ := cmd.Flags().GetString("title")
		if err := bingo.Fill(&board, title, items); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := a.boards.Save(board); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println(renderBingo(board))
	}),
}

var bingoTitleCmd = &cobra.Command{
	Use:   "title <text>",
	Short: "Rename the board",
	Args:  cobra.MinimumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		board, err := a.boards.Load()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := bingo.Rename(&board, strings.Join(args, " ")); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := a.boards.Save(board); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Board renamed to %q\n", board.Title)
	}),
}

var bingoResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the board back to placeholders",
	Run: withApp(func(cmd *cobra.Command, args []string, a *app) {
		if err := a.boards.Save(bingo.NewBoard()); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("🧹 Board cleared")
	}),
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// renderBingo draws the board as a 5x5 table with completed cells struck
func renderBingo(board models.BingoBoard) string {
	board = bingo.Normalize(board)

	done := lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Strikethrough(true)
	placeholder := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	plain := lipgloss.NewStyle()

	rows := make([][]string, 5)
	for i, cell := range board.Cells {
		text := ansi.Truncate(cell.Text, bingoCellWidth-3, "…")
		label := fmt.Sprintf("%d %s", i+1, text)
		switch {
		case cell.Completed:
			label = done.Render(label)
		case !bingo.Toggleable(cell):
			label = placeholder.Render(label)
		default:
			label = plain.Render(label)
		}
		rows[i/5] = append(rows[i/5], label)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#3C3C3C"))).
		BorderRow(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Width(bingoCellWidth).Padding(0, 1)
		}).
		Rows(rows...)

	title := board.Title
	if title == "" {
		title = bingo.DefaultTitle
	}
	heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF8800")).Render(title)
	if bingo.Won(board) {
		heading += "  🎉 BINGO!"
	}
	return heading + "\n" + t.Render()
}

func init() {
	bingoFillCmd.Flags().StringP("title", "t", "", "Board title")

	bingoCmd.AddCommand(bingoToggleCmd)
	bingoCmd.AddCommand(bingoFillCmd)
	bingoCmd.AddCommand(bingoTitleCmd)
	bingoCmd.AddCommand(bingoResetCmd)
}
