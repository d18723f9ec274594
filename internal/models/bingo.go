package models

// BingoSize is the number of cells on a 5x5 board
const BingoSize = 25

// BingoCell is one square of the board
type BingoCell struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// BingoBoard is the persisted state of the BINGO mini-game
type BingoBoard struct {
	Title string      `json:"title"`
	Cells []BingoCell `json:"cells"`
}
