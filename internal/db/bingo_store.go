package db

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/balkashynov/tminus/internal/bingo"
	"github.com/balkashynov/tminus/internal/models"
)

// BingoStore persists the BINGO board
type BingoStore struct {
	kv *KV
}

// NewBingoStore wraps kv
func NewBingoStore(kv *KV) *BingoStore {
	return &BingoStore{kv: kv}
}

// Load returns the stored board, or an empty board when nothing usable is stored
func (s *BingoStore) Load() (models.BingoBoard, error) {
	raw, ok, err := s.kv.Get(models.KeyBingo)
	if err != nil {
		return bingo.NewBoard(), err
	}
	if !ok {
		return bingo.NewBoard(), nil
	}

	var board models.BingoBoard
	if err := json.Unmarshal([]byte(raw), &board); err != nil {
		log.Printf("bingo store: discarding corrupt board: %v", err)
		return bingo.NewBoard(), nil
	}
	return bingo.Normalize(board), nil
}

// Save writes the board
func (s *BingoStore) Save(board models.BingoBoard) error {
	b, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("failed to encode bingo board: %w", err)
	}
	return s.kv.Put(models.KeyBingo, string(b))
}
