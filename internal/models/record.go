package models

import "time"

// Record is one key of the local key-value storage
type Record struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Storage keys
const (
	KeyClocks   = "countdowns"
	KeySettings = "settings"
	KeyBingo    = "bingo"
)
