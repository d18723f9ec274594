package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/balkashynov/tminus/internal/models"
)

// KV is the client-local key-value storage. Each key holds one JSON blob.
type KV struct {
	db *gorm.DB
}

// NewKV wraps an open database
func NewKV(db *gorm.DB) *KV {
	return &KV{db: db}
}

// Get returns the raw value for key. A missing key is not an error.
func (kv *KV) Get(key string) (string, bool, error) {
	var rec models.Record
	err := kv.db.Where(&models.Record{Key: key}).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return rec.Value, true, nil
}

// Put replaces the whole value stored under key
func (kv *KV) Put(key, value string) error {
	return kv.db.Transaction(func(tx *gorm.DB) error {
		rec := models.Record{Key: key, Value: value}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&rec).Error
		if err != nil {
			return fmt.Errorf("failed to write %q: %w", key, err)
		}
		return nil
	})
}

// Delete removes key. Deleting a missing key is fine.
func (kv *KV) Delete(key string) error {
	if err := kv.db.Where(&models.Record{Key: key}).Delete(&models.Record{}).Error; err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}
