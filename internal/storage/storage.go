// SPDX-License-Identifier: MIT

// Package storage is the persisted key/value store the toolkit keeps its
// settings, UI state, credentials and caches in.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/thatcatcamp/obskit/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned by Get for a missing key.
var ErrNotFound = errors.New("storage: key not found")

// Store is a flat string key/value store.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Keys(prefix string) ([]string, error)
}

// GormStore keeps entries in the storage_entries table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore returns a store backed by db. The Entry model must already be
// migrated.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(key string) (string, error) {
	var entry models.Entry
	err := s.db.Where("storage_key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return entry.Value, nil
}

func (s *GormStore) Set(key, value string) error {
	entry := models.Entry{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *GormStore) Delete(key string) error {
	if err := s.db.Where("storage_key = ?", key).Delete(&models.Entry{}).Error; err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (s *GormStore) Keys(prefix string) ([]string, error) {
	var keys []string
	q := s.db.Model(&models.Entry{})
	if prefix != "" {
		q = q.Where("storage_key LIKE ? ESCAPE '!'", escapeLike(prefix)+"%")
	}
	if err := q.Order("storage_key").Pluck("storage_key", &keys).Error; err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	return keys, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}

// GetJSON decodes the value at key into v.
func GetJSON(s Store, key string, v any) error {
	raw, err := s.Get(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

// SetJSON encodes v and stores it at key.
func SetJSON(s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.Set(key, string(data))
}
