package models

import (
	"time"
)

// Entry is one key/value pair of the persisted store that stands in for
// browser local storage. Values are opaque strings, usually JSON.
type Entry struct {
	ID        uint   `gorm:"primaryKey"`
	Key       string `gorm:"column:storage_key;uniqueIndex;size:191;not null"`
	Value     string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides for consistent naming
func (Entry) TableName() string {
	return "storage_entries"
}

// All lists every model for migrations.
func All() []any {
	return []any{&Entry{}}
}
