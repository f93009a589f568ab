package db

import "errors"

var ErrNotFound = errors.New("record not found")

// Entry is a single named value in the key/value table.
type Entry struct {
	Name  string `gorm:"primaryKey;size:255"`
	Value string `gorm:"type:text;not null"`
}

func (Entry) TableName() string {
	return "txlog_entries"
}
