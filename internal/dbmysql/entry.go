package dbmysql

import (
	"time"
)

// Entry is a user's reflection on the daily image. One per user per day.
type Entry struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	AuthorID       uint64    `gorm:"column:author_id;not null;uniqueIndex:idx_entries_author_date,priority:1" json:"author_id"`
	DailyImageID   uint64    `gorm:"column:daily_image_id;not null;index" json:"daily_image_id"`
	EntryDate      string    `gorm:"column:entry_date;size:10;not null;uniqueIndex:idx_entries_author_date,priority:2" json:"entry_date"`
	ReflectionText string    `gorm:"column:reflection_text;type:text;not null" json:"reflection_text"`
	IsShared       bool      `gorm:"column:is_shared;not null;default:false;index" json:"is_shared"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Entry) TableName() string {
	return "daily_entries"
}
