package dbmysql

import (
	"time"
)

const dayLayout = "2006-01-02"

// DailyImage is the curated image for one calendar day, cached from the
// Wikipedia featured feed.
type DailyImage struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ImageDate   string    `gorm:"column:image_date;size:10;uniqueIndex;not null" json:"image_date"`
	Title       string    `gorm:"column:title;size:500;not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	ImageURL    string    `gorm:"column:image_url;size:1000;not null" json:"image_url"`
	PageURL     string    `gorm:"column:page_url;size:1000" json:"page_url"`
	MediaFileID string    `gorm:"column:media_file_id;size:24" json:"media_file_id,omitempty"` // GridFS ObjectID
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (DailyImage) TableName() string {
	return "daily_images"
}

// DayKey formats t as the YYYY-MM-DD key used by image_date and entry_date.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

func ParseDay(s string) (time.Time, error) {
	return time.Parse(dayLayout, s)
}
