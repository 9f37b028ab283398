package dbmysql

import "time"

type Like struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:idx_likes_user_entry,priority:1" json:"user_id"`
	EntryID   uint64    `gorm:"column:daily_entry_id;not null;uniqueIndex:idx_likes_user_entry,priority:2;index" json:"daily_entry_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Like) TableName() string {
	return "reflection_likes"
}
