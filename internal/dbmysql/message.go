package dbmysql

import (
	"time"
)

type Message struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ConversationID uint64    `gorm:"column:conversation_id;not null;index:idx_messages_conversation_created,priority:1" json:"conversation_id"`
	SenderID       uint64    `gorm:"column:sender_id;not null;index" json:"sender_id"`
	Text           string    `gorm:"column:message_text;type:text;not null" json:"message_text"`
	CreatedAt      time.Time `gorm:"column:created_at;index:idx_messages_conversation_created,priority:2" json:"created_at"`
	IsRead         bool      `gorm:"column:is_read;not null;default:false" json:"is_read"`
}

func (Message) TableName() string {
	return "direct_messages"
}
