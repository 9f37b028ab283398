package dbmysql

import (
	"time"
)

// Conversation is a pairwise channel. UserAID < UserBID always holds so the
// unique index covers both orderings of the same pair.
type Conversation struct {
	ID            uint64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserAID       uint64     `gorm:"column:user_a_id;not null;uniqueIndex:idx_conversations_pair,priority:1" json:"user_a_id"`
	UserBID       uint64     `gorm:"column:user_b_id;not null;uniqueIndex:idx_conversations_pair,priority:2;index" json:"user_b_id"`
	CreatedAt     time.Time  `gorm:"column:created_at" json:"created_at"`
	LastMessageAt *time.Time `gorm:"column:last_message_at" json:"last_message_at,omitempty"`
}

func (Conversation) TableName() string {
	return "conversations"
}

func (c *Conversation) HasParticipant(userID uint64) bool {
	return c.UserAID == userID || c.UserBID == userID
}

// OtherParticipant returns the participant that is not userID.
func (c *Conversation) OtherParticipant(userID uint64) uint64 {
	if c.UserAID == userID {
		return c.UserBID
	}
	return c.UserAID
}

// CanonicalPair orders two user ids the way conversations store them.
func CanonicalPair(a, b uint64) (uint64, uint64) {
	if a < b {
		return a, b
	}
	return b, a
}
