package dbmysql

import (
	"time"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestDeclined RequestStatus = "declined"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestAccepted, RequestDeclined:
		return true
	}
	return false
}

func (s RequestStatus) IsTerminal() bool {
	return s == RequestAccepted || s == RequestDeclined
}

// CanTransitionTo reports whether s may move to next. Only pending moves,
// and only into a terminal state.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	return s == RequestPending && next.IsTerminal()
}

// ContactRequest is an ask to open a conversation, anchored to the shared
// entry that prompted it. RecipientID is always the entry's author.
type ContactRequest struct {
	ID          uint64        `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	SenderID    uint64        `gorm:"column:sender_id;not null;uniqueIndex:idx_contact_requests_triple,priority:1" json:"sender_id"`
	RecipientID uint64        `gorm:"column:recipient_id;not null;uniqueIndex:idx_contact_requests_triple,priority:2;index" json:"recipient_id"`
	EntryID     uint64        `gorm:"column:daily_entry_id;not null;uniqueIndex:idx_contact_requests_triple,priority:3" json:"daily_entry_id"`
	Message     string        `gorm:"column:message;size:500" json:"message,omitempty"`
	Status      RequestStatus `gorm:"column:status;size:16;not null;default:pending;index" json:"status"`
	CreatedAt   time.Time     `gorm:"column:created_at" json:"created_at"`
	RespondedAt *time.Time    `gorm:"column:responded_at" json:"responded_at,omitempty"`
}

func (ContactRequest) TableName() string {
	return "contact_requests"
}
