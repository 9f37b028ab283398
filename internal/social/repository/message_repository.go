package repository

import (
	"context"

	"gorm.io/gorm"

	"gojournal/internal/dbmysql"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *dbmysql.Message) error
	Recent(ctx context.Context, conversationID uint64, limit int) ([]*dbmysql.Message, error)
	MarkRead(ctx context.Context, conversationID, readerID uint64) (int64, error)
	UnreadCounts(ctx context.Context, conversationIDs []uint64, readerID uint64) (map[uint64]int64, error)
	CountByConversation(ctx context.Context, conversationID uint64) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *dbmysql.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// Recent returns the newest limit messages in ascending order.
func (r *messageRepository) Recent(ctx context.Context, conversationID uint64, limit int) ([]*dbmysql.Message, error) {
	var messages []*dbmysql.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// MarkRead flags every unread message not sent by readerID.
func (r *messageRepository) MarkRead(ctx context.Context, conversationID, readerID uint64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, readerID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

type unreadRow struct {
	ConversationID uint64
	Unread         int64
}

func (r *messageRepository) UnreadCounts(ctx context.Context, conversationIDs []uint64, readerID uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(conversationIDs))
	if len(conversationIDs) == 0 {
		return counts, nil
	}

	var rows []unreadRow
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Select("conversation_id, COUNT(*) AS unread").
		Where("conversation_id IN ? AND sender_id <> ? AND is_read = ?", conversationIDs, readerID, false).
		Group("conversation_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.ConversationID] = row.Unread
	}
	return counts, nil
}

func (r *messageRepository) CountByConversation(ctx context.Context, conversationID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where("conversation_id = ?", conversationID).
		Count(&count).Error
	return count, err
}
