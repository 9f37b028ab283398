package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gojournal/internal/dbmysql"
)

type ConversationRepository interface {
	GetByID(ctx context.Context, id uint64) (*dbmysql.Conversation, error)
	GetByPair(ctx context.Context, userA, userB uint64) (*dbmysql.Conversation, error)
	Ensure(ctx context.Context, userA, userB uint64, at time.Time) (*dbmysql.Conversation, error)
	ListForUser(ctx context.Context, userID uint64) ([]*dbmysql.Conversation, error)
	TouchLastMessage(ctx context.Context, id uint64, at time.Time) error
}

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) GetByID(ctx context.Context, id uint64) (*dbmysql.Conversation, error) {
	var conv dbmysql.Conversation
	if err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&conv).Error; err != nil {
		return nil, err
	}
	if conv.ID == 0 {
		return nil, nil
	}
	return &conv, nil
}

// GetByPair accepts the two users in either order.
func (r *conversationRepository) GetByPair(ctx context.Context, userA, userB uint64) (*dbmysql.Conversation, error) {
	a, b := dbmysql.CanonicalPair(userA, userB)
	return r.getByPair(r.db.WithContext(ctx), a, b)
}

func (r *conversationRepository) getByPair(db *gorm.DB, a, b uint64) (*dbmysql.Conversation, error) {
	var conv dbmysql.Conversation
	err := db.Where("user_a_id = ? AND user_b_id = ?", a, b).Limit(1).Find(&conv).Error
	if err != nil {
		return nil, err
	}
	if conv.ID == 0 {
		return nil, nil
	}
	return &conv, nil
}

// Ensure returns the conversation for the pair, creating it when absent.
// Concurrent callers converge on the single row kept by the unique index.
func (r *conversationRepository) Ensure(ctx context.Context, userA, userB uint64, at time.Time) (*dbmysql.Conversation, error) {
	a, b := dbmysql.CanonicalPair(userA, userB)
	db := r.db.WithContext(ctx)

	conv, err := r.getByPair(db, a, b)
	if err != nil {
		return nil, err
	}
	if conv != nil {
		return conv, nil
	}

	conv = &dbmysql.Conversation{UserAID: a, UserBID: b, CreatedAt: at}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(conv)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected > 0 && conv.ID != 0 {
		return conv, nil
	}

	existing, err := r.getByPair(db.Clauses(lockShared), a, b)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return existing, nil
}

// ListForUser orders by most recent activity: last message, else creation.
func (r *conversationRepository) ListForUser(ctx context.Context, userID uint64) ([]*dbmysql.Conversation, error) {
	var convs []*dbmysql.Conversation
	err := r.db.WithContext(ctx).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Order("COALESCE(last_message_at, created_at) DESC, id DESC").
		Find(&convs).Error
	return convs, err
}

func (r *conversationRepository) TouchLastMessage(ctx context.Context, id uint64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Conversation{}).
		Where("id = ?", id).
		Update("last_message_at", at).Error
}
