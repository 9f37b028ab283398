package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gojournal/internal/dbmysql"
)

type LikeRepository interface {
	Find(ctx context.Context, userID, entryID uint64) (*dbmysql.Like, error)
	Create(ctx context.Context, like *dbmysql.Like) error
	Delete(ctx context.Context, id uint64) error
	Exists(ctx context.Context, userID, entryID uint64) (bool, error)
	CountByEntry(ctx context.Context, entryID uint64) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Find returns nil when userID has not liked entryID. The read takes a
// row lock so toggles by the same user serialize inside a transaction.
func (r *likeRepository) Find(ctx context.Context, userID, entryID uint64) (*dbmysql.Like, error) {
	var like dbmysql.Like
	err := r.db.WithContext(ctx).
		Clauses(lockUpdate).
		Where("user_id = ? AND daily_entry_id = ?", userID, entryID).
		Limit(1).
		Find(&like).Error
	if err != nil {
		return nil, err
	}
	if like.ID == 0 {
		return nil, nil
	}
	return &like, nil
}

// Create is a no-op when the (user, entry) pair already exists.
func (r *likeRepository) Create(ctx context.Context, like *dbmysql.Like) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(like).Error
}

func (r *likeRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&dbmysql.Like{}, id).Error
}

func (r *likeRepository) Exists(ctx context.Context, userID, entryID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Like{}).
		Where("user_id = ? AND daily_entry_id = ?", userID, entryID).
		Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) CountByEntry(ctx context.Context, entryID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Like{}).
		Where("daily_entry_id = ?", entryID).
		Count(&count).Error
	return count, err
}
