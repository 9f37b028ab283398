package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store groups the social repositories over one *gorm.DB. Inside
// Transaction the callback receives a Store bound to the transaction.
type Store struct {
	db            *gorm.DB
	Likes         LikeRepository
	Requests      ContactRequestRepository
	Conversations ConversationRepository
	Messages      MessageRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:            db,
		Likes:         NewLikeRepository(db),
		Requests:      NewContactRequestRepository(db),
		Conversations: NewConversationRepository(db),
		Messages:      NewMessageRepository(db),
	}
}

func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// lockShared makes a re-read see rows committed by a concurrent writer
// under REPEATABLE READ. SQLite ignores the clause.
var lockShared = clause.Locking{Strength: "SHARE"}

// lockUpdate holds the read rows (or the gap) until commit.
var lockUpdate = clause.Locking{Strength: "UPDATE"}
