package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gojournal/internal/dbmysql"
	"gojournal/internal/social/repository"
)

// ToggleLike flips actorID's like on a shared entry and reports the new
// state. Authors cannot like their own entries.
func (e *engine) ToggleLike(ctx context.Context, actorID, entryID uint64) (bool, error) {
	const op = "toggle_like"

	entry, err := e.sharedEntry(ctx, op, entryID)
	if err != nil {
		return false, err
	}
	if entry.AuthorID == actorID {
		return false, e.reject(op, kindForbidden, "author cannot like own entry",
			zap.Uint64("entry_id", entryID), zap.Uint64("actor_id", actorID))
	}

	var liked bool
	err = e.store.Transaction(ctx, func(tx *repository.Store) error {
		existing, err := tx.Likes.Find(ctx, actorID, entryID)
		if err != nil {
			return err
		}
		if existing != nil {
			liked = false
			return tx.Likes.Delete(ctx, existing.ID)
		}
		liked = true
		return tx.Likes.Create(ctx, &dbmysql.Like{
			UserID:    actorID,
			EntryID:   entryID,
			CreatedAt: e.now(),
		})
	})
	if err != nil {
		return false, wrapErr(op, err)
	}

	e.counts.Invalidate(ctx, entryID)
	return liked, nil
}

func (e *engine) LikesCount(ctx context.Context, entryID uint64) (int64, error) {
	if n, ok := e.counts.Get(ctx, entryID); ok {
		return n, nil
	}
	n, err := e.store.Likes.CountByEntry(ctx, entryID)
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	e.counts.Set(ctx, entryID, n)
	return n, nil
}

func (e *engine) HasLiked(ctx context.Context, actorID, entryID uint64) (bool, error) {
	liked, err := e.store.Likes.Exists(ctx, actorID, entryID)
	if err != nil {
		return false, fmt.Errorf("has liked: %w", err)
	}
	return liked, nil
}
