package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultLikeCountTTL = 5 * time.Minute

// LikeCountStorage caches per-entry like counts. Every method is best
// effort: a redis failure is logged and reads fall through to the database.
type LikeCountStorage struct {
	redis *redis.Client
	ttl   time.Duration
	log   *zap.Logger
}

func NewLikeCountStorage(rds *redis.Client, ttl time.Duration, log *zap.Logger) *LikeCountStorage {
	if ttl <= 0 {
		ttl = defaultLikeCountTTL
	}
	return &LikeCountStorage{redis: rds, ttl: ttl, log: log}
}

// Get returns the cached count, ok is false on a miss.
func (s *LikeCountStorage) Get(ctx context.Context, entryID uint64) (int64, bool) {
	n, err := s.redis.Get(ctx, s.name(entryID)).Int64()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("like count cache read failed", zap.Uint64("entry_id", entryID), zap.Error(err))
		}
		return 0, false
	}
	return n, true
}

func (s *LikeCountStorage) Set(ctx context.Context, entryID uint64, count int64) {
	if err := s.redis.Set(ctx, s.name(entryID), count, s.ttl).Err(); err != nil {
		s.log.Warn("like count cache write failed", zap.Uint64("entry_id", entryID), zap.Error(err))
	}
}

func (s *LikeCountStorage) Invalidate(ctx context.Context, entryID uint64) {
	if err := s.redis.Del(ctx, s.name(entryID)).Err(); err != nil {
		s.log.Warn("like count cache invalidate failed", zap.Uint64("entry_id", entryID), zap.Error(err))
	}
}

func (s *LikeCountStorage) name(entryID uint64) string {
	return fmt.Sprintf("journal:likes:%d", entryID)
}
