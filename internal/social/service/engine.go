package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gojournal/internal/apperr"
	"gojournal/internal/config"
	"gojournal/internal/dbmysql"
	"gojournal/internal/social/repository"
)

// UserLookup resolves display names. Unknown ids are absent from the map.
type UserLookup interface {
	DisplayNames(ctx context.Context, ids []uint64) (map[uint64]string, error)
}

// EntryLookup returns nil, nil when the entry does not exist.
type EntryLookup interface {
	EntryByID(ctx context.Context, id uint64) (*dbmysql.Entry, error)
}

// LikeCountCache is a best-effort cache in front of the likes table.
type LikeCountCache interface {
	Get(ctx context.Context, entryID uint64) (int64, bool)
	Set(ctx context.Context, entryID uint64, count int64)
	Invalidate(ctx context.Context, entryID uint64)
}

// Engine is the social layer between viewing shared entries and messaging:
// likes, the contact request handshake, conversations and read tracking.
type Engine interface {
	ToggleLike(ctx context.Context, actorID, entryID uint64) (bool, error)
	LikesCount(ctx context.Context, entryID uint64) (int64, error)
	HasLiked(ctx context.Context, actorID, entryID uint64) (bool, error)

	SendContactRequest(ctx context.Context, senderID, recipientID, entryID uint64, message string) (*dbmysql.ContactRequest, error)
	RespondToContactRequest(ctx context.Context, requestID, responderID uint64, accept bool) (*dbmysql.ContactRequest, error)
	PendingRequests(ctx context.Context, recipientID uint64) ([]PendingRequest, error)

	ListConversations(ctx context.Context, userID uint64) ([]ConversationSummary, error)
	SendMessage(ctx context.Context, senderID, conversationID uint64, text string) (*dbmysql.Message, error)
	Messages(ctx context.Context, conversationID, requesterID uint64, limit int) ([]MessageView, error)
	MarkRead(ctx context.Context, conversationID, requesterID uint64) (bool, error)
}

// PendingRequest is an incoming request with the sender's display name.
type PendingRequest struct {
	dbmysql.ContactRequest
	SenderDisplayName string `json:"sender_display_name"`
}

// ConversationSummary is one row of a user's conversation list, seen from
// that user's side.
type ConversationSummary struct {
	ID                   uint64     `json:"id"`
	OtherUserID          uint64     `json:"other_user_id"`
	OtherUserDisplayName string     `json:"other_user_display_name"`
	CreatedAt            time.Time  `json:"created_at"`
	LastMessageAt        *time.Time `json:"last_message_at,omitempty"`
	UnreadCount          int64      `json:"unread_count"`
}

// MessageView is a stored message with its sender's display name.
type MessageView struct {
	dbmysql.Message
	SenderDisplayName string `json:"sender_display_name"`
}

type rejectKind string

const (
	kindNotFound     rejectKind = "not_found"
	kindForbidden    rejectKind = "forbidden"
	kindInvalidState rejectKind = "invalid_state"
)

type engine struct {
	store   *repository.Store
	users   UserLookup
	entries EntryLookup
	counts  LikeCountCache
	cfg     config.SocialConfig
	log     *zap.Logger
	now     func() time.Time
}

func NewEngine(
	store *repository.Store,
	users UserLookup,
	entries EntryLookup,
	counts LikeCountCache,
	cfg config.SocialConfig,
	log *zap.Logger,
) Engine {
	return newEngine(store, users, entries, counts, cfg, log, func() time.Time { return time.Now().UTC() })
}

func newEngine(
	store *repository.Store,
	users UserLookup,
	entries EntryLookup,
	counts LikeCountCache,
	cfg config.SocialConfig,
	log *zap.Logger,
	now func() time.Time,
) *engine {
	if counts == nil {
		counts = NoopLikeCountCache{}
	}
	if cfg.MessagePageLimit <= 0 {
		cfg.MessagePageLimit = 50
	}
	if cfg.MaxMessagePageLimit < cfg.MessagePageLimit {
		cfg.MaxMessagePageLimit = cfg.MessagePageLimit
	}
	if cfg.MaxMessageLength <= 0 {
		cfg.MaxMessageLength = 1000
	}
	if cfg.MaxRequestMessageLength <= 0 {
		cfg.MaxRequestMessageLength = 500
	}
	return &engine{
		store:   store,
		users:   users,
		entries: entries,
		counts:  counts,
		cfg:     cfg,
		log:     log.Named("social"),
		now:     now,
	}
}

// reject logs the real reason and hands the caller the uniform error.
func (e *engine) reject(op string, kind rejectKind, reason string, fields ...zap.Field) error {
	fields = append([]zap.Field{
		zap.String("op", op),
		zap.String("kind", string(kind)),
		zap.String("reason", reason),
	}, fields...)
	e.log.Debug("operation rejected", fields...)
	return apperr.ErrRejected
}

// sharedEntry loads an entry that other users may interact with.
func (e *engine) sharedEntry(ctx context.Context, op string, entryID uint64) (*dbmysql.Entry, error) {
	entry, err := e.entries.EntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("load entry %d: %w", entryID, err)
	}
	if entry == nil {
		return nil, e.reject(op, kindNotFound, "entry does not exist", zap.Uint64("entry_id", entryID))
	}
	if !entry.IsShared {
		return nil, e.reject(op, kindNotFound, "entry is not shared", zap.Uint64("entry_id", entryID))
	}
	return entry, nil
}

// wrapErr annotates infrastructure errors and passes rejections through.
func wrapErr(op string, err error) error {
	if err == nil || errors.Is(err, apperr.ErrRejected) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}

// NoopLikeCountCache is used when Redis is not configured; every Get misses.
type NoopLikeCountCache struct{}

func (NoopLikeCountCache) Get(context.Context, uint64) (int64, bool) { return 0, false }
func (NoopLikeCountCache) Set(context.Context, uint64, int64)        {}
func (NoopLikeCountCache) Invalidate(context.Context, uint64)        {}
