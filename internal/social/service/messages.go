package service

import (
	"context"

	"go.uber.org/zap"

	"gojournal/internal/common"
	"gojournal/internal/dbmysql"
	"gojournal/internal/social/repository"
)

func (e *engine) SendMessage(ctx context.Context, senderID, conversationID uint64, text string) (*dbmysql.Message, error) {
	const op = "send_message"

	text, err := common.NormalizeText("message", text, e.cfg.MaxMessageLength, false)
	if err != nil {
		return nil, err
	}

	var msg *dbmysql.Message
	err = e.store.Transaction(ctx, func(tx *repository.Store) error {
		conv, err := tx.Conversations.GetByID(ctx, conversationID)
		if err != nil {
			return err
		}
		if conv == nil {
			return e.reject(op, kindNotFound, "conversation does not exist", zap.Uint64("conversation_id", conversationID))
		}
		if !conv.HasParticipant(senderID) {
			return e.reject(op, kindForbidden, "sender is not a participant",
				zap.Uint64("conversation_id", conversationID), zap.Uint64("sender_id", senderID))
		}

		msg = &dbmysql.Message{
			ConversationID: conv.ID,
			SenderID:       senderID,
			Text:           text,
			CreatedAt:      e.now(),
		}
		if err := tx.Messages.Create(ctx, msg); err != nil {
			return err
		}
		return tx.Conversations.TouchLastMessage(ctx, conv.ID, msg.CreatedAt)
	})
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return msg, nil
}

// Messages returns the latest messages of a conversation, oldest first.
// Callers outside the conversation get an empty list, exactly as if it did
// not exist.
func (e *engine) Messages(ctx context.Context, conversationID, requesterID uint64, limit int) ([]MessageView, error) {
	const op = "get_messages"

	if limit <= 0 {
		limit = e.cfg.MessagePageLimit
	}
	if limit > e.cfg.MaxMessagePageLimit {
		limit = e.cfg.MaxMessagePageLimit
	}

	var (
		conv     *dbmysql.Conversation
		messages []*dbmysql.Message
	)
	err := e.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		conv, err = tx.Conversations.GetByID(ctx, conversationID)
		if err != nil || conv == nil || !conv.HasParticipant(requesterID) {
			return err
		}
		messages, err = tx.Messages.Recent(ctx, conv.ID, limit)
		return err
	})
	if err != nil {
		return nil, wrapErr(op, err)
	}
	if conv == nil || !conv.HasParticipant(requesterID) {
		e.log.Debug("operation soft-failed",
			zap.String("op", op),
			zap.Uint64("conversation_id", conversationID),
			zap.Uint64("requester_id", requesterID))
		return []MessageView{}, nil
	}

	names, err := e.displayNames(ctx, []uint64{conv.UserAID, conv.UserBID})
	if err != nil {
		return nil, wrapErr(op, err)
	}

	out := make([]MessageView, 0, len(messages))
	for _, m := range messages {
		out = append(out, MessageView{Message: *m, SenderDisplayName: names[m.SenderID]})
	}
	return out, nil
}

// MarkRead marks everything the other participant sent as read.
func (e *engine) MarkRead(ctx context.Context, conversationID, requesterID uint64) (bool, error) {
	const op = "mark_read"

	err := e.store.Transaction(ctx, func(tx *repository.Store) error {
		conv, err := tx.Conversations.GetByID(ctx, conversationID)
		if err != nil {
			return err
		}
		if conv == nil {
			return e.reject(op, kindNotFound, "conversation does not exist", zap.Uint64("conversation_id", conversationID))
		}
		if !conv.HasParticipant(requesterID) {
			return e.reject(op, kindForbidden, "requester is not a participant",
				zap.Uint64("conversation_id", conversationID), zap.Uint64("requester_id", requesterID))
		}
		_, err = tx.Messages.MarkRead(ctx, conv.ID, requesterID)
		return err
	})
	if err != nil {
		return false, wrapErr(op, err)
	}
	return true, nil
}
