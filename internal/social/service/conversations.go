package service

import (
	"context"

	"gojournal/internal/dbmysql"
	"gojournal/internal/social/repository"
)

// ListConversations returns userID's conversations, most recent activity
// first. Conversations whose other participant no longer resolves are
// left out.
func (e *engine) ListConversations(ctx context.Context, userID uint64) ([]ConversationSummary, error) {
	const op = "list_conversations"

	var (
		convs  []*dbmysql.Conversation
		unread map[uint64]int64
	)
	err := e.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		convs, err = tx.Conversations.ListForUser(ctx, userID)
		if err != nil {
			return err
		}

		ids := make([]uint64, 0, len(convs))
		for _, conv := range convs {
			ids = append(ids, conv.ID)
		}
		unread, err = tx.Messages.UnreadCounts(ctx, ids, userID)
		return err
	})
	if err != nil {
		return nil, wrapErr(op, err)
	}

	others := make([]uint64, 0, len(convs))
	for _, conv := range convs {
		others = append(others, conv.OtherParticipant(userID))
	}
	names, err := e.displayNames(ctx, others)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	out := make([]ConversationSummary, 0, len(convs))
	for _, conv := range convs {
		otherID := conv.OtherParticipant(userID)
		name, ok := names[otherID]
		if !ok {
			continue
		}
		out = append(out, ConversationSummary{
			ID:                   conv.ID,
			OtherUserID:          otherID,
			OtherUserDisplayName: name,
			CreatedAt:            conv.CreatedAt,
			LastMessageAt:        conv.LastMessageAt,
			UnreadCount:          unread[conv.ID],
		})
	}
	return out, nil
}
