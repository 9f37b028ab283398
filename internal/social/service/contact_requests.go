package service

import (
	"context"

	"go.uber.org/zap"

	"gojournal/internal/common"
	"gojournal/internal/dbmysql"
	"gojournal/internal/social/repository"
)

// SendContactRequest asks the author of a shared entry to open a
// conversation. The sender must have liked the entry first. Repeating a
// request returns the stored one unchanged, whatever its status.
func (e *engine) SendContactRequest(ctx context.Context, senderID, recipientID, entryID uint64, message string) (*dbmysql.ContactRequest, error) {
	const op = "send_contact_request"

	message, err := common.NormalizeText("message", message, e.cfg.MaxRequestMessageLength, true)
	if err != nil {
		return nil, err
	}

	entry, err := e.sharedEntry(ctx, op, entryID)
	if err != nil {
		return nil, err
	}
	if entry.AuthorID != recipientID {
		return nil, e.reject(op, kindForbidden, "recipient is not the entry author",
			zap.Uint64("entry_id", entryID), zap.Uint64("recipient_id", recipientID))
	}

	var result *dbmysql.ContactRequest
	err = e.store.Transaction(ctx, func(tx *repository.Store) error {
		liked, err := tx.Likes.Exists(ctx, senderID, entryID)
		if err != nil {
			return err
		}
		if !liked {
			return e.reject(op, kindForbidden, "sender has not liked the entry",
				zap.Uint64("entry_id", entryID), zap.Uint64("sender_id", senderID))
		}

		req, _, err := tx.Requests.CreateOrGet(ctx, &dbmysql.ContactRequest{
			SenderID:    senderID,
			RecipientID: recipientID,
			EntryID:     entryID,
			Message:     message,
			Status:      dbmysql.RequestPending,
			CreatedAt:   e.now(),
		})
		if err != nil {
			return err
		}
		result = req
		return nil
	})
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return result, nil
}

// RespondToContactRequest resolves a pending request once. Accepting also
// opens the conversation between the two users in the same transaction.
func (e *engine) RespondToContactRequest(ctx context.Context, requestID, responderID uint64, accept bool) (*dbmysql.ContactRequest, error) {
	const op = "respond_contact_request"

	target := dbmysql.RequestDeclined
	if accept {
		target = dbmysql.RequestAccepted
	}

	var result *dbmysql.ContactRequest
	err := e.store.Transaction(ctx, func(tx *repository.Store) error {
		req, err := tx.Requests.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return e.reject(op, kindNotFound, "request does not exist", zap.Uint64("request_id", requestID))
		}
		if req.RecipientID != responderID {
			return e.reject(op, kindForbidden, "responder is not the recipient",
				zap.Uint64("request_id", requestID), zap.Uint64("responder_id", responderID))
		}
		if !req.Status.CanTransitionTo(target) {
			return e.reject(op, kindInvalidState, "request already resolved",
				zap.Uint64("request_id", requestID), zap.String("status", string(req.Status)))
		}

		now := e.now()
		ok, err := tx.Requests.Resolve(ctx, req.ID, target, now)
		if err != nil {
			return err
		}
		if !ok {
			return e.reject(op, kindInvalidState, "request resolved concurrently", zap.Uint64("request_id", requestID))
		}

		if accept {
			if _, err := tx.Conversations.Ensure(ctx, req.SenderID, req.RecipientID, now); err != nil {
				return err
			}
		}

		req.Status = target
		req.RespondedAt = &now
		result = req
		return nil
	})
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return result, nil
}

// PendingRequests lists requests awaiting recipientID, newest first.
func (e *engine) PendingRequests(ctx context.Context, recipientID uint64) ([]PendingRequest, error) {
	const op = "pending_requests"

	reqs, err := e.store.Requests.ListPending(ctx, recipientID)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	senderIDs := make([]uint64, 0, len(reqs))
	for _, req := range reqs {
		senderIDs = append(senderIDs, req.SenderID)
	}
	names, err := e.displayNames(ctx, senderIDs)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	out := make([]PendingRequest, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, PendingRequest{
			ContactRequest:    *req,
			SenderDisplayName: names[req.SenderID],
		})
	}
	return out, nil
}

func (e *engine) displayNames(ctx context.Context, ids []uint64) (map[uint64]string, error) {
	if len(ids) == 0 {
		return map[uint64]string{}, nil
	}
	return e.users.DisplayNames(ctx, ids)
}
