// Package handler exposes the social engine over HTTP.
package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gojournal/internal/apperr"
	"gojournal/internal/common"
	"gojournal/internal/social/service"
)

//go:generate mockgen -destination=mock_engine_test.go -package=handler gojournal/internal/social/service Engine

type SocialHandler struct {
	engine service.Engine
	log    *zap.Logger
}

func NewSocialHandler(engine service.Engine, log *zap.Logger) *SocialHandler {
	return &SocialHandler{engine: engine, log: log}
}

type likeResponse struct {
	EntryID    uint64 `json:"entry_id"`
	Liked      bool   `json:"liked"`
	LikesCount int64  `json:"likes_count"`
}

type sendContactRequest struct {
	RecipientID uint64 `json:"recipient_id"`
	EntryID     uint64 `json:"entry_id"`
	Message     string `json:"message"`
}

type respondRequest struct {
	Accept *bool `json:"accept"`
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

type markReadResponse struct {
	ConversationID uint64 `json:"conversation_id"`
	Read           bool   `json:"read"`
}

// Register mounts the social routes on an authenticated router.
func (h *SocialHandler) Register(r *mux.Router) {
	r.HandleFunc("/entries/{entryID:[0-9]+}/like", h.ToggleLike).Methods(http.MethodPost)
	r.HandleFunc("/entries/{entryID:[0-9]+}/likes", h.Likes).Methods(http.MethodGet)

	r.HandleFunc("/contact-requests", h.SendContactRequest).Methods(http.MethodPost)
	r.HandleFunc("/contact-requests/pending", h.PendingRequests).Methods(http.MethodGet)
	r.HandleFunc("/contact-requests/{requestID:[0-9]+}/respond", h.RespondToContactRequest).Methods(http.MethodPost)

	r.HandleFunc("/conversations", h.ListConversations).Methods(http.MethodGet)
	r.HandleFunc("/conversations/{conversationID:[0-9]+}/messages", h.Messages).Methods(http.MethodGet)
	r.HandleFunc("/conversations/{conversationID:[0-9]+}/messages", h.SendMessage).Methods(http.MethodPost)
	r.HandleFunc("/conversations/{conversationID:[0-9]+}/read", h.MarkRead).Methods(http.MethodPost)
}

func (h *SocialHandler) caller(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, h.log, apperr.Unauthorized("authorization required"))
	}
	return userID, ok
}

func (h *SocialHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}
	entryID, err := common.PathID(r, "entryID")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	liked, err := h.engine.ToggleLike(r.Context(), userID, entryID)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	count, err := h.engine.LikesCount(r.Context(), entryID)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, likeResponse{EntryID: entryID, Liked: liked, LikesCount: count})
}

func (h *SocialHandler) Likes(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}
	entryID, err := common.PathID(r, "entryID")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	count, err := h.engine.LikesCount(r.Context(), entryID)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	liked, err := h.engine.HasLiked(r.Context(), userID, entryID)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, likeResponse{EntryID: entryID, Liked: liked, LikesCount: count})
}

func (h *SocialHandler) SendContactRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req sendContactRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	if req.RecipientID == 0 || req.EntryID == 0 {
		common.WriteError(w, h.log, apperr.InvalidArg("recipient_id and entry_id are required"))
		return
	}

	cr, err := h.engine.SendContactRequest(r.Context(), userID, req.RecipientID, req.EntryID, req.Message)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, cr)
}

func (h *SocialHandler) PendingRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}

	pending, err := h.engine.PendingRequests(r.Context(), userID)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, pending)
}

func (h *SocialHandler) RespondToContactRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}
	requestID, err := common.PathID(r, "requestID")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	var req respondRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	if req.Accept == nil {
		common.WriteError(w, h.log, apperr.InvalidArg("accept is required"))
		return
	}

	cr, err := h.engine.RespondToContactRequest(r.Context(), requestID, userID, *req.Accept)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, cr)
}

func (h *SocialHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}

	summaries, err := h.engine.ListConversations(r.Context(), userID)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, summaries)
}

func (h *SocialHandler) Messages(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}
	conversationID, err := common.PathID(r, "conversationID")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	limit, err := common.QueryInt(r, "limit", 0)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	messages, err := h.engine.Messages(r.Context(), conversationID, userID, limit)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, messages)
}

func (h *SocialHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}
	conversationID, err := common.PathID(r, "conversationID")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	var req sendMessageRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	msg, err := h.engine.SendMessage(r.Context(), userID, conversationID, req.Text)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, msg)
}

func (h *SocialHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}
	conversationID, err := common.PathID(r, "conversationID")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	read, err := h.engine.MarkRead(r.Context(), conversationID, userID)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, markReadResponse{ConversationID: conversationID, Read: read})
}
