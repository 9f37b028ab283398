package entry

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gojournal/internal/apperr"
	"gojournal/internal/common"
)

type Handler struct {
	svc EntryService
	log *zap.Logger
}

func NewHandler(svc EntryService, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

type createEntryRequest struct {
	ReflectionText string `json:"reflection_text"`
	IsShared       bool   `json:"is_shared"`
}

type updateEntryRequest struct {
	ReflectionText *string `json:"reflection_text"`
	IsShared       *bool   `json:"is_shared"`
}

// Register mounts entry routes on an authenticated router.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/entries", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/entries/shared", h.SharedFeed).Methods(http.MethodGet)
	r.HandleFunc("/entries/{entryID:[0-9]+}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/entries/{entryID:[0-9]+}", h.Update).Methods(http.MethodPatch)
	r.HandleFunc("/me/entries", h.History).Methods(http.MethodGet)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, h.log, apperr.Unauthorized("authorization required"))
		return
	}

	var req createEntryRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	entry, err := h.svc.CreateEntry(r.Context(), userID, req.ReflectionText, req.IsShared)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, entry)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, h.log, apperr.Unauthorized("authorization required"))
		return
	}
	entryID, err := common.PathID(r, "entryID")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	var req updateEntryRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	entry, err := h.svc.UpdateEntry(r.Context(), entryID, userID, req.ReflectionText, req.IsShared)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, entry)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := common.UserIDFromContext(r.Context())
	entryID, err := common.PathID(r, "entryID")
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	view, err := h.svc.GetEntry(r.Context(), entryID, userID)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) SharedFeed(w http.ResponseWriter, r *http.Request) {
	limit, err := common.QueryInt(r, "limit", 0)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	offset, err := common.QueryInt(r, "offset", 0)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	views, err := h.svc.SharedFeed(r.Context(), limit, offset)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, views)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, h.log, apperr.Unauthorized("authorization required"))
		return
	}
	limit, err := common.QueryInt(r, "limit", 0)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	views, err := h.svc.History(r.Context(), userID, limit)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, views)
}
