package identity

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gojournal/internal/apperr"
	"gojournal/internal/common"
	"gojournal/internal/dbmysql"
)

type Handler struct {
	svc UserService
	log *zap.Logger
}

func NewHandler(svc UserService, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

type registerRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	User  *dbmysql.User `json:"user"`
	Token string        `json:"token"`
}

// RegisterPublic mounts the unauthenticated routes.
func (h *Handler) RegisterPublic(r *mux.Router) {
	r.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
}

func (h *Handler) RegisterProtected(r *mux.Router) {
	r.HandleFunc("/me", h.Me).Methods(http.MethodGet)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	user, token, err := h.svc.RegisterUser(r.Context(), req.Username, req.Email, req.Password, req.DisplayName)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	h.log.Info("user registered", zap.Uint64("user_id", user.ID))
	common.WriteJSON(w, http.StatusCreated, authResponse{User: user, Token: token})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	user, token, err := h.svc.LoginUser(r.Context(), req.Username, req.Password)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, authResponse{User: user, Token: token})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, h.log, apperr.Unauthorized("authorization required"))
		return
	}

	user, err := h.svc.GetProfile(r.Context(), userID)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user)
}
