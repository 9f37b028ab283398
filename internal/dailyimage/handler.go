package dailyimage

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gojournal/internal/apperr"
	"gojournal/internal/common"
	"gojournal/internal/dbmysql"
)

type Handler struct {
	svc          *Service
	mediaBaseURL string
	log          *zap.Logger
}

func NewHandler(svc *Service, mediaBaseURL string, log *zap.Logger) *Handler {
	return &Handler{svc: svc, mediaBaseURL: strings.TrimRight(mediaBaseURL, "/"), log: log}
}

type imageResponse struct {
	*dbmysql.DailyImage
	MediaURL string `json:"media_url,omitempty"`
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/daily-image", h.Get).Methods(http.MethodGet)
}

// Get serves ?date=YYYY-MM-DD, defaulting to today (UTC).
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	day := h.svc.now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := dbmysql.ParseDay(raw)
		if err != nil {
			common.WriteError(w, h.log, apperr.InvalidArg("date must be YYYY-MM-DD"))
			return
		}
		day = parsed
	}

	img, err := h.svc.ImageForDay(r.Context(), day)
	if err != nil {
		common.WriteError(w, h.log, err)
		return
	}

	resp := imageResponse{DailyImage: img}
	if img.MediaFileID != "" {
		resp.MediaURL = h.mediaBaseURL + "/daily/" + img.ImageDate
	}
	common.WriteJSON(w, http.StatusOK, resp)
}
