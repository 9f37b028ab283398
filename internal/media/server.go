package media

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gojournal/internal/apperr"
	"gojournal/internal/common"
	"gojournal/internal/dailyimage"
)

// HTTPServer serves daily image bytes: the GridFS mirror when one exists,
// otherwise a redirect to the source URL.
type HTTPServer struct {
	images *dailyimage.Service
	log    *zap.Logger
}

func NewHTTPServer(images *dailyimage.Service, log *zap.Logger) *HTTPServer {
	return &HTTPServer{images: images, log: log}
}

func (s *HTTPServer) Register(r *mux.Router) {
	r.HandleFunc("/media/daily/{date}", s.serveDaily).Methods(http.MethodGet, http.MethodHead)
}

func (s *HTTPServer) serveDaily(w http.ResponseWriter, r *http.Request) {
	day := mux.Vars(r)["date"]

	img, err := s.images.ImageByDate(r.Context(), day)
	if err != nil {
		common.WriteError(w, s.log, err)
		return
	}

	reader, file, err := s.images.OpenMirror(r.Context(), img)
	if err != nil {
		var appErr *apperr.AppError
		if !errors.As(err, &appErr) {
			s.log.Warn("mirror read failed, redirecting", zap.String("date", day), zap.Error(err))
		}
		http.Redirect(w, r, img.ImageURL, http.StatusFound)
		return
	}
	defer reader.Close()

	contentType := file.MimeType
	if contentType == "" {
		contentType = s.getContentType(file.Filename)
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", file.Size))
	w.Header().Set("Cache-Control", "public, max-age=86400")

	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, reader); err != nil {
		s.log.Warn("error streaming image", zap.String("date", day), zap.Error(err))
	}
}

func (s *HTTPServer) getContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".svg":
		return "image/svg+xml"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
