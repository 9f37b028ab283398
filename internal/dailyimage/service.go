package dailyimage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"gojournal/internal/apperr"
	"gojournal/internal/dbmongo"
	"gojournal/internal/dbmysql"
)

type Fetcher interface {
	FetchFeatured(ctx context.Context, day time.Time) (*FeaturedImage, error)
	Download(ctx context.Context, url string) (io.ReadCloser, string, error)
}

// BlobStore holds mirrored image bytes.
type BlobStore interface {
	UploadFile(ctx context.Context, filename, mimeType, imageDate string, content io.Reader) (*dbmongo.ImageFile, error)
	DownloadFile(ctx context.Context, fileID string) (io.ReadCloser, *dbmongo.ImageFile, error)
}

type Service struct {
	repo    ImageRepository
	fetcher Fetcher
	blobs   BlobStore
	log     *zap.Logger
	now     func() time.Time
}

// NewService wires the image cache. blobs may be nil, which disables mirroring.
func NewService(repo ImageRepository, fetcher Fetcher, blobs BlobStore, log *zap.Logger) *Service {
	return &Service{
		repo:    repo,
		fetcher: fetcher,
		blobs:   blobs,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// ImageForDay returns the cached image for day, fetching it from the feed
// and storing it on first use.
func (s *Service) ImageForDay(ctx context.Context, day time.Time) (*dbmysql.DailyImage, error) {
	key := dbmysql.DayKey(day)
	if key > dbmysql.DayKey(s.now()) {
		return nil, apperr.InvalidArg("date cannot be in the future")
	}

	cached, err := s.repo.GetByDate(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read image cache: %w", err)
	}
	if cached != nil {
		return cached, nil
	}

	featured, err := s.fetcher.FetchFeatured(ctx, day)
	if err != nil {
		s.log.Warn("featured image fetch failed", zap.String("date", key), zap.Error(err))
		return nil, apperr.Unavailable("daily image unavailable", err)
	}
	if featured == nil {
		return nil, apperr.NotFound("no featured image for " + key)
	}

	img, err := s.repo.CreateOrGet(ctx, &dbmysql.DailyImage{
		ImageDate:   key,
		Title:       featured.Title,
		Description: featured.Description,
		ImageURL:    featured.ImageURL,
		PageURL:     featured.PageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("store daily image: %w", err)
	}

	s.log.Info("daily image cached", zap.String("date", key), zap.Uint64("image_id", img.ID))

	if s.blobs != nil && img.MediaFileID == "" {
		s.mirror(ctx, img)
	}
	return img, nil
}

// ImageByDate reads the cache only.
func (s *Service) ImageByDate(ctx context.Context, day string) (*dbmysql.DailyImage, error) {
	img, err := s.repo.GetByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("read image cache: %w", err)
	}
	if img == nil {
		return nil, apperr.NotFound("no image for " + day)
	}
	return img, nil
}

// OpenMirror streams the mirrored bytes of img.
func (s *Service) OpenMirror(ctx context.Context, img *dbmysql.DailyImage) (io.ReadCloser, *dbmongo.ImageFile, error) {
	if s.blobs == nil || img.MediaFileID == "" {
		return nil, nil, apperr.NotFound("image not mirrored")
	}
	return s.blobs.DownloadFile(ctx, img.MediaFileID)
}

// mirror copies the image bytes into the blob store. Failures only cost us
// the local copy, so they are logged and swallowed.
func (s *Service) mirror(ctx context.Context, img *dbmysql.DailyImage) {
	body, contentType, err := s.fetcher.Download(ctx, img.ImageURL)
	if err != nil {
		s.log.Warn("image download failed", zap.String("date", img.ImageDate), zap.Error(err))
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	filename := img.ImageDate + strings.ToLower(path.Ext(img.ImageURL))

	file, err := s.blobs.UploadFile(ctx, filename, contentType, img.ImageDate, body)
	if err != nil {
		s.log.Warn("image mirror upload failed", zap.String("date", img.ImageDate), zap.Error(err))
		return
	}
	if err := s.repo.SetMediaFileID(ctx, img.ID, file.ID); err != nil {
		s.log.Warn("image mirror link failed", zap.String("date", img.ImageDate), zap.Error(err))
		return
	}
	img.MediaFileID = file.ID
}
