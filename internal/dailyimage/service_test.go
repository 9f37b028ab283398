package dailyimage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gojournal/internal/apperr"
	"gojournal/internal/dbmongo"
	"gojournal/internal/dbmysql"
	"gojournal/internal/testutil"
)

type fakeFetcher struct {
	featured  *FeaturedImage
	err       error
	fetches   int
	downloads int
}

func (f *fakeFetcher) FetchFeatured(ctx context.Context, day time.Time) (*FeaturedImage, error) {
	f.fetches++
	return f.featured, f.err
}

func (f *fakeFetcher) Download(ctx context.Context, url string) (io.ReadCloser, string, error) {
	f.downloads++
	return io.NopCloser(strings.NewReader("jpeg-bytes")), "image/jpeg", nil
}

type memoryBlobs struct {
	files map[string]string
	info  map[string]*dbmongo.ImageFile
	fail  bool
}

func newMemoryBlobs() *memoryBlobs {
	return &memoryBlobs{files: map[string]string{}, info: map[string]*dbmongo.ImageFile{}}
}

func (m *memoryBlobs) UploadFile(ctx context.Context, filename, mimeType, imageDate string, content io.Reader) (*dbmongo.ImageFile, error) {
	if m.fail {
		return nil, errors.New("gridfs down")
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return nil, err
	}
	id := "65f000000000000000000001"
	m.files[id] = string(data)
	m.info[id] = &dbmongo.ImageFile{ID: id, Filename: filename, MimeType: mimeType, ImageDate: imageDate, Size: int64(len(data))}
	return m.info[id], nil
}

func (m *memoryBlobs) DownloadFile(ctx context.Context, fileID string) (io.ReadCloser, *dbmongo.ImageFile, error) {
	data, ok := m.files[fileID]
	if !ok {
		return nil, nil, errors.New("download failed: file not found")
	}
	return io.NopCloser(strings.NewReader(data)), m.info[fileID], nil
}

var today = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, fetcher *fakeFetcher, blobs BlobStore) (*Service, ImageRepository) {
	t.Helper()
	repo := NewImageRepository(testutil.NewDB(t))
	svc := NewService(repo, fetcher, blobs, zap.NewNop())
	svc.now = func() time.Time { return today }
	return svc, repo
}

func aurora() *FeaturedImage {
	return &FeaturedImage{
		Title:    "File:Aurora.jpg",
		ImageURL: "https://upload.wikimedia.org/aurora.jpg",
		PageURL:  "https://commons.wikimedia.org/wiki/File:Aurora.jpg",
	}
}

func TestImageForDay_FetchesOnce(t *testing.T) {
	fetcher := &fakeFetcher{featured: aurora()}
	svc, _ := newTestService(t, fetcher, nil)
	ctx := context.Background()

	first, err := svc.ImageForDay(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", first.ImageDate)
	assert.Equal(t, "File:Aurora.jpg", first.Title)

	second, err := svc.ImageForDay(ctx, today.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, fetcher.fetches)
	assert.Equal(t, 0, fetcher.downloads)
}

func TestImageForDay_Failures(t *testing.T) {
	t.Run("feed down", func(t *testing.T) {
		svc, _ := newTestService(t, &fakeFetcher{err: errors.New("timeout")}, nil)
		_, err := svc.ImageForDay(context.Background(), today)
		assert.True(t, apperr.Is(err, apperr.CodeUnavailable))
	})

	t.Run("no image", func(t *testing.T) {
		svc, _ := newTestService(t, &fakeFetcher{}, nil)
		_, err := svc.ImageForDay(context.Background(), today)
		assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	})

	t.Run("future date", func(t *testing.T) {
		fetcher := &fakeFetcher{featured: aurora()}
		svc, _ := newTestService(t, fetcher, nil)
		_, err := svc.ImageForDay(context.Background(), today.AddDate(0, 0, 1))
		assert.True(t, apperr.Is(err, apperr.CodeInvalidArgument))
		assert.Equal(t, 0, fetcher.fetches)
	})
}

func TestImageForDay_Mirrors(t *testing.T) {
	blobs := newMemoryBlobs()
	fetcher := &fakeFetcher{featured: aurora()}
	svc, repo := newTestService(t, fetcher, blobs)
	ctx := context.Background()

	img, err := svc.ImageForDay(ctx, today)
	require.NoError(t, err)
	require.NotEmpty(t, img.MediaFileID)

	stored, err := repo.GetByDate(ctx, "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, img.MediaFileID, stored.MediaFileID)
	assert.Equal(t, "2024-05-01.jpg", blobs.info[img.MediaFileID].Filename)

	reader, file, err := svc.OpenMirror(ctx, stored)
	require.NoError(t, err)
	defer reader.Close()
	data, _ := io.ReadAll(reader)
	assert.Equal(t, "jpeg-bytes", string(data))
	assert.Equal(t, "image/jpeg", file.MimeType)
}

func TestImageForDay_MirrorFailureIsNotFatal(t *testing.T) {
	blobs := newMemoryBlobs()
	blobs.fail = true
	svc, _ := newTestService(t, &fakeFetcher{featured: aurora()}, blobs)

	img, err := svc.ImageForDay(context.Background(), today)
	require.NoError(t, err)
	assert.Empty(t, img.MediaFileID)
}

func TestImageRepository_CreateOrGetKeepsFirst(t *testing.T) {
	repo := NewImageRepository(testutil.NewDB(t))
	ctx := context.Background()

	first, err := repo.CreateOrGet(ctx, &dbmysql.DailyImage{ImageDate: "2024-05-01", Title: "first", ImageURL: "a"})
	require.NoError(t, err)

	second, err := repo.CreateOrGet(ctx, &dbmysql.DailyImage{ImageDate: "2024-05-01", Title: "second", ImageURL: "b"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "first", second.Title)

	missing, err := repo.GetByDate(ctx, "1999-01-01")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestHandler_Get(t *testing.T) {
	blobs := newMemoryBlobs()
	svc, _ := newTestService(t, &fakeFetcher{featured: aurora()}, blobs)
	h := NewHandler(svc, "http://localhost:8080/media/", zap.NewNop())

	r := mux.NewRouter()
	h.Register(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/daily-image", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"image_date":"2024-05-01"`)
	assert.Contains(t, rec.Body.String(), `"media_url":"http://localhost:8080/media/daily/2024-05-01"`)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/daily-image?date=05/01/2024", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/daily-image?date=2030-01-01", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
