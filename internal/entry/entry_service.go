package entry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gojournal/internal/apperr"
	"gojournal/internal/common"
	"gojournal/internal/dbmysql"
)

const (
	maxReflectionLength = 2000
	defaultPageSize     = 20
	maxPageSize         = 100
)

var errEntryNotFound = apperr.NotFound("entry not found")

// ImageProvider resolves the curated image for a calendar day.
type ImageProvider interface {
	ImageForDay(ctx context.Context, day time.Time) (*dbmysql.DailyImage, error)
}

type EntryService interface {
	CreateEntry(ctx context.Context, authorID uint64, text string, shared bool) (*dbmysql.Entry, error)
	UpdateEntry(ctx context.Context, entryID, userID uint64, text *string, shared *bool) (*dbmysql.Entry, error)
	GetEntry(ctx context.Context, entryID, viewerID uint64) (*EntryView, error)
	SharedFeed(ctx context.Context, limit, offset int) ([]EntryView, error)
	History(ctx context.Context, userID uint64, limit int) ([]EntryView, error)
}

type entryService struct {
	repo   EntryRepository
	images ImageProvider
	now    func() time.Time
}

func NewEntryService(repo EntryRepository, images ImageProvider) EntryService {
	return &entryService{
		repo:   repo,
		images: images,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateEntry records today's reflection. A user writes at most one per day.
func (s *entryService) CreateEntry(ctx context.Context, authorID uint64, text string, shared bool) (*dbmysql.Entry, error) {
	text, err := common.NormalizeText("reflection", text, maxReflectionLength, false)
	if err != nil {
		return nil, err
	}

	now := s.now()
	day := dbmysql.DayKey(now)

	existing, err := s.repo.GetEntryByAuthorAndDate(ctx, authorID, day)
	if err != nil {
		return nil, fmt.Errorf("check existing entry: %w", err)
	}
	if existing != nil {
		return nil, apperr.AlreadyExists("an entry for today already exists")
	}

	img, err := s.images.ImageForDay(ctx, now)
	if err != nil {
		return nil, err
	}

	entry := &dbmysql.Entry{
		AuthorID:       authorID,
		DailyImageID:   img.ID,
		EntryDate:      day,
		ReflectionText: text,
		IsShared:       shared,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	return entry, nil
}

// UpdateEntry changes text and/or visibility. Only the author may update,
// anyone else is told the entry does not exist.
func (s *entryService) UpdateEntry(ctx context.Context, entryID, userID uint64, text *string, shared *bool) (*dbmysql.Entry, error) {
	entry, err := s.repo.GetEntryByID(ctx, entryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	if entry.AuthorID != userID {
		return nil, errEntryNotFound
	}

	if text != nil {
		normalized, err := common.NormalizeText("reflection", *text, maxReflectionLength, false)
		if err != nil {
			return nil, err
		}
		entry.ReflectionText = normalized
	}
	if shared != nil {
		entry.IsShared = *shared
	}
	entry.UpdatedAt = s.now()

	if err := s.repo.UpdateEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}
	return entry, nil
}

func (s *entryService) GetEntry(ctx context.Context, entryID, viewerID uint64) (*EntryView, error) {
	view, err := s.repo.GetView(ctx, entryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	if !view.IsShared && view.AuthorID != viewerID {
		return nil, errEntryNotFound
	}
	return view, nil
}

func (s *entryService) SharedFeed(ctx context.Context, limit, offset int) ([]EntryView, error) {
	views, err := s.repo.ListShared(ctx, clampPage(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("list shared entries: %w", err)
	}
	return nonNil(views), nil
}

func (s *entryService) History(ctx context.Context, userID uint64, limit int) ([]EntryView, error) {
	views, err := s.repo.ListByAuthor(ctx, userID, clampPage(limit))
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return nonNil(views), nil
}

func clampPage(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}

func nonNil(views []EntryView) []EntryView {
	if views == nil {
		return []EntryView{}
	}
	return views
}
