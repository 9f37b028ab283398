package entry

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gojournal/internal/dbmysql"
)

// EntryView is an entry joined with its author, image and like count.
type EntryView struct {
	ID                uint64    `json:"id"`
	AuthorID          uint64    `json:"author_id"`
	AuthorDisplayName string    `json:"author_display_name"`
	EntryDate         string    `json:"entry_date"`
	ReflectionText    string    `json:"reflection_text"`
	IsShared          bool      `json:"is_shared"`
	ImageTitle        string    `json:"image_title"`
	ImageURL          string    `json:"image_url"`
	LikesCount        int64     `json:"likes_count"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type EntryRepository interface {
	CreateEntry(ctx context.Context, entry *dbmysql.Entry) error
	GetEntryByID(ctx context.Context, id uint64) (*dbmysql.Entry, error)
	GetEntryByAuthorAndDate(ctx context.Context, authorID uint64, day string) (*dbmysql.Entry, error)
	UpdateEntry(ctx context.Context, entry *dbmysql.Entry) error
	GetView(ctx context.Context, id uint64) (*EntryView, error)
	ListShared(ctx context.Context, limit, offset int) ([]EntryView, error)
	ListByAuthor(ctx context.Context, authorID uint64, limit int) ([]EntryView, error)
}

type entryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) CreateEntry(ctx context.Context, entry *dbmysql.Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *entryRepository) GetEntryByID(ctx context.Context, id uint64) (*dbmysql.Entry, error) {
	var entry dbmysql.Entry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetEntryByAuthorAndDate returns nil when the author has no entry that day.
func (r *entryRepository) GetEntryByAuthorAndDate(ctx context.Context, authorID uint64, day string) (*dbmysql.Entry, error) {
	var entry dbmysql.Entry
	err := r.db.WithContext(ctx).
		Where("author_id = ? AND entry_date = ?", authorID, day).
		Limit(1).
		Find(&entry).Error
	if err != nil {
		return nil, err
	}
	if entry.ID == 0 {
		return nil, nil
	}
	return &entry, nil
}

func (r *entryRepository) UpdateEntry(ctx context.Context, entry *dbmysql.Entry) error {
	return r.db.WithContext(ctx).
		Model(entry).
		Select("reflection_text", "is_shared", "updated_at").
		Updates(entry).Error
}

func (r *entryRepository) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("daily_entries AS e").
		Select(`e.id, e.author_id, u.display_name AS author_display_name, e.entry_date,
			e.reflection_text, e.is_shared, i.title AS image_title, i.image_url AS image_url,
			e.created_at, e.updated_at,
			(SELECT COUNT(*) FROM reflection_likes l WHERE l.daily_entry_id = e.id) AS likes_count`).
		Joins("JOIN users u ON u.id = e.author_id").
		Joins("JOIN daily_images i ON i.id = e.daily_image_id")
}

func (r *entryRepository) GetView(ctx context.Context, id uint64) (*EntryView, error) {
	var views []EntryView
	if err := r.views(ctx).Where("e.id = ?", id).Limit(1).Scan(&views).Error; err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &views[0], nil
}

func (r *entryRepository) ListShared(ctx context.Context, limit, offset int) ([]EntryView, error) {
	var views []EntryView
	err := r.views(ctx).
		Where("e.is_shared = ?", true).
		Order("e.created_at DESC, e.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&views).Error
	return views, err
}

func (r *entryRepository) ListByAuthor(ctx context.Context, authorID uint64, limit int) ([]EntryView, error) {
	var views []EntryView
	err := r.views(ctx).
		Where("e.author_id = ?", authorID).
		Order("e.entry_date DESC").
		Limit(limit).
		Scan(&views).Error
	return views, err
}
