package dailyimage

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gojournal/internal/dbmysql"
)

type ImageRepository interface {
	GetByDate(ctx context.Context, day string) (*dbmysql.DailyImage, error)
	CreateOrGet(ctx context.Context, img *dbmysql.DailyImage) (*dbmysql.DailyImage, error)
	SetMediaFileID(ctx context.Context, id uint64, fileID string) error
}

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

// GetByDate returns nil when the day has not been cached yet.
func (r *imageRepository) GetByDate(ctx context.Context, day string) (*dbmysql.DailyImage, error) {
	var img dbmysql.DailyImage
	err := r.db.WithContext(ctx).
		Where("image_date = ?", day).
		Limit(1).
		Find(&img).Error
	if err != nil {
		return nil, err
	}
	if img.ID == 0 {
		return nil, nil
	}
	return &img, nil
}

// CreateOrGet stores img unless another request cached the same day first,
// in which case the stored row wins.
func (r *imageRepository) CreateOrGet(ctx context.Context, img *dbmysql.DailyImage) (*dbmysql.DailyImage, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(img)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected > 0 && img.ID != 0 {
		return img, nil
	}

	existing, err := r.GetByDate(ctx, img.ImageDate)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return existing, nil
}

func (r *imageRepository) SetMediaFileID(ctx context.Context, id uint64, fileID string) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.DailyImage{}).
		Where("id = ?", id).
		Update("media_file_id", fileID).Error
}
