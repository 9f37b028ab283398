package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gojournal/internal/dbmysql"
)

type ContactRequestRepository interface {
	GetByID(ctx context.Context, id uint64) (*dbmysql.ContactRequest, error)
	FindByTriple(ctx context.Context, senderID, recipientID, entryID uint64) (*dbmysql.ContactRequest, error)
	CreateOrGet(ctx context.Context, req *dbmysql.ContactRequest) (*dbmysql.ContactRequest, bool, error)
	Resolve(ctx context.Context, id uint64, status dbmysql.RequestStatus, at time.Time) (bool, error)
	ListPending(ctx context.Context, recipientID uint64) ([]*dbmysql.ContactRequest, error)
}

type contactRequestRepository struct {
	db *gorm.DB
}

func NewContactRequestRepository(db *gorm.DB) ContactRequestRepository {
	return &contactRequestRepository{db: db}
}

// GetByID returns nil when the request does not exist.
func (r *contactRequestRepository) GetByID(ctx context.Context, id uint64) (*dbmysql.ContactRequest, error) {
	var req dbmysql.ContactRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&req).Error; err != nil {
		return nil, err
	}
	if req.ID == 0 {
		return nil, nil
	}
	return &req, nil
}

func (r *contactRequestRepository) FindByTriple(ctx context.Context, senderID, recipientID, entryID uint64) (*dbmysql.ContactRequest, error) {
	return r.findByTriple(r.db.WithContext(ctx), senderID, recipientID, entryID)
}

func (r *contactRequestRepository) findByTriple(db *gorm.DB, senderID, recipientID, entryID uint64) (*dbmysql.ContactRequest, error) {
	var req dbmysql.ContactRequest
	err := db.
		Where("sender_id = ? AND recipient_id = ? AND daily_entry_id = ?", senderID, recipientID, entryID).
		Limit(1).
		Find(&req).Error
	if err != nil {
		return nil, err
	}
	if req.ID == 0 {
		return nil, nil
	}
	return &req, nil
}

// CreateOrGet inserts req unless its (sender, recipient, entry) triple
// already exists, in which case the stored row is returned. The bool
// reports whether req was inserted.
func (r *contactRequestRepository) CreateOrGet(ctx context.Context, req *dbmysql.ContactRequest) (*dbmysql.ContactRequest, bool, error) {
	db := r.db.WithContext(ctx)

	existing, err := r.findByTriple(db, req.SenderID, req.RecipientID, req.EntryID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(req)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected > 0 && req.ID != 0 {
		return req, true, nil
	}

	// lost the insert race, the winner's row is authoritative
	existing, err = r.findByTriple(db.Clauses(lockShared), req.SenderID, req.RecipientID, req.EntryID)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, gorm.ErrRecordNotFound
	}
	return existing, false, nil
}

// Resolve moves a pending request to status. It reports false when the
// request was no longer pending, leaving the row untouched.
func (r *contactRequestRepository) Resolve(ctx context.Context, id uint64, status dbmysql.RequestStatus, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&dbmysql.ContactRequest{}).
		Where("id = ? AND status = ?", id, dbmysql.RequestPending).
		Updates(map[string]interface{}{
			"status":       status,
			"responded_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *contactRequestRepository) ListPending(ctx context.Context, recipientID uint64) ([]*dbmysql.ContactRequest, error) {
	var reqs []*dbmysql.ContactRequest
	err := r.db.WithContext(ctx).
		Where("recipient_id = ? AND status = ?", recipientID, dbmysql.RequestPending).
		Order("created_at DESC, id DESC").
		Find(&reqs).Error
	return reqs, err
}
