package entry

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gojournal/internal/dbmysql"
)

// Lookup exposes entries to the social engine.
type Lookup struct {
	repo EntryRepository
}

func NewLookup(repo EntryRepository) *Lookup {
	return &Lookup{repo: repo}
}

func (l *Lookup) EntryByID(ctx context.Context, id uint64) (*dbmysql.Entry, error) {
	entry, err := l.repo.GetEntryByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}
