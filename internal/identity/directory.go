package identity

import (
	"context"
	"fmt"
)

// Directory answers display-name lookups for the social engine.
type Directory struct {
	userRepo UserRepository
}

func NewDirectory(userRepo UserRepository) *Directory {
	return &Directory{userRepo: userRepo}
}

func (d *Directory) DisplayNames(ctx context.Context, ids []uint64) (map[uint64]string, error) {
	names := make(map[uint64]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	users, err := d.userRepo.GetUsersByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, fmt.Errorf("lookup users: %w", err)
	}
	for _, u := range users {
		names[u.ID] = u.DisplayName
	}
	return names, nil
}

func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
