// Package moderation — repository.go хранит множества id отсортированными списками.
package moderation

import (
	"context"
	"sort"

	"movik.bot/telegram-bot/internal/storage"
)

// Repository работает с документами banned_users, blocked_users, flagged_users.
type Repository struct {
	store *storage.Persister
}

// NewRepository создаёт репозиторий.
func NewRepository(store *storage.Persister) *Repository {
	return &Repository{store: store}
}

// LoadSet читает множество id.
func (r *Repository) LoadSet(ctx context.Context, dataType string) map[int64]struct{} {
	ids := storage.Load(ctx, r.store, dataType, []int64{})
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// SaveSet сохраняет множество как отсортированный список.
func (r *Repository) SaveSet(ctx context.Context, dataType string, set map[int64]struct{}) {
	r.store.Save(ctx, dataType, sortedIDs(set))
}

func sortedIDs(set map[int64]struct{}) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
