// Package catalog — repository.go читает и пишет списки в хранилище.
package catalog

import (
	"context"

	"movik.bot/telegram-bot/internal/storage"
)

// Repository работает с документами movies и series.
type Repository struct {
	store *storage.Persister
}

// NewRepository создаёт репозиторий.
func NewRepository(store *storage.Persister) *Repository {
	return &Repository{store: store}
}

// Load возвращает сохранённый список или def при первом запуске.
func (r *Repository) Load(ctx context.Context, cat Category, def []string) []string {
	if def == nil {
		def = []string{}
	}
	items := storage.Load(ctx, r.store, string(cat), def)
	if items == nil {
		items = []string{}
	}
	return items
}

// Save сохраняет список целиком.
func (r *Repository) Save(ctx context.Context, cat Category, items []string) {
	r.store.Save(ctx, string(cat), items)
}
