// Package settings — repository.go хранит command_states, invite_code и site_status.
package settings

import (
	"context"

	"movik.bot/telegram-bot/internal/storage"
)

// Repository работает с документами настроек.
type Repository struct {
	store *storage.Persister
}

// NewRepository создаёт репозиторий.
func NewRepository(store *storage.Persister) *Repository {
	return &Repository{store: store}
}

func (r *Repository) LoadToggles(ctx context.Context, def map[string]bool) map[string]bool {
	return storage.Load(ctx, r.store, storage.TypeCommandStates, def)
}

func (r *Repository) SaveToggles(ctx context.Context, toggles map[string]bool) {
	r.store.Save(ctx, storage.TypeCommandStates, toggles)
}

func (r *Repository) LoadInvite(ctx context.Context, def string) string {
	return storage.Load(ctx, r.store, storage.TypeInviteCode, def)
}

func (r *Repository) SaveInvite(ctx context.Context, code string) {
	r.store.Save(ctx, storage.TypeInviteCode, code)
}

func (r *Repository) LoadSite(ctx context.Context, def bool) bool {
	return storage.Load(ctx, r.store, storage.TypeSiteStatus, def)
}

func (r *Repository) SaveSite(ctx context.Context, on bool) {
	r.store.Save(ctx, storage.TypeSiteStatus, on)
}
