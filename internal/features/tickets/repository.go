package tickets

import (
	"context"

	"movik.bot/telegram-bot/internal/storage"
)

// Repository хранит весь список обращений одним документом.
type Repository struct {
	store *storage.Persister
}

func NewRepository(store *storage.Persister) *Repository {
	return &Repository{store: store}
}

func (r *Repository) Load(ctx context.Context) []Ticket {
	list := storage.Load(ctx, r.store, storage.TypeTickets, []Ticket{})
	if list == nil {
		return []Ticket{}
	}
	return list
}

func (r *Repository) Save(ctx context.Context, list []Ticket) {
	r.store.Save(ctx, storage.TypeTickets, list)
}
