// Package catalog — service.go содержит операции над списками.
// Все изменения делаются под мьютексом и сразу сохраняются.
package catalog

import (
	"context"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"movik.bot/telegram-bot/internal/common"
)

// Service хранит каталог в памяти.
type Service struct {
	repo *Repository

	mu    sync.RWMutex
	items map[Category][]string
}

// NewService создаёт сервис каталога.
func NewService(repo *Repository) *Service {
	return &Service{
		repo:  repo,
		items: map[Category][]string{Movies: {}, Series: {}},
	}
}

// Load подтягивает списки из хранилища; defaults используются при первом запуске.
func (s *Service) Load(ctx context.Context, defaults map[Category][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cat := range Categories {
		def := append([]string{}, defaults[cat]...)
		s.items[cat] = s.repo.Load(ctx, cat, def)
		log.WithFields(log.Fields{
			"category": cat,
			"count":    len(s.items[cat]),
		}).Info("Каталог загружен")
	}
}

// List возвращает копию списка.
func (s *Service) List(cat Category) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.items[cat]...)
}

// Len возвращает длину списка.
func (s *Service) Len(cat Category) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items[cat])
}

// ItemAt возвращает название по индексу (с нуля) и текущую длину списка.
func (s *Service) ItemAt(cat Category, idx int) (string, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.items[cat]
	if idx < 0 || idx >= len(items) {
		return "", len(items), common.ErrItemNotFound
	}
	return items[idx], len(items), nil
}

// Append добавляет название в конец списка. Дубликаты разрешены.
func (s *Service) Append(ctx context.Context, cat Category, title string) (string, error) {
	if !cat.valid() {
		return "", common.ErrUnknownCatalog
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return "", common.ErrEmptyInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[cat] = append(s.items[cat], title)
	s.repo.Save(ctx, cat, s.items[cat])
	return title, nil
}

// DeleteAt удаляет элемент по индексу (с нуля) и возвращает его название.
// Следующие элементы сдвигаются на одну позицию.
func (s *Service) DeleteAt(ctx context.Context, cat Category, idx int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.items[cat]
	if idx < 0 || idx >= len(items) {
		return "", common.ErrItemNotFound
	}

	removed := items[idx]
	next := make([]string, 0, len(items)-1)
	next = append(next, items[:idx]...)
	next = append(next, items[idx+1:]...)
	s.items[cat] = next
	s.repo.Save(ctx, cat, next)
	return removed, nil
}

// Move переносит элемент from на позицию to (оба с нуля).
// Сначала элемент удаляется, затем вставляется: to считается по списку после удаления.
func (s *Service) Move(ctx context.Context, cat Category, from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.items[cat]
	if from < 0 || from >= len(items) {
		return common.ErrItemNotFound
	}
	if to < 0 || to >= len(items) {
		return common.ErrPositionOutOfRange
	}

	s.items[cat] = move(items, from, to)
	s.repo.Save(ctx, cat, s.items[cat])
	return nil
}

// MoveItem — перенос из диалога с админом: position с единицы,
// name — название, которое админ видел при выборе элемента.
// Если на индексе from уже другое название, возвращает ErrStaleItem.
// Возвращает длину списка (для текста ошибки о диапазоне).
func (s *Service) MoveItem(ctx context.Context, cat Category, from int, name string, position int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.items[cat]
	if from < 0 || from >= len(items) || items[from] != name {
		return len(items), common.ErrStaleItem
	}
	if position < 1 || position > len(items) {
		return len(items), common.ErrPositionOutOfRange
	}

	s.items[cat] = move(items, from, position-1)
	s.repo.Save(ctx, cat, s.items[cat])
	return len(items), nil
}

func move(items []string, from, to int) []string {
	item := items[from]
	next := make([]string, 0, len(items))
	next = append(next, items[:from]...)
	next = append(next, items[from+1:]...)

	next = append(next, "")
	copy(next[to+1:], next[to:])
	next[to] = item
	return next
}
