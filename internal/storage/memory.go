package storage

import (
	"context"
	"sync"

	"movik.bot/telegram-bot/internal/common"
)

// MemoryStore — хранилище в памяти процесса (для локального запуска и тестов).
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Save(_ context.Context, dataType string, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[dataType] = append([]byte(nil), content...)
	return nil
}

func (s *MemoryStore) Load(_ context.Context, dataType string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.data[dataType]
	if !ok {
		return nil, common.ErrNotFound
	}
	return append([]byte(nil), b...), nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }
