// Package moderation — service.go содержит бизнес-логику реестра.
package moderation

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"movik.bot/telegram-bot/internal/common"
	"movik.bot/telegram-bot/internal/storage"
)

// Service — реестр модерации и список админов.
type Service struct {
	repo   *Repository
	admins map[int64]struct{}

	mu      sync.RWMutex
	banned  map[int64]struct{}
	blocked map[int64]struct{}
	flagged map[int64]struct{}
}

// NewService создаёт реестр. Список админов фиксирован на всё время работы.
func NewService(repo *Repository, adminIDs []int64) *Service {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}
	return &Service{
		repo:    repo,
		admins:  admins,
		banned:  make(map[int64]struct{}),
		blocked: make(map[int64]struct{}),
		flagged: make(map[int64]struct{}),
	}
}

// Load подтягивает множества из хранилища.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.banned = s.repo.LoadSet(ctx, storage.TypeBannedUsers)
	s.blocked = s.repo.LoadSet(ctx, storage.TypeBlockedUsers)
	s.flagged = s.repo.LoadSet(ctx, storage.TypeFlaggedUsers)

	log.WithFields(log.Fields{
		"banned":  len(s.banned),
		"blocked": len(s.blocked),
		"flagged": len(s.flagged),
	}).Info("Реестр модерации загружен")
}

// IsAdmin проверяет, входит ли пользователь в список админов.
func (s *Service) IsAdmin(userID int64) bool {
	_, ok := s.admins[userID]
	return ok
}

// Admins возвращает id админов по возрастанию.
func (s *Service) Admins() []int64 {
	return sortedIDs(s.admins)
}

// Ban банит пользователя и снимает с него блок и пометку.
func (s *Service) Ban(ctx context.Context, userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.banned[userID] = struct{}{}
	delete(s.blocked, userID)
	delete(s.flagged, userID)

	s.repo.SaveSet(ctx, storage.TypeBannedUsers, s.banned)
	s.repo.SaveSet(ctx, storage.TypeBlockedUsers, s.blocked)
	s.repo.SaveSet(ctx, storage.TypeFlaggedUsers, s.flagged)
}

// Block блокирует пользователя. Забаненного блокировать нельзя: ErrAlreadyBanned.
func (s *Service) Block(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.banned[userID]; ok {
		return common.ErrAlreadyBanned
	}
	s.blocked[userID] = struct{}{}
	s.repo.SaveSet(ctx, storage.TypeBlockedUsers, s.blocked)
	return nil
}

// Flag помечает пользователя. Пометка совместима с баном и блоком.
func (s *Service) Flag(ctx context.Context, userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flagged[userID] = struct{}{}
	s.repo.SaveSet(ctx, storage.TypeFlaggedUsers, s.flagged)
}

// Apply выполняет действие админа.
func (s *Service) Apply(ctx context.Context, a Action, userID int64) error {
	switch a {
	case ActionBan:
		s.Ban(ctx, userID)
	case ActionBlock:
		if err := s.Block(ctx, userID); err != nil {
			return err
		}
	case ActionFlag:
		s.Flag(ctx, userID)
	default:
		return fmt.Errorf("неизвестное действие %v", a)
	}

	log.WithFields(log.Fields{
		"action":  a.String(),
		"user_id": userID,
	}).Info("Модерация применена")
	return nil
}

func (s *Service) IsBanned(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.banned[userID]
	return ok
}

func (s *Service) IsBlocked(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.blocked[userID]
	return ok
}

func (s *Service) IsFlagged(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.flagged[userID]
	return ok
}
