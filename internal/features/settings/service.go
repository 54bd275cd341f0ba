// Package settings — service.go хранит настройки в памяти под мьютексом.
package settings

import (
	"context"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"movik.bot/telegram-bot/internal/common"
)

// Service — переключатели команд, код приглашения, выключатель сайта.
type Service struct {
	repo *Repository

	mu      sync.RWMutex
	toggles map[string]bool
	invite  string
	siteOn  bool
}

// NewService создаёт сервис со значениями по умолчанию: всё включено.
func NewService(repo *Repository, defaultInvite string) *Service {
	return &Service{
		repo:    repo,
		toggles: defaultToggles(),
		invite:  defaultInvite,
		siteOn:  true,
	}
}

func defaultToggles() map[string]bool {
	m := make(map[string]bool, len(CommandNames))
	for _, name := range CommandNames {
		m[name] = true
	}
	return m
}

// Load подтягивает настройки из хранилища.
// Неизвестные ключи в сохранённых переключателях отбрасываются, недостающие включаются.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.repo.LoadToggles(ctx, s.toggles)
	toggles := defaultToggles()
	for name := range toggles {
		if v, ok := stored[name]; ok {
			toggles[name] = v
		}
	}
	s.toggles = toggles
	s.invite = s.repo.LoadInvite(ctx, s.invite)
	s.siteOn = s.repo.LoadSite(ctx, s.siteOn)

	log.WithFields(log.Fields{
		"toggles": s.toggles,
		"site_on": s.siteOn,
	}).Info("Настройки загружены")
}

// Toggle переключает команду и возвращает новое состояние.
func (s *Service) Toggle(ctx context.Context, name string) (bool, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.toggles[name]
	if !ok {
		return false, common.ErrUnknownCommand
	}
	s.toggles[name] = !cur
	s.repo.SaveToggles(ctx, s.toggles)
	return !cur, nil
}

// Enabled сообщает, включена ли команда. Команды вне карты всегда включены.
func (s *Service) Enabled(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.toggles[name]
	return !ok || v
}

// States возвращает состояние всех команд в фиксированном порядке.
func (s *Service) States() []Toggle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Toggle, 0, len(CommandNames))
	for _, name := range CommandNames {
		out = append(out, Toggle{Name: name, Enabled: s.toggles[name]})
	}
	return out
}

// Invite возвращает текущий код приглашения.
func (s *Service) Invite() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.invite
}

// SetInvite меняет код приглашения. Пробелы по краям обрезаются.
func (s *Service) SetInvite(ctx context.Context, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", common.ErrEmptyInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.invite = code
	s.repo.SaveInvite(ctx, code)
	return code, nil
}

// SiteOn — состояние ручного выключателя сайта.
func (s *Service) SiteOn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.siteOn
}

// SetSite включает или выключает сайт для /status.
func (s *Service) SetSite(ctx context.Context, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.siteOn = on
	s.repo.SaveSite(ctx, on)
}
