// Package filters — проверка доступа к боту до маршрутизации.
package filters

import (
	log "github.com/sirupsen/logrus"

	"movik.bot/telegram-bot/internal/bot/reply"
	"movik.bot/telegram-bot/internal/features/moderation"
)

// Registry — то, что фильтру нужно знать о пользователе.
type Registry interface {
	IsAdmin(userID int64) bool
	IsBanned(userID int64) bool
	IsBlocked(userID int64) bool
}

// AccessFilter пропускает или отсекает пользователей по реестру модерации.
// Админы проходят всегда.
type AccessFilter struct {
	registry Registry
	bot      reply.Sender
}

func NewAccessFilter(registry Registry, bot reply.Sender) *AccessFilter {
	return &AccessFilter{registry: registry, bot: bot}
}

// Allow — забаненный пользователь молча игнорируется везде.
func (f *AccessFilter) Allow(userID int64) bool {
	if f.registry == nil {
		log.WithField("component", "AccessFilter").Error("registry is nil")
		return false
	}
	if f.registry.IsAdmin(userID) {
		return true
	}
	if f.registry.IsBanned(userID) {
		log.WithFields(log.Fields{
			"component": "AccessFilter",
			"user_id":   userID,
		}).Debug("deny: banned")
		return false
	}
	return true
}

// AllowGated — для пользовательских команд: заблокированный получает предупреждение.
func (f *AccessFilter) AllowGated(chatID, userID int64) bool {
	if !f.Allow(userID) {
		return false
	}
	if f.registry.IsAdmin(userID) || !f.registry.IsBlocked(userID) {
		return true
	}

	log.WithFields(log.Fields{
		"component": "AccessFilter",
		"chat_id":   chatID,
		"user_id":   userID,
	}).Info("deny: blocked")
	reply.Text(f.bot, chatID, moderation.BlockedNoticeText)
	return false
}
