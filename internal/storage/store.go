// Package storage — документное хранилище бота.
// Каждый тип данных (movies, banned_users, tickets, ...) хранится
// одним JSON-документом под своим ключом.
package storage

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"movik.bot/telegram-bot/internal/config"
)

// Типы данных, которые бот сохраняет.
const (
	TypeMovies        = "movies"
	TypeSeries        = "series"
	TypeBannedUsers   = "banned_users"
	TypeBlockedUsers  = "blocked_users"
	TypeFlaggedUsers  = "flagged_users"
	TypeInviteCode    = "invite_code"
	TypeCommandStates = "command_states"
	TypeSiteStatus    = "site_status"
	TypeTickets       = "tickets"
)

// Store — бэкенд хранилища. Load возвращает common.ErrNotFound,
// если документ ещё не записывался.
type Store interface {
	Save(ctx context.Context, dataType string, content []byte) error
	Load(ctx context.Context, dataType string) ([]byte, error)
	Ping(ctx context.Context) error
	Close() error
}

// Open создаёт бэкенд по STORAGE_DRIVER.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.StorageDriver {
	case config.DriverPostgres:
		store, err = OpenPostgres(ctx, cfg)
	case config.DriverRedis:
		store, err = OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case config.DriverSQLite:
		store, err = OpenSQLite(cfg.SQLitePath)
	case config.DriverMemory:
		log.Warn("STORAGE_DRIVER=memory: данные не переживут перезапуск")
		store = NewMemoryStore()
	default:
		return nil, fmt.Errorf("неизвестный драйвер хранилища %q", cfg.StorageDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("хранилище %s: %w", cfg.StorageDriver, err)
	}

	log.WithField("driver", cfg.StorageDriver).Info("Хранилище готово")
	return store, nil
}
