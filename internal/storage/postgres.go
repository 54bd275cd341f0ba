package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"movik.bot/telegram-bot/internal/common"
	"movik.bot/telegram-bot/internal/config"
	"movik.bot/telegram-bot/internal/db/postgres"
)

// PostgresStore хранит документы в таблице bot_data.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// OpenPostgres подключается к базе и применяет миграции.
func OpenPostgres(ctx context.Context, cfg *config.Config) (*PostgresStore, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := postgres.RunMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ошибка миграций: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Save(ctx context.Context, dataType string, content []byte) error {
	return postgres.UpsertData(ctx, s.pool, dataType, string(content))
}

func (s *PostgresStore) Load(ctx context.Context, dataType string) ([]byte, error) {
	content, err := postgres.SelectData(ctx, s.pool, dataType)
	if errors.Is(err, postgres.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(content), nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
