// Package postgres — queries.go содержит миграции и запросы к таблице bot_data.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoRows — строки с таким data_type нет.
var ErrNoRows = errors.New("bot_data: no rows")

type migration struct {
	version int
	sql     string
}

// SQL-миграции встроены в код для упрощения деплоя.
var migrations = []migration{
	{1, migration001BotData},
}

// bot_data — документное хранилище: одна строка на тип данных,
// content — JSON-документ.
const migration001BotData = `
CREATE TABLE IF NOT EXISTS bot_data (
    id SERIAL PRIMARY KEY,
    data_type VARCHAR(50) UNIQUE,
    content TEXT
);
`

// ExecMigrationSQL выполняет один SQL-запрос миграции в транзакции.
// Если запрос упадёт, транзакция откатится.
func ExecMigrationSQL(ctx context.Context, pool *pgxpool.Pool, version int, sql string) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)", version,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("ошибка проверки миграции: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec(ctx, sql); err != nil {
		return fmt.Errorf("ошибка выполнения миграции %d: %w", version, err)
	}

	if _, err := tx.Exec(ctx,
		"INSERT INTO schema_migrations (version) VALUES ($1)", version,
	); err != nil {
		return fmt.Errorf("ошибка записи версии миграции: %w", err)
	}

	return tx.Commit(ctx)
}

// UpsertData записывает документ типа dataType (INSERT ... ON CONFLICT).
func UpsertData(ctx context.Context, pool *pgxpool.Pool, dataType, content string) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO bot_data (data_type, content) VALUES ($1, $2)
		ON CONFLICT (data_type) DO UPDATE SET content = EXCLUDED.content
	`, dataType, content)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", dataType, err)
	}
	return nil
}

// SelectData читает документ типа dataType. ErrNoRows, если записи нет.
func SelectData(ctx context.Context, pool *pgxpool.Pool, dataType string) (string, error) {
	var content string
	err := pool.QueryRow(ctx,
		"SELECT content FROM bot_data WHERE data_type = $1", dataType,
	).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNoRows
	}
	if err != nil {
		return "", fmt.Errorf("select %s: %w", dataType, err)
	}
	return content, nil
}
