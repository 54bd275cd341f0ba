package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"movik.bot/telegram-bot/internal/common"
)

// BotData — строка таблицы bot_data (та же схема, что и в PostgreSQL).
type BotData struct {
	ID       uint   `gorm:"primaryKey"`
	DataType string `gorm:"size:50;uniqueIndex"`
	Content  string `gorm:"type:text"`
}

// TableName фиксирует имя таблицы.
func (BotData) TableName() string { return "bot_data" }

// SQLiteStore хранит документы в SQLite через GORM (pure Go, без CGO).
type SQLiteStore struct {
	db *gorm.DB
}

// OpenSQLite открывает (или создаёт) файл базы и применяет PRAGMA.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA busy_timeout=5000;")

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	}

	return NewSQLiteStore(db)
}

// NewSQLiteStore создаёт таблицу bot_data на готовом соединении.
func NewSQLiteStore(db *gorm.DB) (*SQLiteStore, error) {
	if err := db.AutoMigrate(&BotData{}); err != nil {
		return nil, fmt.Errorf("automigrate bot_data: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, dataType string, content []byte) error {
	row := BotData{DataType: dataType, Content: string(content)}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "data_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"content"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("sqlite upsert %s: %w", dataType, err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, dataType string) ([]byte, error) {
	var row BotData
	err := s.db.WithContext(ctx).Where("data_type = ?", dataType).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite select %s: %w", dataType, err)
	}
	return []byte(row.Content), nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
