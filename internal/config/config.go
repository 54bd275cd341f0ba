// Package config загружает конфигурацию бота из переменных окружения.
// Используется envconfig для маппинга переменных окружения на поля структуры,
// godotenv подхватывает .env при локальном запуске.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

// Драйверы хранилища
const (
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config содержит ВСЕ настройки приложения.
type Config struct {
	// --- Telegram ---
	TelegramBotToken string  `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`
	AdminIDsRaw      string  `envconfig:"ADMIN_IDS" required:"true"`
	AdminIDs         []int64 `envconfig:"-"` // заполним вручную

	// --- Storage ---
	// postgres | redis | sqlite | memory
	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"postgres"`

	// --- Database ---
	// DATABASE_URL имеет приоритет над DB_*
	DatabaseURL string `envconfig:"DATABASE_URL"`
	DBHost      string `envconfig:"DB_HOST" default:"postgres"`
	DBPort      int    `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER" default:"botuser"`
	DBPassword  string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME" default:"movik_bot"`
	DBSSLMode   string `envconfig:"DB_SSLMODE" default:"disable"`
	DBMaxConns  int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	DBMinConns  int32  `envconfig:"DB_MIN_CONNS" default:"1"`

	// --- Redis ---
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"redis:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// --- SQLite ---
	SQLitePath string `envconfig:"SQLITE_PATH" default:"data/bot.db"`

	// --- Application ---
	AppEnv      string `envconfig:"APP_ENV" default:"development"`
	AppLogLevel string `envconfig:"APP_LOG_LEVEL" default:"info"`
	AppTimezone string `envconfig:"APP_TIMEZONE" default:"Africa/Cairo"`

	// --- Bot runtime ---
	// 1 = апдейты обрабатываются строго по очереди
	BotMaxInflight int `envconfig:"BOT_MAX_INFLIGHT" default:"1"`
	// Таймаут long polling (секунды)
	BotUpdateTimeoutSeconds int `envconfig:"BOT_UPDATE_TIMEOUT_SECONDS" default:"60"`

	// --- Site ---
	SiteURL          string        `envconfig:"SITE_URL" default:"https://captainm.netlify.app"`
	SiteProbeTimeout time.Duration `envconfig:"SITE_PROBE_TIMEOUT" default:"10s"`

	// --- Admin ---
	// 0 = ожидание ввода не истекает
	AdminStateTTL time.Duration `envconfig:"ADMIN_STATE_TTL" default:"0"`

	// --- Ops HTTP (/healthz, /metrics) ---
	// пусто = сервер не поднимается
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// --- Cron ---
	// пусто = задача отключена
	TicketReminderCron string `envconfig:"TICKET_REMINDER_CRON" default:"0 9 * * *"`
	SiteProbeCron      string `envconfig:"SITE_PROBE_CRON" default:"*/5 * * * *"`

	// --- Seed ---
	DefaultInviteCode string `envconfig:"DEFAULT_INVITE_CODE" default:"ABCDEF"`
	SeedFile          string `envconfig:"SEED_FILE"`
}

// DatabaseDSN возвращает строку подключения к PostgreSQL в формате DSN.
func (c *Config) DatabaseDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

func (c *Config) Validate() error {
	if len(c.AdminIDs) == 0 {
		return fmt.Errorf("ADMIN_IDS пуст")
	}
	if c.BotMaxInflight <= 0 {
		return fmt.Errorf("BOT_MAX_INFLIGHT должен быть > 0")
	}
	if c.BotUpdateTimeoutSeconds <= 0 {
		return fmt.Errorf("BOT_UPDATE_TIMEOUT_SECONDS должен быть > 0")
	}
	if c.SiteProbeTimeout <= 0 {
		return fmt.Errorf("SITE_PROBE_TIMEOUT должен быть > 0")
	}
	if c.AdminStateTTL < 0 {
		return fmt.Errorf("ADMIN_STATE_TTL не может быть отрицательным")
	}

	switch c.StorageDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" && c.DBPassword == "" {
			return fmt.Errorf("для postgres нужен DATABASE_URL или DB_PASSWORD")
		}
		if c.DBMaxConns <= 0 || c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
			return fmt.Errorf("некорректные DB_MIN_CONNS/DB_MAX_CONNS")
		}
	case DriverRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR не задан")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH не задан")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("неизвестный STORAGE_DRIVER %q", c.StorageDriver)
	}
	return nil
}

// Load читает .env (если есть) и переменные окружения.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("Файл .env не найден, используем переменные окружения")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("не удалось загрузить конфигурацию: %w", err)
	}
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))

	ids, err := parseInt64CSV(cfg.AdminIDsRaw)
	if err != nil {
		return nil, fmt.Errorf("ADMIN_IDS parse: %w", err)
	}
	cfg.AdminIDs = ids

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseInt64CSV(s string) ([]int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad int64 %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}
