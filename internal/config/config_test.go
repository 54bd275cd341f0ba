package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_IDS", "10, 20,30")
	t.Setenv("STORAGE_DRIVER", "memory")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []int64{10, 20, 30}, cfg.AdminIDs)
	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.Equal(t, "Africa/Cairo", cfg.AppTimezone)
	assert.Equal(t, 1, cfg.BotMaxInflight)
	assert.Equal(t, 10*time.Second, cfg.SiteProbeTimeout)
	assert.Equal(t, "https://captainm.netlify.app", cfg.SiteURL)
	assert.Equal(t, "ABCDEF", cfg.DefaultInviteCode)
	assert.Zero(t, cfg.AdminStateTTL)
}

func TestLoad_MissingToken(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	require.NoError(t, os.Unsetenv("TELEGRAM_BOT_TOKEN"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_BadAdminIDs(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ADMIN_IDS", "10,abc")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_Storage(t *testing.T) {
	cfg := &Config{
		AdminIDs:                []int64{1},
		BotMaxInflight:          1,
		BotUpdateTimeoutSeconds: 60,
		SiteProbeTimeout:        time.Second,
		StorageDriver:           DriverPostgres,
		DBMaxConns:              5,
		DBMinConns:              1,
	}
	assert.Error(t, cfg.Validate(), "postgres без DSN и пароля")

	cfg.DatabaseURL = "postgres://u:p@localhost/db"
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "postgres://u:p@localhost/db", cfg.DatabaseDSN())

	cfg.StorageDriver = "mongo"
	assert.Error(t, cfg.Validate())
}

func TestDatabaseDSN_FromParts(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: 5432, DBName: "n", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", cfg.DatabaseDSN())
}

func TestLoadSeed(t *testing.T) {
	seed, err := LoadSeed("", "CODE")
	require.NoError(t, err)
	assert.Equal(t, "CODE", seed.InviteCode)
	assert.Len(t, seed.Movies, 8)
	assert.Equal(t, []string{"لعبة الحبار"}, seed.Series)

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("movies:\n  - A\n  - B\n"), 0o600))

	seed, err = LoadSeed(path, "CODE")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, seed.Movies)
	assert.Equal(t, []string{"لعبة الحبار"}, seed.Series)
	assert.Equal(t, "CODE", seed.InviteCode)

	_, err = LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"), "CODE")
	assert.Error(t, err)
}
