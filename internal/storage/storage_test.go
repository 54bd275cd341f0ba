package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"movik.bot/telegram-bot/internal/common"
	"movik.bot/telegram-bot/internal/metrics"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	store, err := NewSQLiteStore(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_SaveLoadUpsert(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLite(t)

	_, err := store.Load(ctx, TypeMovies)
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, store.Save(ctx, TypeMovies, []byte(`["A"]`)))
	require.NoError(t, store.Save(ctx, TypeMovies, []byte(`["A","B"]`)))

	got, err := store.Load(ctx, TypeMovies)
	require.NoError(t, err)
	assert.JSONEq(t, `["A","B"]`, string(got))

	var rows int64
	require.NoError(t, store.db.Model(&BotData{}).Count(&rows).Error)
	assert.EqualValues(t, 1, rows, "upsert не должен плодить строки")

	assert.NoError(t, store.Ping(ctx))
}

func TestMemoryStore_CopiesContent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	buf := []byte(`true`)
	require.NoError(t, store.Save(ctx, TypeSiteStatus, buf))
	buf[0] = 'X'

	got, err := store.Load(ctx, TypeSiteStatus)
	require.NoError(t, err)
	assert.Equal(t, `true`, string(got))
}

func TestLoad_SeedsDefaultOnFirstAccess(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLite(t)
	p := NewPersister(store)

	got := Load(ctx, p, TypeSeries, []string{"لعبة الحبار"})
	assert.Equal(t, []string{"لعبة الحبار"}, got)

	raw, err := store.Load(ctx, TypeSeries)
	require.NoError(t, err)
	assert.Equal(t, `["لعبة الحبار"]`, string(raw), "арабский текст пишется без экранирования")

	// второй запуск читает сохранённое, а не значение по умолчанию
	p.Save(ctx, TypeSeries, []string{"X"})
	assert.Equal(t, []string{"X"}, Load(ctx, p, TypeSeries, []string{"default"}))
}

func TestLoad_DecodeErrorKeepsDefault(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, TypeCommandStates, []byte(`{not json`)))

	before := testutil.ToFloat64(metrics.PersistErrorsTotal.WithLabelValues(TypeCommandStates, "decode"))

	p := NewPersister(store)
	got := Load(ctx, p, TypeCommandStates, map[string]bool{"movies": true})
	assert.Equal(t, map[string]bool{"movies": true}, got)

	after := testutil.ToFloat64(metrics.PersistErrorsTotal.WithLabelValues(TypeCommandStates, "decode"))
	assert.Equal(t, before+1, after)

	// битый документ не перезаписывается значением по умолчанию
	raw, err := store.Load(ctx, TypeCommandStates)
	require.NoError(t, err)
	assert.Equal(t, `{not json`, string(raw))
}

type failingStore struct{ MemoryStore }

func (*failingStore) Save(context.Context, string, []byte) error {
	return errors.New("connection refused")
}

func (*failingStore) Load(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func TestPersister_SwallowsStoreErrors(t *testing.T) {
	ctx := context.Background()
	p := NewPersister(&failingStore{})

	before := testutil.ToFloat64(metrics.PersistErrorsTotal.WithLabelValues(TypeTickets, "save"))
	assert.NotPanics(t, func() { p.Save(ctx, TypeTickets, []int{1}) })
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.PersistErrorsTotal.WithLabelValues(TypeTickets, "save")))

	got := Load(ctx, p, TypeInviteCode, "ABCDEF")
	assert.Equal(t, "ABCDEF", got)
}

func TestPersister_SaveSurvivesCancelledContext(t *testing.T) {
	store := NewMemoryStore()
	p := NewPersister(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.Save(ctx, TypeSiteStatus, false)

	raw, err := store.Load(context.Background(), TypeSiteStatus)
	require.NoError(t, err)
	assert.Equal(t, "false", string(raw))
}
