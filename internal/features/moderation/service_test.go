package moderation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movik.bot/telegram-bot/internal/bot/reply/replytest"
	"movik.bot/telegram-bot/internal/common"
	"movik.bot/telegram-bot/internal/storage"
)

func newTestService(t *testing.T) (*Service, *storage.Persister) {
	t.Helper()
	p := storage.NewPersister(storage.NewMemoryStore())
	svc := NewService(NewRepository(p), []int64{100, 5})
	svc.Load(context.Background())
	return svc, p
}

func TestBan_EvictsBlockedAndFlagged(t *testing.T) {
	ctx := context.Background()
	svc, p := newTestService(t)

	require.NoError(t, svc.Block(ctx, 42))
	svc.Flag(ctx, 42)
	require.True(t, svc.IsBlocked(42))
	require.True(t, svc.IsFlagged(42))

	svc.Ban(ctx, 42)

	assert.True(t, svc.IsBanned(42))
	assert.False(t, svc.IsBlocked(42))
	assert.False(t, svc.IsFlagged(42))

	assert.Equal(t, []int64{42}, storage.Load(ctx, p, storage.TypeBannedUsers, []int64{}))
	assert.Empty(t, storage.Load(ctx, p, storage.TypeBlockedUsers, []int64{-1}))
	assert.Empty(t, storage.Load(ctx, p, storage.TypeFlaggedUsers, []int64{-1}))
}

func TestBlock_RefusesBanned(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	svc.Ban(ctx, 7)

	err := svc.Block(ctx, 7)
	assert.ErrorIs(t, err, common.ErrAlreadyBanned)
	assert.True(t, svc.IsBanned(7))
	assert.False(t, svc.IsBlocked(7))
	assert.False(t, svc.IsFlagged(7))
}

func TestFlag_NonExclusive(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	svc.Ban(ctx, 9)
	svc.Flag(ctx, 9)
	assert.True(t, svc.IsBanned(9))
	assert.True(t, svc.IsFlagged(9))
}

func TestLoad_RestoresSets(t *testing.T) {
	ctx := context.Background()
	svc, p := newTestService(t)
	svc.Ban(ctx, 3)
	require.NoError(t, svc.Block(ctx, 1))
	require.NoError(t, svc.Block(ctx, 2))

	restored := NewService(NewRepository(p), nil)
	restored.Load(ctx)
	assert.True(t, restored.IsBanned(3))
	assert.True(t, restored.IsBlocked(1))
	assert.True(t, restored.IsBlocked(2))
	assert.Equal(t, []int64{1, 2}, storage.Load(ctx, p, storage.TypeBlockedUsers, []int64{}))
}

func TestAdmins(t *testing.T) {
	svc, _ := newTestService(t)
	assert.True(t, svc.IsAdmin(100))
	assert.False(t, svc.IsAdmin(42))
	assert.Equal(t, []int64{5, 100}, svc.Admins())
}

func TestHandleCommand(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	sender := replytest.New()

	var prompted []Action
	h := NewHandler(svc, func(_ int64, a Action) { prompted = append(prompted, a) }, sender)

	h.HandleCommand(ctx, 100, 100, ActionBan, []string{"42"})
	assert.Equal(t, "تم حظر المستخدم برقم 42 من استخدام هذا البوت.", sender.Last().Text)
	assert.True(t, svc.IsBanned(42))

	h.HandleCommand(ctx, 100, 100, ActionBlock, []string{"42"})
	assert.Equal(t, "هذا المستخدم محظور بالفعل.", sender.Last().Text)

	h.HandleCommand(ctx, 100, 100, ActionFlag, nil)
	assert.Equal(t, "اكتب ID المستخدم", sender.Last().Text)

	h.HandleCommand(ctx, 100, 100, ActionBlock, []string{"abc"})
	assert.Equal(t, []Action{ActionFlag, ActionBlock}, prompted)
}
