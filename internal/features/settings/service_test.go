package settings

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
	svc := NewService(NewRepository(p), "ABCDEF")
	svc.Load(context.Background())
	return svc, p
}

func TestDefaults(t *testing.T) {
	svc, _ := newTestService(t)
	for _, name := range CommandNames {
		assert.True(t, svc.Enabled(name), name)
	}
	assert.Equal(t, "ABCDEF", svc.Invite())
	assert.True(t, svc.SiteOn())
}

func TestToggle(t *testing.T) {
	ctx := context.Background()
	svc, p := newTestService(t)

	enabled, err := svc.Toggle(ctx, "Movies")
	require.NoError(t, err)
	assert.False(t, enabled)
	assert.False(t, svc.Enabled("movies"))

	stored := storage.Load(ctx, p, storage.TypeCommandStates, map[string]bool{})
	assert.Equal(t, false, stored["movies"])
	assert.Equal(t, true, stored["series"])

	enabled, err = svc.Toggle(ctx, "movies")
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestToggle_UnknownRejected(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Toggle(context.Background(), "ban")
	assert.ErrorIs(t, err, common.ErrUnknownCommand)
	assert.Len(t, svc.States(), len(CommandNames))
	assert.True(t, svc.Enabled("ban"))
}

func TestLoad_DropsUnknownKeys(t *testing.T) {
	ctx := context.Background()
	p := storage.NewPersister(storage.NewMemoryStore())
	p.Save(ctx, storage.TypeCommandStates, map[string]bool{"status": false, "casino": true})

	svc := NewService(NewRepository(p), "X")
	svc.Load(ctx)

	assert.False(t, svc.Enabled("status"))
	assert.True(t, svc.Enabled("help"))
	states := svc.States()
	require.Len(t, states, 5)
	assert.Equal(t, "movies", states[0].Name)
	assert.Equal(t, "help", states[4].Name)
}

func TestSetInvite(t *testing.T) {
	ctx := context.Background()
	svc, p := newTestService(t)

	code, err := svc.SetInvite(ctx, "  NEW123 ")
	require.NoError(t, err)
	assert.Equal(t, "NEW123", code)
	assert.Equal(t, "NEW123", storage.Load(ctx, p, storage.TypeInviteCode, ""))

	_, err = svc.SetInvite(ctx, "   ")
	assert.ErrorIs(t, err, common.ErrEmptyInput)
	assert.Equal(t, "NEW123", svc.Invite())
}

func TestSetSite_Persists(t *testing.T) {
	ctx := context.Background()
	svc, p := newTestService(t)
	svc.SetSite(ctx, false)

	restored := NewService(NewRepository(p), "X")
	restored.Load(ctx)
	assert.False(t, restored.SiteOn())
}

func TestHandlers(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	sender := replytest.New()
	var prompted []int64
	h := NewHandler(svc, func(id int64) { prompted = append(prompted, id) }, sender)

	h.HandleToggle(ctx, 1, nil)
	assert.Contains(t, sender.Last().Text, "/movies: مفعل")

	h.HandleToggle(ctx, 1, []string{"status"})
	assert.Equal(t, "تم معطل الأمر /status", sender.Last().Text)

	h.HandleToggle(ctx, 1, []string{"nope"})
	assert.Equal(t, toggleUnknownText, sender.Last().Text)

	h.HandleInvite(1)
	assert.Equal(t, "رمز الدعوة الحالي هو: ABCDEF", sender.Last().Text)

	h.HandleChangeInvite(ctx, 1, 100, []string{"ZZZ"})
	assert.Equal(t, "تم تحديث رمز الدعوة إلى: ZZZ", sender.Last().Text)
	assert.Empty(t, prompted)

	h.HandleChangeInvite(ctx, 1, 100, nil)
	assert.Equal(t, inviteAskText, sender.Last().Text)
	assert.Equal(t, []int64{100}, prompted)

	h.HandleSiteMenu(1)
	last := sender.Last()
	require.NotNil(t, last.Keyboard)
	assert.Equal(t, "ON ✅", last.Keyboard.InlineKeyboard[0][0].Text)

	h.HandleSetSite(ctx, 1, false)
	assert.Equal(t, siteOffText, sender.Last().Text)
	assert.False(t, svc.SiteOn())
}
