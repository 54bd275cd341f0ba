package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movik.bot/telegram-bot/internal/bot/reply/replytest"
)

func TestRenderList(t *testing.T) {
	text := RenderList(Movies, []string{"A", "B"})
	assert.Equal(t,
		"🎬 ***قائمة الأفلام المتاحة***\n\n"+
			"🎞️ ***1.*** __**A**__\n\n"+
			"🎞️ ***2.*** __**B**__\n\n"+
			"***المجموع: 2 فيلم***",
		text)

	assert.Equal(t, "🚫 ***لا توجد مسلسلات متاحة حاليًا***", RenderList(Series, nil))
}

func TestHandleList_FallsBackToPlainText(t *testing.T) {
	svc, _ := newTestService(t, "under_score")
	sender := replytest.New()
	sender.FailMarkdown = true
	h := NewHandler(svc, sender)

	h.HandleList(1, Movies)

	msgs := sender.Messages()
	require.Len(t, msgs, 1)
	assert.Empty(t, msgs[0].ParseMode)
	assert.Contains(t, msgs[0].Text, "under_score")
}

func TestHandleRemovePicker(t *testing.T) {
	svc, _ := newTestService(t, "A", "B")
	sender := replytest.New()
	h := NewHandler(svc, sender)

	h.HandleRemovePicker(1, Movies)
	last := sender.Last()
	assert.Equal(t, "اختر الفيلم الذي تريد حذفه:", last.Text)
	require.NotNil(t, last.Keyboard)
	require.Len(t, last.Keyboard.InlineKeyboard, 2)
	assert.Equal(t, "1. A", last.Keyboard.InlineKeyboard[0][0].Text)
	assert.Equal(t, "del_movie_1", *last.Keyboard.InlineKeyboard[1][0].CallbackData)

	h.HandleMovePicker(1, Series)
	assert.Equal(t, "لا توجد مسلسلات لتحريكها", sender.Last().Text)
}

func TestHandleDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, "A", "B")
	sender := replytest.New()
	h := NewHandler(svc, sender)

	h.HandleDelete(ctx, 1, Movies, 0)
	assert.Equal(t, "تم حذف الفيلم: A", sender.Last().Text)
	assert.Equal(t, []string{"B"}, svc.List(Movies))

	// устаревший индекс: ни изменений, ни ответа
	sender.Reset()
	h.HandleDelete(ctx, 1, Movies, 5)
	assert.Empty(t, sender.Messages())
	assert.Equal(t, []string{"B"}, svc.List(Movies))
}

func TestMenus(t *testing.T) {
	svc, _ := newTestService(t)
	sender := replytest.New()
	h := NewHandler(svc, sender)

	h.HandleAddMenu(1)
	kb := sender.Last().Keyboard
	require.NotNil(t, kb)
	assert.Equal(t, "add_movie", *kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "add_series", *kb.InlineKeyboard[0][1].CallbackData)

	h.HandleMoveMenu(1)
	kb = sender.Last().Keyboard
	assert.Equal(t, "move_movie", *kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "move_series", *kb.InlineKeyboard[0][1].CallbackData)
}
