// Package catalog — handlers.go показывает списки и меню редактирования.
// Проверки прав и переключателей команд делает маршрутизатор бота.
package catalog

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"movik.bot/telegram-bot/internal/bot/reply"
)

// Handler обрабатывает команды каталога.
type Handler struct {
	service *Service
	bot     reply.Sender
}

// NewHandler создаёт обработчик каталога.
func NewHandler(service *Service, bot reply.Sender) *Handler {
	return &Handler{service: service, bot: bot}
}

// HandleList — /movies, /series и одноимённые кнопки.
func (h *Handler) HandleList(chatID int64, cat Category) {
	_ = reply.Markdown(h.bot, chatID, RenderList(cat, h.service.List(cat)), nil)
}

// RenderList собирает текст списка.
func RenderList(cat Category, items []string) string {
	t := TextsFor(cat)
	if len(items) == 0 {
		return t.Empty
	}

	var sb strings.Builder
	sb.WriteString(t.ListHeader)
	for i, title := range items {
		sb.WriteString(fmt.Sprintf("%s ***%d.*** __**%s**__\n\n", t.ItemIcon, i+1, title))
	}
	sb.WriteString(fmt.Sprintf(t.TotalFmt, len(items)))
	return sb.String()
}

// HandleAddMenu — /add.
func (h *Handler) HandleAddMenu(chatID int64) {
	kb := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🎬 فيلم", "add_movie"),
		tgbotapi.NewInlineKeyboardButtonData("📺 مسلسل", "add_series"),
	))
	reply.Keyboard(h.bot, chatID, addMenuText, kb)
}

// HandleRemoveMenu — /remove.
func (h *Handler) HandleRemoveMenu(chatID int64) {
	reply.Keyboard(h.bot, chatID, removeMenuText, categoryMenu("remove_"))
}

// HandleMoveMenu — /move.
func (h *Handler) HandleMoveMenu(chatID int64) {
	reply.Keyboard(h.bot, chatID, moveMenuText, categoryMenu("move_"))
}

func categoryMenu(prefix string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🎬 أفلام", prefix+Movies.Token()),
		tgbotapi.NewInlineKeyboardButtonData("📺 مسلسلات", prefix+Series.Token()),
	))
}

// HandleRemovePicker — кнопки remove_movie / remove_series: список с кнопками del_*.
func (h *Handler) HandleRemovePicker(chatID int64, cat Category) {
	h.picker(chatID, cat, "del_", TextsFor(cat).PickRemove, TextsFor(cat).NoneToRemove)
}

// HandleMovePicker — кнопки move_movie / move_series: список с кнопками move_*_<i>.
func (h *Handler) HandleMovePicker(chatID int64, cat Category) {
	h.picker(chatID, cat, "move_", TextsFor(cat).PickMove, TextsFor(cat).NoneToMove)
}

func (h *Handler) picker(chatID int64, cat Category, prefix, prompt, empty string) {
	items := h.service.List(cat)
	if len(items) == 0 {
		reply.Text(h.bot, chatID, empty)
		return
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(items))
	for i, title := range items {
		data := fmt.Sprintf("%s%s_%d", prefix, cat.Token(), i)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%d. %s", i+1, title), data),
		))
	}
	reply.Keyboard(h.bot, chatID, prompt, tgbotapi.NewInlineKeyboardMarkup(rows...))
}

// HandleDelete — кнопка del_*_<i>. Устаревший индекс молча игнорируется.
func (h *Handler) HandleDelete(ctx context.Context, chatID int64, cat Category, idx int) {
	removed, err := h.service.DeleteAt(ctx, cat, idx)
	if err != nil {
		log.WithFields(log.Fields{
			"category": cat,
			"index":    idx,
		}).Debug("Удаление по устаревшему индексу пропущено")
		return
	}
	reply.Text(h.bot, chatID, fmt.Sprintf(TextsFor(cat).DeletedFmt, removed))
}
