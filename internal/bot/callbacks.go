package bot

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"movik.bot/telegram-bot/internal/bot/middleware"
	"movik.bot/telegram-bot/internal/bot/reply"
	"movik.bot/telegram-bot/internal/features/catalog"
	"movik.bot/telegram-bot/internal/features/settings"
	"movik.bot/telegram-bot/internal/features/tickets"
	"movik.bot/telegram-bot/internal/metrics"
)

// handleCallback обрабатывает нажатие inline-кнопки.
// Сначала точные совпадения, затем префиксы с параметром.
// На каждый callback отвечаем, иначе у пользователя крутятся "часики".
func (b *Bot) handleCallback(ctx context.Context, traceID string, q *tgbotapi.CallbackQuery) {
	middleware.LogCallback(q, traceID)
	reply.AnswerCallback(b.sender, q.ID)

	if q.From == nil {
		return
	}
	if !b.access.Allow(q.From.ID) {
		return
	}

	userID := q.From.ID
	chatID, messageID := userID, 0
	if q.Message != nil && q.Message.Chat != nil {
		chatID, messageID = q.Message.Chat.ID, q.Message.MessageID
	}
	isAdmin := b.moderationService.IsAdmin(userID)
	data := q.Data

	action := callbackAction(data)
	metrics.CallbacksTotal.WithLabelValues(action).Inc()

	logger := log.WithFields(log.Fields{
		"trace_id": traceID,
		"user_id":  userID,
		"action":   action,
	})

	switch data {
	case "movies", "series", "status":
		if !b.access.AllowGated(chatID, userID) {
			return
		}
		if !b.settingsService.Enabled(data) {
			reply.Text(b.sender, chatID, settings.DisabledText)
			return
		}
		b.routeUserCommand(ctx, chatID, data)
		return
	}

	// Всё ниже, кроме выбора типа тикета, только для админов.
	if strings.HasPrefix(data, "ticket_") {
		if !b.access.AllowGated(chatID, userID) {
			return
		}
		cat, err := tickets.ParseCategory(strings.TrimPrefix(data, "ticket_"))
		if err != nil {
			logger.WithError(err).Debug("Неизвестный тип тикета")
			return
		}
		b.ticketsHandler.HandleChooseCategory(chatID, userID, cat)
		return
	}

	if !isAdmin {
		logger.Debug("Админская кнопка от не-админа, игнорируем")
		return
	}

	switch data {
	case "add_movie", "add_series":
		b.withCategory(data, "add_", func(cat catalog.Category) {
			b.adminHandler.HandleAddStart(chatID, userID, cat)
		})
	case "remove_movie", "remove_series":
		b.withCategory(data, "remove_", func(cat catalog.Category) {
			b.catalogHandler.HandleRemovePicker(chatID, cat)
		})
	case "move_movie", "move_series":
		b.withCategory(data, "move_", func(cat catalog.Category) {
			b.catalogHandler.HandleMovePicker(chatID, cat)
		})
	case "site_on":
		b.settingsHandler.HandleSetSite(ctx, chatID, true)
	case "site_off":
		b.settingsHandler.HandleSetSite(ctx, chatID, false)
	case "clear_closed_tickets":
		b.ticketsHandler.HandlePurge(ctx, chatID)

	default:
		switch {
		case strings.HasPrefix(data, "close_ticket_"):
			b.ticketsHandler.HandleClose(ctx, chatID, messageID, strings.TrimPrefix(data, "close_ticket_"))

		case strings.HasPrefix(data, "del_"):
			cat, idx, ok := parseIndexed(strings.TrimPrefix(data, "del_"))
			if !ok {
				logger.WithField("data", data).Debug("Некорректный callback удаления")
				return
			}
			b.catalogHandler.HandleDelete(ctx, chatID, cat, idx)

		case strings.HasPrefix(data, "move_"):
			cat, idx, ok := parseIndexed(strings.TrimPrefix(data, "move_"))
			if !ok {
				logger.WithField("data", data).Debug("Некорректный callback переноса")
				return
			}
			b.adminHandler.HandleMoveStart(chatID, userID, cat, idx)

		default:
			logger.WithField("data", data).Debug("Неизвестный callback")
		}
	}
}

func (b *Bot) withCategory(data, prefix string, fn func(cat catalog.Category)) {
	cat, err := catalog.ParseToken(strings.TrimPrefix(data, prefix))
	if err != nil {
		log.WithError(err).WithField("data", data).Debug("Неизвестная категория")
		return
	}
	fn(cat)
}

// parseIndexed разбирает "movie_3" / "series_0".
func parseIndexed(rest string) (catalog.Category, int, bool) {
	sep := strings.LastIndexByte(rest, '_')
	if sep <= 0 {
		return "", 0, false
	}
	cat, err := catalog.ParseToken(rest[:sep])
	if err != nil {
		return "", 0, false
	}
	idx, err := strconv.Atoi(rest[sep+1:])
	if err != nil || idx < 0 {
		return "", 0, false
	}
	return cat, idx, true
}

// callbackAction — метка для метрик без индексов и id.
func callbackAction(data string) string {
	switch data {
	case "movies", "series", "status",
		"add_movie", "add_series", "remove_movie", "remove_series", "move_movie", "move_series",
		"site_on", "site_off", "clear_closed_tickets":
		return data
	}
	for _, prefix := range []string{"close_ticket_", "ticket_", "del_movie_", "del_series_", "move_movie_", "move_series_"} {
		if strings.HasPrefix(data, prefix) {
			return strings.TrimSuffix(prefix, "_")
		}
	}
	return "unknown"
}
