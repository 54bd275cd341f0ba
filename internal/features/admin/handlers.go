// Package admin — handlers.go отвечает админу и пользователю на введённый текст
// и начинает ожидания по кнопкам add_* и move_*_<i>.
package admin

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"movik.bot/telegram-bot/internal/bot/reply"
	"movik.bot/telegram-bot/internal/common"
	"movik.bot/telegram-bot/internal/features/catalog"
	"movik.bot/telegram-bot/internal/features/moderation"
	"movik.bot/telegram-bot/internal/features/settings"
	"movik.bot/telegram-bot/internal/features/tickets"
)

// TicketNotifier рассылает созданный тикет.
type TicketNotifier interface {
	HandleCreated(chatID int64, t tickets.Ticket)
}

// Handler обрабатывает свободный текст и кнопки, начинающие ожидание.
type Handler struct {
	service *Service
	tickets TicketNotifier
	bot     reply.Sender
}

// NewHandler создаёт обработчик.
func NewHandler(service *Service, notifier TicketNotifier, bot reply.Sender) *Handler {
	return &Handler{service: service, tickets: notifier, bot: bot}
}

// HandleText применяет текст к ожиданию. false — ничего не ждали, текст не наш.
func (h *Handler) HandleText(ctx context.Context, chatID int64, actor Actor, text string) bool {
	res, err := h.service.ConsumeText(ctx, actor, text)
	if res == nil && err == nil {
		return false
	}
	if res == nil {
		log.WithError(err).WithField("user_id", actor.ID).Error("Ошибка обработки ввода")
		return true
	}

	if res.Kind == PendingTicketBody {
		if err != nil {
			reply.Text(h.bot, chatID, tickets.AskBodyText)
			return true
		}
		h.tickets.HandleCreated(chatID, *res.Ticket)
		return true
	}

	reply.Text(h.bot, chatID, ResultText(res, err))
	return true
}

// ResultText — ответ админу на применённый ввод.
func ResultText(res *Result, err error) string {
	if a, ok := actionForKind(res.Kind); ok {
		return moderation.ResultText(a, res.Target, err)
	}

	switch res.Kind {
	case PendingInvite:
		if err != nil {
			return emptyInviteText
		}
		return settings.InviteUpdatedText(res.Value)

	case PendingAddMovie, PendingAddSeries:
		if err != nil {
			return emptyNameText
		}
		return fmt.Sprintf(catalog.TextsFor(res.Category).AddedFmt, res.Value)

	case PendingMovePosition:
		switch {
		case err == nil:
			return fmt.Sprintf(catalog.TextsFor(res.Category).MovedFmt, res.Value, res.Position)
		case errors.Is(err, common.ErrPositionOutOfRange):
			return fmt.Sprintf(moveRangeFmt, res.Length)
		case errors.Is(err, common.ErrInvalidNumber):
			return moveInvalidText
		default:
			return moveStaleText
		}
	}
	return moveStaleText
}

// HandleAddStart — кнопки add_movie / add_series.
func (h *Handler) HandleAddStart(chatID, adminID int64, cat catalog.Category) {
	h.service.BeginAdd(adminID, cat)
	reply.Text(h.bot, chatID, catalog.TextsFor(cat).AskName)
}

// HandleMoveStart — кнопки move_*_<i>. Устаревший индекс молча игнорируется.
func (h *Handler) HandleMoveStart(chatID, adminID int64, cat catalog.Category, idx int) {
	name, length, err := h.service.BeginMove(adminID, cat, idx)
	if err != nil {
		log.WithFields(log.Fields{
			"category": cat,
			"index":    idx,
		}).Debug("Перенос по устаревшему индексу пропущен")
		return
	}
	reply.Text(h.bot, chatID, fmt.Sprintf(catalog.TextsFor(cat).AskPositionFmt, name, length))
}

// HandleCancel — /cancel сбрасывает оба ожидания пользователя.
func (h *Handler) HandleCancel(chatID, userID int64) {
	admin := h.service.ClearState(userID)
	ticket := h.service.CancelTicket(userID)
	if admin || ticket {
		reply.Text(h.bot, chatID, cancelledText)
		return
	}
	reply.Text(h.bot, chatID, nothingCancelText)
}
