package tickets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"movik.bot/telegram-bot/internal/bot/reply"
	"movik.bot/telegram-bot/internal/common"
)

// Awaiter запоминает, что пользователь пришлёт текст обращения следующим сообщением.
type Awaiter func(userID int64, cat Category)

// Admins — кому пересылать новые обращения.
type Admins interface {
	Admins() []int64
}

// Handler обрабатывает команды и кнопки обращений.
type Handler struct {
	service *Service
	await   Awaiter
	admins  Admins
	bot     reply.Sender
}

func NewHandler(service *Service, await Awaiter, admins Admins, bot reply.Sender) *Handler {
	return &Handler{service: service, await: await, admins: admins, bot: bot}
}

// HandleMenu — /ticket: выбор типа обращения.
func (h *Handler) HandleMenu(chatID int64) {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(Categories))
	for _, c := range Categories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(categoryButtons[c], "ticket_"+string(c)),
		))
	}
	reply.Keyboard(h.bot, chatID, menuText, tgbotapi.NewInlineKeyboardMarkup(rows...))
}

// HandleChooseCategory — кнопка ticket_<категория>.
func (h *Handler) HandleChooseCategory(chatID, userID int64, cat Category) {
	h.await(userID, cat)
	reply.Text(h.bot, chatID, AskBodyText)
}

// HandleCreated подтверждает обращение автору и рассылает его админам с кнопкой закрытия.
func (h *Handler) HandleCreated(chatID int64, t Ticket) {
	_ = reply.Markdown(h.bot, chatID, sentText, nil)

	text := fmt.Sprintf(newTicketFmt, t.Category, t.UserLink, t.Timestamp, t.Message)
	kb := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(closeButton, "close_ticket_"+t.ID),
	))
	for _, adminID := range h.admins.Admins() {
		if err := reply.Markdown(h.bot, adminID, text, &kb); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"admin_id":  adminID,
				"ticket_id": t.ID,
			}).Warn("Не удалось переслать тикет админу")
		}
	}
}

// HandleList — /tickets.
func (h *Handler) HandleList(chatID int64) {
	list := h.service.List()
	if len(list) == 0 {
		reply.Text(h.bot, chatID, noTicketsText)
		return
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(purgeButton, "clear_closed_tickets"),
	))
	_ = reply.Markdown(h.bot, chatID, RenderList(list), &kb)
}

// RenderList собирает список обращений со статусами.
func RenderList(list []Ticket) string {
	lines := make([]string, 0, len(list))
	for i, t := range list {
		state := openWord
		if t.Closed {
			state = closedWord
		}
		lines = append(lines, fmt.Sprintf("%d. %s - %s - %s - %s", i+1, t.UserLink, t.Category, t.Timestamp, state))
	}
	return listHeader + strings.Join(lines, "\n")
}

// HandleRequesters — /ticket_users.
func (h *Handler) HandleRequesters(chatID int64) {
	links := h.service.Requesters()
	if len(links) == 0 {
		reply.Text(h.bot, chatID, noTicketsText)
		return
	}

	var sb strings.Builder
	sb.WriteString(requestersHead)
	for i, link := range links {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, link))
	}
	_ = reply.Markdown(h.bot, chatID, sb.String(), nil)
}

// HandlePending — /pending_tickets.
func (h *Handler) HandlePending(chatID int64) {
	reply.Text(h.bot, chatID, PendingText(h.service.CountOpen()))
}

// PendingText — сколько обращений ждут ответа.
func PendingText(open int) string {
	if open == 0 {
		return noneOpenText
	}
	return fmt.Sprintf(pendingCountFmt, open)
}

// HandleClose — кнопка close_ticket_<id>. Уже закрытое или неизвестное обращение игнорируется.
func (h *Handler) HandleClose(ctx context.Context, chatID int64, messageID int, id string) {
	userID, err := h.service.Close(ctx, id)
	if errors.Is(err, common.ErrTicketNotFound) {
		log.WithField("ticket_id", id).Debug("Тикет уже закрыт или не найден")
		return
	}

	if err := reply.Edit(h.bot, chatID, messageID, closedText); err != nil {
		reply.Text(h.bot, chatID, closedText)
	}
	if err := reply.Markdown(h.bot, userID, closedNotice, nil); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("Не удалось уведомить автора тикета")
	}
}

// HandlePurge — кнопка clear_closed_tickets.
func (h *Handler) HandlePurge(ctx context.Context, chatID int64) {
	h.service.PurgeClosed(ctx)
	reply.Text(h.bot, chatID, purgedText)
}
