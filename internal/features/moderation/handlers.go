// Package moderation — handlers.go обрабатывает /ban, /block, /flag.
package moderation

import (
	"context"
	"errors"

	"movik.bot/telegram-bot/internal/bot/reply"
	"movik.bot/telegram-bot/internal/common"
)

// Prompter запоминает, что админ должен прислать id следующим сообщением.
type Prompter func(adminID int64, a Action)

// Handler обрабатывает команды модерации.
type Handler struct {
	service *Service
	prompt  Prompter
	bot     reply.Sender
}

// NewHandler создаёт обработчик.
func NewHandler(service *Service, prompt Prompter, bot reply.Sender) *Handler {
	return &Handler{service: service, prompt: prompt, bot: bot}
}

// HandleCommand — /ban <id>, /block <id>, /flag <id>.
// Без числового аргумента бот спрашивает id и ждёт его следующим сообщением.
func (h *Handler) HandleCommand(ctx context.Context, chatID, adminID int64, a Action, args []string) {
	if len(args) > 0 {
		if target, err := common.ParseNumber(args[0]); err == nil {
			reply.Text(h.bot, chatID, ResultText(a, target, h.service.Apply(ctx, a, target)))
			return
		}
	}

	h.prompt(adminID, a)
	reply.Text(h.bot, chatID, askUserIDText)
}

// ResultText — текст ответа на действие над target с результатом err.
func ResultText(a Action, target int64, err error) string {
	switch {
	case err == nil:
		return DoneText(a, target)
	case errors.Is(err, common.ErrAlreadyBanned):
		return alreadyBannedText
	default:
		return invalidNumberText
	}
}
