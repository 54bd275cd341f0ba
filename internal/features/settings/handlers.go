// Package settings — handlers.go обрабатывает /toggle, /invite, /change_invite, /site.
package settings

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"movik.bot/telegram-bot/internal/bot/reply"
)

// Prompter запоминает, что админ пришлёт новый код следующим сообщением.
type Prompter func(adminID int64)

// Handler обрабатывает команды настроек.
type Handler struct {
	service *Service
	prompt  Prompter
	bot     reply.Sender
}

// NewHandler создаёт обработчик.
func NewHandler(service *Service, prompt Prompter, bot reply.Sender) *Handler {
	return &Handler{service: service, prompt: prompt, bot: bot}
}

// HandleToggle — /toggle без аргумента показывает состояния, с аргументом переключает.
func (h *Handler) HandleToggle(ctx context.Context, chatID int64, args []string) {
	if len(args) == 0 {
		reply.Text(h.bot, chatID, RenderToggles(h.service.States()))
		return
	}

	name := strings.ToLower(args[0])
	enabled, err := h.service.Toggle(ctx, name)
	if err != nil {
		reply.Text(h.bot, chatID, toggleUnknownText)
		return
	}
	log.WithFields(log.Fields{"command": name, "enabled": enabled}).Info("Команда переключена")
	reply.Text(h.bot, chatID, fmt.Sprintf(toggleDoneFmt, stateWord(enabled), name))
}

// RenderToggles собирает список состояний команд.
func RenderToggles(states []Toggle) string {
	var sb strings.Builder
	sb.WriteString(toggleHeader)
	for _, t := range states {
		sb.WriteString(fmt.Sprintf("/%s: %s\n", t.Name, stateWord(t.Enabled)))
	}
	sb.WriteString(toggleFooter)
	return sb.String()
}

// HandleInvite — /invite.
func (h *Handler) HandleInvite(chatID int64) {
	reply.Text(h.bot, chatID, fmt.Sprintf(inviteCurrentFmt, h.service.Invite()))
}

// HandleChangeInvite — /change_invite <код>; без аргумента спрашивает код.
func (h *Handler) HandleChangeInvite(ctx context.Context, chatID, adminID int64, args []string) {
	if len(args) > 0 {
		if code, err := h.service.SetInvite(ctx, args[0]); err == nil {
			reply.Text(h.bot, chatID, InviteUpdatedText(code))
			return
		}
	}
	h.prompt(adminID)
	reply.Text(h.bot, chatID, inviteAskText)
}

// InviteUpdatedText — ответ после смены кода.
func InviteUpdatedText(code string) string {
	return fmt.Sprintf(inviteUpdatedFmt, code)
}

// HandleSiteMenu — /site: текущее состояние и кнопки ON/OFF.
func (h *Handler) HandleSiteMenu(chatID int64) {
	on := h.service.SiteOn()
	word, onLabel, offLabel := siteOffWord, "ON", "OFF ❌"
	if on {
		word, onLabel, offLabel = siteOnWord, "ON ✅", "OFF"
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(onLabel, "site_on"),
		tgbotapi.NewInlineKeyboardButtonData(offLabel, "site_off"),
	))
	_ = reply.Markdown(h.bot, chatID, fmt.Sprintf(siteMenuFmt, word), &kb)
}

// HandleSetSite — кнопки site_on / site_off.
func (h *Handler) HandleSetSite(ctx context.Context, chatID int64, on bool) {
	h.service.SetSite(ctx, on)
	log.WithField("site_on", on).Info("Выключатель сайта изменён")
	if on {
		reply.Text(h.bot, chatID, siteOnText)
		return
	}
	reply.Text(h.bot, chatID, siteOffText)
}
