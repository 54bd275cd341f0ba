// Package bot содержит главный модуль бота — запуск, остановку и маршрутизацию.
// bot.go принимает апдейты и раскидывает команды по обработчикам фич.
package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"movik.bot/telegram-bot/internal/bot/filters"
	"movik.bot/telegram-bot/internal/bot/middleware"
	"movik.bot/telegram-bot/internal/bot/reply"
	"movik.bot/telegram-bot/internal/config"
	"movik.bot/telegram-bot/internal/features/admin"
	"movik.bot/telegram-bot/internal/features/catalog"
	"movik.bot/telegram-bot/internal/features/moderation"
	"movik.bot/telegram-bot/internal/features/settings"
	"movik.bot/telegram-bot/internal/features/status"
	"movik.bot/telegram-bot/internal/features/tickets"
	"movik.bot/telegram-bot/internal/metrics"
)

// Bot — главная структура бота, объединяющая все компоненты.
type Bot struct {
	api    *tgbotapi.BotAPI
	sender reply.Sender
	cfg    *config.Config

	access *filters.AccessFilter

	catalogHandler    *catalog.Handler
	moderationHandler *moderation.Handler
	settingsHandler   *settings.Handler
	statusHandler     *status.Handler
	ticketsHandler    *tickets.Handler
	adminHandler      *admin.Handler

	moderationService *moderation.Service
	settingsService   *settings.Service

	parser *CommandParser

	// ограничитель параллелизма обработки апдейтов
	inflight chan struct{}
}

// New создаёт новый экземпляр бота со всеми зависимостями.
// api нужен только для polling, всё остальное уходит через sender.
func New(
	api *tgbotapi.BotAPI,
	sender reply.Sender,
	cfg *config.Config,
	moderationService *moderation.Service,
	moderationHandler *moderation.Handler,
	settingsService *settings.Service,
	settingsHandler *settings.Handler,
	catalogHandler *catalog.Handler,
	statusHandler *status.Handler,
	ticketsHandler *tickets.Handler,
	adminHandler *admin.Handler,
	access *filters.AccessFilter,
) *Bot {
	maxInFlight := cfg.BotMaxInflight
	if maxInFlight <= 0 {
		maxInFlight = 1
	}

	return &Bot{
		api:               api,
		sender:            sender,
		cfg:               cfg,
		access:            access,
		catalogHandler:    catalogHandler,
		moderationHandler: moderationHandler,
		settingsHandler:   settingsHandler,
		statusHandler:     statusHandler,
		ticketsHandler:    ticketsHandler,
		adminHandler:      adminHandler,
		moderationService: moderationService,
		settingsService:   settingsService,
		parser:            NewCommandParser(),
		inflight:          make(chan struct{}, maxInFlight),
	}
}

// Start запускает polling обновлений от Telegram и блокируется до отмены ctx.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.BotUpdateTimeoutSeconds

	updates := b.api.GetUpdatesChan(u)

	log.WithFields(log.Fields{
		"max_inflight": cap(b.inflight),
		"timeout_sec":  b.cfg.BotUpdateTimeoutSeconds,
	}).Info("Бот запущен и ожидает сообщения...")

	for {
		select {
		case <-ctx.Done():
			log.Info("Бот останавливается (ctx done)...")
			b.api.StopReceivingUpdates()
			b.drain()
			return

		case update, ok := <-updates:
			if !ok {
				log.Info("Канал updates закрыт, бот остановлен")
				b.drain()
				return
			}

			// лимит параллелизма
			b.inflight <- struct{}{}
			go func(upd tgbotapi.Update) {
				defer func() { <-b.inflight }()
				b.handleUpdate(ctx, upd)
			}(update)
		}
	}
}

// drain ждёт завершения уже запущенных обработчиков.
func (b *Bot) drain() {
	for i := 0; i < cap(b.inflight); i++ {
		b.inflight <- struct{}{}
	}
}

// handleUpdate обрабатывает одно обновление от Telegram.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer middleware.RecoverFromPanic()

	traceID := uuid.NewString()

	switch {
	case update.CallbackQuery != nil:
		metrics.UpdatesTotal.WithLabelValues("callback").Inc()
		b.handleCallback(ctx, traceID, update.CallbackQuery)

	case update.Message != nil && update.Message.Text != "":
		metrics.UpdatesTotal.WithLabelValues("message").Inc()
		b.handleMessage(ctx, traceID, update.Message)

	default:
		metrics.UpdatesTotal.WithLabelValues("other").Inc()
	}
}

func (b *Bot) handleMessage(ctx context.Context, traceID string, message *tgbotapi.Message) {
	middleware.LogMessage(message, traceID)

	if message.From == nil || message.Chat == nil {
		return
	}
	if !b.access.Allow(message.From.ID) {
		return
	}

	chatID := message.Chat.ID

	cmd, args, isCommand := b.parser.ParseCommand(message.Text)
	if isCommand {
		log.WithFields(log.Fields{
			"trace_id": traceID,
			"cmd":      cmd,
			"args":     args,
		}).Debug("parsed command")
		b.routeCommand(ctx, chatID, message.From, cmd, args)
		return
	}

	// Свободный текст — ответ на ожидание (id, название, позиция, текст тикета).
	actor := admin.Actor{
		ID:        message.From.ID,
		FirstName: message.From.FirstName,
		IsAdmin:   b.moderationService.IsAdmin(message.From.ID),
	}
	if !b.adminHandler.HandleText(ctx, chatID, actor, message.Text) {
		log.WithField("trace_id", traceID).Debug("Текст без ожидания, пропускаем")
	}
}

// Команды, которые могут выключить админы через /toggle.
var userCommands = map[string]bool{
	"movies": true,
	"series": true,
	"status": true,
	"invite": true,
	"ticket": true,
}

var adminCommands = map[string]bool{
	"ban":             true,
	"block":           true,
	"flag":            true,
	"change_invite":   true,
	"toggle":          true,
	"add":             true,
	"remove":          true,
	"move":            true,
	"site":            true,
	"tickets":         true,
	"ticket_users":    true,
	"pending_tickets": true,
	"help":            true,
}

// routeCommand маршрутизирует команду к нужному обработчику.
func (b *Bot) routeCommand(ctx context.Context, chatID int64, from *tgbotapi.User, cmd string, args []string) {
	userID := from.ID
	isAdmin := b.moderationService.IsAdmin(userID)

	label, outcome := cmd, "ok"
	defer func() { metrics.CommandsTotal.WithLabelValues(label, outcome).Inc() }()

	switch {
	case userCommands[cmd]:
		if !b.access.AllowGated(chatID, userID) {
			outcome = "blocked"
			return
		}
		if !b.settingsService.Enabled(cmd) {
			outcome = "disabled"
			reply.Text(b.sender, chatID, settings.DisabledText)
			return
		}
		b.routeUserCommand(ctx, chatID, cmd)

	case adminCommands[cmd]:
		if !isAdmin {
			outcome = "denied"
			reply.Text(b.sender, chatID, moderation.AdminOnlyText)
			return
		}
		if !b.settingsService.Enabled(cmd) {
			outcome = "disabled"
			reply.Text(b.sender, chatID, settings.DisabledText)
			return
		}
		b.routeAdminCommand(ctx, chatID, userID, cmd, args)

	case cmd == "start":
		b.sendStart(chatID, from.FirstName)

	case cmd == "cancel":
		b.adminHandler.HandleCancel(chatID, userID)

	default:
		label, outcome = "unknown", "unknown"
		reply.Text(b.sender, chatID, unknownCommandText)
	}
}

func (b *Bot) routeUserCommand(ctx context.Context, chatID int64, cmd string) {
	switch cmd {
	case "movies":
		b.catalogHandler.HandleList(chatID, catalog.Movies)
	case "series":
		b.catalogHandler.HandleList(chatID, catalog.Series)
	case "status":
		b.statusHandler.HandleStatus(ctx, chatID)
	case "invite":
		b.settingsHandler.HandleInvite(chatID)
	case "ticket":
		b.ticketsHandler.HandleMenu(chatID)
	}
}

func (b *Bot) routeAdminCommand(ctx context.Context, chatID, userID int64, cmd string, args []string) {
	switch cmd {
	case "help":
		reply.Text(b.sender, chatID, helpText)
	case "ban":
		b.moderationHandler.HandleCommand(ctx, chatID, userID, moderation.ActionBan, args)
	case "block":
		b.moderationHandler.HandleCommand(ctx, chatID, userID, moderation.ActionBlock, args)
	case "flag":
		b.moderationHandler.HandleCommand(ctx, chatID, userID, moderation.ActionFlag, args)
	case "change_invite":
		b.settingsHandler.HandleChangeInvite(ctx, chatID, userID, args)
	case "toggle":
		b.settingsHandler.HandleToggle(ctx, chatID, args)
	case "add":
		b.catalogHandler.HandleAddMenu(chatID)
	case "remove":
		b.catalogHandler.HandleRemoveMenu(chatID)
	case "move":
		b.catalogHandler.HandleMoveMenu(chatID)
	case "site":
		b.settingsHandler.HandleSiteMenu(chatID)
	case "tickets":
		b.ticketsHandler.HandleList(chatID)
	case "ticket_users":
		b.ticketsHandler.HandleRequesters(chatID)
	case "pending_tickets":
		b.ticketsHandler.HandlePending(chatID)
	}
}

func (b *Bot) sendStart(chatID int64, firstName string) {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🎬 الأفلام", "movies")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🌐 حالة الموقع", "status")),
	)
	reply.Keyboard(b.sender, chatID, fmt.Sprintf(welcomeFmt, firstName, b.settingsService.Invite()), kb)
}

// SendMessageToUser отправляет личное сообщение (используется планировщиком).
func (b *Bot) SendMessageToUser(userID int64, text string) {
	reply.Text(b.sender, userID, text)
}

// CommandParser разбирает команды вида "/cmd@bot arg1 arg2".
type CommandParser struct {
	validPrefixes []string
}

// NewCommandParser создаёт парсер команд.
func NewCommandParser() *CommandParser {
	return &CommandParser{
		validPrefixes: []string{"/"},
	}
}

// ParseCommand разбирает текст на команду и аргументы.
// Упоминание бота после команды ("/movies@MovikBot") отбрасывается.
func (p *CommandParser) ParseCommand(text string) (string, []string, bool) {
	text = strings.TrimSpace(text)

	hasPrefix := false
	for _, prefix := range p.validPrefixes {
		if strings.HasPrefix(text, prefix) {
			text = strings.TrimPrefix(text, prefix)
			hasPrefix = true
			break
		}
	}

	if !hasPrefix {
		return "", nil, false
	}

	parts := strings.Fields(text)
	if len(parts) == 0 {
		return "", nil, false
	}

	command := strings.ToLower(parts[0])
	if at := strings.IndexByte(command, '@'); at >= 0 {
		command = command[:at]
	}
	if command == "" {
		return "", nil, false
	}

	var args []string
	if len(parts) > 1 {
		args = parts[1:]
	}

	return command, args, true
}
