// Package app инициализирует все компоненты приложения.
// app.go — точка сборки: открывает хранилище, создаёт сервисы, обработчики,
// фильтры и собирает всё в один объект Bot.
package app

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"movik.bot/telegram-bot/internal/bot"
	"movik.bot/telegram-bot/internal/bot/filters"
	"movik.bot/telegram-bot/internal/common"
	"movik.bot/telegram-bot/internal/config"
	"movik.bot/telegram-bot/internal/features/admin"
	"movik.bot/telegram-bot/internal/features/catalog"
	"movik.bot/telegram-bot/internal/features/moderation"
	"movik.bot/telegram-bot/internal/features/settings"
	"movik.bot/telegram-bot/internal/features/status"
	"movik.bot/telegram-bot/internal/features/tickets"
	"movik.bot/telegram-bot/internal/httpserver"
	"movik.bot/telegram-bot/internal/jobs"
	"movik.bot/telegram-bot/internal/storage"
)

// App содержит все компоненты приложения.
type App struct {
	Bot       *bot.Bot
	Scheduler *jobs.Scheduler
	HTTP      *httpserver.Server // nil, если HTTP_ADDR пуст
	Store     storage.Store
	BotAPI    *tgbotapi.BotAPI
}

// New создаёт и инициализирует приложение.
// Порядок инициализации важен — компоненты зависят друг от друга.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// === 1. Начальные данные ===
	seed, err := config.LoadSeed(cfg.SeedFile, cfg.DefaultInviteCode)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки SEED_FILE: %w", err)
	}

	// === 2. Хранилище ===
	store, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	persister := storage.NewPersister(store)

	// === 3. Telegram Bot API ===
	botAPI, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("ошибка создания Telegram API: %w", err)
	}
	botAPI.Debug = cfg.AppEnv == "development"
	log.Infof("Авторизован как @%s", botAPI.Self.UserName)

	loc := common.LoadLocation(cfg.AppTimezone)

	// === 4. Сервисы (с загрузкой сохранённого состояния) ===
	catalogService := catalog.NewService(catalog.NewRepository(persister))
	catalogService.Load(ctx, map[catalog.Category][]string{
		catalog.Movies: seed.Movies,
		catalog.Series: seed.Series,
	})

	moderationService := moderation.NewService(moderation.NewRepository(persister), cfg.AdminIDs)
	moderationService.Load(ctx)

	settingsService := settings.NewService(settings.NewRepository(persister), seed.InviteCode)
	settingsService.Load(ctx)

	ticketsService := tickets.NewService(tickets.NewRepository(persister), loc)
	ticketsService.Load(ctx)

	statusService := status.NewService(status.NewHTTPProber(cfg.SiteURL, cfg.SiteProbeTimeout), settingsService)

	adminService := admin.NewService(catalogService, moderationService, settingsService, ticketsService, cfg.AdminStateTTL)

	// === 5. Обработчики ===
	ticketsHandler := tickets.NewHandler(ticketsService, adminService.AwaitTicket, moderationService, botAPI)
	moderationHandler := moderation.NewHandler(moderationService, adminService.PromptModeration, botAPI)
	settingsHandler := settings.NewHandler(settingsService, adminService.PromptInvite, botAPI)
	catalogHandler := catalog.NewHandler(catalogService, botAPI)
	statusHandler := status.NewHandler(statusService, botAPI)
	adminHandler := admin.NewHandler(adminService, ticketsHandler, botAPI)

	// === 6. Фильтры ===
	access := filters.NewAccessFilter(moderationService, botAPI)

	// === 7. Собираем бота ===
	b := bot.New(
		botAPI, botAPI, cfg,
		moderationService, moderationHandler,
		settingsService, settingsHandler,
		catalogHandler,
		statusHandler,
		ticketsHandler,
		adminHandler,
		access,
	)

	// === 8. Планировщик задач ===
	scheduler := jobs.NewScheduler(
		loc,
		cfg.TicketReminderCron, cfg.SiteProbeCron,
		ticketsService,
		statusService, cfg.SiteProbeTimeout,
		moderationService.Admins,
		b.SendMessageToUser,
	)

	// === 9. Служебный HTTP ===
	var httpServer *httpserver.Server
	if cfg.HTTPAddr != "" {
		httpServer = httpserver.New(cfg.HTTPAddr, persister)
	}

	return &App{
		Bot:       b,
		Scheduler: scheduler,
		HTTP:      httpServer,
		Store:     store,
		BotAPI:    botAPI,
	}, nil
}

// Close освобождает хранилище.
func (a *App) Close() {
	if err := a.Store.Close(); err != nil {
		log.WithError(err).Warn("Ошибка закрытия хранилища")
	}
}
