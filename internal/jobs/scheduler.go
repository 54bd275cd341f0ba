// Package jobs управляет фоновыми задачами (cron).
// scheduler.go настраивает расписание: напоминание админам об открытых тикетах
// и периодическую проверку сайта.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"movik.bot/telegram-bot/internal/features/tickets"
)

// OpenCounter — сколько тикетов ждут ответа.
type OpenCounter interface {
	CountOpen() int
}

// SiteProber — проверка сайта без учёта ручного выключателя.
type SiteProber interface {
	Probe(ctx context.Context) bool
}

// Scheduler управляет фоновыми задачами.
type Scheduler struct {
	cron *cron.Cron
	loc  *time.Location

	reminderCron string
	probeCron    string

	tickets  OpenCounter
	prober   SiteProber
	admins   func() []int64
	sendFunc func(userID int64, text string)
	timeout  time.Duration
}

// NewScheduler создаёт планировщик в часовом поясе loc.
// Пустое расписание отключает соответствующую задачу.
func NewScheduler(
	loc *time.Location,
	reminderCron, probeCron string,
	ticketsService OpenCounter,
	prober SiteProber,
	probeTimeout time.Duration,
	admins func() []int64,
	sendFunc func(userID int64, text string),
) *Scheduler {
	logger := cron.PrintfLogger(log.StandardLogger())
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	return &Scheduler{
		cron:         c,
		loc:          loc,
		reminderCron: reminderCron,
		probeCron:    probeCron,
		tickets:      ticketsService,
		prober:       prober,
		admins:       admins,
		sendFunc:     sendFunc,
		timeout:      probeTimeout,
	}
}

// Start регистрирует задачи и запускает планировщик.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.reminderCron != "" {
		if _, err := s.cron.AddFunc(s.reminderCron, s.RemindOpenTickets); err != nil {
			return fmt.Errorf("TICKET_REMINDER_CRON %q: %w", s.reminderCron, err)
		}
	}

	if s.probeCron != "" && s.prober != nil {
		if _, err := s.cron.AddFunc(s.probeCron, func() { s.ProbeSite(ctx) }); err != nil {
			return fmt.Errorf("SITE_PROBE_CRON %q: %w", s.probeCron, err)
		}
	}

	s.cron.Start()
	log.WithFields(log.Fields{
		"timezone": s.loc.String(),
		"jobs":     len(s.cron.Entries()),
	}).Info("Планировщик задач запущен")
	return nil
}

// RemindOpenTickets шлёт каждому админу число открытых тикетов, если они есть.
func (s *Scheduler) RemindOpenTickets() {
	open := s.tickets.CountOpen()
	log.WithField("open", open).Debug("[CRON] Проверка открытых тикетов")
	if open == 0 {
		return
	}

	text := tickets.PendingText(open)
	for _, adminID := range s.admins() {
		s.sendFunc(adminID, text)
	}
}

// ProbeSite проверяет сайт; результат попадает в метрики.
func (s *Scheduler) ProbeSite(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	up := s.prober.Probe(ctx)
	log.WithField("up", up).Debug("[CRON] Проверка сайта")
}

// Stop останавливает планировщик и ждёт завершения запущенных задач.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("Планировщик задач остановлен")
}
