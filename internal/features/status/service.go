package status

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"movik.bot/telegram-bot/internal/metrics"
)

// Override — ручной выключатель сайта из настроек.
type Override interface {
	SiteOn() bool
}

// Service отвечает на вопрос "работает ли сайт".
type Service struct {
	prober   Prober
	override Override
}

// NewService создаёт сервис.
func NewService(prober Prober, override Override) *Service {
	return &Service{prober: prober, override: override}
}

// Check возвращает true, если сайт считается рабочим.
// Выключенный вручную сайт всегда "не работает", запрос не делается.
func (s *Service) Check(ctx context.Context) bool {
	if !s.override.SiteOn() {
		return false
	}
	return s.Probe(ctx)
}

// Probe проверяет сайт без учёта выключателя и обновляет метрики.
func (s *Service) Probe(ctx context.Context) bool {
	start := time.Now()
	ok, err := s.prober.Probe(ctx)
	metrics.SiteProbeDuration.Observe(time.Since(start).Seconds())
	metrics.SiteReachable.Set(metrics.BoolToFloat(ok))

	if err != nil {
		log.WithError(err).Warn("Сайт недоступен")
	}
	return ok
}
