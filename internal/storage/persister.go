package storage

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"

	"movik.bot/telegram-bot/internal/common"
	"movik.bot/telegram-bot/internal/metrics"
)

// Кодек документов: арабский текст пишется как есть, ключи карт сортируются.
var codec = jsoniter.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
}.Froze()

const defaultOpTimeout = 5 * time.Second

// Persister сериализует значения в JSON и пишет их в Store.
// Ошибки хранилища логируются и считаются в метриках, но наружу не выходят:
// бот продолжает работать с данными в памяти.
type Persister struct {
	store   Store
	timeout time.Duration
}

// NewPersister создаёт Persister поверх бэкенда.
func NewPersister(store Store) *Persister {
	return &Persister{store: store, timeout: defaultOpTimeout}
}

// Save записывает v под ключом dataType. Не возвращает ошибку и не повторяет запись.
// Запись не прерывается отменой ctx (например, при остановке бота).
func (p *Persister) Save(ctx context.Context, dataType string, v any) {
	raw, err := codec.Marshal(v)
	if err != nil {
		p.fail(dataType, "encode", err)
		return
	}

	opCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	if err := p.store.Save(opCtx, dataType, raw); err != nil {
		p.fail(dataType, "save", err)
		return
	}
	log.WithFields(log.Fields{
		"data_type": dataType,
		"bytes":     len(raw),
	}).Debug("Данные сохранены")
}

// Ping проверяет доступность бэкенда.
func (p *Persister) Ping(ctx context.Context) error {
	return p.store.Ping(ctx)
}

func (p *Persister) fail(dataType, op string, err error) {
	metrics.PersistErrorsTotal.WithLabelValues(dataType, op).Inc()
	log.WithError(err).WithFields(log.Fields{
		"data_type": dataType,
		"op":        op,
	}).Error("Ошибка хранилища")
}

// Load читает документ dataType.
//
// Если документа нет — сохраняет def и возвращает его (первый запуск).
// Если чтение или разбор не удались — возвращает def, ничего не записывая.
func Load[T any](ctx context.Context, p *Persister, dataType string, def T) T {
	opCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	raw, err := p.store.Load(opCtx, dataType)
	switch {
	case errors.Is(err, common.ErrNotFound):
		log.WithField("data_type", dataType).Info("Документ не найден, записываем значение по умолчанию")
		p.Save(ctx, dataType, def)
		return def
	case err != nil:
		p.fail(dataType, "load", err)
		return def
	}

	var v T
	if err := codec.Unmarshal(raw, &v); err != nil {
		p.fail(dataType, "decode", err)
		return def
	}
	return v
}
