// Package admin — service.go содержит state-машину ожиданий ввода.
//
// Два независимых хранилища, по одной записи на пользователя:
//   - states: чего ждём от админа (последняя запись побеждает)
//   - awaiting: какой тикет пишет пользователь
//
// Ожидание тикета проверяется первым, даже для админов.
package admin

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"movik.bot/telegram-bot/internal/common"
	"movik.bot/telegram-bot/internal/features/catalog"
	"movik.bot/telegram-bot/internal/features/moderation"
	"movik.bot/telegram-bot/internal/features/settings"
	"movik.bot/telegram-bot/internal/features/tickets"
	"movik.bot/telegram-bot/internal/metrics"
)

// Service управляет ожиданиями ввода и применяет введённый текст.
type Service struct {
	catalog    *catalog.Service
	moderation *moderation.Service
	settings   *settings.Service
	tickets    *tickets.Service

	ttl time.Duration
	now func() time.Time

	statesMu sync.Mutex
	states   map[int64]*AdminState

	awaitingMu sync.Mutex
	awaiting   map[int64]tickets.Category

	// Один ввод применяется целиком, прежде чем начнётся следующий.
	consumeMu sync.Mutex
}

// NewService создаёт сервис. ttl = 0 — ожидания не истекают.
func NewService(
	catalogSvc *catalog.Service,
	moderationSvc *moderation.Service,
	settingsSvc *settings.Service,
	ticketsSvc *tickets.Service,
	ttl time.Duration,
) *Service {
	return &Service{
		catalog:    catalogSvc,
		moderation: moderationSvc,
		settings:   settingsSvc,
		tickets:    ticketsSvc,
		ttl:        ttl,
		now:        time.Now,
		states:     make(map[int64]*AdminState),
		awaiting:   make(map[int64]tickets.Category),
	}
}

// --- Ожидания админа ---

// SetState запоминает, чего ждём от админа. Прежнее ожидание затирается.
func (s *Service) SetState(adminID int64, kind PendingKind, move *MoveContext) {
	s.statesMu.Lock()
	defer s.statesMu.Unlock()

	state := &AdminState{Kind: kind, Move: move}
	if s.ttl > 0 {
		state.ExpiresAt = s.now().Add(s.ttl)
	}
	s.states[adminID] = state
	metrics.PendingInputs.WithLabelValues("admin").Set(float64(len(s.states)))

	log.WithFields(log.Fields{
		"admin_id": adminID,
		"pending":  kind,
	}).Debug("Ожидаем ввод от админа")
}

// GetState возвращает текущее ожидание или nil. Истёкшее ожидание удаляется.
func (s *Service) GetState(adminID int64) *AdminState {
	s.statesMu.Lock()
	defer s.statesMu.Unlock()

	state, ok := s.states[adminID]
	if !ok {
		return nil
	}
	if state.expired(s.now()) {
		delete(s.states, adminID)
		metrics.PendingInputs.WithLabelValues("admin").Set(float64(len(s.states)))
		return nil
	}
	cp := *state
	return &cp
}

// ClearState сбрасывает ожидание вместе с контекстом переноса.
func (s *Service) ClearState(adminID int64) bool {
	s.statesMu.Lock()
	defer s.statesMu.Unlock()

	_, ok := s.states[adminID]
	delete(s.states, adminID)
	metrics.PendingInputs.WithLabelValues("admin").Set(float64(len(s.states)))
	return ok
}

// PromptModeration — ждём id для /ban, /block, /flag.
func (s *Service) PromptModeration(adminID int64, a moderation.Action) {
	s.SetState(adminID, kindForAction(a), nil)
}

// PromptInvite — ждём новый код для /change_invite.
func (s *Service) PromptInvite(adminID int64) {
	s.SetState(adminID, PendingInvite, nil)
}

// BeginAdd — кнопки add_movie / add_series.
func (s *Service) BeginAdd(adminID int64, cat catalog.Category) {
	s.SetState(adminID, kindForAdd(cat), nil)
}

// BeginMove — кнопка move_*_<i>: запоминаем элемент и ждём позицию.
// Возвращает название и длину списка. Устаревший индекс — ErrItemNotFound, ожидание не ставится.
func (s *Service) BeginMove(adminID int64, cat catalog.Category, idx int) (string, int, error) {
	name, length, err := s.catalog.ItemAt(cat, idx)
	if err != nil {
		return "", length, err
	}
	s.SetState(adminID, PendingMovePosition, &MoveContext{Category: cat, Index: idx, Name: name})
	return name, length, nil
}

// --- Ожидания тикетов ---

// AwaitTicket — пользователь выбрал тип тикета, ждём текст.
func (s *Service) AwaitTicket(userID int64, cat tickets.Category) {
	s.awaitingMu.Lock()
	defer s.awaitingMu.Unlock()
	s.awaiting[userID] = cat
	metrics.PendingInputs.WithLabelValues("ticket").Set(float64(len(s.awaiting)))
}

func (s *Service) takeTicket(userID int64) (tickets.Category, bool) {
	s.awaitingMu.Lock()
	defer s.awaitingMu.Unlock()

	cat, ok := s.awaiting[userID]
	if ok {
		delete(s.awaiting, userID)
		metrics.PendingInputs.WithLabelValues("ticket").Set(float64(len(s.awaiting)))
	}
	return cat, ok
}

// CancelTicket сбрасывает ожидание текста тикета.
func (s *Service) CancelTicket(userID int64) bool {
	_, ok := s.takeTicket(userID)
	return ok
}

// --- Применение ввода ---

// ConsumeText применяет текст к ожиданию пользователя.
//
// Возвращает (nil, nil), если от пользователя ничего не ждали.
// Ошибки ввода (не число, позиция вне диапазона, пустой текст) оставляют
// ожидание на месте (Result.Retained), успех и окончательные ошибки его снимают.
func (s *Service) ConsumeText(ctx context.Context, actor Actor, text string) (*Result, error) {
	s.consumeMu.Lock()
	defer s.consumeMu.Unlock()

	if cat, ok := s.takeTicket(actor.ID); ok {
		return s.consumeTicket(ctx, actor, cat, text)
	}

	if !actor.IsAdmin {
		return nil, nil
	}
	state := s.GetState(actor.ID)
	if state == nil {
		return nil, nil
	}

	res, err := s.apply(ctx, actor.ID, state, text)
	if retained(err) {
		res.Retained = true
	} else {
		s.ClearState(actor.ID)
	}

	entry := log.WithFields(log.Fields{
		"admin_id": actor.ID,
		"pending":  state.Kind,
	})
	if err != nil {
		entry.WithError(err).Info("Ввод админа отклонён")
	} else {
		entry.Info("Ввод админа применён")
	}
	return res, err
}

func (s *Service) consumeTicket(ctx context.Context, actor Actor, cat tickets.Category, text string) (*Result, error) {
	res := &Result{Kind: PendingTicketBody}

	t, err := s.tickets.Create(ctx, tickets.Requester{ID: actor.ID, FirstName: actor.FirstName}, cat, text)
	if err != nil {
		if retained(err) {
			s.AwaitTicket(actor.ID, cat)
			res.Retained = true
		}
		return res, err
	}
	res.Ticket = &t
	return res, nil
}

func (s *Service) apply(ctx context.Context, adminID int64, state *AdminState, text string) (*Result, error) {
	res := &Result{Kind: state.Kind}

	switch state.Kind {
	case PendingBan, PendingBlock, PendingFlag:
		target, err := common.ParseNumber(text)
		if err != nil {
			return res, err
		}
		res.Target = target
		a, _ := actionForKind(state.Kind)
		return res, s.moderation.Apply(ctx, a, target)

	case PendingInvite:
		code, err := s.settings.SetInvite(ctx, text)
		res.Value = code
		return res, err

	case PendingAddMovie, PendingAddSeries:
		res.Category = catalog.Movies
		if state.Kind == PendingAddSeries {
			res.Category = catalog.Series
		}
		title, err := s.catalog.Append(ctx, res.Category, text)
		res.Value = title
		return res, err

	case PendingMovePosition:
		if state.Move == nil {
			return res, common.ErrStaleItem
		}
		mv := state.Move
		res.Category = mv.Category
		res.Value = mv.Name

		pos, err := common.ParseNumber(text)
		if err != nil {
			res.Length = s.catalog.Len(mv.Category)
			return res, err
		}
		if pos > math.MaxInt32 {
			pos = math.MaxInt32
		}
		res.Position = int(pos)
		res.Length, err = s.catalog.MoveItem(ctx, mv.Category, mv.Index, mv.Name, res.Position)
		return res, err

	case PendingNone, PendingTicketBody:
	}

	log.WithFields(log.Fields{
		"admin_id": adminID,
		"pending":  state.Kind,
	}).Warn("Неожиданный тип ожидания, сбрасываем")
	return res, common.ErrUnknownCommand
}

// retained — ошибки, после которых ожидание остаётся.
func retained(err error) bool {
	return errors.Is(err, common.ErrInvalidNumber) ||
		errors.Is(err, common.ErrPositionOutOfRange) ||
		errors.Is(err, common.ErrEmptyInput)
}
