// Package admin — диалог с админом: бот ждёт следующее текстовое сообщение
// (id пользователя, новый код, название, позицию) и применяет его.
// Здесь же живёт ожидание текста тикета от обычных пользователей.
package admin

import (
	"fmt"
	"time"

	"movik.bot/telegram-bot/internal/features/catalog"
	"movik.bot/telegram-bot/internal/features/moderation"
	"movik.bot/telegram-bot/internal/features/tickets"
)

// PendingKind — чего ждёт бот от пользователя.
type PendingKind int

const (
	PendingNone PendingKind = iota
	PendingBan
	PendingBlock
	PendingFlag
	PendingInvite
	PendingAddMovie
	PendingAddSeries
	PendingMovePosition
	PendingTicketBody
)

var kindNames = map[PendingKind]string{
	PendingNone:         "none",
	PendingBan:          "ban",
	PendingBlock:        "block",
	PendingFlag:         "flag",
	PendingInvite:       "change_invite",
	PendingAddMovie:     "add_movie",
	PendingAddSeries:    "add_series",
	PendingMovePosition: "move_position",
	PendingTicketBody:   "ticket_body",
}

func (k PendingKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("pending(%d)", int(k))
}

// kindForAction — ожидание id для действия модерации.
func kindForAction(a moderation.Action) PendingKind {
	switch a {
	case moderation.ActionBlock:
		return PendingBlock
	case moderation.ActionFlag:
		return PendingFlag
	default:
		return PendingBan
	}
}

// actionForKind — обратное отображение. ok=false для не-модерационных ожиданий.
func actionForKind(k PendingKind) (moderation.Action, bool) {
	switch k {
	case PendingBan:
		return moderation.ActionBan, true
	case PendingBlock:
		return moderation.ActionBlock, true
	case PendingFlag:
		return moderation.ActionFlag, true
	}
	return 0, false
}

// kindForAdd — ожидание названия для категории.
func kindForAdd(cat catalog.Category) PendingKind {
	if cat == catalog.Series {
		return PendingAddSeries
	}
	return PendingAddMovie
}

// MoveContext — что админ выбрал для переноса: индекс и название на момент выбора.
type MoveContext struct {
	Category catalog.Category
	Index    int
	Name     string
}

// AdminState — ожидание ввода от админа.
// ExpiresAt нулевой, если ожидание бессрочное.
type AdminState struct {
	Kind      PendingKind
	Move      *MoveContext
	ExpiresAt time.Time
}

func (s *AdminState) expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Actor — автор входящего сообщения.
type Actor struct {
	ID        int64
	FirstName string
	IsAdmin   bool
}

// Result — что было сделано с введённым текстом.
// При ошибке заполнены Kind и поля, нужные для текста ошибки.
type Result struct {
	Kind     PendingKind
	Target   int64            // ban/block/flag
	Value    string           // код приглашения, добавленное или перенесённое название
	Category catalog.Category // add/move
	Position int              // move: новая позиция с единицы
	Length   int              // move: длина списка
	Ticket   *tickets.Ticket
	// Retained — ожидание сохранено, можно прислать текст ещё раз.
	Retained bool
}

// Тексты ответов
const (
	moveInvalidText   = "يرجى إدخال رقم صحيح"
	moveRangeFmt      = "موضع غير صحيح. يجب أن يكون بين 1 و %d"
	moveStaleText     = "خطأ: لم يتم العثور على بيانات العملية"
	emptyNameText     = "الاسم لا يمكن أن يكون فارغًا."
	emptyInviteText   = "رمز الدعوة لا يمكن أن يكون فارغًا."
	cancelledText     = "تم إلغاء العملية."
	nothingCancelText = "لا توجد عملية جارية."
)
