// Package replytest — записывающий reply.Sender для тестов обработчиков.
package replytest

import (
	"errors"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sent — одно отправленное сообщение.
type Sent struct {
	ChatID    int64
	MessageID int // для правок
	Text      string
	ParseMode string
	Keyboard  *tgbotapi.InlineKeyboardMarkup
	Edit      bool
}

// Sender запоминает всё, что отправили обработчики.
type Sender struct {
	mu        sync.Mutex
	sent      []Sent
	callbacks []string

	// FailMarkdown — отклонять сообщения с ParseMode (как Telegram при битой разметке).
	FailMarkdown bool
	// FailEdit — отклонять правки сообщений.
	FailEdit bool
	// FailChats — чаты, отправка в которые падает.
	FailChats map[int64]bool
}

func New() *Sender {
	return &Sender{FailChats: make(map[int64]bool)}
}

var errRejected = errors.New("rejected by fake sender")

func (s *Sender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch m := c.(type) {
	case tgbotapi.MessageConfig:
		if s.FailChats[m.ChatID] || (s.FailMarkdown && m.ParseMode != "") {
			return tgbotapi.Message{}, errRejected
		}
		rec := Sent{ChatID: m.ChatID, Text: m.Text, ParseMode: m.ParseMode}
		if kb, ok := m.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup); ok {
			rec.Keyboard = &kb
		}
		s.sent = append(s.sent, rec)
	case tgbotapi.EditMessageTextConfig:
		if s.FailEdit {
			return tgbotapi.Message{}, errRejected
		}
		s.sent = append(s.sent, Sent{ChatID: m.ChatID, MessageID: m.MessageID, Text: m.Text, Edit: true})
	default:
		return tgbotapi.Message{}, errRejected
	}
	return tgbotapi.Message{MessageID: len(s.sent)}, nil
}

func (s *Sender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cb, ok := c.(tgbotapi.CallbackConfig); ok {
		s.callbacks = append(s.callbacks, cb.CallbackQueryID)
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// Messages возвращает копию отправленных сообщений.
func (s *Sender) Messages() []Sent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Sent(nil), s.sent...)
}

// To возвращает сообщения в конкретный чат.
func (s *Sender) To(chatID int64) []Sent {
	var out []Sent
	for _, m := range s.Messages() {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	return out
}

// Last возвращает последнее сообщение (пустое, если ничего не отправлено).
func (s *Sender) Last() Sent {
	msgs := s.Messages()
	if len(msgs) == 0 {
		return Sent{}
	}
	return msgs[len(msgs)-1]
}

// AnsweredCallbacks — id callback-запросов, на которые ответили.
func (s *Sender) AnsweredCallbacks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.callbacks...)
}

// Reset очищает записанное.
func (s *Sender) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = nil
	s.callbacks = nil
}
