// Package middleware содержит промежуточные обработчики для логирования
// и восстановления после паники.
package middleware

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

const maxLoggedText = 50

// LogMessage логирует входящее сообщение.
// Записывает: trace_id, user_id, chat_id, username, текст (первые 50 символов).
func LogMessage(message *tgbotapi.Message, traceID string) {
	if message == nil {
		return
	}

	fields := log.Fields{
		"trace_id": traceID,
		"text":     Truncate(message.Text, maxLoggedText),
	}
	if message.Chat != nil {
		fields["chat_id"] = message.Chat.ID
	}
	if message.From != nil {
		fields["user_id"] = message.From.ID
		fields["username"] = message.From.UserName
	}
	log.WithFields(fields).Debug("Входящее сообщение")
}

// LogCallback логирует нажатие inline-кнопки.
func LogCallback(q *tgbotapi.CallbackQuery, traceID string) {
	if q == nil {
		return
	}

	fields := log.Fields{
		"trace_id": traceID,
		"data":     Truncate(q.Data, maxLoggedText),
	}
	if q.From != nil {
		fields["user_id"] = q.From.ID
		fields["username"] = q.From.UserName
	}
	if q.Message != nil && q.Message.Chat != nil {
		fields["chat_id"] = q.Message.Chat.ID
	}
	log.WithFields(fields).Debug("Нажата кнопка")
}

// Truncate обрезает текст до n символов (не байт), добавляя "...".
func Truncate(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}
