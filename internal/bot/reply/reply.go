// Package reply — отправка сообщений в Telegram из обработчиков.
// Ошибки отправки логируются и не возвращаются: пользователь
// либо получит ответ, либо нет, обработчик всё равно завершится.
package reply

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// Sender — часть *tgbotapi.BotAPI, которая нужна обработчикам.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Text отправляет простой текст.
func Text(s Sender, chatID int64, text string) {
	send(s, tgbotapi.NewMessage(chatID, text))
}

// Keyboard отправляет текст с inline-клавиатурой.
func Keyboard(s Sender, chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	send(s, msg)
}

// Markdown отправляет текст с разметкой Markdown.
// Если Telegram не смог разобрать разметку (например, "_" в названии),
// отправляем тот же текст без неё.
func Markdown(s Sender, chatID int64, text string, kb *tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if kb != nil {
		msg.ReplyMarkup = *kb
	}
	_, err := s.Send(msg)
	if err == nil {
		return nil
	}
	log.WithError(err).WithField("chat_id", chatID).Debug("Markdown не принят, отправляем без разметки")

	msg.ParseMode = ""
	if _, err = s.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Warn("Ошибка отправки сообщения")
	}
	return err
}

// Edit заменяет текст сообщения (и убирает клавиатуру).
func Edit(s Sender, chatID int64, messageID int, text string) error {
	_, err := s.Send(tgbotapi.NewEditMessageText(chatID, messageID, text))
	return err
}

// AnswerCallback убирает "часики" с нажатой кнопки.
func AnswerCallback(s Sender, callbackID string) {
	if _, err := s.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		log.WithError(err).Debug("Не удалось ответить на callback")
	}
}

func send(s Sender, c tgbotapi.MessageConfig) {
	if _, err := s.Send(c); err != nil {
		log.WithError(err).WithField("chat_id", c.ChatID).Error("Ошибка отправки сообщения")
	}
}
