// Package common содержит общие утилиты, используемые во всём проекте.
// Сюда входят: разбор чисел из текста пользователя и работа с временем.
package common

import (
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// TimestampLayout — формат времени тикетов ("2025-08-14 21:05").
const TimestampLayout = "2006-01-02 15:04"

// LoadLocation загружает часовой пояс по имени.
// Если tzdata недоступна — используем UTC, а не падаем.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.WithError(err).WithField("timezone", name).Warn("Не удалось загрузить часовой пояс, используем UTC")
		return time.UTC
	}
	return loc
}

// FormatTimestamp форматирует время в часовом поясе loc.
func FormatTimestamp(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(TimestampLayout)
}

// ParseNumber разбирает неотрицательное целое число.
//
// Принимаются ASCII-цифры и арабско-индийские цифры (٠-٩, ۰-۹),
// пробелы по краям обрезаются. Знаки, пробелы внутри и пустая строка
// дают ErrInvalidNumber.
//
// Примеры:
//
//	ParseNumber("42")   → 42
//	ParseNumber("٤٢")   → 42
//	ParseNumber("abc")  → ErrInvalidNumber
//	ParseNumber("-1")   → ErrInvalidNumber
func ParseNumber(text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrInvalidNumber
	}

	var sb strings.Builder
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r >= '٠' && r <= '٩':
			sb.WriteRune('0' + (r - '٠'))
		case r >= '۰' && r <= '۹':
			sb.WriteRune('0' + (r - '۰'))
		default:
			return 0, ErrInvalidNumber
		}
	}

	n, err := strconv.ParseInt(sb.String(), 10, 64)
	if err != nil {
		// переполнение int64
		return 0, ErrInvalidNumber
	}
	return n, nil
}
