// Package common — errors.go определяет пользовательские ошибки,
// которые используются во всех модулях бота.
// Обработчики различают их через errors.Is и отправляют пользователю
// понятные сообщения.
package common

import "errors"

// Ошибки хранилища
var (
	// ErrNotFound — запись данного типа ещё не сохранялась
	ErrNotFound = errors.New("запись не найдена")
)

// Ошибки ввода
var (
	// ErrInvalidNumber — ожидалось неотрицательное целое число
	ErrInvalidNumber = errors.New("некорректное число")
	// ErrPositionOutOfRange — позиция вне диапазона [1, длина]
	ErrPositionOutOfRange = errors.New("позиция вне диапазона")
	// ErrEmptyInput — пустой текст там, где нужен непустой
	ErrEmptyInput = errors.New("пустой ввод")
)

// Ошибки каталога
var (
	// ErrItemNotFound — индекс не указывает на элемент каталога
	ErrItemNotFound = errors.New("элемент каталога не найден")
	// ErrStaleItem — элемент сдвинулся или удалён, пока админ выбирал позицию
	ErrStaleItem = errors.New("элемент каталога изменился")
	// ErrUnknownCatalog — неизвестная категория каталога
	ErrUnknownCatalog = errors.New("неизвестная категория каталога")
)

// Ошибки модерации и админки
var (
	// ErrAlreadyBanned — нельзя заблокировать уже забаненного пользователя
	ErrAlreadyBanned = errors.New("пользователь уже забанен")
	// ErrUnknownCommand — переключатель для неизвестной команды
	ErrUnknownCommand = errors.New("неизвестная команда")
)

// Ошибки тикетов
var (
	// ErrTicketNotFound — открытый тикет с таким id не найден
	ErrTicketNotFound = errors.New("тикет не найден")
	// ErrUnknownCategory — неизвестная категория тикета
	ErrUnknownCategory = errors.New("неизвестная категория тикета")
)
