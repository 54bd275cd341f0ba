// Package catalog — списки фильмов и сериалов, которые бот показывает пользователям.
// Порядок важен: позиция в списке и есть идентификатор элемента.
package catalog

import (
	"movik.bot/telegram-bot/internal/common"
	"movik.bot/telegram-bot/internal/storage"
)

// Category — категория каталога. Значение совпадает с типом данных в хранилище.
type Category string

const (
	Movies Category = storage.TypeMovies
	Series Category = storage.TypeSeries
)

// Categories — все категории в порядке показа.
var Categories = []Category{Movies, Series}

// Token — имя категории в callback-данных кнопок (add_movie, del_series_3, ...).
func (c Category) Token() string {
	if c == Movies {
		return "movie"
	}
	return "series"
}

// ParseToken разбирает имя категории из callback-данных.
func ParseToken(token string) (Category, error) {
	switch token {
	case "movie", "movies":
		return Movies, nil
	case "series":
		return Series, nil
	}
	return "", common.ErrUnknownCatalog
}

func (c Category) valid() bool {
	return c == Movies || c == Series
}
