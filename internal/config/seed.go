package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Seed — значения, которыми заполняется пустое хранилище при первом запуске.
type Seed struct {
	InviteCode string   `yaml:"invite_code"`
	Movies     []string `yaml:"movies"`
	Series     []string `yaml:"series"`
}

// Каталог сайта на момент запуска бота
var (
	defaultMovies = []string{
		"أحمد و أحمد",
		"روكي الغلابة",
		"الشاطر",
		"في عز الظهر",
		"المشروع X",
		"ريستارت",
		"الصفا ثانوية بنات",
		"نجوم الساحل",
	}
	defaultSeries = []string{
		"لعبة الحبار",
	}
)

// DefaultSeed возвращает встроенный каталог и код приглашения.
func DefaultSeed(inviteCode string) *Seed {
	return &Seed{
		InviteCode: inviteCode,
		Movies:     append([]string(nil), defaultMovies...),
		Series:     append([]string(nil), defaultSeries...),
	}
}

// LoadSeed читает YAML-файл поверх встроенных значений.
// Ключи, которых нет в файле, остаются встроенными.
func LoadSeed(path, inviteCode string) (*Seed, error) {
	seed := DefaultSeed(inviteCode)
	if path == "" {
		return seed, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, seed); err != nil {
		return nil, fmt.Errorf("разбор %s: %w", path, err)
	}
	if seed.InviteCode == "" {
		seed.InviteCode = inviteCode
	}
	return seed, nil
}
