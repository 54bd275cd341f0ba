// Package metrics содержит Prometheus-метрики бота.
// Все коллекторы регистрируются в init и безопасны для конкурентного использования.
// Метки ограничены заранее известными значениями, чтобы не раздувать кардинальность.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// UpdatesTotal — входящие апдейты по типу (message, callback, other).
	UpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_updates_total",
			Help: "Total number of Telegram updates received.",
		},
		[]string{"kind"},
	)

	// CommandsTotal — обработанные команды. Неизвестные команды идут с меткой "unknown".
	CommandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_commands_total",
			Help: "Total number of bot commands by name and outcome.",
		},
		[]string{"command", "outcome"},
	)

	// CallbacksTotal — нажатия inline-кнопок по действию (без индексов и id).
	CallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_callbacks_total",
			Help: "Total number of inline button presses by action.",
		},
		[]string{"action"},
	)

	// PersistErrorsTotal — ошибки записи/чтения хранилища.
	PersistErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_persist_errors_total",
			Help: "Total number of failed store operations by data type.",
		},
		[]string{"data_type", "op"},
	)

	// PanicsTotal — восстановленные паники в обработчиках.
	PanicsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bot_handler_panics_total",
			Help: "Total number of recovered handler panics.",
		},
	)

	// SiteReachable — результат последней проверки сайта (1 = доступен).
	SiteReachable = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "bot_site_reachable",
			Help: "Whether the last site probe succeeded (1) or not (0).",
		},
	)

	// SiteProbeDuration — длительность HTTP-проверки сайта.
	SiteProbeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bot_site_probe_duration_seconds",
			Help:    "Duration of site reachability probes in seconds.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// OpenTickets — количество открытых тикетов.
	OpenTickets = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "bot_open_tickets",
			Help: "Current number of open support tickets.",
		},
	)

	// PendingInputs — ожидания свободного текста (store = admin | ticket).
	PendingInputs = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bot_pending_inputs",
			Help: "Current number of identities awaiting a free-text reply.",
		},
		[]string{"store"},
	)
)

func init() {
	prometheus.MustRegister(
		UpdatesTotal,
		CommandsTotal,
		CallbacksTotal,
		PersistErrorsTotal,
		PanicsTotal,
		SiteReachable,
		SiteProbeDuration,
		OpenTickets,
		PendingInputs,
	)
}

// BoolToFloat переводит флаг в значение gauge.
func BoolToFloat(v bool) float64 {
	if v {
		return 1
	}
	return 0
}
