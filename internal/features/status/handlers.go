package status

import (
	"context"

	"movik.bot/telegram-bot/internal/bot/reply"
)

const (
	upText   = "الموقع يعمل بشكل طبيعي حاليًا."
	downText = "الموقع تحت الصيانة أو غير متاح في الوقت الحالي."
)

// Handler — /status и кнопка "status".
type Handler struct {
	service *Service
	bot     reply.Sender
}

func NewHandler(service *Service, bot reply.Sender) *Handler {
	return &Handler{service: service, bot: bot}
}

func (h *Handler) HandleStatus(ctx context.Context, chatID int64) {
	reply.Text(h.bot, chatID, Text(h.service.Check(ctx)))
}

// Text — ответ пользователю по результату проверки.
func Text(up bool) string {
	if up {
		return upText
	}
	return downText
}
