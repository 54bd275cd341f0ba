// Package tickets — обращения пользователей к администрации.
package tickets

import (
	"fmt"

	"movik.bot/telegram-bot/internal/common"
)

// Category — тип обращения.
type Category string

const (
	CategorySuggestion Category = "suggestion"
	CategoryReport     Category = "report"
	CategoryOwner      Category = "owner"
)

// Categories в порядке кнопок меню /ticket.
var Categories = []Category{CategorySuggestion, CategoryReport, CategoryOwner}

// ParseCategory разбирает токен из callback "ticket_<категория>".
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("ticket category %q: %w", s, common.ErrUnknownCategory)
}

// Ticket — одно обращение. Формат JSON совместим с уже сохранёнными данными.
type Ticket struct {
	ID        string   `json:"id"`
	UserID    int64    `json:"user_id"`
	UserLink  string   `json:"user_link"`
	Category  Category `json:"category"`
	Message   string   `json:"message"`
	Timestamp string   `json:"timestamp"`
	Closed    bool     `json:"closed"`
}

// Requester — автор обращения.
type Requester struct {
	ID        int64
	FirstName string
}

// Link — кликабельная ссылка на пользователя в Markdown.
func (r Requester) Link() string {
	return fmt.Sprintf("[%s](tg://user?id=%d)", r.FirstName, r.ID)
}

// Тексты ответов
const (
	menuText        = "اختر نوع التذكرة التي تريد إرسالها:"
	AskBodyText     = "✉️ يرجى كتابة رسالتك الآن:"
	sentText        = "✅ تم إرسال تذكرتك بنجاح! سنتواصل معك قريبًا."
	newTicketFmt    = "🎟️ **تذكرة جديدة**\n\n**النوع:** %s\n**المرسل:** %s\n**الوقت:** %s\n**الرسالة:**\n%s"
	closeButton     = "🔒 إغلاق التذكرة"
	closedText      = "🔒 تم إغلاق التذكرة."
	closedNotice    = "✅ تم إغلاق تذكرتك من قبل المسؤول."
	noTicketsText   = "لا توجد تذاكر حالياً."
	listHeader      = "📄 **قائمة التذاكر**\n\n"
	openWord        = "🕒 مفتوحة"
	closedWord      = "✅ مغلقة"
	purgeButton     = "🧹 حذف التذاكر المغلقة"
	purgedText      = "🧹 تم حذف التذاكر المغلقة."
	requestersHead  = "👥 **المستخدمون الذين أرسلوا تذاكر:**\n\n"
	noneOpenText    = "✅ لا توجد تذاكر بحاجة إلى رد."
	pendingCountFmt = "📬 يوجد %d تذكرة بانتظار الرد."
)

var categoryButtons = map[Category]string{
	CategorySuggestion: "💡 اقتراح",
	CategoryReport:     "⚠️ بلاغ",
	CategoryOwner:      "📩 تحدث مع المالك",
}
