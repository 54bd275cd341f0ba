// Package moderation — реестр забаненных, заблокированных и помеченных пользователей.
//
//   - ban: бот молча игнорирует пользователя; бан снимает блок и пометку
//   - block: пользователь получает предупреждение вместо ответа
//   - flag: пометка для ручной проверки, на доступ не влияет
package moderation

import "fmt"

// Action — действие админа над пользователем.
type Action int

const (
	ActionBan Action = iota
	ActionBlock
	ActionFlag
)

func (a Action) String() string {
	switch a {
	case ActionBan:
		return "ban"
	case ActionBlock:
		return "block"
	case ActionFlag:
		return "flag"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Тексты ответов
const (
	askUserIDText     = "اكتب ID المستخدم"
	invalidNumberText = "رقم غير صحيح. يرجى إدخال رقم صحيح."
	alreadyBannedText = "هذا المستخدم محظور بالفعل."
	banDoneFmt        = "تم حظر المستخدم برقم %d من استخدام هذا البوت."
	blockDoneFmt      = "تم منع المستخدم برقم %d مؤقتًا من استخدام هذا البوت."
	flagDoneFmt       = "تم وضع علامة على المستخدم برقم %d كمشتبه به للمراجعة."

	// BlockedNoticeText получает заблокированный пользователь.
	BlockedNoticeText = "لقد تم حظرك مؤقتًا من استخدام هذا البوت. يرجى التواصل مع الإدارة."
	// AdminOnlyText получает не-админ на админской команде.
	AdminOnlyText = "هذا الأمر مخصص للمسؤولين فقط."
)

// DoneText — ответ админу после успешного действия.
func DoneText(a Action, userID int64) string {
	switch a {
	case ActionBlock:
		return fmt.Sprintf(blockDoneFmt, userID)
	case ActionFlag:
		return fmt.Sprintf(flagDoneFmt, userID)
	default:
		return fmt.Sprintf(banDoneFmt, userID)
	}
}
