// Package settings — настройки, которые админ меняет на лету:
// включение команд, код приглашения и ручной выключатель сайта.
package settings

// CommandNames — команды, которые можно выключать, в порядке показа.
var CommandNames = []string{"movies", "series", "status", "invite", "help"}

// Toggle — состояние одной команды.
type Toggle struct {
	Name    string
	Enabled bool
}

// Тексты ответов
const (
	DisabledText = "هذا الأمر معطل حاليًا من قبل الإدارة."

	toggleHeader      = "حالة الأوامر الحالية:\n\n"
	toggleFooter      = "\nلتفعيل/تعطيل أمر: /toggle <اسم الأمر>"
	toggleDoneFmt     = "تم %s الأمر /%s"
	toggleUnknownText = "أمر غير صحيح. الأوامر المتاحة: movies, series, status, invite, help"
	enabledWord       = "مفعل"
	disabledWord      = "معطل"

	inviteCurrentFmt = "رمز الدعوة الحالي هو: %s"
	inviteUpdatedFmt = "تم تحديث رمز الدعوة إلى: %s"
	inviteAskText    = "اكتب رمز الدعوة الجديد"

	siteMenuFmt = "حالة الموقع الحالية: **%s**\n\nاختر الحالة الجديدة:"
	siteOnWord  = "تشغيل"
	siteOffWord = "إيقاف"
	siteOnText  = "✅ تم تفعيل الموقع - سيظهر كمعتاد عند فحص حالة الموقع"
	siteOffText = "❌ تم إيقاف الموقع - سيظهر كمعطل عند فحص حالة الموقع"
)

func stateWord(enabled bool) string {
	if enabled {
		return enabledWord
	}
	return disabledWord
}
