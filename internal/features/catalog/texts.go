package catalog

// Texts — тексты ответов для категории.
type Texts struct {
	ListHeader   string
	ItemIcon     string
	TotalFmt     string
	Empty        string
	NoneToRemove string
	NoneToMove   string
	PickRemove   string
	PickMove     string
	DeletedFmt   string
	AddedFmt     string
	AskName      string
	// название, длина списка
	AskPositionFmt string
	// название, позиция
	MovedFmt string
}

var texts = map[Category]Texts{
	Movies: {
		ListHeader:     "🎬 ***قائمة الأفلام المتاحة***\n\n",
		ItemIcon:       "🎞️",
		TotalFmt:       "***المجموع: %d فيلم***",
		Empty:          "🚫 ***لا توجد أفلام متاحة حاليًا***",
		NoneToRemove:   "لا توجد أفلام لحذفها",
		NoneToMove:     "لا توجد أفلام لتحريكها",
		PickRemove:     "اختر الفيلم الذي تريد حذفه:",
		PickMove:       "اختر الفيلم الذي تريد تحريكه:",
		DeletedFmt:     "تم حذف الفيلم: %s",
		AddedFmt:       "✅ تم إضافة الفيلم: %s",
		AskName:        "اكتب اسم الفيلم الجديد:",
		AskPositionFmt: "اكتب الموضع الجديد للفيلم '%s' (من 1 إلى %d):",
		MovedFmt:       "✅ تم نقل الفيلم '%s' إلى الموضع %d",
	},
	Series: {
		ListHeader:     "📺 ***قائمة المسلسلات المتاحة***\n\n",
		ItemIcon:       "📽️",
		TotalFmt:       "***المجموع: %d مسلسل***",
		Empty:          "🚫 ***لا توجد مسلسلات متاحة حاليًا***",
		NoneToRemove:   "لا توجد مسلسلات لحذفها",
		NoneToMove:     "لا توجد مسلسلات لتحريكها",
		PickRemove:     "اختر المسلسل الذي تريد حذفه:",
		PickMove:       "اختر المسلسل الذي تريد تحريكه:",
		DeletedFmt:     "تم حذف المسلسل: %s",
		AddedFmt:       "✅ تم إضافة المسلسل: %s",
		AskName:        "اكتب اسم المسلسل الجديد:",
		AskPositionFmt: "اكتب الموضع الجديد للمسلسل '%s' (من 1 إلى %d):",
		MovedFmt:       "✅ تم نقل المسلسل '%s' إلى الموضع %d",
	},
}

// TextsFor возвращает тексты категории.
func TextsFor(cat Category) Texts {
	return texts[cat]
}

// Тексты меню /add, /remove, /move
const (
	addMenuText    = "ماذا تريد أن تضيف؟"
	removeMenuText = "ماذا تريد أن تحذف؟"
	moveMenuText   = "ماذا تريد أن تحرك؟"
)
