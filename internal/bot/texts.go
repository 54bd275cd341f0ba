package bot

const (
	welcomeFmt = "مرحبًا %s!\n\n" +
		"هذا هو موفيك بوت حيث يمكنك معرفة الأفلام والمسلسلات المتاحة وحالة الموقع الحالية.\n\n" +
		"رمز الدعوة الخاص بك هو: %s\n\n" +
		"استخدم الأزرار أدناه أو الأوامر النصية لاستكشاف المحتوى."

	unknownCommandText = "عذرًا، لم أفهم هذا الأمر. استخدم /help لمعرفة الأوامر المتاحة."

	helpText = "الأوامر المتاحة:\n" +
		"/start - بدء المحادثة وعرض الأزرار\n" +
		"/movies - عرض قائمة الأفلام المتاحة\n" +
		"/series - عرض قائمة المسلسلات المتاحة\n" +
		"/status - التحقق من حالة موقع كابتن م\n" +
		"/invite - عرض رمز الدعوة الحالي\n" +
		"/ticket - إرسال تذكرة إلى الإدارة\n" +
		"/cancel - إلغاء العملية الجارية\n" +
		"/help - عرض هذه الرسالة\n" +
		"\nأوامر الإدارة:\n" +
		"/ban <رقم المستخدم> - حظر مستخدم من استخدام البوت\n" +
		"/block <رقم المستخدم> - منع مستخدم مؤقتًا وإعلامه\n" +
		"/flag <رقم المستخدم> - وضع علامة على مستخدم كمشتبه به\n" +
		"/change_invite <رمز> - تغيير رمز الدعوة\n" +
		"/toggle <أمر> - تفعيل/تعطيل الأوامر (movies, series, status, invite, help)\n" +
		"/add - إضافة فيلم أو مسلسل جديد\n" +
		"/remove - حذف فيلم أو مسلسل\n" +
		"/move - تحريك فيلم أو مسلسل إلى موضع جديد\n" +
		"/site - تحكم في حالة الموقع (ON/OFF)\n" +
		"/tickets - عرض جميع التذاكر\n" +
		"/ticket_users - المستخدمون الذين أرسلوا تذاكر\n" +
		"/pending_tickets - عدد التذاكر المفتوحة\n"
)
