package knowledge

import "github.com/noorlabs/murshid/internal/models"

var hadithTable = []models.HadithEntry{
	{
		ID:                   "hadith-001",
		Text:                 "إن الله تعالى طيب لا يقبل إلا طيباً، وإن الله أمر المؤمنين بما أمر به المرسلين فقال: (يَا أَيُّهَا الرُّسُلُ كُلُوا مِنَ الطَّيِّبَاتِ وَاعْمَلُوا صَالِحًا)، وقال: (يَا أَيُّهَا الَّذِينَ آمَنُوا كُلُوا مِن طَيِّبَاتِ مَا رَزَقْنَاكُمْ)",
		Source:               "رواه مسلم",
		Narrator:             "أبو هريرة رضي الله عنه",
		Degree:               models.DegreeSahih,
		Topic:                "التجارة والمعاملات - الحلال والحرام",
		Meaning:              "الله طيب ولا يقبل إلا ما هو طيب من الأعمال والأقوال والمعاملات",
		PracticalApplication: "وجوب الاحتراز من الشبهات في الكسب والرزق والاقتصار على الحلال الطيب",
		RelatedVerses:        []string{"سورة المؤمنون: 51", "سورة البقرة: 172"},
		RelatedAhadith:       []string{"الحلال بين والحرام بين", "من اتقى الشبهات فقد استبرأ لدينه"},
	},
	{
		ID:                   "hadith-002",
		Text:                 "من قام رمضان إيماناً واحتساباً، غفر له ما تقدم من ذنبه",
		Source:               "رواه البخاري ومسلم",
		Narrator:             "أبو هريرة رضي الله عنه",
		Degree:               models.DegreeSahih,
		Topic:                "الصيام وقيام الليل",
		Meaning:              "من قام ليالي شهر رمضان بنية إيمانية خالصة لله وطلباً لثوابه غفر الله ذنوبه السابقة",
		PracticalApplication: "الاستفادة من شهر رمضان بالقيام والصيام مع النية الخالصة",
		RelatedVerses:        []string{"سورة القدر: 1-5"},
		RelatedAhadith:       []string{"من صام رمضان إيماناً واحتساباً غفر له ما تقدم من ذنبه"},
	},
	{
		ID:                   "hadith-003",
		Text:                 "بر الوالدين عماد الدين. من أطاع والديه في رضاهما، فقد أطاع الله، ومن أغضبهما فقد أغضب الله",
		Source:               "بتصرف من الأحاديث الصحيحة",
		Narrator:             "جماهير الصحابة",
		Degree:               models.DegreeHasan,
		Topic:                "بر الوالدين والعائلة",
		Meaning:              "طاعة الوالدين وإحسان معاملتهما من أعظم العبادات والطاعات",
		PracticalApplication: "العناية بالوالدين والإحسان إليهما بالقول والفعل وعدم رفع الصوت عليهما",
		RelatedVerses:        []string{"سورة الإسراء: 23-24", "سورة لقمان: 14-15"},
		RelatedAhadith:       []string{"الجنة تحت أقدام الأمهات", "رضا الرب في رضا الوالد"},
	},
	{
		ID:                   "hadith-004",
		Text:                 "أحب الأعمال إلى الله عز وجل: الصلاة لوقتها، ثم بر الوالدين، ثم الجهاد في سبيل الله",
		Source:               "رواه البخاري",
		Narrator:             "عبدالله بن مسعود رضي الله عنه",
		Degree:               models.DegreeSahih,
		Topic:                "فضائل الأعمال",
		Meaning:              "أفضل الأعمال بعد الإيمان هي المحافظة على الصلاة ثم طاعة الوالدين ثم الجهاد",
		PracticalApplication: "الاهتمام بأداء الصلاة بأوقاتها وبر الوالدين والاستعداد للجهاد في سبيل الله",
		RelatedVerses:        []string{"سورة الإسراء: 23-24"},
		RelatedAhadith:       []string{"الجنة تحت أقدام الأمهات"},
	},
	{
		ID:                   "hadith-005",
		Text:                 "من نام لم يرد ليل أو قال لم يرد نوماً إلا وكتب الله له أجر قيام ليلة كاملة",
		Source:               "سنن الترمذي وغيره",
		Narrator:             "أبو هريرة رضي الله عنه",
		Degree:               models.DegreeHasan,
		Topic:                "قيام الليل والتهجد",
		Meaning:              "من نام بنية أن يقوم الليل ولكن غلبه النوم فيكتب الله له أجر قيام الليل",
		PracticalApplication: "النية الصالحة توجب الأجر حتى إن لم يتمكن العبد من العمل",
		RelatedVerses:        []string{"سورة المائدة: 45"},
		RelatedAhadith:       []string{"إنما الأعمال بالنيات"},
	},
}
