package knowledge

import "github.com/noorlabs/murshid/internal/models"

var generalTable = []models.GeneralEntry{
	{
		ID:          "general-001",
		Title:       "The Five Pillars of Islam",
		TitleArabic: "أركان الإسلام الخمسة",
		Answer:      "أركان الإسلام خمسة: (1) شهادة أن لا إله إلا الله وأن محمداً رسول الله (النطق بكلمة التوحيد)، (2) إقام الصلاة (أداء الصلوات الخمس المفروضة في أوقاتها)، (3) إيتاء الزكاة (إخراج الزكاة المفروضة من المال)، (4) صوم رمضان (الإمساك عن الطعام والشراب والشهوات من الفجر إلى الغروب)، (5) حج البيت الحرام (قصد الكعبة لأداء مناسك الحج لمن استطاع إليه سبيلاً). هذه الأركان الخمسة هي أساس الدين الإسلامي.",
		RelatedVerses: []string{
			"سورة آل عمران: 18-19", "سورة الحج: 27-28",
		},
		RelatedHadiths: []string{
			"بني الإسلام على خمس: شهادة أن لا إله إلا الله",
			"من شهد أن لا إله إلا الله وأن محمداً رسول الله حرم الله عليه النار",
		},
		SuggestedTopics: []string{"شروط الشهادة", "فضائل الصلاة", "شروط الزكاة", "فضائل الحج", "فضائل الصوم"},
		Difficulty:      "beginner",
		Keywords:        []string{"أركان", "إسلام", "شهادة", "صلاة", "زكاة", "صوم", "حج"},
	},
	{
		ID:          "general-002",
		Title:       "Articles of Faith in Islam",
		TitleArabic: "أركان الإيمان الستة",
		Answer:      "أركان الإيمان ستة: (1) الإيمان بالله وتوحيده وتنزيهه عن الشرك والعيوب، (2) الإيمان بملائكته الكرام المطهرين الذين لا يعصون الله ما أمرهم، (3) الإيمان بكتبه السماوية التي أنزلها على رسله (التوراة والإنجيل والزبور والقرآن)، (4) الإيمان برسله ورسالاتهم من آدم إلى محمد صلى الله عليه وسلم، (5) الإيمان باليوم الآخر وما فيه من حساب وجزاء وجنة ونار، (6) الإيمان بالقدر خيره وشره وحلوه ومره من عند الله. هذه الأركان ستة تشكل العقيدة الإسلامية الصحيحة.",
		RelatedVerses: []string{
			"سورة النساء: 136", "سورة البقرة: 177",
		},
		RelatedHadiths: []string{
			"جبريل أتاك يعلمك دينك",
			"الإيمان أن تؤمن بالله وملائكته وكتبه",
		},
		SuggestedTopics: []string{"توحيد الله", "صفات الملائكة", "الكتب السماوية", "الأنبياء والرسل", "اليوم الآخر", "القضاء والقدر"},
		Difficulty:      "intermediate",
		Keywords:        []string{"إيمان", "أركان", "توحيد", "ملائكة", "كتب", "رسل", "يوم آخر", "قدر"},
	},
	{
		ID:          "general-003",
		Title:       "The Best Deeds in Islam",
		TitleArabic: "أفضل الأعمال في الإسلام",
		Answer:      "أفضل الأعمال في الإسلام متعددة: (1) الصلاة في وقتها وخاصة الصلوات المفروضة والمحافظة على تكبيرة الإحرام، (2) بر الوالدين والإحسان إليهما، (3) الجهاد في سبيل الله بالنفس والمال، (4) التقوى وخشية الله في السر والعلن، (5) الحج والعمرة إلى بيت الله الحرام، (6) الصيام خاصة صيام رمضان وشهر محرم، (7) تعليم العلم الشرعي والدعوة إلى الله، (8) الصدقة والإنفاق في سبيل الله، (9) صلة الرحم والعدل بين الأهل، (10) الدعاء والاستغفار والتوبة والإنابة إلى الله. والعمل الأفضل يختلف بحسب حال الإنسان وقدرته وحاجة الوقت.",
		RelatedVerses: []string{
			"سورة التوبة: 20", "سورة النساء: 97", "سورة الإسراء: 23",
		},
		RelatedHadiths: []string{
			"أفضل الأعمال أحبها إلى الله",
			"أكمل المؤمنين إيماناً أحسنهم خلقاً",
		},
		SuggestedTopics: []string{"الصلاة", "بر الوالدين", "الجهاد", "التقوى", "الحج", "الصدقة", "العلم الشرعي"},
		Difficulty:      "intermediate",
		Keywords:        []string{"أفضل", "أعمال", "صلاة", "بر", "والدين", "جهاد", "حج", "صدقة"},
	},
}
