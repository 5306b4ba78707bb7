package knowledge

import "github.com/noorlabs/murshid/internal/models"

var fiqhTable = []models.FiqhEntry{
	{
		ID:          "fiqh-001",
		Title:       "Conditions of Prayer",
		TitleArabic: "شروط الصلاة",
		Category:    "Worship - Salat",
		Definition:  "الشروط التي يجب توفرها قبل الشروع في الصلاة لتكون الصلاة صحيحة",
		Ruling:      "شروط الصلاة سبعة: الإسلام والعقل والتمييز ورفع الحدث وإزالة النجاسة وستر العورة ودخول الوقت واستقبال القبلة والنية",
		Conditions: []string{
			"الإسلام: أن يكون المصلي مسلماً",
			"العقل: أن يكون عاقلاً",
			"التمييز: أن يميز ما يقول ويفعل",
			"رفع الحدث: الوضوء أو التيمم",
			"إزالة النجاسة: تطهير الثوب والبدن والمكان",
			"ستر العورة: للرجل من السرة إلى الركبة وللمرأة جميع البدن",
			"دخول الوقت: أن تأتي الصلاة في وقتها المحدد",
		},
		Examples: []string{
			"المجنون لا تصح صلاته لعدم العقل",
			"الطفل دون التمييز لا تصح صلاته",
			"من به حدث أكبر أو أصغر لا تصح صلاته حتى يتطهر",
		},
		RelatedAyas: []string{"سورة النساء: 43", "سورة المائدة: 6"},
		PracticalTips: []string{
			"تأكد من الوضوء الصحيح قبل الصلاة",
			"اختر مكاناً طاهراً للصلاة",
			"ستر العورة بملابس مناسبة",
			"معرفة أوقات الصلوات الخمس",
		},
	},
	{
		ID:          "fiqh-002",
		Title:       "Zakat - Distribution",
		TitleArabic: "الزكاة - المصارف",
		Category:    "Worship - Zakat",
		Definition:  "المقاصد والجهات التي يجب صرف الزكاة فيها",
		Ruling:      "مصارف الزكاة ثمانية كما بينها القرآن الكريم في سورة التوبة: الفقراء والمساكين والعاملين عليها والمؤلفة قلوبهم وفي الرقاب والغارمين وفي سبيل الله وابن السبيل",
		Conditions: []string{
			"الفقراء: من لا يملك ما يغنيه",
			"المساكين: من يملك بعض الكفاية لكن لا يكفيهم",
			"العاملون على الزكاة: من يعمل في جمع وتوزيع الزكاة",
			"المؤلفة قلوبهم: لتأليف قلوبهم على الإسلام",
			"الرقاب: تحرير العبيد والمماليك",
			"الغارمون: المدينون الذين تثقل عليهم الديون",
			"في سبيل الله: الجهاد والحج والعلم الشرعي",
			"ابن السبيل: المسافر المحتاج",
		},
		Examples: []string{
			"توزيع الزكاة على الفقراء الفعليين والمساكين الحقيقيين",
			"إعطاء العامل على الزكاة أجرة عمله من الزكاة",
			"إعطاء المجاهد في سبيل الله من الزكاة",
		},
		RelatedAyas: []string{"سورة التوبة: 60"},
		SchoolDifferences: map[string]string{
			"مالكي":  "يشترط الإمام في توزيع الزكاة",
			"شافعي":  "يجوز للفرد التوزيع بدون إذن الإمام",
			"حنفي":   "يشترط الاطمئنان من وصول الزكاة للمستحقين",
		},
		PracticalTips: []string{
			"معرفة مستحقي الزكاة الحقيقيين",
			"عدم إعطاء الزكاة للأغنياء أو القادرين على الكسب",
			"البحث عن الأولويات في التوزيع",
		},
	},
	{
		ID:          "fiqh-003",
		Title:       "Islamic Prohibited Acts",
		TitleArabic: "المحرمات في الإسلام",
		Category:    "General - Prohibited",
		Definition:  "الأعمال والتصرفات التي نهى الله عنها وحرمها على عباده",
		Ruling:      "هناك محرمات كثيرة في الإسلام يتعلق بعضها بالعبادات وبعضها بالمعاملات وبعضها بالأخلاق والتصرفات",
		Conditions: []string{
			"تحريم الشرك بالله وعبادة غيره",
			"تحريم الربا بكل أنواعه",
			"تحريم الخمر وكل مسكر",
			"تحريم لحم الخنزير والميتة",
			"تحريم الزنا والفواحش",
			"تحريم الغيبة والنميمة",
			"تحريم الكذب واليمين الكاذبة",
			"تحريم السرقة والاختلاس",
		},
		Examples: []string{
			"الشرك: عبادة صنم أو قبر أو شخص غير الله",
			"الربا: إقراض بفائدة أو بيع المتفاضل",
			"الزنا: العلاقة الحرام بين رجل وامرأة",
			"الغيبة: ذكر عيوب الآخرين في غيابهم",
		},
		RelatedAyas: []string{"سورة الأنعام: 151-152", "سورة الإسراء: 32", "سورة النور: 30"},
		PracticalTips: []string{
			"تجنب الشرك بجميع أشكاله",
			"الامتناع عن المحرمات الصريحة والشبهات",
			"البحث عن الحلال البديل في كل معاملة",
		},
	},
}
