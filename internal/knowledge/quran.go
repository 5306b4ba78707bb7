package knowledge

import "github.com/noorlabs/murshid/internal/models"

var quranTable = []models.QuranEntry{
	{
		ID:                  "surah-001",
		SurahNumber:         1,
		SurahName:           "Al-Fatihah",
		SurahNameArabic:     "الفاتحة",
		Revelation:          "Meccan",
		VersesCount:         7,
		Theme:               "Opening of the Quran, praise to Allah, guidance",
		KeyVerse:            "الحمد لله رب العالمين",
		KeyVerseTranslation: "All praise is due to Allah, Lord of the worlds",
		KeyAyaNumber:        1,
		Description:         "سورة الفاتحة هي أم القرآن الكريم وأعظم سورة فيه. تحتوي على حمد الله وتمجيده والاستعاذة من الضلال والتوسل إلى الله بطلب الهداية. وهي تقرأ في كل ركعة من ركعات الصلاة. قال النبي صلى الله عليه وسلم: (ما أنزلت سورة في التوراة والإنجيل والزبور مثل الفاتحة)",
		ImportantTopics:     []string{"التوحيد", "الحمد", "الاستعاذة", "الهداية", "العبادة"},
		HistoricalContext:   "نزلت بمكة قبل الهجرة وكانت أول سورة نزلت على النبي صلى الله عليه وسلم كاملة",
	},
	{
		ID:                  "surah-002",
		SurahNumber:         2,
		SurahName:           "Al-Baqarah",
		SurahNameArabic:     "البقرة",
		Revelation:          "Medinan",
		VersesCount:         286,
		Theme:               "Guidance, faith, Islamic law, stories of prophets",
		KeyVerse:            "آية الكرسي - الله لا إله إلا هو الحي القيوم",
		KeyVerseTranslation: "Allah - there is no deity except Him, the Ever-Living, the Sustainer of existence",
		KeyAyaNumber:        255,
		Description:         "سورة البقرة أطول سورة في القرآن الكريم. تحتوي على أحكام فقهية كثيرة تتعلق بالزكاة والصيام والحج والطلاق والربا. وفيها قصة آدم وإبليس وقصة موسى وفرعون والعديد من الأحكام والتشريعات. سميت بالبقرة لورود قصة البقرة في سياقها.",
		ImportantTopics:     []string{"الإيمان", "التشريع", "قصة آدم", "قصة موسى", "أحكام الصيام", "أحكام الزكاة", "أحكام الحج"},
		HistoricalContext:   "نزلت بالمدينة بعد الهجرة وتعتبر أول سورة نزلت كاملة بعد الهجرة",
	},
	{
		ID:                  "surah-036",
		SurahNumber:         36,
		SurahName:           "Ya-Sin",
		SurahNameArabic:     "يس",
		Revelation:          "Meccan",
		VersesCount:         83,
		Theme:               "Quran, resurrection, power of Allah",
		KeyVerse:            "يس والقرآن الحكيم",
		KeyVerseTranslation: "Ya Sin. By the wise Qur'an",
		KeyAyaNumber:        1,
		Description:         "سورة يس تسمى قلب القرآن الكريم وقيل فيها أنها شفاء لكل داء. تتحدث عن عظمة القرآن الكريم وقوة الله سبحانه وتعالى وتكذيب الكافرين برسالة النبي صلى الله عليه وسلم. وقصة أهل القرية التي كذبت الرسل. قال النبي صلى الله عليه وسلم: (لكل شيء قلب وقلب القرآن يس)",
		ImportantTopics:     []string{"عظمة القرآن", "البعث والنشور", "قدرة الله", "قصة أهل القرية"},
		HistoricalContext:   "مكية وتركز على توحيد الله وقوته",
	},
	{
		ID:                  "surah-067",
		SurahNumber:         67,
		SurahName:           "Al-Mulk",
		SurahNameArabic:     "الملك",
		Revelation:          "Meccan",
		VersesCount:         30,
		Theme:               "Majesty of Allah, divine power, protection from punishment",
		KeyVerse:            "تبارك الذي بيده الملك",
		KeyVerseTranslation: "Blessed is the One in Whose hand is all dominion",
		KeyAyaNumber:        1,
		Description:         "سورة الملك تبدأ بتسبيح وتعظيم الله الذي بيده ملك السموات والأرض. وتتحدث عن خلق السموات السبع بغير عيب وتسخير النجوم والشمس والقمر للإنسان. وتحذر من عذاب النار وتأمر بالتفكر في خلق الله.",
		ImportantTopics:     []string{"تعظيم الله", "الخلق", "السموات السبع", "الرزق", "التفكر"},
		HistoricalContext:   "مكية تركز على التأمل في عظمة الخلق",
	},
}
