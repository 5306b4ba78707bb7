package knowledge

import "github.com/noorlabs/murshid/internal/models"

// azkarTable holds the daily remembrances: morning, evening, sleep, travel,
// prayer, fear, and gratitude.
var azkarTable = []models.AzkarEntry{
	{
		ID:              "azkar-morning-1",
		Category:        "morning",
		TitleArabic:     "دعاء الاستيقاظ والصباح",
		Zikr:            "بِسْمِ اللَّهِ تَوَكَّلْتُ عَلَى اللَّهِ، وَلَا حَوْلَ وَلَا قُوَّةَ إِلَّا بِاللَّهِ",
		Transliteration: "Bismillahi tawakkaltu ala-Allah wa la hawla wa la quwwata illa billah",
		Meaning:         "In the name of Allah, I have relied upon Allah, and there is no power or might except through Allah.",
		Reward:          "شفاء من كل داء وحفظ من الشرور",
		Frequency:       "كل صباح عند الاستيقاظ",
		RelatedVerse:    "سورة الملك: بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ",
		RelatedHadith:   "من قالها صباحاً حفظه الله طول يومه",
		Timing:          "فور الاستيقاظ من النوم",
	},
	{
		ID:              "azkar-morning-2",
		Category:        "morning",
		TitleArabic:     "سورة الفاتحة والآيات الكريمة",
		Zikr:            "الْحَمْدُ لِلَّهِ رَبِّ الْعَالَمِينَ",
		Transliteration: "Al-hamdu lillahi rabbi al-alamin",
		Meaning:         "All praise is due to Allah, the Lord of the worlds.",
		Reward:          "أعظم سورة في القرآن وفيها شفاء",
		Frequency:       "يومياً في الصباح",
		RelatedVerse:    "سورة الفاتحة: الحمد لله رب العالمين",
		RelatedHadith:   "ما أنزلت سورة في التوراة والإنجيل والزبور مثل الفاتحة",
		Timing:          "في بداية اليوم",
	},
	{
		ID:              "azkar-morning-3",
		Category:        "morning",
		TitleArabic:     "آية الكرسي",
		Zikr:            "اللَّهُ لَا إِلَٰهَ إِلَّا هُوَ الْحَيُّ الْقَيُّومُ ۚ لَا تَأْخُذُهُ سِنَةٌ وَلَا نَوْمٌ ۚ لَهُ مَا فِي السَّمَاوَاتِ وَمَا فِي الْأَرْضِ",
		Transliteration: "Allahu la ilaha illa huwa al-hayu al-qayyum la ta'khuzuhu sinatun wa la nawm",
		Meaning:         "Allah - there is no deity except Him, the Ever-Living, the Sustainer of existence. Neither drowsiness overtakes Him nor sleep.",
		Reward:          "حفظ وعصمة من الشر والسوء",
		Frequency:       "يومياً في الصباح والمساء",
		RelatedVerse:    "سورة البقرة: 255",
		RelatedHadith:   "من قرأ آية الكرسي في صباح كل يوم لم يزل في حفظ الله حتى يمسي",
		Timing:          "في الصباح والمساء",
	},
	{
		ID:              "azkar-morning-4",
		Category:        "morning",
		TitleArabic:     "المعوذات - سورة الفلق والناس",
		Zikr:            "قُلْ أَعُوذُ بِرَبِّ الْفَلَقِ * مِن شَرِّ مَا خَلَقَ * وَمِن شَرِّ غَاسِقٍ إِذَا وَقَبَ * وَمِن شَرِّ النَّفَّاثَاتِ فِي الْعُقَدِ",
		Transliteration: "Qul a'udhu bi-rabbi al-falaq min sharri ma khalaqa",
		Meaning:         "Say: I seek refuge in the Lord of daybreak from the evil of that which He created.",
		Reward:          "حماية من السحر والعين والأمراض",
		Frequency:       "ثلاث مرات صباحاً ومساءً",
		RelatedVerse:    "سورة الفلق والناس",
		RelatedHadith:   "قال النبي: يا عائشة ألا أعلمك آيات فيهن شفاء؟",
		Timing:          "كل صباح ومساء ثلاث مرات",
	},
	{
		ID:              "azkar-morning-5",
		Category:        "morning",
		TitleArabic:     "دعاء أصبحنا",
		Zikr:            "أَصْبَحْنَا وَأَصْبَحَ الْمُلْكُ لِلَّهِ، وَالْحَمْدُ لِلَّهِ، لَا إِلَٰهَ إِلَّا اللَّهُ وَحْدَهُ لَا شَرِيكَ لَهُ، لَهُ الْمُلْكُ وَلَهُ الْحَمْدُ وَهُوَ عَلَىٰ كُلِّ شَيْءٍ قَدِيرٌ",
		Transliteration: "Asbahna wa asbaha al-mulk lillah wal-hamd lillah",
		Meaning:         "We have entered the morning and the kingdom belongs to Allah, and all praise is to Allah.",
		Reward:          "تجديد البيعة مع الله وحفظ اليوم",
		Frequency:       "كل صباح مرة واحدة",
		RelatedVerse:    "سورة الملك: 1",
		RelatedHadith:   "من قال إذا أصبح أصبحنا وأصبح الملك لله",
		Timing:          "في الصباح عند الاستيقاظ",
	},
	{
		ID:              "azkar-evening-1",
		Category:        "evening",
		TitleArabic:     "دعاء أمسينا",
		Zikr:            "أَمْسَيْنَا وَأَمْسَىٰ الْمُلْكُ لِلَّهِ، وَالْحَمْدُ لِلَّهِ، لَا إِلَٰهَ إِلَّا اللَّهُ وَحْدَهُ لَا شَرِيكَ لَهُ، لَهُ الْمُلْكُ وَلَهُ الْحَمْدُ وَهُوَ عَلَىٰ كُلِّ شَيْءٍ قَدِيرٌ",
		Transliteration: "Amsayna wa amsaa al-mulk lillah wal-hamd lillah",
		Meaning:         "We have reached the evening and the kingdom belongs to Allah, all praise is to Allah.",
		Reward:          "حفظ الليل والسلام والطمأنينة",
		Frequency:       "كل مساء مرة واحدة",
		RelatedVerse:    "سورة الملك: 1",
		RelatedHadith:   "من قال إذا أمسى أمسينا وأصبح الملك لله",
		Timing:          "في المساء عند الغروب",
	},
	{
		ID:              "azkar-evening-2",
		Category:        "evening",
		TitleArabic:     "سؤال الله الحفظ والسلامة",
		Zikr:            "اللَّهُمَّ أَنْتَ رَبِّي لَا إِلَٰهَ إِلَّا أَنْتَ، عَلَيْكَ تَوَكَّلْتُ، وَأَنْتَ رَبُّ الْعَرْشِ الْعَظِيمِ، مَا شَاءَ اللَّهُ كَانَ وَمَا لَمْ يَشَأْ لَمْ يَكُن",
		Transliteration: "Allahumma anta rabbi la ilaha illa anta alayqa tawakkaltu",
		Meaning:         "O Allah, You are my Lord, there is no deity except You. Upon You do I rely.",
		Reward:          "قضاء الحاجات والحفظ من الشرور",
		Frequency:       "مرات متعددة في المساء",
		RelatedVerse:    "سورة الذاريات: 58",
		RelatedHadith:   "من قال هذا الدعاء كفاه الله همه",
		Timing:          "في المساء بعد الغروب",
	},
	{
		ID:              "azkar-evening-3",
		Category:        "evening",
		TitleArabic:     "الاستعاذة من الأرق والقلق",
		Zikr:            "اللَّهُمَّ إِنِّي أَعُوذُ بِكَ مِنَ الْأَرَقِ وَالْقَلَقِ وَالْفَزَعِ، وَأَعُوذُ بِكَ مِنْ سُوءِ الْأَحْلَامِ وَالْهَمِّ وَالْحُزْنِ",
		Transliteration: "Allahumma inni a'udhu bika min al-araq wal-qalag wal-fazaa",
		Meaning:         "O Allah, I seek refuge in You from sleeplessness, anxiety, and fear.",
		Reward:          "هدوء النفس والنوم العميق الهانئ",
		Frequency:       "كل مساء قبل النوم",
		RelatedVerse:    "سورة الأعراف: 55",
		RelatedHadith:   "كان النبي يدعو بهذا قبل نومه",
		Timing:          "قبل الذهاب إلى النوم",
	},
	{
		ID:              "azkar-sleep-1",
		Category:        "sleep",
		TitleArabic:     "دعاء النوم الأساسي",
		Zikr:            "بِسْمِكَ اللَّهُمَّ أَمُوتُ وَأَحْيَا",
		Transliteration: "Bismika Allahumma amutu wa ahya",
		Meaning:         "In Your name, O Allah, I die and I live.",
		Reward:          "حماية من الشياطين والأحلام السيئة",
		Frequency:       "كل ليلة عند النوم",
		RelatedVerse:    "سورة الزمر: 42",
		RelatedHadith:   "إذا أوى أحدكم إلى فراشه فليقل بسمك اللهم أموت وأحيا",
		Timing:          "عند الاستلقاء للنوم",
	},
	{
		ID:              "azkar-sleep-2",
		Category:        "sleep",
		TitleArabic:     "دعاء الخروج من الفراش",
		Zikr:            "الْحَمْدُ لِلَّهِ الَّذِي عَافَانِي فِي جَسَدِي وَرَدَّ عَلَيَّ رُوحِي وَأَذِنَ لِي بِذِكْرِهِ",
		Transliteration: "Al-hamdu lillahi alladhi a'afani fi jasadi wa radda alayya ruhi",
		Meaning:         "All praise is due to Allah who kept me healthy in body and restored my spirit.",
		Reward:          "شكر الله على نعمة النوم والاستيقاظ",
		Frequency:       "كل صباح عند الاستيقاظ",
		RelatedVerse:    "سورة الزمر: 42",
		RelatedHadith:   "كان النبي إذا استيقظ قال الحمد لله الذي عافاني",
		Timing:          "فور الاستيقاظ من النوم",
	},
	{
		ID:              "azkar-travel-1",
		Category:        "travel",
		TitleArabic:     "دعاء السفر",
		Zikr:            "سُبْحَانَ الَّذِي سَخَّرَ لَنَا هَٰذَا وَمَا كُنَّا لَهُ مُقْرِنِينَ، وَإِنَّا إِلَىٰ رَبِّنَا لَمُنقَلِبُونَ",
		Transliteration: "Subhana alladhi sakhkhara lana hadha wa ma kunna lahu muqrinun",
		Meaning:         "Glory be to the One who has subdued this for us, though we could never have subdued it ourselves.",
		Reward:          "أمان في السفر والحماية من المشاكل",
		Frequency:       "عند البدء في السفر",
		RelatedVerse:    "سورة الزخرف: 13",
		RelatedHadith:   "من قال هذا عند السفر حفظه الله طول سفره",
		Timing:          "عند بدء الرحلة",
	},
	{
		ID:              "azkar-fear-1",
		Category:        "fear",
		TitleArabic:     "دعاء الخوف والقلق",
		Zikr:            "لَا إِلَٰهَ إِلَّا اللَّهُ الْعَظِيمُ الْحَلِيمُ، لَا إِلَٰهَ إِلَّا اللَّهُ رَبُّ السَّمَاوَاتِ وَالْأَرْضِ، رَبُّ الْعَرْشِ الْعَظِيمِ",
		Transliteration: "La ilaha illallahu al-Adhim al-Halim",
		Meaning:         "There is no deity except Allah, the Mighty, the Forbearing.",
		Reward:          "طمأنينة القلب وزوال الخوف والقلق",
		Frequency:       "عند الشعور بالخوف أو القلق",
		RelatedVerse:    "سورة الأنفال: 10",
		RelatedHadith:   "ما من أحد يفزع إلا قال هذا حتى يسكن فزعه",
		Timing:          "حين الشعور بالخوف",
	},
	{
		ID:              "azkar-gratitude-1",
		Category:        "gratitude",
		TitleArabic:     "دعاء الشكر على النعم",
		Zikr:            "الْحَمْدُ لِلَّهِ عَلَىٰ كُلِّ حَالٍ، اللَّهُمَّ كَمَا أَنْعَمْتَ عَلَيَّ فَاجْعَلْ رِزْقِي حَلَالًا وَعَمَلِي صَالِحًا",
		Transliteration: "Al-hamdu lillahi ala kulli hal, Allahumma kama ana'amta alayya",
		Meaning:         "All praise is due to Allah in all circumstances. O Allah, as You have favored me, make my provision lawful.",
		Reward:          "استجابة الدعاء وزيادة النعم",
		Frequency:       "عند كل نعمة",
		RelatedVerse:    "سورة لقمان: 31",
		RelatedHadith:   "الشاكرون يعطون أكثر من غيرهم",
		Timing:          "عند تحقق أي نعمة",
	},
	{
		ID:              "azkar-prayer-1",
		Category:        "prayer",
		TitleArabic:     "الدعاء بين السجدتين",
		Zikr:            "اللَّهُمَّ اغْفِرْ لِي وَارْحَمْنِي وَاهْدِنِي وَعَافِنِي وَارْزُقْنِي",
		Transliteration: "Allahumma ighfir li wa-rhamni wa-ahdini wa-a'afini wa-arzuqni",
		Meaning:         "O Allah, forgive me, have mercy on me, guide me, keep me healthy, and provide for me.",
		Reward:          "قبول الدعاء في وقت استجابة الدعاء",
		Frequency:       "في كل صلاة بين السجدتين",
		RelatedVerse:    "سورة النمل: 19",
		RelatedHadith:   "أفضل ما يقال بين السجدتين هذا الدعاء",
		Timing:          "بين السجدتين في الصلاة",
	},
}
