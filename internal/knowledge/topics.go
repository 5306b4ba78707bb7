package knowledge

import "github.com/noorlabs/murshid/internal/models"

// offlineTopic is a keyed fallback answer consulted when no table matches.
// Lookup is by substring: a topic applies when the question contains its key.
type offlineTopic struct {
	Key  string
	Body string
}

// Order matters: earlier keys win when a question mentions several topics, so
// the more specific keys ("شروط الصلاة") come before the general ones
// ("الصلاة").
var offlineTopics = []offlineTopic{
	{"شروط الصلاة", "الإسلام، العقل، التمييز، رفع الحدث، إزالة النجاسة، ستر العورة، دخول الوقت، استقبال القبلة، النية."},
	{"أركان الصلاة", "تكبيرة الإحرام، قراءة الفاتحة، الركوع، الرفع منه، السجود على الأعضاء السبعة، الجلوس بين السجدتين، التشهد الأخير، التسليم."},
	{"نواقض الوضوء", "الخارج من السبيلين، النوم العميق، زوال العقل، مس الفرج بدون حائل، أكل لحم الإبل."},
	{"مبطلات الصيام", "الأكل والشرب عمداً، الجماع، القيء عمداً، الحيض والنفاس، نية الفطر."},
	{"زكاة الفطر", "واجبة على كل مسلم غني وفقير من تمام رمضان، صاع من طعام عن كل نفس، تخرج قبل صلاة العيد."},
	{"مصارف الزكاة", "ثمانية مصارف: الفقراء، المساكين، العاملين عليها، المؤلفة قلوبهم، في الرقاب، الغارمين، في سبيل الله، ابن السبيل."},
	{"أركان الحج", "الإحرام، الوقوف بعرفة، طواف الإفاضة، السعي بين الصفا والمروة."},
	{"أذكار الصباح", "آية الكرسي، سورة الفلق والناس، دعاء أصبحنا وأصبح الملك لله، سيد الاستغفار."},
	{"أذكار المساء", "آية الكرسي، سورة الفلق والناس، دعاء أمسينا وأمسى الملك لله، الاستعاذة من شر ما خلق."},
	{"دعاء السفر", "سبحان الذي سخر لنا هذا وما كنا له مقرنين وإنا إلى ربنا لمنقلبون."},
	{"بر الوالدين", "طاعتهما في غير معصية، الإحسان إليهما بالقول والفعل، خفض جناح الذل لهما، الدعاء لهما."},
	{"صلة الرحم", "زيارة الأقارب والإحسان إليهم والسؤال عنهم، وهي سبب في بسط الرزق وطول العمر."},
	{"الشهادتين", "أشهد أن لا إله إلا الله وأشهد أن محمداً رسول الله."},
	{"التوحيد", "التوحيد هو إفراد الله بالعبادة وإنكار الشريك معه، وهو أصل الدين وأول ما يدعى إليه."},
	{"الإيمان", "الإيمان قول باللسان وتصديق بالجنان وعمل بالأركان، يزيد بالطاعة وينقص بالمعصية."},
	{"الإحسان", "الإحسان هو أن تعبد الله كأنك تراه، فإن لم تكن تراه فإنه يراك."},
	{"الوضوء", "غسل الكفين، المضمضة، الاستنشاق، غسل الوجه، غسل اليدين إلى المرفقين، مسح الرأس، غسل الرجلين إلى الكعبين."},
	{"التيمم", "هو التطهر بالتراب النظيف عند عدم وجود الماء أو العجز عن استعماله: ضربة على الصعيد يمسح بها الوجه والكفان."},
	{"الصلاة", "الصلاة عماد الدين وثاني أركان الإسلام، خمس صلوات في اليوم والليلة كتبها الله على عباده."},
	{"الصيام", "هو الإمساك عن المفطرات من طلوع الفجر إلى غروب الشمس بنية التعبد لله."},
	{"ليلة القدر", "ليلة عظيمة في شهر رمضان، خير من ألف شهر، تحرى في العشر الأواخر وفي أوتارها."},
	{"الزكاة", "حق واجب في مال مخصوص لطائفة مخصوصة في وقت مخصوص. نصاب الذهب 85 جراماً والفضة 595 جراماً وفيهما ربع العشر."},
	{"الحج", "قصد بيت الله الحرام لأداء مناسك مخصوصة في وقت مخصوص، فرض على المستطيع مرة في العمر."},
	{"العمرة", "زيارة بيت الله الحرام لأداء الطواف والسعي والحلق أو التقصير، وهي مستحبة في كل وقت."},
	{"الاستخارة", "صلاة ركعتين من غير الفريضة ثم دعاء الاستخارة: اللهم إني أستخيرك بعلمك وأستقدرك بقدرتك."},
	{"القرآن", "كلام الله المنزل على محمد صلى الله عليه وسلم، المتعبد بتلاوته، المنقول بالتواتر، المعجز بلفظه ومعناه."},
	{"السنة", "كل ما ورد عن النبي صلى الله عليه وسلم من قول أو فعل أو تقرير، وهي المصدر الثاني للتشريع."},
	{"الصحابة", "هم من لقوا النبي صلى الله عليه وسلم مؤمنين به وماتوا على الإسلام، وهم خير القرون."},
	{"الربا", "محرم تحريماً قطعياً بالكتاب والسنة، سواء ربا الفضل أو ربا النسيئة."},
	{"الغيبة", "ذكرك أخاك بما يكره في غيبته من العيوب، وهي من كبائر الذنوب ولو كان ما قيل صدقاً."},
}

// surahTable carries the surahs users most commonly ask about or recite.
// Counts follow the Uthmani mushaf.
var surahTable = []models.Surah{
	{ID: 1, Name: "الفاتحة", EnglishName: "Al-Fatihah", NumberOfAyahs: 7},
	{ID: 2, Name: "البقرة", EnglishName: "Al-Baqarah", NumberOfAyahs: 286},
	{ID: 3, Name: "آل عمران", EnglishName: "Aal-Imran", NumberOfAyahs: 200},
	{ID: 4, Name: "النساء", EnglishName: "An-Nisa", NumberOfAyahs: 176},
	{ID: 5, Name: "المائدة", EnglishName: "Al-Ma'idah", NumberOfAyahs: 120},
	{ID: 6, Name: "الأنعام", EnglishName: "Al-An'am", NumberOfAyahs: 165},
	{ID: 12, Name: "يوسف", EnglishName: "Yusuf", NumberOfAyahs: 111},
	{ID: 17, Name: "الإسراء", EnglishName: "Al-Isra", NumberOfAyahs: 111},
	{ID: 18, Name: "الكهف", EnglishName: "Al-Kahf", NumberOfAyahs: 110},
	{ID: 19, Name: "مريم", EnglishName: "Maryam", NumberOfAyahs: 98},
	{ID: 24, Name: "النور", EnglishName: "An-Nur", NumberOfAyahs: 64},
	{ID: 36, Name: "يس", EnglishName: "Ya-Sin", NumberOfAyahs: 83},
	{ID: 55, Name: "الرحمن", EnglishName: "Ar-Rahman", NumberOfAyahs: 78},
	{ID: 56, Name: "الواقعة", EnglishName: "Al-Waqi'ah", NumberOfAyahs: 96},
	{ID: 67, Name: "الملك", EnglishName: "Al-Mulk", NumberOfAyahs: 30},
	{ID: 78, Name: "النبأ", EnglishName: "An-Naba", NumberOfAyahs: 40},
	{ID: 97, Name: "القدر", EnglishName: "Al-Qadr", NumberOfAyahs: 5},
	{ID: 110, Name: "النصر", EnglishName: "An-Nasr", NumberOfAyahs: 3},
	{ID: 112, Name: "الإخلاص", EnglishName: "Al-Ikhlas", NumberOfAyahs: 4},
	{ID: 113, Name: "الفلق", EnglishName: "Al-Falaq", NumberOfAyahs: 5},
	{ID: 114, Name: "الناس", EnglishName: "An-Nas", NumberOfAyahs: 6},
}
