package knowledge

import "github.com/noorlabs/murshid/internal/models"

var storiesTable = []models.StoryEntry{
	{
		ID:           "story-prophet-yusef",
		Title:        "Story of Prophet Yusuf",
		TitleArabic:  "قصة سيدنا يوسف عليه السلام",
		Type:         "prophet",
		FullStory:    "يوسف عليه السلام هو أحد أعظم الأنبياء وقد ذكرت قصته كاملة في سورة يوسف. وُلد ليعقوب في بيت إسراء وكان بشيراً له بعد دعاء طويل. كان يوسف موضع حب أبيه يعقوب لما رأى فيه من الفضل والصلاح. رأى رؤية جميلة فقصها على أبيه فنصحه ألا يقصها على إخوته فيحسدوه. حقداً عليه لحبِّ أبيهم إياه، اجتمع إخوته على إلقاؤه في الجب. أخذوه وألقوه في البئر، وجاءوا إلى أبيهم عشاءً يبكون، فقالوا: إن الذئب أكله، مع أن قميصه كان بدم كذب. ثم اشتراه العزيز فآواه في بيته وقال لامرأته: أكرمي مثواه. وفي بيت العزيز ابتلاه الله بفتنة امرأة العزيز التي راودته عن نفسه فاستعاذ بالله. وظل في السجن بريئاً من تهمة الزنا سنين عديدة، وكان صبوراً على البلاء، فقال في السجن: رب اغفر لي. ثم إن الملك احتاج إلى من يفسر الأحلام فجاء الخبر عن يوسف فأخرجوه من السجن. فسر حلم الملك عن سني الجدب والرخاء، فأعجب الملك به وجعله على خزائن الأرض.",
		Lesson:       "الصبر على البلاء والابتلاء هو طريق النجاح والتوفيق",
		MoralOfStory: "إن الله مع الصابرين والعفة والأمانة والصبر تجعل الإنسان محط ثقة الآخرين",
		RelatedVerses: []string{
			"سورة يوسف: 4", "سورة يوسف: 23", "سورة يوسف: 53",
		},
		RelatedHadiths: []string{"الصبر ضياء", "عجباً لأمر المؤمن، إن أمره كله خير"},
		Characters:     []string{"يوسف عليه السلام", "يعقوب عليه السلام", "إخوة يوسف", "امرأة العزيز", "العزيز"},
		Timeline:       "في العصور القديمة أيام دخول إسرائيل مصر",
	},
	{
		ID:           "story-companion-umar",
		Title:        "Acceptance of Umar to Islam",
		TitleArabic:  "قصة إسلام سيدنا عمر بن الخطاب",
		Type:         "companion",
		FullStory:    "عمر بن الخطاب رضي الله عنه كان من أشد أعداء الإسلام قبل إسلامه. كان يؤذي النبي صلى الله عليه وسلم والمسلمين ويحاربهم. وكانت أخته فاطمة وزوجها سعيد بن زيد من المسلمين الأوائل. سمع عمر يوماً صوت أخته وزوجها يقرآن القرآن فاستوقفهما وضربهما. فطلبت منه أخته أن يقرأ القرآن بنفسه فقال: يا عمر، متى تترك هذا الرجل؟ ثم قررت أن تذهب معه إلى النبي. وفي الطريق ذهب إلى النبي بنية قتله لكنه لما سمع القرآن من النبي مباشرة أسلم على الفور، وقال: الحمد لله الذي هداني للإسلام. وكان إسلام عمر عزاً للإسلام والمسلمين، فقد صار من أقوى الدعاة ومن أشجع الصحابة في نشر التوحيد والدعوة إلى الله.",
		Lesson:       "التوبة من الذنب مهما كانت درجته ممكنة بل مرجوة إذا أخلصت النية",
		MoralOfStory: "الله يغير الناس بقلب يتوب إليه ويسأله الهداية، وقد بدل الله حال عمر من عدو إلى أفضل الخلفاء",
		RelatedVerses: []string{
			"سورة الفرقان: 71", "سورة الشورى: 25",
		},
		RelatedHadiths: []string{
			"اللهم اعز الإسلام بأحد العمرين",
			"والذي نفسي بيده لو التقى جيش ممن آمن وجيش من كفروا ما التقوا إلا غلب الذين آمنوا",
		},
		Characters: []string{"عمر بن الخطاب", "النبي محمد", "فاطمة أخت عمر", "سعيد بن زيد"},
		Timeline:   "في السنة السادسة من البعثة",
	},
	{
		ID:           "story-moral-lion-mouse",
		Title:        "The Lion and the Mouse",
		TitleArabic:  "قصة الأسد والفأر - درس في الرحمة",
		Type:         "moral",
		FullStory:    "كان هناك أسد ملك قوي جداً نام في غابة. فجاء فأر صغير يركض هنا وهناك، وبينما كان يركض وقع بالقرب من الأسد وأيقظه من نومه. غضب الأسد جداً من هذا الفأر الصغير الذي أزعجه. رفع الأسد مخلبه ليضرب الفأر، لكن الفأر طلب منه بصوت مرتعش أن ينقذه قائلاً: أيها الأسد العظيم، من فضلك لا تقتلني. أنا حيوان صغير جداً ولا أستطيع أن ألحق بك أي أذى. ربما لن تحتاجني أبداً، لكن إذا أنقذت حياتي اليوم، فقد أكون قادراً على مساعدتك في يوم من الأيام. ابتسم الأسد من طلب الفأر وفكر بنفسه: كيف يمكن لفأر صغير أن يساعدني؟ لكنه شعر بالشفقة عليه وأطلق سراح الفأر. بعد بعض الوقت، وقع الأسد في فخ صياد وعلق برقبته حبل جاء الفأر المخلص ورأى الأسد في هذا الوضع. دون تردد، بدأ الفأر بقضم الحبل حول رقبة الأسد. بعد ساعات من العمل الجاد بأسنانه الصغيرة، قطع الحبل وحرر الأسد من الفخ. شكر الأسد الفأر على مساعدته وأدرك أن الحب والشفقة لا يعرفان الحجم.",
		Lesson:       "الرحمة والشفقة من أجل الصفات الإنسانية، والمساعدة يمكن أن تأتي من أي مكان غير متوقع",
		MoralOfStory: "لا تستخف بأحد مهما كان ضعيفاً لأن الله قد يجعل منه سبب نجاتك. الرحمة تجنيك ثمراً حلواً في يوم من الأيام",
		RelatedVerses: []string{
			"سورة الأنعام: 12", "سورة الفرقان: 67",
		},
		RelatedHadiths: []string{
			"الراحمون يرحمهم الرحمن تبارك وتعالى",
			"أرحم من في الأرض يرحمك من في السماء",
		},
		Characters: []string{"الأسد", "الفأر الصغير", "الصياد"},
		Timeline:   "قصة خالدة عبر العصور",
	},
}
