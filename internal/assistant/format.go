package assistant

import (
	"fmt"
	"strings"

	"github.com/noorlabs/murshid/internal/models"
)

// Answer templates mirror the mobile client rendering: a decorated markdown
// block per category so the app can display matches uniformly.

func formatQuran(e models.QuranEntry) string {
	revelation := "مدنية"
	if e.Revelation == "Meccan" {
		revelation = "مكية"
	}
	return fmt.Sprintf("📖 **%s**\n%s\n📌 الموضوع: %s\n📝 عدد الآيات: %d\n🕌 نوع السورة: %s\n**آية مهمة:** \"%s\"",
		e.SurahNameArabic, e.Description, e.Theme, e.VersesCount, revelation, e.KeyVerse)
}

func formatHadith(e models.HadithEntry) string {
	return fmt.Sprintf("🕌 **الحديث الشريف**\n\"%s\"\n📖 المصدر: %s\n👤 الراوي: %s\n⭐ درجة الحديث: %s\n📌 الموضوع: %s\n💡 المعنى: %s",
		e.Text, e.Source, e.Narrator, e.Degree, e.Topic, e.Meaning)
}

func formatFiqh(e models.FiqhEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "⚖️ **%s**\n📚 التعريف: %s\n📖 الحكم: %s", e.TitleArabic, e.Definition, e.Ruling)
	if len(e.Conditions) > 0 {
		b.WriteString("\n✅ الشروط:\n")
		b.WriteString(bulletList(e.Conditions))
	}
	if len(e.Examples) > 0 {
		b.WriteString("\n📝 أمثلة:\n")
		b.WriteString(bulletList(e.Examples))
	}
	return b.String()
}

func formatAzkar(e models.AzkarEntry) string {
	return fmt.Sprintf("📿 **%s**\n🎯 الذكر: \"%s\"\n📖 المعنى: %s\n🏆 الفضل: %s",
		e.TitleArabic, e.Zikr, e.Meaning, e.Reward)
}

func formatStory(e models.StoryEntry) string {
	return fmt.Sprintf("📖 **%s**\n📜 القصة:\n%s\n💡 الدرس: %s",
		e.TitleArabic, e.FullStory, e.Lesson)
}

func formatGeneral(e models.GeneralEntry) string {
	return fmt.Sprintf("📌 **%s**\n%s", e.TitleArabic, e.Answer)
}

func formatTopic(key, body string) string {
	return fmt.Sprintf("💬 **%s**\n%s", key, body)
}

func bulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return strings.Join(lines, "\n")
}
