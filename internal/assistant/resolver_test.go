package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/noorlabs/murshid/internal/connectivity"
	"github.com/noorlabs/murshid/internal/enrich"
	"github.com/noorlabs/murshid/internal/knowledge"
	"github.com/noorlabs/murshid/internal/models"
)

type fakeEnricher struct {
	enrichText string
	answerText string
	err        error
	enrichCall int
	answerCall int
}

func (f *fakeEnricher) Enrich(ctx context.Context, question, draft string) (string, error) {
	f.enrichCall++
	return f.enrichText, f.err
}

func (f *fakeEnricher) Answer(ctx context.Context, question string) (string, error) {
	f.answerCall++
	return f.answerText, f.err
}

func newTestResolver(e enrich.Enricher, online bool) *Resolver {
	return NewResolver(knowledge.NewStore(), e, connectivity.Static(online), zap.NewNop())
}

func TestAskQuranHasPriorityOverHadith(t *testing.T) {
	r := newTestResolver(enrich.Disabled{}, false)

	// "رمضان" appears in both a surah description path and hadith-002, but
	// the question matching a surah name must resolve from the Quran table.
	resp := r.Ask(context.Background(), "الفاتحة")
	if resp.Source != models.SourceOffline {
		t.Errorf("source = %s, want offline", resp.Source)
	}
	if !strings.HasPrefix(resp.Answer, "📖 **الفاتحة**") {
		t.Errorf("answer does not open with the quran template: %q", resp.Answer)
	}
}

func TestAskHadithWhenQuranMisses(t *testing.T) {
	r := newTestResolver(enrich.Disabled{}, false)
	resp := r.Ask(context.Background(), "قيام الليل")
	if !strings.HasPrefix(resp.Answer, "🕌 **الحديث الشريف**") {
		t.Errorf("answer does not use the hadith template: %q", resp.Answer)
	}
}

func TestAskTopicFallback(t *testing.T) {
	r := newTestResolver(enrich.Disabled{}, false)
	resp := r.Ask(context.Background(), "ما هو التيمم؟")
	if !strings.HasPrefix(resp.Answer, "💬 **التيمم**") {
		t.Errorf("answer does not use the topic template: %q", resp.Answer)
	}
	if resp.Source != models.SourceOffline {
		t.Errorf("source = %s, want offline", resp.Source)
	}
}

func TestAskOfflineMiss(t *testing.T) {
	r := newTestResolver(enrich.Disabled{}, false)
	resp := r.Ask(context.Background(), "xyzzy unmatched question")
	if resp.Answer != apologyOffline {
		t.Errorf("answer = %q, want offline apology", resp.Answer)
	}
	if resp.Source != models.SourceOffline {
		t.Errorf("source = %s, want offline", resp.Source)
	}
}

func TestAskOnlineMissGeneratesAnswer(t *testing.T) {
	fake := &fakeEnricher{answerText: "generated answer"}
	r := newTestResolver(fake, true)

	resp := r.Ask(context.Background(), "xyzzy unmatched question")
	if resp.Answer != "generated answer" {
		t.Errorf("answer = %q, want the generated text", resp.Answer)
	}
	if resp.Source != models.SourceOnline {
		t.Errorf("source = %s, want online", resp.Source)
	}
	if fake.answerCall != 1 {
		t.Errorf("Answer called %d times, want 1", fake.answerCall)
	}
}

func TestAskOnlineFailureTaggedError(t *testing.T) {
	fake := &fakeEnricher{err: errors.New("api unavailable")}
	r := newTestResolver(fake, true)

	resp := r.Ask(context.Background(), "xyzzy unmatched question")
	if resp.Answer != apologyOnline {
		t.Errorf("answer = %q, want online apology", resp.Answer)
	}
	if resp.Source != models.SourceError {
		t.Errorf("source = %s, want error", resp.Source)
	}
}

func TestAskHybridEnrichment(t *testing.T) {
	fake := &fakeEnricher{enrichText: "extra points"}
	r := newTestResolver(fake, true)

	resp := r.Ask(context.Background(), "الفاتحة")
	if resp.Source != models.SourceHybrid {
		t.Errorf("source = %s, want hybrid", resp.Source)
	}
	if !strings.Contains(resp.Answer, "✨ معلومات إضافية:\nextra points") {
		t.Errorf("enrichment not appended: %q", resp.Answer)
	}
	if fake.enrichCall != 1 {
		t.Errorf("Enrich called %d times, want 1", fake.enrichCall)
	}
}

func TestAskEnrichmentFailureKeepsLocalAnswer(t *testing.T) {
	fake := &fakeEnricher{err: errors.New("timeout")}
	r := newTestResolver(fake, true)

	resp := r.Ask(context.Background(), "الفاتحة")
	if !strings.HasPrefix(resp.Answer, "📖 **الفاتحة**") {
		t.Errorf("local answer lost after enrichment failure: %q", resp.Answer)
	}
	if strings.Contains(resp.Answer, "معلومات إضافية") {
		t.Errorf("failed enrichment still appended text: %q", resp.Answer)
	}
	// Source stays hybrid: the online path was taken even though it added
	// nothing.
	if resp.Source != models.SourceHybrid {
		t.Errorf("source = %s, want hybrid", resp.Source)
	}
}

func TestAskSuggestedTopicsCapped(t *testing.T) {
	r := newTestResolver(enrich.Disabled{}, false)

	// أركان الإيمان resolves from the general table whose entry carries six
	// suggested topics.
	resp := r.Ask(context.Background(), "أركان الإيمان الستة")
	if len(resp.SuggestedTopics) > 3 {
		t.Errorf("suggested topics = %d entries, want at most 3", len(resp.SuggestedTopics))
	}
	if len(resp.SuggestedTopics) == 0 {
		t.Error("suggested topics empty")
	}
}

func TestAskRandomSuggestionsOnEmptyTopics(t *testing.T) {
	r := newTestResolver(enrich.Disabled{}, false)

	// Topic-map answers carry no topics of their own, so the random
	// fallback fills in a zikr and a story.
	resp := r.Ask(context.Background(), "ما هو التيمم؟")
	if len(resp.SuggestedTopics) != 2 {
		t.Fatalf("suggested topics = %v, want a zikr and a story", resp.SuggestedTopics)
	}
	if !strings.HasPrefix(resp.SuggestedTopics[0], "تعلم: ") {
		t.Errorf("first suggestion = %q, want تعلم: prefix", resp.SuggestedTopics[0])
	}
	if !strings.HasPrefix(resp.SuggestedTopics[1], "اقرأ قصة: ") {
		t.Errorf("second suggestion = %q, want اقرأ قصة: prefix", resp.SuggestedTopics[1])
	}
}
