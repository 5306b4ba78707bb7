// Package assistant resolves questions against the local knowledge tables in
// priority order and optionally enriches the answer through the Gemini API.
package assistant

import (
	"context"

	"go.uber.org/zap"

	"github.com/noorlabs/murshid/internal/connectivity"
	"github.com/noorlabs/murshid/internal/enrich"
	"github.com/noorlabs/murshid/internal/knowledge"
	"github.com/noorlabs/murshid/internal/models"
)

const (
	// apologyOnline is returned when nothing matched locally and the online
	// path also produced no answer.
	apologyOnline = "عذراً، لم أتمكن من استحضار الإجابة. حاول سؤال آخر."
	// apologyOffline is returned when nothing matched locally and there is no
	// connectivity to fall back on.
	apologyOffline = "عذراً، لم أجد إجابة في القاعدة المحلية. يرجى الاتصال بالإنترنت."

	maxSuggestedTopics = 3
)

// Resolver answers questions from local knowledge, falling back to the
// enricher when the tables have no match.
type Resolver struct {
	store    *knowledge.Store
	enricher enrich.Enricher
	probe    connectivity.Probe
	logger   *zap.Logger
}

// NewResolver creates a resolver over the given knowledge store. The enricher
// and probe control the online behavior; pass enrich.Disabled{} and
// connectivity.Static(false) for a fully offline resolver.
func NewResolver(store *knowledge.Store, enricher enrich.Enricher, probe connectivity.Probe, logger *zap.Logger) *Resolver {
	return &Resolver{
		store:    store,
		enricher: enricher,
		probe:    probe,
		logger:   logger,
	}
}

// Ask resolves a question. The knowledge tables are consulted in a fixed
// priority order (Quran, hadith, fiqh, azkar, stories, general, then the
// keyed topic map) and the first hit wins. A local hit is enriched online
// when possible; a local miss falls through to a fully generated answer.
func (r *Resolver) Ask(ctx context.Context, question string) *models.AssistantResponse {
	resp := r.resolveLocal(question)
	online := r.probe.Online(ctx)

	if resp != nil {
		if online {
			r.enrichAnswer(ctx, question, resp)
		}
	} else {
		resp = r.resolveOnline(ctx, question, online)
	}

	r.fillSuggestions(resp)
	if len(resp.SuggestedTopics) > maxSuggestedTopics {
		resp.SuggestedTopics = resp.SuggestedTopics[:maxSuggestedTopics]
	}
	return resp
}

// resolveLocal walks the tables in priority order and formats the first hit.
// Returns nil when nothing matched.
func (r *Resolver) resolveLocal(question string) *models.AssistantResponse {
	if quran := r.store.SearchQuran(question); len(quran) > 0 {
		e := quran[0]
		return &models.AssistantResponse{
			Answer:          formatQuran(e),
			Source:          models.SourceOffline,
			SuggestedTopics: e.ImportantTopics,
			RelatedContent:  models.RelatedContent{Verses: e.ImportantTopics},
		}
	}
	if hadith := r.store.SearchHadith(question); len(hadith) > 0 {
		e := hadith[0]
		return &models.AssistantResponse{
			Answer:          formatHadith(e),
			Source:          models.SourceOffline,
			SuggestedTopics: []string{e.Topic},
			RelatedContent:  models.RelatedContent{Hadiths: e.RelatedAhadith},
		}
	}
	if fiqh := r.store.SearchFiqh(question); len(fiqh) > 0 {
		e := fiqh[0]
		topics := e.PracticalTips
		if len(topics) > maxSuggestedTopics {
			topics = topics[:maxSuggestedTopics]
		}
		return &models.AssistantResponse{
			Answer:          formatFiqh(e),
			Source:          models.SourceOffline,
			SuggestedTopics: topics,
			RelatedContent:  models.RelatedContent{Verses: e.RelatedAyas},
		}
	}
	if azkar := r.store.SearchAzkar(question); len(azkar) > 0 {
		e := azkar[0]
		return &models.AssistantResponse{
			Answer:          formatAzkar(e),
			Source:          models.SourceOffline,
			SuggestedTopics: []string{"تطبيق يومي", "أوقات مختلفة", "فضائل إضافية"},
			RelatedContent:  models.RelatedContent{Azkar: []string{e.TitleArabic}},
		}
	}
	if stories := r.store.SearchStories(question); len(stories) > 0 {
		e := stories[0]
		return &models.AssistantResponse{
			Answer:          formatStory(e),
			Source:          models.SourceOffline,
			SuggestedTopics: []string{"دروس أخرى", "شخصيات إسلامية", "قصص مشابهة"},
			RelatedContent:  models.RelatedContent{Stories: []string{e.TitleArabic}},
		}
	}
	if general := r.store.SearchGeneral(question); len(general) > 0 {
		e := general[0]
		return &models.AssistantResponse{
			Answer:          formatGeneral(e),
			Source:          models.SourceOffline,
			SuggestedTopics: e.SuggestedTopics,
		}
	}
	if key, body, ok := r.store.LookupTopic(question); ok {
		return &models.AssistantResponse{
			Answer: formatTopic(key, body),
			Source: models.SourceOffline,
		}
	}
	return nil
}

// enrichAnswer appends model-generated points to a locally resolved answer.
// Failures are logged and swallowed; the local answer always survives.
func (r *Resolver) enrichAnswer(ctx context.Context, question string, resp *models.AssistantResponse) {
	resp.Source = models.SourceHybrid
	extra, err := r.enricher.Enrich(ctx, question, resp.Answer)
	if err != nil {
		if err != enrich.ErrDisabled {
			r.logger.Warn("answer enrichment failed", zap.Error(err))
		}
		return
	}
	resp.Answer += "\n✨ معلومات إضافية:\n" + extra
}

// resolveOnline handles a local miss: generate a full answer when online,
// apologize otherwise.
func (r *Resolver) resolveOnline(ctx context.Context, question string, online bool) *models.AssistantResponse {
	if !online {
		return &models.AssistantResponse{
			Answer: apologyOffline,
			Source: models.SourceOffline,
		}
	}

	answer, err := r.enricher.Answer(ctx, question)
	if err != nil {
		if err != enrich.ErrDisabled {
			r.logger.Warn("online answer generation failed", zap.Error(err))
		}
		return &models.AssistantResponse{
			Answer: apologyOnline,
			Source: models.SourceError,
		}
	}
	return &models.AssistantResponse{
		Answer: answer,
		Source: models.SourceOnline,
	}
}

// fillSuggestions tops up an empty topic list with one random zikr and one
// random story so the client always has something to offer next.
func (r *Resolver) fillSuggestions(resp *models.AssistantResponse) {
	if len(resp.SuggestedTopics) > 0 {
		return
	}
	if azkar := r.store.RandomAzkar(1); len(azkar) > 0 {
		resp.SuggestedTopics = append(resp.SuggestedTopics, "تعلم: "+azkar[0].TitleArabic)
	}
	if stories := r.store.RandomStories(1); len(stories) > 0 {
		resp.SuggestedTopics = append(resp.SuggestedTopics, "اقرأ قصة: "+stories[0].TitleArabic)
	}
}
