package quiz

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/noorlabs/murshid/internal/connectivity"
	"github.com/noorlabs/murshid/internal/enrich"
)

type fakeEnricher struct {
	text string
	err  error
}

func (f *fakeEnricher) Enrich(ctx context.Context, question, draft string) (string, error) {
	return f.text, f.err
}

func (f *fakeEnricher) Answer(ctx context.Context, question string) (string, error) {
	return f.text, f.err
}

func TestStaticBank(t *testing.T) {
	s := NewService(enrich.Disabled{}, connectivity.Static(false), zap.NewNop())
	questions := s.Static()
	if len(questions) != 5 {
		t.Fatalf("static bank has %d questions, want 5", len(questions))
	}
	for _, q := range questions {
		if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
			t.Errorf("question %s has answer index %d outside its %d options",
				q.ID, q.AnswerIndex, len(q.Options))
		}
		if q.Explanation == "" {
			t.Errorf("question %s has no explanation", q.ID)
		}
	}
}

func TestStaticReturnsCopy(t *testing.T) {
	s := NewService(enrich.Disabled{}, connectivity.Static(false), zap.NewNop())
	first := s.Static()
	first[0].Question = "mutated"
	if s.Static()[0].Question == "mutated" {
		t.Error("mutating the returned slice changed the bank")
	}
}

func TestSmartOffline(t *testing.T) {
	s := NewService(&fakeEnricher{text: "irrelevant"}, connectivity.Static(false), zap.NewNop())
	if got := s.Smart(context.Background()); len(got) != 0 {
		t.Errorf("offline smart quiz = %v, want empty", got)
	}
}

func TestSmartParsesResponse(t *testing.T) {
	payload := `[
		{"question":"كم عدد أجزاء القرآن؟","options":["20","25","30","40"],"answer_index":2,"explanation":"ثلاثون جزءاً"},
		{"question":"","options":["a"],"answer_index":0,"explanation":"skipped"},
		{"question":"bad index","options":["a","b"],"answer_index":5,"explanation":"skipped"}
	]`
	s := NewService(&fakeEnricher{text: payload}, connectivity.Static(true), zap.NewNop())

	got := s.Smart(context.Background())
	if len(got) != 1 {
		t.Fatalf("smart quiz = %d questions, want 1 valid", len(got))
	}
	q := got[0]
	if q.ID != "ai-quiz-0" || q.AnswerIndex != 2 {
		t.Errorf("parsed question = %+v", q)
	}
}

func TestSmartGenerationFailure(t *testing.T) {
	s := NewService(&fakeEnricher{err: errors.New("api down")}, connectivity.Static(true), zap.NewNop())
	if got := s.Smart(context.Background()); len(got) != 0 {
		t.Errorf("failed generation returned %v, want empty", got)
	}
}

func TestSmartUnparseableResponse(t *testing.T) {
	s := NewService(&fakeEnricher{text: "not json at all"}, connectivity.Static(true), zap.NewNop())
	if got := s.Smart(context.Background()); len(got) != 0 {
		t.Errorf("unparseable response returned %v, want empty", got)
	}
}
