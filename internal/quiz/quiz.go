// Package quiz serves multiple choice questions: a fixed built-in bank plus
// model-generated questions when the enricher is reachable.
package quiz

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/noorlabs/murshid/internal/connectivity"
	"github.com/noorlabs/murshid/internal/enrich"
	"github.com/noorlabs/murshid/internal/models"
)

const smartQuizPrompt = `Generate 5 Arabic Islamic multiple choice questions as a JSON array.
Each element: {"question": string, "options": [4 strings], "answer_index": int, "explanation": string}.
Respond with the JSON array only, no surrounding text.`

var staticQuestions = []models.QuizQuestion{
	{
		ID:          "mc-001",
		Question:    "كم عدد أركان الإسلام؟",
		Options:     []string{"ثلاثة", "أربعة", "خمسة", "ستة"},
		AnswerIndex: 2,
		Explanation: "أركان الإسلام خمسة: الشهادتان، الصلاة، الزكاة، الصيام والحج",
		Difficulty:  "easy",
	},
	{
		ID:          "mc-002",
		Question:    "كم عدد أركان الإيمان؟",
		Options:     []string{"خمسة", "ستة", "سبعة", "ثمانية"},
		AnswerIndex: 1,
		Explanation: "أركان الإيمان ستة: الإيمان بالله وملائكته وكتبه ورسله واليوم الآخر والقدر",
		Difficulty:  "easy",
	},
	{
		ID:          "mc-003",
		Question:    "كم عدد الصلوات المفروضة؟",
		Options:     []string{"ثلاث", "أربع", "خمس", "ست"},
		AnswerIndex: 2,
		Explanation: "الصلوات المفروضة خمس: الفجر والظهر والعصر والمغرب والعشاء",
		Difficulty:  "easy",
	},
	{
		ID:          "mc-004",
		Question:    "كم عدد سور القرآن الكريم؟",
		Options:     []string{"100", "110", "114", "120"},
		AnswerIndex: 2,
		Explanation: "القرآن الكريم 114 سورة",
		Difficulty:  "hard",
	},
	{
		ID:          "mc-005",
		Question:    "في أي شهر الصيام المفروض؟",
		Options:     []string{"محرم", "رمضان", "شوال", "ذو الحجة"},
		AnswerIndex: 1,
		Explanation: "الصيام المفروض في رمضان",
		Difficulty:  "easy",
	},
}

// Service hands out quiz questions.
type Service struct {
	enricher enrich.Enricher
	probe    connectivity.Probe
	logger   *zap.Logger
}

// NewService creates a quiz service. The enricher and probe drive the smart
// quiz path only; the static bank needs neither.
func NewService(enricher enrich.Enricher, probe connectivity.Probe, logger *zap.Logger) *Service {
	return &Service{enricher: enricher, probe: probe, logger: logger}
}

// Static returns a copy of the built-in question bank.
func (s *Service) Static() []models.QuizQuestion {
	out := make([]models.QuizQuestion, len(staticQuestions))
	copy(out, staticQuestions)
	return out
}

// Smart asks the model for freshly generated questions. Offline, disabled, or
// failing generation all degrade to an empty slice so callers can fall back
// to the static bank.
func (s *Service) Smart(ctx context.Context) []models.QuizQuestion {
	if !s.probe.Online(ctx) {
		return []models.QuizQuestion{}
	}

	text, err := s.enricher.Answer(ctx, smartQuizPrompt)
	if err != nil {
		if err != enrich.ErrDisabled {
			s.logger.Warn("smart quiz generation failed", zap.Error(err))
		}
		return []models.QuizQuestion{}
	}

	questions, err := parseQuestions(text)
	if err != nil {
		s.logger.Warn("smart quiz response unparseable", zap.Error(err))
		return []models.QuizQuestion{}
	}
	return questions
}

func parseQuestions(text string) ([]models.QuizQuestion, error) {
	var raw []struct {
		Question    string   `json:"question"`
		Options     []string `json:"options"`
		AnswerIndex int      `json:"answer_index"`
		Explanation string   `json:"explanation"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse quiz JSON: %w", err)
	}

	questions := make([]models.QuizQuestion, 0, len(raw))
	for i, q := range raw {
		if q.Question == "" || len(q.Options) == 0 {
			continue
		}
		if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
			continue
		}
		questions = append(questions, models.QuizQuestion{
			ID:          fmt.Sprintf("ai-quiz-%d", i),
			Question:    q.Question,
			Options:     q.Options,
			AnswerIndex: q.AnswerIndex,
			Explanation: q.Explanation,
			Difficulty:  "medium",
		})
	}
	return questions, nil
}
