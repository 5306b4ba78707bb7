package enrich

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// ErrDisabled is returned when enrichment is turned off in configuration.
var ErrDisabled = errors.New("enricher disabled")

// ErrEmptyResponse is returned when the model answers with no text.
var ErrEmptyResponse = errors.New("empty model response")

const systemInstruction = "أنت مساعد إسلامي، أضف معلومات إضافية دون تكرار."

// GeminiEnricher calls the Gemini API to supplement or generate answers.
type GeminiEnricher struct {
	client      *genai.Client
	model       string
	temperature float32
	timeout     time.Duration
	logger      *zap.Logger
}

// GeminiOptions configures NewGeminiEnricher. Zero values fall back to the
// defaults noted on each field.
type GeminiOptions struct {
	APIKey      string
	Model       string        // default gemini-2.0-flash
	Temperature float32       // default 0.3
	Timeout     time.Duration // default 10s
}

// NewGeminiEnricher creates an enricher backed by the Gemini API.
func NewGeminiEnricher(ctx context.Context, opts GeminiOptions, logger *zap.Logger) (*GeminiEnricher, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	temperature := opts.Temperature
	if temperature == 0 {
		temperature = 0.3
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &GeminiEnricher{
		client:      client,
		model:       model,
		temperature: temperature,
		timeout:     timeout,
		logger:      logger,
	}, nil
}

// Enrich asks the model for brief additional points on top of a locally
// drafted answer.
func (g *GeminiEnricher) Enrich(ctx context.Context, question, draft string) (string, error) {
	prompt := fmt.Sprintf("السؤال: %s\nالإجابة الأساسية:\n%s\nأضف نقاط مهمة إضافية باختصار.", question, draft)
	return g.generate(ctx, prompt)
}

// Answer asks the model for a complete answer to a question that local
// knowledge could not resolve.
func (g *GeminiEnricher) Answer(ctx context.Context, question string) (string, error) {
	return g.generate(ctx, question)
}

func (g *GeminiEnricher) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(g.temperature),
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		g.logger.Debug("gemini generation failed", zap.Error(err))
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
