package enrich

import (
	"context"
	"testing"
)

func TestDisabledEnricher(t *testing.T) {
	ctx := context.Background()
	d := Disabled{}

	if _, err := d.Enrich(ctx, "سؤال", "مسودة"); err != ErrDisabled {
		t.Errorf("Enrich error = %v, want ErrDisabled", err)
	}
	if _, err := d.Answer(ctx, "سؤال"); err != ErrDisabled {
		t.Errorf("Answer error = %v, want ErrDisabled", err)
	}
}

func TestNewGeminiEnricherRequiresKey(t *testing.T) {
	if _, err := NewGeminiEnricher(context.Background(), GeminiOptions{}, nil); err == nil {
		t.Error("expected error for empty API key")
	}
}
