// Package enrich augments locally resolved answers with model-generated
// supplements. The assistant treats enrichment as best effort: a failed or
// slow enrichment never blocks the local answer.
package enrich

import "context"

// Enricher produces supplemental content for answers.
type Enricher interface {
	// Enrich returns extra points for an answer already drafted from local
	// knowledge. The returned text is appended to the draft by the caller.
	Enrich(ctx context.Context, question, draft string) (string, error)

	// Answer generates a full answer when local knowledge has no match.
	Answer(ctx context.Context, question string) (string, error)
}

// Disabled is the no-op Enricher used when no API key is configured. Both
// methods report ErrDisabled.
type Disabled struct{}

func (Disabled) Enrich(ctx context.Context, question, draft string) (string, error) {
	return "", ErrDisabled
}

func (Disabled) Answer(ctx context.Context, question string) (string, error) {
	return "", ErrDisabled
}
