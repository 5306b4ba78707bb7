package models

import "fmt"

// Source describes where an assistant answer came from.
type Source string

const (
	// SourceOffline means the answer was produced entirely from local tables.
	SourceOffline Source = "offline"
	// SourceOnline means the answer came from the external enricher alone.
	SourceOnline Source = "online"
	// SourceHybrid means a local answer was supplemented by the enricher.
	SourceHybrid Source = "hybrid"
	// SourceError means the online path was attempted and failed. Kept
	// distinct from SourceOnline so clients can tell "we tried and got
	// nothing" apart from a real online answer.
	SourceError Source = "error"
)

// RelatedContent groups cross-references attached to an answer.
type RelatedContent struct {
	Verses  []string `json:"verses,omitempty"`
	Hadiths []string `json:"hadiths,omitempty"`
	Stories []string `json:"stories,omitempty"`
	Azkar   []string `json:"azkar,omitempty"`
}

// AssistantResponse is the ephemeral result of resolving one query.
type AssistantResponse struct {
	Answer          string         `json:"answer"`
	Source          Source         `json:"source"`
	SuggestedTopics []string       `json:"suggested_topics"`
	RelatedContent  RelatedContent `json:"related_content"`
}

// AskRequest is a single assistant query.
type AskRequest struct {
	Query string `json:"query"`
}

// Validate ensures the request carries a non-empty query.
func (r *AskRequest) Validate() error {
	if r.Query == "" {
		return fmt.Errorf("query cannot be empty")
	}
	return nil
}

// FuzzySearchRequest asks for candidates similar to a query.
type FuzzySearchRequest struct {
	Query      string   `json:"query"`
	Candidates []string `json:"candidates"`
	Threshold  float64  `json:"threshold,omitempty"`
}

// Validate checks the query and normalizes the threshold.
// A zero threshold falls back to the default of 0.6.
func (r *FuzzySearchRequest) Validate() error {
	if r.Query == "" {
		return fmt.Errorf("query cannot be empty")
	}
	if r.Threshold == 0 {
		r.Threshold = 0.6
	}
	if r.Threshold < 0 || r.Threshold > 1 {
		return fmt.Errorf("threshold must be in [0,1], got %v", r.Threshold)
	}
	return nil
}
