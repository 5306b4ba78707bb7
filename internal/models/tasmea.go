package models

import (
	"fmt"
	"time"
)

// TasmeaErrorType classifies a word-level recitation mistake.
type TasmeaErrorType string

const (
	ErrorMissing  TasmeaErrorType = "missing"
	ErrorExtra    TasmeaErrorType = "extra"
	ErrorSpelling TasmeaErrorType = "spelling"
)

// TasmeaError is a single word-level mistake found during a recitation check.
// Position is the word index in the correct text; for extra words it is the
// length of the correct text's word sequence.
type TasmeaError struct {
	Position    int             `json:"position"`
	UserWord    string          `json:"user_word"`
	CorrectWord string          `json:"correct_word"`
	Type        TasmeaErrorType `json:"type"`
}

// TasmeaSession tracks one recitation check from start to completion.
// A session is created when the attempt begins and mutated once when the
// attempt is checked; long-term persistence is handled by the storage layer.
type TasmeaSession struct {
	ID          string        `json:"id" db:"id"`
	SurahID     int           `json:"surah_id" db:"surah_id"`
	SurahName   string        `json:"surah_name" db:"surah_name"`
	StartAyah   int           `json:"start_ayah" db:"start_ayah"`
	EndAyah     int           `json:"end_ayah" db:"end_ayah"`
	UserText    string        `json:"user_text" db:"user_text"`
	CorrectText string        `json:"correct_text" db:"correct_text"`
	Accuracy    int           `json:"accuracy" db:"accuracy"` // 0-100
	Errors      []TasmeaError `json:"errors" db:"errors"`
	StartTime   time.Time     `json:"start_time" db:"start_time"`
	EndTime     *time.Time    `json:"end_time,omitempty" db:"end_time"`
	Duration    int           `json:"duration_seconds" db:"duration"` // seconds, 0 until completed
}

// Completed reports whether the session has been checked.
func (s *TasmeaSession) Completed() bool {
	return s.EndTime != nil
}

// CheckRequest is a standalone recitation check without a session.
type CheckRequest struct {
	UserText    string `json:"user_text"`
	CorrectText string `json:"correct_text"`
}

// CheckResult is the outcome of a recitation check.
type CheckResult struct {
	Accuracy int           `json:"accuracy"` // 0-100
	Errors   []TasmeaError `json:"errors"`
}

// SessionInput is the input for creating a recitation session.
type SessionInput struct {
	SurahID     int    `json:"surah_id"`
	SurahName   string `json:"surah_name"`
	StartAyah   int    `json:"start_ayah"`
	EndAyah     int    `json:"end_ayah"`
	CorrectText string `json:"correct_text"`
}

// Validate checks the session input fields.
func (in *SessionInput) Validate() error {
	if in.CorrectText == "" {
		return fmt.Errorf("correct_text cannot be empty")
	}
	if in.SurahID <= 0 {
		return fmt.Errorf("surah_id must be positive")
	}
	if in.StartAyah <= 0 || in.EndAyah < in.StartAyah {
		return fmt.Errorf("invalid ayah range %d-%d", in.StartAyah, in.EndAyah)
	}
	return nil
}

// SessionStats aggregates completed recitation sessions.
type SessionStats struct {
	TotalSessions   int `json:"total_sessions"`
	AverageAccuracy int `json:"average_accuracy"`
	BestAccuracy    int `json:"best_accuracy"`
	TotalTime       int `json:"total_time_seconds"`
}
