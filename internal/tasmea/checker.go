// Package tasmea implements recitation checking: scoring a user's recited
// text against the correct text and tracking check sessions.
package tasmea

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noorlabs/murshid/internal/models"
	"github.com/noorlabs/murshid/internal/textsim"
)

// Checker scores recitations and manages session lifecycle against a store.
type Checker struct {
	store  SessionStore
	logger *zap.Logger
}

// SessionStore persists recitation sessions.
type SessionStore interface {
	SaveSession(ctx context.Context, session *models.TasmeaSession) error
	GetSession(ctx context.Context, id string) (*models.TasmeaSession, error)
	ListSessions(ctx context.Context, surahID int) ([]*models.TasmeaSession, error)
	DeleteSession(ctx context.Context, id string) error
	Stats(ctx context.Context, surahID int) (*models.SessionStats, error)
}

// NewChecker creates a checker over the given session store.
func NewChecker(store SessionStore, logger *zap.Logger) *Checker {
	return &Checker{store: store, logger: logger}
}

// Check scores a recitation without touching any session. Accuracy is the
// whole-text similarity scaled to 0-100; errors pinpoint each diverging word.
func Check(userText, correctText string) models.CheckResult {
	sim := textsim.Similarity(userText, correctText)
	return models.CheckResult{
		Accuracy: int(math.Round(sim * 100)),
		Errors:   textsim.LocateErrors(userText, correctText),
	}
}

// StartSession creates and persists a new recitation session.
func (c *Checker) StartSession(ctx context.Context, in models.SessionInput) (*models.TasmeaSession, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	session := &models.TasmeaSession{
		ID:          uuid.New().String(),
		SurahID:     in.SurahID,
		SurahName:   in.SurahName,
		StartAyah:   in.StartAyah,
		EndAyah:     in.EndAyah,
		CorrectText: in.CorrectText,
		Errors:      []models.TasmeaError{},
		StartTime:   time.Now(),
	}
	if err := c.store.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	c.logger.Debug("recitation session started",
		zap.String("id", session.ID),
		zap.Int("surah_id", session.SurahID))
	return session, nil
}

// CompleteSession scores the user's recitation and closes the session.
// Completing an already completed session is an error.
func (c *Checker) CompleteSession(ctx context.Context, id, userText string) (*models.TasmeaSession, error) {
	session, err := c.store.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Completed() {
		return nil, fmt.Errorf("session %s is already completed", id)
	}

	result := Check(userText, session.CorrectText)
	now := time.Now()
	session.UserText = userText
	session.Accuracy = result.Accuracy
	session.Errors = result.Errors
	session.EndTime = &now
	session.Duration = int(now.Sub(session.StartTime).Seconds())

	if err := c.store.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	c.logger.Debug("recitation session completed",
		zap.String("id", session.ID),
		zap.Int("accuracy", session.Accuracy),
		zap.Int("errors", len(session.Errors)))
	return session, nil
}

// GetSession returns one session by ID.
func (c *Checker) GetSession(ctx context.Context, id string) (*models.TasmeaSession, error) {
	return c.store.GetSession(ctx, id)
}

// ListSessions returns sessions newest first, optionally filtered by surah.
// A surahID of 0 returns all sessions.
func (c *Checker) ListSessions(ctx context.Context, surahID int) ([]*models.TasmeaSession, error) {
	return c.store.ListSessions(ctx, surahID)
}

// DeleteSession removes one session by ID.
func (c *Checker) DeleteSession(ctx context.Context, id string) error {
	return c.store.DeleteSession(ctx, id)
}

// Stats aggregates completed sessions, optionally restricted to one surah.
// A surahID of 0 covers all surahs.
func (c *Checker) Stats(ctx context.Context, surahID int) (*models.SessionStats, error) {
	return c.store.Stats(ctx, surahID)
}
