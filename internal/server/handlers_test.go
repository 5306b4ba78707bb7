package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/noorlabs/murshid/internal/assistant"
	"github.com/noorlabs/murshid/internal/config"
	"github.com/noorlabs/murshid/internal/connectivity"
	"github.com/noorlabs/murshid/internal/enrich"
	"github.com/noorlabs/murshid/internal/knowledge"
	"github.com/noorlabs/murshid/internal/models"
	"github.com/noorlabs/murshid/internal/quiz"
	"github.com/noorlabs/murshid/internal/storage"
	"github.com/noorlabs/murshid/internal/tasmea"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := zap.NewNop()
	store := knowledge.NewStore()

	db, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "murshid.db"))
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	resolver := assistant.NewResolver(store, enrich.Disabled{}, connectivity.Static(false), logger)
	checker := tasmea.NewChecker(db, logger)
	quizService := quiz.NewService(enrich.Disabled{}, connectivity.Static(false), logger)
	return NewServer(resolver, checker, store, quizService, cfg, logger)
}

func doRequest(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)
	w := doRequest(t, srv, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("health status = %d", w.Code)
	}
}

func TestHandleAsk(t *testing.T) {
	srv := newTestServer(t)
	w := doRequest(t, srv, http.MethodPost, "/api/v1/ask", models.AskRequest{Query: "الفاتحة"})
	if w.Code != http.StatusOK {
		t.Fatalf("ask status = %d, body %s", w.Code, w.Body.String())
	}

	var resp models.AssistantResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Source != models.SourceOffline {
		t.Errorf("source = %s, want offline", resp.Source)
	}
	if resp.Answer == "" {
		t.Error("empty answer")
	}
}

func TestHandleAskEmptyQuery(t *testing.T) {
	srv := newTestServer(t)
	w := doRequest(t, srv, http.MethodPost, "/api/v1/ask", models.AskRequest{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleFuzzySearch(t *testing.T) {
	srv := newTestServer(t)
	req := models.FuzzySearchRequest{
		Query:      "الرحمن",
		Candidates: []string{"الرحمان", "العالمين"},
	}
	w := doRequest(t, srv, http.MethodPost, "/api/v1/search/fuzzy", req)
	if w.Code != http.StatusOK {
		t.Fatalf("fuzzy search status = %d", w.Code)
	}

	var resp struct {
		Matches []string `json:"matches"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Matches) != 1 || resp.Matches[0] != "الرحمان" {
		t.Errorf("matches = %v", resp.Matches)
	}
}

func TestHandleSuggestions(t *testing.T) {
	srv := newTestServer(t)
	w := doRequest(t, srv, http.MethodGet, "/api/v1/suggestions?q=يوسف", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("suggestions status = %d", w.Code)
	}
	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Suggestions) != 1 || resp.Suggestions[0] != "يوسف" {
		t.Errorf("suggestions = %v", resp.Suggestions)
	}

	w = doRequest(t, srv, http.MethodGet, "/api/v1/suggestions", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing q status = %d, want 400", w.Code)
	}
}

func TestHandleCheck(t *testing.T) {
	srv := newTestServer(t)
	req := models.CheckRequest{
		UserText:    "بسم الله الرحمان الرحيم",
		CorrectText: "بسم الله الرحمن الرحيم",
	}
	w := doRequest(t, srv, http.MethodPost, "/api/v1/recitation/check", req)
	if w.Code != http.StatusOK {
		t.Fatalf("check status = %d", w.Code)
	}

	var result models.CheckResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if result.Accuracy <= 80 || result.Accuracy >= 100 {
		t.Errorf("accuracy = %d", result.Accuracy)
	}
	if len(result.Errors) != 1 || result.Errors[0].Type != models.ErrorSpelling {
		t.Errorf("errors = %v", result.Errors)
	}
}

func TestSessionEndpoints(t *testing.T) {
	srv := newTestServer(t)

	input := models.SessionInput{
		SurahID:     1,
		SurahName:   "الفاتحة",
		StartAyah:   1,
		EndAyah:     1,
		CorrectText: "بسم الله الرحمن الرحيم",
	}
	w := doRequest(t, srv, http.MethodPost, "/api/v1/recitation/sessions", input)
	if w.Code != http.StatusCreated {
		t.Fatalf("start session status = %d, body %s", w.Code, w.Body.String())
	}
	var session models.TasmeaSession
	if err := json.Unmarshal(w.Body.Bytes(), &session); err != nil {
		t.Fatalf("failed to decode session: %v", err)
	}

	path := fmt.Sprintf("/api/v1/recitation/sessions/%s/complete", session.ID)
	w = doRequest(t, srv, http.MethodPost, path, map[string]string{"user_text": "بسم الله الرحمن الرحيم"})
	if w.Code != http.StatusOK {
		t.Fatalf("complete session status = %d, body %s", w.Code, w.Body.String())
	}
	var completed models.TasmeaSession
	if err := json.Unmarshal(w.Body.Bytes(), &completed); err != nil {
		t.Fatalf("failed to decode completed session: %v", err)
	}
	if completed.Accuracy != 100 {
		t.Errorf("accuracy = %d, want 100", completed.Accuracy)
	}

	w = doRequest(t, srv, http.MethodGet, "/api/v1/recitation/sessions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list sessions status = %d", w.Code)
	}

	w = doRequest(t, srv, http.MethodGet, "/api/v1/recitation/stats?surah_id=1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats status = %d", w.Code)
	}
	var stats models.SessionStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("failed to decode stats: %v", err)
	}
	if stats.TotalSessions != 1 || stats.BestAccuracy != 100 {
		t.Errorf("stats = %+v", stats)
	}

	w = doRequest(t, srv, http.MethodDelete, "/api/v1/recitation/sessions/"+session.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete session status = %d", w.Code)
	}
	w = doRequest(t, srv, http.MethodGet, "/api/v1/recitation/sessions/"+session.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get deleted session status = %d, want 404", w.Code)
	}
}

func TestHandleQuiz(t *testing.T) {
	srv := newTestServer(t)
	w := doRequest(t, srv, http.MethodGet, "/api/v1/quiz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("quiz status = %d", w.Code)
	}
	var resp struct {
		Questions []models.QuizQuestion `json:"questions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Questions) != 5 {
		t.Errorf("quiz returned %d questions, want 5", len(resp.Questions))
	}

	// Offline smart quiz falls back to the static bank.
	w = doRequest(t, srv, http.MethodGet, "/api/v1/quiz?smart=true", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("smart quiz status = %d", w.Code)
	}
}
