package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/noorlabs/murshid/internal/models"
	"github.com/noorlabs/murshid/internal/tasmea"
	"github.com/noorlabs/murshid/internal/textsim"
	"github.com/noorlabs/murshid/pkg/utils"
)

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req models.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Debug("ask request", zap.String("query", utils.Truncate(req.Query, 120)))
	resp := s.resolver.Ask(r.Context(), req.Query)
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleFuzzySearch(w http.ResponseWriter, r *http.Request) {
	var req models.FuzzySearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	matches := textsim.FuzzySearch(req.Query, req.Candidates, req.Threshold)
	s.respondJSON(w, http.StatusOK, map[string]any{"matches": matches})
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		s.respondError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}
	limit := s.config.Search.SuggestionLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}
	suggestions := s.store.SurahSuggestions(query, limit)
	s.respondJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req models.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CorrectText == "" {
		s.respondError(w, http.StatusBadRequest, "correct_text cannot be empty")
		return
	}
	result := tasmea.Check(req.UserText, req.CorrectText)
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var input models.SessionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	session, err := s.checker.StartSession(r.Context(), input)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respondJSON(w, http.StatusCreated, session)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	surahID := 0
	if raw := r.URL.Query().Get("surah_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.respondError(w, http.StatusBadRequest, "surah_id must be a positive integer")
			return
		}
		surahID = parsed
	}
	sessions, err := s.checker.ListSessions(r.Context(), surahID)
	if err != nil {
		s.logger.Error("list sessions failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if sessions == nil {
		sessions = []*models.TasmeaSession{}
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"sessions": sessions})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	session, err := s.checker.GetSession(r.Context(), id)
	if err != nil {
		s.respondError(w, http.StatusNotFound, "session not found")
		return
	}
	s.respondJSON(w, http.StatusOK, session)
}

func (s *Server) handleCompleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req struct {
		UserText string `json:"user_text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	session, err := s.checker.CompleteSession(r.Context(), id, req.UserText)
	if err != nil {
		s.logger.Error("complete session failed", zap.String("id", id), zap.Error(err))
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, session)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.logger.Debug("delete session request", zap.String("id", id))
	if err := s.checker.DeleteSession(r.Context(), id); err != nil {
		s.respondError(w, http.StatusNotFound, "session not found")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	surahID := 0
	if raw := r.URL.Query().Get("surah_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.respondError(w, http.StatusBadRequest, "surah_id must be a positive integer")
			return
		}
		surahID = parsed
	}
	stats, err := s.checker.Stats(r.Context(), surahID)
	if err != nil {
		s.logger.Error("stats failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleQuiz(w http.ResponseWriter, r *http.Request) {
	questions := s.quiz.Static()
	if r.URL.Query().Get("smart") == "true" {
		if smart := s.quiz.Smart(r.Context()); len(smart) > 0 {
			questions = smart
		}
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"questions": questions})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
