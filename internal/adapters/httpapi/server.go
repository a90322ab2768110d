// Package httpapi exposes the awareness application as a small JSON API.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/phishwise/phishwise/internal/application"
	"github.com/phishwise/phishwise/internal/domain"
	"github.com/phishwise/phishwise/internal/domain/assessment"
)

// Server wires the analysis service into chi handlers
type Server struct {
	service *application.AnalysisService
	log     zerolog.Logger
}

func New(service *application.AnalysisService, log zerolog.Logger) *Server {
	return &Server{service: service, log: log}
}

// Routes mounts every API endpoint
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/analyze/{kind}", s.handleAnalyze)
		r.Get("/examples/{kind}", s.handleExamples)
		r.Get("/quiz", s.handleQuiz)
		r.Get("/assessment", s.handleAssessmentQuestions)
		r.Post("/assessment", s.handleAssessment)
		r.Post("/chat", s.handleChat)
	})
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	kind, ok := domain.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown artifact kind")
		return
	}

	var artifact domain.Artifact
	if err := json.NewDecoder(r.Body).Decode(&artifact); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	artifact.Kind = kind

	writeJSON(w, http.StatusOK, s.service.Analyze(artifact))
}

func (s *Server) handleExamples(w http.ResponseWriter, r *http.Request) {
	kind, ok := domain.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown artifact kind")
		return
	}

	records, err := s.service.Examples(kind)
	if err != nil {
		s.log.Error().Err(err).Str("kind", string(kind)).Msg("examples lookup failed")
		writeError(w, http.StatusInternalServerError, "examples unavailable")
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleQuiz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Quiz())
}

func (s *Server) handleAssessmentQuestions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, assessment.Questions)
}

func (s *Server) handleAssessment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answers []int `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.service.ScoreAssessment(req.Answers)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleChat relays the conversation to the assistant and streams the reply
// back as server-sent events, one data line per chunk.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Messages []domain.ChatMessage `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Messages) == 0 {
		writeError(w, http.StatusBadRequest, "empty conversation")
		return
	}
	if !s.service.ChatEnabled() {
		writeError(w, http.StatusServiceUnavailable, "assistant not configured")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	err := s.service.StreamChat(r.Context(), req.Messages, func(text string) error {
		if _, err := w.Write([]byte("data: " + text + "\n\n")); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		// headers are already sent; signal failure in-stream
		s.log.Error().Err(err).Msg("chat stream failed")
		_, _ = w.Write([]byte("event: error\ndata: assistant unavailable\n\n"))
		flusher.Flush()
		return
	}

	_, _ = w.Write([]byte("event: done\ndata: [DONE]\n\n"))
	flusher.Flush()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
