package trivia

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// HTTPHandlers exposes the trivia REST endpoints.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for trivia endpoints.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

// Register mounts the endpoints on r.
func (h *HTTPHandlers) Register(r chi.Router) {
	r.Get("/categories", h.ListCategories)
	r.Get("/categories/{id:[0-9]+}/questions", h.QuestionsByCategory)
	r.Get("/questions", h.ListQuestions)
	r.Post("/questions", h.CreateQuestion)
	r.Post("/questions/search", h.SearchQuestions)
	r.Delete("/questions/{id:[0-9]+}", h.DeleteQuestion)
	r.Post("/quizzes", h.PlayQuiz)
}

// ListCategories handles GET /categories
func (h *HTTPHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.fail(w, r, err, listStatuses)
		return
	}
	httperrors.RespondSuccess(w, map[string]interface{}{
		"categories": categories,
	})
}

// ListQuestions handles GET /questions?page=N
func (h *HTTPHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page := ParsePage(r.URL.Query().Get("page"))

	result, err := h.svc.ListQuestions(r.Context(), page)
	if err != nil {
		h.fail(w, r, err, listStatuses)
		return
	}
	httperrors.RespondSuccess(w, map[string]interface{}{
		"questions":        result.Questions,
		"total_questions":  result.Total,
		"current_category": nil,
		"categories":       result.Categories,
	})
}

// DeleteQuestion handles DELETE /questions/{id}
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}
	if err := h.svc.DeleteQuestion(r.Context(), id); err != nil {
		h.fail(w, r, err, deleteStatuses)
		return
	}
	httperrors.RespondSuccess(w, map[string]interface{}{
		"deleted_question": id,
	})
}

// CreateQuestion handles POST /questions
func (h *HTTPHandlers) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req CreateQuestionRequest
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err, createStatuses)
		return
	}
	id, err := h.svc.CreateQuestion(r.Context(), req)
	if err != nil {
		h.fail(w, r, err, createStatuses)
		return
	}
	httperrors.RespondSuccess(w, map[string]interface{}{
		"new_question": id,
	})
}

// SearchQuestions handles POST /questions/search
func (h *HTTPHandlers) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err, searchStatuses)
		return
	}
	questions, err := h.svc.SearchQuestions(r.Context(), string(req.SearchTerm))
	if err != nil {
		h.fail(w, r, err, searchStatuses)
		return
	}
	httperrors.RespondSuccess(w, map[string]interface{}{
		"questions":        questions,
		"total_questions":  len(questions),
		"current_category": nil,
	})
}

// QuestionsByCategory handles GET /categories/{id}/questions
func (h *HTTPHandlers) QuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}
	questions, err := h.svc.QuestionsByCategory(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, categoryQuestionStatuses)
		return
	}
	httperrors.RespondSuccess(w, map[string]interface{}{
		"current_category": id,
		"questions":        questions,
		"total_questions":  len(questions),
	})
}

// PlayQuiz handles POST /quizzes
func (h *HTTPHandlers) PlayQuiz(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err, quizStatuses)
		return
	}
	question, err := h.svc.NextQuizQuestion(r.Context(), req)
	if err != nil {
		h.fail(w, r, err, quizStatuses)
		return
	}
	httperrors.RespondSuccess(w, map[string]interface{}{
		"question": question,
	})
}

func (h *HTTPHandlers) fail(w http.ResponseWriter, r *http.Request, err error, statuses statusMap) {
	status := statuses.statusFor(err)
	logger := h.requestLogger(r)
	if errors.Is(err, ErrStore) || status >= http.StatusInternalServerError {
		logger.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		logger.Debug().Err(err).Int("status", status).Msg("request rejected")
	}
	httperrors.RespondError(w, status)
}

func (h *HTTPHandlers) requestLogger(r *http.Request) zerolog.Logger {
	if logger := logging.FromContext(r.Context()); logger.GetLevel() != zerolog.Disabled {
		return logger.With().Str("component", "trivia_http").Logger()
	}
	return h.logger
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.As(err, &syntaxErr) {
			return fmt.Errorf("%w: %v", ErrMalformedBody, err)
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
