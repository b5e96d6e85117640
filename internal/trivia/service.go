package trivia

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/logging"
)

type questionStore interface {
	Count(ctx context.Context) (int64, error)
	Page(ctx context.Context, offset, limit int) ([]repository.Question, error)
	Create(ctx context.Context, q *repository.Question) error
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, term string) ([]repository.Question, error)
	ByCategory(ctx context.Context, category string) ([]repository.Question, error)
	QuizPool(ctx context.Context, category string, exclude []int) ([]repository.Question, error)
}

type categoryStore interface {
	List(ctx context.Context) ([]repository.Category, error)
}

// Service implements the trivia operations on top of the injected stores.
type Service struct {
	questions  questionStore
	categories categoryStore
	cache      CategoryCache
	intn       func(n int) int
}

// ServiceOptions tunes optional collaborators. A nil Cache disables caching,
// a nil Intn uses math/rand.
type ServiceOptions struct {
	Cache CategoryCache
	Intn  func(n int) int
}

func NewService(questions questionStore, categories categoryStore, opts ServiceOptions) *Service {
	intn := opts.Intn
	if intn == nil {
		intn = rand.Intn
	}
	return &Service{
		questions:  questions,
		categories: categories,
		cache:      opts.Cache,
		intn:       intn,
	}
}

// ListCategories returns the id -> label map. An empty table is ErrNotFound.
func (s *Service) ListCategories(ctx context.Context) (map[int]string, error) {
	categories, err := s.categoryMap(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("no categories: %w", ErrNotFound)
	}
	return categories, nil
}

// ListQuestions returns one page of the id-ordered question set. Pages past
// the end yield an empty list.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionPage, error) {
	total, err := s.questions.Count(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("count questions: %w: %v", ErrStore, err)
	}

	questions := []Question{}
	if offset, ok := pageBounds(page); ok && int64(offset) < total {
		rows, err := s.questions.Page(ctx, offset, QuestionsPerPage)
		if err != nil {
			return QuestionPage{}, fmt.Errorf("page questions: %w: %v", ErrStore, err)
		}
		questions = toDomainList(rows)
	}

	categories, err := s.categoryMap(ctx)
	if err != nil {
		return QuestionPage{}, err
	}

	return QuestionPage{
		Questions:  questions,
		Total:      total,
		Categories: categories,
	}, nil
}

// DeleteQuestion removes a question by id.
func (s *Service) DeleteQuestion(ctx context.Context, id int) error {
	if err := s.questions.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("question %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("delete question %d: %w: %v", id, ErrStore, err)
	}
	logger := logging.FromContext(ctx)
	logger.Info().Int("question_id", id).Msg("question deleted")
	return nil
}

// CreateQuestion validates req and stores it, returning the new id. Nothing is
// written when a field is missing or falsy.
func (s *Service) CreateQuestion(ctx context.Context, req CreateQuestionRequest) (int, error) {
	if err := validateCreate(req); err != nil {
		return 0, err
	}

	row := repository.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category.String(),
		Difficulty: int(req.Difficulty),
	}
	if err := s.questions.Create(ctx, &row); err != nil {
		return 0, fmt.Errorf("insert question: %w: %v", ErrStore, err)
	}
	logger := logging.FromContext(ctx)
	logger.Info().Int("question_id", row.ID).Str("category", row.Category).Msg("question created")
	return row.ID, nil
}

func validateCreate(req CreateQuestionRequest) error {
	var missing []string
	if req.Question == "" {
		missing = append(missing, "question")
	}
	if req.Answer == "" {
		missing = append(missing, "answer")
	}
	if req.Category.Empty() {
		missing = append(missing, "category")
	}
	if req.Difficulty == 0 {
		missing = append(missing, "difficulty")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing %s: %w", strings.Join(missing, ", "), ErrInvalidInput)
	}
	return nil
}

// SearchQuestions matches term case-insensitively against question text.
// An empty term is ErrInvalidInput.
func (s *Service) SearchQuestions(ctx context.Context, term string) ([]Question, error) {
	if term == "" {
		return nil, fmt.Errorf("empty search term: %w", ErrInvalidInput)
	}
	rows, err := s.questions.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w: %v", ErrStore, err)
	}
	return toDomainList(rows), nil
}

// QuestionsByCategory lists every question filed under categoryID.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID int) ([]Question, error) {
	rows, err := s.questions.ByCategory(ctx, strconv.Itoa(categoryID))
	if err != nil {
		return nil, fmt.Errorf("questions for category %d: %w: %v", categoryID, ErrStore, err)
	}
	return toDomainList(rows), nil
}

// NextQuizQuestion draws a random question from the requested category (or
// from all of them for category 0) that is not in req.PreviousQuestions. A nil
// question with a nil error means the pool is exhausted.
func (s *Service) NextQuizQuestion(ctx context.Context, req QuizRequest) (*Question, error) {
	if req.QuizCategory == nil || req.PreviousQuestions == nil {
		return nil, fmt.Errorf("quiz_category and previous_questions are required: %w", ErrInvalidInput)
	}
	ref := req.QuizCategory.ID
	if !ref.Present() || ref.String() == "" {
		return nil, fmt.Errorf("quiz_category.id is required: %w", ErrInvalidInput)
	}

	category := ref.String()
	if ref.IsAll() {
		category = ""
	}

	pool, err := s.questions.QuizPool(ctx, category, req.PreviousQuestions)
	if err != nil {
		return nil, fmt.Errorf("quiz pool: %w: %v", ErrStore, err)
	}
	if len(pool) == 0 {
		return nil, nil
	}

	q := toDomain(pool[s.intn(len(pool))])
	return &q, nil
}

// RefreshCategories reloads the category map from the store into the cache.
func (s *Service) RefreshCategories(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	categories, err := s.loadCategories(ctx)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, categories)
}

func (s *Service) categoryMap(ctx context.Context) (map[int]string, error) {
	logger := logging.FromContext(ctx)
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("category cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	categories, err := s.loadCategories(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && len(categories) > 0 {
		if err := s.cache.Set(ctx, categories); err != nil {
			logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return categories, nil
}

func (s *Service) loadCategories(ctx context.Context) (map[int]string, error) {
	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w: %v", ErrStore, err)
	}
	categories := make(map[int]string, len(rows))
	for _, row := range rows {
		categories[row.ID] = row.Type
	}
	return categories, nil
}

func toDomain(row repository.Question) Question {
	return Question{
		ID:         row.ID,
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   row.Category,
		Difficulty: row.Difficulty,
	}
}

func toDomainList(rows []repository.Question) []Question {
	out := make([]Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out
}
