package trivia

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
)

type mockQuestionStore struct {
	mock.Mock
}

func (m *mockQuestionStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockQuestionStore) Page(ctx context.Context, offset, limit int) ([]repository.Question, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]repository.Question), args.Error(1)
}

func (m *mockQuestionStore) Create(ctx context.Context, q *repository.Question) error {
	return m.Called(ctx, q).Error(0)
}

func (m *mockQuestionStore) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockQuestionStore) Search(ctx context.Context, term string) ([]repository.Question, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]repository.Question), args.Error(1)
}

func (m *mockQuestionStore) ByCategory(ctx context.Context, category string) ([]repository.Question, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]repository.Question), args.Error(1)
}

func (m *mockQuestionStore) QuizPool(ctx context.Context, category string, exclude []int) ([]repository.Question, error) {
	args := m.Called(ctx, category, exclude)
	return args.Get(0).([]repository.Question), args.Error(1)
}

type mockCategoryStore struct {
	mock.Mock
}

func (m *mockCategoryStore) List(ctx context.Context) ([]repository.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.Category), args.Error(1)
}

type memoryCache struct {
	mu     sync.Mutex
	data   map[int]string
	sets   int
	getErr error
}

func (c *memoryCache) Get(_ context.Context) (map[int]string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	if c.data == nil {
		return nil, false, nil
	}
	return c.data, true, nil
}

func (c *memoryCache) Set(_ context.Context, categories map[int]string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = categories
	c.sets++
	return nil
}

func (c *memoryCache) setCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sets
}

func sampleCategories() []repository.Category {
	return []repository.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
	}
}

func sampleQuestions(n int) []repository.Question {
	rows := make([]repository.Question, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, repository.Question{
			ID:         i,
			Question:   "Question " + string(rune('A'+i-1)),
			Answer:     "Answer",
			Category:   "1",
			Difficulty: 2,
		})
	}
	return rows
}
