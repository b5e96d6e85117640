package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// QuestionRepository wraps gorm queries over the questions table.
type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// Count returns the number of stored questions.
func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Question{}).Count(&n).Error
	return n, err
}

// Page returns up to limit questions ordered by id, skipping offset rows.
func (r *QuestionRepository) Page(ctx context.Context, offset, limit int) ([]Question, error) {
	var rows []Question
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// Create inserts q and fills in its generated id.
func (r *QuestionRepository) Create(ctx context.Context, q *Question) error {
	return r.db.WithContext(ctx).Create(q).Error
}

// Delete removes the question with id, returning ErrNotFound when nothing was deleted.
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Question{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Search matches term as a case-insensitive literal substring of the question text.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]Question, error) {
	var rows []Question
	pattern := "%" + likeEscaper.Replace(term) + "%"
	err := r.db.WithContext(ctx).
		Where("question ILIKE ?", pattern).
		Order("id").
		Find(&rows).Error
	return rows, err
}

// ByCategory lists the questions filed under category.
func (r *QuestionRepository) ByCategory(ctx context.Context, category string) ([]Question, error) {
	var rows []Question
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("id").
		Find(&rows).Error
	return rows, err
}

// QuizPool lists candidate quiz questions. An empty category means every
// category; ids in exclude are left out.
func (r *QuestionRepository) QuizPool(ctx context.Context, category string, exclude []int) ([]Question, error) {
	q := r.db.WithContext(ctx).Model(&Question{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if len(exclude) > 0 {
		q = q.Where("id NOT IN ?", exclude)
	}
	var rows []Question
	err := q.Order("id").Find(&rows).Error
	return rows, err
}
