package repository

import (
	"context"

	"gorm.io/gorm"
)

// CategoryRepository exposes read access to categories.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns every category ordered by id.
func (r *CategoryRepository) List(ctx context.Context) ([]Category, error) {
	var rows []Category
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}
