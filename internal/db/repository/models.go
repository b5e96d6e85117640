package repository

import "errors"

// ErrNotFound is returned when a looked-up row does not exist.
var ErrNotFound = errors.New("record not found")

// Question is a row of the questions table. Category holds the decimal text
// form of a Category id.
type Question struct {
	ID         int    `gorm:"primaryKey"`
	Question   string `gorm:"type:text;not null"`
	Answer     string `gorm:"type:text;not null"`
	Category   string `gorm:"type:text;index"`
	Difficulty int
}

func (Question) TableName() string { return "questions" }

// Category is a row of the categories table.
type Category struct {
	ID   int    `gorm:"primaryKey"`
	Type string `gorm:"type:text;not null"`
}

func (Category) TableName() string { return "categories" }
