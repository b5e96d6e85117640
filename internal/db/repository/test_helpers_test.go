package repository

import (
	"os"
	"sync"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	dbOnce sync.Once
	testDB *gorm.DB
	dbErr  error
)

// openTestDB connects to TEST_POSTGRES_DSN, skipping when it is unset.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("set TEST_POSTGRES_DSN to run repository tests")
	}

	dbOnce.Do(func() {
		testDB, dbErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if dbErr != nil {
			return
		}
		dbErr = testDB.AutoMigrate(&Category{}, &Question{})
	})
	if dbErr != nil {
		t.Fatalf("init test db: %v", dbErr)
	}

	tx := testDB.Begin()
	if tx.Error != nil {
		t.Fatalf("begin tx: %v", tx.Error)
	}
	t.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	// Each test sees an empty schema inside its own transaction.
	tx.Exec("DELETE FROM questions")
	tx.Exec("DELETE FROM categories")
	return tx
}

func seedQuestions(t *testing.T, db *gorm.DB, rows ...Question) []Question {
	t.Helper()
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed question: %v", err)
		}
	}
	return rows
}
