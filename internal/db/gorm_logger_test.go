package db

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormLoggerTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := NewGormLogger(zerolog.New(&buf), 50*time.Millisecond)
	sql := func() (string, int64) { return "SELECT 1", 1 }

	logger.Trace(context.Background(), time.Now(), sql, nil)
	assert.Empty(t, buf.String(), "fast successful query is not logged at warn level")

	logger.Trace(context.Background(), time.Now(), sql, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record not found is expected")

	logger.Trace(context.Background(), time.Now(), sql, errors.New("boom"))
	assert.Contains(t, buf.String(), "query failed")
	buf.Reset()

	logger.Trace(context.Background(), time.Now().Add(-time.Second), sql, nil)
	assert.Contains(t, buf.String(), "slow query")
}

func TestGormLoggerSilent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewGormLogger(zerolog.New(&buf), time.Millisecond).LogMode(gormlogger.Silent)

	logger.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))
	logger.Error(context.Background(), "ignored %d", 1)
	assert.Empty(t, buf.String())
}
