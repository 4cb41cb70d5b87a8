package infra

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func traceSQL(l gormlogger.Interface, begin time.Time, err error) {
	l.Trace(context.Background(), begin, func() (string, int64) {
		return `SELECT * FROM "orphanages"`, 1
	}, err)
}

func TestGormLogger_Trace(t *testing.T) {
	tests := []struct {
		name      string
		level     gormlogger.LogLevel
		begin     time.Time
		err       error
		wantLevel zapcore.Level
		wantLogs  int
	}{
		{"error", gormlogger.Warn, time.Now(), errors.New("syntax error"), zapcore.ErrorLevel, 1},
		{"record not found is quiet", gormlogger.Warn, time.Now(), gorm.ErrRecordNotFound, 0, 0},
		{"slow query", gormlogger.Warn, time.Now().Add(-time.Second), nil, zapcore.WarnLevel, 1},
		{"fast query below info", gormlogger.Warn, time.Now(), nil, 0, 0},
		{"fast query at info", gormlogger.Info, time.Now(), nil, zapcore.DebugLevel, 1},
		{"silent", gormlogger.Silent, time.Now(), errors.New("syntax error"), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			l := NewGormLogger(zap.New(core), tt.level, 100*time.Millisecond)

			traceSQL(l, tt.begin, tt.err)

			entries := logs.All()
			assert.Len(t, entries, tt.wantLogs)
			if tt.wantLogs > 0 {
				assert.Equal(t, tt.wantLevel, entries[0].Level)
				assert.Equal(t, "gorm", entries[0].LoggerName)
			}
		})
	}
}

func TestGormLogger_LogModeCopies(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	base := NewGormLogger(zap.New(core), gormlogger.Silent, 0)

	verbose := base.LogMode(gormlogger.Info)
	traceSQL(verbose, time.Now(), nil)
	traceSQL(base, time.Now(), nil)

	assert.Equal(t, 1, logs.Len())
}

func TestParseGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, ParseGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, ParseGormLogLevel("error"))
	assert.Equal(t, gormlogger.Info, ParseGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, ParseGormLogLevel(""))
}
