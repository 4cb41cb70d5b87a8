// Package testutil holds helpers shared by package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"happy/internal/infra"
)

// NewTestDB opens a private in-memory sqlite database with the schema migrated.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := infra.OpenDatabase(infra.DatabaseConfig{
		Driver:       "sqlite",
		URL:          dsn,
		AutoMigrate:  true,
		LogLevel:     "silent",
		MaxOpenConns: 1,
	}, false, zap.NewNop())
	require.NoError(t, err)

	t.Cleanup(func() {
		infra.CloseDatabase(db, zap.NewNop())
	})
	return db
}
