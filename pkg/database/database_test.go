package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mergington/activities/config"
	"github.com/mergington/activities/internal/models"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := config.DatabaseConfig{
		URL:      "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		LogLevel: "silent",
	}
	db, err := Open(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestInitSchemaIsIdempotent(t *testing.T) {
	db := openMemory(t)

	require.NoError(t, InitSchema(db))
	require.NoError(t, InitSchema(db))

	for _, table := range []string{"activities", "participants", "activity_participant"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestUniqueConstraintsAreTranslated(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, InitSchema(db))

	require.NoError(t, db.Create(&models.Participant{Email: "a@mergington.edu"}).Error)
	err := db.Create(&models.Participant{Email: "a@mergington.edu"}).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	require.NoError(t, db.Create(&models.Activity{Name: "Chess Club"}).Error)
	err = db.Create(&models.Activity{Name: "Chess Club"}).Error
	assert.True(t, IsUniqueViolation(err))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
}

func TestParseLogLevel(t *testing.T) {
	assert.NotEqual(t, parseLogLevel("silent"), parseLogLevel("info"))
	assert.Equal(t, parseLogLevel("warn"), parseLogLevel("unknown"))
}
