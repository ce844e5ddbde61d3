package activities

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mergington/activities/config"
	"github.com/mergington/activities/pkg/database"
)

// newTestDB opens a private in-memory SQLite database with the schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := config.DatabaseConfig{
		URL:      "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		LogLevel: "silent",
	}
	db, err := database.Open(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.InitSchema(db))
	return db
}

// newSeededRepo returns a repository over a database holding the default activities.
func newSeededRepo(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	seeded, err := SeedIfEmpty(context.Background(), db, zap.NewNop())
	require.NoError(t, err)
	require.True(t, seeded)
	return NewRepository(db), db
}

func rosterOf(t *testing.T, repo *Repository, name string) []string {
	t.Helper()
	a, err := repo.FindActivityByName(context.Background(), name)
	require.NoError(t, err)
	require.NotNil(t, a)
	return a.View().Participants
}
