package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/showcase/internal/client/models"
	"github.com/dmitrijs2005/showcase/internal/client/repositories/sessions"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestOpen_CreatesFileAndSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "showcase.db")

	repos, err := Open(ctx, path)
	require.NoError(t, err)
	defer repos.Close()

	require.NoError(t, repos.DB.PingContext(ctx))
	assert.True(t, tableExists(t, repos.DB, "goose_db_version"))
	assert.True(t, tableExists(t, repos.DB, "session"))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "app.db")

	repos, err := Open(ctx, path)
	require.NoError(t, err)
	defer repos.Close()

	require.NoError(t, RunMigrations(ctx, repos.DB))
	assert.True(t, tableExists(t, repos.DB, "session"))
}

func TestOpen_SessionSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "app.db")

	repos, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, repos.Sessions.Save(ctx, sessions.Record{
		Token: "tok",
		User:  models.User{ID: 5, Username: "admin"},
	}))
	require.NoError(t, repos.Close())

	repos, err = Open(ctx, path)
	require.NoError(t, err)
	defer repos.Close()

	rec, err := repos.Sessions.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "tok", rec.Token)
	assert.Equal(t, "admin", rec.User.Username)
}

func TestOpen_MigrationError(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}

	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "x.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
