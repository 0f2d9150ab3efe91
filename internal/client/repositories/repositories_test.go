package repositories

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tourplanner/internal/client/models"
	"github.com/dmitrijs2005/tourplanner/internal/client/repositories/metadata"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestOpen_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	repos, err := Open(ctx, filepath.Join(t.TempDir(), "tours.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	for _, name := range []string{"goose_db_version", "metadata", "saved_tours", "bookmarks"} {
		assert.True(t, tableExists(t, repos.DB, name), name)
	}
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "tours.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))
	assert.True(t, tableExists(t, db, "saved_tours"))
}

func TestOpen_RepositoriesShareDatabase(t *testing.T) {
	ctx := context.Background()
	repos, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	require.NoError(t, repos.Metadata.Set(ctx, metadata.KeyRefreshToken, []byte("rt")))
	tr := models.Tour{ID: "t1", Title: "Coast", StartDate: "2024/07/01", EndDate: "2024/07/02"}
	require.NoError(t, repos.Tours.Upsert(ctx, &tr))
	require.NoError(t, repos.Bookmarks.Replace(ctx, "a", "b", []models.BookmarkRecord{{ID: "x", Type: models.BookmarkMatch}}))

	v, err := repos.Metadata.Get(ctx, metadata.KeyRefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "rt", string(v))

	all, err := repos.Tours.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
